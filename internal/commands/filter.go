package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todomatic/internal/exitcode"
	"todomatic/internal/output"
	"todomatic/internal/task"
)

func init() {
	Register(&FilterCmd{})
}

// FilterCmd implements the filter command.
// Without arguments it prints the filter bar; with a name it switches filters.
type FilterCmd struct{}

func (c *FilterCmd) Name() string      { return "filter" }
func (c *FilterCmd) Aliases() []string { return nil }
func (c *FilterCmd) Synopsis() string  { return "Show or change the task filter" }
func (c *FilterCmd) Usage() string {
	return "filter [" + strings.ToLower(strings.Join(task.FilterNames(), "|")) + "]"
}
func (c *FilterCmd) NeedsSession() bool { return true }

func (c *FilterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FilterCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	if len(args) == 1 {
		f, err := task.ParseFilter(args[0])
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		env.Session.SetFilter(f)
		if env.Config.Quiet {
			return exitcode.Success
		}
	}

	output.FormatFilterBar(out, env.Session.Filter())
	return exitcode.Success
}
