package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todomatic/internal/exitcode"
	"todomatic/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Prints the filter bar, the remaining-count heading and the visible tasks.
type ListCmd struct {
	verbose bool
}

// SetVerbose sets verbose output (for testing).
func (c *ListCmd) SetVerbose(verbose bool) {
	c.verbose = verbose
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List visible tasks" }
func (c *ListCmd) Usage() string      { return "list [--verbose]" }
func (c *ListCmd) NeedsSession() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "verbose", false, "")
	fs.BoolVar(&c.verbose, "v", false, "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	sess := env.Session
	output.FormatFilterBar(out, sess.Filter())
	output.FormatHeading(out, sess.Heading())

	visible := sess.Visible()
	for i, t := range visible {
		if c.verbose {
			output.FormatTaskVerbose(out, i+1, t)
		} else {
			output.FormatTask(out, i+1, t)
		}
	}

	if len(visible) == 0 && !env.Config.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}
