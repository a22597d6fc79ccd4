package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todomatic/internal/exitcode"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string       { return "edit" }
func (c *EditCmd) Aliases() []string  { return []string{"rename"} }
func (c *EditCmd) Synopsis() string   { return "Rename a task" }
func (c *EditCmd) Usage() string      { return "edit <ref> <name...>" }
func (c *EditCmd) NeedsSession() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	t, rest, code := resolveArg(env, args, errOut)
	if code != exitcode.Success {
		return code
	}

	name := strings.TrimSpace(strings.Join(rest, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: task name required")
		return exitcode.UserError
	}

	env.Session.EditTask(t.ID, name)

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
