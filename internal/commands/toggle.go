package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todomatic/internal/exitcode"
	"todomatic/internal/task"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string       { return "toggle" }
func (c *ToggleCmd) Aliases() []string  { return []string{"done", "check"} }
func (c *ToggleCmd) Synopsis() string   { return "Mark a task completed or active again" }
func (c *ToggleCmd) Usage() string      { return "toggle <ref>" }
func (c *ToggleCmd) NeedsSession() bool { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	t, rest, code := resolveArg(env, args, errOut)
	if code != exitcode.Success {
		return code
	}
	if len(rest) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", rest[0])
		return exitcode.UserError
	}

	env.Session.ToggleTaskCompleted(t.ID)

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// resolveArg parses the leading task reference in args and resolves it against
// the session. On failure it reports the error and returns a non-zero code.
func resolveArg(env *Env, args []string, errOut io.Writer) (task.Task, []string, int) {
	ref, rest, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return task.Task{}, nil, exitcode.UserError
	}

	t, err := ResolveTaskRef(env.Session, ref)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return task.Task{}, nil, exitcode.UserError
	}
	return t, rest, exitcode.Success
}
