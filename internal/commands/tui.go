package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"todomatic/internal/exitcode"
	"todomatic/internal/ui"
)

func init() {
	Register(&TuiCmd{})
}

// TuiCmd implements the full-screen terminal UI.
type TuiCmd struct {
	altScreen bool
}

func (c *TuiCmd) Name() string       { return "tui" }
func (c *TuiCmd) Aliases() []string  { return nil }
func (c *TuiCmd) Synopsis() string   { return "Start the terminal UI" }
func (c *TuiCmd) Usage() string      { return "tui [--alt-screen]" }
func (c *TuiCmd) NeedsSession() bool { return true }
func (c *TuiCmd) Interactive() bool  { return true }

func (c *TuiCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.altScreen, "alt-screen", false, "")
}

func (c *TuiCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if !IsTerminal(out) {
		fmt.Fprintln(errOut, "error: tui requires a terminal")
		return exitcode.UserError
	}

	opts := []ui.Option{
		ui.WithInput(env.In),
		ui.WithOutput(out),
		ui.WithLogger(env.Logger),
	}
	if c.altScreen {
		opts = append(opts, ui.WithAltScreen())
	}

	if err := ui.Run(ctx, env.Session, opts...); err != nil {
		fmt.Fprintf(errOut, "error: tui: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
