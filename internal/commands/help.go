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
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	registry *Registry
}

// NewHelpCmd creates a help command listing the commands in r.
func NewHelpCmd(r *Registry) *HelpCmd {
	return &HelpCmd{registry: r}
}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "help" }
func (c *HelpCmd) NeedsSession() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, "Usage:\n")
	fmt.Fprint(out, "  todomatic                        Start the interactive shell\n")
	fmt.Fprint(out, "  todomatic <command> [common flags] [args]\n\n")

	fmt.Fprint(out, "Commands:\n")
	for _, cmd := range c.registry.All() {
		synopsis := cmd.Synopsis()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			synopsis += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "  %-32s %s\n", cmd.Usage(), synopsis)
	}

	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
Task references:
  <n>              Position in the list as printed by list (1-based)
  <id>             Task id, as shown by list --verbose

Common flags:
  --config <dir>   Override config directory
  --seed <file>    Start the session from a JSON seed file
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Inside the shell, type quit or exit (or press ctrl+d) to leave.
`
