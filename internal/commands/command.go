// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/charmbracelet/log"

	"todomatic/internal/config"
	"todomatic/internal/session"
)

// Command defines the interface for CLI and shell commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsSession returns true if the command reads or changes tasks.
	// Commands like help and version return false.
	NeedsSession() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// env.Config is always provided.
	// env.Session is nil if NeedsSession() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}

// Interactive is implemented by commands that take over input until the user quits.
// They cannot be started from inside another interactive command.
type Interactive interface {
	Interactive() bool
}

// IsInteractive reports whether c is an interactive command.
func IsInteractive(c Command) bool {
	i, ok := c.(Interactive)
	return ok && i.Interactive()
}

// ExecFunc runs one command line against an existing session.
type ExecFunc func(ctx context.Context, args []string, out, errOut io.Writer) int

// Env is what a command runs against.
type Env struct {
	Config  *config.Config
	Session *session.Session
	Logger  *log.Logger

	// In is the input stream for interactive commands.
	In io.Reader

	// Exec dispatches a nested command line. Set by the dispatcher.
	Exec ExecFunc
}
