package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todomatic/internal/commands"
	"todomatic/internal/config"
	"todomatic/internal/exitcode"
	"todomatic/internal/logging"
	"todomatic/internal/output"
	"todomatic/internal/seed"
	"todomatic/internal/session"
)

// DefaultCommand runs when no command is given.
const DefaultCommand = "shell"

// SessionFactory creates the session a command runs against.
// Used to inject test sessions during dispatch.
type SessionFactory func(ctx context.Context, cfg *config.Config, logger *log.Logger) (*session.Session, error)

// NewSession is the default SessionFactory. It starts from cfg.SeedPath when set.
func NewSession(ctx context.Context, cfg *config.Config, logger *log.Logger) (*session.Session, error) {
	opts := []session.Option{
		session.WithFilter(cfg.DefaultFilter),
		session.WithLogger(logger),
	}
	if cfg.SeedPath != "" {
		tasks, err := seed.Load(cfg.SeedPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded seed", "path", cfg.SeedPath, "count", len(tasks))
		opts = append(opts, session.WithTasks(tasks))
	}
	return session.New(opts...), nil
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  SessionFactory
}

// NewDispatcher creates a new dispatcher with the given registry and session factory.
func NewDispatcher(registry *commands.Registry, factory SessionFactory) *Dispatcher {
	if factory == nil {
		factory = NewSession
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// in feeds interactive commands. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	// No args -> interactive shell
	if len(args) == 0 {
		return d.dispatch(ctx, DefaultCommand, nil, in, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], in, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, in, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var seedPath string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&seedPath, "seed", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	positionalArgs, code := parseFlags(fs, args, errOut)
	if code != exitcode.Success {
		return code
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	if seedPath != "" {
		cfg.SeedPath = seedPath
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger := logging.New(errOut, logging.Options{
		Level: cfg.LogLevel,
		Debug: cfg.Debug,
		Quiet: cfg.Quiet,
	})

	env := &commands.Env{
		Config: cfg,
		Logger: logger,
		In:     in,
	}

	if !cmd.NeedsSession() {
		return cmd.Run(ctx, env, positionalArgs, out, errOut)
	}

	sess, err := d.factory(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}

	focus := &pendingFocus{}
	sess.OnFocusHeading(focus.record)
	env.Session = sess
	env.Exec = func(ctx context.Context, args []string, out, errOut io.Writer) int {
		return d.exec(ctx, env, focus, args, out, errOut)
	}

	logger.Debug("running command", "command", cmd.Name(), "tasks", sess.Count())
	code = cmd.Run(ctx, env, positionalArgs, out, errOut)
	focus.flush(out, cfg.Quiet)
	return code
}

// exec runs one shell line against the session in env.
// Only command-specific flags are accepted; common flags are fixed for the session.
func (d *Dispatcher) exec(ctx context.Context, env *commands.Env, focus *pendingFocus, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(args[0])
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", args[0])
		return exitcode.UserError
	}
	if commands.IsInteractive(cmd) {
		fmt.Fprintf(errOut, "error: %s cannot be started from the shell\n", cmd.Name())
		return exitcode.UserError
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)

	positionalArgs, code := parseFlags(fs, args[1:], errOut)
	if code != exitcode.Success {
		return code
	}

	code = cmd.Run(ctx, env, positionalArgs, out, errOut)
	focus.flush(out, env.Config.Quiet)
	return code
}

// parseFlags parses args into fs and reports flag errors the way the CLI prints them.
func parseFlags(fs *flag.FlagSet, args []string, errOut io.Writer) ([]string, int) {
	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		// Check for missing flag value
		if strings.Contains(errStr, "needs a value") || strings.Contains(errStr, "flag needs an argument") {
			parts := strings.Split(errStr, ":")
			flagPart := strings.TrimSpace(parts[len(parts)-1])
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
			return nil, exitcode.UserError
		}

		// Check for unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return nil, exitcode.UserError
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return nil, exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return nil, exitcode.UserError
	}
	return positionalArgs, exitcode.Success
}

// pendingFocus holds a focus transfer until the command that caused it has
// printed its own output, so the heading line comes last.
type pendingFocus struct {
	heading string
	pending bool
}

func (p *pendingFocus) record(heading string) {
	p.heading = heading
	p.pending = true
}

func (p *pendingFocus) flush(w io.Writer, quiet bool) {
	if p.pending && !quiet {
		output.FormatFocus(w, p.heading)
	}
	p.heading = ""
	p.pending = false
}
