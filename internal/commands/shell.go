package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"todomatic/internal/exitcode"
)

// Prompt is printed before each shell line.
const Prompt = "todomatic> "

func init() {
	Register(&ShellCmd{})
}

// ShellCmd implements the line-oriented interactive shell.
// Every line is one command run against the same session.
type ShellCmd struct{}

func (c *ShellCmd) Name() string       { return "shell" }
func (c *ShellCmd) Aliases() []string  { return nil }
func (c *ShellCmd) Synopsis() string   { return "Start the interactive shell" }
func (c *ShellCmd) Usage() string      { return "shell" }
func (c *ShellCmd) NeedsSession() bool { return true }
func (c *ShellCmd) Interactive() bool  { return true }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if env.In == nil || env.Exec == nil {
		fmt.Fprintln(errOut, "error: shell requires an input stream")
		return exitcode.UserError
	}

	lines, readErr := readLines(env.In)
	for {
		if !env.Config.Quiet {
			fmt.Fprint(out, Prompt)
		}

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return exitcode.Success
		case line, ok = <-lines:
		}
		if !ok {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" || line == "exit" {
			return exitcode.Success
		}

		fields, err := splitLine(line)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}

		code := env.Exec(ctx, fields, out, errOut)
		env.Logger.Debug("shell command finished", "command", fields[0], "exit_code", code)
	}

	if err := <-readErr; err != nil {
		fmt.Fprintf(errOut, "error: read input: %v\n", err)
		return exitcode.UserError
	}
	if !env.Config.Quiet {
		fmt.Fprintln(out)
	}
	return exitcode.Success
}

// readLines scans r on a separate goroutine so a blocked read does not
// hold up cancellation. lines is closed at EOF; readErr then yields the scan error.
func readLines(r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

// splitLine tokenises a shell line honouring quotes.
// Variable references expand to nothing; single quotes keep a literal $.
func splitLine(line string) ([]string, error) {
	return shell.Fields(line, func(string) string { return "" })
}
