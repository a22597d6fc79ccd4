// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, bad task reference, empty name).
	UserError = 1

	// ConfigError indicates an unreadable config.toml or seed file.
	ConfigError = 2
)
