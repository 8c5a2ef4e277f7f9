// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, empty text).
	UserError = 1

	// ConfigError indicates an unreadable config file or unusable storage backend.
	ConfigError = 2

	// BackendError indicates the suggestion service failed or was busy.
	BackendError = 3
)
