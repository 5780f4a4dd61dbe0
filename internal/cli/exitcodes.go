package cli

import (
	"errors"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: connection failures, query failures, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown game user.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable import files, rows with missing fields.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: non-numeric scores, empty usernames, bad configuration values.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error to its exit code by kind
func ExitCodeFor(err error) int {
	var cmdErr *CommandError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cmdErr):
		return cmdErr.Code
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrIO):
		return ExitDataErr
	case errors.Is(err, models.ErrUserNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code reported in JSON error output
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, models.ErrConnection):
		return "CONNECTION_ERROR"
	case errors.Is(err, models.ErrQuery):
		return "QUERY_ERROR"
	case errors.Is(err, models.ErrIO):
		return "IO_ERROR"
	case errors.Is(err, models.ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, models.ErrUserNotFound):
		return "NOT_FOUND"
	default:
		return "ERROR"
	}
}
