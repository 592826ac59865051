package cli

// Exit codes for CLI commands, following Unix conventions.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error: database failures or any
	// error that doesn't fit the categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage, such as missing
	// required flags or malformed arguments.
	ExitUsage = 2

	// ExitValidation indicates input that failed validation rules.
	ExitValidation = 5
)
