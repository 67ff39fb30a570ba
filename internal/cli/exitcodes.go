package cli

// Exit codes for elm-lint.
const (
	// ExitSuccess indicates a clean run: no diagnostics.
	ExitSuccess = 0

	// ExitLintIssues indicates the run completed but found diagnostics.
	ExitLintIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates a configuration file error.
	ExitConfigError = 65

	// ExitInternalError indicates an unexpected internal error.
	ExitInternalError = 70

	// ExitIOError indicates a file I/O error.
	ExitIOError = 74
)
