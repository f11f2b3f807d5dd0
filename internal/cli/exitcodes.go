package cli

// Exit codes for ruffdocs.
const (
	// ExitSuccess indicates the run completed with no defects.
	ExitSuccess = 0

	// ExitChecksFailed indicates the run completed but found defects, or
	// the rule pages have not been generated yet.
	ExitChecksFailed = 1
)
