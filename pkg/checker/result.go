package checker

// Result aggregates defect counts across a whole run. Counters only ever
// increase; the run finishes enumerating every document before the overall
// status is decided.
type Result struct {
	// FormattingViolations counts documents whose example span differs
	// from its canonical form, including structural failures (missing
	// required sections).
	FormattingViolations int

	// ParseErrors counts documents with at least one fragment the
	// formatter could not parse, excluding exempted documents.
	ParseErrors int

	// UnexpectedViolations counts non-first snippets that triggered the
	// documented rule.
	UnexpectedViolations int

	// MissingViolations counts first snippets that failed to trigger the
	// documented rule.
	MissingViolations int

	// DocumentsChecked and DocumentsSkipped track formatting-check
	// coverage; skipped documents are formatting-exempt.
	DocumentsChecked int
	DocumentsSkipped int
}

// Defects returns the total number of defects found.
func (r *Result) Defects() int {
	return r.FormattingViolations + r.ParseErrors + r.UnexpectedViolations + r.MissingViolations
}

// ExitCode derives the process exit status: zero only for a fully clean run.
func (r *Result) ExitCode() int {
	if r == nil || r.Defects() > 0 {
		return 1
	}
	return 0
}
