// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldDir   = "dir"

	// Check fields.
	FieldDocument = "document"
	FieldRule     = "rule"
	FieldLanguage = "language"
	FieldRegions  = "regions"
	FieldCommand  = "command"

	// Statistics fields.
	FieldDocsDiscovered = "docs_discovered"
	FieldDocsChecked    = "docs_checked"
	FieldDocsSkipped    = "docs_skipped"
	FieldDefectsTotal   = "defects_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
