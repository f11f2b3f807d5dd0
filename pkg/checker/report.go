package checker

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/CalumY/ruffdocs/internal/ui/pretty"
)

// bufWriterSize is the buffer size for the report writer (64 KiB).
const bufWriterSize = 64 * 1024

// splicePrefix marks replacement lines so a report block can be pasted
// straight back into the rule's doc-comment source.
const splicePrefix = "///"

// Reporter renders defect reports and the run summary as styled,
// line-oriented text.
type Reporter struct {
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewReporter creates a Reporter writing to w. Color mode values are
// "auto", "always", and "never".
func NewReporter(w io.Writer, colorMode string) *Reporter {
	return &Reporter{
		styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, w)),
		bw:     bufio.NewWriterSize(w, bufWriterSize),
	}
}

// Flush writes any buffered output.
func (r *Reporter) Flush() error {
	return r.bw.Flush()
}

// MissingSections reports a generated page lacking required headings.
func (r *Reporter) MissingSections(shortName string, sections []string) {
	for _, section := range sections {
		fmt.Fprintf(r.bw, "Docs for `%s` are missing the `%s` section.\n",
			r.styles.RuleName.Render(shortName), section)
	}
}

// ParseFailures reports fragments the canonical formatter could not parse.
func (r *Reporter) ParseFailures(shortName string, details []string) {
	for _, detail := range details {
		fmt.Fprintf(r.bw, "Docs parse error for `%s` docs: %s\n",
			r.styles.RuleName.Render(shortName), r.styles.Error.Render(detail))
	}
}

// Drift reports a formatting mismatch, rendering the canonical example span
// with the splice prefix so it can be copied directly into the docs source.
func (r *Reporter) Drift(shortName, canonical string) {
	fmt.Fprintf(r.bw, "Rule `%s` docs are not formatted. The example section should be rewritten to:\n",
		r.styles.RuleName.Render(shortName))
	r.writePrefixed(canonical)
	fmt.Fprint(r.bw, "\n\n")
}

// Violation reports one snippet that disagreed with the first-must-violate
// ordering contract, including the offending code.
func (r *Reporter) Violation(defect ViolationDefect) {
	kind, found := "Expected", "not found"
	if defect.Unexpected {
		kind, found = "Unexpected", "found"
	}

	fmt.Fprintf(r.bw, "%s violation %s (%s) was %s in the following code snippet.\n",
		r.styles.Warning.Render(kind),
		r.styles.RuleCode.Render(defect.Rule),
		r.styles.RuleName.Render(defect.RuleName),
		found,
	)

	fmt.Fprintf(r.bw, "%s ```python\n", splicePrefix)
	r.writePrefixed(defect.Code)
	fmt.Fprintf(r.bw, "%s ```\n", splicePrefix)
	fmt.Fprint(r.bw, "\n\n")
}

// Summary prints one line per nonzero counter, or a success line for a
// clean run.
func (r *Reporter) Summary(result *Result) {
	if result.FormattingViolations > 0 {
		fmt.Fprintf(r.bw, "Formatting violations identified: %s\n",
			r.styles.Failure.Render(fmt.Sprint(result.FormattingViolations)))
	}
	if result.ParseErrors > 0 {
		fmt.Fprintf(r.bw, "New code block parse errors identified: %s\n",
			r.styles.Failure.Render(fmt.Sprint(result.ParseErrors)))
	}
	if result.UnexpectedViolations > 0 {
		fmt.Fprintf(r.bw, "Unexpected rule violations identified: %s\n",
			r.styles.Failure.Render(fmt.Sprint(result.UnexpectedViolations)))
	}
	if result.MissingViolations > 0 {
		fmt.Fprintf(r.bw, "Missing rule violations identified: %s\n",
			r.styles.Failure.Render(fmt.Sprint(result.MissingViolations)))
	}
	if result.Defects() == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render(
			fmt.Sprintf("All example sections clean (%d documents checked, %d skipped).",
				result.DocumentsChecked, result.DocumentsSkipped)))
	}
}

// writePrefixed renders s line by line behind the splice prefix. Blank
// lines carry the bare prefix so no trailing whitespace is emitted.
func (r *Reporter) writePrefixed(s string) {
	for _, line := range splitReportLines(s) {
		if line == "" {
			fmt.Fprintf(r.bw, "%s\n", splicePrefix)
			continue
		}
		fmt.Fprintf(r.bw, "%s %s\n", splicePrefix, r.styles.Snippet.Render(line))
	}
}

// splitReportLines splits s on newlines, dropping a final empty element
// produced by a trailing newline.
func splitReportLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
