package checker

import (
	"context"

	"github.com/CalumY/ruffdocs/pkg/docs"
	"github.com/CalumY/ruffdocs/pkg/pytools"
)

// TargetLanguage is the fence tag of checkable example fragments.
const TargetLanguage = "python"

// Checker runs the full documentation check over a set of documents:
// exemption validation, the formatting pass, then the violation pass.
// Documents are processed one at a time; the only blocking operation is the
// external rule-check submission.
type Checker struct {
	// Formatter is the canonical-formatting service.
	Formatter pytools.Formatter

	// RuleChecker is the rule-evaluation engine.
	RuleChecker pytools.RuleChecker

	// Exemptions are the per-document allow lists.
	Exemptions *Exemptions

	// Language is the fence tag to check. Defaults to TargetLanguage.
	Language string

	// SkipErrors suppresses parse-error escalation for all documents.
	SkipErrors bool

	// Reporter receives defect reports and the run summary.
	Reporter *Reporter
}

// Run checks every document and returns the aggregate result. Non-fatal
// defects never stop the run: all documents are enumerated before the exit
// status is decided. The error return is reserved for fatal conditions
// (invalid exemption lists, external tools failing to run, timeouts).
func (c *Checker) Run(ctx context.Context, documents []*docs.Document) (*Result, error) {
	if err := c.Exemptions.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}

	formatChecker := &FormatChecker{Formatter: c.Formatter, Language: c.language()}

	for _, doc := range documents {
		if c.Exemptions.IsFormattingExempt(doc.ShortName) {
			result.DocumentsSkipped++
			continue
		}

		outcome, err := formatChecker.Check(ctx, doc)
		if err != nil {
			return result, err
		}
		result.DocumentsChecked++

		switch {
		case len(outcome.MissingSections) > 0:
			c.Reporter.MissingSections(doc.ShortName, outcome.MissingSections)
			result.FormattingViolations++

		case len(outcome.ParseFailures) > 0 && !c.SkipErrors && !c.Exemptions.IsParseErrorExempt(doc.ShortName):
			// Parse failures replace the drift report for this document.
			c.Reporter.ParseFailures(doc.ShortName, outcome.ParseFailures)
			result.ParseErrors++

		case outcome.Drifted:
			c.Reporter.Drift(doc.ShortName, outcome.Canonical)
			result.FormattingViolations++
		}
	}

	violationChecker := &ViolationChecker{Checker: c.RuleChecker, Language: c.language()}

	for _, doc := range documents {
		if c.Exemptions.IsRuleViolationExempt(doc.ShortName) {
			continue
		}

		defects, err := violationChecker.Check(ctx, doc)
		if err != nil {
			return result, err
		}

		for _, defect := range defects {
			c.Reporter.Violation(defect)
			if defect.Unexpected {
				result.UnexpectedViolations++
			} else {
				result.MissingViolations++
			}
		}
	}

	c.Reporter.Summary(result)

	return result, nil
}

func (c *Checker) language() string {
	if c.Language == "" {
		return TargetLanguage
	}
	return c.Language
}
