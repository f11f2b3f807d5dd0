package checker

import (
	"context"
	"errors"
	"fmt"

	"github.com/CalumY/ruffdocs/pkg/docs"
	"github.com/CalumY/ruffdocs/pkg/pytools"
	"github.com/CalumY/ruffdocs/pkg/snippet"
)

// FormatOutcome is the raw result of checking one document's example span
// against the canonical formatter. Classification into a defect (or not)
// happens in the orchestrator, where the exemption sets apply.
type FormatOutcome struct {
	// MissingSections lists required headings absent from a generated
	// page. When non-empty the remaining checks were skipped.
	MissingSections []string

	// ParseFailures carries the formatter's detail for each fragment it
	// could not parse. Unparseable fragments are left unchanged in the
	// canonical span; the remaining fragments are still reformatted.
	ParseFailures []string

	// Drifted is true when the canonical span differs from the original.
	Drifted bool

	// Canonical is the rewritten example span, set only when Drifted.
	Canonical string
}

// FormatChecker re-derives the canonical form of every example fragment in
// a document and detects drift.
type FormatChecker struct {
	// Formatter is the canonical-formatting service.
	Formatter pytools.Formatter

	// Language is the fence tag identifying checkable fragments.
	Language string
}

// Check verifies one document. Fragment parse failures are recorded, not
// returned; the error return is reserved for run failures (for example the
// formatter binary being unavailable).
//
// Re-running the formatter over already-canonical fragments is a no-op, so
// a document that checked clean keeps checking clean: the drift comparison
// relies entirely on that idempotence.
func (c *FormatChecker) Check(ctx context.Context, doc *docs.Document) (*FormatOutcome, error) {
	outcome := &FormatOutcome{}

	if doc.Generated {
		if missing := doc.MissingSections(); len(missing) > 0 {
			outcome.MissingSections = missing
			return outcome, nil
		}
	}

	span, ok := doc.ExampleSpan()
	if !ok {
		return outcome, nil
	}

	candidate, err := snippet.Replace(span, c.Language, func(region snippet.Region) (string, error) {
		formatted, err := c.Formatter.Format(ctx, region.Code)
		if err != nil {
			var parseErr *pytools.ParseError
			if errors.As(err, &parseErr) {
				outcome.ParseFailures = append(outcome.ParseFailures, parseErr.Detail)
				return region.Code, nil
			}
			return "", err
		}
		return formatted, nil
	})
	if err != nil {
		return nil, fmt.Errorf("canonicalize %s: %w", doc.ShortName, err)
	}

	if candidate != span {
		outcome.Drifted = true
		outcome.Canonical = candidate
	}

	return outcome, nil
}
