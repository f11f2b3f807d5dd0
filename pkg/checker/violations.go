package checker

import (
	"context"
	"fmt"
	"strings"

	"github.com/CalumY/ruffdocs/pkg/docs"
	"github.com/CalumY/ruffdocs/pkg/pytools"
	"github.com/CalumY/ruffdocs/pkg/snippet"
)

// ViolationDefect is one snippet that disagreed with the documentation
// format's ordering contract: the first snippet demonstrates the violation,
// every later snippet the fix.
type ViolationDefect struct {
	// Rule is the documented rule code, e.g. "COM812".
	Rule string

	// RuleName is the document short name, e.g. "missing-trailing-comma".
	RuleName string

	// Code is the offending snippet, dedented.
	Code string

	// Unexpected is true when a non-first snippet triggered the rule, and
	// false when the first snippet failed to.
	Unexpected bool
}

// ViolationChecker submits each example snippet to the rule-checking engine
// scoped to the document's rule and classifies the responses by position.
type ViolationChecker struct {
	// Checker is the external rule-evaluation engine.
	Checker pytools.RuleChecker

	// Language is the fence tag identifying checkable fragments.
	Language string
}

// Check classifies every snippet in the document's example span. Documents
// whose first line carries no parenthesized rule code are skipped entirely.
// Submissions are independent; any submission error (including a timeout)
// aborts the document and propagates.
func (c *ViolationChecker) Check(ctx context.Context, doc *docs.Document) ([]ViolationDefect, error) {
	rule, ok := doc.RuleCode()
	if !ok {
		return nil, nil
	}

	span, ok := doc.ExampleSpan()
	if !ok {
		return nil, nil
	}

	var defects []ViolationDefect

	for i, region := range snippet.Locate(span, c.Language) {
		output, err := c.Checker.CheckRule(ctx, region.Code, rule)
		if err != nil {
			return nil, fmt.Errorf("check rule %s in %s docs: %w", rule, doc.ShortName, err)
		}

		triggered := strings.Contains(output, rule)

		if i == 0 && !triggered {
			defects = append(defects, ViolationDefect{
				Rule:     rule,
				RuleName: doc.ShortName,
				Code:     region.Code,
			})
		}
		if i > 0 && triggered {
			defects = append(defects, ViolationDefect{
				Rule:       rule,
				RuleName:   doc.ShortName,
				Code:       region.Code,
				Unexpected: true,
			})
		}
	}

	return defects, nil
}
