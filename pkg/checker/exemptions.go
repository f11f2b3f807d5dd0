// Package checker implements the documentation example checks: canonical
// formatting drift, fragment parse errors, and first-snippet-must-violate
// rule classification, aggregated into a single pass/fail result.
package checker

import (
	"fmt"
	"slices"
	"strings"
)

// Exemptions holds the three per-document allow lists, keyed by document
// short name. Each list must be alphabetically sorted and duplicate-free;
// violating that is a fatal precondition checked before any document is
// processed, regardless of document content.
type Exemptions struct {
	// Formatting lists documents whose examples are deliberately not in
	// canonical form (the drift is the point of the example). They are
	// skipped entirely by the formatting check.
	Formatting []string `yaml:"formatting"`

	// ParseErrors lists documents whose fragments are known not to parse.
	// Their parse failures are swallowed silently.
	ParseErrors []string `yaml:"parse_errors"`

	// RuleViolations lists documents skipped by the violation check.
	RuleViolations []string `yaml:"rule_violations"`
}

// DefaultExemptions returns the built-in allow lists.
func DefaultExemptions() *Exemptions {
	return &Exemptions{
		Formatting: []string{
			"avoidable-escaped-quote",
			"bad-quotes-docstring",
			"bad-quotes-inline-string",
			"bad-quotes-multiline-string",
			"explicit-string-concatenation",
			"line-too-long",
			"missing-trailing-comma",
			"multi-line-implicit-string-concatenation",
			"multiple-statements-on-one-line-colon",
			"multiple-statements-on-one-line-semicolon",
			"prohibited-trailing-comma",
			"trailing-comma-on-bare-tuple",
			"useless-semicolon",
		},
		ParseErrors: []string{
			"blank-line-with-whitespace",
			"missing-newline-at-end-of-file",
			"mixed-spaces-and-tabs",
			"trailing-whitespace",
		},
		RuleViolations: []string{},
	}
}

// Validate checks every list is alphabetically sorted with no duplicates.
// Keeping the lists canonical keeps diffs small when entries are added.
func (e *Exemptions) Validate() error {
	lists := []struct {
		name    string
		entries []string
	}{
		{"formatting violations", e.Formatting},
		{"parse errors", e.ParseErrors},
		{"rule violations", e.RuleViolations},
	}

	for _, list := range lists {
		if !slices.IsSorted(list.entries) {
			return fmt.Errorf("known %s list is not sorted alphabetically", list.name)
		}
		if dups := duplicates(list.entries); len(dups) > 0 {
			return fmt.Errorf("known %s list has duplicates: %s", list.name, strings.Join(dups, ", "))
		}
	}

	return nil
}

// IsFormattingExempt reports whether the document is skipped by the
// formatting check.
func (e *Exemptions) IsFormattingExempt(shortName string) bool {
	return slices.Contains(e.Formatting, shortName)
}

// IsParseErrorExempt reports whether the document's parse failures are
// swallowed.
func (e *Exemptions) IsParseErrorExempt(shortName string) bool {
	return slices.Contains(e.ParseErrors, shortName)
}

// IsRuleViolationExempt reports whether the document is skipped by the
// violation check.
func (e *Exemptions) IsRuleViolationExempt(shortName string) bool {
	return slices.Contains(e.RuleViolations, shortName)
}

// duplicates returns the entries appearing more than once, in first-seen
// order.
func duplicates(entries []string) []string {
	seen := make(map[string]int, len(entries))
	for _, entry := range entries {
		seen[entry]++
	}

	var dups []string
	for _, entry := range entries {
		if seen[entry] > 1 {
			dups = append(dups, entry)
			delete(seen, entry)
		}
	}
	return dups
}
