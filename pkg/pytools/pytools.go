// Package pytools wraps the two external Python tools the docs checks rely
// on: the canonical code formatter and the rule-violation checker. Both are
// defined as interfaces so tests can substitute deterministic fakes.
package pytools

import (
	"context"
	"time"
)

// DefaultTargetVersions is the fixed set of language versions the canonical
// formatter targets.
var DefaultTargetVersions = []string{"py37", "py38", "py39", "py310", "py311"}

// DefaultCheckTimeout bounds each rule-check submission. A timeout is a hard
// run failure, never retried.
const DefaultCheckTimeout = 2 * time.Second

// Formatter reformats a code fragment into its canonical form. Format must
// be deterministic and idempotent: formatting already-canonical code returns
// it unchanged. Fragments the formatter cannot parse yield a *ParseError.
type Formatter interface {
	Format(ctx context.Context, code string) (string, error)
}

// RuleChecker evaluates a code fragment against a single rule and returns
// the checker's raw structured output. Callers test for the rule code as a
// substring of the output; structural parsing is not part of the contract.
type RuleChecker interface {
	CheckRule(ctx context.Context, code, rule string) (string, error)
}

// ParseError reports that the formatter could not parse a fragment.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return e.Detail
}
