package checker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CalumY/ruffdocs/pkg/checker"
	"github.com/CalumY/ruffdocs/pkg/docs"
)

func TestViolationChecker_WellFormedDocument(t *testing.T) {
	t.Parallel()

	// Region 0 violates, regions 1-2 do not: zero defects.
	engine := &fakeRuleChecker{trigger: "bad_call"}
	vc := &checker.ViolationChecker{Checker: engine, Language: "python"}

	doc := ruleDoc("some-rule", "X100", "bad_call()\n", "good_call()\n", "other_call()\n")

	defects, err := vc.Check(context.Background(), doc)
	require.NoError(t, err)
	assert.Empty(t, defects)
	assert.Equal(t, 3, engine.calls, "every region submitted independently")
}

func TestViolationChecker_MissingViolation(t *testing.T) {
	t.Parallel()

	// Region 0 does not violate: exactly one missing-violation defect.
	engine := &fakeRuleChecker{trigger: "bad_call"}
	vc := &checker.ViolationChecker{Checker: engine, Language: "python"}

	doc := ruleDoc("some-rule", "X100", "good_call()\n", "other_call()\n")

	defects, err := vc.Check(context.Background(), doc)
	require.NoError(t, err)

	require.Len(t, defects, 1)
	assert.False(t, defects[0].Unexpected)
	assert.Equal(t, "X100", defects[0].Rule)
	assert.Equal(t, "some-rule", defects[0].RuleName)
	assert.Equal(t, "good_call()\n", defects[0].Code)
}

func TestViolationChecker_UnexpectedViolation(t *testing.T) {
	t.Parallel()

	// Region 2 unexpectedly violates: exactly one unexpected-violation defect.
	engine := &fakeRuleChecker{trigger: "bad_call"}
	vc := &checker.ViolationChecker{Checker: engine, Language: "python"}

	doc := ruleDoc("some-rule", "X100", "bad_call()\n", "good_call()\n", "bad_call()  # fixed?\n")

	defects, err := vc.Check(context.Background(), doc)
	require.NoError(t, err)

	require.Len(t, defects, 1)
	assert.True(t, defects[0].Unexpected)
	assert.Equal(t, "bad_call()  # fixed?\n", defects[0].Code)
}

func TestViolationChecker_NoRuleCodeSkipsDocument(t *testing.T) {
	t.Parallel()

	engine := &fakeRuleChecker{trigger: "bad_call"}
	vc := &checker.ViolationChecker{Checker: engine, Language: "python"}

	doc := &docs.Document{
		ShortName: "faq",
		Content:   []byte("# FAQ\n\n## Example\n```python\nbad_call()\n```\n"),
	}

	defects, err := vc.Check(context.Background(), doc)
	require.NoError(t, err)
	assert.Empty(t, defects)
	assert.Zero(t, engine.calls)
}

func TestViolationChecker_ZeroRegionsClean(t *testing.T) {
	t.Parallel()

	engine := &fakeRuleChecker{trigger: "bad_call"}
	vc := &checker.ViolationChecker{Checker: engine, Language: "python"}

	doc := &docs.Document{
		ShortName: "prose-rule",
		Content:   []byte("# prose-rule (X1)\n\n## Example\nProse only.\n"),
	}

	defects, err := vc.Check(context.Background(), doc)
	require.NoError(t, err)
	assert.Empty(t, defects)
	assert.Zero(t, engine.calls)
}

func TestViolationChecker_SubmissionErrorPropagates(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("rule check for X100 timed out after 2s")
	engine := &fakeRuleChecker{err: wantErr}
	vc := &checker.ViolationChecker{Checker: engine, Language: "python"}

	doc := ruleDoc("some-rule", "X100", "bad_call()\n")

	_, err := vc.Check(context.Background(), doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}
