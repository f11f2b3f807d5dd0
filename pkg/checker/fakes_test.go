package checker_test

import (
	"context"
	"strings"

	"github.com/CalumY/ruffdocs/pkg/docs"
	"github.com/CalumY/ruffdocs/pkg/pytools"
)

// fakeFormatter maps known fragments to their canonical form; everything
// else is treated as already canonical. The mapping is idempotent as long
// as canonical outputs are never used as keys.
type fakeFormatter struct {
	canonical  map[string]string
	parseFails map[string]string
	calls      int
}

func (f *fakeFormatter) Format(_ context.Context, code string) (string, error) {
	f.calls++
	if detail, ok := f.parseFails[code]; ok {
		return "", &pytools.ParseError{Detail: detail}
	}
	if formatted, ok := f.canonical[code]; ok {
		return formatted, nil
	}
	return code, nil
}

// fakeRuleChecker reports a violation whenever the snippet contains the
// trigger marker, echoing the rule code in its output like the real engine.
type fakeRuleChecker struct {
	trigger string
	err     error
	calls   int
}

func (f *fakeRuleChecker) CheckRule(_ context.Context, code, rule string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.trigger != "" && strings.Contains(code, f.trigger) {
		return `[{"code": "` + rule + `", "filename": "` + pytools.StdinFilename(rule) + `"}]`, nil
	}
	return "[]", nil
}

// ruleDoc builds a generated rule page with the given snippets, the first
// being the "bad" example.
func ruleDoc(shortName, code string, snippets ...string) *docs.Document {
	var sb strings.Builder
	sb.WriteString("# " + shortName + " (" + code + ")\n\n")
	sb.WriteString("## What it does\nChecks things.\n\n")
	sb.WriteString("## Why is this bad?\nIt is.\n\n")
	sb.WriteString("## Example\n")
	for i, snippetCode := range snippets {
		if i > 0 {
			sb.WriteString("\nUse instead:\n")
		}
		sb.WriteString("```python\n" + snippetCode + "```\n")
	}
	return &docs.Document{
		Path:      shortName + ".md",
		ShortName: shortName,
		Content:   []byte(sb.String()),
		Generated: true,
	}
}
