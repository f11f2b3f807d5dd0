package docs

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// RequiredSections are the level-2 headings every generated rule page must
// carry before its example section is checked.
var RequiredSections = []string{"What it does", "Why is this bad?"}

// MissingSections returns the required sections absent from the page, in
// RequiredSections order. An empty result means the page is structurally
// sound.
func (d *Document) MissingSections() []string {
	found := make(map[string]bool, len(RequiredSections))

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(d.Content))

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level == 2 {
			found[headingText(heading, d.Content)] = true
		}
		return ast.WalkContinue, nil
	})

	var missing []string
	for _, section := range RequiredSections {
		if !found[section] {
			missing = append(missing, section)
		}
	}
	return missing
}

// headingText extracts the plain text of a heading node.
func headingText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if textNode, ok := c.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}
