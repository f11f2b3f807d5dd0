// Package snippet locates fenced code blocks inside documentation text and
// supports splicing reformatted code back into the surrounding document.
package snippet

import "strings"

// Region is one fenced code block found in a document.
type Region struct {
	// Code is the block body with the fence indentation stripped.
	Code string

	// Indent is the leading whitespace shared by the opening and closing
	// fence lines. It is re-applied when splicing replacement code back.
	Indent string

	// Start is the byte offset of the opening fence line within the
	// scanned text. End is the offset just past the closing fence marker.
	Start int
	End   int

	// BodyStart and BodyEnd delimit the raw (still indented) block body,
	// so a replacement body can be spliced in without touching the fences.
	BodyStart int
	BodyEnd   int
}

// Dedent strips the given indentation prefix from every line of s.
// Lines consisting solely of whitespace are normalized to empty lines.
func Dedent(s, indent string) string {
	if indent == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = strings.TrimPrefix(line, indent)
	}
	return strings.Join(lines, "\n")
}

// Reindent prepends the given indentation to every non-blank line of s.
// Blank lines are left empty so no trailing whitespace is introduced.
func Reindent(s, indent string) string {
	if indent == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
