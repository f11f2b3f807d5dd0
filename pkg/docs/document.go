// Package docs models the documentation pages whose embedded examples are
// verified: loading, flat-directory discovery, and the derived attributes
// the checks key on (short name, documented rule code, example span).
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the file extension documentation pages must carry.
const Extension = ".md"

// exampleHeading marks the start of a page's example section.
const exampleHeading = "## Example"

// fenceMarker terminates the example span.
const fenceMarker = "```"

// Document is one documentation page. Content is read once at load time and
// never mutated; everything else is derived per check.
type Document struct {
	// Path is the on-disk location of the page.
	Path string

	// ShortName is the filename up to the first dot. For generated rule
	// pages it doubles as the rule's human-readable name and is the key
	// used by the exemption sets.
	ShortName string

	// Content is the raw UTF-8 page text.
	Content []byte

	// Generated marks pages produced from rule metadata, which carry
	// stricter structural requirements than static pages.
	Generated bool
}

// Load reads the page at path.
func Load(path string, generated bool) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	return &Document{
		Path:      path,
		ShortName: shortName(path),
		Content:   content,
		Generated: generated,
	}, nil
}

// shortName derives the exemption-set key from a file path.
func shortName(path string) string {
	name := filepath.Base(path)
	if idx := strings.IndexByte(name, '.'); idx >= 0 {
		name = name[:idx]
	}
	return name
}

// RuleCode extracts the documented rule code from the parenthesized token in
// the page's first line, e.g. "# missing-trailing-comma (COM812)" yields
// "COM812". Pages without such a token report false and are skipped by the
// violation checks.
func (d *Document) RuleCode() (string, bool) {
	firstLine := string(d.Content)
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = firstLine[:idx]
	}

	open := strings.IndexByte(firstLine, '(')
	if open < 0 {
		return "", false
	}
	closing := strings.IndexByte(firstLine[open+1:], ')')
	if closing < 0 {
		return "", false
	}
	return firstLine[open+1 : open+1+closing], true
}

// ExampleSpan returns the slice of the page between the first example
// heading and the last fence terminator, inclusive. Pages without an
// example heading report false; the checks treat them as having no regions.
func (d *Document) ExampleSpan() (string, bool) {
	content := string(d.Content)

	start := strings.Index(content, exampleHeading)
	if start < 0 {
		return "", false
	}

	span := content[start:]
	if end := strings.LastIndex(span, fenceMarker); end >= 0 {
		span = span[:end] + fenceMarker
	}
	return span, true
}
