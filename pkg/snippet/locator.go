package snippet

import "strings"

const fenceMarker = "```"

// Locate scans text for fenced code blocks tagged with the given language
// and returns them in document order. A block opens with a line of optional
// spaces followed by the fence marker and the language tag, and closes with
// a line carrying identical indentation and a bare fence marker. The body
// may contain fence-like substrings as long as they do not form a matching
// closing line on their own. A text with no blocks returns an empty slice.
func Locate(text, lang string) []Region {
	var regions []Region

	offset := 0
	rest := text

	for {
		region, advance, ok := nextRegion(rest, lang)
		if !ok {
			return regions
		}

		region.Start += offset
		region.End += offset
		region.BodyStart += offset
		region.BodyEnd += offset
		regions = append(regions, region)

		offset += advance
		rest = text[offset:]
	}
}

// nextRegion finds the first fenced block in text, returning the region,
// the offset to resume scanning from, and whether a block was found.
func nextRegion(text, lang string) (Region, int, bool) {
	lineStart := 0

	for lineStart <= len(text) {
		lineEnd := lineLen(text, lineStart)
		line := text[lineStart : lineStart+lineEnd]

		indent, ok := matchOpening(line, lang)
		if ok {
			// The body starts after the opening line's newline.
			bodyStart := lineStart + lineEnd + 1
			if bodyStart > len(text) {
				return Region{}, 0, false
			}

			if region, ok := closeRegion(text, lineStart, bodyStart, indent); ok {
				return region, region.End, true
			}
			// Unterminated block: the opening line is plain text.
		}

		lineStart += lineEnd + 1
	}

	return Region{}, 0, false
}

// closeRegion scans forward from bodyStart for the closing fence line.
func closeRegion(text string, start, bodyStart int, indent string) (Region, bool) {
	lineStart := bodyStart

	for lineStart <= len(text) {
		lineEnd := lineLen(text, lineStart)
		line := text[lineStart : lineStart+lineEnd]

		if matchClosing(line, indent) {
			bodyEnd := lineStart
			return Region{
				Code:      Dedent(text[bodyStart:bodyEnd], indent),
				Indent:    indent,
				Start:     start,
				End:       lineStart + lineEnd,
				BodyStart: bodyStart,
				BodyEnd:   bodyEnd,
			}, true
		}

		lineStart += lineEnd + 1
	}

	return Region{}, false
}

// matchOpening reports whether line opens a fenced block for lang,
// returning the indentation prefix.
func matchOpening(line, lang string) (string, bool) {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	if !strings.HasPrefix(trimmed, fenceMarker) {
		return "", false
	}
	tag := strings.TrimLeft(trimmed[len(fenceMarker):], " \t")
	if tag != lang {
		return "", false
	}
	return indent, true
}

// matchClosing reports whether line closes a block opened at the given
// indentation: the identical prefix, a bare marker, optional trailing
// whitespace, nothing else.
func matchClosing(line, indent string) bool {
	if !strings.HasPrefix(line, indent) {
		return false
	}
	rest := line[len(indent):]
	if !strings.HasPrefix(rest, fenceMarker) {
		return false
	}
	return strings.TrimSpace(rest[len(fenceMarker):]) == ""
}

// lineLen returns the length of the line starting at offset, excluding the
// trailing newline. The final line may be unterminated.
func lineLen(text string, start int) int {
	if idx := strings.IndexByte(text[start:], '\n'); idx >= 0 {
		return idx
	}
	return len(text) - start
}

// Replace rebuilds text with each located region's body replaced by the
// output of fn, reindented to the region's original indentation. The fence
// lines and all surrounding text are preserved byte-for-byte. If fn returns
// an error the replacement aborts and the error is propagated.
func Replace(text, lang string, fn func(Region) (string, error)) (string, error) {
	regions := Locate(text, lang)
	if len(regions) == 0 {
		return text, nil
	}

	var sb strings.Builder
	sb.Grow(len(text))

	prev := 0
	for _, region := range regions {
		code, err := fn(region)
		if err != nil {
			return "", err
		}

		sb.WriteString(text[prev:region.BodyStart])
		sb.WriteString(Reindent(code, region.Indent))
		prev = region.BodyEnd
	}
	sb.WriteString(text[prev:])

	return sb.String(), nil
}
