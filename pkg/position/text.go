package position

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// OffsetOf returns the byte offset of p in text. A line past the end resolves
// to len(text); a character past the end of its line resolves to the line end.
func OffsetOf(text string, p Place) int {
	if p.Line < 0 {
		return 0
	}
	start := 0
	for i := 0; i < p.Line; i++ {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			return len(text)
		}
		start += nl + 1
	}

	col := 0
	for i, r := range text[start:] {
		if r == '\n' {
			return start + i
		}
		w := utf16.RuneLen(r)
		if w < 0 {
			w = 1
		}
		if col+w > p.Character {
			return start + i
		}
		col += w
	}
	return len(text)
}

// PlaceOf converts a byte offset into an editor position. Offsets outside the
// text are clamped.
func PlaceOf(text string, offset int) Place {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	head := text[:offset]
	line := strings.Count(head, "\n")
	lineStart := strings.LastIndexByte(head, '\n') + 1

	col := 0
	for rest := head[lineStart:]; len(rest) > 0; {
		r, size := utf8.DecodeRuneInString(rest)
		w := utf16.RuneLen(r)
		if w < 0 {
			w = 1
		}
		col += w
		rest = rest[size:]
	}
	return Place{Line: line, Character: col}
}

// ApplyChange applies one content change. A nil range replaces the whole text.
func ApplyChange(text string, rng *Range, newText string) string {
	if rng == nil {
		return newText
	}
	start := OffsetOf(text, rng.Start)
	end := OffsetOf(text, rng.End)
	if end < start {
		start, end = end, start
	}
	return text[:start] + newText + text[end:]
}
