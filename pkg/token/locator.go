// Package token finds the identifier under an editor cursor.
//
// A line is split into alternating token and separator fragments. Every
// separator character is a fragment of its own, so a cursor resting on a
// separator yields that separator as a pseudo-token. Widths and columns are in
// UTF-16 code units to match editor positions.
package token

import (
	"strings"
	"unicode"
	"unicode/utf16"
)

// Token is the fragment covering a cursor column.
type Token struct {
	Name string
	// Start is the UTF-16 column at which the fragment begins.
	Start int
	// Offset is the distance from Start to the cursor, in UTF-16 code units.
	Offset int
}

// Length is the width of the token in UTF-16 code units.
func (t Token) Length() int {
	return Width(t.Name)
}

// Fragment is one piece of a split line.
type Fragment struct {
	Text      string
	Start     int
	Separator bool
}

// Width is the UTF-16 width of the fragment.
func (f Fragment) Width() int {
	return Width(f.Text)
}

// IsSeparator reports whether r ends an identifier.
func IsSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '(', ')', '=':
		return true
	}
	return unicode.IsSpace(r)
}

// Width counts the UTF-16 code units in s.
func Width(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Fragments splits line into tokens and single-character separators.
// Concatenating the fragment texts reproduces line.
func Fragments(line string) []Fragment {
	var (
		frags []Fragment
		col   int
		start = -1
		begin int
	)
	flush := func(end int) {
		if start < 0 {
			return
		}
		frags = append(frags, Fragment{Text: line[start:end], Start: begin})
		start = -1
	}
	for i, r := range line {
		if IsSeparator(r) {
			flush(i)
			frags = append(frags, Fragment{Text: string(r), Start: col, Separator: true})
		} else if start < 0 {
			start, begin = i, col
		}
		col += utf16.RuneLen(r)
	}
	flush(len(line))
	return frags
}

// Locate returns the fragment of line `line` in text that covers `column`.
// It reports false when the line does not exist or the column lies past the
// end of the line.
func Locate(text string, line, column int) (Token, bool) {
	if line < 0 || column < 0 {
		return Token{}, false
	}
	lines := strings.Split(text, "\n")
	if line >= len(lines) {
		return Token{}, false
	}
	for _, f := range Fragments(lines[line]) {
		if column >= f.Start && column < f.Start+f.Width() {
			return Token{Name: f.Text, Start: f.Start, Offset: column - f.Start}, true
		}
	}
	return Token{}, false
}
