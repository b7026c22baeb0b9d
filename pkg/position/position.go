package position

import (
	"fmt"
)

// Place is a zero based editor position. Character counts UTF-16 code units.
type Place struct {
	Line      int
	Character int
}

func (p Place) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Before reports whether p sorts strictly before o.
func (p Place) Before(o Place) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Character < o.Character
}

// Range is half open: End is the first position not covered.
type Range struct {
	Start Place
	End   Place
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// RawPosition represents a byte span in the source text
type RawPosition struct {
	// Offset is the byte offset in the source text
	Offset int
	// Text is the actual text at this position
	Text string
}

func NewRawPosition(text string, offset int) RawPosition {
	return RawPosition{Text: text, Offset: offset}
}

// NewRawPositionFromPlace resolves an editor position inside fileText.
func NewRawPositionFromPlace(p Place, text, fileText string) RawPosition {
	return RawPosition{Text: text, Offset: OffsetOf(fileText, p)}
}

// ID returns a unique identifier for this position based on offset and text
func (p RawPosition) ID() string {
	return fmt.Sprintf("%s@%d", p.Text, p.Offset)
}

// Length is the length of the text in bytes
func (p RawPosition) Length() int {
	return len(p.Text)
}

func (p RawPosition) End() RawPosition {
	return RawPosition{Offset: p.Offset + p.Length()}
}

// GetRange converts the byte span into an editor range.
func (p RawPosition) GetRange(fileText string) Range {
	return Range{
		Start: PlaceOf(fileText, p.Offset),
		End:   PlaceOf(fileText, p.End().Offset),
	}
}

func (p RawPosition) String() string {
	return p.ID()
}
