package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oloveluck/snake-lsp/pkg/engine"
	"github.com/oloveluck/snake-lsp/pkg/position"
	"github.com/oloveluck/snake-lsp/pkg/token"
)

func TestToEngineSpan(t *testing.T) {
	tests := []struct {
		name   string
		place  position.Place
		offset int
		length int
		want   engine.Span
	}{
		{
			name:   "cursor_inside_token",
			place:  position.Place{Line: 0, Character: 7},
			offset: 1,
			length: 3,
			want:   engine.Span{StartLine: 1, StartCol: 6, EndLine: 1, EndCol: 9},
		},
		{
			name:   "cursor_at_token_start",
			place:  position.Place{Line: 0, Character: 6},
			offset: 0,
			length: 3,
			want:   engine.Span{StartLine: 1, StartCol: 6, EndLine: 1, EndCol: 9},
		},
		{
			name:   "later_line",
			place:  position.Place{Line: 4, Character: 2},
			offset: 2,
			length: 5,
			want:   engine.Span{StartLine: 5, StartCol: 0, EndLine: 5, EndCol: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, position.ToEngineSpan(tt.place, tt.offset, tt.length))
		})
	}
}

func TestToEditorRange(t *testing.T) {
	got := position.ToEditorRange(engine.Location{Tag: 9, StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 5})
	assert.Equal(t, position.Range{
		Start: position.Place{Line: 0, Character: 2},
		End:   position.Place{Line: 0, Character: 5},
	}, got)
}

func TestRoundTrip(t *testing.T) {
	text := "x = 1\nfoo = bar(x)\n  αβ = 😀z"

	for line, content := range []string{"x = 1", "foo = bar(x)", "  αβ = 😀z"} {
		for col := 0; col < token.Width(content); col++ {
			tok, ok := token.Locate(text, line, col)
			require.True(t, ok)

			p := position.Place{Line: line, Character: col}
			span := position.ToEngineSpan(p, tok.Offset, tok.Length())
			got := position.ToEditorRange(position.SpanLocation(span, 0))

			assert.Equal(t, position.Range{
				Start: position.Place{Line: line, Character: tok.Start},
				End:   position.Place{Line: line, Character: tok.Start + tok.Length()},
			}, got, "line %d col %d", line, col)
			assert.Equal(t, tok.Length(), span.EndCol-span.StartCol)
		}
	}
}

func TestOffsetAndPlace(t *testing.T) {
	text := "ab\nαβ😀c\n\nlast"

	tests := []struct {
		name   string
		place  position.Place
		offset int
	}{
		{name: "origin", place: position.Place{Line: 0, Character: 0}, offset: 0},
		{name: "end_of_first_line", place: position.Place{Line: 0, Character: 2}, offset: 2},
		{name: "after_two_byte_rune", place: position.Place{Line: 1, Character: 1}, offset: 5},
		{name: "after_surrogate_pair", place: position.Place{Line: 1, Character: 4}, offset: 11},
		{name: "empty_line", place: position.Place{Line: 2, Character: 0}, offset: 13},
		{name: "last_line", place: position.Place{Line: 3, Character: 2}, offset: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.offset, position.OffsetOf(text, tt.place))
			assert.Equal(t, tt.place, position.PlaceOf(text, tt.offset))
		})
	}
}

func TestOffsetOfClamps(t *testing.T) {
	text := "ab\ncd"
	assert.Equal(t, 2, position.OffsetOf(text, position.Place{Line: 0, Character: 10}))
	assert.Equal(t, len(text), position.OffsetOf(text, position.Place{Line: 7, Character: 0}))
	assert.Equal(t, 0, position.OffsetOf(text, position.Place{Line: -1, Character: 3}))
	assert.Equal(t, position.Place{Line: 1, Character: 2}, position.PlaceOf(text, 99))
}

func TestApplyChange(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		rng     *position.Range
		newText string
		want    string
	}{
		{
			name:    "full_replacement",
			text:    "old",
			newText: "new text",
			want:    "new text",
		},
		{
			name: "insert",
			text: "foo = bar",
			rng: &position.Range{
				Start: position.Place{Line: 0, Character: 3},
				End:   position.Place{Line: 0, Character: 3},
			},
			newText: "d",
			want:    "food = bar",
		},
		{
			name: "replace_across_lines",
			text: "a = 1\nb = 2\nc = 3",
			rng: &position.Range{
				Start: position.Place{Line: 0, Character: 4},
				End:   position.Place{Line: 2, Character: 1},
			},
			newText: "9\nz",
			want:    "a = 9\nz = 3",
		},
		{
			name: "delete_after_emoji",
			text: "😀ab",
			rng: &position.Range{
				Start: position.Place{Line: 0, Character: 2},
				End:   position.Place{Line: 0, Character: 3},
			},
			want: "😀b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, position.ApplyChange(tt.text, tt.rng, tt.newText))
		})
	}
}

func TestRawPositionRange(t *testing.T) {
	text := "x\n  HELLO there"
	pos := position.NewRawPosition("HELLO", 4)
	assert.Equal(t, position.Range{
		Start: position.Place{Line: 1, Character: 2},
		End:   position.Place{Line: 1, Character: 7},
	}, pos.GetRange(text))
	assert.Equal(t, pos, position.NewRawPositionFromPlace(position.Place{Line: 1, Character: 2}, "HELLO", text))
	assert.Equal(t, "HELLO@4", pos.ID())
}
