package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oloveluck/snake-lsp/pkg/token"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		line   int
		column int
		want   token.Token
		found  bool
	}{
		{
			name:   "start_of_identifier",
			text:   "x = foo(y)",
			line:   0,
			column: 4,
			want:   token.Token{Name: "foo", Start: 4, Offset: 0},
			found:  true,
		},
		{
			name:   "inside_identifier",
			text:   "foo = bar",
			line:   0,
			column: 7,
			want:   token.Token{Name: "bar", Start: 6, Offset: 1},
			found:  true,
		},
		{
			name:   "last_character",
			text:   "foo = bar",
			line:   0,
			column: 8,
			want:   token.Token{Name: "bar", Start: 6, Offset: 2},
			found:  true,
		},
		{
			name:   "second_line",
			text:   "a = 1\nfoo = bar",
			line:   1,
			column: 1,
			want:   token.Token{Name: "foo", Start: 0, Offset: 1},
			found:  true,
		},
		{
			name:   "argument_inside_parens",
			text:   "x = foo(y)",
			line:   0,
			column: 8,
			want:   token.Token{Name: "y", Start: 8, Offset: 0},
			found:  true,
		},
		{
			name:   "on_separator",
			text:   "x = foo(y)",
			line:   0,
			column: 7,
			want:   token.Token{Name: "(", Start: 7, Offset: 0},
			found:  true,
		},
		{
			name:   "on_space",
			text:   "foo = bar",
			line:   0,
			column: 3,
			want:   token.Token{Name: " ", Start: 3, Offset: 0},
			found:  true,
		},
		{
			name:   "carriage_return_is_separator",
			text:   "foo\r\nbar",
			line:   0,
			column: 2,
			want:   token.Token{Name: "foo", Start: 0, Offset: 2},
			found:  true,
		},
		{
			name:   "utf16_columns",
			text:   "é = 😀x",
			line:   0,
			column: 5,
			want:   token.Token{Name: "😀x", Start: 4, Offset: 1},
			found:  true,
		},
		{name: "empty_line", text: "foo\n\nbar", line: 1, column: 0},
		{name: "past_end_of_line", text: "foo", line: 0, column: 3},
		{name: "line_out_of_range", text: "foo", line: 1, column: 0},
		{name: "negative_line", text: "foo", line: -1, column: 0},
		{name: "negative_column", text: "foo", line: 0, column: -1},
		{name: "empty_text", text: "", line: 0, column: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := token.Locate(tt.text, tt.line, tt.column)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocateTokenBoundary(t *testing.T) {
	lines := []string{
		"x = foo(y)",
		"let  total = add(a, b)\t# done",
		"((=))",
		"αβγ = δ(ε)",
		"   ",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			for col := 0; col < token.Width(line); col++ {
				tok, ok := token.Locate(line, 0, col)
				require.True(t, ok, "column %d", col)
				assert.GreaterOrEqual(t, tok.Offset, 0)
				assert.Less(t, tok.Offset, tok.Length())
				assert.Equal(t, col, tok.Start+tok.Offset)
			}
		})
	}
}

func TestFragments(t *testing.T) {
	line := "x = foo(y, z)"
	frags := token.Fragments(line)

	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.Text)
		if f.Separator {
			assert.Equal(t, 1, len([]rune(f.Text)), "separator %q", f.Text)
		}
	}
	assert.Equal(t, line, b.String())

	var names []string
	for _, f := range frags {
		if !f.Separator {
			names = append(names, f.Text)
		}
	}
	assert.Equal(t, []string{"x", "foo", "y,", "z"}, names)
}

func TestFragmentsAdjacentSeparators(t *testing.T) {
	frags := token.Fragments("a  (b)")
	require.Len(t, frags, 6)
	assert.Equal(t, token.Fragment{Text: " ", Start: 1, Separator: true}, frags[1])
	assert.Equal(t, token.Fragment{Text: " ", Start: 2, Separator: true}, frags[2])
	assert.Equal(t, token.Fragment{Text: "b", Start: 4}, frags[4])
}
