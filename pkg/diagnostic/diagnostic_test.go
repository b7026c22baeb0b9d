package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oloveluck/snake-lsp/pkg/diagnostic"
	"github.com/oloveluck/snake-lsp/pkg/position"
)

func rng(sl, sc, el, ec int) position.Range {
	return position.Range{
		Start: position.Place{Line: sl, Character: sc},
		End:   position.Place{Line: el, Character: ec},
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		max      int
		messages []string
		ranges   []position.Range
	}{
		{
			name:     "no_uppercase",
			text:     "foo = bar(Baz)",
			max:      1000,
			messages: []string{},
			ranges:   []position.Range{},
		},
		{
			name:     "single_letter_is_fine",
			text:     "X = A",
			max:      1000,
			messages: []string{},
			ranges:   []position.Range{},
		},
		{
			name:     "two_words",
			text:     "FOO = 1\nbar = BAZ",
			max:      1000,
			messages: []string{"FOO is all uppercase.", "BAZ is all uppercase."},
			ranges:   []position.Range{rng(0, 0, 0, 3), rng(1, 6, 1, 9)},
		},
		{
			name:     "limited",
			text:     "AA BB CC DD",
			max:      2,
			messages: []string{"AA is all uppercase.", "BB is all uppercase."},
			ranges:   []position.Range{rng(0, 0, 0, 2), rng(0, 3, 0, 5)},
		},
		{
			name:     "zero_limit",
			text:     "AA BB",
			max:      0,
			messages: []string{},
			ranges:   []position.Range{},
		},
		{
			name:     "utf16_columns",
			text:     "😀 = ABC",
			max:      1000,
			messages: []string{"ABC is all uppercase."},
			ranges:   []position.Range{rng(0, 5, 0, 8)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := diagnostic.Generate(tt.text, diagnostic.Options{MaxProblems: tt.max})

			messages := make([]string, 0)
			ranges := make([]position.Range, 0)
			for _, d := range diags {
				messages = append(messages, d.Message)
				ranges = append(ranges, d.Range)
				assert.Equal(t, diagnostic.Warning, d.Severity)
				assert.Equal(t, diagnostic.Source, d.Source)
				assert.Empty(t, d.Related)
			}
			assert.Equal(t, tt.messages, messages)
			assert.Equal(t, tt.ranges, ranges)
		})
	}
}

func TestGenerateRelatedInformation(t *testing.T) {
	diags := diagnostic.Generate("x = TYPESCRIPT", diagnostic.Options{
		MaxProblems:        10,
		RelatedInformation: true,
		URI:                "file:///a.snake",
	})
	require.Len(t, diags, 1)

	want := rng(0, 4, 0, 14)
	assert.Equal(t, []diagnostic.Related{
		{URI: "file:///a.snake", Range: want, Message: "Spelling matters"},
		{URI: "file:///a.snake", Range: want, Message: "Particularly for names"},
	}, diags[0].Related)
	assert.Equal(t, position.NewRawPosition("TYPESCRIPT", 4), diags[0].Location)
}
