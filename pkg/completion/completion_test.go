package completion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oloveluck/snake-lsp/pkg/completion"
)

func TestItems(t *testing.T) {
	got := completion.Items()
	assert.Equal(t, []completion.Item{
		{Label: "TypeScript", Kind: completion.KindText, Data: 1},
		{Label: "JavaScript", Kind: completion.KindText, Data: 2},
	}, got)

	got[0].Label = "changed"
	assert.Equal(t, "TypeScript", completion.Items()[0].Label)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   completion.Item
		want completion.Item
	}{
		{
			name: "typescript",
			in:   completion.Item{Label: "TypeScript", Kind: completion.KindText, Data: 1},
			want: completion.Item{Label: "TypeScript", Kind: completion.KindText, Data: 1, Detail: "TypeScript details", Documentation: "TypeScript documentation"},
		},
		{
			name: "javascript",
			in:   completion.Item{Label: "JavaScript", Kind: completion.KindText, Data: 2},
			want: completion.Item{Label: "JavaScript", Kind: completion.KindText, Data: 2, Detail: "JavaScript details", Documentation: "JavaScript documentation"},
		},
		{
			name: "unknown_is_unchanged",
			in:   completion.Item{Label: "Go", Data: 3},
			want: completion.Item{Label: "Go", Data: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, completion.Resolve(tt.in))
		})
	}
}
