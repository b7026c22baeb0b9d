package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/oloveluck/snake-lsp/pkg/settings"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    settings.Settings
		wantErr bool
	}{
		{name: "nil", raw: nil, want: settings.Default()},
		{name: "json_number", raw: map[string]any{"maxNumberOfProblems": float64(5)}, want: settings.Settings{MaxNumberOfProblems: 5}},
		{name: "string_number", raw: map[string]any{"maxNumberOfProblems": "7"}, want: settings.Settings{MaxNumberOfProblems: 7}},
		{name: "missing_key", raw: map[string]any{"other": true}, want: settings.Default()},
		{name: "wrong_shape", raw: map[string]any{"maxNumberOfProblems": map[string]any{"n": 1}}, want: settings.Default(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := settings.Decode(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetGlobalFrom(t *testing.T) {
	s := settings.NewStore()
	assert.Equal(t, 1000, s.Global().MaxNumberOfProblems)

	require.NoError(t, s.SetGlobalFrom(map[string]any{
		settings.Section: map[string]any{"maxNumberOfProblems": float64(3)},
	}))
	assert.Equal(t, 3, s.Global().MaxNumberOfProblems)

	require.NoError(t, s.SetGlobalFrom(map[string]any{}))
	assert.Equal(t, settings.Default(), s.Global())

	require.NoError(t, s.SetGlobalFrom(nil))
	assert.Equal(t, settings.Default(), s.Global())
}

func TestForDocument(t *testing.T) {
	ctx := context.Background()
	s := settings.NewStore()

	calls := 0
	fetch := func(_ context.Context, uri string) (any, error) {
		calls++
		assert.Equal(t, "file:///a.snake", uri)
		return map[string]any{"maxNumberOfProblems": float64(calls)}, nil
	}

	assert.Equal(t, 1, s.ForDocument(ctx, "file:///a.snake", fetch).MaxNumberOfProblems)
	assert.Equal(t, 1, s.ForDocument(ctx, "file:///a.snake", fetch).MaxNumberOfProblems)
	assert.Equal(t, 1, calls)

	s.Forget("file:///a.snake")
	assert.Equal(t, 2, s.ForDocument(ctx, "file:///a.snake", fetch).MaxNumberOfProblems)

	s.Reset()
	assert.Equal(t, 3, s.ForDocument(ctx, "file:///a.snake", fetch).MaxNumberOfProblems)
}

func TestForDocumentWithoutFetcher(t *testing.T) {
	s := settings.NewStore()
	require.NoError(t, s.SetGlobalFrom(map[string]any{
		settings.Section: map[string]any{"maxNumberOfProblems": float64(9)},
	}))
	assert.Equal(t, 9, s.ForDocument(context.Background(), "file:///a.snake", nil).MaxNumberOfProblems)
}

func TestForDocumentFetchFailure(t *testing.T) {
	s := settings.NewStore()
	calls := 0
	fetch := func(context.Context, string) (any, error) {
		calls++
		return nil, errors.New("client went away")
	}

	assert.Equal(t, settings.Default(), s.ForDocument(context.Background(), "file:///a.snake", fetch))
	assert.Equal(t, settings.Default(), s.ForDocument(context.Background(), "file:///a.snake", fetch))
	assert.Equal(t, 2, calls)
}
