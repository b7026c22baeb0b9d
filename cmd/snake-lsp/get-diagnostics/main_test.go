package get_diagnostics

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func setup(t *testing.T, text string) *Handler {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/main.snake", []byte(text), 0o644))
	return &Handler{fs: fs, maxProblems: 1000, format: "text"}
}

func TestTextFormat(t *testing.T) {
	h := setup(t, "foo = BAR\nQUX = 1")

	var out bytes.Buffer
	require.NoError(t, h.Run(&out, "/src/main.snake"))
	assert.Equal(t,
		"/src/main.snake:1:7: warning: BAR is all uppercase.\n"+
			"/src/main.snake:2:1: warning: QUX is all uppercase.\n",
		out.String())
}

func TestJSONFormatRespectsMaxProblems(t *testing.T) {
	h := setup(t, "AA BB CC")
	h.format = "json"
	h.maxProblems = 2

	var out bytes.Buffer
	require.NoError(t, h.Run(&out, "/src/main.snake"))

	res := gjson.Parse(out.String())
	require.True(t, res.IsArray())
	assert.Len(t, res.Array(), 2)
	assert.Equal(t, "BB is all uppercase.", res.Get("1.message").String())
	assert.Equal(t, "ex", res.Get("0.source").String())
}

func TestErrors(t *testing.T) {
	h := setup(t, "")
	assert.Error(t, h.Run(&bytes.Buffer{}, "/src/missing.snake"))

	h.format = "xml"
	assert.ErrorContains(t, h.Run(&bytes.Buffer{}, "/src/main.snake"), "unknown format")
}
