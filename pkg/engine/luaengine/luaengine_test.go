package luaengine_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oloveluck/snake-lsp/pkg/engine"
	"github.com/oloveluck/snake-lsp/pkg/engine/luaengine"
)

const wordEngine = `
local function lines(text)
  local out = {}
  for l in (text .. "\n"):gmatch("(.-)\n") do out[#out + 1] = l end
  return out
end

local function word_at(text, sl, sc, ec)
  local l = lines(text)[sl]
  if l == nil then error("no line " .. sl) end
  return l:sub(sc + 1, ec)
end

function parse_check(text)
  local depth = 0
  for c in text:gmatch("[()]") do
    if c == "(" then depth = depth + 1 else depth = depth - 1 end
    if depth < 0 then return false end
  end
  return depth == 0
end

function find_definition(sl, sc, el, ec, text)
  local name = word_at(text, sl, sc, ec)
  for i, l in ipairs(lines(text)) do
    local s = l:match("^%s*()" .. name .. "%s*=")
    if s then return { { 1 }, { 0, i, s - 1, i, s - 1 + #name } } end
  end
  error("undefined " .. name)
end

function find_all_uses(sl, sc, el, ec, text)
  local name = word_at(text, sl, sc, ec)
  local out = {}
  for i, l in ipairs(lines(text)) do
    for s, w, e in l:gmatch("()([%w_]+)()") do
      if w == name then out[#out + 1] = { 0, i, s - 1, i, e - 1 } end
    end
  end
  return out
end
`

const source = "foo = 1\nbar = foo(foo)"

func setup(t *testing.T, script string) (context.Context, afero.Fs, *luaengine.Engine) {
	t.Helper()
	ctx := zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/engine/snake.lua", []byte(script), 0o644))

	eng, err := luaengine.New(ctx, fs, "/engine/snake.lua")
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })
	return ctx, fs, eng
}

func TestParseCheck(t *testing.T) {
	ctx, _, eng := setup(t, wordEngine)

	ok, err := eng.ParseCheck(ctx, source)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = eng.ParseCheck(ctx, "bar = foo(foo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindDefinition(t *testing.T) {
	ctx, _, eng := setup(t, wordEngine)

	reply, err := eng.FindDefinition(ctx, engine.Span{StartLine: 2, StartCol: 6, EndLine: 2, EndCol: 9}, source)
	require.NoError(t, err)

	loc, ok := reply.Definition()
	require.True(t, ok)
	assert.Equal(t, engine.Location{Tag: 0, StartLine: 1, StartCol: 0, EndLine: 1, EndCol: 3}, loc)
}

func TestFindDefinitionRaises(t *testing.T) {
	ctx, _, eng := setup(t, wordEngine)

	_, err := eng.FindDefinition(ctx, engine.Span{StartLine: 1, StartCol: 6, EndLine: 1, EndCol: 7}, source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined 1")
}

func TestFindAllUses(t *testing.T) {
	ctx, _, eng := setup(t, wordEngine)

	uses, err := eng.FindAllUses(ctx, engine.Span{StartLine: 1, StartCol: 0, EndLine: 1, EndCol: 3}, source)
	require.NoError(t, err)
	assert.Equal(t, []engine.Fields{
		{0, 1, 0, 1, 3},
		{0, 2, 6, 2, 9},
		{0, 2, 10, 2, 13},
	}, uses)
}

func TestMalformedRecordsAreEmptied(t *testing.T) {
	ctx, _, eng := setup(t, `
function parse_check(text) return true end
function find_definition(sl, sc, el, ec, text) return { { 1 }, { 0, 1, "x", 1, 2 } } end
function find_all_uses(sl, sc, el, ec, text) return { { 0, 1, 0, 1, 2 }, "junk", { 0, 1.5, 0, 1, 2 } } end
`)

	reply, err := eng.FindDefinition(ctx, engine.Span{}, "")
	require.NoError(t, err)
	_, ok := reply.Definition()
	assert.False(t, ok)

	uses, err := eng.FindAllUses(ctx, engine.Span{}, "")
	require.NoError(t, err)
	assert.Equal(t, []engine.Fields{{0, 1, 0, 1, 2}, {}, {}}, uses)
}

func TestContextInterruptsScript(t *testing.T) {
	ctx, _, eng := setup(t, `
function parse_check(text) while true do end end
function find_definition() return {} end
function find_all_uses() return {} end
`)

	ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	_, err := eng.ParseCheck(ctx, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReload(t *testing.T) {
	ctx, fs, eng := setup(t, wordEngine)

	require.NoError(t, afero.WriteFile(fs, "/engine/snake.lua", []byte(`
function parse_check(text) return false end
function find_definition() error("nope") end
function find_all_uses() return {} end
`), 0o644))
	require.NoError(t, eng.Reload(ctx))

	ok, err := eng.ParseCheck(ctx, source)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReloadKeepsPreviousOnFailure(t *testing.T) {
	ctx, fs, eng := setup(t, wordEngine)

	require.NoError(t, afero.WriteFile(fs, "/engine/snake.lua", []byte(`function parse_check(`), 0o644))
	require.Error(t, eng.Reload(ctx))

	ok, err := eng.ParseCheck(ctx, source)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewRequiresAllFunctions(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "snake.lua", []byte(`function parse_check(text) return true end`), 0o644))

	_, err := luaengine.New(context.Background(), fs, "snake.lua")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "find_definition")

	_, err = luaengine.New(context.Background(), fs, "missing.lua")
	require.Error(t, err)
}

func TestClosedEngine(t *testing.T) {
	ctx, _, eng := setup(t, wordEngine)
	require.NoError(t, eng.Close())

	_, err := eng.ParseCheck(ctx, source)
	assert.ErrorIs(t, err, engine.ErrNotLoaded)
}
