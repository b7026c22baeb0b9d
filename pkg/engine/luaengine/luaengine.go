// Package luaengine runs the analysis engine as a Lua script inside the server.
//
// The script defines three globals:
//
//	parse_check(text)                       -> boolean
//	find_definition(sl, sc, el, ec, text)   -> { {...}, {tag, sl, sc, el, ec} }
//	find_all_uses(sl, sc, el, ec, text)     -> { {tag, sl, sc, el, ec}, ... }
//
// Raising a Lua error is how the script reports that it cannot answer.
package luaengine

import (
	"context"
	"math"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"
	"gitlab.com/tozd/go/errors"

	"github.com/oloveluck/snake-lsp/pkg/engine"
)

const (
	fnParseCheck     = "parse_check"
	fnFindDefinition = "find_definition"
	fnFindAllUses    = "find_all_uses"
)

var _ engine.Engine = (*Engine)(nil)
var _ engine.Reloader = (*Engine)(nil)

// Engine owns a single Lua state. gopher-lua states are not goroutine safe so
// every call holds mu for its whole duration.
type Engine struct {
	fs   afero.Fs
	path string

	mu sync.Mutex
	L  *lua.LState
}

// New loads the script at path from fs.
func New(ctx context.Context, fs afero.Fs, path string) (*Engine, error) {
	e := &Engine{fs: fs, path: path}
	if err := e.Reload(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Reload re-reads the script and swaps in a fresh state. The previous state is
// kept when the new script fails to load.
func (e *Engine) Reload(ctx context.Context) error {
	src, err := afero.ReadFile(e.fs, e.path)
	if err != nil {
		return errors.Errorf("reading lua engine script %q: %w", e.path, err)
	}

	L := newState()
	if err := L.DoString(string(src)); err != nil {
		L.Close()
		return errors.Errorf("loading lua engine script %q: %w", e.path, err)
	}
	for _, fn := range []string{fnParseCheck, fnFindDefinition, fnFindAllUses} {
		if L.GetGlobal(fn).Type() != lua.LTFunction {
			L.Close()
			return errors.Errorf("lua engine script %q does not define %s", e.path, fn)
		}
	}

	e.mu.Lock()
	old := e.L
	e.L = L
	e.mu.Unlock()

	if old != nil {
		old.Close()
	}

	zerolog.Ctx(ctx).Info().Str("script", e.path).Msg("lua engine loaded")
	return nil
}

func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	return L
}

// Close releases the Lua state.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
	return nil
}

func (e *Engine) ParseCheck(ctx context.Context, text string) (bool, error) {
	ret, err := e.call(ctx, fnParseCheck, lua.LString(text))
	if err != nil {
		return false, err
	}
	return lua.LVAsBool(ret), nil
}

func (e *Engine) FindDefinition(ctx context.Context, span engine.Span, text string) (engine.Reply, error) {
	ret, err := e.call(ctx, fnFindDefinition, spanArgs(span, text)...)
	if err != nil {
		return nil, err
	}
	return engine.Reply(records(ret)), nil
}

func (e *Engine) FindAllUses(ctx context.Context, span engine.Span, text string) ([]engine.Fields, error) {
	ret, err := e.call(ctx, fnFindAllUses, spanArgs(span, text)...)
	if err != nil {
		return nil, err
	}
	return records(ret), nil
}

func (e *Engine) call(ctx context.Context, fn string, args ...lua.LValue) (ret lua.LValue, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.L == nil {
		return nil, engine.ErrNotLoaded
	}

	L := e.L
	L.SetContext(ctx)
	defer L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("lua %s panicked: %v", fn, r)
		}
	}()

	if err := L.CallByParam(lua.P{Fn: L.GetGlobal(fn), NRet: 1, Protect: true}, args...); err != nil {
		if ctx.Err() != nil {
			return nil, errors.Errorf("lua %s: %w", fn, ctx.Err())
		}
		return nil, errors.Errorf("lua %s: %w", fn, err)
	}
	ret = L.Get(-1)
	L.Pop(1)
	return ret, nil
}

func spanArgs(span engine.Span, text string) []lua.LValue {
	return []lua.LValue{
		lua.LNumber(span.StartLine),
		lua.LNumber(span.StartCol),
		lua.LNumber(span.EndLine),
		lua.LNumber(span.EndCol),
		lua.LString(text),
	}
}

// records turns a Lua array of arrays into raw engine records. Anything that
// is not an array of integers becomes an empty record.
func records(v lua.LValue) []engine.Fields {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil
	}
	out := make([]engine.Fields, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		out = append(out, record(tbl.RawGetInt(i)))
	}
	return out
}

func record(v lua.LValue) engine.Fields {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return engine.Fields{}
	}
	f := make(engine.Fields, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		n, ok := tbl.RawGetInt(i).(lua.LNumber)
		if !ok || float64(n) != math.Trunc(float64(n)) {
			return engine.Fields{}
		}
		f = append(f, int(n))
	}
	return f
}
