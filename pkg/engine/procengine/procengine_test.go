package procengine_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/oloveluck/snake-lsp/pkg/engine"
	"github.com/oloveluck/snake-lsp/pkg/engine/procengine"
)

// The test binary doubles as the engine program when this is set.
const helperEnv = "SNAKE_PROCENGINE_HELPER"

func TestMain(m *testing.M) {
	if os.Getenv(helperEnv) == "1" {
		os.Exit(helper())
	}
	os.Exit(m.Run())
}

func helper() int {
	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		return 2
	}
	req := string(in)
	text := gjson.Get(req, "text").String()
	span := gjson.Get(req, "span").Array()

	switch {
	case text == "crash":
		fmt.Fprint(os.Stderr, "engine exploded")
		return 3
	case text == "garbage":
		fmt.Print("not json")
		return 0
	case text == "refuse":
		fmt.Print(`{"error":"does not parse"}`)
		return 0
	}

	switch gjson.Get(req, "op").String() {
	case procengine.OpParseCheck:
		fmt.Printf(`{"result":%t}`, !strings.Contains(text, "!"))
	case procengine.OpFindDefinition:
		fmt.Printf(`{"result":[[1],[0,1,0,1,%d]]}`, span[3].Int()-span[1].Int())
	case procengine.OpFindAllUses:
		fmt.Printf(`{"result":[[0,%d,%d,%d,%d],[0,2,1],"x",[0,1.5,0,1,2]]}`,
			span[0].Int(), span[1].Int(), span[2].Int(), span[3].Int())
	default:
		fmt.Print(`{"error":"unknown op"}`)
	}
	return 0
}

func newEngine(t *testing.T) *procengine.Engine {
	t.Helper()
	eng, err := procengine.New(procengine.Options{
		Command: []string{os.Args[0], "-test.run=^$"},
		Env:     append(os.Environ(), helperEnv+"=1"),
	})
	require.NoError(t, err)
	return eng
}

func TestRequest(t *testing.T) {
	req, err := procengine.Request(procengine.OpFindAllUses, &engine.Span{StartLine: 1, StartCol: 4, EndLine: 1, EndCol: 7}, "x = \"foo\"\n")
	require.NoError(t, err)

	assert.Equal(t, "find-all-uses", gjson.Get(req, "op").String())
	assert.Equal(t, `[1,4,1,7]`, gjson.Get(req, "span").Raw)
	assert.Equal(t, "x = \"foo\"\n", gjson.Get(req, "text").String())

	req, err = procengine.Request(procengine.OpParseCheck, nil, "x")
	require.NoError(t, err)
	assert.False(t, gjson.Get(req, "span").Exists())
}

func TestParseCheck(t *testing.T) {
	eng := newEngine(t)
	ctx := context.Background()

	ok, err := eng.ParseCheck(ctx, "foo = bar")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = eng.ParseCheck(ctx, "foo = !")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindDefinition(t *testing.T) {
	eng := newEngine(t)

	reply, err := eng.FindDefinition(context.Background(), engine.Span{StartLine: 3, StartCol: 2, EndLine: 3, EndCol: 5}, "x")
	require.NoError(t, err)

	loc, ok := reply.Definition()
	require.True(t, ok)
	assert.Equal(t, engine.Location{StartLine: 1, EndLine: 1, EndCol: 3}, loc)
}

func TestFindAllUses(t *testing.T) {
	eng := newEngine(t)

	uses, err := eng.FindAllUses(context.Background(), engine.Span{StartLine: 2, StartCol: 0, EndLine: 2, EndCol: 3}, "x")
	require.NoError(t, err)
	assert.Equal(t, []engine.Fields{
		{0, 2, 0, 2, 3},
		{0, 2, 1},
		{},
		{},
	}, uses)
}

func TestFailures(t *testing.T) {
	eng := newEngine(t)
	ctx := context.Background()

	tests := []struct {
		text string
		msg  string
	}{
		{text: "crash", msg: "engine exploded"},
		{text: "garbage", msg: "not json"},
		{text: "refuse", msg: "does not parse"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := eng.FindAllUses(ctx, engine.Span{}, tt.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestCancelledContext(t *testing.T) {
	eng := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.ParseCheck(ctx, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRejectsEmptyCommand(t *testing.T) {
	_, err := procengine.New(procengine.Options{})
	require.Error(t, err)
}
