// Package procengine runs the analysis engine as an external program.
//
// Every call starts the program once, writes one JSON request to its stdin and
// reads one JSON reply from its stdout:
//
//	-> {"op":"find-all-uses","span":[1,4,1,7],"text":"..."}
//	<- {"result":[[0,1,4,1,7],[0,3,2,3,5]]}
//	<- {"error":"does not parse"}
//
// A reply carrying "error", unreadable output or a non-zero exit status all
// count as the call failing.
package procengine

import (
	"bytes"
	"context"
	"math"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gitlab.com/tozd/go/errors"

	"github.com/oloveluck/snake-lsp/pkg/engine"
)

const (
	OpParseCheck     = "parse-check"
	OpFindDefinition = "find-definition"
	OpFindAllUses    = "find-all-uses"
)

var _ engine.Engine = (*Engine)(nil)

type Options struct {
	// Command is the program and its arguments.
	Command []string
	// Env, when set, replaces the environment of the program.
	Env []string
	// Dir is the working directory of the program.
	Dir string
}

type Engine struct {
	opts Options
}

func New(opts Options) (*Engine, error) {
	if len(opts.Command) == 0 || opts.Command[0] == "" {
		return nil, errors.New("engine command is empty")
	}
	return &Engine{opts: opts}, nil
}

func (e *Engine) Close() error {
	return nil
}

func (e *Engine) ParseCheck(ctx context.Context, text string) (bool, error) {
	res, err := e.invoke(ctx, OpParseCheck, nil, text)
	if err != nil {
		return false, err
	}
	return res.Bool(), nil
}

func (e *Engine) FindDefinition(ctx context.Context, span engine.Span, text string) (engine.Reply, error) {
	res, err := e.invoke(ctx, OpFindDefinition, &span, text)
	if err != nil {
		return nil, err
	}
	recs, err := records(res)
	if err != nil {
		return nil, err
	}
	return engine.Reply(recs), nil
}

func (e *Engine) FindAllUses(ctx context.Context, span engine.Span, text string) ([]engine.Fields, error) {
	res, err := e.invoke(ctx, OpFindAllUses, &span, text)
	if err != nil {
		return nil, err
	}
	return records(res)
}

// Request renders the JSON request sent to the program.
func Request(op string, span *engine.Span, text string) (string, error) {
	req, err := sjson.Set("{}", "op", op)
	if err != nil {
		return "", errors.Errorf("encoding op: %w", err)
	}
	if span != nil {
		req, err = sjson.Set(req, "span", []int{span.StartLine, span.StartCol, span.EndLine, span.EndCol})
		if err != nil {
			return "", errors.Errorf("encoding span: %w", err)
		}
	}
	req, err = sjson.Set(req, "text", text)
	if err != nil {
		return "", errors.Errorf("encoding text: %w", err)
	}
	return req, nil
}

func (e *Engine) invoke(ctx context.Context, op string, span *engine.Span, text string) (gjson.Result, error) {
	req, err := Request(op, span, text)
	if err != nil {
		return gjson.Result{}, err
	}

	cmd := exec.CommandContext(ctx, e.opts.Command[0], e.opts.Command[1:]...)
	cmd.Env = e.opts.Env
	cmd.Dir = e.opts.Dir
	cmd.Stdin = strings.NewReader(req)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	zerolog.Ctx(ctx).Trace().Str("op", op).Strs("command", e.opts.Command).Msg("invoking engine")

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return gjson.Result{}, errors.Errorf("engine %s: %w", op, ctx.Err())
		}
		return gjson.Result{}, errors.Errorf("engine %s: %w: %s", op, err, strings.TrimSpace(stderr.String()))
	}

	out := stdout.String()
	if !gjson.Valid(out) {
		return gjson.Result{}, errors.Errorf("engine %s: reply is not json: %q", op, out)
	}
	if msg := gjson.Get(out, "error"); msg.Exists() {
		return gjson.Result{}, errors.Errorf("engine %s: %s", op, msg.String())
	}
	res := gjson.Get(out, "result")
	if !res.Exists() {
		return gjson.Result{}, errors.Errorf("engine %s: reply has no result", op)
	}
	return res, nil
}

// records reads an array of arrays. Members that are not arrays of integers
// become empty records.
func records(res gjson.Result) ([]engine.Fields, error) {
	if !res.IsArray() {
		return nil, errors.Errorf("engine result is not an array: %s", res.Raw)
	}
	var out []engine.Fields
	res.ForEach(func(_, v gjson.Result) bool {
		out = append(out, record(v))
		return true
	})
	return out, nil
}

func record(v gjson.Result) engine.Fields {
	if !v.IsArray() {
		return engine.Fields{}
	}
	f := engine.Fields{}
	valid := true
	v.ForEach(func(_, n gjson.Result) bool {
		if n.Type != gjson.Number || n.Num != math.Trunc(n.Num) {
			valid = false
			return false
		}
		f = append(f, int(n.Int()))
		return true
	})
	if !valid {
		return engine.Fields{}
	}
	return f
}
