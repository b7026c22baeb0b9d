package protocol

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/creachadair/jrpc2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/oloveluck/snake-lsp/pkg/debug"
)

// MultiRPCLogger fans jrpc2 request and response logs out to several loggers.
type MultiRPCLogger struct {
	mu      sync.Mutex
	loggers []jrpc2.RPCLogger
}

var _ jrpc2.RPCLogger = (*MultiRPCLogger)(nil)

func NewMultiRPCLogger(loggers ...jrpc2.RPCLogger) *MultiRPCLogger {
	return &MultiRPCLogger{loggers: loggers}
}

func (m *MultiRPCLogger) LogRequest(ctx context.Context, req *jrpc2.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, logger := range m.loggers {
		logger.LogRequest(ctx, req)
	}
}

func (m *MultiRPCLogger) LogResponse(ctx context.Context, resp *jrpc2.Response) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, logger := range m.loggers {
		logger.LogResponse(ctx, resp)
	}
}

func (m *MultiRPCLogger) AddLogger(logger jrpc2.RPCLogger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggers = append(m.loggers, logger)
}

var loggerID = xid.New().String()

// ApplyClientToZerolog replaces the context logger with one that forwards
// each line to the editor as window/logMessage. Lines are also copied to
// any tee writers.
func ApplyClientToZerolog(ctx context.Context, client Client, tee ...io.Writer) context.Context {
	writer := &logWriter{client: client, ctx: ctx}

	var out io.Writer = writer
	if len(tee) > 0 {
		out = zerolog.MultiLevelWriter(append([]io.Writer{writer}, tee...)...)
	}

	level := zerolog.Ctx(ctx).GetLevel()

	return zerolog.New(out).With().
		Str("id", loggerID).
		Logger().
		Level(level).
		Hook(debug.TimeHook{}).
		Hook(debug.CallerHook{}).
		WithContext(ctx)
}

func ApplyRequestToZerolog(ctx context.Context, req *jrpc2.Request) context.Context {
	return zerolog.Ctx(ctx).With().
		Str("rpc_method", req.Method()).
		Str("rpc_id", req.ID()).
		Logger().
		WithContext(ctx)
}

// logWriter turns zerolog JSON lines into LogMessageParams.
type logWriter struct {
	client Client
	mu     sync.Mutex
	ctx    context.Context
}

var forwardedFields = []string{"level", "message", "time", "caller", "id"}

func (w *logWriter) Write(p []byte) (int, error) {
	if w.client == nil || !gjson.ValidBytes(p) {
		return len(p), nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.client.LogMessage(w.ctx, FormatLogLine(p)); err != nil {
		return len(p), err
	}
	return len(p), nil
}

// FormatLogLine renders a zerolog JSON line as "[caller] message k=v ...".
func FormatLogLine(p []byte) *LogMessageParams {
	line := string(p)
	level := gjson.Get(line, "level").String()
	msg := gjson.Get(line, "message").String()
	caller := gjson.Get(line, "caller").String()

	rest := line
	for _, f := range forwardedFields {
		if stripped, err := sjson.Delete(rest, f); err == nil {
			rest = stripped
		}
	}

	var extras []string
	gjson.Parse(rest).ForEach(func(key, value gjson.Result) bool {
		extras = append(extras, key.String()+"="+value.String())
		return true
	})
	sort.Strings(extras)

	var b strings.Builder
	if caller != "" {
		b.WriteString("[" + caller + "] ")
	}
	b.WriteString(msg)
	if len(extras) > 0 {
		b.WriteString(" " + strings.Join(extras, " "))
	}

	return &LogMessageParams{
		Type:    ParseMessageTypeFromZerolog(level),
		Message: b.String(),
	}
}

// ParseMessageTypeFromZerolog converts a zerolog level name to an LSP MessageType.
func ParseMessageTypeFromZerolog(level string) MessageType {
	switch level {
	case "error", "fatal", "panic":
		return Error
	case "warn":
		return Warning
	case "info":
		return Info
	case "debug", "trace":
		return Debug
	default:
		return Log
	}
}
