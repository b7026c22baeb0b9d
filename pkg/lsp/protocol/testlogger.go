package protocol

import (
	"context"
	"os"

	"github.com/creachadair/jrpc2"
	"github.com/rs/zerolog"
	"github.com/tidwall/sjson"
)

// CallbackRPCLogger also sees traffic the server pushes to the editor.
type CallbackRPCLogger interface {
	LogCallbackRequestRaw(ctx context.Context, method string, params any)
	LogCallbackResponse(ctx context.Context, res *jrpc2.Response)
}

const maxLoggedLength = 1000

type rpcTestLogger struct {
	logger  zerolog.TestingLog
	verbose bool
}

var (
	_ jrpc2.RPCLogger   = (*rpcTestLogger)(nil)
	_ CallbackRPCLogger = (*rpcTestLogger)(nil)
)

// NewTestLogger logs connection traffic to t. Large payloads are elided
// unless DEBUG=1.
func NewTestLogger(t zerolog.TestingLog) jrpc2.RPCLogger {
	return &rpcTestLogger{logger: t, verbose: os.Getenv("DEBUG") == "1"}
}

func (l *rpcTestLogger) body(s string) string {
	if len(s) > maxLoggedLength && !l.verbose {
		return "<elided, set DEBUG=1>"
	}
	return s
}

func (l *rpcTestLogger) LogRequest(_ context.Context, req *jrpc2.Request) {
	l.logger.Logf("--> %s [%s] %s", req.Method(), req.ID(), l.body(req.ParamString()))
}

func (l *rpcTestLogger) LogResponse(_ context.Context, res *jrpc2.Response) {
	if err := res.Error(); err != nil {
		l.logger.Logf("<-- [%s] error: %v", res.ID(), err)
		return
	}
	l.logger.Logf("<-- [%s] %s", res.ID(), l.body(res.ResultString()))
}

func (l *rpcTestLogger) LogCallbackRequestRaw(_ context.Context, method string, params any) {
	raw, err := sjson.Set("", "params", params)
	if err != nil {
		l.logger.Logf("<== %s (unencodable params: %v)", method, err)
		return
	}
	l.logger.Logf("<== %s %s", method, l.body(raw))
}

func (l *rpcTestLogger) LogCallbackResponse(_ context.Context, res *jrpc2.Response) {
	l.logger.Logf("==> [%s] %s", res.ID(), l.body(res.ResultString()))
}
