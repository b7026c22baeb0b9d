package protocol

import (
	"context"
	"io"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var RequestCancelledError = &jrpc2.Error{Code: -32800, Message: "JSON RPC cancelled"}

// CallbackClient pushes notifications and callbacks from the server to
// the connected editor.
type CallbackClient struct {
	serverOpts *jrpc2.ServerOptions
	client     *jrpc2.Server
}

func NewCallbackClient(server *jrpc2.Server, serverOpts *jrpc2.ServerOptions) *CallbackClient {
	return &CallbackClient{client: server, serverOpts: serverOpts}
}

var _ Callbacker = (*CallbackClient)(nil)

func (c *CallbackClient) callbackLogger() (CallbackRPCLogger, bool) {
	if c.serverOpts == nil {
		return nil, false
	}
	rl, ok := c.serverOpts.RPCLog.(CallbackRPCLogger)
	return rl, ok
}

func (c *CallbackClient) Notify(ctx context.Context, method string, params any) error {
	if rl, ok := c.callbackLogger(); ok {
		rl.LogCallbackRequestRaw(ctx, method, params)
	}
	return c.client.Notify(ctx, method, params)
}

func (c *CallbackClient) Callback(ctx context.Context, method string, params any) (*jrpc2.Response, error) {
	if rl, ok := c.callbackLogger(); ok {
		rl.LogCallbackRequestRaw(ctx, method, params)
	}

	res, err := c.client.Callback(ctx, method, params)
	if err != nil {
		return nil, err
	}

	if rl, ok := c.callbackLogger(); ok {
		rl.LogCallbackResponse(ctx, res)
	}

	return res, nil
}

// CallbackSetter is implemented by servers that push to the editor.
type CallbackSetter interface {
	SetCallbackClient(Client)
}

// Doner is implemented by servers that can ask to be stopped, as after exit.
type Doner interface {
	Done() <-chan struct{}
}

// ServerInstance binds a Server to one JSON-RPC connection.
type ServerInstance struct {
	ctx      context.Context
	server   Server
	opts     *jrpc2.ServerOptions
	rpc      *jrpc2.Server
	callback *CallbackClient
	tee      []io.Writer
}

type ServerInstanceOption func(*ServerInstance)

// WithLogWriter tees every log line the server makes to w as well as to
// the editor's output window.
func WithLogWriter(w io.Writer) ServerInstanceOption {
	return func(si *ServerInstance) {
		si.tee = append(si.tee, w)
	}
}

func NewServerInstance(ctx context.Context, server Server, opts *jrpc2.ServerOptions, options ...ServerInstanceOption) *ServerInstance {
	if opts == nil {
		opts = &jrpc2.ServerOptions{}
	}

	si := &ServerInstance{ctx: ctx, server: server, opts: opts}
	for _, o := range options {
		o(si)
	}

	opts.AllowPush = true
	// didChange must be applied in arrival order
	opts.Concurrency = 1
	opts.NewContext = func() context.Context {
		if si.callback == nil {
			return si.ctx
		}
		return ApplyClientToZerolog(si.ctx, si.callback, si.tee...)
	}

	si.rpc = jrpc2.NewServer(buildServerDispatchMap(server), opts)
	si.callback = NewCallbackClient(si.rpc, opts)

	if cs, ok := server.(CallbackSetter); ok {
		cs.SetCallbackClient(si.callback)
	}

	return si
}

func (si *ServerInstance) CallbackClient() *CallbackClient {
	return si.callback
}

// Start serves LSP-framed messages read from r and written to w.
func (si *ServerInstance) Start(r io.Reader, w io.WriteCloser) {
	si.rpc.Start(channel.LSP(r, w))

	if d, ok := si.server.(Doner); ok {
		go func() {
			select {
			case <-d.Done():
				si.rpc.Stop()
			case <-si.ctx.Done():
				si.rpc.Stop()
			}
		}()
	}
}

// StartAndWait serves until the connection closes or the server exits.
func (si *ServerInstance) StartAndWait(r io.Reader, w io.WriteCloser) error {
	si.Start(r, w)
	return si.Wait()
}

func (si *ServerInstance) Wait() error {
	st := si.rpc.WaitStatus()
	if st.Success() || st.Closed || st.Stopped {
		zerolog.Ctx(si.ctx).Debug().Msg("lsp connection finished")
		return nil
	}
	return errors.Errorf("serving lsp: %w", st.Err)
}

func (si *ServerInstance) Stop() {
	si.rpc.Stop()
}
