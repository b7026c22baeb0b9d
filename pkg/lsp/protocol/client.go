package protocol

import (
	"context"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
)

// Client is what the server may ask of the editor.
type Client interface {
	PublishDiagnostics(context.Context, *PublishDiagnosticsParams) error
	LogMessage(context.Context, *LogMessageParams) error
	RegisterCapability(context.Context, *RegistrationParams) error
	Configuration(context.Context, *ConfigurationParams) ([]LSPAny, error)
}

func buildClientDispatchMap(client Client) handler.Map {
	return handler.Map{
		"textDocument/publishDiagnostics": createEmptyResultHandler(client.PublishDiagnostics),
		"window/logMessage":               createEmptyResultHandler(client.LogMessage),
		"client/registerCapability":       createEmptyResultHandler(client.RegisterCapability),
		"workspace/configuration":         createHandler(client.Configuration),
	}
}

// NewClientOptions routes the server's notifications and callbacks into
// client, the way an editor would receive them.
func NewClientOptions(ctx context.Context, client Client) *jrpc2.ClientOptions {
	methods := buildClientDispatchMap(client)
	dispatch := func(ctx context.Context, req *jrpc2.Request) (any, error) {
		h := methods.Assign(ctx, req.Method())
		if h == nil {
			return nil, &jrpc2.Error{Code: -32601, Message: "no client method " + req.Method()}
		}
		return h(ctx, req)
	}
	return &jrpc2.ClientOptions{
		OnNotify: func(req *jrpc2.Request) {
			_, _ = dispatch(ctx, req)
		},
		OnCallback: dispatch,
	}
}

var _ Client = (*CallbackClient)(nil)

func (c *CallbackClient) PublishDiagnostics(ctx context.Context, params *PublishDiagnosticsParams) error {
	return createNotify(ctx, c, "textDocument/publishDiagnostics", params)
}

func (c *CallbackClient) LogMessage(ctx context.Context, params *LogMessageParams) error {
	return createNotify(ctx, c, "window/logMessage", params)
}

func (c *CallbackClient) RegisterCapability(ctx context.Context, params *RegistrationParams) error {
	return createEmptyResultCallback(ctx, c, "client/registerCapability", params)
}

func (c *CallbackClient) Configuration(ctx context.Context, params *ConfigurationParams) ([]LSPAny, error) {
	var result []LSPAny
	if err := createCallback(ctx, c, "workspace/configuration", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}
