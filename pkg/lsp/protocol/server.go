package protocol

import (
	"context"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
)

// Server is every method a snake language server answers.
type Server interface {
	Initialize(context.Context, *ParamInitialize) (*InitializeResult, error)
	Initialized(context.Context, *InitializedParams) error
	Shutdown(context.Context) error
	Exit(context.Context) error
	SetTrace(context.Context, *SetTraceParams) error

	DidOpen(context.Context, *DidOpenTextDocumentParams) error
	DidChange(context.Context, *DidChangeTextDocumentParams) error
	DidClose(context.Context, *DidCloseTextDocumentParams) error
	WillSave(context.Context, *WillSaveTextDocumentParams) error
	DidSave(context.Context, *DidSaveTextDocumentParams) error

	DidChangeConfiguration(context.Context, *DidChangeConfigurationParams) error
	DidChangeWatchedFiles(context.Context, *DidChangeWatchedFilesParams) error
	DidChangeWorkspaceFolders(context.Context, *DidChangeWorkspaceFoldersParams) error

	Definition(context.Context, *DefinitionParams) (*Location, error)
	References(context.Context, *ReferenceParams) ([]Location, error)
	Rename(context.Context, *RenameParams) (*WorkspaceEdit, error)
	Completion(context.Context, *CompletionParams) ([]CompletionItem, error)
	ResolveCompletionItem(context.Context, *CompletionItem) (*CompletionItem, error)
}

func buildServerDispatchMap(server Server) handler.Map {
	return handler.Map{
		"initialize":  createHandler(server.Initialize),
		"initialized": createEmptyResultHandler(server.Initialized),
		"shutdown":    createEmptyHandler(server.Shutdown),
		"exit":        createEmptyHandler(server.Exit),
		"$/setTrace":  createEmptyResultHandler(server.SetTrace),
		"$/cancelRequest": handler.New(func(ctx context.Context, r *jrpc2.Request) (any, error) {
			return nil, nil
		}),

		"textDocument/didOpen":  createEmptyResultHandler(server.DidOpen),
		"textDocument/didChange": createEmptyResultHandler(server.DidChange),
		"textDocument/didClose":  createEmptyResultHandler(server.DidClose),
		"textDocument/willSave":  createEmptyResultHandler(server.WillSave),
		"textDocument/didSave":   createEmptyResultHandler(server.DidSave),

		"workspace/didChangeConfiguration":    createEmptyResultHandler(server.DidChangeConfiguration),
		"workspace/didChangeWatchedFiles":     createEmptyResultHandler(server.DidChangeWatchedFiles),
		"workspace/didChangeWorkspaceFolders": createEmptyResultHandler(server.DidChangeWorkspaceFolders),

		"textDocument/definition": createHandler(server.Definition),
		"textDocument/references": createHandler(server.References),
		"textDocument/rename":     createHandler(server.Rename),
		"textDocument/completion": createHandler(server.Completion),
		"completionItem/resolve":  createHandler(server.ResolveCompletionItem),
	}
}
