package lsp

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/oloveluck/snake-lsp/pkg/doccache"
	"github.com/oloveluck/snake-lsp/pkg/engine"
	"github.com/oloveluck/snake-lsp/pkg/lsp/protocol"
	"github.com/oloveluck/snake-lsp/pkg/mediator"
	"github.com/oloveluck/snake-lsp/pkg/settings"
)

const serverName = "snake-lsp"

// Version is reported in the initialize result.
var Version = "dev"

type Options struct {
	Engine engine.Engine
	// EvictOnClose drops a document's cached text when the editor closes it.
	EvictOnClose bool
	// Watch reports whether a changed file should reload the engine.
	Watch func(path string) bool
}

// Server is the snake language server.
type Server struct {
	id   string
	opts Options

	documents *DocumentManager
	cache     *doccache.Cache
	mediator  *mediator.Mediator
	settings  *settings.Store

	hasConfiguration      bool
	hasWorkspaceFolders   bool
	hasRelatedInformation bool

	shutdown bool

	callbackClient protocol.Client

	done     chan struct{}
	doneOnce sync.Once
}

var _ protocol.Server = (*Server)(nil)

func NewServer(ctx context.Context, opts Options) *Server {
	s := &Server{
		id:        xid.New().String(),
		opts:      opts,
		documents: NewDocumentManager(),
		cache:     doccache.New(),
		settings:  settings.NewStore(),
		done:      make(chan struct{}),
	}
	s.mediator = mediator.New(opts.Engine, s.cache, s.documents)

	zerolog.Ctx(ctx).Debug().Str("server_id", s.id).Msg("created server")
	return s
}

func (s *Server) SetCallbackClient(client protocol.Client) {
	s.callbackClient = client
}

func (s *Server) Documents() *DocumentManager {
	return s.documents
}

func (s *Server) Cache() *doccache.Cache {
	return s.cache
}

// Done is closed once the editor sends exit.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) Initialize(ctx context.Context, params *protocol.ParamInitialize) (*protocol.InitializeResult, error) {
	logger := zerolog.Ctx(ctx)

	caps := params.Capabilities
	if ws := caps.Workspace; ws != nil {
		s.hasConfiguration = ws.Configuration
		s.hasWorkspaceFolders = ws.WorkspaceFolders
	}
	if td := caps.TextDocument; td != nil && td.PublishDiagnostics != nil {
		s.hasRelatedInformation = td.PublishDiagnostics.RelatedInformation
	}

	logger.Debug().
		Bool("configuration", s.hasConfiguration).
		Bool("workspace_folders", s.hasWorkspaceFolders).
		Bool("related_information", s.hasRelatedInformation).
		Msg("received client capabilities")

	result := &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.Incremental,
				WillSave:  true,
				Save:      &protocol.SaveOptions{IncludeText: true},
			},
			CompletionProvider: &protocol.CompletionOptions{ResolveProvider: true},
			DefinitionProvider: true,
			ReferencesProvider: true,
			RenameProvider:     true,
		},
		ServerInfo: &protocol.ServerInfo{Name: serverName, Version: Version},
	}

	if s.hasWorkspaceFolders {
		result.Capabilities.Workspace = &protocol.WorkspaceOptions{
			WorkspaceFolders: &protocol.WorkspaceFoldersServerCapabilities{Supported: true},
		}
	}

	return result, nil
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	logger := zerolog.Ctx(ctx)

	if !s.hasConfiguration || s.callbackClient == nil {
		logger.Debug().Msg("client does not support configuration requests, using global settings")
		return nil
	}

	err := s.callbackClient.RegisterCapability(ctx, &protocol.RegistrationParams{
		Registrations: []protocol.Registration{{
			ID:     uuid.NewString(),
			Method: "workspace/didChangeConfiguration",
		}},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("registering for configuration changes")
		return nil
	}

	logger.Debug().Msg("registered for configuration changes")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	zerolog.Ctx(ctx).Info().Msg("shutting down")
	s.shutdown = true
	return nil
}

func (s *Server) Exit(ctx context.Context) error {
	zerolog.Ctx(ctx).Info().Bool("after_shutdown", s.shutdown).Msg("exiting")
	s.doneOnce.Do(func() { close(s.done) })
	return nil
}

func (s *Server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	zerolog.Ctx(ctx).Debug().Str("value", params.Value).Msg("trace level changed")
	return nil
}
