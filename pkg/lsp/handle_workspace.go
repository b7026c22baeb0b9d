package lsp

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/oloveluck/snake-lsp/pkg/engine"
	"github.com/oloveluck/snake-lsp/pkg/lsp/protocol"
)

func (s *Server) DidChangeConfiguration(ctx context.Context, params *protocol.DidChangeConfigurationParams) error {
	logger := zerolog.Ctx(ctx)

	if s.hasConfiguration {
		s.settings.Reset()
		logger.Debug().Msg("configuration changed, dropped per-document settings")
	} else if err := s.settings.SetGlobalFrom(params.Settings); err != nil {
		logger.Warn().Err(err).Msg("invalid settings, using defaults")
	}

	for _, doc := range s.documents.All() {
		if err := s.publishDiagnostics(ctx, doc); err != nil {
			logger.Warn().Err(err).Str("uri", string(doc.URI)).Msg("revalidating document")
		}
	}
	return nil
}

func (s *Server) DidChangeWatchedFiles(ctx context.Context, params *protocol.DidChangeWatchedFilesParams) error {
	logger := zerolog.Ctx(ctx)

	reload := false
	for _, change := range params.Changes {
		matched := s.opts.Watch != nil && s.opts.Watch(string(change.URI))
		logger.Debug().
			Str("uri", string(change.URI)).
			Uint32("type", uint32(change.Type)).
			Bool("engine_file", matched).
			Msg("watched file changed")
		reload = reload || matched
	}

	if !reload {
		return nil
	}
	return s.reloadEngine(ctx)
}

func (s *Server) reloadEngine(ctx context.Context) error {
	r, ok := s.opts.Engine.(engine.Reloader)
	if !ok {
		zerolog.Ctx(ctx).Debug().Msg("engine cannot be reloaded")
		return nil
	}

	if err := r.Reload(ctx); err != nil {
		return errors.Errorf("reloading engine: %w", err)
	}

	// a new engine may accept text the old one rejected
	for _, doc := range s.documents.All() {
		s.mediator.Refresh(ctx, string(doc.URI), doc.Content)
	}
	return nil
}

func (s *Server) DidChangeWorkspaceFolders(ctx context.Context, params *protocol.DidChangeWorkspaceFoldersParams) error {
	zerolog.Ctx(ctx).Info().
		Int("added", len(params.Event.Added)).
		Int("removed", len(params.Event.Removed)).
		Msg("workspace folder change event received")
	return nil
}
