package lsp

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/oloveluck/snake-lsp/pkg/diagnostic"
	"github.com/oloveluck/snake-lsp/pkg/lsp/protocol"
	"github.com/oloveluck/snake-lsp/pkg/settings"
)

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	zerolog.Ctx(ctx).Debug().Str("uri", string(params.TextDocument.URI)).Msg("document opened")

	doc := &Document{
		URI:        params.TextDocument.URI,
		LanguageID: params.TextDocument.LanguageID,
		Version:    params.TextDocument.Version,
		Content:    params.TextDocument.Text,
	}
	s.documents.Store(doc)

	return s.contentChanged(ctx, doc)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	zerolog.Ctx(ctx).Debug().Str("uri", string(uri)).Int32("version", params.TextDocument.Version).Msg("document changed")

	if len(params.ContentChanges) == 0 {
		return nil
	}

	doc, ok := s.documents.Apply(uri, params.TextDocument.Version, params.ContentChanges)
	if !ok {
		return errors.Errorf("document not open: %s", uri)
	}

	return s.contentChanged(ctx, doc)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	zerolog.Ctx(ctx).Debug().Str("uri", string(uri)).Bool("evict", s.opts.EvictOnClose).Msg("document closed")

	s.documents.Delete(uri)
	s.settings.Forget(string(uri))
	if s.opts.EvictOnClose {
		s.cache.Delete(string(uri))
	}
	return nil
}

func (s *Server) WillSave(ctx context.Context, params *protocol.WillSaveTextDocumentParams) error {
	zerolog.Ctx(ctx).Debug().
		Str("uri", string(params.TextDocument.URI)).
		Uint32("reason", uint32(params.Reason)).
		Msg("document will be saved")
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	zerolog.Ctx(ctx).Debug().Str("uri", string(uri)).Msg("document saved")

	if params.Text == nil {
		return nil
	}

	doc, ok := s.documents.Get(uri)
	if !ok {
		return errors.Errorf("document not open: %s", uri)
	}
	if doc.Content == *params.Text {
		return nil
	}

	next := *doc
	next.Content = *params.Text
	s.documents.Store(&next)
	return s.contentChanged(ctx, &next)
}

// contentChanged runs after every edit: the diagnostics pass first, then the
// parse check that decides whether the text becomes the cached version.
func (s *Server) contentChanged(ctx context.Context, doc *Document) error {
	if err := s.publishDiagnostics(ctx, doc); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("uri", string(doc.URI)).Msg("publishing diagnostics")
	}
	s.mediator.Refresh(ctx, string(doc.URI), doc.Content)
	return nil
}

func (s *Server) documentSettings(ctx context.Context, uri protocol.DocumentURI) settings.Settings {
	var fetch settings.Fetcher
	if s.hasConfiguration && s.callbackClient != nil {
		fetch = s.fetchSettings
	}
	return s.settings.ForDocument(ctx, string(uri), fetch)
}

func (s *Server) fetchSettings(ctx context.Context, uri string) (any, error) {
	res, err := s.callbackClient.Configuration(ctx, &protocol.ConfigurationParams{
		Items: []protocol.ConfigurationItem{{ScopeURI: uri, Section: settings.Section}},
	})
	if err != nil {
		return nil, errors.Errorf("requesting workspace configuration: %w", err)
	}
	if len(res) == 0 {
		return nil, nil
	}
	return res[0], nil
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *Document) error {
	if s.callbackClient == nil {
		return nil
	}

	cfg := s.documentSettings(ctx, doc.URI)

	found := diagnostic.Generate(doc.Content, diagnostic.Options{
		MaxProblems:        cfg.MaxNumberOfProblems,
		RelatedInformation: s.hasRelatedInformation,
		URI:                string(doc.URI),
	})

	diags := make([]protocol.Diagnostic, 0, len(found))
	for _, d := range found {
		diags = append(diags, toProtocolDiagnostic(d))
	}

	zerolog.Ctx(ctx).Debug().Str("uri", string(doc.URI)).Int("count", len(diags)).Msg("publishing diagnostics")

	version := doc.Version
	return s.callbackClient.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     &version,
		Diagnostics: diags,
	})
}

var severities = map[diagnostic.DiagnosticSeverity]protocol.DiagnosticSeverity{
	diagnostic.Error:   protocol.SeverityError,
	diagnostic.Warning: protocol.SeverityWarning,
	diagnostic.Info:    protocol.SeverityInformation,
	diagnostic.Hint:    protocol.SeverityHint,
}

func toProtocolDiagnostic(d diagnostic.Diagnostic) protocol.Diagnostic {
	out := protocol.Diagnostic{
		Range:    toProtocolRange(d.Range),
		Severity: severities[d.Severity],
		Source:   d.Source,
		Message:  d.Message,
	}
	for _, r := range d.Related {
		out.RelatedInformation = append(out.RelatedInformation, protocol.DiagnosticRelatedInformation{
			Location: protocol.Location{URI: protocol.DocumentURI(r.URI), Range: toProtocolRange(r.Range)},
			Message:  r.Message,
		})
	}
	return out
}
