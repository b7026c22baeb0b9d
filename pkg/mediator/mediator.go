// Package mediator answers navigation requests by running them through the
// analysis engine.
//
// Each request makes one pass: pick the source text, find the token under the
// cursor, translate it into an engine span, ask the engine, validate and
// translate the answer back. The engine failing, timing out or returning
// malformed records never turns into an error for the caller; the request
// simply has no result.
package mediator

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/oloveluck/snake-lsp/pkg/doccache"
	"github.com/oloveluck/snake-lsp/pkg/engine"
	"github.com/oloveluck/snake-lsp/pkg/position"
	"github.com/oloveluck/snake-lsp/pkg/token"
)

// selfTag marks the location synthesized for the cursor itself.
const selfTag = 0

// TextSource provides the live text of open documents.
type TextSource interface {
	Text(uri string) (string, bool)
}

// TextSourceFunc adapts a function to TextSource.
type TextSourceFunc func(uri string) (string, bool)

func (f TextSourceFunc) Text(uri string) (string, bool) { return f(uri) }

type Location struct {
	URI   string
	Range position.Range
}

type Edit struct {
	Range   position.Range
	NewText string
}

type Mediator struct {
	engine engine.Engine
	cache  *doccache.Cache
	live   TextSource
}

func New(eng engine.Engine, cache *doccache.Cache, live TextSource) *Mediator {
	return &Mediator{engine: eng, cache: cache, live: live}
}

// source prefers the last parseable text over the live buffer.
func (m *Mediator) source(uri string) string {
	if text, ok := m.cache.Get(uri); ok {
		return text
	}
	if m.live != nil {
		if text, ok := m.live.Text(uri); ok {
			return text
		}
	}
	return ""
}

// cursor locates the token at p and returns its engine span.
func (m *Mediator) cursor(uri string, p position.Place) (engine.Span, string, bool) {
	text := m.source(uri)
	if text == "" {
		return engine.Span{}, "", false
	}
	tok, ok := token.Locate(text, p.Line, p.Character)
	if !ok {
		return engine.Span{}, "", false
	}
	return position.ToEngineSpan(p, tok.Offset, tok.Length()), text, true
}

// Definition returns where the identifier under the cursor is defined.
func (m *Mediator) Definition(ctx context.Context, uri string, p position.Place) (Location, bool) {
	span, text, ok := m.cursor(uri, p)
	if !ok {
		return Location{}, false
	}

	reply, err := m.engine.FindDefinition(ctx, span, text)
	if err != nil {
		engineFailed(ctx, err, "definition", uri, span)
		return Location{}, false
	}

	loc, ok := reply.Definition()
	if !ok {
		return Location{}, false
	}
	return Location{URI: uri, Range: position.ToEditorRange(loc)}, true
}

// References lists the uses of the identifier under the cursor. With
// includeDeclaration the cursor span itself is part of the answer.
func (m *Mediator) References(ctx context.Context, uri string, p position.Place, includeDeclaration bool) []Location {
	locs, _ := m.uses(ctx, "references", uri, p, includeDeclaration)
	out := make([]Location, 0, len(locs))
	for _, loc := range locs {
		out = append(out, Location{URI: uri, Range: position.ToEditorRange(loc)})
	}
	return out
}

// Rename produces one edit per use of the identifier under the cursor,
// including the cursor span. Only the requesting document is edited.
func (m *Mediator) Rename(ctx context.Context, uri string, p position.Place, newName string) map[string][]Edit {
	locs, _ := m.uses(ctx, "rename", uri, p, true)
	edits := make([]Edit, 0, len(locs))
	for _, loc := range locs {
		edits = append(edits, Edit{Range: position.ToEditorRange(loc), NewText: newName})
	}
	return map[string][]Edit{uri: edits}
}

func (m *Mediator) uses(ctx context.Context, kind, uri string, p position.Place, withSelf bool) ([]engine.Location, bool) {
	span, text, ok := m.cursor(uri, p)
	if !ok {
		return nil, false
	}

	raw, err := m.engine.FindAllUses(ctx, span, text)
	if err != nil {
		engineFailed(ctx, err, kind, uri, span)
		return nil, false
	}

	locs := make([]engine.Location, 0, len(raw)+1)
	for _, f := range raw {
		if loc, ok := engine.LocationFromFields(f); ok {
			locs = append(locs, loc)
		}
	}

	if withSelf {
		self := position.SpanLocation(span, selfTag)
		if !containsSpan(locs, self.Span()) {
			locs = append(locs, self)
		}
	}
	return locs, true
}

func containsSpan(locs []engine.Location, span engine.Span) bool {
	for _, loc := range locs {
		if loc.Span() == span {
			return true
		}
	}
	return false
}

// Refresh parse-checks text and, when the engine accepts it, records it as
// the last parseable version of uri.
func (m *Mediator) Refresh(ctx context.Context, uri, text string) bool {
	logger := zerolog.Ctx(ctx)

	ok, err := m.engine.ParseCheck(ctx, text)
	if err != nil {
		logger.Warn().Err(err).Str("uri", uri).Msg("parse check failed, keeping cached text")
		return false
	}
	if !ok {
		logger.Debug().Str("uri", uri).Msg("document does not parse, keeping cached text")
		return false
	}

	m.cache.Set(uri, text)
	logger.Trace().Str("uri", uri).Int("bytes", len(text)).Msg("cached parseable text")
	return true
}

func engineFailed(ctx context.Context, err error, kind, uri string, span engine.Span) {
	zerolog.Ctx(ctx).Warn().
		Err(err).
		Str("request", kind).
		Str("uri", uri).
		Stringer("span", span).
		Msg("engine call failed")
}
