package position

import (
	"github.com/oloveluck/snake-lsp/pkg/engine"
)

// ToEngineSpan maps the token under the cursor at p into engine coordinates.
// Lines become 1-indexed; columns keep the editor numbering.
func ToEngineSpan(p Place, tokenOffset, tokenLength int) engine.Span {
	line := p.Line + 1
	return engine.Span{
		StartLine: line,
		StartCol:  p.Character - tokenOffset,
		EndLine:   line,
		EndCol:    p.Character + tokenLength - tokenOffset,
	}
}

// ToEditorRange maps an engine location back to the editor. The tag is dropped.
func ToEditorRange(loc engine.Location) Range {
	return Range{
		Start: Place{Line: loc.StartLine - 1, Character: loc.StartCol},
		End:   Place{Line: loc.EndLine - 1, Character: loc.EndCol},
	}
}

// SpanLocation turns a span into a location record carrying tag.
func SpanLocation(span engine.Span, tag int) engine.Location {
	return engine.Location{
		Tag:       tag,
		StartLine: span.StartLine,
		StartCol:  span.StartCol,
		EndLine:   span.EndLine,
		EndCol:    span.EndCol,
	}
}
