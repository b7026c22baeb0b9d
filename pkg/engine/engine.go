// Package engine describes the boundary to the external snake analysis engine.
//
// The engine parses documents, resolves symbols and tracks use sites. This
// package only fixes the shape of the conversation: the calls that can be made,
// the span they are made with and the records that come back.
package engine

import (
	"context"
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrTimeout is returned when an engine call does not finish before its deadline.
	ErrTimeout = errors.Base("engine call timed out")
	// ErrNotLoaded is returned by backends that have nothing to run yet.
	ErrNotLoaded = errors.Base("engine not loaded")
)

// LocationArity is the number of fields in a well formed engine location.
const LocationArity = 5

// Span is a token extent in engine coordinates: 1-indexed lines, columns as
// computed by the coordinate translator.
type Span struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

func (s Span) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}

// Fields is one raw record exactly as the engine produced it. Nothing about
// its length is assumed until it is validated.
type Fields []int

// Location is a validated engine record: a discriminant followed by a span.
type Location struct {
	Tag       int
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// LocationFromFields destructures a record, reporting false when it does not
// have exactly LocationArity fields.
func LocationFromFields(f Fields) (Location, bool) {
	if len(f) != LocationArity {
		return Location{}, false
	}
	return Location{
		Tag:       f[0],
		StartLine: f[1],
		StartCol:  f[2],
		EndLine:   f[3],
		EndCol:    f[4],
	}, true
}

// Span drops the tag.
func (l Location) Span() Span {
	return Span{StartLine: l.StartLine, StartCol: l.StartCol, EndLine: l.EndLine, EndCol: l.EndCol}
}

// Fields renders the location back into its raw record form.
func (l Location) Fields() Fields {
	return Fields{l.Tag, l.StartLine, l.StartCol, l.EndLine, l.EndCol}
}

// Reply is the raw answer to a definition lookup. A usable reply has two
// elements, the second of which is a location record.
type Reply []Fields

// Definition extracts the defining location from the reply.
func (r Reply) Definition() (Location, bool) {
	if len(r) != 2 {
		return Location{}, false
	}
	return LocationFromFields(r[1])
}

// Engine is the analysis engine. Every call may fail, for example when the text
// does not parse; callers treat failure as "no result".
type Engine interface {
	// ParseCheck reports whether text parses.
	ParseCheck(ctx context.Context, text string) (bool, error)
	// FindDefinition looks up the definition of the identifier spanning span.
	FindDefinition(ctx context.Context, span Span, text string) (Reply, error)
	// FindAllUses lists every use of the identifier spanning span.
	FindAllUses(ctx context.Context, span Span, text string) ([]Fields, error)
}

// Reloader is implemented by engines whose program can be reloaded from disk.
type Reloader interface {
	Reload(ctx context.Context) error
}
