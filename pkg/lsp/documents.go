package lsp

import (
	"sort"
	"sync"

	"github.com/oloveluck/snake-lsp/pkg/lsp/protocol"
	"github.com/oloveluck/snake-lsp/pkg/position"
)

// Document is the live editor buffer for one URI.
type Document struct {
	URI        protocol.DocumentURI
	LanguageID protocol.LanguageKind
	Version    int32
	Content    string
}

// DocumentManager holds the open documents. Documents are replaced, never
// mutated in place, so a loaded *Document is safe to read.
type DocumentManager struct {
	store *sync.Map // map[protocol.DocumentURI]*Document
}

func NewDocumentManager() *DocumentManager {
	return &DocumentManager{store: &sync.Map{}}
}

func (m *DocumentManager) Get(uri protocol.DocumentURI) (*Document, bool) {
	v, ok := m.store.Load(uri)
	if !ok {
		return nil, false
	}
	return v.(*Document), true
}

func (m *DocumentManager) Store(doc *Document) {
	m.store.Store(doc.URI, doc)
}

func (m *DocumentManager) Delete(uri protocol.DocumentURI) {
	m.store.Delete(uri)
}

// Apply applies incremental changes in order and stores the result.
func (m *DocumentManager) Apply(uri protocol.DocumentURI, version int32, changes []protocol.TextDocumentContentChangeEvent) (*Document, bool) {
	prev, ok := m.Get(uri)
	if !ok {
		return nil, false
	}

	next := *prev
	next.Version = version
	for _, change := range changes {
		var rng *position.Range
		if change.Range != nil {
			r := fromProtocolRange(*change.Range)
			rng = &r
		}
		next.Content = position.ApplyChange(next.Content, rng, change.Text)
	}

	m.Store(&next)
	return &next, true
}

// Text returns the live content of uri.
func (m *DocumentManager) Text(uri string) (string, bool) {
	doc, ok := m.Get(protocol.DocumentURI(uri))
	if !ok {
		return "", false
	}
	return doc.Content, true
}

// All returns the open documents ordered by URI.
func (m *DocumentManager) All() []*Document {
	var docs []*Document
	m.store.Range(func(_, v any) bool {
		docs = append(docs, v.(*Document))
		return true
	})
	sort.Slice(docs, func(i, j int) bool { return docs[i].URI < docs[j].URI })
	return docs
}
