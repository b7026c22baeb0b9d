package lsp

import (
	"context"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/oloveluck/snake-lsp/pkg/completion"
	"github.com/oloveluck/snake-lsp/pkg/lsp/protocol"
)

func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) (*protocol.Location, error) {
	uri := string(params.TextDocument.URI)
	loc, ok := s.mediator.Definition(ctx, uri, toPlace(params.Position))
	if !ok {
		return nil, nil
	}
	return &protocol.Location{URI: protocol.DocumentURI(loc.URI), Range: toProtocolRange(loc.Range)}, nil
}

func (s *Server) References(ctx context.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	uri := string(params.TextDocument.URI)
	locs := s.mediator.References(ctx, uri, toPlace(params.Position), params.Context.IncludeDeclaration)

	out := make([]protocol.Location, 0, len(locs))
	for _, loc := range locs {
		out = append(out, protocol.Location{URI: protocol.DocumentURI(loc.URI), Range: toProtocolRange(loc.Range)})
	}
	return out, nil
}

func (s *Server) Rename(ctx context.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
	uri := string(params.TextDocument.URI)
	changes := s.mediator.Rename(ctx, uri, toPlace(params.Position), params.NewName)

	edit := &protocol.WorkspaceEdit{Changes: make(map[protocol.DocumentURI][]protocol.TextEdit, len(changes))}
	for u, edits := range changes {
		out := make([]protocol.TextEdit, 0, len(edits))
		for _, e := range edits {
			out = append(out, protocol.TextEdit{Range: toProtocolRange(e.Range), NewText: e.NewText})
		}
		edit.Changes[protocol.DocumentURI(u)] = out
	}
	return edit, nil
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) ([]protocol.CompletionItem, error) {
	items := completion.Items()
	out := make([]protocol.CompletionItem, 0, len(items))
	for _, item := range items {
		out = append(out, toProtocolCompletion(item))
	}
	return out, nil
}

func (s *Server) ResolveCompletionItem(ctx context.Context, params *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	item := completion.Resolve(completion.Item{
		Label:         params.Label,
		Kind:          completion.Kind(params.Kind),
		Data:          int(gjson.ParseBytes(params.Data).Int()),
		Detail:        params.Detail,
		Documentation: params.Documentation,
	})
	out := toProtocolCompletion(item)
	return &out, nil
}

func toProtocolCompletion(item completion.Item) protocol.CompletionItem {
	return protocol.CompletionItem{
		Label:         item.Label,
		Kind:          protocol.CompletionItemKind(item.Kind),
		Detail:        item.Detail,
		Documentation: item.Documentation,
		Data:          []byte(strconv.Itoa(item.Data)),
	}
}
