// Package completion serves a fixed completion list whose entries are filled
// in lazily when the editor resolves them.
package completion

import "fmt"

// Kind mirrors the editor's completion item kinds that this package uses.
type Kind int

const KindText Kind = 1

type Item struct {
	Label         string
	Kind          Kind
	Data          int
	Detail        string
	Documentation string
}

var items = []Item{
	{Label: "TypeScript", Kind: KindText, Data: 1},
	{Label: "JavaScript", Kind: KindText, Data: 2},
}

// Items returns the completion list. The position is not consulted.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Resolve fills in detail and documentation for a known item.
func Resolve(item Item) Item {
	for _, known := range items {
		if known.Data == item.Data {
			item.Detail = fmt.Sprintf("%s details", known.Label)
			item.Documentation = fmt.Sprintf("%s documentation", known.Label)
			return item
		}
	}
	return item
}
