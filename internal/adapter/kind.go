package adapter

import "fmt"

// Kind classifies a row position.
type Kind int

const (
	KindItem Kind = iota
	KindHeader
	KindFooter
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindFooter:
		return "footer"
	default:
		return "item"
	}
}

// RowKind is the classification of a row plus the logical index of the
// decoration view it maps to. Index is always 0 for items.
type RowKind struct {
	Kind  Kind
	Index int
}

// Header returns the kind of the header at logical index i.
func Header(i int) RowKind { return RowKind{Kind: KindHeader, Index: i} }

// Footer returns the kind of the footer at logical index i.
func Footer(i int) RowKind { return RowKind{Kind: KindFooter, Index: i} }

// Item returns the kind shared by every data row.
func Item() RowKind { return RowKind{Kind: KindItem} }

// IsDecoration reports whether the row is a header or footer.
func (r RowKind) IsDecoration() bool {
	return r.Kind == KindHeader || r.Kind == KindFooter
}

func (r RowKind) String() string {
	if r.Kind == KindItem {
		return "item"
	}
	return fmt.Sprintf("%s(%d)", r.Kind, r.Index)
}

// --- Type IDs ---

// View type ids handed to hosts that pool views by a single int key.
// Header h maps to TypeHeader-h and footer f to TypeFooter+f, so every
// decoration row gets an id of its own.
const (
	TypeHeader = -1
	TypeItem   = 0
	TypeFooter = 1
)

// TypeID encodes a row kind as a signed view type id.
func TypeID(r RowKind) int {
	switch r.Kind {
	case KindHeader:
		return TypeHeader - r.Index
	case KindFooter:
		return TypeFooter + r.Index
	default:
		return TypeItem
	}
}

// KindForType decodes a view type id produced by TypeID.
func KindForType(id int) RowKind {
	switch {
	case id <= TypeHeader:
		return Header(TypeHeader - id)
	case id >= TypeFooter:
		return Footer(id - TypeFooter)
	default:
		return Item()
	}
}
