package adapter

// Holder wraps a view together with the view type it was created for.
type Holder[V any] struct {
	View     V
	TypeID   int
	position int
}

func newHolder[V any](view V, kind RowKind) *Holder[V] {
	return &Holder[V]{View: view, TypeID: TypeID(kind), position: -1}
}

// Kind decodes the holder's type id.
func (h *Holder[V]) Kind() RowKind {
	return KindForType(h.TypeID)
}

// Position returns the row the holder was last bound to, or -1.
func (h *Holder[V]) Position() int {
	return h.position
}

// --- Host protocol ---
//
// Hosts ask for a row count, a view type per row, views per type and
// binding per row. These methods translate that protocol onto the
// adapter's row kinds.

// RowCount returns the number of rows the host should lay out.
func (a *Adapter[V]) RowCount() int {
	return a.TotalCount()
}

// ViewType returns the pooled view type id for position.
func (a *Adapter[V]) ViewType(position int) (int, error) {
	kind, err := a.RowKind(position)
	if err != nil {
		return 0, err
	}
	return TypeID(kind), nil
}

// CreateView builds a holder for a type id returned by ViewType.
func (a *Adapter[V]) CreateView(parent Parent, typeID int) (*Holder[V], error) {
	return a.CreateViewFor(KindForType(typeID), parent)
}

// BindView binds holder to the row at position.
func (a *Adapter[V]) BindView(holder *Holder[V], position int) error {
	return a.Bind(holder, position)
}
