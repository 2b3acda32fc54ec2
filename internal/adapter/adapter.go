// Package adapter maps header, item and footer sequences onto the single
// row index space a list host renders.
//
// Rows [0, H) are headers, [H, H+N) are items and [H+N, H+N+F) are footers.
// Item callbacks always receive the adjusted index (position - H), so data
// sources never need to know how many headers are present.
//
// An Adapter is not safe for concurrent use. It is meant to be driven from
// the host's update loop only.
package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

var (
	// ErrPositionOutOfRange is returned for positions outside [0, TotalCount()).
	ErrPositionOutOfRange = errors.New("position out of range")
	// ErrUnknownViewType is returned when a type id or row kind does not
	// match any current row.
	ErrUnknownViewType = errors.New("unknown view type")
)

// DataSource supplies the item rows.
type DataSource[V any] interface {
	// Count returns the number of items, excluding headers and footers.
	Count() int
	// CreateItemView builds a new, unbound item view.
	CreateItemView(parent Parent) V
	// BindItemView fills view with the item at index. index is the
	// adjusted index, never the raw row position.
	BindItemView(view V, index int)
}

// Parent is the host container new views are created for.
type Parent interface {
	Width() int
}

// Toggler is a view whose visibility can be switched.
type Toggler interface {
	SetVisible(visible bool)
}

// Observer receives row change notifications.
type Observer interface {
	DataSetChanged()
	RowInserted(position int)
	RowRemoved(position int)
}

// Option configures an Adapter.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for notification tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Adapter wraps a DataSource with header and footer decoration views.
type Adapter[V comparable] struct {
	source    DataSource[V]
	headers   []V
	footers   []V
	emptyView Toggler
	observers []Observer
	logger    *slog.Logger
}

// New creates an adapter over source.
func New[V comparable](source DataSource[V], opts ...Option) *Adapter[V] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Adapter[V]{
		source: source,
		logger: o.logger.With("component", "adapter"),
	}
}

// --- Observers ---

// RegisterObserver subscribes o to row notifications. Registering the same
// observer twice has no effect.
func (a *Adapter[V]) RegisterObserver(o Observer) {
	if o == nil || slices.Contains(a.observers, o) {
		return
	}
	a.observers = append(a.observers, o)
}

// UnregisterObserver removes o. Unknown observers are ignored.
func (a *Adapter[V]) UnregisterObserver(o Observer) {
	if i := slices.Index(a.observers, o); i >= 0 {
		a.observers = slices.Delete(a.observers, i, i+1)
	}
}

func (a *Adapter[V]) notifyChanged() {
	a.logger.Debug("data set changed", "total", a.TotalCount())
	for _, o := range a.observers {
		o.DataSetChanged()
	}
}

func (a *Adapter[V]) notifyInserted(position int) {
	a.logger.Debug("row inserted", "position", position)
	for _, o := range a.observers {
		o.RowInserted(position)
	}
}

func (a *Adapter[V]) notifyRemoved(position int) {
	a.logger.Debug("row removed", "position", position)
	for _, o := range a.observers {
		o.RowRemoved(position)
	}
}

// --- Counting ---

func (a *Adapter[V]) dataCount() int {
	if a.source == nil {
		return 0
	}
	return a.source.Count()
}

// TotalCount returns items plus headers plus footers.
func (a *Adapter[V]) TotalCount() int {
	return a.dataCount() + len(a.headers) + len(a.footers)
}

// AdjustedPosition converts a row position to an item index. The result is
// negative or past the item count when position is a header or footer row;
// callers are expected to range check.
func (a *Adapter[V]) AdjustedPosition(position int) int {
	return position - len(a.headers)
}

// RowKind classifies position.
func (a *Adapter[V]) RowKind(position int) (RowKind, error) {
	total := a.TotalCount()
	if position < 0 || position >= total {
		return RowKind{}, fmt.Errorf("%w: %d not in [0, %d)", ErrPositionOutOfRange, position, total)
	}
	if position < len(a.headers) {
		return Header(position), nil
	}
	footerStart := total - len(a.footers)
	if position >= footerStart {
		return Footer(position - footerStart), nil
	}
	return Item(), nil
}

// --- Views ---

// CreateViewFor returns a holder for kind. Headers and footers reuse the
// caller supplied view as is; items are built by the data source.
func (a *Adapter[V]) CreateViewFor(kind RowKind, parent Parent) (*Holder[V], error) {
	switch kind.Kind {
	case KindHeader:
		if kind.Index < 0 || kind.Index >= len(a.headers) {
			return nil, fmt.Errorf("%w: %s with %d headers", ErrUnknownViewType, kind, len(a.headers))
		}
		return newHolder(a.headers[kind.Index], kind), nil
	case KindFooter:
		if kind.Index < 0 || kind.Index >= len(a.footers) {
			return nil, fmt.Errorf("%w: %s with %d footers", ErrUnknownViewType, kind, len(a.footers))
		}
		return newHolder(a.footers[kind.Index], kind), nil
	case KindItem:
		if a.source == nil {
			return nil, fmt.Errorf("%w: no data source", ErrUnknownViewType)
		}
		return newHolder(a.source.CreateItemView(parent), kind), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownViewType, kind)
}

// Bind binds the row at position into holder. Decoration rows are never
// rebound; item rows are bound with the adjusted index.
func (a *Adapter[V]) Bind(holder *Holder[V], position int) error {
	kind, err := a.RowKind(position)
	if err != nil {
		return err
	}
	if holder == nil {
		return fmt.Errorf("bind %d: nil holder", position)
	}
	holder.position = position
	if kind.IsDecoration() || holder.Kind().IsDecoration() {
		return nil
	}
	a.source.BindItemView(holder.View, a.AdjustedPosition(position))
	return nil
}

// Refresh invalidates every row and reapplies the empty view rule. It must
// not be called from inside a create or bind callback.
func (a *Adapter[V]) Refresh() {
	a.notifyChanged()
	a.applyEmptyView()
}

// SetEmptyView sets the view shown while the data source is empty. A nil
// view stops empty view management.
func (a *Adapter[V]) SetEmptyView(view Toggler) {
	a.emptyView = view
	a.applyEmptyView()
}

// EmptyView returns the managed empty view, or nil.
func (a *Adapter[V]) EmptyView() Toggler {
	return a.emptyView
}

func (a *Adapter[V]) applyEmptyView() {
	if a.emptyView == nil {
		return
	}
	a.emptyView.SetVisible(a.dataCount() == 0)
}

// --- Headers ---

// HeaderViews returns a copy of the header sequence.
func (a *Adapter[V]) HeaderViews() []V {
	return slices.Clone(a.headers)
}

// AddHeaderView appends view below any existing headers.
func (a *Adapter[V]) AddHeaderView(view V) {
	a.headers = append(a.headers, view)
	a.notifyInserted(len(a.headers) - 1)
}

// RemoveHeaderView removes view and reports whether it was present.
func (a *Adapter[V]) RemoveHeaderView(view V) bool {
	i := slices.Index(a.headers, view)
	if i < 0 {
		return false
	}
	a.headers = slices.Delete(a.headers, i, i+1)
	a.notifyRemoved(i)
	return true
}

// --- Footers ---

// FooterViews returns a copy of the footer sequence.
func (a *Adapter[V]) FooterViews() []V {
	return slices.Clone(a.footers)
}

// AddFooterView appends view below the items and any existing footers.
func (a *Adapter[V]) AddFooterView(view V) {
	a.footers = append(a.footers, view)
	a.notifyInserted(a.TotalCount() - 1)
}

// RemoveFooterView removes view and reports whether it was present.
func (a *Adapter[V]) RemoveFooterView(view V) bool {
	i := slices.Index(a.footers, view)
	if i < 0 {
		return false
	}
	position := a.TotalCount() - len(a.footers) + i
	a.footers = slices.Delete(a.footers, i, i+1)
	a.notifyRemoved(position)
	return true
}
