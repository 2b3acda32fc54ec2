package components

import (
	"log/slog"
	"strings"

	"github.com/gravitrone/hflist/internal/adapter"
)

// Row is a view the list can draw. Hidden rows render as "".
type Row interface {
	Render(width int, selected bool) string
}

// RowAdapter is the protocol the list drives to obtain rows.
type RowAdapter interface {
	RowCount() int
	ViewType(position int) (int, error)
	CreateView(parent adapter.Parent, typeID int) (*adapter.Holder[Row], error)
	BindView(holder *adapter.Holder[Row], position int) error
	RegisterObserver(o adapter.Observer)
	UnregisterObserver(o adapter.Observer)
}

// List is a virtualized scrollable list with cursor. Only rows inside the
// visible window are bound; holders that scroll out are pooled by view type
// and reused for rows of the same type.
type List struct {
	Cursor   int
	Offset   int
	PageSize int

	width    int
	rows     RowAdapter
	attached map[int]*adapter.Holder[Row]
	pool     map[int][]*adapter.Holder[Row]
	created  int
	bound    int
	logger   *slog.Logger
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	return &List{
		PageSize: pageSize,
		attached: map[int]*adapter.Holder[Row]{},
		pool:     map[int][]*adapter.Holder[Row]{},
		logger:   slog.Default().With("component", "list"),
	}
}

// SetAdapter attaches rows, detaching any previous adapter, and resets the
// cursor.
func (l *List) SetAdapter(rows RowAdapter) {
	if l.rows != nil {
		l.rows.UnregisterObserver(l)
	}
	l.rows = rows
	l.attached = map[int]*adapter.Holder[Row]{}
	l.pool = map[int][]*adapter.Holder[Row]{}
	l.Cursor = 0
	l.Offset = 0
	if rows != nil {
		rows.RegisterObserver(l)
	}
}

// SetLogger replaces the list logger.
func (l *List) SetLogger(logger *slog.Logger) {
	if logger != nil {
		l.logger = logger.With("component", "list")
	}
}

// SetSize updates the drawable width and the page size.
func (l *List) SetSize(width, height int) {
	l.width = width
	if height > 0 {
		l.PageSize = height
	}
	l.ensureVisible()
}

// Width implements adapter.Parent.
func (l *List) Width() int {
	return l.width
}

// Len returns the number of rows.
func (l *List) Len() int {
	if l.rows == nil {
		return 0
	}
	return l.rows.RowCount()
}

// --- Navigation ---

// Down moves the cursor to the next drawn row.
func (l *List) Down() {
	if next := l.nextShown(l.Cursor+1, 1); next >= 0 {
		l.Cursor = next
		l.ensureVisible()
	}
}

// Up moves the cursor to the previous drawn row.
func (l *List) Up() {
	if prev := l.nextShown(l.Cursor-1, -1); prev >= 0 {
		l.Cursor = prev
		l.ensureVisible()
	}
}

// PageDown moves the cursor one page down.
func (l *List) PageDown() {
	l.selectNear(l.Cursor+max(l.PageSize, 1), 1)
}

// PageUp moves the cursor one page up.
func (l *List) PageUp() {
	l.selectNear(l.Cursor-max(l.PageSize, 1), -1)
}

// Home moves the cursor to the first drawn row.
func (l *List) Home() {
	l.selectNear(0, 1)
}

// End moves the cursor to the last drawn row.
func (l *List) End() {
	l.selectNear(l.Len()-1, -1)
}

// Select moves the cursor to index, clamped to the row range. A hidden
// target moves the cursor to the nearest drawn row below it, or above it
// when there is none.
func (l *List) Select(index int) {
	l.selectNear(index, 1)
}

func (l *List) selectNear(index, dir int) {
	l.Cursor = min(max(index, 0), max(l.Len()-1, 0))
	l.settle(dir)
	l.ensureVisible()
}

// settle moves a cursor sitting on a hidden row, searching in dir first.
func (l *List) settle(dir int) {
	if l.Len() == 0 || !l.hidden(l.Cursor) {
		return
	}
	if pos := l.nextShown(l.Cursor, dir); pos >= 0 {
		l.Cursor = pos
	} else if pos := l.nextShown(l.Cursor, -dir); pos >= 0 {
		l.Cursor = pos
	}
}

// nextShown returns the first drawn row from position in dir, or -1.
func (l *List) nextShown(position, dir int) int {
	for pos := position; pos >= 0 && pos < l.Len(); pos += dir {
		if !l.hidden(pos) {
			return pos
		}
	}
	return -1
}

// hidden reports whether the row at position draws nothing. Only decoration
// rows can hide; item rows always take the cursor. Decoration views are
// checked without binding, so the probe leaves pools and counters alone.
func (l *List) hidden(position int) bool {
	typeID, err := l.rows.ViewType(position)
	if err != nil {
		return true
	}
	if typeID == adapter.TypeItem {
		return false
	}
	h, ok := l.attached[position]
	if !ok || h.TypeID != typeID {
		if h, err = l.rows.CreateView(l, typeID); err != nil {
			return true
		}
	}
	return h.View.Render(l.width, false) == ""
}

// Selected returns the row position under the cursor.
func (l *List) Selected() int {
	return l.Cursor
}

// IsSelected returns true if the given absolute index is the cursor.
func (l *List) IsSelected(absIdx int) bool {
	return absIdx == l.Cursor
}

func (l *List) ensureVisible() {
	count := l.Len()
	if l.Cursor >= count {
		l.Cursor = count - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.PageSize <= 0 {
		l.Offset = l.Cursor
		return
	}
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+l.PageSize {
		l.Offset = l.Cursor - l.PageSize + 1
	}
	if maxOffset := count - l.PageSize; l.Offset > maxOffset {
		l.Offset = max(maxOffset, 0)
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
}

// --- Observer ---

// DataSetChanged recycles every bound row.
func (l *List) DataSetChanged() {
	for pos := range l.attached {
		l.scrap(pos)
	}
	l.ensureVisible()
}

// RowInserted shifts bound rows at or after position down by one. The cursor
// stays on the row it pointed at.
func (l *List) RowInserted(position int) {
	l.shift(position, 1)
	if l.Cursor >= position && l.Len() > 1 {
		l.Cursor++
	}
	l.ensureVisible()
}

// RowRemoved recycles the row at position and shifts later rows up by one.
func (l *List) RowRemoved(position int) {
	l.scrap(position)
	l.shift(position+1, -1)
	if l.Cursor > position {
		l.Cursor--
	}
	l.ensureVisible()
}

func (l *List) shift(from, delta int) {
	moved := make(map[int]*adapter.Holder[Row], len(l.attached))
	for pos, h := range l.attached {
		if pos >= from {
			pos += delta
		}
		moved[pos] = h
	}
	l.attached = moved
}

// scrap detaches the holder at position. Only item holders are pooled:
// decoration type ids are positional and go stale on any structural change,
// so a pooled decoration holder could wrap another row's view.
func (l *List) scrap(position int) {
	h, ok := l.attached[position]
	if !ok {
		return
	}
	delete(l.attached, position)
	if h.TypeID == adapter.TypeItem {
		l.pool[h.TypeID] = append(l.pool[h.TypeID], h)
	}
}

// --- Rendering ---

// Visible returns the rendered rows inside the window. Hidden rows are
// skipped and never hold the cursor.
func (l *List) Visible() []string {
	count := l.Len()
	if count == 0 {
		for pos := range l.attached {
			l.scrap(pos)
		}
		return nil
	}
	// Visibility may have changed since the cursor last moved.
	l.settle(1)
	l.ensureVisible()
	end := min(l.Offset+max(l.PageSize, 1), count)

	for pos := range l.attached {
		if pos < l.Offset || pos >= end {
			l.scrap(pos)
		}
	}

	var lines []string
	for pos := l.Offset; pos < end; pos++ {
		h := l.holderFor(pos)
		if h == nil {
			continue
		}
		out := h.View.Render(l.width, l.IsSelected(pos))
		if out == "" {
			continue
		}
		lines = append(lines, out)
	}
	return lines
}

// View renders the visible window.
func (l *List) View() string {
	return strings.Join(l.Visible(), "\n")
}

func (l *List) holderFor(position int) *adapter.Holder[Row] {
	typeID, err := l.rows.ViewType(position)
	if err != nil {
		l.logger.Warn("view type", "position", position, "error", err)
		return nil
	}
	if h, ok := l.attached[position]; ok {
		if h.TypeID == typeID && h.Position() == position {
			return h
		}
		l.scrap(position)
	}

	var h *adapter.Holder[Row]
	if pooled := l.pool[typeID]; len(pooled) > 0 {
		h = pooled[len(pooled)-1]
		l.pool[typeID] = pooled[:len(pooled)-1]
	} else {
		h, err = l.rows.CreateView(l, typeID)
		if err != nil {
			l.logger.Warn("create view", "position", position, "type", typeID, "error", err)
			return nil
		}
		l.created++
	}
	if err := l.rows.BindView(h, position); err != nil {
		l.logger.Warn("bind view", "position", position, "error", err)
		return nil
	}
	l.bound++
	l.attached[position] = h
	return h
}

// --- Stats ---

// Created returns how many holders the list asked the adapter to create.
func (l *List) Created() int { return l.created }

// Bound returns how many bind calls the list made.
func (l *List) Bound() int { return l.bound }

// Pooled returns the number of recycled holders waiting for typeID.
func (l *List) Pooled(typeID int) int { return len(l.pool[typeID]) }
