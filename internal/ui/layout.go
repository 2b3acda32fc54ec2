package ui

import (
	"fmt"
	"log/slog"

	"github.com/gravitrone/hflist/internal/adapter"
	"github.com/gravitrone/hflist/internal/config"
	"github.com/gravitrone/hflist/internal/ui/components"
)

// Layout wires the item source and the decoration rows into an adapter.
type Layout struct {
	Rows   *adapter.Adapter[components.Row]
	Source *ItemSource
	Empty  *components.TextView

	headerSeq int
	footerSeq int
}

// NewLayout builds the rows described by cfg. The empty view is always
// created; it is appended as the last footer when cfg.EmptyAsFooter is set
// and is managed by the adapter either way.
func NewLayout(cfg *config.Config, logger *slog.Logger) *Layout {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	source := NewItemSource(cfg.Items...)
	if cfg.SortItems {
		source.Sort()
	}

	l := &Layout{
		Rows:   adapter.New[components.Row](source, adapter.WithLogger(logger)),
		Source: source,
		Empty:  components.NewTextView(cfg.EmptyText, EmptyRowStyle),
	}
	for _, text := range cfg.Headers {
		l.addHeader(text)
	}
	for _, text := range cfg.Footers {
		l.addFooter(text)
	}
	if cfg.EmptyAsFooter {
		l.Rows.AddFooterView(l.Empty)
	}
	l.Rows.SetEmptyView(l.Empty)
	return l
}

func (l *Layout) addHeader(text string) {
	l.headerSeq++
	l.Rows.AddHeaderView(components.NewTextView(text, HeaderRowStyle))
}

func (l *Layout) addFooter(text string) {
	l.footerSeq++
	l.Rows.AddFooterView(components.NewTextView(text, FooterRowStyle))
}

// AddHeader appends a numbered header row.
func (l *Layout) AddHeader() string {
	text := fmt.Sprintf("Header %d", l.headerSeq+1)
	l.addHeader(text)
	return text
}

// RemoveLastHeader removes the bottom header row.
func (l *Layout) RemoveLastHeader() (string, bool) {
	headers := l.Rows.HeaderViews()
	if len(headers) == 0 {
		return "", false
	}
	last := headers[len(headers)-1]
	return rowText(last), l.Rows.RemoveHeaderView(last)
}

// AddFooter appends a numbered footer row.
func (l *Layout) AddFooter() string {
	text := fmt.Sprintf("Footer %d", l.footerSeq+1)
	l.addFooter(text)
	return text
}

// RemoveLastFooter removes the bottom footer row, which may be the empty view.
func (l *Layout) RemoveLastFooter() (string, bool) {
	footers := l.Rows.FooterViews()
	if len(footers) == 0 {
		return "", false
	}
	last := footers[len(footers)-1]
	return rowText(last), l.Rows.RemoveFooterView(last)
}

// EmptyManaged reports whether the adapter drives the empty view.
func (l *Layout) EmptyManaged() bool {
	return l.Rows.EmptyView() != nil
}

// ToggleEmptyManagement starts or stops empty view management and returns
// the new state.
func (l *Layout) ToggleEmptyManagement() bool {
	if l.EmptyManaged() {
		l.Rows.SetEmptyView(nil)
		return false
	}
	l.Rows.SetEmptyView(l.Empty)
	return true
}

// AddItem appends an item and refreshes the rows.
func (l *Layout) AddItem(text string) bool {
	if !l.Source.Add(text) {
		return false
	}
	l.Rows.Refresh()
	return true
}

// RemoveItemAt removes the item shown at row position and refreshes.
func (l *Layout) RemoveItemAt(position int) (Item, bool) {
	kind, err := l.Rows.RowKind(position)
	if err != nil || kind.Kind != adapter.KindItem {
		return Item{}, false
	}
	index := l.Rows.AdjustedPosition(position)
	item, _ := l.Source.At(index)
	if !l.Source.RemoveAt(index) {
		return Item{}, false
	}
	l.Rows.Refresh()
	return item, true
}

// SortItems sorts the source and refreshes.
func (l *Layout) SortItems() {
	l.Source.Sort()
	l.Rows.Refresh()
}

// RowInfo describes one row of the index space.
type RowInfo struct {
	Position int    `yaml:"position"`
	Kind     string `yaml:"kind"`
	TypeID   int    `yaml:"type_id"`
	Index    int    `yaml:"index"`
	Text     string `yaml:"text"`
	Visible  bool   `yaml:"visible"`
}

// Describe lists every row with its kind, type id and logical index. Index
// is the header/footer index for decorations and the adjusted index for
// items.
func (l *Layout) Describe() []RowInfo {
	headers := l.Rows.HeaderViews()
	footers := l.Rows.FooterViews()
	total := l.Rows.RowCount()

	out := make([]RowInfo, 0, total)
	for pos := 0; pos < total; pos++ {
		kind, err := l.Rows.RowKind(pos)
		if err != nil {
			break
		}
		info := RowInfo{
			Position: pos,
			Kind:     kind.Kind.String(),
			TypeID:   adapter.TypeID(kind),
			Index:    kind.Index,
			Visible:  true,
		}
		switch kind.Kind {
		case adapter.KindHeader:
			info.Text, info.Visible = rowText(headers[kind.Index]), rowVisible(headers[kind.Index])
		case adapter.KindFooter:
			info.Text, info.Visible = rowText(footers[kind.Index]), rowVisible(footers[kind.Index])
		default:
			info.Index = l.Rows.AdjustedPosition(pos)
			item, _ := l.Source.At(info.Index)
			info.Text = item.Text
		}
		out = append(out, info)
	}
	return out
}

func rowText(r components.Row) string {
	if v, ok := r.(*components.TextView); ok {
		return v.Text
	}
	return ""
}

func rowVisible(r components.Row) bool {
	if v, ok := r.(*components.TextView); ok {
		return v.Visible()
	}
	return true
}
