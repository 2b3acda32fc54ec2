package ui

import (
	"slices"
	"strings"

	"github.com/fvbommel/sortorder"
	"github.com/mattn/go-runewidth"

	"github.com/gravitrone/hflist/internal/adapter"
	"github.com/gravitrone/hflist/internal/ui/components"
)

// Item is a single list entry.
type Item struct {
	Text string
}

// ItemSource owns the list items and feeds them to the adapter. It never
// notifies anyone itself; callers refresh the adapter after mutating it.
type ItemSource struct {
	items []Item
}

// NewItemSource creates a source seeded with texts.
func NewItemSource(texts ...string) *ItemSource {
	s := &ItemSource{}
	for _, t := range texts {
		s.Add(t)
	}
	return s
}

// Count implements adapter.DataSource.
func (s *ItemSource) Count() int {
	return len(s.items)
}

// CreateItemView implements adapter.DataSource.
func (s *ItemSource) CreateItemView(_ adapter.Parent) components.Row {
	return &itemView{}
}

// BindItemView implements adapter.DataSource. index is the item index, not
// the row position.
func (s *ItemSource) BindItemView(view components.Row, index int) {
	v, ok := view.(*itemView)
	if !ok || index < 0 || index >= len(s.items) {
		return
	}
	v.item = s.items[index]
	v.index = index
}

// Items returns a copy of the items.
func (s *ItemSource) Items() []Item {
	return slices.Clone(s.items)
}

// At returns the item at index.
func (s *ItemSource) At(index int) (Item, bool) {
	if index < 0 || index >= len(s.items) {
		return Item{}, false
	}
	return s.items[index], true
}

// Add appends an item. Blank text is ignored.
func (s *ItemSource) Add(text string) bool {
	text = strings.TrimSpace(components.SanitizeOneLine(text))
	if text == "" {
		return false
	}
	s.items = append(s.items, Item{Text: text})
	return true
}

// RemoveAt deletes the item at index.
func (s *ItemSource) RemoveAt(index int) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.items = slices.Delete(s.items, index, index+1)
	return true
}

// Sort orders items naturally, so "item 2" sorts before "item 10".
func (s *ItemSource) Sort() {
	slices.SortStableFunc(s.items, func(a, b Item) int {
		switch {
		case sortorder.NaturalLess(a.Text, b.Text):
			return -1
		case sortorder.NaturalLess(b.Text, a.Text):
			return 1
		}
		return 0
	})
}

// itemView renders one bound item.
type itemView struct {
	item  Item
	index int
}

func (v *itemView) Render(width int, selected bool) string {
	prefix := "  "
	style := NormalStyle
	if selected {
		prefix = "› "
		style = SelectedStyle
	}
	marker := MutedStyle.Render("• ")
	text := v.item.Text
	if width > 4 {
		text = runewidth.Truncate(text, width-4, "…")
	}
	return style.Render(prefix) + marker + style.Render(text)
}
