package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	textViewSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)
)

// TextView is a single line row with its own visibility. It is used for
// header, footer and empty state rows.
type TextView struct {
	Text   string
	Style  lipgloss.Style
	hidden bool
}

// NewTextView creates a visible text row.
func NewTextView(text string, style lipgloss.Style) *TextView {
	return &TextView{Text: text, Style: style}
}

// SetVisible shows or hides the row.
func (v *TextView) SetVisible(visible bool) {
	v.hidden = !visible
}

// Visible reports whether the row is drawn.
func (v *TextView) Visible() bool {
	return !v.hidden
}

// Render draws the row clamped to width.
func (v *TextView) Render(width int, selected bool) string {
	if v.hidden {
		return ""
	}
	text := SanitizeOneLine(v.Text)
	if width > 2 {
		text = runewidth.Truncate(text, width-2, "…")
	}
	style := v.Style
	if selected {
		style = textViewSelectedStyle
	}
	return style.Render(rowPrefix(selected) + text)
}

func rowPrefix(selected bool) string {
	if selected {
		return "› "
	}
	return "  "
}
