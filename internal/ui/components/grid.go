package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GridColumn is one column of a Grid. Width excludes separators.
type GridColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

// GridRow is one data row of a Grid. Dim rows are drawn muted.
type GridRow struct {
	Cells []string
	Dim   bool
}

const gridIndent = 2

var (
	gridSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2f3b45"))

	gridActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da")).
			Background(lipgloss.Color("#262035")).
			Bold(true)

	gridDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5c6170")).
			Italic(true)
)

// Grid renders rows under a header line and a rule. The last column absorbs
// whatever width is left so every line is exactly width columns. active is
// the highlighted row index, or -1.
func Grid(columns []GridColumn, rows []GridRow, width, active int) string {
	if width <= 0 || len(columns) == 0 {
		return ""
	}
	sep := lipgloss.RoundedBorder().Left
	cols := fitColumns(columns, lipgloss.Width(sep), width)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, gridLine(cols, headers, sep, width, boxLabelStyle))
	lines = append(lines, gridRule(cols, width))
	for i, row := range rows {
		var style lipgloss.Style
		switch {
		case i == active:
			style = gridActiveStyle
		case row.Dim:
			style = gridDimStyle
		default:
			style = boxValueStyle
		}
		lines = append(lines, gridLine(cols, row.Cells, sep, width, style))
	}
	return strings.Join(lines, "\n")
}

func fitColumns(columns []GridColumn, sepWidth, width int) []GridColumn {
	fitted := make([]GridColumn, len(columns))
	copy(fitted, columns)

	used := (len(fitted) - 1) * max(sepWidth, 1)
	for i := range fitted {
		fitted[i].Width = max(fitted[i].Width, 1)
		used += fitted[i].Width
	}
	last := len(fitted) - 1
	fitted[last].Width = max(fitted[last].Width+width-gridIndent-used, 1)
	return fitted
}

func gridLine(cols []GridColumn, cells []string, sep string, width int, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridIndent))
	for i, col := range cols {
		if i > 0 {
			b.WriteString(gridSepStyle.Inline(true).Render(sep))
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		b.WriteString(style.Inline(true).Render(alignCell(text, col.Width, col.Align)))
	}
	return padRight(b.String(), width)
}

func gridRule(cols []GridColumn, width int) string {
	border := lipgloss.RoundedBorder()
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = strings.Repeat(border.Top, col.Width)
	}
	line := strings.Repeat(" ", gridIndent) + strings.Join(parts, border.Middle)
	return gridSepStyle.Inline(true).Render(padRight(line, width))
}

func alignCell(text string, width int, align lipgloss.Position) string {
	text = ClampTextWidth(text, width)
	pad := max(width-lipgloss.Width(text), 0)
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + text
	case lipgloss.Center:
		return strings.Repeat(" ", pad/2) + text + strings.Repeat(" ", pad-pad/2)
	}
	return text + strings.Repeat(" ", pad)
}
