package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxBorderColor = lipgloss.Color("#2f3b45")

	boxBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(boxBorderColor).
			Padding(0, 1)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4")).
			Bold(true)

	boxValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))

	boxLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)

	errorBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7a2f3a")).
			Padding(0, 1)

	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e06c75")).
				Bold(true)
)

// boxWidth picks ~80% of the terminal, between 30 and 96 columns.
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	return min(max(width*80/100, 30), 96)
}

func safeBoxWidth(width int) int {
	return min(boxWidth(width), max(width, 0))
}

// styleWidth converts an outer box width to a lipgloss width, which does not
// count the border.
func styleWidth(width int) int {
	return max(safeBoxWidth(width)-2, 0)
}

// Box renders content inside a bordered box.
func Box(content string, width int) string {
	return boxBorder.Width(styleWidth(width)).Render(content)
}

// BoxContentWidth returns the inner content width excluding border and padding.
func BoxContentWidth(width int) int {
	// Border adds 2, padding adds 2.
	return max(safeBoxWidth(width)-4, 0)
}

// ClampTextWidth truncates text to the given visual width.
func ClampTextWidth(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	body := SanitizeText(message)
	if title != "" {
		body = errorHeaderStyle.Render(title) + "\n\n" + body
	}
	return errorBorder.Width(styleWidth(width)).Render(body)
}

// TitledBox renders a box with the title set into the top border.
func TitledBox(title, content string, width int) string {
	boxed := Box(content, width)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middle := lineWidth - 2
	label := fmt.Sprintf(" %s ", SanitizeOneLine(title))
	if lipgloss.Width(label) > middle-1 {
		label = truncateRunes(label, max(middle-1, 0))
	}
	rest := max(middle-1-lipgloss.Width(label), 0)

	borderStyle := lipgloss.NewStyle().Foreground(boxBorderColor)
	lines[0] = borderStyle.Render(border.TopLeft+border.Top) +
		boxHeaderStyle.Render(label) +
		borderStyle.Render(strings.Repeat(border.Top, rest)+border.TopRight)
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// TableRow is a single row in a key-value table.
type TableRow struct {
	Label string
	Value string
}

// Table renders aligned label/value rows inside a titled box.
func Table(title string, rows []TableRow, width int) string {
	if len(rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(SanitizeOneLine(r.Label)))
	}
	// Without a width, values are not clamped.
	valueWidth := 0
	if contentWidth := BoxContentWidth(width); contentWidth > 0 {
		labelWidth = min(labelWidth, 24, max(contentWidth/2, 4))
		valueWidth = max(contentWidth-labelWidth-2, 4)
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := boxLabelStyle.Render(padRight(ClampTextWidth(r.Label, labelWidth), labelWidth))
		lines = append(lines, label+"  "+boxValueStyle.Render(ClampTextWidth(r.Value, valueWidth)))
	}
	return TitledBox(title, strings.Join(lines, "\n"), width)
}
