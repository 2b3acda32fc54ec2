package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var statusRuleStyle = lipgloss.NewStyle().
	Foreground(boxBorderColor)

// StatusBar draws line centered under a rule spanning width. Without a width
// the line is returned as is.
func StatusBar(line string, width int) string {
	if line == "" || width <= 0 {
		return line
	}
	rule := statusRuleStyle.Render(strings.Repeat(lipgloss.NormalBorder().Top, width))
	return rule + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
