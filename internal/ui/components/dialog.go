package components

import "github.com/charmbracelet/lipgloss"

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(boxBorderColor).
			Padding(1, 2).
			Width(40)

	dialogHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
)

// InputDialog frames an already rendered input field under a title.
func InputDialog(title, field string) string {
	hint := dialogHintStyle.Render("enter: submit | esc: cancel")
	return dialogStyle.Render(boxHeaderStyle.Render(SanitizeOneLine(title)) + "\n\n" + field + "\n" + hint)
}
