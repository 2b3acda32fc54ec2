package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary   = lipgloss.Color("#7f57b4") // purple
	ColorSecondary = lipgloss.Color("#436b77") // teal
	ColorAccent    = lipgloss.Color("#a7754e") // warm
	ColorText      = lipgloss.Color("#d7d9da") // main text
	ColorMuted     = lipgloss.Color("#9ba0bf") // muted text
	ColorSuccess   = lipgloss.Color("#3f866b") // green
	ColorWarning   = lipgloss.Color("#c78854") // warning
)

// --- Reusable Styles ---

var (
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// HeaderRowStyle styles header decoration rows.
	HeaderRowStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	// FooterRowStyle styles footer decoration rows.
	FooterRowStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)

	// EmptyRowStyle styles the empty state row.
	EmptyRowStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
