package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/hflist/internal/adapter"
	"github.com/gravitrone/hflist/internal/config"
	"github.com/gravitrone/hflist/internal/ui/components"
)

// Rows reserved for the title, stats panel and status bar when the page
// size is derived from the terminal height.
const chromeHeight = 16

// --- Messages ---

type clearToastMsg struct{}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model: a header/footer list plus controls to mutate
// its items and decoration rows.
type App struct {
	config *config.Config
	layout *Layout
	list   *components.List
	keys   keyMap
	help   help.Model
	input  textinput.Model
	logger *slog.Logger

	width  int
	height int

	helpOpen    bool
	inspectOpen bool
	inputOpen   bool
	toast       *appToast
}

// NewApp creates the root application model.
func NewApp(cfg *config.Config, logger *slog.Logger) App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	layout := NewLayout(cfg, logger)

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	list := components.NewList(pageSize)
	list.SetLogger(logger)
	list.SetAdapter(layout.Rows)

	return App{
		config: cfg,
		layout: layout,
		list:   list,
		keys:   newKeyMap(cfg.VimKeys),
		help:   newHelp(),
		input:  newItemInput(),
		logger: logger.With("component", "app"),
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(components.BoxContentWidth(msg.Width), a.pageSize())
		a.help.Width = msg.Width
		return a, nil

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case tea.KeyMsg:
		if a.inputOpen {
			return a.handleInputKeys(msg)
		}
		return a.handleKeys(msg)
	}

	// Cursor blink ticks for the prompt.
	if a.inputOpen {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) pageSize() int {
	if a.config.PageSize > 0 {
		return a.config.PageSize
	}
	return max(a.height-chromeHeight, 3)
}

func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.helpOpen {
		if key.Matches(msg, a.keys.Cancel, a.keys.Help) {
			a.helpOpen = false
			return a, nil
		}
		if !key.Matches(msg, a.keys.Quit) {
			return a, nil
		}
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.helpOpen = true
	case key.Matches(msg, a.keys.Up):
		a.list.Up()
	case key.Matches(msg, a.keys.Down):
		a.list.Down()
	case key.Matches(msg, a.keys.PageUp):
		a.list.PageUp()
	case key.Matches(msg, a.keys.PageDown):
		a.list.PageDown()
	case key.Matches(msg, a.keys.Home):
		a.list.Home()
	case key.Matches(msg, a.keys.End):
		a.list.End()
	case key.Matches(msg, a.keys.AddItem):
		a.inputOpen = true
		a.input.Reset()
		cmd := a.input.Focus()
		return a, cmd
	case key.Matches(msg, a.keys.DeleteItem):
		item, ok := a.layout.RemoveItemAt(a.list.Selected())
		if !ok {
			return a.withToast("warning", "Select an item row to delete.")
		}
		return a.withToast("success", fmt.Sprintf("Deleted %q.", item.Text))
	case key.Matches(msg, a.keys.AddHeader):
		return a.withToast("success", "Added "+a.layout.AddHeader()+".")
	case key.Matches(msg, a.keys.RemoveHeader):
		text, ok := a.layout.RemoveLastHeader()
		if !ok {
			return a.withToast("warning", "No headers to remove.")
		}
		return a.withToast("success", "Removed "+describeRemoved(text)+".")
	case key.Matches(msg, a.keys.AddFooter):
		return a.withToast("success", "Added "+a.layout.AddFooter()+".")
	case key.Matches(msg, a.keys.RemoveFooter):
		text, ok := a.layout.RemoveLastFooter()
		if !ok {
			return a.withToast("warning", "No footers to remove.")
		}
		return a.withToast("success", "Removed "+describeRemoved(text)+".")
	case key.Matches(msg, a.keys.ToggleEmpty):
		if a.layout.ToggleEmptyManagement() {
			return a.withToast("info", "Empty view managed.")
		}
		return a.withToast("info", "Empty view no longer managed.")
	case key.Matches(msg, a.keys.Sort):
		a.layout.SortItems()
		return a.withToast("success", "Sorted items.")
	case key.Matches(msg, a.keys.Inspect):
		a.inspectOpen = !a.inspectOpen
	}
	return a, nil
}

func (a App) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.closeInput()
	case key.Matches(msg, a.keys.Submit):
		text := a.input.Value()
		a.closeInput()
		if !a.layout.AddItem(text) {
			return a.withToast("warning", "Item text is empty.")
		}
		a.list.Select(len(a.layout.Rows.HeaderViews()) + a.layout.Source.Count() - 1)
		a.logger.Debug("item added", "count", a.layout.Source.Count())
	default:
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) closeInput() {
	a.inputOpen = false
	a.input.Reset()
	a.input.Blur()
}

func describeRemoved(text string) string {
	if text == "" {
		return "row"
	}
	return strconv.Quote(text)
}

// withToast shows a toast and returns the updated model with its clear timer.
func (a App) withToast(level, text string) (tea.Model, tea.Cmd) {
	cmd := a.setToast(level, text)
	return a, cmd
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

// --- View ---

func (a App) View() string {
	sections := []string{a.renderTitle(), a.renderList()}
	if a.inspectOpen {
		sections = append(sections, a.renderInspector())
	}
	sections = append(sections, a.renderStats())

	switch {
	case a.inputOpen:
		sections = append(sections, components.InputDialog("Add item", a.input.View()))
	case a.helpOpen:
		sections = append(sections, a.renderHelp())
	}
	if toast := a.renderToast(); toast != "" {
		sections = append(sections, toast)
	}

	body := centerBlockUniform(strings.Join(sections, "\n"), a.width)
	return body + "\n" + components.StatusBar(a.statusLine(), a.width)
}

func (a App) renderTitle() string {
	title := SelectedStyle.Render(a.config.Title)
	summary := MutedStyle.Render(fmt.Sprintf(
		"  %d headers · %d items · %d footers",
		len(a.layout.Rows.HeaderViews()),
		a.layout.Source.Count(),
		len(a.layout.Rows.FooterViews()),
	))
	return title + summary
}

func (a App) renderList() string {
	body := a.list.View()
	if body == "" {
		body = MutedStyle.Render("(no rows)")
	}
	return components.TitledBox("Rows", body, a.width)
}

func (a App) renderStats() string {
	rows := []components.TableRow{
		{Label: "Total rows", Value: strconv.Itoa(a.layout.Rows.TotalCount())},
		{Label: "Selected", Value: a.describeSelection()},
		{Label: "Empty view", Value: a.describeEmptyView()},
		{Label: "Views", Value: fmt.Sprintf("%d created · %d binds · %d pooled", a.list.Created(), a.list.Bound(), a.list.Pooled(adapter.TypeItem))},
	}
	return components.Table("Layout", rows, a.width)
}

func (a App) describeSelection() string {
	pos := a.list.Selected()
	kind, err := a.layout.Rows.RowKind(pos)
	if err != nil {
		return "none"
	}
	if kind.Kind == adapter.KindItem {
		return fmt.Sprintf("row %d · item %d", pos, a.layout.Rows.AdjustedPosition(pos))
	}
	return fmt.Sprintf("row %d · %s", pos, kind)
}

func (a App) describeEmptyView() string {
	state := "hidden"
	if a.layout.Empty.Visible() {
		state = "visible"
	}
	if !a.layout.EmptyManaged() {
		return state + " (unmanaged)"
	}
	return state
}

func (a App) renderInspector() string {
	columns := []components.GridColumn{
		{Header: "Row", Width: 5, Align: lipgloss.Right},
		{Header: "Kind", Width: 8},
		{Header: "Type", Width: 6, Align: lipgloss.Right},
		{Header: "Index", Width: 6, Align: lipgloss.Right},
		{Header: "Text", Width: 20},
	}
	infos := a.layout.Describe()
	rows := make([]components.GridRow, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, components.GridRow{
			Cells: []string{
				strconv.Itoa(info.Position),
				info.Kind,
				strconv.Itoa(info.TypeID),
				strconv.Itoa(info.Index),
				info.Text,
			},
			Dim: !info.Visible,
		})
	}
	grid := components.Grid(columns, rows, components.BoxContentWidth(a.width), a.list.Selected())
	return components.TitledBox("Inspector", grid, a.width)
}

func (a App) renderHelp() string {
	body := MutedStyle.Render("esc to close") + "\n\n" + a.help.FullHelpView(a.keys.FullHelp())
	return components.TitledBox("Help", body, a.width)
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	switch a.toast.level {
	case "success":
		return components.TitledBox("Success", SuccessStyle.Render(a.toast.text), a.width)
	case "warning":
		return components.TitledBox("Warning", WarningStyle.Render(a.toast.text), a.width)
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	}
	return components.TitledBox("Info", a.toast.text, a.width)
}

func (a App) statusLine() string {
	if a.inputOpen {
		return a.help.ShortHelpView(a.keys.inputHelp())
	}
	return a.help.View(a.keys)
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = SelectedStyle
	h.Styles.FullKey = SelectedStyle
	h.Styles.ShortDesc = MutedStyle
	h.Styles.FullDesc = MutedStyle
	h.Styles.ShortSeparator = SeparatorStyle
	h.Styles.FullSeparator = SeparatorStyle
	h.Styles.Ellipsis = SeparatorStyle
	return h
}

func newItemInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "item text"
	in.CharLimit = 200
	in.Width = 32
	in.PromptStyle = HeaderRowStyle
	in.TextStyle = NormalStyle
	in.PlaceholderStyle = MutedStyle
	return in
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
