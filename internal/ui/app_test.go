package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/hflist/internal/config"
	"github.com/gravitrone/hflist/internal/logging"
	"github.com/gravitrone/hflist/internal/ui/components"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, app App, msgs ...tea.Msg) App {
	t.Helper()
	var model tea.Model = app
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	out, ok := model.(App)
	require.True(t, ok)
	return out
}

func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		msgs = append(msgs, runeKey(string(r)))
	}
	return msgs
}

func newTestApp(cfg *config.Config) App {
	return NewApp(cfg, logging.Discard())
}

func TestNewAppDefaultLayout(t *testing.T) {
	app := newTestApp(nil)

	assert.Equal(t, 3, app.layout.Rows.TotalCount())
	assert.True(t, app.layout.Empty.Visible())
	assert.Contains(t, components.SanitizeText(app.View()), "No items yet")
}

func TestAppAddItemThroughInputDialog(t *testing.T) {
	app := newTestApp(nil)

	app = press(t, app, runeKey("a"))
	require.True(t, app.inputOpen)
	assert.Contains(t, components.SanitizeText(app.View()), "Add item")

	app = press(t, app, typeText("List item")...)
	assert.Equal(t, "List item", app.input.Value())

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, app.inputOpen)
	assert.Equal(t, 4, app.layout.Rows.TotalCount())
	assert.False(t, app.layout.Empty.Visible())

	// Rows: header, header, item, empty footer (hidden).
	assert.Equal(t, 2, app.list.Selected())
	assert.Contains(t, components.SanitizeText(app.View()), "List item")
}

func TestAppEndSkipsHiddenEmptyFooter(t *testing.T) {
	cfg := config.Default()
	cfg.Items = []string{"one", "two"}
	app := newTestApp(cfg)

	// Rows: header, header, one, two, empty footer (hidden).
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 3, app.list.Selected())
	app = press(t, app, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 3, app.list.Selected())
}

func TestAppInputBackspaceAndCancel(t *testing.T) {
	app := newTestApp(nil)
	app = press(t, app, runeKey("a"), runeKey("x"), runeKey("y"), tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "x", app.input.Value())

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.inputOpen)
	assert.Empty(t, app.input.Value())
	assert.Equal(t, 0, app.layout.Source.Count())
}

func TestAppInputEditsMidText(t *testing.T) {
	app := newTestApp(nil)
	app = press(t, app, runeKey("a"))
	app = press(t, app, typeText("ac")...)
	app = press(t, app, tea.KeyMsg{Type: tea.KeyLeft}, runeKey("b"))
	assert.Equal(t, "abc", app.input.Value())

	app = press(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pasted"), Paste: true})
	assert.Equal(t, "abpastedc", app.input.Value())

	// Typed letters never reach the list keymap while the prompt is open.
	app = press(t, app, runeKey("h"))
	assert.Len(t, app.layout.Rows.HeaderViews(), 2)
}

func TestAppStatusLineFollowsMode(t *testing.T) {
	app := newTestApp(nil)
	assert.Contains(t, components.SanitizeText(app.View()), "Add item")

	app = press(t, app, runeKey("a"))
	status := components.SanitizeText(app.statusLine())
	assert.Contains(t, status, "enter")
	assert.Contains(t, status, "Cancel")
	assert.NotContains(t, status, "Quit")
}

func TestAppRejectsEmptyItem(t *testing.T) {
	app := newTestApp(nil)
	app = press(t, app, runeKey("a"), tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, app.toast)
	assert.Equal(t, "warning", app.toast.level)
	assert.Equal(t, 0, app.layout.Source.Count())
}

func TestAppDeleteSelectedItem(t *testing.T) {
	cfg := config.Default()
	cfg.Items = []string{"one", "two"}
	app := newTestApp(cfg)

	// Rows: header, header, one, two, empty footer (hidden).
	app = press(t, app, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 3, app.list.Selected())

	app = press(t, app, runeKey("d"))
	assert.Equal(t, []Item{{Text: "one"}}, app.layout.Source.Items())
	require.NotNil(t, app.toast)
	assert.Contains(t, app.toast.text, "two")
}

func TestAppDeleteOnHeaderWarns(t *testing.T) {
	cfg := config.Default()
	cfg.Items = []string{"one"}
	app := newTestApp(cfg)

	app = press(t, app, runeKey("d"))
	assert.Equal(t, 1, app.layout.Source.Count())
	require.NotNil(t, app.toast)
	assert.Equal(t, "warning", app.toast.level)
}

func TestAppHeaderAndFooterKeys(t *testing.T) {
	app := newTestApp(nil)

	app = press(t, app, runeKey("h"))
	assert.Len(t, app.layout.Rows.HeaderViews(), 3)

	app = press(t, app, runeKey("f"))
	assert.Len(t, app.layout.Rows.FooterViews(), 2)

	app = press(t, app, runeKey("H"), runeKey("H"), runeKey("H"))
	assert.Empty(t, app.layout.Rows.HeaderViews())

	app = press(t, app, runeKey("H"))
	require.NotNil(t, app.toast)
	assert.Equal(t, "warning", app.toast.level)

	app = press(t, app, runeKey("F"))
	assert.Len(t, app.layout.Rows.FooterViews(), 1)
	assert.Equal(t, 1, app.layout.Rows.TotalCount())
}

func TestAppToggleEmptyManagement(t *testing.T) {
	app := newTestApp(nil)

	app = press(t, app, runeKey("e"))
	assert.False(t, app.layout.EmptyManaged())
	assert.Contains(t, components.SanitizeText(app.View()), "unmanaged")

	app = press(t, app, runeKey("e"))
	assert.True(t, app.layout.EmptyManaged())
}

func TestAppSortKey(t *testing.T) {
	cfg := config.Default()
	cfg.Items = []string{"item 10", "item 2"}
	app := newTestApp(cfg)

	app = press(t, app, runeKey("s"))
	assert.Equal(t, []Item{{Text: "item 2"}, {Text: "item 10"}}, app.layout.Source.Items())
}

func TestAppInspectorShowsTypeIDs(t *testing.T) {
	app := newTestApp(nil)
	app = press(t, app, tea.WindowSizeMsg{Width: 100, Height: 40}, runeKey("i"))

	out := components.SanitizeText(app.View())
	assert.Contains(t, out, "Inspector")
	assert.Contains(t, out, "header")
	assert.Contains(t, out, "footer")
}

func TestAppHelpOverlay(t *testing.T) {
	app := newTestApp(nil)
	app = press(t, app, runeKey("?"))
	require.True(t, app.helpOpen)
	assert.Contains(t, components.SanitizeText(app.View()), "Remove footer")

	// Keys other than close are swallowed while help is open.
	app = press(t, app, runeKey("h"))
	assert.Len(t, app.layout.Rows.HeaderViews(), 2)

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.helpOpen)
}

func TestAppQuit(t *testing.T) {
	app := newTestApp(nil)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppClearToast(t *testing.T) {
	app := newTestApp(nil)
	app = press(t, app, runeKey("h"))
	require.NotNil(t, app.toast)

	app = press(t, app, clearToastMsg{})
	assert.Nil(t, app.toast)
}

func TestAppWindowSizeDerivesPageSize(t *testing.T) {
	app := newTestApp(nil)
	app = press(t, app, tea.WindowSizeMsg{Width: 80, Height: 30})
	assert.Equal(t, 14, app.list.PageSize)
	assert.Equal(t, components.BoxContentWidth(80), app.list.Width())

	cfg := config.Default()
	cfg.PageSize = 5
	app = press(t, newTestApp(cfg), tea.WindowSizeMsg{Width: 80, Height: 30})
	assert.Equal(t, 5, app.list.PageSize)
}

func TestAppVimKeys(t *testing.T) {
	cfg := config.Default()
	cfg.VimKeys = true
	cfg.Items = []string{"one"}
	app := newTestApp(cfg)

	app = press(t, app, runeKey("j"), runeKey("j"))
	assert.Equal(t, 2, app.list.Selected())
	app = press(t, app, runeKey("k"))
	assert.Equal(t, 1, app.list.Selected())
}
