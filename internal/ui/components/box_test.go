package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 0, boxWidth(0))
	assert.Equal(t, 30, boxWidth(10))
	assert.Equal(t, 96, boxWidth(200))
	assert.Equal(t, 80, boxWidth(100))
	assert.Equal(t, 10, safeBoxWidth(10))
}

func TestBoxContentWidth(t *testing.T) {
	assert.Equal(t, 76, BoxContentWidth(100))
	assert.Equal(t, 0, BoxContentWidth(0))
}

func TestTitledBoxNarrowTerminalClampsWidth(t *testing.T) {
	out := TitledBox("Items", "line", 20)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}

func TestTitledBoxIncludesTitle(t *testing.T) {
	out := TitledBox("My Title", "Content", 80)
	assert.Contains(t, out, "My Title")
	assert.Contains(t, out, "Content")
}

func TestTitledBoxEmptyTitleFallsBack(t *testing.T) {
	assert.Equal(t, Box("Content", 80), TitledBox("", "Content", 80))
}

func TestErrorBoxIncludesMessage(t *testing.T) {
	out := ErrorBox("Error", "Something broke", 80)
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "Something broke")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("hello", 0))
	assert.Equal(t, "he", truncateRunes("hello", 2))
	assert.Equal(t, "你", truncateRunes("你好", 1))
}

func TestClampTextWidth(t *testing.T) {
	assert.Equal(t, "abc", ClampTextWidth("abcdef", 3))
	assert.Equal(t, "a b", ClampTextWidth("a\nb", 0))
}

func TestTableClampsLongValues(t *testing.T) {
	rows := []TableRow{
		{
			Label: strings.Repeat("Label", 8),
			Value: strings.Repeat("value", 40),
		},
	}
	out := Table("Table", rows, 60)
	maxWidth := lipgloss.Width(strings.Split(Box("x", 60), "\n")[0])
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), maxWidth)
	}
}

func TestTableEmptyRows(t *testing.T) {
	assert.Empty(t, Table("Layout", nil, 80))
}
