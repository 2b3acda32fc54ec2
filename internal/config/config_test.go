package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveConfigCreatesDirectories(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := Default().Save()
	require.NoError(t, err)

	_, err = os.Stat(Path())
	require.NoError(t, err)
}

func TestLoadConfigNonExistent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	original := Config{
		Title:         "Groceries",
		Headers:       []string{"Top"},
		Footers:       []string{"Bottom", "Very bottom"},
		EmptyText:     "Nothing to buy",
		EmptyAsFooter: false,
		Items:         []string{"milk", "eggs"},
		SortItems:     true,
		PageSize:      12,
		VimKeys:       true,
		LogLevel:      "debug",
	}

	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestLoadConfigEmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Inbox\nitems: [a, b]\n"), 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Inbox", loaded.Title)
	assert.Equal(t, []string{"a", "b"}, loaded.Items)
	assert.Equal(t, Default().Headers, loaded.Headers)
	assert.True(t, loaded.EmptyAsFooter)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content:"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadConfigRejectsNegativePageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: -1\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page_size")
}

func TestLoadConfigRejectsUnknownLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: chatty\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestConfigLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "debug"}).Level())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "WARN"}).Level())
	assert.Equal(t, slog.LevelInfo, (&Config{}).Level())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: "nope"}).Level())
}

func TestSaveConfigOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, (&Config{Title: "first"}).SaveFile(path))
	require.NoError(t, (&Config{Title: "second"}).SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.Title)
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	assert.Contains(t, Path(), ".hflist")
	assert.Equal(t, "config.yaml", filepath.Base(Path()))
	assert.Equal(t, filepath.Join(Dir(), "logs"), LogDir())
}
