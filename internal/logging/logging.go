package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the log file created inside the log directory.
const FileName = "hflist.log"

// Init writes logs to <dir>/hflist.log in text format and installs the
// logger as the slog default. The TUI owns stdout, so nothing is logged
// there. The returned closer releases the file.
func Init(dir string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}

	path := filepath.Join(dir, FileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := New(file, level)
	slog.SetDefault(logger)

	// Route the standard log package to the same file.
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return logger, file, nil
}

// New builds a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
