package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/config"
)

// Init initializes the logging system, writing logs to cfg.Path or
// ~/.phonebook/logs/phonebook.log. Uses text format for human readability.
// The console belongs to the menu, so nothing is logged to stdout or stderr.
func Init(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	logPath := cfg.Path
	if logPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, err
		}
		logPath = filepath.Join(homeDir, ".phonebook", "logs", "phonebook.log")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, nil, err
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := New(file, cfg.Level)
	slog.SetDefault(logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return logger, file, nil
}

// New builds a text logger at the named level writing to w
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// Discard returns a logger that drops everything, for tests
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps debug|info|warn|error to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
