package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileName is the log file created inside the directory passed to Init.
const FileName = "panda-react.log"

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	logFile       *os.File
)

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Init opens (or creates) dir/panda-react.log for appending and routes all
// records at or above level into it. It returns the log file path.
func Init(dir string, level slog.Level) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating log directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return "", fmt.Errorf("opening log file %s: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	defaultLogger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return path, nil
}

// SetOutput routes records to w. Used by tests.
func SetOutput(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Close flushes and closes the log file opened by Init, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Debug logs a debug message with key-value attributes.
func Debug(msg string, args ...any) { get().Debug(msg, args...) }

// Info logs an informational message.
func Info(msg string, args ...any) { get().Info(msg, args...) }

// Warn logs a warning.
func Warn(msg string, args ...any) { get().Warn(msg, args...) }

// Error logs an error.
func Error(msg string, args ...any) { get().Error(msg, args...) }
