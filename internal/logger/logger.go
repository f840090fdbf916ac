// Package logger writes folio's diagnostics to a log file. The terminal UI
// owns stdout, so nothing here ever prints to the screen.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	mu         sync.Mutex
	initDone   bool
	logPath    string
)

// DefaultPath returns $XDG_STATE_HOME/folio/folio.log, falling back to the
// temp directory when no state directory can be created.
func DefaultPath() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			stateDir = filepath.Join(home, ".local", "state")
		}
	}
	if stateDir != "" {
		dir := filepath.Join(stateDir, "folio")
		if err := os.MkdirAll(dir, 0755); err == nil {
			return filepath.Join(dir, "folio.log")
		}
	}
	return filepath.Join(os.TempDir(), "folio.log")
}

// SetDebug toggles debug level output
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Init opens the log file at path. Calling Init again is a no-op until
// Reset or Close.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	logPath = path
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

// InitWriter routes logs to w instead of a file. Used by the web server when
// it runs in the foreground and by tests.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	slogLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
}

// Path returns the active log file path, if any
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func logf(level slog.Level, format string, args ...interface{}) {
	mu.Lock()
	l := slogLogger
	mu.Unlock()

	if l == nil || !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message
func Debug(format string, args ...interface{}) {
	logf(slog.LevelDebug, format, args...)
}

// Info writes an info message
func Info(format string, args ...interface{}) {
	logf(slog.LevelInfo, format, args...)
}

// Warn writes a warning message
func Warn(format string, args ...interface{}) {
	logf(slog.LevelWarn, format, args...)
}

// Error writes an error message
func Error(format string, args ...interface{}) {
	logf(slog.LevelError, format, args...)
}

// Component returns a structured logger tagged with the component name.
// Before Init it discards everything.
func Component(name string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if slogLogger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slogLogger.With(slog.String("component", name))
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
	initDone = false
	logPath = ""
}

// Reset restores the initial state. Tests use it between cases.
func Reset() {
	Close()
	levelVar.Set(slog.LevelInfo)
}
