package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()
	path := filepath.Join(t.TempDir(), "folio-test.log")
	require.NoError(t, Init(path))
	t.Cleanup(Reset)
	return path
}

func TestInitWritesToFile(t *testing.T) {
	path := setupTestLogger(t)

	Info("palette opened with %d entries", 9)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "palette opened with 9 entries")
	assert.Equal(t, path, Path())
}

func TestDebugRespectsLevel(t *testing.T) {
	path := setupTestLogger(t)

	Debug("hidden message")
	SetDebug(true)
	Debug("visible message")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden message")
	assert.Contains(t, string(data), "visible message")
}

func TestComponentAddsAttribute(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	var buf bytes.Buffer
	InitWriter(&buf)

	Component("theme").Info("applied", "effective", "dark")

	assert.Contains(t, buf.String(), "component=theme")
	assert.Contains(t, buf.String(), "effective=dark")
}

func TestLoggingBeforeInitIsSafe(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.NotPanics(t, func() {
		Info("nobody is listening")
		Component("ui").Warn("still nobody")
	})
}

func TestInitIsIdempotent(t *testing.T) {
	path := setupTestLogger(t)
	require.NoError(t, Init(filepath.Join(t.TempDir(), "other.log")))
	assert.Equal(t, path, Path())
}
