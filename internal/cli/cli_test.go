package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/contact"
	"folio/internal/storage"
)

// isolate points every path-valued flag at a temp dir and restores the
// package state afterwards
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldConfig, oldContent, oldEnv, oldDebug := configPath, contentPath, envFile, debugMode
	t.Cleanup(func() {
		configPath, contentPath, envFile, debugMode = oldConfig, oldContent, oldEnv, oldDebug
	})
	configPath = filepath.Join(dir, "config.toml")
	contentPath = ""
	envFile = filepath.Join(dir, "missing.env")
	t.Setenv("FOLIO_DATA", filepath.Join(dir, "folio.db"))
	return dir
}

func TestFlagsExist(t *testing.T) {
	for _, name := range []string{"config", "content", "env-file", "debug"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "c", rootCmd.PersistentFlags().Lookup("config").Shorthand)
	assert.Equal(t, "false", rootCmd.PersistentFlags().Lookup("debug").DefValue)
	assert.NotNil(t, serveCmd.Flags().Lookup("addr"))
	assert.Equal(t, "20", messagesCmd.Flags().Lookup("limit").DefValue)
}

func TestVersionTemplate(t *testing.T) {
	defer SetVersionInfo(version, commit, date)

	SetVersionInfo("1.2.3", "none", "")
	assert.Equal(t, "folio 1.2.3\n", versionTemplate())

	SetVersionInfo("1.2.3", "abc123", "2026-01-02")
	assert.Contains(t, versionTemplate(), "commit: abc123")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "folio ")
}

func TestBootstrapDefaults(t *testing.T) {
	dir := isolate(t)

	a, err := bootstrap()
	require.NoError(t, err)
	defer a.close()

	assert.Equal(t, filepath.Join(dir, "folio.db"), a.cfg.DataPath)
	assert.NotEmpty(t, a.portfolio.Navigation)
	assert.FileExists(t, filepath.Join(dir, "folio.db"))

	require.NoError(t, a.store.Set(storage.ThemeKey, "light"))
	v, err := a.store.Get(storage.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	stop, err := a.watch(nil)
	require.NoError(t, err)
	stop()
}

func TestBootstrapReadsEnvFileAndContent(t *testing.T) {
	dir := isolate(t)
	t.Cleanup(func() { os.Unsetenv("FOLIO_DEV") })

	envFile = filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FOLIO_DEV=true\n"), 0o644))

	contentPath = filepath.Join(dir, "portfolio.toml")
	require.NoError(t, os.WriteFile(contentPath, []byte(`
[profile]
name = "Grace Hopper"

[[navigation]]
id = "home"
label = "Home"
category = "suggestions"
route = "/"
`), 0o644))

	a, err := bootstrap()
	require.NoError(t, err)
	defer a.close()

	assert.True(t, a.cfg.DevMode)
	assert.Equal(t, "Grace Hopper", a.portfolio.Profile.Name)

	stop, err := a.watch(nil)
	require.NoError(t, err)
	stop()
}

func TestBootstrapRejectsBadContent(t *testing.T) {
	dir := isolate(t)
	contentPath = filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(contentPath, []byte("[[navigation]]\nid = \"x\"\n"), 0o644))

	_, err := bootstrap()
	assert.ErrorContains(t, err, "error loading content")
}

func TestBootstrapFallsBackToMemoryStore(t *testing.T) {
	dir := isolate(t)
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	t.Setenv("FOLIO_DATA", filepath.Join(blocker, "sub", "folio.db"))

	a, err := bootstrap()
	require.NoError(t, err)
	defer a.close()
	assert.IsType(t, &storage.MemoryStore{}, a.store)
}

func TestMessagesCommand(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	messagesCmd.SetOut(&out)
	messagesCmd.SetErr(&out)
	defer func() {
		messagesCmd.SetOut(nil)
		messagesCmd.SetErr(nil)
	}()

	require.NoError(t, runMessages(messagesCmd, nil))
	assert.Contains(t, out.String(), "No messages yet.")

	a, err := bootstrap()
	require.NoError(t, err)
	_, err = a.contact.Submit(context.Background(), contact.Draft{Name: "Ada", Email: "ada@example.com", Message: "Hello\nthere"})
	require.NoError(t, err)
	a.close()

	out.Reset()
	require.NoError(t, runMessages(messagesCmd, nil))
	assert.Contains(t, out.String(), "Ada <ada@example.com>")
	assert.Contains(t, out.String(), "Hello there")
}
