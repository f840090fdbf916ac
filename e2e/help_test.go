//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// Not through the PTY since it exits quickly
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	assert.Contains(t, output, "Usage")
	assert.Contains(t, output, "serve")
	assert.Contains(t, output, "--content")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "version").CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(out), "folio dev")
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()
	tf := startFolio(t)

	require.NoError(t, tf.Esc())
	require.NoError(t, tf.SendKeys(KeyHelp))
	require.NoError(t, tf.WaitForE(func(string) bool {
		return containsPlain(tf, "folio help")
	}, 3*time.Second, "help overlay should open"))
	assert.True(t, tf.SeePlain("palette"), "help lists the palette binding")

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.NoError(t, tf.SendCtrlC())
}
