//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsPlain(tf *TUITestFramework, text string) bool {
	return strings.Contains(tf.SnapshotPlain(), text)
}

func TestPaletteSearchOpensSection(t *testing.T) {
	t.Parallel()
	tf := startFolio(t)

	require.True(t, tf.SeePlain("Suggestions"), "palette is open on start")
	require.NoError(t, tf.Type("skills"))
	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())

	require.True(t, tf.SeePlain("folio / Skills"), "enter opens the section")
	require.True(t, tf.SeePlain("TypeScript"), "section renders after the load delay")

	// esc returns to the palette with an empty query
	require.NoError(t, tf.Esc())
	require.True(t, tf.SeePlain("Settings"), "palette lists every group again")
	require.NoError(t, tf.SendCtrlC())
}

func TestNoResults(t *testing.T) {
	t.Parallel()
	tf := startFolio(t)

	require.NoError(t, tf.Type("zzzz"))
	assert.True(t, tf.SeePlain("No results found."))
	require.NoError(t, tf.SendCtrlC())
}

func TestToggleThemeFromLanding(t *testing.T) {
	t.Parallel()
	tf := startFolio(t)

	require.True(t, tf.SeePlain("theme: System"))
	require.NoError(t, tf.Esc())
	require.NoError(t, tf.SendKeys(KeyTheme))
	assert.True(t, tf.SeePlain("theme: Dark"))

	require.NoError(t, tf.SendKeys(KeyTheme))
	assert.True(t, tf.SeePlain("theme: Light"))
	require.NoError(t, tf.SendCtrlC())
}

func TestReopenPaletteWithCtrlK(t *testing.T) {
	t.Parallel()
	tf := startFolio(t)

	require.NoError(t, tf.Esc())
	require.NoError(t, tf.WaitForE(func(string) bool {
		tail := tf.SnapshotPlain()
		return strings.Contains(tail[max(0, len(tail)-2048):], "Press ctrl+k to search")
	}, 3*time.Second, "landing page shows the search hint"))

	require.NoError(t, tf.SendKeys(KeyCtrlK))
	require.NoError(t, tf.Type("resume"))
	assert.True(t, tf.SeePlain("Resume"))
	require.NoError(t, tf.SendCtrlC())
}
