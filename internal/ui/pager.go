package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// showInPager hands the terminal to ov with text, then takes it back
func (m *Model) showInPager(title, text string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return pagerMsg{err: fmt.Errorf("program not set")}
		}
		m.program.Send(pauseRenderingMsg{})
		err := runPager(m.program, title, text)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

func runPager(p *tea.Program, title, text string) error {
	root, err := oviewer.NewRoot(strings.NewReader(text))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)
	root.Doc.Caption = title

	// Release terminal control to run ov
	if err := p.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.RestoreTerminal()
	}()
	return root.Run()
}

// clipboardWrite is swapped in tests
var clipboardWrite = clipboard.WriteAll

func copyToClipboard(label, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return externalMsg{err: fmt.Errorf("copy %s: %w", label, err)}
		}
		return externalMsg{toast: "Copied " + label}
	}
}

// openURL is swapped in tests
var openURL = func(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

func openExternal(url string) tea.Cmd {
	return func() tea.Msg {
		if url == "" {
			return externalMsg{err: fmt.Errorf("no URL to open")}
		}
		if err := openURL(url); err != nil {
			return externalMsg{err: fmt.Errorf("open %s: %w", url, err)}
		}
		return externalMsg{toast: "Opened " + url}
	}
}
