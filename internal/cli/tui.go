package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"folio/internal/content"
	"folio/internal/eventbus"
	"folio/internal/logger"
	"folio/internal/responsive"
	"folio/internal/theme"
	"folio/internal/ui"
)

// readyMarker is printed once the UI has laid itself out, for e2e tests
const readyMarker = "__READY__"

// forwardedEvents are the bus events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventThemeChanged,
	eventbus.EventError,
	eventbus.EventContactSubmitted,
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if err := logger.Init(logger.DefaultPath()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logger.Close()

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	caps := responsive.Probe(a.cfg.UI.ReducedMotion, a.cfg.UI.Mouse, nil)
	scheme := theme.NewScheme(lipgloss.HasDarkBackground())

	opts := ui.Options{
		Config:       a.cfg,
		Bus:          a.bus,
		Portfolio:    a.portfolio,
		Store:        a.store,
		Contact:      a.contact,
		Scheme:       scheme,
		Capabilities: caps,
	}
	if os.Getenv("FOLIO_E2E_TEST") != "" {
		opts.OnReady = func() { fmt.Fprintln(os.Stderr, readyMarker) }
	}

	model := ui.NewModel(opts)
	defer model.Close()

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(model, progOpts...)
	model.SetProgram(p)

	// Bus handlers run on the dispatcher goroutine; Send is safe from there
	for _, et := range forwardedEvents {
		unsubscribe := a.bus.Subscribe(et, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
		defer unsubscribe()
	}

	stopWatch, err := a.watch(func(pf *content.Portfolio) {
		p.Send(ui.ContentReloadedMsg{Portfolio: pf})
	})
	if err != nil {
		logger.Warn("CLI: content watcher disabled: %v", err)
	} else {
		defer stopWatch()
	}

	logger.Info("Starting folio %s (content: %s)", version, a.portfolio.Source)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
