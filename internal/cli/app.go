package cli

import (
	"fmt"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/eventbus"
	"folio/internal/logger"
	"folio/internal/storage"
)

// dataStore is what both storage backends provide
type dataStore interface {
	storage.Store
	storage.MessageStore
}

// app holds the services shared by the terminal UI and the web server
type app struct {
	cfg       *config.Config
	bus       eventbus.EventBus
	store     dataStore
	portfolio *content.Portfolio
	contact   *contact.Service
	closers   []func() error
}

// bootstrap loads configuration and content and opens storage. Storage
// failures fall back to an in-memory store so the portfolio still runs.
func bootstrap() (*app, error) {
	if err := config.LoadEnv(envFile); err != nil {
		logger.Warn("CLI: %v", err)
	}

	a := &app{bus: eventbus.New()}
	a.closers = append(a.closers, func() error { a.bus.Close(); return nil })

	cfg, err := config.NewConfigServiceWithBus(configPath, a.bus).Load()
	if err != nil {
		a.close()
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	cfg.ApplyEnv(nil)
	if contentPath != "" {
		cfg.ContentPath = contentPath
	}
	a.cfg = cfg

	a.portfolio, err = content.LoadPath(cfg.ContentPath)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("error loading content: %w", err)
	}

	if db, err := storage.OpenSQLite(cfg.DataPath); err != nil {
		logger.Warn("CLI: %v; preferences will not persist", err)
		a.store = storage.NewMemoryStore()
	} else {
		a.store = db
		a.closers = append(a.closers, db.Close)
	}

	opts := contact.Options{
		Store:         a.store,
		DesktopNotify: cfg.Contact.DesktopNotify,
		Bus:           a.bus,
	}
	if m := contact.NewSMTPMailer(cfg.Contact); m != nil {
		opts.Mailer = m
	}
	a.contact = contact.NewService(opts)
	return a, nil
}

// watch starts reloading the content file when it is on disk. It returns
// a no-op stop function for embedded content.
func (a *app) watch(onReload func(*content.Portfolio)) (func(), error) {
	if a.cfg.ContentPath == "" {
		return func() {}, nil
	}
	w, err := content.NewWatcher(a.cfg.ContentPath, content.DefaultReloadDelay, a.bus, onReload)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		return nil, err
	}
	return func() {
		if err := w.Stop(); err != nil {
			logger.Warn("CLI: stopping watcher: %v", err)
		}
	}, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("CLI: close: %v", err)
		}
	}
	a.closers = nil
}
