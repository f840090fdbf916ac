package theme

import (
	"sync"

	"folio/internal/eventbus"
	"folio/internal/logger"
	"folio/internal/storage"
)

// Applier receives the effective theme (Dark or Light). It stands in for
// the root element class: applying one theme replaces the other.
type Applier interface {
	ApplyTheme(effective Preference)
}

// ApplierFunc adapts a function to Applier
type ApplierFunc func(effective Preference)

func (f ApplierFunc) ApplyTheme(effective Preference) { f(effective) }

// Controller owns the current preference. It persists every change, applies
// the effective theme, and follows the OS scheme while System is selected.
type Controller struct {
	mu          sync.Mutex
	pref        Preference
	effective   Preference
	store       storage.Store
	scheme      SchemeSource
	applier     Applier
	bus         eventbus.EventBus
	unsubscribe func()
	closed      bool
}

// NewController restores the stored preference and applies it. Any of
// store, applier and bus may be nil; a nil scheme is treated as a dark OS.
func NewController(store storage.Store, scheme SchemeSource, applier Applier, bus eventbus.EventBus) *Controller {
	if scheme == nil {
		scheme = NewScheme(true)
	}
	c := &Controller{
		store:   store,
		scheme:  scheme,
		applier: applier,
		bus:     bus,
	}

	pref, err := ParsePreference(storage.GetOr(store, storage.ThemeKey, string(DefaultPreference)))
	if err != nil {
		logger.Warn("Theme: ignoring stored value: %v", err)
		pref = DefaultPreference
	}

	c.mu.Lock()
	c.setLocked(pref, false)
	c.mu.Unlock()
	return c
}

// Preference returns the selected preference
func (c *Controller) Preference() Preference {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pref
}

// Effective returns the applied theme, Dark or Light
func (c *Controller) Effective() Preference {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.effective
}

// Toggle advances dark, light, system, dark and returns the new preference
func (c *Controller) Toggle() Preference {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.pref.Next()
	c.setLocked(next, true)
	return next
}

// Set selects p. Invalid values are ignored.
func (c *Controller) Set(p Preference) {
	if !p.Valid() {
		logger.Warn("Theme: ignoring invalid preference %q", p)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(p, true)
}

// Close releases the OS scheme subscription
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.releaseLocked()
}

func (c *Controller) setLocked(p Preference, persist bool) {
	if c.closed {
		return
	}
	c.pref = p

	if persist && c.store != nil {
		if err := c.store.Set(storage.ThemeKey, string(p)); err != nil {
			logger.Error("Theme: failed to persist preference: %v", err)
		}
	}

	if p == System {
		if c.unsubscribe == nil {
			c.unsubscribe = c.scheme.Subscribe(c.onScheme)
		}
	} else {
		c.releaseLocked()
	}

	c.applyLocked(Resolve(p, c.scheme.IsDark()))
}

func (c *Controller) releaseLocked() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *Controller) onScheme(dark bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.pref != System {
		return
	}
	c.applyLocked(Resolve(System, dark))
}

func (c *Controller) applyLocked(effective Preference) {
	c.effective = effective
	if c.applier != nil {
		c.applier.ApplyTheme(effective)
	}
	if c.bus != nil {
		c.bus.Publish(eventbus.ThemeChangedEvent{Preference: string(c.pref), Effective: string(effective)})
	}
}
