// Package theme resolves and persists the dark/light/system preference.
package theme

import (
	"fmt"
	"strings"
	"sync"
)

// Preference is the user's theme choice
type Preference string

const (
	Dark   Preference = "dark"
	Light  Preference = "light"
	System Preference = "system"
)

// DefaultPreference is used when nothing valid is stored
const DefaultPreference = System

// Next returns the preference after p in the dark, light, system cycle
func (p Preference) Next() Preference {
	switch p {
	case Dark:
		return Light
	case Light:
		return System
	case System:
		return Dark
	default:
		return Dark
	}
}

// Valid reports whether p is one of the three preferences
func (p Preference) Valid() bool {
	switch p {
	case Dark, Light, System:
		return true
	}
	return false
}

// Label is the human name shown in the palette
func (p Preference) Label() string {
	switch p {
	case Dark:
		return "Dark"
	case Light:
		return "Light"
	case System:
		return "System"
	default:
		return string(p)
	}
}

// ParsePreference parses a stored preference
func ParsePreference(s string) (Preference, error) {
	p := Preference(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown theme %q", s)
	}
	return p, nil
}

// Resolve collapses p against the OS scheme. The result is Dark or Light.
func Resolve(p Preference, osDark bool) Preference {
	switch p {
	case Dark, Light:
		return p
	default:
		if osDark {
			return Dark
		}
		return Light
	}
}

// SchemeSource reports the operating system color scheme and notifies on
// change
type SchemeSource interface {
	IsDark() bool
	// Subscribe registers fn and returns the function that removes it
	Subscribe(fn func(dark bool)) func()
}

// Scheme is a settable SchemeSource. The terminal seeds it from the
// background color; the web server updates it from the browser's
// prefers-color-scheme report.
type Scheme struct {
	mu     sync.Mutex
	dark   bool
	nextID int
	subs   map[int]func(bool)
}

// NewScheme creates a scheme source with the given initial value
func NewScheme(dark bool) *Scheme {
	return &Scheme{dark: dark, subs: make(map[int]func(bool))}
}

func (s *Scheme) IsDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Set updates the scheme and notifies subscribers if it changed
func (s *Scheme) Set(dark bool) {
	s.mu.Lock()
	if s.dark == dark {
		s.mu.Unlock()
		return
	}
	s.dark = dark
	fns := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(dark)
	}
}

func (s *Scheme) Subscribe(fn func(dark bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers returns the number of live subscriptions
func (s *Scheme) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
