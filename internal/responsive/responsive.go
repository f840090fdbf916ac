// Package responsive classifies the viewport into layout tiers and tracks
// on-screen keyboard visibility.
package responsive

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// Tier is a responsive layout class
type Tier int

const (
	Mobile Tier = iota
	Tablet
	Desktop
)

// Breakpoints in pixels
const (
	TabletMinWidth  = 768
	DesktopMinWidth = 1024
)

func (t Tier) String() string {
	switch t {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Columns is the grid column count used by card grids at this tier
func (t Tier) Columns() int {
	switch t {
	case Desktop:
		return 3
	case Tablet:
		return 2
	default:
		return 1
	}
}

// Classify maps a viewport width in pixels to a tier
func Classify(widthPx int) Tier {
	switch {
	case widthPx < TabletMinWidth:
		return Mobile
	case widthPx < DesktopMinWidth:
		return Tablet
	default:
		return Desktop
	}
}

// CellMetrics converts terminal cells to pixels
type CellMetrics struct {
	WidthPx  int
	HeightPx int
}

// DefaultCellMetrics approximates a common monospace font
var DefaultCellMetrics = CellMetrics{WidthPx: 8, HeightPx: 16}

// Width converts columns to pixels
func (m CellMetrics) Width(cols int) int {
	w := m.WidthPx
	if w <= 0 {
		w = DefaultCellMetrics.WidthPx
	}
	return cols * w
}

// Height converts rows to pixels
func (m CellMetrics) Height(rows int) int {
	h := m.HeightPx
	if h <= 0 {
		h = DefaultCellMetrics.HeightPx
	}
	return rows * h
}

// Rows converts pixels back to whole rows, rounding up
func (m CellMetrics) Rows(px int) int {
	h := m.HeightPx
	if h <= 0 {
		h = DefaultCellMetrics.HeightPx
	}
	if px <= 0 {
		return 0
	}
	return (px + h - 1) / h
}

// KeyboardThresholdPx is the height loss that counts as an on-screen
// keyboard
const KeyboardThresholdPx = 150

// KeyboardState describes the virtual keyboard and the layout compensation
// for it
type KeyboardState struct {
	Visible       bool
	SafeHeight    int
	BottomPadding int
}

// KeyboardObserver compares viewport heights against the first height it
// saw. It is only meaningful at the mobile tier.
type KeyboardObserver struct {
	mu       sync.Mutex
	baseline int
	state    KeyboardState
}

// NewKeyboardObserver creates an observer with no baseline yet
func NewKeyboardObserver() *KeyboardObserver {
	return &KeyboardObserver{}
}

// Observe records a viewport height. Heights taller than the baseline
// raise it, e.g. after a rotation.
func (o *KeyboardObserver) Observe(heightPx int, tier Tier) KeyboardState {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.baseline == 0 || heightPx > o.baseline {
		o.baseline = heightPx
	}

	shrink := o.baseline - heightPx
	if tier == Mobile && shrink > KeyboardThresholdPx {
		o.state = KeyboardState{Visible: true, SafeHeight: heightPx, BottomPadding: shrink}
	} else {
		o.state = KeyboardState{SafeHeight: heightPx}
	}
	return o.state
}

// State returns the last computed state
func (o *KeyboardObserver) State() KeyboardState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Reset forgets the baseline
func (o *KeyboardObserver) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.baseline = 0
	o.state = KeyboardState{}
}

// Capabilities are environment probes read once at startup
type Capabilities struct {
	ReducedMotion bool
	Hover         bool
}

// Probe reads capabilities. Reduced motion is on when configured or when
// FOLIO_REDUCED_MOTION or NO_MOTION is truthy; hover follows mouse
// reporting.
func Probe(configReducedMotion, mouse bool, getenv func(string) string) Capabilities {
	if getenv == nil {
		getenv = os.Getenv
	}
	reduced := configReducedMotion
	for _, key := range []string{"FOLIO_REDUCED_MOTION", "NO_MOTION"} {
		if v, err := strconv.ParseBool(strings.TrimSpace(getenv(key))); err == nil && v {
			reduced = true
		}
	}
	return Capabilities{ReducedMotion: reduced, Hover: mouse}
}
