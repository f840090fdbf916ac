package state

import (
	"errors"
	"math/rand"
	"time"
)

// ErrSimulatedLoad is the development-only content load failure
var ErrSimulatedLoad = errors.New("failed to load content")

// devFailureRate is the fraction of loads that fail in dev mode
const devFailureRate = 0.1

// Loader tracks the simulated content fetch. Each Start returns a token;
// only the latest token can finish, so timers that fire after a section
// change or Back are ignored.
type Loader struct {
	seq     uint64
	loading bool
	devMode bool
	roll    func() float64
}

// NewLoader creates a loader. roll returns values in [0,1) and defaults
// to a time-seeded source; it only matters in dev mode.
func NewLoader(devMode bool, roll func() float64) *Loader {
	if roll == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		roll = rng.Float64
	}
	return &Loader{devMode: devMode, roll: roll}
}

// Start begins a new load and supersedes any pending one
func (l *Loader) Start() uint64 {
	l.seq++
	l.loading = true
	return l.seq
}

// Cancel drops the pending load
func (l *Loader) Cancel() {
	l.seq++
	l.loading = false
}

// Pending returns the token of the pending load
func (l *Loader) Pending() (uint64, bool) {
	return l.seq, l.loading
}

// Loading reports whether a load is pending
func (l *Loader) Loading() bool {
	return l.loading
}

// Finish completes the load for token. current is false for stale tokens.
func (l *Loader) Finish(token uint64) (current bool, err error) {
	if !l.loading || token != l.seq {
		return false, nil
	}
	l.loading = false
	if l.devMode && l.roll() < devFailureRate {
		return true, ErrSimulatedLoad
	}
	return true, nil
}
