package responsive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		width int
		want  Tier
	}{
		{0, Mobile},
		{320, Mobile},
		{767, Mobile},
		{768, Tablet},
		{1023, Tablet},
		{1024, Desktop},
		{2560, Desktop},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.width), "width %d", tt.width)
	}
}

func TestTierColumns(t *testing.T) {
	assert.Equal(t, 1, Mobile.Columns())
	assert.Equal(t, 2, Tablet.Columns())
	assert.Equal(t, 3, Desktop.Columns())
	assert.Equal(t, "tablet", Tablet.String())
}

func TestCellMetrics(t *testing.T) {
	m := CellMetrics{WidthPx: 8, HeightPx: 16}
	assert.Equal(t, 760, m.Width(95))
	assert.Equal(t, Mobile, Classify(m.Width(95)))
	assert.Equal(t, Tablet, Classify(m.Width(96)))
	assert.Equal(t, Desktop, Classify(m.Width(128)))
	assert.Equal(t, 10, m.Rows(151))
	assert.Equal(t, 0, m.Rows(0))

	var zero CellMetrics
	assert.Equal(t, 80, zero.Width(10))
}

func TestKeyboardObserver(t *testing.T) {
	o := NewKeyboardObserver()

	s := o.Observe(800, Mobile)
	assert.False(t, s.Visible)
	assert.Equal(t, 800, s.SafeHeight)

	s = o.Observe(650, Mobile)
	assert.False(t, s.Visible, "exactly 150px is not enough")

	s = o.Observe(500, Mobile)
	assert.True(t, s.Visible)
	assert.Equal(t, 500, s.SafeHeight)
	assert.Equal(t, 300, s.BottomPadding)
	assert.Equal(t, s, o.State())

	s = o.Observe(800, Mobile)
	assert.False(t, s.Visible)
	assert.Zero(t, s.BottomPadding)
}

func TestKeyboardObserverIgnoresLargerTiers(t *testing.T) {
	o := NewKeyboardObserver()
	o.Observe(900, Desktop)
	s := o.Observe(400, Desktop)
	assert.False(t, s.Visible)

	o.Reset()
	assert.Equal(t, KeyboardState{}, o.State())
	s = o.Observe(400, Mobile)
	assert.False(t, s.Visible)
}

func TestProbe(t *testing.T) {
	env := map[string]string{}
	get := func(k string) string { return env[k] }

	c := Probe(false, true, get)
	assert.False(t, c.ReducedMotion)
	assert.True(t, c.Hover)

	env["NO_MOTION"] = "1"
	assert.True(t, Probe(false, false, get).ReducedMotion)

	env["NO_MOTION"] = "maybe"
	assert.True(t, Probe(true, false, get).ReducedMotion)
	assert.False(t, Probe(false, false, get).ReducedMotion)
}
