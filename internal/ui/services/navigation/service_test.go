package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
	"folio/internal/eventbus"
)

func TestNavigateAndBack(t *testing.T) {
	s := NewService(nil)
	assert.Equal(t, ViewPalette, s.Mode())
	_, ok := s.Section()
	assert.False(t, ok)

	s.Navigate(domain.SectionProjects)
	assert.Equal(t, ViewContent, s.Mode())
	sec, ok := s.Section()
	require.True(t, ok)
	assert.Equal(t, domain.SectionProjects, sec)

	assert.True(t, s.Back())
	assert.Equal(t, ViewPalette, s.Mode())
	_, ok = s.Section()
	assert.False(t, ok)
	assert.False(t, s.Back())
}

func TestToggle(t *testing.T) {
	s := NewService(nil)
	assert.True(t, s.Visible())

	s.Toggle()
	assert.False(t, s.Visible())
	s.Toggle()
	assert.True(t, s.Visible())

	s.Navigate(domain.SectionAbout)
	s.Toggle()
	assert.Equal(t, ViewPalette, s.Mode(), "toggle in content acts as back")
	assert.True(t, s.Visible())
}

func TestPublishesEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 8)
	for _, et := range []eventbus.EventType{eventbus.EventSectionOpened, eventbus.EventSectionClosed, eventbus.EventPaletteToggled} {
		bus.Subscribe(et, func(e eventbus.DomainEvent) { got <- e })
	}

	s := NewService(bus)
	s.Navigate(domain.SectionStats)
	s.Back()
	s.SetVisible(false)
	s.SetVisible(false)

	want := []eventbus.DomainEvent{
		eventbus.SectionOpenedEvent{Section: domain.SectionStats},
		eventbus.SectionClosedEvent{Section: domain.SectionStats},
		eventbus.PaletteToggledEvent{Visible: false},
	}
	for _, w := range want {
		select {
		case e := <-got:
			assert.Equal(t, w, e)
		case <-time.After(time.Second):
			t.Fatalf("missing %T", w)
		}
	}
	select {
	case e := <-got:
		t.Fatalf("unexpected event %v", e)
	case <-time.After(50 * time.Millisecond):
	}
}
