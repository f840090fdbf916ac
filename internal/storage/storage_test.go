package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
)

// stores returns every implementation so each behavior is checked on both
func stores(t *testing.T) map[string]interface {
	Store
	MessageStore
} {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "folio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sq.Close() })

	return map[string]interface {
		Store
		MessageStore
	}{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func TestGetMissingKey(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ThemeKey)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Equal(t, "dark", GetOr(s, ThemeKey, "dark"))
		})
	}
}

func TestSetOverwrites(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ProjectFilterKey, "web"))
			require.NoError(t, s.Set(ProjectFilterKey, "systems"))

			v, err := s.Get(ProjectFilterKey)
			require.NoError(t, err)
			assert.Equal(t, "systems", v)
		})
	}
}

func TestMessagesNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SaveMessage(ctx, domain.ContactMessage{ID: "a", Name: "Ada", Email: "ada@example.com", Body: "hi", CreatedAt: base}))
			require.NoError(t, s.SaveMessage(ctx, domain.ContactMessage{ID: "b", Name: "Bob", Email: "bob@example.com", Body: "yo", CreatedAt: base.Add(time.Hour)}))

			msgs, err := s.ListMessages(ctx, 0)
			require.NoError(t, err)
			require.Len(t, msgs, 2)
			assert.Equal(t, "b", msgs[0].ID)
			assert.Equal(t, "Ada", msgs[1].Name)

			msgs, err = s.ListMessages(ctx, 1)
			require.NoError(t, err)
			assert.Len(t, msgs, 1)
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ThemeKey, "light"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestGetOrNilStore(t *testing.T) {
	assert.Equal(t, "system", GetOr(nil, ThemeKey, "system"))
}
