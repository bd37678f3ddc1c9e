package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2026, 2, 8, 9, 0, 0, 0, time.UTC)
	store := newMemoryStore(10*time.Minute, func() time.Time { return now })

	store.Add(&Session{ID: "a"})
	store.Add(&Session{ID: "b"})

	now = now.Add(8 * time.Minute)
	_, err := store.Get("a")
	require.NoError(t, err, "touching a session extends its life")

	now = now.Add(8 * time.Minute)
	_, err = store.Get("a")
	assert.NoError(t, err)

	assert.Equal(t, 1, store.Sweep(), "only the idle session is swept")
	_, err = store.Get("b")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	now = now.Add(11 * time.Minute)
	_, err = store.Get("a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreWithoutTTL(t *testing.T) {
	now := time.Now()
	store := newMemoryStore(0, func() time.Time { return now })
	store.Add(&Session{ID: "a"})

	now = now.Add(24 * time.Hour)
	_, err := store.Get("a")
	assert.NoError(t, err)

	store.Delete("a")
	_, err = store.Get("a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
