package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/planner"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	st := planner.NewState("s1", now)
	st.Destination = "Osaka"
	require.NoError(t, store.Save(ctx, st))

	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Osaka", got.Destination)

	// Stored state is isolated from caller mutations.
	got.Destination = "Tokyo"
	again, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Osaka", again.Destination)
}

func TestMemoryStoreMissingSession(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Load(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "nope"), ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	st := planner.NewState("s1", time.Now())
	require.NoError(t, store.Save(ctx, st))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Load(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}
