package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_SetGet(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))

	val, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestKVStore_GetMissing(t *testing.T) {
	store := NewKVStore()

	val, ok, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestKVStore_SetOverwrites(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v1"))
	require.NoError(t, store.Set(ctx, "k", "v2"))

	val, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", val)
}

func TestKVStore_Remove(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Remove(ctx, "k"))

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a missing key is not an error.
	assert.NoError(t, store.Remove(ctx, "k"))
}

func TestKVStore_RemoveMany(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))
	require.NoError(t, store.Set(ctx, "c", "3"))

	require.NoError(t, store.RemoveMany(ctx, []string{"a", "c"}))

	assert.Equal(t, 1, store.Len())
	_, ok, _ := store.Get(ctx, "b")
	assert.True(t, ok)
}

func TestKVStore_RemoveMany_ContinuesPastFailures(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "c", "3"))
	store.FailKeys = map[string]bool{"b": true}

	err := store.RemoveMany(ctx, []string{"a", "b", "c"})

	// The failure is reported, but the other keys are still removed.
	assert.ErrorIs(t, err, ErrForced)
	assert.Equal(t, 0, store.Len())
}
