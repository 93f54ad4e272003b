package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propABC = "a.b.c"

func TestNewStoreIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewStore()
	require.Zero(t, store.Len())
	require.Empty(t, store.Keys())
}

func TestStoreSetAndGet(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Set(propABC, "true")

	require.True(t, store.Exists(propABC))
	require.Equal(t, "true", store.Get(propABC))
	require.Equal(t, "true", store.GetDefault(propABC, "fallback"))

	store.Set(propABC, "false")
	require.Equal(t, "false", store.Get(propABC), "last write wins")
	require.Equal(t, 1, store.Len())
}

func TestStoreMissingKey(t *testing.T) {
	t.Parallel()

	store := NewStore()
	assert.False(t, store.Exists("nope"))
	assert.Equal(t, "", store.Get("nope"))
	assert.Equal(t, "fallback", store.GetDefault("nope", "fallback"))

	_, ok := store.GetString("nope")
	assert.False(t, ok)
}

func TestStoreRemove(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Set(propABC, "true")

	require.True(t, store.Remove(propABC))
	require.False(t, store.Exists(propABC))
	require.False(t, store.Remove(propABC))
}

func TestStoreKeysSnapshot(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Set(propABC, "true")
	store.Set("second", "false")

	keys := store.Keys()
	require.Equal(t, []string{propABC, "second"}, keys)

	store.Set("third", "x")
	store.Remove("second")
	require.Equal(t, []string{propABC, "second"}, keys)
}

func TestStoreSubset(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Set("a.b", "x")
	store.Set("a.c.d", "z")
	store.Set("c", "y")
	store.Set("ab", "no dot")

	sub := store.Subset("a.")
	require.Equal(t, map[string]string{"b": "x", "c.d": "z"}, sub.Map())

	sub.Set("b", "changed")
	require.Equal(t, "x", store.Get("a.b"), "subset is independent of its source")

	require.Equal(t, store.Map(), store.Subset("").Map())
}

func TestStoreClone(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Set("k", "v")

	clone := store.Clone()
	clone.Set("k", "other")
	clone.Set("extra", "1")

	require.Equal(t, "v", store.Get("k"))
	require.False(t, store.Exists("extra"))
}
