package vars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/paramesh/vars"
)

// TestStore_SetGet covers storing, overwriting, and lookup misses.
func TestStore_SetGet(t *testing.T) {
	s := vars.NewStore()

	s.Set("W", 500)
	s.Set("Shelf", 250)
	s.Set("Shelf", 300) // later Set overwrites silently

	v, ok := s.Get("Shelf")
	require.True(t, ok)
	assert.Equal(t, 300.0, v)

	_, ok = s.Get("Missing")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

// TestStore_InvalidNameRefused verifies invalid names are refused with a
// warning, never stored, and never raised as an error.
func TestStore_InvalidNameRefused(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := vars.NewStore(vars.WithLogger(zap.New(core)))

	for _, name := range []string{"", "1abc", "_x", "a-b", "a b", "Δ"} {
		s.Set(name, 1)
		_, ok := s.Get(name)
		assert.False(t, ok, "name %q must not be stored", name)
	}
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 6, logs.Len(), "one warning per refused name")
}

// TestStore_ClearDropsGhosts verifies Clear fully empties the store so a
// fresh sync cannot see stale names.
func TestStore_ClearDropsGhosts(t *testing.T) {
	s := vars.NewStore()
	s.Set("W", 500)
	s.Set("Ghost", 1)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	_, ok := s.Get("Ghost")
	assert.False(t, ok)
}

// TestStore_SnapshotSorted verifies deterministic, name-ordered snapshots.
func TestStore_SnapshotSorted(t *testing.T) {
	s := vars.NewStore()
	s.Set("Shelf", 250)
	s.Set("D", 300)
	s.Set("W", 500)

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, []vars.Variable{
		{Name: "D", Value: 300},
		{Name: "Shelf", Value: 250},
		{Name: "W", Value: 500},
	}, snap)
}

// TestStore_ScopeIsCopy verifies mutating the returned scope cannot write
// back into the store.
func TestStore_ScopeIsCopy(t *testing.T) {
	s := vars.NewStore()
	s.Set("W", 500)

	scope := s.Scope()
	scope["W"] = 1
	scope["Injected"] = 2

	v, _ := s.Get("W")
	assert.Equal(t, 500.0, v)
	_, ok := s.Get("Injected")
	assert.False(t, ok)
}

// TestNamePredicates pins the identifier and built-in classifiers.
func TestNamePredicates(t *testing.T) {
	assert.True(t, vars.IsValidName("Shelf_2"))
	assert.True(t, vars.IsValidName("w"))
	assert.False(t, vars.IsValidName("2nd"))
	assert.False(t, vars.IsValidName("_hidden"))
	assert.False(t, vars.IsValidName(""))

	assert.True(t, vars.IsBuiltin(vars.DimWidth))
	assert.True(t, vars.IsBuiltin("H"))
	assert.False(t, vars.IsBuiltin("Shelf"))
}
