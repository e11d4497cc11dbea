package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAssignsStrictlyIncreasingIDs(t *testing.T) {
	store := NewItemStore()

	seen := make(map[uint64]bool)
	var last uint64
	for i := 0; i < 50; i++ {
		item, ok := store.Add("task")
		require.True(t, ok)
		assert.Greater(t, item.ID, last)
		assert.False(t, seen[item.ID], "id %d assigned twice", item.ID)
		seen[item.ID] = true
		last = item.ID
	}

	// Removing items must not free their ids for reuse.
	store.Remove(1, 2, 3)
	item, ok := store.Add("task")
	require.True(t, ok)
	assert.Greater(t, item.ID, last)
}

func TestAddTrimsDescription(t *testing.T) {
	store := NewItemStore()

	item, ok := store.Add("  buy milk \n")
	require.True(t, ok)
	assert.Equal(t, "buy milk", item.Description)
	assert.False(t, item.Completed)
	assert.False(t, item.Edit)
}

func TestAddRejectsWhitespaceOnly(t *testing.T) {
	store := NewItemStore()

	for _, text := range []string{"", "   ", "\t\n  "} {
		_, ok := store.Add(text)
		assert.False(t, ok, "text %q should be rejected", text)
	}

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, uint64(1), store.NextID(), "rejected adds must not consume ids")
}

func TestRemoveSetPreservesOrder(t *testing.T) {
	store := NewItemStore()
	for _, desc := range []string{"a", "b", "c", "d", "e"} {
		_, ok := store.Add(desc)
		require.True(t, ok)
	}

	removed := store.Remove(2, 4)
	assert.Equal(t, 2, removed)

	items := store.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []uint64{1, 3, 5}, []uint64{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, []string{"a", "c", "e"}, []string{items[0].Description, items[1].Description, items[2].Description})
}

func TestRemoveUnknownAndEmpty(t *testing.T) {
	store := NewItemStore()
	store.Add("a")

	assert.Equal(t, 0, store.Remove())
	assert.Equal(t, 0, store.Remove(99))
	assert.Equal(t, 1, store.Len())
}

func TestReplaceAllPrimesIDGenerator(t *testing.T) {
	store := NewItemStore()
	store.Add("old")

	store.ReplaceAll([]Item{
		{ID: 7, Description: "seven"},
		{ID: 3, Description: "three", Completed: true},
	})

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, uint64(8), store.NextID())

	item, ok := store.Add("new")
	require.True(t, ok)
	assert.Equal(t, uint64(8), item.ID)
}

func TestReplaceAllEmptyResetsToOne(t *testing.T) {
	store := NewItemStore()
	store.Add("a")
	store.Add("b")

	store.ReplaceAll(nil)

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, uint64(1), store.NextID())
}

func TestCompletionFlags(t *testing.T) {
	store := NewItemStore()
	item, _ := store.Add("a")

	require.True(t, store.ToggleCompleted(item.ID))
	assert.True(t, store.Items()[0].Completed)

	require.True(t, store.ToggleCompleted(item.ID))
	assert.False(t, store.Items()[0].Completed)

	require.True(t, store.SetCompleted(item.ID, true))
	assert.True(t, store.Items()[0].Completed)

	assert.False(t, store.ToggleCompleted(999))
	assert.False(t, store.SetCompleted(999, true))
}

func TestEditingStateMachine(t *testing.T) {
	store := NewItemStore()
	item, _ := store.Add("draft")

	require.True(t, store.SetEditing(item.ID, true))
	assert.True(t, store.Items()[0].Edit)

	// Empty text is allowed while editing; only Add validates.
	require.True(t, store.SetDescription(item.ID, ""))
	require.True(t, store.SetEditing(item.ID, false))

	got := store.Items()[0]
	assert.False(t, got.Edit)
	assert.Equal(t, "", got.Description)

	assert.False(t, store.SetEditing(999, true))
	assert.False(t, store.SetDescription(999, "x"))
}

func TestItemsReturnsSnapshot(t *testing.T) {
	store := NewItemStore()
	store.Add("a")

	snapshot := store.Items()
	snapshot[0].Description = "mutated"

	assert.Equal(t, "a", store.Items()[0].Description)
}
