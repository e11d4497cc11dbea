package models

import (
	"strings"
	"sync"
)

// ItemStore manages the ordered checklist and owns id assignment.
// Order is user-meaningful: it is both display order and the order
// items are written to disk.
type ItemStore struct {
	mu     sync.RWMutex
	items  []Item
	nextID uint64
}

// NewItemStore creates an empty store with the id generator at 1.
func NewItemStore() *ItemStore {
	return &ItemStore{
		items:  make([]Item, 0),
		nextID: 1,
	}
}

// Add appends a new item with a fresh id. The description is trimmed
// first; a result of empty text is rejected and nothing is added.
func (s *ItemStore) Add(description string) (Item, bool) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Item{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:          s.nextID,
		Description: description,
	}
	s.nextID++
	s.items = append(s.items, item)

	return item, true
}

// SetCompleted sets the completion flag of the item with the given id.
func (s *ItemStore) SetCompleted(id uint64, completed bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Completed = completed
			return true
		}
	}
	return false
}

// ToggleCompleted flips the completion flag of the item with the given id.
func (s *ItemStore) ToggleCompleted(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Completed = !s.items[i].Completed
			return true
		}
	}
	return false
}

// SetDescription replaces the description of the item with the given id.
// Edit-mode text is stored verbatim; empty text is allowed here, only
// Add validates.
func (s *ItemStore) SetDescription(id uint64, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Description = text
			return true
		}
	}
	return false
}

// SetEditing moves the item with the given id between the Viewing and
// Editing states.
func (s *ItemStore) SetEditing(id uint64, editing bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Edit = editing
			return true
		}
	}
	return false
}

// Remove deletes every item whose id is in the given set, in a single
// pass. The relative order of the remaining items is unchanged. It
// returns the number of items removed. Unknown ids are ignored.
func (s *ItemStore) Remove(ids ...uint64) int {
	if len(ids) == 0 {
		return 0
	}

	marked := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		marked[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if _, ok := marked[item.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept

	return removed
}

// ReplaceAll discards the current list in favor of the given items and
// reseeds the id generator to max(loaded ids)+1, or 1 for an empty
// list, so future additions never collide with loaded data.
func (s *ItemStore) ReplaceAll(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]Item, len(items))
	copy(s.items, items)

	var maxID uint64
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	s.nextID = maxID + 1
}

// Items returns a snapshot copy of the list in display order.
func (s *ItemStore) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of items currently in the store.
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// NextID returns the id the next Add will assign.
func (s *ItemStore) NextID() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}
