package trip

import (
	"strings"

	"github.com/evelynko/carnet/internal/domain"
)

// EssentialsStore is the mutable pre-trip checklist. Items keep insertion
// order; there is no further ordering invariant.
type EssentialsStore struct {
	items []domain.EssentialItem
	ids   IDGenerator
}

// NewEssentialsStore wraps the seed checklist in a store.
func NewEssentialsStore(items []domain.EssentialItem, ids IDGenerator) *EssentialsStore {
	return &EssentialsStore{items: items, ids: ids}
}

// Items returns the checklist. The slice is owned by the store; callers
// treat it as read-only.
func (s *EssentialsStore) Items() []domain.EssentialItem {
	return s.items
}

// Toggle flips the checked flag of the matching item; absent ids are a no-op.
func (s *EssentialsStore) Toggle(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Checked = !s.items[i].Checked
			return
		}
	}
}

// Add appends a new unchecked item and returns it. A text that trims to
// empty creates nothing and returns nil.
func (s *EssentialsStore) Add(text string) *domain.EssentialItem {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	s.items = append(s.items, domain.EssentialItem{
		ID:   s.ids.NewID(),
		Text: text,
	})
	return &s.items[len(s.items)-1]
}

// Remove deletes the matching item; absent ids are a no-op.
func (s *EssentialsStore) Remove(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateText replaces the matching item's text; absent ids are a no-op.
func (s *EssentialsStore) UpdateText(id, text string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Text = text
			return
		}
	}
}

// Progress reports checklist completion as a whole-number percentage.
func (s *EssentialsStore) Progress() int {
	return domain.Progress(s.items)
}
