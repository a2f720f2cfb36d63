package trip

import (
	"fmt"

	"github.com/evelynko/carnet/internal/domain"
)

// Placeholder content for a freshly added spot.
const (
	NewSpotName    = "新行程項目"
	NewSpotFeature = "在此加入行程特色備註..."
)

// ItineraryStore holds the fixed, ordered sequence of day plans. The day
// count is fixed for the life of the store: days are never added, removed,
// or reordered, and a day's identity (id, day number, date) is never
// mutated. Only the nested spot sequences change.
type ItineraryStore struct {
	days []domain.DayPlan
	ids  IDGenerator
}

// NewItineraryStore validates the seed snapshot and wraps it in a store.
// Day numbers must be 1-based and match sequence position; dates must be
// non-empty and unique across the itinerary.
func NewItineraryStore(days []domain.DayPlan, ids IDGenerator) (*ItineraryStore, error) {
	seen := make(map[string]int, len(days))
	for i, d := range days {
		if d.Day != i+1 {
			return nil, fmt.Errorf("day at position %d has day number %d, want %d", i, d.Day, i+1)
		}
		if d.Date == "" {
			return nil, fmt.Errorf("day %d has an empty date", d.Day)
		}
		if prev, dup := seen[d.Date]; dup {
			return nil, fmt.Errorf("days %d and %d share date %q", prev, d.Day, d.Date)
		}
		seen[d.Date] = d.Day
	}
	return &ItineraryStore{days: days, ids: ids}, nil
}

// Len returns the number of days in the itinerary.
func (s *ItineraryStore) Len() int {
	return len(s.days)
}

// Days returns the itinerary. The slice is shared state owned by the
// store; callers treat it as read-only.
func (s *ItineraryStore) Days() []domain.DayPlan {
	return s.days
}

// Day returns the day plan at the given index.
func (s *ItineraryStore) Day(index int) (*domain.DayPlan, error) {
	if index < 0 || index >= len(s.days) {
		return nil, fmt.Errorf("day index %d: %w", index, domain.ErrOutOfRange)
	}
	return &s.days[index], nil
}

// DayNumberByDate resolves a date string to its day number.
func (s *ItineraryStore) DayNumberByDate(date string) (int, bool) {
	for i := range s.days {
		if s.days[i].Date == date {
			return s.days[i].Day, true
		}
	}
	return 0, false
}

// AddSpot appends a placeholder spot with a fresh identifier to the given
// day and returns it.
func (s *ItineraryStore) AddSpot(dayIndex int) (*domain.Spot, error) {
	day, err := s.Day(dayIndex)
	if err != nil {
		return nil, err
	}
	day.Spots = append(day.Spots, domain.Spot{
		ID:      s.ids.NewID(),
		Name:    NewSpotName,
		Feature: NewSpotFeature,
	})
	return &day.Spots[len(day.Spots)-1], nil
}

// RemoveSpot deletes the spot with the given id from the given day.
// An absent id is a no-op, so a duplicated delete click cannot fail.
func (s *ItineraryStore) RemoveSpot(dayIndex int, spotID string) error {
	day, err := s.Day(dayIndex)
	if err != nil {
		return err
	}
	for i := range day.Spots {
		if day.Spots[i].ID == spotID {
			day.Spots = append(day.Spots[:i], day.Spots[i+1:]...)
			return nil
		}
	}
	return nil
}

// UpdateSpotField sets exactly one editable attribute on the matching spot.
// Unknown field names fail with ErrInvalidField; a missing spot fails with
// ErrNotFound, since the caller expected the update to land.
func (s *ItineraryStore) UpdateSpotField(dayIndex int, spotID, field, value string) error {
	day, err := s.Day(dayIndex)
	if err != nil {
		return err
	}
	f, err := domain.ParseSpotField(field)
	if err != nil {
		return err
	}
	spot := day.SpotByID(spotID)
	if spot == nil {
		return fmt.Errorf("spot %q in day %d: %w", spotID, day.Day, domain.ErrNotFound)
	}
	switch f {
	case domain.SpotName:
		spot.Name = value
	case domain.SpotFeature:
		spot.Feature = value
	case domain.SpotMapURL:
		spot.MapURL = value
	}
	return nil
}
