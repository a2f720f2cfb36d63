// Package testutil provides shared fixtures for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/evelynko/carnet/internal/trip"
)

// SeqIDs is a deterministic trip.IDGenerator producing "prefix-1",
// "prefix-2", ...
type SeqIDs struct {
	prefix string
	n      int
}

// NewSeqIDs creates a sequential generator with the given prefix.
func NewSeqIDs(prefix string) *SeqIDs {
	return &SeqIDs{prefix: prefix}
}

func (s *SeqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

// SeededEngine returns an engine loaded with the full seed itinerary and
// checklist, using deterministic identifiers.
func SeededEngine(t *testing.T) *trip.Engine {
	t.Helper()
	e, err := trip.NewEngine(trip.SeedItinerary(), trip.SeedEssentials(), NewSeqIDs("test"))
	if err != nil {
		t.Fatalf("seeding engine: %v", err)
	}
	return e
}
