package domain

// Spot is a point of interest inside a single day of the itinerary.
// It is owned exclusively by its DayPlan and has no cross-day links.
type Spot struct {
	ID      string
	Name    string
	Feature string
	MapURL  string
}

// Transport is a travel segment within a day. Transports are seeded with
// the itinerary and are not editable through the engine's command set.
type Transport struct {
	ID         string
	Mode       TransportMode
	Details    string
	Duration   string
	Price      string
	MapURL     string
	BookingURL string
}

// DayPlan is one calendar day of the trip. Day numbers are 1-based and
// match the day's position in the itinerary; dates are unique across it.
type DayPlan struct {
	ID          string
	Day         int
	Date        string
	Title       string
	Description string
	Spots       []Spot
	Transports  []Transport
	Checklist   []EssentialItem
	StartTime   string
	Budget      string
	Precautions []string
}

// SpotByID returns the spot with the given id, or nil if absent.
func (d *DayPlan) SpotByID(id string) *Spot {
	for i := range d.Spots {
		if d.Spots[i].ID == id {
			return &d.Spots[i]
		}
	}
	return nil
}

// EssentialItem is one pre-trip checklist entry.
type EssentialItem struct {
	ID      string
	Text    string
	Checked bool
}
