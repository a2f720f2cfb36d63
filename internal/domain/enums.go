package domain

import "fmt"

// TransportMode is the closed set of supported travel segment kinds.
type TransportMode string

const (
	ModeTrain  TransportMode = "train"
	ModeFlight TransportMode = "flight"
	ModeBus    TransportMode = "bus"
	ModeWalk   TransportMode = "walk"
	ModeMetro  TransportMode = "metro"
	ModeCar    TransportMode = "car"
)

// ValidTransportModes is the canonical set of accepted transport mode strings.
var ValidTransportModes = map[TransportMode]bool{
	ModeTrain: true, ModeFlight: true, ModeBus: true,
	ModeWalk: true, ModeMetro: true, ModeCar: true,
}

// ParseTransportMode validates a raw mode string against the closed set.
func ParseTransportMode(s string) (TransportMode, error) {
	m := TransportMode(s)
	if !ValidTransportModes[m] {
		return "", fmt.Errorf("transport mode %q: %w", s, ErrInvalidField)
	}
	return m, nil
}

// SpotField names the editable attributes of a Spot. Any other attribute
// name is rejected with ErrInvalidField; there is no dynamic assignment path.
type SpotField string

const (
	SpotName    SpotField = "name"
	SpotFeature SpotField = "feature"
	SpotMapURL  SpotField = "mapUrl"
)

// ParseSpotField validates a raw field name against the editable set.
func ParseSpotField(s string) (SpotField, error) {
	switch f := SpotField(s); f {
	case SpotName, SpotFeature, SpotMapURL:
		return f, nil
	}
	return "", fmt.Errorf("spot field %q: %w", s, ErrInvalidField)
}
