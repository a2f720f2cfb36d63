package trip

import (
	"strconv"
	"strings"
)

// tripDate is a parsed "M/D" itinerary date. The seed data carries no year
// and no zero padding ("5/22", "6/1"), so raw string comparison would order
// June before late May. Groups are therefore sorted by parsed calendar
// value, not lexically.
type tripDate struct {
	month, day int
}

func parseTripDate(s string) (tripDate, bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return tripDate{}, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || m < 1 || m > 12 {
		return tripDate{}, false
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || d < 1 || d > 31 {
		return tripDate{}, false
	}
	return tripDate{month: m, day: d}, true
}

// laterDate reports whether date a is calendar-after date b. Parsable dates
// order before unparsable ones; two unparsable dates fall back to a
// descending lexical comparison so the sort stays deterministic.
func laterDate(a, b string) bool {
	da, aok := parseTripDate(a)
	db, bok := parseTripDate(b)
	switch {
	case aok && bok:
		if da.month != db.month {
			return da.month > db.month
		}
		return da.day > db.day
	case aok:
		return true
	case bok:
		return false
	default:
		return a > b
	}
}
