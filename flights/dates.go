package flights

import "time"

// DateLayout is the wire format for all tool-facing dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Input: s}
	}
	return t, nil
}

// DatePair is one candidate departure/return combination. Return is never
// before Depart.
type DatePair struct {
	Depart time.Time
	Return time.Time
}

// Stay returns the trip length in whole days. Zero means a same-day return.
func (p DatePair) Stay() int {
	return int(p.Return.Sub(p.Depart).Hours() / 24)
}

// Label renders the pair as "YYYY-MM-DD -> YYYY-MM-DD".
func (p DatePair) Label() string {
	return p.Depart.Format(DateLayout) + " -> " + p.Return.Format(DateLayout)
}

// ExpandDatePairs materializes every valid (departure, return) combination
// inside the inclusive [start, end] window. Both boundary dates are part of
// the window, and departure may equal return. A pair survives when its stay
// length honors the optional minStay/maxStay bounds; a nil bound is
// unbounded. Pairs come back ordered by departure date, then return date.
//
// The unfiltered pair count grows as n*(n+1)/2 for an n-day window, and the
// caller issues one remote query per pair, so ranges should stay small.
func ExpandDatePairs(start, end time.Time, minStay, maxStay *int) ([]DatePair, error) {
	if start.After(end) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	var pairs []DatePair
	for i, depart := range dates {
		for _, ret := range dates[i:] {
			stay := int(ret.Sub(depart).Hours() / 24)
			if minStay != nil && stay < *minStay {
				continue
			}
			if maxStay != nil && stay > *maxStay {
				continue
			}
			pairs = append(pairs, DatePair{Depart: depart, Return: ret})
		}
	}
	return pairs, nil
}
