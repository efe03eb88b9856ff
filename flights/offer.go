// Package flights holds the provider-agnostic flight search domain: offers,
// queries, date handling and the error taxonomy shared by every component.
package flights

import "time"

// Airport identifies one endpoint of a segment. Either field may be empty
// when the provider does not report it.
type Airport struct {
	Code string
	Name string
}

// Segment is a single flown leg of an itinerary.
type Segment struct {
	From            Airport
	To              Airport
	Departure       time.Time // zero when unknown
	Arrival         time.Time // zero when unknown
	DurationMinutes int       // 0 when unknown
	Aircraft        string
}

// Offer is one priced itinerary returned by a provider.
//
// Price is nil when the provider did not report a fare. A missing price is
// not the same as a zero price and must never be compared as one.
type Offer struct {
	Price     *float64
	Currency  string
	Carriers  []string
	FareClass string
	Segments  []Segment
}

// Priced reports whether the offer carries a known fare.
func (o Offer) Priced() bool { return o.Price != nil }

// Stops returns the number of intermediate stops in the itinerary.
func (o Offer) Stops() int {
	if len(o.Segments) == 0 {
		return 0
	}
	return len(o.Segments) - 1
}
