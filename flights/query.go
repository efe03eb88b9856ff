package flights

import (
	"strings"
	"time"
)

// TripType selects between a single-leg and an out-and-back search.
type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// Seat is a canonical cabin class accepted by providers.
type Seat string

const (
	SeatEconomy        Seat = "economy"
	SeatPremiumEconomy Seat = "premium-economy"
	SeatBusiness       Seat = "business"
	SeatFirst          Seat = "first"
)

// Leg is a single requested flight: fly From to To on Date.
type Leg struct {
	Date time.Time
	From string
	To   string
}

// Query is a provider-agnostic flight search request. Building one performs
// no I/O.
type Query struct {
	Legs   []Leg
	Trip   TripType
	Seat   Seat
	Adults int
}

// NormalizeSeat maps free-text cabin input onto a canonical Seat. Matching is
// case-insensitive; unknown or empty input falls back to economy. This never
// fails.
func NormalizeSeat(s string) Seat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "economy":
		return SeatEconomy
	case "business":
		return SeatBusiness
	case "first":
		return SeatFirst
	case "premium", "premium-economy", "premium_economy":
		return SeatPremiumEconomy
	default:
		return SeatEconomy
	}
}

// NewOneWayQuery builds a single-leg query. A non-positive adults count is
// bumped to 1.
func NewOneWayQuery(origin, destination string, date time.Time, seat Seat, adults int) Query {
	if adults <= 0 {
		adults = 1
	}
	return Query{
		Legs:   []Leg{{Date: date, From: origin, To: destination}},
		Trip:   TripOneWay,
		Seat:   seat,
		Adults: adults,
	}
}

// NewRoundTripQuery builds an outbound leg plus an inbound leg with the
// endpoints swapped.
func NewRoundTripQuery(origin, destination string, depart, ret time.Time, seat Seat, adults int) Query {
	if adults <= 0 {
		adults = 1
	}
	return Query{
		Legs: []Leg{
			{Date: depart, From: origin, To: destination},
			{Date: ret, From: destination, To: origin},
		},
		Trip:   TripRoundTrip,
		Seat:   seat,
		Adults: adults,
	}
}
