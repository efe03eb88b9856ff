package flights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSeat(t *testing.T) {
	tests := []struct {
		input    string
		expected Seat
	}{
		{"economy", SeatEconomy},
		{"Economy", SeatEconomy},
		{"BUSINESS", SeatBusiness},
		{"first", SeatFirst},
		{"premium", SeatPremiumEconomy},
		{"premium-economy", SeatPremiumEconomy},
		{"premium_economy", SeatPremiumEconomy},
		{"PREMIUM_ECONOMY", SeatPremiumEconomy},
		{"Premium", SeatPremiumEconomy},
		{"deluxe", SeatEconomy},
		{"", SeatEconomy},
		{"  business  ", SeatBusiness},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeSeat(tt.input), "input %q", tt.input)
	}
}

func TestNewOneWayQuery(t *testing.T) {
	q := NewOneWayQuery("DEN", "LAX", date("2026-03-01"), SeatEconomy, 2)

	assert.Equal(t, TripOneWay, q.Trip)
	assert.Equal(t, 2, q.Adults)
	assert.Len(t, q.Legs, 1)
	assert.Equal(t, "DEN", q.Legs[0].From)
	assert.Equal(t, "LAX", q.Legs[0].To)
	assert.Equal(t, date("2026-03-01"), q.Legs[0].Date)
}

func TestNewRoundTripQuery(t *testing.T) {
	q := NewRoundTripQuery("DEN", "LAX", date("2026-03-01"), date("2026-03-05"), SeatBusiness, 1)

	assert.Equal(t, TripRoundTrip, q.Trip)
	assert.Len(t, q.Legs, 2)
	assert.Equal(t, "DEN", q.Legs[0].From)
	assert.Equal(t, "LAX", q.Legs[0].To)

	// Inbound leg swaps the endpoints
	assert.Equal(t, "LAX", q.Legs[1].From)
	assert.Equal(t, "DEN", q.Legs[1].To)
	assert.Equal(t, date("2026-03-05"), q.Legs[1].Date)
}

func TestNewQuery_AdultsDefault(t *testing.T) {
	assert.Equal(t, 1, NewOneWayQuery("DEN", "LAX", date("2026-03-01"), SeatEconomy, 0).Adults)
	assert.Equal(t, 1, NewRoundTripQuery("DEN", "LAX", date("2026-03-01"), date("2026-03-02"), SeatEconomy, -3).Adults)
}

func TestOffer_Stops(t *testing.T) {
	assert.Equal(t, 0, Offer{Segments: []Segment{{}}}.Stops())
	assert.Equal(t, 1, Offer{Segments: []Segment{{}, {}}}.Stops())
	assert.Equal(t, 0, Offer{}.Stops())
}
