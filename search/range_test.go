package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkaria/flightsweep/flights"
)

func rangeParams(start, end string) RangeParams {
	return RangeParams{
		Origin:      "DEN",
		Destination: "LAX",
		Start:       testDate(start),
		End:         testDate(end),
		Adults:      1,
		Seat:        flights.SeatEconomy,
		SeatLabel:   "economy",
	}
}

func TestRunRange_StartAfterEnd(t *testing.T) {
	calls := 0
	s := NewSearcher(providerFunc(func(ctx context.Context, q flights.Query) ([]flights.Offer, error) {
		calls++
		return nil, nil
	}), nil)

	_, err := RunRange(context.Background(), s, rangeParams("2026-03-05", "2026-03-01"))
	assert.Error(t, err)

	var rangeErr *flights.InvalidRangeError
	assert.True(t, errors.As(err, &rangeErr))
	assert.Zero(t, calls, "no provider call before validation")
}

func TestRunRange_AllPairsFailSameKind(t *testing.T) {
	s := NewSearcher(providerFunc(func(ctx context.Context, q flights.Query) ([]flights.Offer, error) {
		return nil, &flights.ProviderError{Kind: "http_status", Op: "search", Err: errors.New("boom")}
	}), nil)

	report, err := RunRange(context.Background(), s, rangeParams("2026-03-01", "2026-03-03"))
	assert.NoError(t, err, "per-pair failures never abort the sweep")
	assert.Equal(t, 6, report.TotalPairs)
	assert.Empty(t, report.Results)

	// Six identical failures collapse to six distinct pair labels, one per
	// pair; the same pair failing twice would not duplicate.
	assert.Len(t, report.Errors, 6)
	seen := make(map[ErrorSummary]bool)
	for _, e := range report.Errors {
		assert.Equal(t, "http_status", e.Kind)
		assert.False(t, seen[e], "duplicate summary %v", e)
		seen[e] = true
	}
}

func TestRunRange_SinglePairFailure(t *testing.T) {
	s := NewSearcher(providerFunc(func(ctx context.Context, q flights.Query) ([]flights.Offer, error) {
		return nil, &flights.ProviderError{Kind: "api_error", Op: "search", Err: errors.New("quota")}
	}), nil)

	report, err := RunRange(context.Background(), s, rangeParams("2026-03-01", "2026-03-01"))
	assert.NoError(t, err)
	assert.Equal(t, 1, report.TotalPairs)
	assert.Empty(t, report.Results)
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, ErrorSummary{PairLabel: "2026-03-01 -> 2026-03-01", Kind: "api_error"}, report.Errors[0])
}

func TestRangeReport_ErrorDedup(t *testing.T) {
	r := &RangeReport{}
	r.addError("2026-03-01 -> 2026-03-02", "http_status")
	r.addError("2026-03-01 -> 2026-03-02", "http_status")
	r.addError("2026-03-01 -> 2026-03-02", "decode")
	r.addError("2026-03-01 -> 2026-03-03", "http_status")

	assert.Len(t, r.Errors, 3)
}

func TestRunRange_EmptyPairsInvisibleButCounted(t *testing.T) {
	// Offers only when departing 2026-03-02
	s := NewSearcher(providerFunc(func(ctx context.Context, q flights.Query) ([]flights.Offer, error) {
		if q.Legs[0].Date.Equal(testDate("2026-03-02")) {
			return []flights.Offer{offerWithPrice(price(200), "United")}, nil
		}
		return []flights.Offer{}, nil
	}), nil)

	report, err := RunRange(context.Background(), s, rangeParams("2026-03-01", "2026-03-03"))
	assert.NoError(t, err)
	assert.Equal(t, 6, report.TotalPairs)
	assert.Empty(t, report.Errors)

	// Only the (03-02, 03-02) and (03-02, 03-03) pairs produced offers
	assert.Len(t, report.Results, 2)
	for _, res := range report.Results {
		assert.Equal(t, testDate("2026-03-02"), res.Pair.Depart)
		assert.NotEmpty(t, res.Offers)
	}
}

func TestRunRange_PreservesExpanderOrder(t *testing.T) {
	s := NewSearcher(providerFunc(func(ctx context.Context, q flights.Query) ([]flights.Offer, error) {
		return []flights.Offer{offerWithPrice(price(100), "United")}, nil
	}), nil)

	report, err := RunRange(context.Background(), s, rangeParams("2026-03-01", "2026-03-03"))
	assert.NoError(t, err)
	assert.Len(t, report.Results, 6)

	pairs, _ := flights.ExpandDatePairs(testDate("2026-03-01"), testDate("2026-03-03"), nil, nil)
	for i, res := range report.Results {
		assert.Equal(t, pairs[i], res.Pair)
	}
}

func TestRunRange_StayBoundsForwarded(t *testing.T) {
	var queried []flights.DatePair
	s := NewSearcher(providerFunc(func(ctx context.Context, q flights.Query) ([]flights.Offer, error) {
		queried = append(queried, flights.DatePair{Depart: q.Legs[0].Date, Return: q.Legs[1].Date})
		return nil, nil
	}), nil)

	params := rangeParams("2026-03-01", "2026-03-05")
	min, max := 2, 3
	params.MinStay = &min
	params.MaxStay = &max

	report, err := RunRange(context.Background(), s, params)
	assert.NoError(t, err)
	assert.Equal(t, len(queried), report.TotalPairs)
	for _, p := range queried {
		assert.GreaterOrEqual(t, p.Stay(), 2)
		assert.LessOrEqual(t, p.Stay(), 3)
	}
}

func TestRunRange_RoundTripQueries(t *testing.T) {
	s := NewSearcher(providerFunc(func(ctx context.Context, q flights.Query) ([]flights.Offer, error) {
		assert.Equal(t, flights.TripRoundTrip, q.Trip)
		assert.Len(t, q.Legs, 2)
		assert.Equal(t, "DEN", q.Legs[0].From)
		assert.Equal(t, "LAX", q.Legs[0].To)
		assert.Equal(t, "LAX", q.Legs[1].From)
		assert.Equal(t, "DEN", q.Legs[1].To)
		return nil, nil
	}), nil)

	_, err := RunRange(context.Background(), s, rangeParams("2026-03-01", "2026-03-02"))
	assert.NoError(t, err)
}

func TestRunRange_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	s := NewSearcher(providerFunc(func(ctx context.Context, q flights.Query) ([]flights.Offer, error) {
		calls++
		if calls == 2 {
			cancel()
		}
		return nil, nil
	}), nil)

	_, err := RunRange(ctx, s, rangeParams("2026-03-01", "2026-03-05"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, calls, 15, "sweep stopped early")
}

func TestRunRange_ZeroPairs(t *testing.T) {
	calls := 0
	s := NewSearcher(providerFunc(func(ctx context.Context, q flights.Query) ([]flights.Offer, error) {
		calls++
		return nil, nil
	}), nil)

	params := rangeParams("2026-03-01", "2026-03-03")
	min := 10
	params.MinStay = &min

	report, err := RunRange(context.Background(), s, params)
	assert.NoError(t, err)
	assert.Zero(t, report.TotalPairs)
	assert.Zero(t, calls)
}
