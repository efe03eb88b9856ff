package search

import (
	"time"

	"github.com/tkaria/flightsweep/flights"
)

// RangeParams holds one sweep request. MinStay and MaxStay are nil when the
// caller did not bound the stay length; SeatLabel is the caller's raw cabin
// input, echoed into the report, while Seat is its canonical form used for
// queries.
type RangeParams struct {
	Origin       string
	Destination  string
	Start        time.Time
	End          time.Time
	MinStay      *int
	MaxStay      *int
	Adults       int
	Seat         flights.Seat
	SeatLabel    string
	CheapestOnly bool
}

// PairResult holds the offers found for one date pair. Pairs that came back
// empty are never stored; they only count toward TotalPairs.
type PairResult struct {
	Pair   flights.DatePair
	Offers []flights.Offer
}

// ErrorSummary is one deduplicated per-pair failure.
type ErrorSummary struct {
	PairLabel string
	Kind      string
}

// RangeReport is the aggregate outcome of one sweep. It is built
// incrementally while the sweep runs and rendered once afterwards; nothing
// outlives the invocation.
type RangeReport struct {
	Params     RangeParams
	TotalPairs int
	Results    []PairResult
	Errors     []ErrorSummary
}

// addError appends a summary unless an identical (label, kind) entry exists.
// Keying on the struct rather than a rendered string keeps dedup independent
// of formatting.
func (r *RangeReport) addError(label, kind string) {
	for _, e := range r.Errors {
		if e.PairLabel == label && e.Kind == kind {
			return
		}
	}
	r.Errors = append(r.Errors, ErrorSummary{PairLabel: label, Kind: kind})
}
