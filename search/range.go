package search

import (
	"context"

	"github.com/tkaria/flightsweep/flights"
	"github.com/tkaria/flightsweep/log"
)

// RunRange sweeps every valid date pair in the window with one sequential
// provider call per pair. A pair's failure is folded into the report's
// deduplicated error summaries and never aborts the sweep; only range
// validation and context cancellation are fatal.
func RunRange(ctx context.Context, s *Searcher, params RangeParams) (*RangeReport, error) {
	pairs, err := flights.ExpandDatePairs(params.Start, params.End, params.MinStay, params.MaxStay)
	if err != nil {
		return nil, err
	}

	report := &RangeReport{Params: params, TotalPairs: len(pairs)}
	log.Infof(ctx, "Checking %d date combinations for %s <-> %s",
		len(pairs), params.Origin, params.Destination)

	for i, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if (i+1)%10 == 0 {
			log.Debugf(ctx, "Range progress: %d/%d", i+1, len(pairs))
		}

		q := flights.NewRoundTripQuery(params.Origin, params.Destination,
			pair.Depart, pair.Return, params.Seat, params.Adults)

		offers, err := s.Search(ctx, q, params.CheapestOnly)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warnf(ctx, "Pair %s failed: %v", pair.Label(), err)
			report.addError(pair.Label(), flights.ErrorKind(err))
			continue
		}
		if len(offers) == 0 {
			// Empty-but-successful pairs stay out of the report body;
			// they only count toward TotalPairs.
			continue
		}
		report.Results = append(report.Results, PairResult{Pair: pair, Offers: offers})
	}

	log.Infof(ctx, "Range search complete: %d pairs checked, %d with offers, %d distinct errors",
		report.TotalPairs, len(report.Results), len(report.Errors))
	return report, nil
}
