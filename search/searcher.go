// Package search runs flight queries against a provider: single searches
// with the cheapest-only reduction, and the date-range round-trip sweep.
package search

import (
	"context"

	"github.com/tkaria/flightsweep/flights"
	"github.com/tkaria/flightsweep/ratelimit"
)

// Searcher executes one provider query per call. Retries, if any, belong to
// the provider implementation.
type Searcher struct {
	Provider flights.Provider
	Limiter  *ratelimit.Limiter
}

func NewSearcher(p flights.Provider, l *ratelimit.Limiter) *Searcher {
	return &Searcher{Provider: p, Limiter: l}
}

// Search issues exactly one provider call. The provider's result is
// normalized so an absent result and an empty result look the same to
// callers, and cheapestOnly reduces the set to its cheapest priced offer.
func (s *Searcher) Search(ctx context.Context, q flights.Query, cheapestOnly bool) ([]flights.Offer, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, err
	}
	offers, err := s.Provider.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if offers == nil {
		offers = []flights.Offer{}
	}
	if cheapestOnly {
		offers = CheapestOnly(offers)
	}
	return offers, nil
}

// CheapestOnly reduces offers to the single cheapest one with a known price.
// Ties keep the first-encountered offer. When no offer carries a price the
// input is returned unchanged rather than dropping everything.
func CheapestOnly(offers []flights.Offer) []flights.Offer {
	var best *flights.Offer
	for i := range offers {
		if !offers[i].Priced() {
			continue
		}
		if best == nil || *offers[i].Price < *best.Price {
			best = &offers[i]
		}
	}
	if best == nil {
		return offers
	}
	return []flights.Offer{*best}
}
