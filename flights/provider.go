package flights

import "context"

// Provider is the external flight-data source. Implementations issue one
// remote query per call and convert the raw records into Offers. A nil or
// empty slice with a nil error means "no flights found"; failures are
// reported as *ProviderError.
type Provider interface {
	Search(ctx context.Context, q Query) ([]Offer, error)
}
