package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tkaria/flightsweep/flights"
)

// --- Structs for the google_flights engine response (simplified) ---

type searchResponse struct {
	Error        string       `json:"error"`
	BestFlights  []offerBlock `json:"best_flights"`
	OtherFlights []offerBlock `json:"other_flights"`
}

type offerBlock struct {
	Flights       []segmentBlock `json:"flights"`
	TotalDuration int            `json:"total_duration"`
	Price         *float64       `json:"price"`
	Type          string         `json:"type"`
}

type segmentBlock struct {
	DepartureAirport airportBlock `json:"departure_airport"`
	ArrivalAirport   airportBlock `json:"arrival_airport"`
	Duration         int          `json:"duration"`
	Airplane         string       `json:"airplane"`
	Airline          string       `json:"airline"`
	FlightNumber     string       `json:"flight_number"`
	TravelClass      string       `json:"travel_class"`
}

type airportBlock struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"` // "2006-01-02 15:04"
}

const segmentTimeLayout = "2006-01-02 15:04"

// trip type values understood by the engine
const (
	tripParamRoundTrip = "1"
	tripParamOneWay    = "2"
)

func seatParam(seat flights.Seat) string {
	switch seat {
	case flights.SeatPremiumEconomy:
		return "2"
	case flights.SeatBusiness:
		return "3"
	case flights.SeatFirst:
		return "4"
	default:
		return "1"
	}
}

// Search issues one google_flights query and converts the response into
// domain offers. All failures come back as *flights.ProviderError.
func (c *Client) Search(ctx context.Context, q flights.Query) ([]flights.Offer, error) {
	if len(q.Legs) == 0 || len(q.Legs) > 2 {
		return nil, &flights.ProviderError{
			Kind: "query",
			Op:   "search",
			Err:  fmt.Errorf("expected 1 or 2 legs, got %d", len(q.Legs)),
		}
	}

	out := q.Legs[0]
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", out.From)
	params.Set("arrival_id", out.To)
	params.Set("outbound_date", out.Date.Format(flights.DateLayout))
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("travel_class", seatParam(q.Seat))
	params.Set("currency", c.Currency)
	params.Set("hl", "en")

	if len(q.Legs) == 2 {
		params.Set("type", tripParamRoundTrip)
		params.Set("return_date", q.Legs[1].Date.Format(flights.DateLayout))
	} else {
		params.Set("type", tripParamOneWay)
	}

	resp, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &flights.ProviderError{
			Kind: "http_status",
			Op:   "search",
			Err:  fmt.Errorf("unexpected status: %s", resp.Status),
		}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &flights.ProviderError{Kind: "decode", Op: "search", Err: err}
	}

	if payload.Error != "" {
		return nil, &flights.ProviderError{
			Kind: "api_error",
			Op:   "search",
			Err:  fmt.Errorf("%s", payload.Error),
		}
	}

	offers := make([]flights.Offer, 0, len(payload.BestFlights)+len(payload.OtherFlights))
	for _, block := range payload.BestFlights {
		offers = append(offers, c.toOffer(block))
	}
	for _, block := range payload.OtherFlights {
		offers = append(offers, c.toOffer(block))
	}
	return offers, nil
}

// toOffer converts one raw itinerary block into the domain model. Missing
// fields stay at their unknown values; they are never guessed.
func (c *Client) toOffer(block offerBlock) flights.Offer {
	offer := flights.Offer{
		Price:    block.Price,
		Currency: c.Currency,
	}

	seen := make(map[string]bool)
	for _, seg := range block.Flights {
		if seg.Airline != "" && !seen[seg.Airline] {
			offer.Carriers = append(offer.Carriers, seg.Airline)
			seen[seg.Airline] = true
		}
		if offer.FareClass == "" {
			offer.FareClass = seg.TravelClass
		}

		offer.Segments = append(offer.Segments, flights.Segment{
			From: flights.Airport{
				Code: seg.DepartureAirport.ID,
				Name: seg.DepartureAirport.Name,
			},
			To: flights.Airport{
				Code: seg.ArrivalAirport.ID,
				Name: seg.ArrivalAirport.Name,
			},
			Departure:       parseSegmentTime(seg.DepartureAirport.Time),
			Arrival:         parseSegmentTime(seg.ArrivalAirport.Time),
			DurationMinutes: seg.Duration,
			Aircraft:        seg.Airplane,
		})
	}

	if offer.FareClass == "" {
		offer.FareClass = block.Type
	}
	return offer
}

func parseSegmentTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(segmentTimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
