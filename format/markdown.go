// Package format renders search results as markdown text for tool callers.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tkaria/flightsweep/flights"
	"github.com/tkaria/flightsweep/search"
)

// Clock renders a segment time as H:MM, or "??:??" when unknown.
func Clock(t time.Time) string {
	if t.IsZero() {
		return "??:??"
	}
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}

// Date renders a date as YYYY-MM-DD, or "????-??-??" when unknown.
func Date(t time.Time) string {
	if t.IsZero() {
		return "????-??-??"
	}
	return t.Format(flights.DateLayout)
}

// Price renders a fare as $N, or "N/A" when the offer carries no price.
func Price(o flights.Offer) string {
	if !o.Priced() {
		return "N/A"
	}
	return "$" + strconv.FormatFloat(*o.Price, 'f', -1, 64)
}

func segmentLine(seg flights.Segment) string {
	from := seg.From.Code
	if from == "" {
		from = "?"
	}
	to := seg.To.Code
	if to == "" {
		to = "?"
	}
	return fmt.Sprintf("%s %s->%s %s", from, Clock(seg.Departure), to, Clock(seg.Arrival))
}

// OfferLine renders one offer as a single markdown line:
//
//	**$412** United, Lufthansa | DEN 8:15->FRA 14:05 / FRA 16:00->LAX 18:45 (1 stop)
func OfferLine(o flights.Offer) string {
	carriers := strings.Join(o.Carriers, ", ")
	if carriers == "" {
		carriers = o.FareClass
	}
	if carriers == "" {
		carriers = "Unknown"
	}

	routes := make([]string, 0, len(o.Segments))
	for _, seg := range o.Segments {
		routes = append(routes, segmentLine(seg))
	}

	stops := o.Stops()
	stopStr := "nonstop"
	if stops > 0 {
		stopStr = fmt.Sprintf("%d stop", stops)
	}

	durStr := ""
	if len(o.Segments) == 1 && o.Segments[0].DurationMinutes > 0 {
		durStr = fmt.Sprintf(", %dmin", o.Segments[0].DurationMinutes)
	}

	return fmt.Sprintf("**%s** %s | %s (%s%s)", Price(o), carriers, strings.Join(routes, " / "), stopStr, durStr)
}

// OneWayReport renders the result of a single-date search.
func OneWayReport(origin, destination, date string, offers []flights.Offer) string {
	if len(offers) == 0 {
		return fmt.Sprintf("No flights found for %s -> %s on %s.", origin, destination, date)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %d One-Way Flights: %s -> %s on %s", len(offers), origin, destination, date)
	for i, o := range offers {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, OfferLine(o))
	}
	return sb.String()
}

// RoundTripReport renders the result of a fixed departure/return search.
func RoundTripReport(origin, destination, depart, ret string, offers []flights.Offer) string {
	if len(offers) == 0 {
		return fmt.Sprintf("No round-trip flights found for %s <-> %s.", origin, destination)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %d Round-Trip Flights: %s <-> %s (prices are round-trip)", len(offers), origin, destination)
	fmt.Fprintf(&sb, "\nDepart: %s | Return: %s", depart, ret)
	for i, o := range offers {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, OfferLine(o))
	}
	return sb.String()
}

// RangeReport renders a full sweep: per-pair sections in sweep order, the
// searched-combinations footer, and the deduplicated error list when any
// pair failed. Pairs that returned no offers do not appear in the body.
func RangeReport(r *search.RangeReport) string {
	p := r.Params

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Round-Trip Flight Search: %s <-> %s (prices are round-trip)\n", p.Origin, p.Destination)
	fmt.Fprintf(&sb, "**Range:** %s to %s\n", Date(p.Start), Date(p.End))

	if r.TotalPairs == 0 {
		sb.WriteString("\nNo valid date combinations in the specified range.\n")
	}

	for _, res := range r.Results {
		fmt.Fprintf(&sb, "\n### %s -> %s (%d days)\n",
			Date(res.Pair.Depart), Date(res.Pair.Return), res.Pair.Stay())
		for _, o := range res.Offers {
			fmt.Fprintf(&sb, "- %s\n", OfferLine(o))
		}
	}

	seat := p.SeatLabel
	if seat == "" {
		seat = string(p.Seat)
	}
	fmt.Fprintf(&sb, "\n*Searched %d date combination(s), %d adult(s), %s*", r.TotalPairs, p.Adults, seat)

	if len(r.Errors) > 0 {
		fmt.Fprintf(&sb, "\n\n**Errors:** %d date pair(s) failed", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(&sb, "\n- %s: %s", e.PairLabel, e.Kind)
		}
	}

	return sb.String()
}
