package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tkaria/flightsweep/flights"
	"github.com/tkaria/flightsweep/format"
	"github.com/tkaria/flightsweep/log"
	"github.com/tkaria/flightsweep/search"
)

// RoundTripTool serves get_round_trip_flights: round trips for a fixed
// departure and return date.
type RoundTripTool struct {
	Searcher *search.Searcher
}

func (t *RoundTripTool) Definition() mcp.Tool {
	return mcp.NewTool("get_round_trip_flights",
		mcp.WithDescription("Fetches available round-trip flights for specific departure and return dates. "+
			"Prices shown are total round-trip fares per person. "+
			"Can optionally return only the cheapest flight found."),
		mcp.WithString("origin", mcp.Required(),
			mcp.Description(`Origin airport code (e.g. "DEN").`)),
		mcp.WithString("destination", mcp.Required(),
			mcp.Description(`Destination airport code (e.g. "LAX").`)),
		mcp.WithString("departure_date", mcp.Required(),
			mcp.Description("The specific departure date (YYYY-MM-DD format).")),
		mcp.WithString("return_date", mcp.Required(),
			mcp.Description("The specific return date (YYYY-MM-DD format).")),
		mcp.WithNumber("adults", mcp.DefaultNumber(1),
			mcp.Description("Number of adult passengers.")),
		mcp.WithString("seat_type", mcp.DefaultString("economy"),
			mcp.Description(`Fare class (e.g. "economy", "business").`)),
		mcp.WithBoolean("return_cheapest_only", mcp.DefaultBool(false),
			mcp.Description("If true, returns only the cheapest flight.")),
	)
}

func (t *RoundTripTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	origin, err := req.RequireString("origin")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	destination, err := req.RequireString("destination")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	departStr, err := req.RequireString("departure_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	returnStr, err := req.RequireString("return_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	adults := req.GetInt("adults", 1)
	seatLabel := req.GetString("seat_type", "economy")
	cheapestOnly := req.GetBool("return_cheapest_only", false)

	depart, err := flights.ParseDate(departStr)
	if err != nil {
		return mcp.NewToolResultError("Error: Invalid date format. Please use YYYY-MM-DD."), nil
	}
	ret, err := flights.ParseDate(returnStr)
	if err != nil {
		return mcp.NewToolResultError("Error: Invalid date format. Please use YYYY-MM-DD."), nil
	}

	log.Infof(ctx, "Getting round trip %s<->%s for %s to %s", origin, destination, departStr, returnStr)

	q := flights.NewRoundTripQuery(origin, destination, depart, ret, flights.NormalizeSeat(seatLabel), adults)
	offers, err := t.Searcher.Search(ctx, q, cheapestOnly)
	if err != nil {
		log.Errorf(ctx, "get_round_trip_flights failed: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error searching flights: %v", err)), nil
	}

	return mcp.NewToolResultText(format.RoundTripReport(origin, destination, departStr, returnStr, offers)), nil
}
