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

// OneWayTool serves get_flights_on_date: one-way flights for a single date.
type OneWayTool struct {
	Searcher *search.Searcher
}

func (t *OneWayTool) Definition() mcp.Tool {
	return mcp.NewTool("get_flights_on_date",
		mcp.WithDescription("Fetches available one-way flights for a specific date between two airports. "+
			"Prices shown are one-way fares per person. "+
			"Can optionally return only the cheapest flight found."),
		mcp.WithString("origin", mcp.Required(),
			mcp.Description(`Origin airport code (e.g. "DEN").`)),
		mcp.WithString("destination", mcp.Required(),
			mcp.Description(`Destination airport code (e.g. "LAX").`)),
		mcp.WithString("date", mcp.Required(),
			mcp.Description("The specific date to search (YYYY-MM-DD format).")),
		mcp.WithNumber("adults", mcp.DefaultNumber(1),
			mcp.Description("Number of adult passengers.")),
		mcp.WithString("seat_type", mcp.DefaultString("economy"),
			mcp.Description(`Fare class (e.g. "economy", "business").`)),
		mcp.WithBoolean("return_cheapest_only", mcp.DefaultBool(false),
			mcp.Description("If true, returns only the cheapest flight.")),
	)
}

func (t *OneWayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	origin, err := req.RequireString("origin")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	destination, err := req.RequireString("destination")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dateStr, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	adults := req.GetInt("adults", 1)
	seatLabel := req.GetString("seat_type", "economy")
	cheapestOnly := req.GetBool("return_cheapest_only", false)

	date, err := flights.ParseDate(dateStr)
	if err != nil {
		return mcp.NewToolResultError(
			fmt.Sprintf("Error: Invalid date format %q. Please use YYYY-MM-DD.", dateStr)), nil
	}

	log.Infof(ctx, "Getting flights %s->%s for %s", origin, destination, dateStr)

	q := flights.NewOneWayQuery(origin, destination, date, flights.NormalizeSeat(seatLabel), adults)
	offers, err := t.Searcher.Search(ctx, q, cheapestOnly)
	if err != nil {
		log.Errorf(ctx, "get_flights_on_date failed: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error searching flights: %v", err)), nil
	}

	return mcp.NewToolResultText(format.OneWayReport(origin, destination, dateStr, offers)), nil
}
