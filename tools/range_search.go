package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tkaria/flightsweep/flights"
	"github.com/tkaria/flightsweep/format"
	"github.com/tkaria/flightsweep/log"
	"github.com/tkaria/flightsweep/search"
)

// RangeTool serves find_all_flights_in_range: the exhaustive round-trip
// sweep over a date window.
type RangeTool struct {
	Searcher *search.Searcher
}

func (t *RangeTool) Definition() mcp.Tool {
	return mcp.NewTool("find_all_flights_in_range",
		mcp.WithDescription("Finds available round-trip flights within a specified date range. "+
			"Prices shown are total round-trip fares per person. "+
			"Can optionally return only the cheapest flight found for each date pair."),
		mcp.WithString("origin", mcp.Required(),
			mcp.Description(`Origin airport code (e.g. "DEN").`)),
		mcp.WithString("destination", mcp.Required(),
			mcp.Description(`Destination airport code (e.g. "LAX").`)),
		mcp.WithString("start_date", mcp.Required(),
			mcp.Description("Start date of the search range (YYYY-MM-DD format).")),
		mcp.WithString("end_date", mcp.Required(),
			mcp.Description("End date of the search range (YYYY-MM-DD format).")),
		mcp.WithNumber("min_stay_days",
			mcp.Description("Minimum number of days for the stay (optional).")),
		mcp.WithNumber("max_stay_days",
			mcp.Description("Maximum number of days for the stay (optional).")),
		mcp.WithNumber("adults", mcp.DefaultNumber(1),
			mcp.Description("Number of adult passengers.")),
		mcp.WithString("seat_type", mcp.DefaultString("economy"),
			mcp.Description(`Fare class (e.g. "economy", "business").`)),
		mcp.WithBoolean("return_cheapest_only", mcp.DefaultBool(false),
			mcp.Description("If true, returns only the cheapest flight for each date pair.")),
	)
}

func (t *RangeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	origin, err := req.RequireString("origin")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	destination, err := req.RequireString("destination")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	startStr, err := req.RequireString("start_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	endStr, err := req.RequireString("end_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	adults := req.GetInt("adults", 1)
	seatLabel := req.GetString("seat_type", "economy")
	cheapestOnly := req.GetBool("return_cheapest_only", false)
	minStay := optionalInt(req, "min_stay_days")
	maxStay := optionalInt(req, "max_stay_days")

	start, err := flights.ParseDate(startStr)
	if err != nil {
		return mcp.NewToolResultError("Error: Invalid date format. Please use YYYY-MM-DD."), nil
	}
	end, err := flights.ParseDate(endStr)
	if err != nil {
		return mcp.NewToolResultError("Error: Invalid date format. Please use YYYY-MM-DD."), nil
	}

	mode := "all flights"
	if cheapestOnly {
		mode = "cheapest per pair"
	}
	log.Infof(ctx, "Finding %s %s<->%s between %s and %s", mode, origin, destination, startStr, endStr)

	report, err := search.RunRange(ctx, t.Searcher, search.RangeParams{
		Origin:       origin,
		Destination:  destination,
		Start:        start,
		End:          end,
		MinStay:      minStay,
		MaxStay:      maxStay,
		Adults:       adults,
		Seat:         flights.NormalizeSeat(seatLabel),
		SeatLabel:    seatLabel,
		CheapestOnly: cheapestOnly,
	})
	if err != nil {
		var rangeErr *flights.InvalidRangeError
		if errors.As(err, &rangeErr) {
			return mcp.NewToolResultError("Error: Start date cannot be after end date."), nil
		}
		// Cancellation mid-sweep: the partial report is discarded.
		log.Errorf(ctx, "find_all_flights_in_range failed: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error searching flights: %v", err)), nil
	}

	return mcp.NewToolResultText(format.RangeReport(report)), nil
}
