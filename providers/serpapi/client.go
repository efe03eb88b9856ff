// Package serpapi implements the flights.Provider interface on top of
// SerpAPI's Google Flights engine.
package serpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tkaria/flightsweep/flights"
)

const DefaultBaseURL = "https://serpapi.com"

// Client is the SerpAPI Google Flights client
type Client struct {
	APIKey     string
	BaseURL    string
	Currency   string
	HTTPClient *http.Client
}

// NewClient creates a new SerpAPI client
// Returns an error if the client cannot be initialized
func NewClient(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Currency: "USD",
		// Google Flights lookups routinely take tens of seconds upstream
		HTTPClient: &http.Client{Timeout: 90 * time.Second},
	}, nil
}

// doRequest performs one GET against the search endpoint
func (c *Client) doRequest(ctx context.Context, params url.Values) (*http.Response, error) {
	params.Set("api_key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, &flights.ProviderError{Kind: "request", Op: "search", Err: err}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &flights.ProviderError{Kind: "request", Op: "search", Err: err}
	}
	return resp, nil
}
