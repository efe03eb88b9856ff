// flightsweep is an MCP stdio server exposing Google Flights search tools:
// one-way, round-trip, and an exhaustive date-range round-trip sweep.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/tkaria/flightsweep/config"
	"github.com/tkaria/flightsweep/log"
	"github.com/tkaria/flightsweep/providers/serpapi"
	"github.com/tkaria/flightsweep/ratelimit"
	"github.com/tkaria/flightsweep/search"
	"github.com/tkaria/flightsweep/tools"
)

const version = "0.2.0"

// hijackStdout hands back the real stdout and points os.Stdout at /dev/null.
// The MCP transport owns the real stdout; anything else in the process that
// prints to stdout would corrupt the stdio framing.
func hijackStdout() *os.File {
	real := os.Stdout
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return real
	}
	os.Stdout = devnull
	return real
}

func main() {
	// Initialize logging (stderr only)
	log.Init()

	// Claim stdout for the transport before anything can write to it
	realStdout := hijackStdout()

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(context.Background(), "Program terminated externally. Exiting...")
		cancel()
	}()

	// 0. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Server.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// 1. Provider client
	client, err := serpapi.NewClient(cfg.SerpAPI.APIKey, cfg.SerpAPI.BaseURL)
	if err != nil {
		log.Fatalf(ctx, "Failed to create provider client: %v", err)
	}
	client.Currency = cfg.SerpAPI.Currency

	// 2. Searcher with provider pacing
	searcher := search.NewSearcher(client, ratelimit.New(ratelimit.Config{
		RequestsPerSecond: cfg.Limits.RequestsPerSecond,
		BurstSize:         cfg.Limits.BurstSize,
	}))

	// 3. Tools
	registry := tools.NewRegistry()
	registry.Register(&tools.OneWayTool{Searcher: searcher})
	registry.Register(&tools.RoundTripTool{Searcher: searcher})
	registry.Register(&tools.RangeTool{Searcher: searcher})

	// 4. MCP server on stdio
	srv := server.NewMCPServer(cfg.Server.Name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	registry.Attach(srv)

	log.Infof(ctx, "Starting %s %s on stdio", cfg.Server.Name, version)
	stdio := server.NewStdioServer(srv)
	if err := stdio.Listen(ctx, os.Stdin, realStdout); err != nil && ctx.Err() == nil {
		log.Fatalf(context.Background(), "Server failed: %v", err)
	}
	log.Info(context.Background(), "Shutting down...")
}
