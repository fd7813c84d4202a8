// Package cmd implements the guardian CLI application.
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/legacyguard"
	"github.com/etnz/legacyguard/advisor"
	"github.com/etnz/legacyguard/config"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// Commands lists the guardian subcommands.
// A main package calls Register() on each and Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&serveCmd{},
	&playCmd{},
	&topicCmd{},
}

// newGame loads market data and wires the coach according to the
// configuration. A missing GEMINI_API_KEY disables the external coach; the
// game still runs, advice falls back locally.
func newGame(ctx context.Context, cfg *config.Config) (*legacyguard.Game, error) {
	market, err := legacyguard.DecodeMarketData(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("cannot load market data: %w", err)
	}

	var coach advisor.Coach
	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Printf("coach-disabled reason=%q", "GEMINI_API_KEY is not set")
	} else {
		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("cannot initialize Gemini client: %w", err)
		}
		coach = advisor.NewGemini(client, cfg.Coach.Model, cfg.CoachTimeout(), cfg.Coach.PerMinute)
	}

	return legacyguard.NewGame(market, coach), nil
}

// printMarkdown renders markdown for the terminal. When rendering fails the
// raw markdown is still readable, so print it as-is.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
