// Package advisor produces coaching text from a portfolio report, either
// through local heuristic rules or by delegating to the Gemini API.
package advisor

import (
	"context"
	"fmt"
	"strings"
)

// Apology is what the player reads when the external coach fails. Coach
// failures are fully absorbed: the caller never sees an error.
const Apology = "Sorry, my brain seems to have short-circuited. I can't answer right now. Please try again later."

// Coach answers free-form player questions about a portfolio report.
type Coach interface {
	Ask(ctx context.Context, report Report, question string) (string, error)
}

// Holding is one position of the report.
type Holding struct {
	Ticker   string
	Quantity int
	Value    float64
}

// PriceLine is one quoted price of the report.
type PriceLine struct {
	Ticker string
	Price  float64
}

// Report is a flat, self-contained view of a player's portfolio on one day.
// Values are plain floats: the advisor only reasons about ratios, exact
// money arithmetic stays in the game core.
type Report struct {
	Day          int    // 1-indexed display day
	Date         string
	Cash         float64
	Invested     float64
	Total        float64
	Start        float64 // the session's starting value
	SectorValues map[string]float64
	Holdings     []Holding
	Prices       []PriceLine
	Missions     []string
}

// Heuristic thresholds.
const (
	highCashRatio       = 0.5 // more cash than this share of total triggers the entry-timing tip
	sectorConcentration = 0.6 // one sector above this share of invested value triggers the diversify tip
)

// Tips evaluates the local coaching rules. It always returns at least one
// tip and runs without any external call.
func (r Report) Tips() []string {
	if r.Total <= r.Start && r.Invested < 1 {
		return []string{"Welcome to the portfolio level! You can start by buying some assets, or ask me any questions about investing."}
	}

	total := r.Total
	if total == 0 {
		total = 1
	}

	var tips []string
	if r.Cash/total > highCashRatio {
		tips = append(tips, "Your cash ratio is quite high. Consider buying in batches to try and secure profits.")
	}
	if r.Invested > 0 {
		var top float64
		for _, v := range r.SectorValues {
			if v > top {
				top = v
			}
		}
		if top/r.Invested > sectorConcentration {
			tips = append(tips, "Your portfolio is too concentrated in a single sector. It's advisable to diversify your investments.")
		}
	}
	if len(tips) == 0 {
		tips = append(tips, "Your strategy looks solid. Feel free to ask me for specific advice about today's market or your holdings.")
	}
	return tips
}

// Context renders the report as the context block handed to the external
// coach, heuristic tips included.
func (r Report) Context() string {
	holdings := make([]string, 0, len(r.Holdings))
	for _, h := range r.Holdings {
		holdings = append(holdings, fmt.Sprintf("%s: %d shares", h.Ticker, h.Quantity))
	}
	prices := make([]string, 0, len(r.Prices))
	for _, p := range r.Prices {
		prices = append(prices, fmt.Sprintf("%s: $%.2f", p.Ticker, p.Price))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Game Status ---\n")
	fmt.Fprintf(&b, "Today is Day %d (%s).\n", r.Day, r.Date)
	fmt.Fprintf(&b, "Player Cash: $%.2f\n", r.Cash)
	fmt.Fprintf(&b, "Player Holdings: %s\n", orNone(strings.Join(holdings, ", ")))
	fmt.Fprintf(&b, "Today's Market Prices: %s\n", strings.Join(prices, ", "))
	fmt.Fprintf(&b, "Today's Special Events: %s\n", orNone(strings.Join(r.Missions, "; ")))
	fmt.Fprintf(&b, "Coach Notes: %s\n", strings.Join(r.Tips(), " "))
	fmt.Fprintf(&b, "--- Player's Question ---")
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
