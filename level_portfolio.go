package legacyguard

import (
	"fmt"

	"github.com/etnz/legacyguard/advisor"
	"github.com/etnz/legacyguard/date"
)

// AssetLine is one catalog asset with its current price and position.
type AssetLine struct {
	Ticker  string `json:"ticker"`
	Name    string `json:"name"`
	Sector  string `json:"sector"`
	Price   Money  `json:"price"`
	Holding int    `json:"holding"`
}

// ValuePoint is one sampled point of the portfolio value history.
type ValuePoint struct {
	Date  date.Date `json:"date"`
	Value Money     `json:"value"`
}

// PortfolioState is the level-3 snapshot.
type PortfolioState struct {
	CurrentLevel       int          `json:"currentLevel"`
	Day                int          `json:"day"` // 1-indexed for display
	Date               date.Date    `json:"date"`
	Cash               Money        `json:"cash"`
	TotalAssets        Money        `json:"totalAssets"`
	Assets             []AssetLine  `json:"assets"`
	Missions           []Mission    `json:"missions"`
	PortfolioHistory   []ValuePoint `json:"portfolioHistory"`
	AICoachInitialTips []string     `json:"aiCoachInitialTips"`
}

// portfolioEngine implements level 3: multi-asset trading over the whole
// catalog, with scripted missions and a coaching surface.
type portfolioEngine struct{}

func (portfolioEngine) state(s *Session, m *MarketData) any {
	assets := make([]AssetLine, 0, len(m.Assets()))
	for _, a := range m.Assets() {
		price, _ := m.Price(a.Ticker, s.Day)
		assets = append(assets, AssetLine{
			Ticker:  a.Ticker,
			Name:    a.Name,
			Sector:  a.Sector,
			Price:   price,
			Holding: s.Holding(a.Ticker),
		})
	}

	missions := m.MissionsOn(s.Day)
	if missions == nil {
		missions = []Mission{}
	}

	return PortfolioState{
		CurrentLevel:       s.Level,
		Day:                s.Day + 1,
		Date:               m.Date(s.Day),
		Cash:               s.Cash,
		TotalAssets:        portfolioValue(s.Cash, s.Holdings, s.Day, m),
		Assets:             assets,
		Missions:           missions,
		PortfolioHistory:   valueHistory(s, m),
		AICoachInitialTips: AdviceReport(s, m).Tips(),
	}
}

func (portfolioEngine) handle(s *Session, m *MarketData, a Action) (string, error) {
	if a.Name == "next_day" {
		advanceDay(s, m)
		return "Proceeded to the next day.", nil
	}
	if a.Name != "buy" && a.Name != "sell" {
		return "", ErrUnknownAction
	}

	// The portfolio level trades a single unit when no quantity is given.
	quantity, err := a.quantity(1)
	if err != nil {
		return "", err
	}
	ticker := a.String("ticker")
	price, ok := m.Price(ticker, s.Day)
	if !ok {
		return "", ErrInvalidTicker
	}

	switch a.Name {
	case "buy":
		cost := price.Times(quantity)
		if s.Cash.LessThan(cost) {
			return "", ErrInsufficientCash
		}
		s.Cash = s.Cash.Sub(cost)
		s.Holdings[ticker] += quantity
	case "sell":
		if s.Holding(ticker) < quantity {
			return "", ErrInsufficientHoldings
		}
		s.Holdings[ticker] -= quantity
		s.Cash = s.Cash.Add(price.Times(quantity))
	}

	// Unlike level 2, trading here does not consume a day.
	return fmt.Sprintf("Your %s order for %d x %s was filled.", a.Name, quantity, ticker), nil
}

// portfolioValue computes cash plus the market value of all holdings at the
// given day. It never mutates any state and is valid for any historical day
// index within the price table.
func portfolioValue(cash Money, holdings map[string]int, day int, m *MarketData) Money {
	total := cash
	for ticker, quantity := range holdings {
		if price, ok := m.Price(ticker, day); ok {
			total = total.Add(price.Times(quantity))
		}
	}
	return total
}

// valueHistory samples the portfolio value for charting: day indices
// 0, step, 2*step, ... with step = max(1, day/30), plus the current day when
// it does not fall on a step. This caps the chart near 30 points however
// long the game has run.
//
// Each sampled point is valued with the CURRENT holdings, not the holdings
// actually held on that past day. It is a what-if curve of today's book, not
// a replay of the player's trading.
func valueHistory(s *Session, m *MarketData) []ValuePoint {
	step := 1
	if s.Day > 0 {
		step = max(1, s.Day/30)
	}
	var history []ValuePoint
	for i := 0; i <= s.Day; i += step {
		history = append(history, ValuePoint{
			Date:  m.Date(i),
			Value: portfolioValue(s.Cash, s.Holdings, i, m),
		})
	}
	if s.Day > 0 && s.Day%step != 0 {
		history = append(history, ValuePoint{
			Date:  m.Date(s.Day),
			Value: portfolioValue(s.Cash, s.Holdings, s.Day, m),
		})
	}
	return history
}

// AdviceReport condenses the session into the flat report the advisor
// package reasons about.
func AdviceReport(s *Session, m *MarketData) advisor.Report {
	report := advisor.Report{
		Day:          s.Day + 1,
		Date:         m.Date(s.Day).String(),
		Cash:         s.Cash.AsFloat(),
		Start:        StartingPrincipal.AsFloat(),
		SectorValues: make(map[string]float64),
	}

	for _, a := range m.Assets() {
		price, _ := m.Price(a.Ticker, s.Day)
		report.Prices = append(report.Prices, advisor.PriceLine{Ticker: a.Ticker, Price: price.AsFloat()})

		quantity := s.Holding(a.Ticker)
		if quantity <= 0 {
			continue
		}
		value := price.Times(quantity).AsFloat()
		report.Invested += value
		report.SectorValues[a.Sector] += value
		report.Holdings = append(report.Holdings, advisor.Holding{
			Ticker:   a.Ticker,
			Quantity: quantity,
			Value:    value,
		})
	}
	report.Total = report.Cash + report.Invested

	for _, mission := range m.MissionsOn(s.Day) {
		report.Missions = append(report.Missions, fmt.Sprintf("%s(%s)", mission.Title, mission.Hint))
	}
	return report
}
