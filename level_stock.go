package legacyguard

import (
	"fmt"

	"github.com/etnz/legacyguard/date"
)

// StockTicker is the only tradable instrument on level 2.
const StockTicker = "TECH_A"

// stockGoal is the level-2 target on total value (cash + position).
var stockGoal = M(10800)

// StockQuote is the tradable stock as shown to the player.
type StockQuote struct {
	Ticker  string `json:"ticker"`
	Name    string `json:"name"`
	Price   Money  `json:"price"`
	Holding int    `json:"holding"`
}

// PricePoint is one day of price history, for charting.
type PricePoint struct {
	Date  date.Date `json:"date"`
	Price Money     `json:"price"`
}

// StockState is the level-2 snapshot.
type StockState struct {
	CurrentLevel int          `json:"currentLevel"`
	Cash         Money        `json:"cash"`
	Stock        StockQuote   `json:"stock"`
	TotalValue   Money        `json:"totalValue"`
	Goal         Money        `json:"goal"`
	IsGoalMet    bool         `json:"isGoalMet"`
	PriceHistory []PricePoint `json:"priceHistory"`
	Day          int          `json:"day"`
	Date         date.Date    `json:"date"`
}

// stockEngine implements level 2: trading a single stock against the price
// table. Distinct from level 3, every successful trade also advances the
// day, so the player cannot buy and sell at the same price.
type stockEngine struct{}

func (stockEngine) state(s *Session, m *MarketData) any {
	asset, _ := m.Get(StockTicker)
	price, _ := m.Price(StockTicker, s.Day)
	holding := s.Holding(StockTicker)

	history := make([]PricePoint, 0, s.Day+1)
	for i := 0; i <= s.Day; i++ {
		p, _ := m.Price(StockTicker, i)
		history = append(history, PricePoint{Date: m.Date(i), Price: p})
	}

	total := s.Cash.Add(price.Times(holding))
	return StockState{
		CurrentLevel: s.Level,
		Cash:         s.Cash,
		Stock:        StockQuote{Ticker: StockTicker, Name: asset.Name, Price: price, Holding: holding},
		TotalValue:   total,
		Goal:         stockGoal,
		IsGoalMet:    total.GreaterThanOrEqual(stockGoal),
		PriceHistory: history,
		Day:          s.Day,
		Date:         m.Date(s.Day),
	}
}

func (stockEngine) handle(s *Session, m *MarketData, a Action) (string, error) {
	if a.Name == "next_day" {
		advanceDay(s, m)
		return "Proceeded to the next day.", nil
	}
	if a.Name != "buy" && a.Name != "sell" {
		return "", ErrUnknownAction
	}

	quantity, err := a.quantity(0)
	if err != nil {
		return "", err
	}
	price, ok := m.Price(StockTicker, s.Day)
	if !ok {
		return "", fmt.Errorf("no price for %q on day %d", StockTicker, s.Day)
	}

	switch a.Name {
	case "buy":
		cost := price.Times(quantity)
		if s.Cash.LessThan(cost) {
			return "", ErrInsufficientCash
		}
		s.Cash = s.Cash.Sub(cost)
		s.Holdings[StockTicker] += quantity
	case "sell":
		if s.Holding(StockTicker) < quantity {
			return "", ErrInsufficientHoldings
		}
		s.Holdings[StockTicker] -= quantity
		s.Cash = s.Cash.Add(price.Times(quantity))
	}

	// Trading costs a day on this level.
	advanceDay(s, m)
	return "Your operation was successful!", nil
}
