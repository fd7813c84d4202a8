package legacyguard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/etnz/legacyguard/date"
)

// Asset describes one tradable instrument of the game universe.
type Asset struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

// Mission is a scripted market event active on an explicit set of days.
type Mission struct {
	Title      string `json:"title"`
	Hint       string `json:"hint"`
	EffectDays []int  `json:"effect_days"`

	effectDays map[int]struct{}
}

// ActiveOn reports whether the mission is active on the given day index.
// Membership is exact: day 1 never matches day 10 or 12.
func (m Mission) ActiveOn(day int) bool {
	_, ok := m.effectDays[day]
	return ok
}

// MarketData holds the asset catalog, the day-indexed price table and the
// mission catalog. It is loaded once at startup and never mutated afterwards,
// so concurrent sessions can read it without synchronization.
type MarketData struct {
	assets   []Asset
	index    map[string]Asset
	dates    []date.Date
	prices   []map[string]Money // one row per day, ticker -> price
	missions []Mission
}

// NewMarketData returns a new empty market data collection.
func NewMarketData() *MarketData {
	return &MarketData{index: make(map[string]Asset)}
}

// AddAsset registers an asset in the catalog. Tickers are unique: adding the
// same ticker twice overwrites the previous record.
func (m *MarketData) AddAsset(a Asset) {
	if _, ok := m.index[a.Ticker]; !ok {
		m.assets = append(m.assets, a)
	} else {
		for i := range m.assets {
			if m.assets[i].Ticker == a.Ticker {
				m.assets[i] = a
			}
		}
	}
	m.index[a.Ticker] = a
}

// AppendRow appends one day of prices. The row index is the day index.
func (m *MarketData) AppendRow(on date.Date, prices map[string]Money) {
	m.dates = append(m.dates, on)
	m.prices = append(m.prices, prices)
}

// AddMission registers a scripted mission.
func (m *MarketData) AddMission(title, hint string, effectDays []int) {
	days := make(map[int]struct{}, len(effectDays))
	sorted := append([]int(nil), effectDays...)
	sort.Ints(sorted)
	for _, d := range sorted {
		days[d] = struct{}{}
	}
	m.missions = append(m.missions, Mission{
		Title:      title,
		Hint:       hint,
		EffectDays: sorted,
		effectDays: days,
	})
}

// Days returns the number of rows in the price table.
func (m *MarketData) Days() int { return len(m.dates) }

// LastDay returns the highest valid day index.
func (m *MarketData) LastDay() int { return len(m.dates) - 1 }

// Date returns the date label of a day row.
func (m *MarketData) Date(day int) date.Date {
	if day < 0 || day >= len(m.dates) {
		return date.Date{}
	}
	return m.dates[day]
}

// Price returns the price of a ticker on a given day.
// It reports false for an unknown ticker or an out-of-range day.
func (m *MarketData) Price(ticker string, day int) (Money, bool) {
	if day < 0 || day >= len(m.prices) {
		return Money{}, false
	}
	p, ok := m.prices[day][ticker]
	return p, ok
}

// Has reports whether the ticker is part of the asset catalog.
func (m *MarketData) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

// Get returns the catalog record for a ticker.
func (m *MarketData) Get(ticker string) (Asset, bool) {
	a, ok := m.index[ticker]
	return a, ok
}

// Assets returns the asset catalog in declaration order.
func (m *MarketData) Assets() []Asset { return m.assets }

// MissionsOn returns the missions active on the given day index.
func (m *MarketData) MissionsOn(day int) []Mission {
	var active []Mission
	for _, mission := range m.missions {
		if mission.ActiveOn(day) {
			active = append(active, mission)
		}
	}
	return active
}

// Validate checks that the loaded market data can actually run a game:
// a non-empty price table, and every cataloged ticker priced on every row.
func (m *MarketData) Validate() error {
	if len(m.dates) == 0 {
		return fmt.Errorf("price table is empty")
	}
	if len(m.assets) == 0 {
		return fmt.Errorf("asset catalog is empty")
	}
	for day, row := range m.prices {
		for _, a := range m.assets {
			if _, ok := row[a.Ticker]; !ok {
				return fmt.Errorf("no price for %q on day %d (%s)", a.Ticker, day, m.dates[day])
			}
		}
	}
	return nil
}

// parseEffectDays parses the effect_days cell of the mission catalog.
// Day indices are separated by ';', ',' or spaces: "3;7;12".
func parseEffectDays(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ',' || r == ' '
	})
	days := make([]int, 0, len(fields))
	for _, f := range fields {
		d, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid effect day %q: %w", f, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("negative effect day %d", d)
		}
		days = append(days, d)
	}
	return days, nil
}
