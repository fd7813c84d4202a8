package legacyguard

import (
	"fmt"
	"time"

	"github.com/etnz/legacyguard/date"
)

// testMarket builds an in-code market: 'days' rows starting 2024-01-02 with
// deterministic prices, three assets over three sectors, and one mission
// active on days 1 and 10.
//
//	TECH_A: 100 + day
//	FIN_A:  80 (flat)
//	ENGY_A: 50 + day/2
func testMarket(days int) *MarketData {
	m := NewMarketData()
	m.AddAsset(Asset{Ticker: "TECH_A", Name: "Nova Semiconductors", Sector: "Technology"})
	m.AddAsset(Asset{Ticker: "FIN_A", Name: "Harbor Trust Bank", Sector: "Finance"})
	m.AddAsset(Asset{Ticker: "ENGY_A", Name: "Meridian Energy", Sector: "Energy"})

	start := date.New(2024, time.January, 2)
	for day := 0; day < days; day++ {
		m.AppendRow(start.Add(day), map[string]Money{
			"TECH_A": M(100 + day),
			"FIN_A":  M(80),
			"ENGY_A": M(50).Add(M(day).DivInt(2)),
		})
	}
	m.AddMission("Rate cut rumor", "Banks often react to interest rates", []int{1, 10})
	return m
}

// sessionAt builds a session already on the given level.
func sessionAt(level int) *Session {
	s := NewSession("test")
	s.Level = level
	if level >= LevelStock {
		s.Cash = s.Principal
		s.Principal = M(0)
	}
	return s
}

// mustEqualMoney is a test helper message formatter.
func moneyDiff(name string, got, want Money) string {
	return fmt.Sprintf("%s = %s, want %s", name, got.Fixed(), want.Fixed())
}
