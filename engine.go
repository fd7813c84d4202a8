package legacyguard

// engine is the set of rules for one game level. Implementations must be
// stateless: all mutable state lives in the Session, all reference data in
// the MarketData.
//
// handle must validate every failure condition before touching the session,
// so that a failed action never leaves a partial mutation behind.
type engine interface {
	// state returns the level snapshot served to callers.
	state(s *Session, m *MarketData) any
	// handle applies one action and returns a player-facing message.
	handle(s *Session, m *MarketData, a Action) (string, error)
}

// engines maps a session level to its rules.
var engines = map[int]engine{
	LevelDeposit:   depositEngine{},
	LevelStock:     stockEngine{},
	LevelPortfolio: portfolioEngine{},
}

// advanceDay moves the session one day forward, stopping at the last
// available market row.
func advanceDay(s *Session, m *MarketData) {
	if s.Day < m.LastDay() {
		s.Day++
	}
}
