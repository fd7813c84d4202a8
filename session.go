package legacyguard

// Game levels.
const (
	LevelDeposit   = 1
	LevelStock     = 2
	LevelPortfolio = 3
)

// StartingPrincipal is the amount every fresh session begins with.
var StartingPrincipal = M(10000)

// Session is the per-player mutable game state.
//
// A session is only ever mutated through the Game coordinator, which holds
// the session's lock for the duration of one action, so the fields need no
// synchronization of their own.
type Session struct {
	ID    string
	Level int // current level, 1..3, non-decreasing except on reset
	Day   int // index into the market data price table

	// Level 1 state. Principal is retired into Cash on the 1->2 transition.
	Principal Money
	Interest  Money // cumulative interest earned

	// Level 2 and 3 state.
	Cash     Money
	Holdings map[string]int // ticker -> quantity, absent means zero
}

// NewSession returns a fresh level-1 session.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Level:     LevelDeposit,
		Day:       0,
		Principal: StartingPrincipal,
		Interest:  M(0),
		Cash:      M(0),
		Holdings:  make(map[string]int),
	}
}

// Holding returns the held quantity for a ticker, zero when absent.
func (s *Session) Holding(ticker string) int { return s.Holdings[ticker] }
