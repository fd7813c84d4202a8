package legacyguard

import (
	"context"
	"fmt"
	"log"

	"github.com/etnz/legacyguard/advisor"
)

// AdviceGateMessage is returned for advice requests below level 3.
// It is a normal answer, not an error.
const AdviceGateMessage = "The chat coach is only available at level 3. Keep playing!"

// Game is the coordinator: it owns the session store, dispatches queries and
// actions to the engine of the session's current level, and runs the level
// progression state machine.
type Game struct {
	store  *Store
	market *MarketData
	coach  advisor.Coach // may be nil: advice falls back to the apology
}

// NewGame returns a game over the given market data. 'coach' may be nil when
// no external text generator is configured.
func NewGame(market *MarketData, coach advisor.Coach) *Game {
	return &Game{store: NewStore(), market: market, coach: coach}
}

// Market exposes the read-only market data.
func (g *Game) Market() *MarketData { return g.market }

// Sessions returns the number of live sessions.
func (g *Game) Sessions() int { return g.store.Len() }

// State returns the level snapshot for a session, creating the session on
// first access. It never fails.
func (g *Game) State(sessionID string) any {
	var state any
	g.store.Do(sessionID, func(s *Session) {
		state = engines[s.Level].state(s, g.market)
	})
	return state
}

// Reset replaces the session with a fresh level-1 session and returns its
// snapshot.
func (g *Game) Reset(sessionID string) any {
	g.store.Reset(sessionID)
	log.Printf("session-reset id=%q", sessionID)
	return g.State(sessionID)
}

// Perform routes one action to the engine of the session's current level.
// On failure the session is left unchanged; engines validate before they
// mutate.
func (g *Game) Perform(sessionID string, a Action) Result {
	var result Result
	g.store.Do(sessionID, func(s *Session) {
		message, err := engines[s.Level].handle(s, g.market, a)
		if err != nil {
			result = failure(err)
			return
		}
		result = success(message)
	})
	log.Printf("action id=%q name=%q success=%v", sessionID, a.Name, result.Success)
	return result
}

// AdvanceLevel moves the session to the next level, migrating carried-over
// state:
//
//	1 -> 2: the day restarts at 0, the principal is retired into cash,
//	        holdings start empty.
//	2 -> 3: day, cash and holdings all carry over unchanged.
//
// At level 3 it fails with AlreadyMaxLevel and mutates nothing.
func (g *Game) AdvanceLevel(sessionID string) Result {
	var result Result
	g.store.Do(sessionID, func(s *Session) {
		if s.Level >= LevelPortfolio {
			result = failure(ErrAlreadyMaxLevel)
			return
		}
		s.Level++
		if s.Level == LevelStock {
			s.Day = 0
			s.Cash = s.Principal
			s.Principal = M(0)
			s.Holdings = make(map[string]int)
		}
		result = Result{Success: true, NewLevel: s.Level, Message: fmt.Sprintf("Welcome to level %d!", s.Level)}
		log.Printf("level-advance id=%q level=%d", sessionID, s.Level)
	})
	return result
}

// Advice answers a free-form player question. Below level 3 it returns the
// gate message. At level 3 the question goes to the external coach with the
// heuristic report as context; any coach failure is absorbed into the
// apology string, it never surfaces as an error.
func (g *Game) Advice(ctx context.Context, sessionID, question string) string {
	var report advisor.Report
	var gated bool
	g.store.Do(sessionID, func(s *Session) {
		if s.Level < LevelPortfolio {
			gated = true
			return
		}
		report = AdviceReport(s, g.market)
	})
	if gated {
		return AdviceGateMessage
	}
	if g.coach == nil {
		return advisor.Apology
	}
	// The coach call happens outside the session lock: a slow external
	// service must not stall game-state actions on the same session.
	answer, err := g.coach.Ask(ctx, report, question)
	if err != nil {
		log.Printf("coach-error id=%q err=%v", sessionID, err)
		return advisor.Apology
	}
	return answer
}
