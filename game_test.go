package legacyguard

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/legacyguard/advisor"
)

func TestGame_SessionCreatedOnFirstAccess(t *testing.T) {
	g := NewGame(testMarket(5), nil)

	state, ok := g.State("fresh").(DepositState)
	if !ok {
		t.Fatalf("fresh session state = %T, want DepositState", g.State("fresh"))
	}
	if state.CurrentLevel != LevelDeposit {
		t.Errorf("level = %d, want 1", state.CurrentLevel)
	}
	if !state.Principal.Equal(StartingPrincipal) {
		t.Error(moneyDiff("principal", state.Principal, StartingPrincipal))
	}
}

func TestGame_AdvanceLevelTransitions(t *testing.T) {
	g := NewGame(testMarket(5), nil)
	id := "player"

	// Earn some interest so the 1->2 seed amount is distinguishable.
	result := g.Perform(id, NewAction("deposit", map[string]any{"period": 30, "rate": 0.025}))
	if !result.Success {
		t.Fatalf("deposit failed: %s", result.Message)
	}

	// 1 -> 2: day resets, cash is seeded from principal, holdings empty.
	result = g.AdvanceLevel(id)
	if !result.Success || result.NewLevel != 2 {
		t.Fatalf("advance to 2: %+v", result)
	}
	stock := g.State(id).(StockState)
	if stock.Day != 0 {
		t.Errorf("day = %d, want 0 after 1->2", stock.Day)
	}
	if got := stock.Cash.Fixed(); got != "10020.55" {
		t.Errorf("cash = %s, want the full principal 10020.55", got)
	}
	if stock.Stock.Holding != 0 {
		t.Errorf("holding = %d, want 0", stock.Stock.Holding)
	}

	// Trade and wait a little so the 2->3 carry-over is visible.
	g.Perform(id, NewAction("buy", map[string]any{"quantity": 5}))
	g.Perform(id, NewAction("next_day", nil))
	stock = g.State(id).(StockState)

	// 2 -> 3: day, cash and holdings carry over unchanged.
	result = g.AdvanceLevel(id)
	if !result.Success || result.NewLevel != 3 {
		t.Fatalf("advance to 3: %+v", result)
	}
	portfolio := g.State(id).(PortfolioState)
	if portfolio.Day != stock.Day+1 {
		t.Errorf("display day = %d, want %d", portfolio.Day, stock.Day+1)
	}
	if !portfolio.Cash.Equal(stock.Cash) {
		t.Error(moneyDiff("cash", portfolio.Cash, stock.Cash))
	}
	for _, a := range portfolio.Assets {
		if a.Ticker == StockTicker && a.Holding != 5 {
			t.Errorf("carried holding = %d, want 5", a.Holding)
		}
	}

	// At 3: always AlreadyMaxLevel, never mutates the level.
	for i := 0; i < 2; i++ {
		result = g.AdvanceLevel(id)
		if result.Success {
			t.Fatal("advance at level 3 must fail")
		}
		if !strings.Contains(result.Message, "highest level") {
			t.Errorf("message = %q", result.Message)
		}
	}
	if got := g.State(id).(PortfolioState).CurrentLevel; got != 3 {
		t.Errorf("level = %d, want 3", got)
	}
}

func TestGame_ResetStartsOver(t *testing.T) {
	g := NewGame(testMarket(5), nil)
	id := "player"

	g.AdvanceLevel(id)
	g.AdvanceLevel(id)
	if _, ok := g.State(id).(PortfolioState); !ok {
		t.Fatalf("setup failed: %T", g.State(id))
	}

	state, ok := g.Reset(id).(DepositState)
	if !ok {
		t.Fatalf("reset state = %T, want DepositState", g.Reset(id))
	}
	if !state.Principal.Equal(StartingPrincipal) || !state.InterestEarned.IsZero() {
		t.Error("reset did not restore level-1 defaults")
	}
}

func TestGame_UnknownActionFailsCleanly(t *testing.T) {
	g := NewGame(testMarket(5), nil)
	result := g.Perform("p", NewAction("dance", nil))
	if result.Success {
		t.Fatal("unknown action must fail")
	}
	if got := g.State("p").(DepositState); !got.Principal.Equal(StartingPrincipal) {
		t.Error("failed action mutated the session")
	}
}

func TestGame_AdviceGatedBelowLevelThree(t *testing.T) {
	g := NewGame(testMarket(5), nil)
	id := "p"

	if got := g.Advice(context.Background(), id, "what now?"); got != AdviceGateMessage {
		t.Errorf("level 1 advice = %q, want gate message", got)
	}
	g.AdvanceLevel(id)
	if got := g.Advice(context.Background(), id, "what now?"); got != AdviceGateMessage {
		t.Errorf("level 2 advice = %q, want gate message", got)
	}
}

func TestGame_AdviceWithoutCoachApologizes(t *testing.T) {
	g := NewGame(testMarket(5), nil)
	id := "p"
	g.AdvanceLevel(id)
	g.AdvanceLevel(id)

	if got := g.Advice(context.Background(), id, "should I buy?"); got != advisor.Apology {
		t.Errorf("advice = %q, want the apology", got)
	}
}

type cannedCoach struct {
	lastQuestion string
	lastReport   advisor.Report
}

func (c *cannedCoach) Ask(_ context.Context, r advisor.Report, question string) (string, error) {
	c.lastReport = r
	c.lastQuestion = question
	return "Stay the course.", nil
}

func TestGame_AdviceDelegatesWithReport(t *testing.T) {
	coach := &cannedCoach{}
	g := NewGame(testMarket(5), coach)
	id := "p"
	g.AdvanceLevel(id)
	g.AdvanceLevel(id)
	g.Perform(id, NewAction("buy", map[string]any{"ticker": "TECH_A", "quantity": 3}))

	if got := g.Advice(context.Background(), id, "should I sell?"); got != "Stay the course." {
		t.Errorf("advice = %q", got)
	}
	if coach.lastQuestion != "should I sell?" {
		t.Errorf("question = %q", coach.lastQuestion)
	}
	if coach.lastReport.Invested == 0 {
		t.Error("coach report misses the invested amount")
	}
	if len(coach.lastReport.Holdings) != 1 {
		t.Errorf("coach report holdings = %d, want 1", len(coach.lastReport.Holdings))
	}
}

func TestGame_InvariantsHoldAfterActionStorm(t *testing.T) {
	// Whatever sequence of valid and invalid actions runs, cash and
	// holdings never go negative.
	g := NewGame(testMarket(10), nil)
	id := "p"
	g.AdvanceLevel(id)

	actions := []Action{
		NewAction("buy", map[string]any{"quantity": 50}),
		NewAction("sell", map[string]any{"quantity": 9999}),
		NewAction("buy", map[string]any{"quantity": 200}), // too expensive
		NewAction("next_day", nil),
		NewAction("sell", map[string]any{"quantity": 50}),
		NewAction("sell", map[string]any{"quantity": 1}), // nothing left
		NewAction("warp", nil),
	}
	for _, a := range actions {
		g.Perform(id, a)
		state := g.State(id).(StockState)
		if state.Cash.IsNegative() {
			t.Fatalf("cash went negative after %q: %s", a.Name, state.Cash.Fixed())
		}
		if state.Stock.Holding < 0 {
			t.Fatalf("holding went negative after %q", a.Name)
		}
	}
}
