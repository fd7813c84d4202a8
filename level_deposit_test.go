package legacyguard

import (
	"errors"
	"testing"
)

func TestDeposit_InterestCalculation(t *testing.T) {
	m := testMarket(5)
	s := NewSession("t")

	// interest = 10000 * 0.025 * 30/365 = 20.55 (rounded to cents)
	msg, err := depositEngine{}.handle(s, m, NewAction("deposit", map[string]any{
		"period": 30,
		"rate":   0.025,
	}))
	if err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if msg == "" {
		t.Error("deposit returned no message")
	}
	if got := s.Principal.Fixed(); got != "10020.55" {
		t.Errorf("principal = %s, want 10020.55", got)
	}
	if got := s.Interest.Fixed(); got != "20.55" {
		t.Errorf("interest earned = %s, want 20.55", got)
	}
	if s.Day != 30 {
		t.Errorf("day = %d, want 30", s.Day)
	}
}

func TestDeposit_AccumulatesAcrossDeposits(t *testing.T) {
	m := testMarket(5)
	s := NewSession("t")
	e := depositEngine{}

	for i := 0; i < 3; i++ {
		if _, err := e.handle(s, m, NewAction("deposit", map[string]any{"period": 60, "rate": 0.04})); err != nil {
			t.Fatalf("deposit %d failed: %v", i, err)
		}
	}
	if s.Day != 180 {
		t.Errorf("day = %d, want 180", s.Day)
	}
	if !s.Principal.GreaterThan(StartingPrincipal) {
		t.Error(moneyDiff("principal", s.Principal, StartingPrincipal))
	}
	if !s.Principal.Sub(StartingPrincipal).Equal(s.Interest) {
		t.Error("principal growth and cumulative interest disagree")
	}
}

func TestDeposit_InvalidParameters(t *testing.T) {
	testCases := []struct {
		name   string
		fields map[string]any
	}{
		{"missing period", map[string]any{"rate": 0.025}},
		{"missing rate", map[string]any{"period": 30}},
		{"period not a number", map[string]any{"period": "a month", "rate": 0.025}},
		{"rate not a number", map[string]any{"period": 30, "rate": "low"}},
		{"negative period", map[string]any{"period": -30, "rate": 0.025}},
		{"zero rate", map[string]any{"period": 30, "rate": 0}},
	}

	m := testMarket(5)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession("t")
			_, err := depositEngine{}.handle(s, m, NewAction("deposit", tc.fields))
			if !errors.Is(err, ErrInvalidParameters) {
				t.Fatalf("err = %v, want ErrInvalidParameters", err)
			}
			// The session must be untouched.
			if !s.Principal.Equal(StartingPrincipal) || !s.Interest.IsZero() || s.Day != 0 {
				t.Error("failed deposit mutated the session")
			}
		})
	}
}

func TestDeposit_StringNumbersAccepted(t *testing.T) {
	m := testMarket(5)
	s := NewSession("t")
	_, err := depositEngine{}.handle(s, m, NewAction("deposit", map[string]any{
		"period": "30",
		"rate":   "0.025",
	}))
	if err != nil {
		t.Fatalf("deposit with string numbers failed: %v", err)
	}
	if got := s.Principal.Fixed(); got != "10020.55" {
		t.Errorf("principal = %s, want 10020.55", got)
	}
}

func TestDeposit_UnknownAction(t *testing.T) {
	m := testMarket(5)
	s := NewSession("t")
	_, err := depositEngine{}.handle(s, m, NewAction("buy", map[string]any{"quantity": 1}))
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
}

func TestDeposit_State(t *testing.T) {
	m := testMarket(5)
	s := NewSession("t")

	state := depositEngine{}.state(s, m).(DepositState)
	if state.IsGoalMet {
		t.Error("fresh session should not meet the goal")
	}
	if !state.Goal.Equal(M(10400)) {
		t.Error(moneyDiff("goal", state.Goal, M(10400)))
	}
	if len(state.AvailableRates) != 3 {
		t.Fatalf("offers = %d, want 3", len(state.AvailableRates))
	}

	// Push the principal over the goal.
	s.Principal = M(10400)
	state = depositEngine{}.state(s, m).(DepositState)
	if !state.IsGoalMet {
		t.Error("goal should be met at exactly the threshold")
	}
}
