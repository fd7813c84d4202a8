package legacyguard

import "fmt"

// depositGoal is the level-1 target: grow the principal to this amount.
var depositGoal = M(10400)

// DepositOffer is one entry of the fixed term-deposit menu.
type DepositOffer struct {
	Period int     `json:"period"` // days
	Rate   float64 `json:"rate"`   // annual rate
}

// depositOffers is the menu shown to the player. Deposits are not required
// to match an offer: any positive period and rate is accepted, the menu is
// guidance, not a whitelist.
var depositOffers = []DepositOffer{
	{Period: 10, Rate: 0.015},
	{Period: 30, Rate: 0.025},
	{Period: 60, Rate: 0.04},
}

// DepositState is the level-1 snapshot.
type DepositState struct {
	CurrentLevel   int            `json:"currentLevel"`
	Principal      Money          `json:"principal"`
	InterestEarned Money          `json:"interestEarned"`
	Goal           Money          `json:"goal"`
	IsGoalMet      bool           `json:"isGoalMet"`
	AvailableRates []DepositOffer `json:"availableRates"`
}

// depositEngine implements level 1: fixed-term deposits on a single
// principal, simple interest with the actual/365 day-count convention.
type depositEngine struct{}

func (depositEngine) state(s *Session, m *MarketData) any {
	return DepositState{
		CurrentLevel:   s.Level,
		Principal:      s.Principal,
		InterestEarned: s.Interest,
		Goal:           depositGoal,
		IsGoalMet:      s.Principal.GreaterThanOrEqual(depositGoal),
		AvailableRates: depositOffers,
	}
}

func (depositEngine) handle(s *Session, m *MarketData, a Action) (string, error) {
	if a.Name != "deposit" {
		return "", ErrUnknownAction
	}

	period, ok := a.Int("period")
	if !ok || period <= 0 {
		return "", fmt.Errorf("%w: deposit needs a positive integer period in days", ErrInvalidParameters)
	}
	rate, ok := a.Float("rate")
	if !ok || rate <= 0 {
		return "", fmt.Errorf("%w: deposit needs a positive annual rate", ErrInvalidParameters)
	}

	// interest = principal * rate * (period / 365), simple, non-compounding.
	interest := s.Principal.MulFloat(rate).Times(period).DivInt(365)

	s.Principal = s.Principal.Add(interest)
	s.Interest = s.Interest.Add(interest)
	s.Day += period

	return fmt.Sprintf("Successfully deposited for %d days and earned $%s in interest!", period, interest.Fixed()), nil
}
