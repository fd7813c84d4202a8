package legacyguard

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The whole game is played in a single currency.
const gameCurrency = "USD"

// Money represents a monetary value with exact decimal arithmetic.
//
// All in-game amounts (principal, interest, cash, prices) are Money values
// so that repeated deposits and trades never accumulate float drift.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M is a convenient Money factory.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// currency returns the game currency record.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, gameCurrency).Currency()
}

// String returns the string representation of the money value, e.g. "$10,020.55".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Times scales the amount by a whole number of units (shares).
func (m Money) Times(quantity int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(quantity)))}
}

// MulFloat scales the amount by an arbitrary factor, e.g. an interest rate.
func (m Money) MulFloat(f float64) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(f))}
}

// DivInt divides the amount by a whole number, e.g. a day-count denominator.
func (m Money) DivInt(n int) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))}
}

// AsFloat returns the amount as a float64, for ratio heuristics only.
// Game-state arithmetic must stay on Money to remain exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Fixed returns the amount as a plain "10020.55" string, rounded to cents.
func (m Money) Fixed() string { return m.value.StringFixed(2) }

// MarshalJSON implements the json.Marshaler interface.
// Amounts are emitted as plain numbers rounded to cents, the display convention.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.Round(2).String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}

// ParseMoney parses a plain decimal amount like "103.25".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}
