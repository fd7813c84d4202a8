package legacyguard

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	// 10000 * 0.025 * 30 / 365 must land exactly on 20.55 once rounded,
	// with no float drift along the way.
	interest := M(10000).MulFloat(0.025).Times(30).DivInt(365)
	if got := interest.Fixed(); got != "20.55" {
		t.Errorf("interest = %s, want 20.55", got)
	}

	sum := M(10000).Add(interest)
	if got := sum.Fixed(); got != "10020.55" {
		t.Errorf("sum = %s, want 10020.55", got)
	}
	if got := sum.Sub(interest); !got.Equal(M(10000)) {
		t.Error(moneyDiff("sub", got, M(10000)))
	}
}

func TestMoney_Predicates(t *testing.T) {
	if !M(0).IsZero() || M(1).IsZero() {
		t.Error("IsZero")
	}
	if !M(1).IsPositive() || M(-1).IsPositive() {
		t.Error("IsPositive")
	}
	if !M(-1).IsNegative() {
		t.Error("IsNegative")
	}
	if !M(1).LessThan(M(2)) || M(2).LessThan(M(2)) {
		t.Error("LessThan")
	}
	if !M(2).GreaterThanOrEqual(M(2)) || M(1).GreaterThanOrEqual(M(2)) {
		t.Error("GreaterThanOrEqual")
	}
}

func TestMoney_String(t *testing.T) {
	if got := M(10020.55).String(); got != "$10,020.55" {
		t.Errorf("String = %q", got)
	}
	if got := M(0).String(); got != "$0.00" {
		t.Errorf("String = %q", got)
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	// Amounts serialize as plain numbers rounded to cents.
	b, err := json.Marshal(map[string]Money{"cash": M(10020.5512)})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b); got != `{"cash":10020.55}` {
		t.Errorf("json = %s", got)
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte("103.25"), &m); err != nil {
		t.Fatal(err)
	}
	if !m.Equal(M(103.25)) {
		t.Error(moneyDiff("unmarshal", m, M(103.25)))
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("102.50")
	if err != nil {
		t.Fatal(err)
	}
	if !m.Equal(M(102.5)) {
		t.Error(moneyDiff("parse", m, M(102.5)))
	}
	if _, err := ParseMoney("n/a"); err == nil {
		t.Error("ParseMoney must reject non-numeric input")
	}
}
