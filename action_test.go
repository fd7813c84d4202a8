package legacyguard

import (
	"encoding/json"
	"testing"
)

func TestAction_Int(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		want  int
		ok    bool
	}{
		{"json number", json.Number("30"), 30, true},
		{"float with integral value", float64(30), 30, true},
		{"go int", 30, 30, true},
		{"numeric string", "30", 30, true},
		{"fractional", 1.5, 0, false},
		{"word", "thirty", 0, false},
		{"bool", true, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAction("x", map[string]any{"v": tc.value})
			got, ok := a.Int("v")
			if ok != tc.ok || got != tc.want {
				t.Errorf("Int = (%d, %v), want (%d, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}

	if _, ok := NewAction("x", nil).Int("missing"); ok {
		t.Error("missing field must not read as an int")
	}
}

func TestAction_Float(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{"json number", json.Number("0.025"), 0.025, true},
		{"float", 0.025, 0.025, true},
		{"int", 2, 2, true},
		{"numeric string", "0.025", 0.025, true},
		{"word", "low", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAction("x", map[string]any{"v": tc.value})
			got, ok := a.Float("v")
			if ok != tc.ok || got != tc.want {
				t.Errorf("Float = (%v, %v), want (%v, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestAction_QuantityFallback(t *testing.T) {
	// Absent quantity uses the fallback when one is allowed.
	q, err := NewAction("buy", nil).quantity(1)
	if err != nil || q != 1 {
		t.Errorf("quantity = (%d, %v), want (1, nil)", q, err)
	}
	// Without a fallback an absent quantity is invalid.
	if _, err := NewAction("buy", nil).quantity(0); err == nil {
		t.Error("absent quantity without fallback must fail")
	}
	// A present but bad quantity never falls back.
	if _, err := NewAction("buy", map[string]any{"quantity": -1}).quantity(1); err == nil {
		t.Error("negative quantity must fail even with a fallback")
	}
}
