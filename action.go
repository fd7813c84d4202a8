package legacyguard

import (
	"encoding/json"
	"math"
	"strconv"
)

// Action is one decoded player request: a verb plus loose, action-specific
// fields. Callers arrive over JSON where numbers may be spelled as numbers
// or strings, so field access coerces both.
type Action struct {
	Name   string
	Fields map[string]any
}

// NewAction builds an action from a verb and its fields.
func NewAction(name string, fields map[string]any) Action {
	if fields == nil {
		fields = make(map[string]any)
	}
	return Action{Name: name, Fields: fields}
}

// Result is the structured outcome of an action. Failures are normal
// responses, never process errors.
type Result struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	NewLevel int    `json:"newLevel,omitempty"`
}

func failure(err error) Result { return Result{Success: false, Message: err.Error()} }

func success(message string) Result { return Result{Success: true, Message: message} }

// Int reads an integer field, coercing JSON numbers, json.Number and
// numeric strings. A fractional number is not an integer.
func (a Action) Int(key string) (int, bool) {
	v, ok := a.Fields[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// Float reads a float field with the same coercions as Int.
func (a Action) Float(key string) (float64, bool) {
	v, ok := a.Fields[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// String reads a string field; a missing or non-string field reads as "".
func (a Action) String(key string) string {
	s, _ := a.Fields[key].(string)
	return s
}

// quantity reads the "quantity" field and enforces the positive-integer
// rule shared by all trading actions. 'fallback' is used when the field is
// absent (the portfolio level trades 1 unit by default).
func (a Action) quantity(fallback int) (int, error) {
	if _, present := a.Fields["quantity"]; !present {
		if fallback > 0 {
			return fallback, nil
		}
		return 0, ErrInvalidQuantity
	}
	q, ok := a.Int("quantity")
	if !ok || q <= 0 {
		return 0, ErrInvalidQuantity
	}
	return q, nil
}
