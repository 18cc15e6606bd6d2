// Package validation checks inbound payloads against declarative rule sets
// before they reach business logic.
package validation

import (
	"math"
	"strconv"
	"strings"

	"eatery/pkg/apperr"
)

// Fields is a raw field-value mapping as decoded from a request: values are
// strings, numbers, nested maps or sequences of those.
type Fields map[string]any

// Check reports whether a value passes. present is false when the field is
// missing from the payload.
type Check func(v any, present bool) bool

// Rule binds a check to a field path. A path segment of "*" expands over every
// element of a sequence, e.g. "menuItems.*.price".
type Rule struct {
	Field   string
	Check   Check
	Message string
}

// RuleSet is evaluated in declaration order.
type RuleSet []Rule

// Validate runs every rule and returns the accumulated field errors. An empty
// result means the payload is accepted.
func (rs RuleSet) Validate(f Fields) []apperr.FieldError {
	var errs []apperr.FieldError
	for _, r := range rs {
		for _, t := range resolve(f, r.Field) {
			if !r.Check(t.value, t.present) {
				errs = append(errs, apperr.FieldError{Field: t.path, Message: r.Message})
			}
		}
	}
	return errs
}

// Err wraps Validate's result into a validation error, nil when accepted.
func (rs RuleSet) Err(f Fields) error {
	if errs := rs.Validate(f); len(errs) > 0 {
		return apperr.Validation(errs)
	}
	return nil
}

type target struct {
	path    string
	value   any
	present bool
}

func resolve(f Fields, field string) []target {
	cur := []target{{value: map[string]any(f), present: true}}
	for _, seg := range strings.Split(field, ".") {
		next := make([]target, 0, len(cur))
		for _, t := range cur {
			if seg == "*" {
				seq, ok := AsSlice(t.value)
				if !ok {
					continue
				}
				for i, el := range seq {
					next = append(next, target{path: t.path + "[" + strconv.Itoa(i) + "]", value: el, present: true})
				}
				continue
			}
			path := seg
			if t.path != "" {
				path = t.path + "." + seg
			}
			m, ok := asMap(t.value)
			if !ok {
				next = append(next, target{path: path})
				continue
			}
			v, present := m[seg]
			next = append(next, target{path: path, value: v, present: present && v != nil})
		}
		cur = next
	}
	return cur
}

// AsSlice normalizes the sequence shapes a decoder may produce.
func AsSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, true
	case []Fields:
		out := make([]any, len(s))
		for i := range s {
			out[i] = map[string]any(s[i])
		}
		return out, true
	}
	return nil, false
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Fields:
		return m, true
	}
	return nil, false
}

// ---- checks ----

// NonEmptyString requires a string with at least one non-space character.
func NonEmptyString(v any, present bool) bool {
	s, ok := v.(string)
	return present && ok && strings.TrimSpace(s) != ""
}

// Required accepts any present value that is not an empty string.
func Required(v any, present bool) bool {
	if !present {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// FloatMin accepts numbers, or strings parsing as finite numbers, >= min.
func FloatMin(min float64) Check {
	return func(v any, present bool) bool {
		if !present {
			return false
		}
		f, ok := toFloat(v)
		return ok && f >= min
	}
}

// MaxAmount is the largest decimal amount whose minor units (x100) fit an int64.
const MaxAmount = float64(math.MaxInt64) / 100

// FloatMax rejects numbers above max. Values that are not numbers pass; FloatMin reports them.
func FloatMax(max float64) Check {
	return func(v any, present bool) bool {
		f, ok := toFloat(v)
		if !present || !ok {
			return true
		}
		return f <= max
	}
}

// IntMin accepts integers, or strings parsing as integers, >= min.
func IntMin(min int64) Check {
	return func(v any, present bool) bool {
		if !present {
			return false
		}
		switch n := v.(type) {
		case string:
			i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
			return err == nil && i >= min
		case int:
			return int64(n) >= min
		case int64:
			return n >= min
		case float64:
			return n == math.Trunc(n) && n >= float64(min)
		}
		return false
	}
}

// IsArray requires a sequence.
func IsArray(v any, present bool) bool {
	_, ok := AsSlice(v)
	return present && ok
}

// NonEmptyArray fails only for an empty sequence; non-sequences are left to IsArray.
func NonEmptyArray(v any, present bool) bool {
	seq, ok := AsSlice(v)
	if !present || !ok {
		return true
	}
	return len(seq) > 0
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = p
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
