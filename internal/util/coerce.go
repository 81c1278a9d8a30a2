package util

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The helpers below coerce values decoded from loosely typed JSON bodies
// (map[string]any / []any) the way storefront clients expect: numbers sent as
// strings are accepted, and "falsy" values collapse to defaults.

// IsFalsy reports whether v is nil, false, zero, NaN or the empty string.
func IsFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0 || math.IsNaN(t)
	case int:
		return t == 0
	case int64:
		return t == 0
	case json.Number:
		f, err := t.Float64()
		return err != nil || f == 0
	default:
		return false
	}
}

// ToString renders v as text. Whole floats print without a fraction ("12", not "12.000000").
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// ToStringOrEmpty is ToString with falsy values mapped to "".
func ToStringOrEmpty(v any) string {
	if IsFalsy(v) {
		return ""
	}

	return ToString(v)
}

// ToNumber converts v to a float64. Blank strings and nil convert to 0.
// ok is false when v cannot be read as a finite number.
func ToNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, true
	case float64:
		return t, !math.IsNaN(t) && !math.IsInf(t, 0)
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}

		return 0, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

// ToInt reads an integer with prefix semantics: "12abc" is 12, "3.9" is 3, 2.7 is 2.
// ok is false when no leading integer exists.
func ToInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}

		return int(t), true
	case int:
		return t, true
	case int64:
		return int(t), true
	case json.Number:
		return ToInt(t.String())
	case string:
		return parseIntPrefix(strings.TrimSpace(t))
	default:
		return 0, false
	}
}

func parseIntPrefix(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return n, true
}
