package value

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number converts any Go numeric into the dynamic number representation.
func Number[T constraints.Integer | constraints.Float](n T) Value {
	return float64(n)
}

// NegativeZero returns the float64 -0.
func NegativeZero() Value {
	return math.Copysign(0, -1)
}

// IsNegativeZero reports whether v is the number -0.
func IsNegativeZero(v Value) bool {
	f, ok := v.(float64)
	return ok && f == 0 && math.Signbit(f)
}

// ToNumber coerces v to a number. Undefined and anything non-coercible
// yield NaN; null yields +0; strings are trimmed and parsed, the empty
// string counting as 0.
func ToNumber(v Value) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case nil:
		return 0
	default:
		return math.NaN()
	}
}

// ToIntegerOrInfinity truncates n toward zero, preserving infinities.
// NaN and -0 both come out as +0. It cannot fail.
func ToIntegerOrInfinity(n float64) float64 {
	if math.IsNaN(n) {
		return 0
	}
	if math.IsInf(n, 0) {
		return n
	}
	t := math.Trunc(n)
	if t == 0 {
		return 0
	}
	return t
}
