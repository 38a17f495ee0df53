package object

import (
	"math"
	"strconv"
	"strings"

	"github.com/wippyai/js-runtime/errors"
)

// MaxSafeInteger bounds every length and index accepted by the runtime.
const MaxSafeInteger = int64(1)<<53 - 1

// ToNumber converts a primitive value to a number. Big integers do not
// convert implicitly, and an object handle must be reduced to a primitive by
// the caller first; both fail with a type error.
func ToNumber(v Value) (float64, error) {
	switch t := v.(type) {
	case nil, Undefined:
		return math.NaN(), nil
	case Boolean:
		if t {
			return 1, nil
		}
		return 0, nil
	case Number:
		return float64(t), nil
	case String:
		return stringToNumber(string(t)), nil
	case BigInt:
		return 0, errors.TypeError(errors.PhaseConvert, "cannot convert a bigint to a number")
	default:
		return 0, errors.TypeError(errors.PhaseConvert, "cannot convert %s to a number", TypeName(v))
	}
}

func stringToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	if n, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64); err == nil && strings.HasPrefix(s, "0x") {
		return float64(n)
	}
	return math.NaN()
}

// ToIndex converts v to a non-negative integer index no larger than
// MaxSafeInteger. Negative or non-finite values fail with a range error;
// values that cannot be converted to a number at all fail with a type error.
// An absent or undefined value yields index 0.
func ToIndex(v Value) (int64, error) {
	if IsUndefined(v) {
		return 0, nil
	}
	n, err := ToNumber(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) {
		return 0, nil
	}
	n = math.Trunc(n)
	if n < 0 || math.IsInf(n, 0) {
		return 0, errors.RangeError(errors.PhaseConvert, "invalid index %v", n)
	}
	if n > float64(MaxSafeInteger) {
		return 0, errors.RangeError(errors.PhaseConvert, "index %v exceeds maximum safe integer", n)
	}
	return int64(n), nil
}

// ToArrayLength coerces an array-like "length" property to a non-negative
// integer, failing with a range error when it is negative, infinite, or not
// coercible to a number.
func ToArrayLength(v Value) (int64, error) {
	n, err := ToNumber(v)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseConvert, errors.KindRangeError, err, "invalid array-like length")
	}
	if math.IsNaN(n) {
		return 0, nil
	}
	n = math.Trunc(n)
	if n < 0 || math.IsInf(n, 0) {
		return 0, errors.RangeError(errors.PhaseConvert, "invalid array-like length %v", n)
	}
	if n > float64(MaxSafeInteger) {
		return 0, errors.RangeError(errors.PhaseConvert, "array-like length %v exceeds maximum safe integer", n)
	}
	return int64(n), nil
}
