package token

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidRadix is raised when an integer token is declared with a radix
// outside 2..36.
var ErrInvalidRadix = errors.New("token: radix must be within 2..36")

// Int accepts integers written in radix.
func Int(radix int) Token[int] {
	checkRadix(radix)
	return New(intHint(radix), func(part string) (int, bool) {
		return parseInt(part, radix)
	})
}

// IntRange accepts integers written in radix within [min, max]. It
// suggests both bounds.
func IntRange(radix, min, max int) Token[int] {
	checkRadix(radix)
	bounds := []string{
		strconv.FormatInt(int64(min), radix),
		strconv.FormatInt(int64(max), radix),
	}
	return funcToken[int]{
		hint: func() string {
			return fmt.Sprintf("Int(radix=%d, %d..%d)", radix, min, max)
		},
		suggest: func(string) []string { return bounds },
		convert: func(part string) (int, bool) {
			v, ok := parseInt(part, radix)
			return v, ok && v >= min && v <= max
		},
	}
}

// Float accepts floating point numbers.
func Float() Token[float64] {
	return New("Float", parseFloat)
}

// FloatRange accepts floating point numbers within [min, max]. It suggests
// both bounds.
func FloatRange(min, max float64) Token[float64] {
	bounds := []string{
		strconv.FormatFloat(min, 'g', -1, 64),
		strconv.FormatFloat(max, 'g', -1, 64),
	}
	return funcToken[float64]{
		hint: func() string {
			return fmt.Sprintf("Float(%s..%s)", bounds[0], bounds[1])
		},
		suggest: func(string) []string { return bounds },
		convert: func(part string) (float64, bool) {
			v, ok := parseFloat(part)
			return v, ok && v >= min && v <= max
		},
	}
}

func intHint(radix int) string {
	switch radix {
	case 10:
		return "Int"
	case 16:
		return "Int(Hex)"
	default:
		return fmt.Sprintf("Int(radix=%d)", radix)
	}
}

func checkRadix(radix int) {
	if radix < 2 || radix > 36 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidRadix, radix))
	}
}

func parseInt(part string, radix int) (int, bool) {
	v, err := strconv.ParseInt(part, radix, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func parseFloat(part string) (float64, bool) {
	v, err := strconv.ParseFloat(part, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
