package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatDecimal renders a float as the shortest decimal string that round-trips,
// without exponent notation.
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseDecimal parses a decimal string into a float64.
// NaN and infinities are rejected along with anything strconv cannot parse.
func ParseDecimal(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

// FormatMoney renders an amount with two decimals and thousands separators, e.g. 12,345.60.
func FormatMoney(f float64) string {
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	s := strconv.FormatFloat(f, 'f', 2, 64)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	out := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}
	return sign + string(out) + frac
}
