package table

import "strconv"

// Numeric reports whether s is a valid cell number (optional leading
// '-', digits, at most one decimal point) and returns its value.
// Anything else (empty strings, exponents, leading '+') is not a
// number for aggregation purposes.
func Numeric(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	digits := 0
	dots := 0
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
			if dots > 1 {
				return 0, false
			}
		default:
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatNumber renders v in the shortest general form, so whole
// numbers carry no trailing ".0".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
