package chart

import (
	"math"
	"strconv"
)

// Formatter renders a numeric value as its display label. The same
// formatter sizes the right-margin estimate during margin fitting, so
// label text and label measurement can never disagree.
type Formatter func(float64) string

// FormatNumber is the default formatter: integers print without a
// decimal point, everything else with up to two decimals, trailing
// zeros trimmed.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	// Trim trailing zeros but keep at least one decimal digit.
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
