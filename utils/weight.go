package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Kilogram markers seen in model output. Checked case-insensitively.
var kiloMarkers = []string{"kg", "千克", "公斤"}

// ParseWeight converts a weight estimate from model output into grams.
// The value may already be numeric (taken as grams) or a string such as
// "150g", "1.2 kg" or "约200克". Anything unparseable yields 0; the
// function never panics.
func ParseWeight(v any) float64 {
	switch w := v.(type) {
	case nil:
		return 0
	case string:
		n := ParseNumber(w)
		lower := strings.ToLower(w)
		for _, marker := range kiloMarkers {
			if strings.Contains(lower, marker) {
				return n * 1000
			}
		}
		return n
	default:
		return ParseNumber(v)
	}
}

// ParseNumber extracts the first decimal or integer substring from a value.
// Nutrient fields often arrive with embedded units ("约40克", "58g").
func ParseNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		m := numberPattern.FindString(n)
		if m == "" {
			return 0
		}
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
