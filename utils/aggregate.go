package utils

import (
	"fmt"
	"math"
)

// Energy factors (kcal per gram) and glycemic-load thresholds used by every
// normalization path. Kept in one place so the UI never sees totals computed
// two different ways.
const (
	kcalPerGramCarb    = 4.0
	kcalPerGramProtein = 4.0
	kcalPerGramFat     = 9.0

	glLowMax    = 30.0
	glMediumMax = 60.0
)

// NetCarbs returns total carbohydrates minus dietary fiber, clamped at zero.
// Noisy model output occasionally reports more fiber than carbs, and a
// negative net-carb figure is meaningless for display.
func NetCarbs(totalCarbs, fiber float64) float64 {
	net := totalCarbs - fiber
	if net < 0 {
		return 0
	}
	return net
}

// CaloriesFromMacros estimates energy from macro gram amounts.
func CaloriesFromMacros(carbs, protein, fat float64) float64 {
	return kcalPerGramCarb*carbs + kcalPerGramProtein*protein + kcalPerGramFat*fat
}

// GLLevel buckets a net-carb amount into the 低/中/高 glycemic-load tiers.
func GLLevel(netCarbs float64) string {
	switch {
	case netCarbs <= glLowMax:
		return "低"
	case netCarbs <= glMediumMax:
		return "中"
	default:
		return "高"
	}
}

// RiskColor maps a risk category to the badge color shown by the UI.
// Unknown categories get a neutral color rather than a misleading one.
func RiskColor(riskLevel string) string {
	switch riskLevel {
	case "低":
		return "green"
	case "高":
		return "red"
	case "中":
		return "yellow"
	default:
		return "gray"
	}
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatGrams renders a gram amount the way the report displays it.
func FormatGrams(v float64) string {
	return fmt.Sprintf("%.1fg", v)
}

// FormatCalories renders a kcal amount with no decimal places.
func FormatCalories(v float64) string {
	return fmt.Sprintf("%.0fkcal", v)
}
