package models

// Nutrients are gram amounts for one recognized food.
type Nutrients struct {
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber,omitempty"`
}

// FoodItem is one recognized food in the meal photo. Nutrients may be nil
// when the model supplied none and no reference-table backfill was possible;
// such items contribute zero to the totals.
type FoodItem struct {
	Name            string     `json:"name"`
	EstimatedWeight string     `json:"estimated_weight"`
	Nutrients       *Nutrients `json:"nutrients,omitempty"`
}

// HasUsableNutrients reports whether the model supplied at least one nonzero
// macro. Items without usable macros are candidates for backfill.
func (f *FoodItem) HasUsableNutrients() bool {
	n := f.Nutrients
	return n != nil && (n.Carbs > 0 || n.Protein > 0 || n.Fat > 0)
}

// NutritionSummary carries display-ready totals with unit suffixes.
type NutritionSummary struct {
	TotalCarbs string `json:"total_carbs"`
	Fiber      string `json:"fiber"`
	NetCarbs   string `json:"net_carbs"`
	GLLevel    string `json:"gl_level"`
	Calories   string `json:"calories"`
}

// Report is the canonical analysis result delivered to the UI. A structured
// report fills Foods, Nutrition and the assessment fields; when the model
// output carries no recognizable structure only Analysis is set and the UI
// renders the raw text instead.
type Report struct {
	Foods           []FoodItem        `json:"foods,omitempty"`
	Nutrition       *NutritionSummary `json:"nutrition,omitempty"`
	RiskLevel       string            `json:"risk_level,omitempty"`
	ColorCode       string            `json:"color_code,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
	Disclaimer      string            `json:"disclaimer,omitempty"`
	Analysis        string            `json:"analysis,omitempty"`
}

// IsStructured distinguishes a full report from the raw-text fallback.
func (r *Report) IsStructured() bool {
	return r.Analysis == ""
}
