package services

import (
	"strconv"

	"github.com/litongxue7788/diabetic-diet-analyzer/models"
	"github.com/litongxue7788/diabetic-diet-analyzer/utils"
)

// Texts used when the model response omits them. A report never ships
// without recommendations or a disclaimer.
var (
	defaultRecommendations = []string{
		"建议先吃蔬菜和蛋白质，再吃主食，有助于降低血糖波动",
		"注意监测餐后2小时血糖，并保持适量运动",
	}
	defaultDisclaimer = "本分析基于AI估算，仅供参考。实际营养值可能因烹饪方法和具体食材而异。请咨询专业医生或营养师获取个性化建议。"
)

const unknownFoodName = "未知食物"

// reportShape discriminates the response layouts the normalizer recognizes.
type reportShape int

const (
	shapeVerbose reportShape = iota // nested food_analysis object
	shapeFlat                       // top-level foods/nutrition, close to canonical
	shapeRaw                        // no recognizable structure
)

func detectShape(parsed map[string]any) reportShape {
	if _, ok := parsed["food_analysis"].(map[string]any); ok {
		return shapeVerbose
	}
	if _, ok := parsed["foods"]; ok {
		return shapeFlat
	}
	if _, ok := parsed["nutrition"]; ok {
		return shapeFlat
	}
	return shapeRaw
}

// BuildReport turns raw model text into the canonical report. It never
// fails: text without a decodable JSON object becomes a raw-text report the
// UI renders verbatim.
func BuildReport(raw string) *models.Report {
	parsed, ok := utils.ExtractJSON(raw)
	if !ok {
		return &models.Report{Analysis: raw}
	}

	switch detectShape(parsed) {
	case shapeVerbose:
		return normalizeVerbose(parsed)
	case shapeFlat:
		return normalizeFlat(parsed)
	default:
		return &models.Report{Analysis: raw}
	}
}

// normalizeFlat passes an already close-to-canonical object through with
// type coercion: nutrient values may be numbers or strings with units.
func normalizeFlat(parsed map[string]any) *models.Report {
	report := &models.Report{
		Foods:           coerceFoods(asSlice(parsed["foods"])),
		RiskLevel:       asString(parsed["risk_level"]),
		Recommendations: asStringSlice(parsed["recommendations"]),
		Disclaimer:      asString(parsed["disclaimer"]),
	}

	backfillNutrients(report.Foods)
	report.Nutrition = summarize(report.Foods, totalsFromFlat(asMap(parsed["nutrition"])))
	finalize(report)
	return report
}

// normalizeVerbose flattens the nested food_analysis layout some models
// produce despite the prompt: foods, totals and the GI/GL assessment sit in
// sub-objects with their own field names and embedded units.
func normalizeVerbose(parsed map[string]any) *models.Report {
	fa := asMap(parsed["food_analysis"])
	report := &models.Report{}

	for _, raw := range asSlice(fa["foods"]) {
		f := asMap(raw)
		if f == nil {
			continue
		}
		item := models.FoodItem{
			Name:            firstString(f, "name", "food_name", "食物名称"),
			EstimatedWeight: weightString(firstValue(f, "estimated_weight", "weight", "portion", "重量")),
		}
		if item.Name == "" {
			item.Name = unknownFoodName
		}

		carbs := utils.ParseNumber(firstValue(f, "carbs", "carbohydrates", "carbohydrate", "碳水化合物"))
		protein := utils.ParseNumber(firstValue(f, "protein", "蛋白质"))
		fat := utils.ParseNumber(firstValue(f, "fat", "脂肪"))
		fiber := utils.ParseNumber(firstValue(f, "fiber", "dietary_fiber", "膳食纤维"))
		if carbs > 0 || protein > 0 || fat > 0 {
			item.Nutrients = &models.Nutrients{Carbs: carbs, Protein: protein, Fat: fat, Fiber: fiber}
		}

		report.Foods = append(report.Foods, item)
	}

	assessment := asMap(fa["gi_gl_assessment"])
	report.RiskLevel = firstString(assessment, "risk_level", "risk", "overall_risk")

	// General tips first, then the specific ones, in one flat list.
	recs := asMap(parsed["recommendations"])
	report.Recommendations = append(
		asStringSlice(recs["general_tips"]),
		asStringSlice(recs["specific_recommendations"])...,
	)
	report.Disclaimer = asString(parsed["disclaimer"])

	backfillNutrients(report.Foods)

	provided := totalsFromVerbose(asMap(fa["total_nutrition"]))
	provided.glLevel = firstString(assessment, "gl_level", "glycemic_load_level", "gl")
	report.Nutrition = summarize(report.Foods, provided)
	finalize(report)
	return report
}

// backfillNutrients fills missing macros from the reference table, scaled by
// the parsed weight and rounded to one decimal. Values the model supplied
// are never overwritten; an item whose name has no reference match (or whose
// weight cannot be parsed) ends up with no nutrients at all and contributes
// zero to the totals.
func backfillNutrients(foods []models.FoodItem) {
	for i := range foods {
		if foods[i].HasUsableNutrients() {
			continue
		}
		foods[i].Nutrients = nil

		ref, ok := utils.LookupReference(foods[i].Name)
		if !ok {
			continue
		}
		grams := utils.ParseWeight(foods[i].EstimatedWeight)
		if grams <= 0 {
			continue
		}

		scale := grams / 100
		foods[i].Nutrients = &models.Nutrients{
			Carbs:   utils.Round1(ref.Carbs * scale),
			Protein: utils.Round1(ref.Protein * scale),
			Fat:     utils.Round1(ref.Fat * scale),
			Fiber:   utils.Round1(ref.Fiber * scale),
		}
	}
}

// providedTotals are the provider's own aggregate figures, used only when
// nothing could be recomputed from the food list.
type providedTotals struct {
	totalCarbs float64
	fiber      float64
	calories   float64
	glLevel    string
}

func totalsFromFlat(n map[string]any) providedTotals {
	return providedTotals{
		totalCarbs: utils.ParseNumber(n["total_carbs"]),
		fiber:      utils.ParseNumber(n["fiber"]),
		calories:   utils.ParseNumber(n["calories"]),
		glLevel:    asString(n["gl_level"]),
	}
}

func totalsFromVerbose(n map[string]any) providedTotals {
	return providedTotals{
		totalCarbs: utils.ParseNumber(firstValue(n, "total_carbs", "total_carbohydrates", "carbohydrates", "总碳水化合物")),
		fiber:      utils.ParseNumber(firstValue(n, "fiber", "dietary_fiber", "膳食纤维")),
		calories:   utils.ParseNumber(firstValue(n, "calories", "total_calories", "energy", "总热量")),
	}
}

// summarize recomputes the nutrition totals from the (possibly backfilled)
// food list. The recomputed figures are authoritative; the provider's own
// aggregates only fill in when no food carried usable macros.
func summarize(foods []models.FoodItem, provided providedTotals) *models.NutritionSummary {
	var carbs, protein, fat, fiber float64
	for _, f := range foods {
		if f.Nutrients == nil {
			continue
		}
		carbs += f.Nutrients.Carbs
		protein += f.Nutrients.Protein
		fat += f.Nutrients.Fat
		fiber += f.Nutrients.Fiber
	}

	totalCarbs, totalFiber := carbs, fiber
	recomputed := carbs != 0 || protein != 0 || fat != 0
	if !recomputed {
		totalCarbs = provided.totalCarbs
		totalFiber = provided.fiber
	}

	net := utils.NetCarbs(totalCarbs, totalFiber)

	calories := utils.CaloriesFromMacros(carbs, protein, fat)
	if calories == 0 {
		calories = provided.calories
	}

	glLevel := utils.GLLevel(net)
	if totalCarbs == 0 && totalFiber == 0 && provided.glLevel != "" {
		glLevel = provided.glLevel
	}

	return &models.NutritionSummary{
		TotalCarbs: utils.FormatGrams(utils.Round1(totalCarbs)),
		Fiber:      utils.FormatGrams(utils.Round1(totalFiber)),
		NetCarbs:   utils.FormatGrams(utils.Round1(net)),
		GLLevel:    glLevel,
		Calories:   utils.FormatCalories(calories),
	}
}

// finalize derives the color code and fills the defaults shared by both
// structured paths.
func finalize(report *models.Report) {
	switch report.RiskLevel {
	case "低", "中", "高":
	default:
		if report.RiskLevel == "" && report.Nutrition != nil {
			report.RiskLevel = report.Nutrition.GLLevel
		}
	}
	report.ColorCode = utils.RiskColor(report.RiskLevel)

	if len(report.Recommendations) == 0 {
		report.Recommendations = append([]string(nil), defaultRecommendations...)
	}
	if report.Disclaimer == "" {
		report.Disclaimer = defaultDisclaimer
	}
}

// coerceFoods reads the flat foods array, parsing stringly-typed nutrient
// values and normalizing weight display.
func coerceFoods(raw []any) []models.FoodItem {
	foods := make([]models.FoodItem, 0, len(raw))
	for _, entry := range raw {
		f := asMap(entry)
		if f == nil {
			continue
		}
		item := models.FoodItem{
			Name:            asString(f["name"]),
			EstimatedWeight: weightString(f["estimated_weight"]),
		}
		if item.Name == "" {
			item.Name = unknownFoodName
		}
		if n := asMap(f["nutrients"]); n != nil {
			item.Nutrients = &models.Nutrients{
				Carbs:   utils.ParseNumber(n["carbs"]),
				Protein: utils.ParseNumber(n["protein"]),
				Fat:     utils.ParseNumber(n["fat"]),
				Fiber:   utils.ParseNumber(n["fiber"]),
			}
		}
		foods = append(foods, item)
	}
	return foods
}

// ---- loose-typing helpers ----

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStringSlice(v any) []string {
	var out []string
	for _, entry := range asSlice(v) {
		if s := asString(entry); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstValue(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := asString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

// weightString keeps string weights verbatim and gives bare numbers a gram
// suffix for display.
func weightString(v any) string {
	switch w := v.(type) {
	case string:
		return w
	case float64:
		return strconv.FormatFloat(w, 'f', -1, 64) + "g"
	default:
		return ""
	}
}
