package utils

import "strings"

// FoodReference holds per-100g composition for one reference food.
type FoodReference struct {
	Carbs    float64
	Protein  float64
	Fat      float64
	Fiber    float64
	Calories float64
}

type referenceEntry struct {
	Keyword string
	Ref     FoodReference
}

// referenceTable backs nutrient backfill for foods the model names but does
// not quantify. Entries are iterated in declared order and the last keyword
// that matches the food name wins, so generic keywords come before more
// specific ones (鸡 before 鸡蛋). A few English aliases are included because
// some models answer in English.
var referenceTable = []referenceEntry{
	{"饭", FoodReference{Carbs: 25.9, Protein: 2.6, Fat: 0.3, Fiber: 0.3, Calories: 116}},
	{"米饭", FoodReference{Carbs: 25.9, Protein: 2.6, Fat: 0.3, Fiber: 0.3, Calories: 116}},
	{"rice", FoodReference{Carbs: 25.9, Protein: 2.6, Fat: 0.3, Fiber: 0.3, Calories: 116}},
	{"粥", FoodReference{Carbs: 9.9, Protein: 1.1, Fat: 0.3, Fiber: 0.1, Calories: 46}},
	{"面条", FoodReference{Carbs: 24.3, Protein: 4.5, Fat: 0.4, Fiber: 0.8, Calories: 119}},
	{"noodle", FoodReference{Carbs: 24.3, Protein: 4.5, Fat: 0.4, Fiber: 0.8, Calories: 119}},
	{"馒头", FoodReference{Carbs: 47.0, Protein: 7.0, Fat: 1.1, Fiber: 1.3, Calories: 223}},
	{"面包", FoodReference{Carbs: 49.7, Protein: 8.3, Fat: 3.1, Fiber: 2.1, Calories: 283}},
	{"bread", FoodReference{Carbs: 49.7, Protein: 8.3, Fat: 3.1, Fiber: 2.1, Calories: 283}},
	{"饺子", FoodReference{Carbs: 24.4, Protein: 7.2, Fat: 3.5, Fiber: 1.2, Calories: 157}},
	{"土豆", FoodReference{Carbs: 17.2, Protein: 2.0, Fat: 0.2, Fiber: 0.7, Calories: 76}},
	{"potato", FoodReference{Carbs: 17.2, Protein: 2.0, Fat: 0.2, Fiber: 0.7, Calories: 76}},
	{"红薯", FoodReference{Carbs: 24.7, Protein: 1.1, Fat: 0.2, Fiber: 1.6, Calories: 99}},
	{"玉米", FoodReference{Carbs: 22.8, Protein: 4.0, Fat: 1.2, Fiber: 2.9, Calories: 112}},
	{"corn", FoodReference{Carbs: 22.8, Protein: 4.0, Fat: 1.2, Fiber: 2.9, Calories: 112}},
	{"苹果", FoodReference{Carbs: 14.0, Protein: 0.3, Fat: 0.2, Fiber: 2.4, Calories: 54}},
	{"apple", FoodReference{Carbs: 14.0, Protein: 0.3, Fat: 0.2, Fiber: 2.4, Calories: 54}},
	{"香蕉", FoodReference{Carbs: 22.0, Protein: 1.4, Fat: 0.2, Fiber: 2.6, Calories: 93}},
	{"banana", FoodReference{Carbs: 22.0, Protein: 1.4, Fat: 0.2, Fiber: 2.6, Calories: 93}},
	{"橙", FoodReference{Carbs: 11.1, Protein: 0.8, Fat: 0.2, Fiber: 0.6, Calories: 48}},
	{"orange", FoodReference{Carbs: 11.1, Protein: 0.8, Fat: 0.2, Fiber: 0.6, Calories: 48}},
	{"鸡", FoodReference{Carbs: 1.3, Protein: 19.3, Fat: 9.4, Fiber: 0, Calories: 167}},
	{"chicken", FoodReference{Carbs: 1.3, Protein: 19.3, Fat: 9.4, Fiber: 0, Calories: 167}},
	{"鸡蛋", FoodReference{Carbs: 2.8, Protein: 13.3, Fat: 8.8, Fiber: 0, Calories: 144}},
	{"egg", FoodReference{Carbs: 2.8, Protein: 13.3, Fat: 8.8, Fiber: 0, Calories: 144}},
	{"牛肉", FoodReference{Carbs: 1.2, Protein: 19.9, Fat: 4.2, Fiber: 0, Calories: 125}},
	{"beef", FoodReference{Carbs: 1.2, Protein: 19.9, Fat: 4.2, Fiber: 0, Calories: 125}},
	{"猪肉", FoodReference{Carbs: 2.4, Protein: 13.2, Fat: 37.0, Fiber: 0, Calories: 395}},
	{"鱼", FoodReference{Carbs: 0, Protein: 17.7, Fat: 3.6, Fiber: 0, Calories: 104}},
	{"fish", FoodReference{Carbs: 0, Protein: 17.7, Fat: 3.6, Fiber: 0, Calories: 104}},
	{"虾", FoodReference{Carbs: 0.9, Protein: 18.6, Fat: 0.8, Fiber: 0, Calories: 79}},
	{"豆腐", FoodReference{Carbs: 4.2, Protein: 8.1, Fat: 3.7, Fiber: 0.4, Calories: 82}},
	{"tofu", FoodReference{Carbs: 4.2, Protein: 8.1, Fat: 3.7, Fiber: 0.4, Calories: 82}},
	{"牛奶", FoodReference{Carbs: 3.4, Protein: 3.0, Fat: 3.2, Fiber: 0, Calories: 54}},
	{"milk", FoodReference{Carbs: 3.4, Protein: 3.0, Fat: 3.2, Fiber: 0, Calories: 54}},
	{"青菜", FoodReference{Carbs: 2.8, Protein: 1.5, Fat: 0.3, Fiber: 1.1, Calories: 15}},
	{"西兰花", FoodReference{Carbs: 4.3, Protein: 4.1, Fat: 0.6, Fiber: 1.6, Calories: 36}},
	{"broccoli", FoodReference{Carbs: 4.3, Protein: 4.1, Fat: 0.6, Fiber: 1.6, Calories: 36}},
}

// LookupReference matches a food name against the reference table by
// case-insensitive substring. All keywords are checked; the last hit wins.
func LookupReference(name string) (FoodReference, bool) {
	if name == "" {
		return FoodReference{}, false
	}
	lower := strings.ToLower(name)
	var (
		ref   FoodReference
		found bool
	)
	for _, entry := range referenceTable {
		if strings.Contains(lower, strings.ToLower(entry.Keyword)) {
			ref = entry.Ref
			found = true
		}
	}
	return ref, found
}
