package models

// NutritionInfo holds calories and macronutrients.
// Calories are in kcal; Protein, Carbs and Fat are in grams.
// None of the fields is ever negative.
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the element-wise sum of n and other.
func (n NutritionInfo) Add(other NutritionInfo) NutritionInfo {
	return NutritionInfo{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
	}
}

// IsValid reports whether every field is a finite, non-negative number.
func (n NutritionInfo) IsValid() bool {
	for _, v := range []float64{n.Calories, n.Protein, n.Carbs, n.Fat} {
		// NaN fails both comparisons, so it is rejected here too
		if !(v >= 0) || v > maxQuantity {
			return false
		}
	}
	return true
}

// maxQuantity rejects +Inf and absurd values in one check.
const maxQuantity = 1e9

// DefaultPlan is the daily goal used whenever plan generation fails.
var DefaultPlan = NutritionInfo{Calories: 2000, Protein: 150, Carbs: 200, Fat: 65}
