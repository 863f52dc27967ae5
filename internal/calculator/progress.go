package calculator

import (
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
)

// MacroProgress compares one consumed quantity against its goal.
type MacroProgress struct {
	Consumed  float64 `json:"consumed"`
	Goal      float64 `json:"goal"`
	Remaining float64 `json:"remaining"` // negative once the goal is exceeded
	Percent   float64 `json:"percent"`   // 0-100 ring fill
}

// DailyProgress is a day's consumption against the goals, per field.
type DailyProgress struct {
	Calories MacroProgress `json:"calories"`
	Protein  MacroProgress `json:"protein"`
	Carbs    MacroProgress `json:"carbs"`
	Fat      MacroProgress `json:"fat"`
}

// RingPercent returns consumed/goal as a percentage clamped to [0,100];
// a non-positive goal yields 0.
func RingPercent(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return clamp(consumed/goal*100, 0, 100)
}

// NewDailyProgress compares consumed against goals.
func NewDailyProgress(consumed, goals models.NutritionInfo) DailyProgress {
	return DailyProgress{
		Calories: macroProgress(consumed.Calories, goals.Calories),
		Protein:  macroProgress(consumed.Protein, goals.Protein),
		Carbs:    macroProgress(consumed.Carbs, goals.Carbs),
		Fat:      macroProgress(consumed.Fat, goals.Fat),
	}
}

func macroProgress(consumed, goal float64) MacroProgress {
	return MacroProgress{
		Consumed:  consumed,
		Goal:      goal,
		Remaining: goal - consumed,
		Percent:   RingPercent(consumed, goal),
	}
}
