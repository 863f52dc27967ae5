package calculator

import (
	"math"
	"time"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/datekey"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
)

// Calories per gram of each macronutrient.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// weekOffsetLabels are the week selectors shown above the calorie chart.
var weekOffsetLabels = map[string]int{
	"This week":  0,
	"Last week":  1,
	"2 wks. ago": 2,
	"3 wks. ago": 3,
}

// DayCalories is one bar of the weekly calorie chart.
type DayCalories struct {
	Day      string  `json:"day"`  // short weekday name, e.g. "Sun"
	Date     string  `json:"date"` // YYYY-MM-DD
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"totalCalories"`
}

// MacroShare is the percentage of a day's macro calories from each macro.
type MacroShare struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// WeekSummary aggregates a 7-day calorie series.
type WeekSummary struct {
	Offset        int           `json:"offset"`
	Days          []DayCalories `json:"days"`
	TotalCalories float64       `json:"totalCalories"`
	ScaleMax      float64       `json:"scaleMax"` // chart Y-axis maximum
}

// WeekStart returns the Sunday that starts the week offset weeks before the
// week containing today (offset 0 is the current week).
func WeekStart(today time.Time, offset int) time.Time {
	day := datekey.Midnight(today)
	return day.AddDate(0, 0, -int(day.Weekday())-7*offset)
}

// WeeklyCalories builds the Sunday-to-Saturday series for the given week
// offset. consumed is looked up per date key; missing days should yield zero.
func WeeklyCalories(consumed func(date string) models.NutritionInfo, today time.Time, offset int) []DayCalories {
	start := WeekStart(today, offset)

	days := make([]DayCalories, 7)
	for i := range days {
		date := start.AddDate(0, 0, i)
		key := datekey.Format(date)
		n := consumed(key)
		days[i] = DayCalories{
			Day:      date.Weekday().String()[:3],
			Date:     key,
			Protein:  n.Protein,
			Carbs:    n.Carbs,
			Fat:      n.Fat,
			Calories: n.Calories,
		}
	}
	return days
}

// SummarizeWeek totals a weekly series and picks the chart scale: the largest
// day rounded up to the next 500 kcal, or 1000 for an empty week.
func SummarizeWeek(offset int, days []DayCalories) WeekSummary {
	summary := WeekSummary{Offset: offset, Days: days}

	var maxDay float64
	for _, d := range days {
		summary.TotalCalories += d.Calories
		if d.Calories > maxDay {
			maxDay = d.Calories
		}
	}

	if maxDay == 0 {
		summary.ScaleMax = 1000
	} else {
		summary.ScaleMax = math.Ceil(maxDay/500) * 500
	}
	return summary
}

// MacroShares splits a day's bar into protein, carbs and fat percentages by
// their calorie contribution.
func MacroShares(day DayCalories) MacroShare {
	protein := day.Protein * kcalPerGramProtein
	carbs := day.Carbs * kcalPerGramCarbs
	fat := day.Fat * kcalPerGramFat

	total := protein + carbs + fat
	if total == 0 {
		total = 1
	}
	return MacroShare{
		Protein: protein / total * 100,
		Carbs:   carbs / total * 100,
		Fat:     fat / total * 100,
	}
}

// WeekOffsetFromLabel maps a week selector label to its offset.
// Unknown labels select the current week.
func WeekOffsetFromLabel(label string) int {
	return weekOffsetLabels[label]
}
