package session

import (
	"fmt"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/calculator"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/datekey"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
)

// defaultCardGoalWeight is the weight-card goal when the profile has no
// desired weight.
const defaultCardGoalWeight = 80.0

// maxWeekOffset bounds how far back the weekly calorie chart can look.
const maxWeekOffset = 520

// ProgressQuery selects the week and trend window of a progress report.
// A non-empty WeekLabel takes precedence over WeekOffset.
type ProgressQuery struct {
	WeekOffset int
	WeekLabel  string
	Window     string
}

// StreakReport is the logging streak and the weekdays it covers.
type StreakReport struct {
	Days int     `json:"days"`
	Week [7]bool `json:"week"` // Sunday first
}

// GoalProgress tracks the weight goal.
//
// GoalWeight falls back to the start weight and drives Percent; the weight
// card uses CardGoalWeight, which falls back to 80 kg.
type GoalProgress struct {
	StartWeight    float64 `json:"startWeight"`
	CurrentWeight  float64 `json:"currentWeight"`
	GoalWeight     float64 `json:"goalWeight"`
	Percent        float64 `json:"percent"` // unclamped
	Display        int     `json:"display"`
	CardGoalWeight float64 `json:"cardGoalWeight"`
	CardProgress   float64 `json:"cardProgress"`
}

// Progress is the full progress report.
type Progress struct {
	Today         string                 `json:"today"`
	CurrentWeight float64                `json:"currentWeight"`
	BMI           calculator.BMIReport   `json:"bmi"`
	Streak        StreakReport           `json:"streak"`
	Week          calculator.WeekSummary `json:"week"`
	Window        calculator.Window      `json:"window"`
	Trend         calculator.TrendChart  `json:"trend"`
	Goal          GoalProgress           `json:"goal"`
}

// Progress derives every progress metric from the current state.
func (s *Session) Progress(q ProgressQuery) (Progress, error) {
	offset := q.WeekOffset
	if q.WeekLabel != "" {
		offset = calculator.WeekOffsetFromLabel(q.WeekLabel)
	}
	if offset < 0 || offset > maxWeekOffset {
		return Progress{}, fmt.Errorf("%w: %d", ErrInvalidWeekOffset, offset)
	}
	window, err := calculator.ParseWindow(q.Window)
	if err != nil {
		return Progress{}, fmt.Errorf("%w: %q", ErrInvalidWindow, q.Window)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now()
	sorted := s.weights.SortedAscending()
	current := calculator.CurrentWeight(sorted, s.profile.Weight)

	streak := calculator.Streak(s.ledger.DatesWithEntries(), today)
	days := calculator.WeeklyCalories(s.ledger.Consumed, today, offset)

	return Progress{
		Today:         datekey.Format(today),
		CurrentWeight: current,
		BMI:           calculator.NewBMIReport(s.profile.Height, current),
		Streak: StreakReport{
			Days: streak,
			Week: calculator.StreakWeekMarks(streak, today),
		},
		Week:   calculator.SummarizeWeek(offset, days),
		Window: window,
		Trend:  calculator.BuildTrendChart(calculator.FilterWindow(sorted, window, today)),
		Goal:   s.goalProgress(current),
	}, nil
}

// goalProgress must be called with mu held.
func (s *Session) goalProgress(current float64) GoalProgress {
	start := s.profile.Weight
	if start <= 0 {
		start = current
	}
	goal, cardGoal := s.profile.DesiredWeight, s.profile.DesiredWeight
	if goal <= 0 {
		goal = start
		cardGoal = defaultCardGoalWeight
	}

	pct := calculator.GoalPercentage(start, current, goal)
	return GoalProgress{
		StartWeight:    start,
		CurrentWeight:  current,
		GoalWeight:     goal,
		Percent:        pct,
		Display:        calculator.DisplayPercentage(pct),
		CardGoalWeight: cardGoal,
		CardProgress:   calculator.WeightCardProgress(start, current, cardGoal),
	}
}

// BMI reports the BMI for the profile height and the current weight.
func (s *Session) BMI() calculator.BMIReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := calculator.CurrentWeight(s.weights.SortedAscending(), s.profile.Weight)
	return calculator.NewBMIReport(s.profile.Height, current)
}

// WeightHistory returns all observations in ascending date order.
func (s *Session) WeightHistory() []models.WeightObservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weights.SortedAscending()
}
