package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/calculator"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/genai"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
)

var fixedNow = time.Date(2024, time.March, 13, 12, 0, 0, 0, time.Local)

const today = "2024-03-13"

type fakePlanner struct {
	goals   models.NutritionInfo
	err     error
	gotAge  int
	gotGoal string
}

func (f *fakePlanner) GeneratePlan(_ context.Context, p models.UserProfile, age int) (models.NutritionInfo, error) {
	f.gotAge = age
	f.gotGoal = p.Goal
	return f.goals, f.err
}

type fakeRecognizer struct {
	dish         genai.DishAnalysis
	identifyErr  error
	nutrition    models.NutritionInfo
	estimateErr  error
	estimateCall int
}

func (f *fakeRecognizer) IdentifyDish(context.Context, []byte, string) (genai.DishAnalysis, error) {
	return f.dish, f.identifyErr
}

func (f *fakeRecognizer) EstimateNutrition(_ context.Context, description string) (models.NutritionInfo, error) {
	f.estimateCall++
	return f.nutrition, f.estimateErr
}

func newTestSession(opts Options) *Session {
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	if opts.NewID == nil {
		var mu sync.Mutex
		n := 0
		opts.NewID = func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("meal-%d", n)
		}
	}
	return New(opts)
}

func testProfile() models.UserProfile {
	return models.UserProfile{
		Height:        173,
		Weight:        90,
		DesiredWeight: 80,
		Gender:        models.GenderMale,
		Goal:          models.GoalLoseWeight,
		BirthDate:     &models.BirthDate{Month: "May", Day: 4, Year: 1990},
	}
}

func TestNew(t *testing.T) {
	s := newTestSession(Options{})
	snap := s.Snapshot()
	if snap.Onboarded {
		t.Error("new session is onboarded")
	}
	if snap.Goals != models.DefaultPlan {
		t.Errorf("Goals = %+v, want default plan", snap.Goals)
	}
	if snap.Today != today {
		t.Errorf("Today = %s, want %s", snap.Today, today)
	}
}

func TestCompleteOnboarding(t *testing.T) {
	planned := models.NutritionInfo{Calories: 2197, Protein: 165, Carbs: 220, Fat: 73}
	planner := &fakePlanner{goals: planned}
	s := newTestSession(Options{Planner: planner})

	if _, err := s.RecordWeight("2024-03-01", 95); err != nil {
		t.Fatalf("RecordWeight: %v", err)
	}

	goals, err := s.CompleteOnboarding(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}
	if goals != planned {
		t.Errorf("goals = %+v, want %+v", goals, planned)
	}
	if planner.gotAge != 34 {
		t.Errorf("planner age = %d, want 34", planner.gotAge)
	}

	snap := s.Snapshot()
	if !snap.Onboarded || snap.Goals != planned || snap.Profile.Height != 173 {
		t.Errorf("snapshot = %+v", snap)
	}

	history := s.WeightHistory()
	if len(history) != 1 || history[0].Date != today || history[0].Weight != 90 {
		t.Errorf("history = %+v, want single starting observation for today", history)
	}
}

func TestCompleteOnboarding_PlanFallback(t *testing.T) {
	tests := []struct {
		name    string
		planner PlanGenerator
	}{
		{"generator error", &fakePlanner{err: errors.New("model overloaded")}},
		{"negative plan", &fakePlanner{goals: models.NutritionInfo{Calories: -100}}},
		{"no generator", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(Options{Planner: tt.planner})

			goals, err := s.CompleteOnboarding(context.Background(), testProfile())
			if err != nil {
				t.Fatalf("CompleteOnboarding: %v", err)
			}
			want := models.NutritionInfo{Calories: 2000, Protein: 150, Carbs: 200, Fat: 65}
			if goals != want {
				t.Errorf("goals = %+v, want %+v", goals, want)
			}
			if !s.Snapshot().Onboarded {
				t.Error("onboarding not marked complete")
			}
		})
	}
}

func TestCompleteOnboarding_InvalidProfile(t *testing.T) {
	s := newTestSession(Options{Planner: &fakePlanner{goals: models.DefaultPlan}})

	p := testProfile()
	p.Height = -10
	if _, err := s.CompleteOnboarding(context.Background(), p); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("err = %v, want ErrInvalidProfile", err)
	}
	if s.Snapshot().Onboarded {
		t.Error("invalid profile completed onboarding")
	}
}

func TestCompleteOnboarding_NoStartingWeight(t *testing.T) {
	s := newTestSession(Options{})
	if _, err := s.RecordWeight("2024-03-01", 95); err != nil {
		t.Fatal(err)
	}

	p := testProfile()
	p.Weight = 0
	if _, err := s.CompleteOnboarding(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if got := len(s.WeightHistory()); got != 1 {
		t.Errorf("history length = %d, want existing observation kept", got)
	}
}

func TestAddMeal(t *testing.T) {
	s := newTestSession(Options{})

	n := models.NutritionInfo{Calories: 500, Protein: 30, Carbs: 40, Fat: 10}
	logged, err := s.AddMeal("2024-01-01", MealInput{Name: "Oatmeal", Nutrition: n})
	if err != nil {
		t.Fatalf("AddMeal: %v", err)
	}
	if logged.Meal.ID != "meal-1" || logged.Day.Date != "2024-01-01" {
		t.Errorf("logged = %+v", logged)
	}

	day, err := s.Day("2024-01-01")
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if day.Entry.Consumed != n {
		t.Errorf("Consumed = %+v, want %+v", day.Entry.Consumed, n)
	}
	if len(day.Entry.Meals) != 1 || day.Entry.Meals[0].Name != "Oatmeal" {
		t.Errorf("Meals = %+v", day.Entry.Meals)
	}
	if day.Progress.Calories.Remaining != 1500 {
		t.Errorf("remaining calories = %v, want 1500", day.Progress.Calories.Remaining)
	}
}

func TestAddMeal_DefaultsToToday(t *testing.T) {
	s := newTestSession(Options{})

	logged, err := s.AddMeal("", MealInput{Name: "Apple", Nutrition: models.NutritionInfo{Calories: 95}})
	if err != nil {
		t.Fatal(err)
	}
	if logged.Day.Date != today {
		t.Errorf("date = %s, want %s", logged.Day.Date, today)
	}
}

func TestAddMeal_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		in      MealInput
		wantErr error
	}{
		{"negative calories", "", MealInput{Name: "x", Nutrition: models.NutritionInfo{Calories: -1}}, ErrInvalidNutrition},
		{"bad date", "2024-1-5", MealInput{Name: "x"}, ErrInvalidDate},
		{"empty name", "", MealInput{Name: "  "}, ErrEmptyMealName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(Options{})
			if _, err := s.AddMeal(tt.date, tt.in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if s.ledger.Len() != 0 {
				t.Error("rejected meal mutated the ledger")
			}
		})
	}
}

func TestDay_ReadHasNoSideEffect(t *testing.T) {
	s := newTestSession(Options{})

	for i := 0; i < 2; i++ {
		day, err := s.Day("2024-02-02")
		if err != nil {
			t.Fatal(err)
		}
		if day.Entry.Consumed != (models.NutritionInfo{}) || len(day.Entry.Meals) != 0 {
			t.Errorf("empty day = %+v", day.Entry)
		}
	}
	if s.ledger.Len() != 0 {
		t.Error("reading a day created an entry")
	}
}

func TestScanMeal(t *testing.T) {
	rec := &fakeRecognizer{
		dish:      genai.DishAnalysis{DishName: "Vietnamese Beef Pho", Analysis: "Clear broth"},
		nutrition: models.NutritionInfo{Calories: 450, Protein: 25, Carbs: 55, Fat: 12},
	}
	s := newTestSession(Options{Recognizer: rec})

	logged, err := s.ScanMeal(context.Background(), "", []byte("img"), "image/png")
	if err != nil {
		t.Fatalf("ScanMeal: %v", err)
	}

	m := logged.Meal
	if m.Name != "Vietnamese Beef Pho" || m.Description != "Clear broth" {
		t.Errorf("meal = %+v", m)
	}
	if m.Image != "data:image/png;base64,aW1n" {
		t.Errorf("Image = %q", m.Image)
	}
	if logged.Day.Date != today || logged.Day.Entry.Consumed.Calories != 450 {
		t.Errorf("day = %+v", logged.Day)
	}
}

func TestScanMeal_FailureLeavesLedgerUnchanged(t *testing.T) {
	dish := genai.DishAnalysis{DishName: "Pho"}
	nutrition := models.NutritionInfo{Calories: 450}

	tests := []struct {
		name         string
		rec          *fakeRecognizer
		ctx          func() context.Context
		wantCause    error
		wantEstimate int
	}{
		{
			name:      "identify fails",
			rec:       &fakeRecognizer{identifyErr: genai.ErrMalformedResponse},
			wantCause: genai.ErrMalformedResponse,
		},
		{
			name:         "estimate fails",
			rec:          &fakeRecognizer{dish: dish, estimateErr: genai.ErrMalformedResponse},
			wantCause:    genai.ErrMalformedResponse,
			wantEstimate: 1,
		},
		{
			name:         "estimate out of range",
			rec:          &fakeRecognizer{dish: dish, nutrition: models.NutritionInfo{Fat: -3}},
			wantEstimate: 1,
		},
		{
			name: "request cancelled",
			rec:  &fakeRecognizer{dish: dish, nutrition: nutrition},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			wantCause:    context.Canceled,
			wantEstimate: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(Options{Recognizer: tt.rec})
			if _, err := s.AddMeal(today, MealInput{Name: "Toast", Nutrition: models.NutritionInfo{Calories: 100}}); err != nil {
				t.Fatal(err)
			}

			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			_, err := s.ScanMeal(ctx, today, []byte("img"), "image/jpeg")
			if !errors.Is(err, ErrRecognitionFailed) {
				t.Fatalf("err = %v, want ErrRecognitionFailed", err)
			}
			if tt.wantCause != nil && !errors.Is(err, tt.wantCause) {
				t.Errorf("err = %v, want cause %v", err, tt.wantCause)
			}
			if tt.rec.estimateCall != tt.wantEstimate {
				t.Errorf("estimate calls = %d, want %d", tt.rec.estimateCall, tt.wantEstimate)
			}

			day, _ := s.Day(today)
			if len(day.Entry.Meals) != 1 || day.Entry.Consumed.Calories != 100 {
				t.Errorf("ledger changed after failed scan: %+v", day.Entry)
			}
		})
	}
}

func TestScanMeal_InputErrors(t *testing.T) {
	s := newTestSession(Options{})

	if _, err := s.ScanMeal(context.Background(), "", nil, "image/jpeg"); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty image err = %v", err)
	}
	if _, err := s.ScanMeal(context.Background(), "", []byte("x"), ""); !errors.Is(err, genai.ErrNotConfigured) {
		t.Errorf("no recognizer err = %v, want ErrNotConfigured", err)
	}
	if _, err := s.ScanMeal(context.Background(), "13/03/2024", []byte("x"), ""); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("bad date err = %v", err)
	}
}

func TestRecordWeight(t *testing.T) {
	s := newTestSession(Options{})

	if _, err := s.RecordWeight("2024-03-01", 80); err != nil {
		t.Fatal(err)
	}
	obs, err := s.RecordWeight("2024-03-01", 79.5)
	if err != nil {
		t.Fatal(err)
	}
	if obs.Date != "2024-03-01" || obs.Weight != 79.5 {
		t.Errorf("obs = %+v", obs)
	}

	history := s.WeightHistory()
	if len(history) != 1 || history[0].Weight != 79.5 {
		t.Errorf("history = %+v, want one observation of 79.5", history)
	}

	for _, w := range []float64{0, -1, 29.9, 200.1, math.NaN(), math.Inf(1)} {
		if _, err := s.RecordWeight("", w); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("RecordWeight(%v) err = %v, want ErrInvalidWeight", w, err)
		}
	}
	if got := len(s.WeightHistory()); got != 1 {
		t.Errorf("rejected weights changed history: %d observations", got)
	}

	for _, w := range []float64{30, 200} {
		if _, err := s.RecordWeight("2024-03-02", w); err != nil {
			t.Errorf("RecordWeight(%v) at bound: %v", w, err)
		}
	}
}

func TestProgress(t *testing.T) {
	s := newTestSession(Options{Planner: &fakePlanner{goals: models.DefaultPlan}})
	if _, err := s.CompleteOnboarding(context.Background(), testProfile()); err != nil {
		t.Fatal(err)
	}

	// today's onboarding observation is replaced by the latest weigh-in
	if _, err := s.RecordWeight("2024-02-01", 90); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordWeight(today, 87.7); err != nil {
		t.Fatal(err)
	}
	for _, date := range []string{today, "2024-03-12", "2024-03-05"} {
		if _, err := s.AddMeal(date, MealInput{Name: "Rice", Nutrition: models.NutritionInfo{Calories: 600, Carbs: 130}}); err != nil {
			t.Fatal(err)
		}
	}

	p, err := s.Progress(ProgressQuery{WeekLabel: "Last week", Window: "90 Days"})
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}

	if p.CurrentWeight != 87.7 {
		t.Errorf("CurrentWeight = %v, want 87.7", p.CurrentWeight)
	}
	if p.BMI.Category != calculator.CategoryOverweight {
		t.Errorf("BMI = %+v", p.BMI)
	}
	if p.Streak.Days != 2 {
		t.Errorf("Streak = %d, want 2", p.Streak.Days)
	}
	if p.Week.Offset != 1 || p.Week.TotalCalories != 600 || p.Week.ScaleMax != 1000 {
		t.Errorf("Week = %+v", p.Week)
	}
	if !p.Trend.Sufficient || len(p.Trend.Points) != 2 {
		t.Errorf("Trend = %+v", p.Trend)
	}
	if p.Goal.Display != 23 || p.Goal.GoalWeight != 80 {
		t.Errorf("Goal = %+v", p.Goal)
	}
}

func TestProgress_Defaults(t *testing.T) {
	s := newTestSession(Options{})

	p, err := s.Progress(ProgressQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Window != calculator.Window90Days {
		t.Errorf("Window = %s, want 90 Days", p.Window)
	}
	if p.BMI.Value != 0 || p.Trend.Sufficient || p.Streak.Days != 0 {
		t.Errorf("empty session progress = %+v", p)
	}
	// without a profile start, current and goal are all 0: trivially met
	if p.Goal.GoalWeight != 0 || p.Goal.StartWeight != 0 || p.Goal.Display != 100 {
		t.Errorf("Goal = %+v", p.Goal)
	}
	if p.Goal.CardGoalWeight != 80 || p.Goal.CardProgress != 0 {
		t.Errorf("weight card = %+v", p.Goal)
	}
}

func TestProgress_NoDesiredWeight(t *testing.T) {
	s := newTestSession(Options{})

	profile := testProfile()
	profile.DesiredWeight = 0
	if _, err := s.CompleteOnboarding(context.Background(), profile); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordWeight("2024-03-01", 90); err != nil {
		t.Fatal(err)
	}

	p, err := s.Progress(ProgressQuery{})
	if err != nil {
		t.Fatal(err)
	}

	// goal falls back to the start weight, which has not moved
	if p.Goal.GoalWeight != 90 || p.Goal.Percent != 100 || p.Goal.Display != 100 {
		t.Errorf("Goal = %+v, want goal 90 at 100%%", p.Goal)
	}
	if p.Goal.CardGoalWeight != 80 || p.Goal.CardProgress != 0 {
		t.Errorf("weight card = %+v, want goal 80 with no progress", p.Goal)
	}

	if _, err := s.RecordWeight(today, 85); err != nil {
		t.Fatal(err)
	}
	p, err = s.Progress(ProgressQuery{})
	if err != nil {
		t.Fatal(err)
	}
	// start equals goal but the weight moved
	if p.Goal.Display != 0 || p.Goal.CardProgress != 50 {
		t.Errorf("Goal = %+v, want display 0 and card 50", p.Goal)
	}
}

func TestProgress_InvalidQuery(t *testing.T) {
	s := newTestSession(Options{})

	for _, offset := range []int{-1, maxWeekOffset + 1, math.MaxInt / 7} {
		if _, err := s.Progress(ProgressQuery{WeekOffset: offset}); !errors.Is(err, ErrInvalidWeekOffset) {
			t.Errorf("offset %d: err = %v, want ErrInvalidWeekOffset", offset, err)
		}
	}
	if _, err := s.Progress(ProgressQuery{WeekOffset: maxWeekOffset}); err != nil {
		t.Errorf("offset %d: %v", maxWeekOffset, err)
	}
	_, err := s.Progress(ProgressQuery{Window: "2 Weeks"})
	if !errors.Is(err, ErrInvalidWindow) || !strings.Contains(err.Error(), "2 Weeks") {
		t.Errorf("err = %v, want ErrInvalidWindow", err)
	}
}

func TestConcurrentAddMeal(t *testing.T) {
	s := newTestSession(Options{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddMeal(today, MealInput{Name: "Snack", Nutrition: models.NutritionInfo{Calories: 10, Protein: 1}})
		}()
	}
	wg.Wait()

	day, _ := s.Day(today)
	if len(day.Entry.Meals) != 50 || day.Entry.Consumed.Calories != 500 || day.Entry.Consumed.Protein != 50 {
		t.Errorf("after concurrent adds: %d meals, consumed %+v", len(day.Entry.Meals), day.Entry.Consumed)
	}
}
