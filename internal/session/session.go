// Package session owns the state of the single tracking session: profile,
// goals, the daily ledger and the weight history.
//
// All reads and writes are serialized by a mutex. Calls to the plan generator
// and the food recognizer are made without holding it; their results are
// applied to whatever state exists when they return.
package session

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/calculator"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/datekey"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/genai"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/ledger"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/weighthistory"
)

// PlanGenerator produces daily nutrition goals for a profile.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, profile models.UserProfile, age int) (models.NutritionInfo, error)
}

// FoodRecognizer identifies a dish from a photo and estimates its nutrition.
type FoodRecognizer interface {
	IdentifyDish(ctx context.Context, image []byte, mimeType string) (genai.DishAnalysis, error)
	EstimateNutrition(ctx context.Context, description string) (models.NutritionInfo, error)
}

// Options configures a Session. Nil fields get defaults: no planner or
// recognizer, time.Now and random UUIDs.
type Options struct {
	Planner    PlanGenerator
	Recognizer FoodRecognizer
	Now        func() time.Time
	NewID      func() string
}

// Session is the in-memory state of one user.
type Session struct {
	mu        sync.Mutex
	profile   models.UserProfile
	goals     models.NutritionInfo
	onboarded bool
	ledger    *ledger.Store
	weights   *weighthistory.Store

	planner    PlanGenerator
	recognizer FoodRecognizer
	now        func() time.Time
	newID      func() string
}

// New creates an empty, not yet onboarded session with the default goals.
func New(opts Options) *Session {
	s := &Session{
		goals:      models.DefaultPlan,
		ledger:     ledger.New(),
		weights:    weighthistory.New(),
		planner:    opts.Planner,
		recognizer: opts.Recognizer,
		now:        opts.Now,
		newID:      opts.NewID,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	return s
}

// Snapshot is the session-level state returned by GetSession.
type Snapshot struct {
	Onboarded bool                 `json:"onboarded"`
	Profile   models.UserProfile   `json:"profile"`
	Goals     models.NutritionInfo `json:"goals"`
	Today     string               `json:"today"`
}

// Snapshot returns the onboarding flag, profile and goals.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Onboarded: s.onboarded,
		Profile:   s.profile,
		Goals:     s.goals,
		Today:     datekey.Format(s.now()),
	}
}

// CompleteOnboarding stores the profile, restarts the weight history from the
// starting weight and generates the daily plan. Generation failures fall back
// to models.DefaultPlan; onboarding always completes.
func (s *Session) CompleteOnboarding(ctx context.Context, profile models.UserProfile) (models.NutritionInfo, error) {
	if err := validateProfile(profile); err != nil {
		return models.NutritionInfo{}, err
	}

	s.mu.Lock()
	now := s.now()
	s.profile = profile
	if profile.Weight > 0 {
		s.weights.Reset(models.WeightObservation{Date: datekey.Format(now), Weight: profile.Weight})
	}
	planner := s.planner
	s.mu.Unlock()

	goals := s.generatePlan(ctx, planner, profile, profile.Age(now.Year()))

	s.mu.Lock()
	s.goals = goals
	s.onboarded = true
	s.mu.Unlock()

	slog.Info("onboarding completed", "goal", profile.Goal, "calories", goals.Calories)
	return goals, nil
}

func (s *Session) generatePlan(ctx context.Context, planner PlanGenerator, profile models.UserProfile, age int) models.NutritionInfo {
	if planner == nil {
		planFallbacks.Inc()
		slog.Warn("no plan generator configured, using default plan")
		return models.DefaultPlan
	}

	goals, err := planner.GeneratePlan(ctx, profile, age)
	if err == nil && !goals.IsValid() {
		err = fmt.Errorf("plan out of range: %+v", goals)
	}
	if err != nil {
		planFallbacks.Inc()
		slog.Warn("plan generation failed, using default plan", "error", err)
		return models.DefaultPlan
	}
	return goals
}

func validateProfile(p models.UserProfile) error {
	for name, v := range map[string]float64{"height": p.Height, "weight": p.Weight, "desiredWeight": p.DesiredWeight} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidProfile, name)
		}
	}
	return nil
}

// DayView is one ledger day compared against the current goals.
type DayView struct {
	Date     string                   `json:"date"`
	Entry    models.DailyEntry        `json:"entry"`
	Goals    models.NutritionInfo     `json:"goals"`
	Progress calculator.DailyProgress `json:"progress"`
}

// Day returns the ledger entry for date ("" means today). Reading a day
// never creates an entry.
func (s *Session) Day(date string) (DayView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.resolveDate(date)
	if err != nil {
		return DayView{}, err
	}
	return s.dayView(key), nil
}

// dayView must be called with mu held.
func (s *Session) dayView(key string) DayView {
	entry := s.ledger.Get(key)
	return DayView{
		Date:     key,
		Entry:    entry,
		Goals:    s.goals,
		Progress: calculator.NewDailyProgress(entry.Consumed, s.goals),
	}
}

// LoggedMeal is a meal together with the updated day it was logged on.
type LoggedMeal struct {
	Meal models.Meal `json:"meal"`
	Day  DayView     `json:"day"`
}

// MealInput is a manually entered meal.
type MealInput struct {
	Name        string
	Description string
	Image       string
	Nutrition   models.NutritionInfo
}

// AddMeal logs a manually entered meal on date ("" means today).
func (s *Session) AddMeal(date string, in MealInput) (LoggedMeal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return LoggedMeal{}, ErrEmptyMealName
	}
	if !in.Nutrition.IsValid() {
		return LoggedMeal{}, ErrInvalidNutrition
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.resolveDate(date)
	if err != nil {
		return LoggedMeal{}, err
	}

	meal := models.Meal{
		ID:          s.newID(),
		Name:        name,
		Description: in.Description,
		Image:       in.Image,
		Nutrition:   in.Nutrition,
	}
	s.ledger.AddMeal(key, meal)
	mealsLogged.WithLabelValues(sourceManual).Inc()
	return LoggedMeal{Meal: meal, Day: s.dayView(key)}, nil
}

// ScanMeal identifies the dish in image, estimates its nutrition and logs it
// on date ("" means today). Any failure leaves the ledger unchanged and is
// reported wrapped in ErrRecognitionFailed.
func (s *Session) ScanMeal(ctx context.Context, date string, image []byte, mimeType string) (LoggedMeal, error) {
	if len(image) == 0 {
		return LoggedMeal{}, ErrEmptyImage
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	s.mu.Lock()
	key, err := s.resolveDate(date)
	recognizer := s.recognizer
	s.mu.Unlock()
	if err != nil {
		return LoggedMeal{}, err
	}
	if recognizer == nil {
		return LoggedMeal{}, fmt.Errorf("%w: %w", ErrRecognitionFailed, genai.ErrNotConfigured)
	}

	dish, err := recognizer.IdentifyDish(ctx, image, mimeType)
	recognitionCalls.WithLabelValues("identify", outcome(err)).Inc()
	if err != nil {
		return LoggedMeal{}, fmt.Errorf("%w: %w", ErrRecognitionFailed, err)
	}

	nutrition, err := recognizer.EstimateNutrition(ctx, dish.DishName)
	if err == nil && !nutrition.IsValid() {
		err = fmt.Errorf("estimate out of range: %+v", nutrition)
	}
	recognitionCalls.WithLabelValues("estimate", outcome(err)).Inc()
	if err != nil {
		return LoggedMeal{}, fmt.Errorf("%w: %w", ErrRecognitionFailed, err)
	}

	// A cancelled request must not log the meal even if both calls returned.
	if err := ctx.Err(); err != nil {
		return LoggedMeal{}, fmt.Errorf("%w: %w", ErrRecognitionFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	meal := models.Meal{
		ID:          s.newID(),
		Name:        dish.DishName,
		Description: dish.Analysis,
		Image:       "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image),
		Nutrition:   nutrition,
	}
	s.ledger.AddMeal(key, meal)
	mealsLogged.WithLabelValues(sourceScan).Inc()
	return LoggedMeal{Meal: meal, Day: s.dayView(key)}, nil
}

// Bounds of a recorded weigh-in, in kilograms.
const (
	minRecordedWeight = 30.0
	maxRecordedWeight = 200.0
)

// RecordWeight records weight for date ("" means today), replacing any
// earlier observation for that date. Weights outside 30-200 kg are rejected.
func (s *Session) RecordWeight(date string, weight float64) (models.WeightObservation, error) {
	// NaN fails both comparisons
	if !(weight >= minRecordedWeight && weight <= maxRecordedWeight) {
		return models.WeightObservation{}, ErrInvalidWeight
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.resolveDate(date)
	if err != nil {
		return models.WeightObservation{}, err
	}
	s.weights.Record(key, weight)
	weightsRecorded.Inc()
	return models.WeightObservation{Date: key, Weight: weight}, nil
}

// resolveDate must be called with mu held.
func (s *Session) resolveDate(date string) (string, error) {
	if date == "" {
		return datekey.Format(s.now()), nil
	}
	if !datekey.Valid(date) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return date, nil
}
