// Package ledger provides the daily nutrition ledger: a mapping from calendar
// date key to that day's consumed totals and meal log.
package ledger

import (
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
)

// Store holds every DailyEntry keyed by YYYY-MM-DD date.
//
// Store is not safe for concurrent use; callers serialize access.
type Store struct {
	entries map[string]*models.DailyEntry
}

// New creates an empty ledger.
func New() *Store {
	return &Store{entries: make(map[string]*models.DailyEntry)}
}

// Get returns the entry for date, or the zero entry if nothing was logged.
// It never creates a record. The returned meals slice is a copy.
func (s *Store) Get(date string) models.DailyEntry {
	entry, ok := s.entries[date]
	if !ok {
		return models.DailyEntry{Meals: []models.Meal{}}
	}
	meals := make([]models.Meal, len(entry.Meals))
	copy(meals, entry.Meals)
	return models.DailyEntry{Consumed: entry.Consumed, Meals: meals}
}

// AddMeal puts meal at the front of date's meal log and adds its nutrition
// into the day's running total, creating the entry if needed.
func (s *Store) AddMeal(date string, meal models.Meal) {
	entry, ok := s.entries[date]
	if !ok {
		entry = &models.DailyEntry{}
		s.entries[date] = entry
	}

	entry.Consumed = entry.Consumed.Add(meal.Nutrition)

	meals := make([]models.Meal, 0, len(entry.Meals)+1)
	meals = append(meals, meal)
	entry.Meals = append(meals, entry.Meals...)
}

// Consumed returns the running total for date, zero if nothing was logged.
func (s *Store) Consumed(date string) models.NutritionInfo {
	if entry, ok := s.entries[date]; ok {
		return entry.Consumed
	}
	return models.NutritionInfo{}
}

// Has reports whether date has an entry, regardless of its totals.
func (s *Store) Has(date string) bool {
	_, ok := s.entries[date]
	return ok
}

// DatesWithEntries returns the set of logged date keys.
func (s *Store) DatesWithEntries() map[string]struct{} {
	dates := make(map[string]struct{}, len(s.entries))
	for date := range s.entries {
		dates[date] = struct{}{}
	}
	return dates
}

// Len returns the number of logged days.
func (s *Store) Len() int {
	return len(s.entries)
}
