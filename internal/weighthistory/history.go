// Package weighthistory stores body-weight observations, at most one per
// calendar date.
package weighthistory

import (
	"math"
	"sort"
	"time"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/datekey"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
)

// Store keeps observations in insertion order.
// Consumers needing chronology use SortedAscending or Latest.
//
// Store is not safe for concurrent use; callers serialize access.
type Store struct {
	observations []models.WeightObservation
}

// New creates an empty weight history.
func New() *Store {
	return &Store{}
}

// Record sets the weight for date. An existing observation for the same date
// is overwritten in place; otherwise a new one is appended.
func (s *Store) Record(date string, weight float64) {
	for i := range s.observations {
		if s.observations[i].Date == date {
			s.observations[i].Weight = weight
			return
		}
	}
	s.observations = append(s.observations, models.WeightObservation{Date: date, Weight: weight})
}

// Reset replaces the whole history with the given observations.
func (s *Store) Reset(observations ...models.WeightObservation) {
	s.observations = s.observations[:0]
	for _, o := range observations {
		s.Record(o.Date, o.Weight)
	}
}

// All returns every observation in insertion order, malformed ones included.
func (s *Store) All() []models.WeightObservation {
	out := make([]models.WeightObservation, len(s.observations))
	copy(out, s.observations)
	return out
}

// Len returns the number of stored observations.
func (s *Store) Len() int {
	return len(s.observations)
}

// Latest returns the valid observation with the greatest date.
// ok is false when there is none.
func (s *Store) Latest() (obs models.WeightObservation, ok bool) {
	sorted := s.SortedAscending()
	if len(sorted) == 0 {
		return models.WeightObservation{}, false
	}
	return sorted[len(sorted)-1], true
}

// SortedAscending returns the valid observations ordered by date, oldest first.
// Observations with an unparseable date or a non-finite, non-positive weight
// are dropped.
func (s *Store) SortedAscending() []models.WeightObservation {
	type dated struct {
		obs models.WeightObservation
		day time.Time
	}

	valid := make([]dated, 0, len(s.observations))
	for _, o := range s.observations {
		day, err := datekey.Parse(o.Date)
		if err != nil {
			continue
		}
		if math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) || o.Weight <= 0 {
			continue
		}
		valid = append(valid, dated{obs: o, day: day})
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].day.Before(valid[j].day)
	})

	out := make([]models.WeightObservation, len(valid))
	for i, d := range valid {
		out[i] = d.obs
	}
	return out
}
