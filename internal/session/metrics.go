package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mealsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calorie_tracker_meals_logged_total",
		Help: "Meals added to the ledger by source",
	}, []string{"source"})

	recognitionCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calorie_tracker_recognition_total",
		Help: "Food recognition attempts by step and outcome",
	}, []string{"step", "outcome"})

	planFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "calorie_tracker_plan_fallbacks_total",
		Help: "Onboardings that used the default plan because generation failed",
	})

	weightsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "calorie_tracker_weights_recorded_total",
		Help: "Weight observations recorded",
	})
)

const (
	sourceManual = "manual"
	sourceScan   = "scan"
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
