package service

import (
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/calculator"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/session"
)

// Request and response messages of calorietracker.v1.TrackerService.
// Dates are YYYY-MM-DD; an empty date means today.

type CompleteOnboardingRequest struct {
	Profile models.UserProfile `json:"profile"`
}

type CompleteOnboardingResponse struct {
	Goals   models.NutritionInfo `json:"goals"`
	Session session.Snapshot     `json:"session"`
}

type GetSessionRequest struct{}

type GetSessionResponse struct {
	Session session.Snapshot `json:"session"`
}

type GetDayRequest struct {
	Date string `json:"date,omitempty"`
}

type GetDayResponse struct {
	Day session.DayView `json:"day"`
}

type AddMealRequest struct {
	Date        string               `json:"date,omitempty"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Image       string               `json:"image,omitempty"`
	Nutrition   models.NutritionInfo `json:"nutrition"`
}

type AddMealResponse struct {
	Meal models.Meal     `json:"meal"`
	Day  session.DayView `json:"day"`
}

// ScanMealRequest carries the photo as base64 in JSON.
type ScanMealRequest struct {
	Date     string `json:"date,omitempty"`
	Image    []byte `json:"image"`
	MimeType string `json:"mimeType,omitempty"`
}

type ScanMealResponse struct {
	Meal models.Meal     `json:"meal"`
	Day  session.DayView `json:"day"`
}

type RecordWeightRequest struct {
	Date   string  `json:"date,omitempty"`
	Weight float64 `json:"weight"`
}

type RecordWeightResponse struct {
	Observation models.WeightObservation   `json:"observation"`
	History     []models.WeightObservation `json:"history"`
}

// GetProgressRequest selects the calorie week and the trend window. WeekLabel
// ("This week", "Last week", ...) takes precedence over WeekOffset.
type GetProgressRequest struct {
	WeekOffset int    `json:"weekOffset,omitempty"`
	WeekLabel  string `json:"weekLabel,omitempty"`
	Window     string `json:"window,omitempty"`
}

type GetProgressResponse struct {
	Progress session.Progress `json:"progress"`
}

type GetBMIRequest struct{}

type GetBMIResponse struct {
	BMI calculator.BMIReport `json:"bmi"`
}
