package calculator

import (
	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
)

// BMI category names.
const (
	CategoryUnderweight = "Underweight"
	CategoryHealthy     = "Healthy"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// Gauge bounds: BMI values are clamped to this range before being mapped
// onto a 0-100 indicator position.
const (
	gaugeMinBMI = 15.0
	gaugeMaxBMI = 40.0
)

// BMIReport bundles everything needed to render a BMI card.
type BMIReport struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	Gauge    float64 `json:"gauge"` // 0-100 indicator position
}

// CurrentWeight returns the weight of the latest observation in an ascending
// history, falling back to the profile's starting weight when it is empty.
func CurrentWeight(sortedAscending []models.WeightObservation, profileWeight float64) float64 {
	if len(sortedAscending) == 0 {
		return profileWeight
	}
	return sortedAscending[len(sortedAscending)-1].Weight
}

// BMI computes weight / height(m)^2.
// It returns 0 when either input is zero or negative; 0 is a sentinel for
// "not enough profile data", not a real BMI.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	h := heightCm / 100.0
	return weightKg / (h * h)
}

// BMICategory maps a BMI value to its category name.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25.0:
		return CategoryHealthy
	case bmi < 30.0:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// BMIGaugePosition clamps bmi to [15,40] and maps it linearly onto [0,100].
func BMIGaugePosition(bmi float64) float64 {
	return clamp((bmi-gaugeMinBMI)/(gaugeMaxBMI-gaugeMinBMI)*100, 0, 100)
}

// NewBMIReport computes the full BMI report for a height and weight.
func NewBMIReport(heightCm, weightKg float64) BMIReport {
	bmi := BMI(heightCm, weightKg)
	return BMIReport{
		Value:    bmi,
		Category: BMICategory(bmi),
		Gauge:    BMIGaugePosition(bmi),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
