package session

import "errors"

// Input validation errors. Operations that return one of these leave the
// session unchanged.
var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidWeight     = errors.New("weight must be between 30 and 200 kg")
	ErrInvalidNutrition  = errors.New("nutrition values must be non-negative numbers")
	ErrInvalidProfile    = errors.New("invalid profile")
	ErrInvalidWeekOffset = errors.New("week offset out of range")
	ErrInvalidWindow     = errors.New("invalid trend window")
	ErrEmptyImage        = errors.New("image is empty")
	ErrEmptyMealName     = errors.New("meal name is required")
)

// ErrRecognitionFailed wraps every failure of the scan pipeline. The meal is
// not logged and the scan can be retried.
var ErrRecognitionFailed = errors.New("food recognition failed")
