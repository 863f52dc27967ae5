package models

// Gender values collected during onboarding.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Goal values collected during onboarding.
const (
	GoalLoseWeight = "Lose weight"
	GoalMaintain   = "Maintain"
	GoalGainWeight = "Gain weight"
)

// BirthDate is the date of birth as entered in the onboarding wizard.
type BirthDate struct {
	Month string `json:"month"`
	Day   int    `json:"day"`
	Year  int    `json:"year"`
}

// UserProfile holds the personal metrics collected at onboarding.
// It is replaced wholesale, never patched field by field.
type UserProfile struct {
	// Height is in centimeters. Zero means unknown.
	Height float64 `json:"height,omitempty"`

	// Weight is the starting weight in kilograms. Zero means unknown.
	Weight float64 `json:"weight,omitempty"`

	// DesiredWeight is the goal weight in kilograms. Zero means unknown.
	DesiredWeight float64 `json:"desiredWeight,omitempty"`

	Gender          string     `json:"gender,omitempty"`
	Goal            string     `json:"goal,omitempty"`
	BirthDate       *BirthDate `json:"birthDate,omitempty"`
	WorkoutsPerWeek string     `json:"workoutsPerWeek,omitempty"`
	Diet            string     `json:"diet,omitempty"`

	// Extra carries any additional wizard answers verbatim.
	Extra map[string]string `json:"extra,omitempty"`
}

// Age returns the age in years derived from the birth year alone,
// or 30 when no birth date was given.
func (p UserProfile) Age(currentYear int) int {
	if p.BirthDate == nil || p.BirthDate.Year == 0 {
		return 30
	}
	return currentYear - p.BirthDate.Year
}
