package models

// WeightObservation is one body-weight reading.
// There is at most one observation per calendar date.
type WeightObservation struct {
	// Date is the canonical YYYY-MM-DD key of the local calendar day.
	Date string `json:"date"`

	// Weight is in kilograms.
	Weight float64 `json:"weight"`
}
