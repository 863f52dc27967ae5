package models

// Meal represents a single logged food item.
// A meal is immutable once it has been added to a DailyEntry.
type Meal struct {
	// ID is the unique identifier for the meal (UUID format).
	ID string `json:"id"`

	// Name is the dish name, e.g. "Vietnamese Beef Pho".
	Name string `json:"name"`

	// Description is optional free text; for scanned meals it holds the
	// recognition service's analysis.
	Description string `json:"description,omitempty"`

	// Image is a URI or data URL referencing the captured photo.
	Image string `json:"image,omitempty"`

	// Nutrition is the estimated nutrition for the whole meal.
	Nutrition NutritionInfo `json:"nutrition"`
}

// DailyEntry is one calendar day in the ledger.
//
// Consumed is the authoritative running total and always equals the
// element-wise sum of Nutrition over Meals. Meals are ordered newest first.
type DailyEntry struct {
	Consumed NutritionInfo `json:"consumed"`
	Meals    []Meal        `json:"meals"`
}
