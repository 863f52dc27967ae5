// Package models defines the core domain models for the calorie tracker.
//
// # Models
//
//   - NutritionInfo: calories (kcal) and macros (grams) for a meal, a day, or a goal
//   - Meal: one logged food item, created by a scan or a manual add
//   - DailyEntry: one calendar day's running total and meal log
//   - WeightObservation: a single body-weight reading keyed by calendar day
//   - UserProfile: personal metrics collected at onboarding
//
// # Design Principles
//
// 1. **Values, not behavior**: models carry data; aggregation lives in ledger,
// weighthistory and calculator
// 2. **Date keys as strings**: every day-keyed record uses the canonical
// YYYY-MM-DD local-calendar key from package datekey
// 3. **No cross references**: the ledger and the weight history never point into
// each other
package models
