package genai

import (
	"fmt"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
)

func planPrompt(p models.UserProfile, age int) string {
	diet := p.Diet
	if diet == "" {
		diet = "None"
	}

	return fmt.Sprintf(`As an expert nutritionist AI, create a daily nutritional plan for a user with the following profile.

User Profile:
- Goal: %s
- Gender: %s
- Current Weight: %g kg
- Height: %g cm
- Age: %d
- Workouts per week: %s
- Desired Weight: %g kg
- Diet preference: %s

Your calculation should follow these steps:
1. Calculate the user's Basal Metabolic Rate (BMR) using a suitable formula like the Mifflin-St Jeor equation.
2. Determine the Total Daily Energy Expenditure (TDEE) by applying an appropriate activity multiplier based on their weekly workouts (e.g., Sedentary=1.2, Lightly active=1.375, Moderately active=1.55, Very active=1.725).
3. Adjust the TDEE based on their goal:
    - For 'Lose weight', create a safe caloric deficit of approximately 500 calories, but do not go below 1200 calories for women or 1500 for men.
    - For 'Gain weight', create a caloric surplus of approximately 300-500 calories.
    - For 'Maintain', keep the calories close to the TDEE.
4. Distribute the final calorie count into macronutrients (protein, carbs, fat) in grams. Aim for a balanced distribution (e.g., 40%% carbs, 30%% protein, 30%% fat), but consider the user's diet preference if specified (e.g., higher fat for Keto).

Return the answer ONLY as a valid JSON object with the following keys: "calories", "protein", "carbs", "fat". The values must be integers.
Example: {
  "calories": 2100,
  "protein": 150,
  "carbs": 200,
  "fat": 70
}`, p.Goal, p.Gender, p.Weight, p.Height, age, p.WorkoutsPerWeek, p.DesiredWeight, diet)
}
