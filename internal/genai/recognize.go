package genai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/models"
)

// DishAnalysis is the result of identifying a dish from an image.
type DishAnalysis struct {
	DishName string `json:"dishName"`
	Analysis string `json:"analysis"`
}

const identifyPrompt = `You are a world-class culinary expert with deep knowledge of global cuisines. Your task is to precisely identify the dish in this image. Analyze all visual elements meticulously: main ingredients, side components, sauces, textures, colors, and the preparation method (e.g., fried, braised, stewed). Pay close attention to details that might indicate a specific regional or cultural origin.

Provide the most specific and accurate name for the dish. For instance, if you see a noodle soup, don't just say 'noodle soup'; identify it as 'Vietnamese Beef Pho' or 'Japanese Tonkotsu Ramen' if the evidence supports it.

Return your answer ONLY in a valid JSON format with two keys: "dishName" (a string with the most specific name) and "analysis" (a detailed string breakdown of your reasoning).`

var dishSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"dishName": {Type: "STRING", Description: "The most specific and accurate name for the dish."},
		"analysis": {Type: "STRING", Description: "A detailed breakdown of the culinary analysis."},
	},
	Required: []string{"dishName", "analysis"},
}

var nutritionSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"calories": {Type: "NUMBER"},
		"protein":  {Type: "NUMBER"},
		"carbs":    {Type: "NUMBER"},
		"fat":      {Type: "NUMBER"},
	},
	Required: []string{"calories", "protein", "carbs", "fat"},
}

// IdentifyDish asks the model to name the dish shown in image.
func (c *Client) IdentifyDish(ctx context.Context, image []byte, mimeType string) (DishAnalysis, error) {
	parts := []part{
		{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
		{Text: identifyPrompt},
	}

	text, err := c.generate(ctx, parts, dishSchema)
	if err != nil {
		return DishAnalysis{}, fmt.Errorf("identify dish: %w", err)
	}

	var dish DishAnalysis
	if err := decodeJSON(text, &dish); err != nil {
		return DishAnalysis{}, fmt.Errorf("identify dish: %w", err)
	}
	dish.DishName = strings.TrimSpace(dish.DishName)
	if dish.DishName == "" {
		return DishAnalysis{}, fmt.Errorf("identify dish: %w: empty dish name", ErrMalformedResponse)
	}
	return dish, nil
}

// EstimateNutrition asks the model for the nutrition of a described food.
func (c *Client) EstimateNutrition(ctx context.Context, description string) (models.NutritionInfo, error) {
	prompt := fmt.Sprintf(`You are a nutrition analysis expert. For the food item "%s", provide a detailed and accurate nutritional breakdown. Estimate the serving size from the description if not provided. Return the answer ONLY in a valid JSON format with keys for "calories", "protein", "carbs", and "fat". All values must be integers.`, description)

	n, err := c.nutrition(ctx, prompt)
	if err != nil {
		return models.NutritionInfo{}, fmt.Errorf("estimate nutrition: %w", err)
	}
	return n, nil
}

// GeneratePlan asks the model for daily nutrition goals for a profile.
func (c *Client) GeneratePlan(ctx context.Context, profile models.UserProfile, age int) (models.NutritionInfo, error) {
	n, err := c.nutrition(ctx, planPrompt(profile, age))
	if err != nil {
		return models.NutritionInfo{}, fmt.Errorf("generate plan: %w", err)
	}
	return n, nil
}

// nutritionAnswer uses pointers so missing keys are detected.
type nutritionAnswer struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

func (c *Client) nutrition(ctx context.Context, prompt string) (models.NutritionInfo, error) {
	text, err := c.generate(ctx, []part{{Text: prompt}}, nutritionSchema)
	if err != nil {
		return models.NutritionInfo{}, err
	}

	var ans nutritionAnswer
	if err := decodeJSON(text, &ans); err != nil {
		return models.NutritionInfo{}, err
	}
	if ans.Calories == nil || ans.Protein == nil || ans.Carbs == nil || ans.Fat == nil {
		return models.NutritionInfo{}, fmt.Errorf("%w: missing nutrition field", ErrMalformedResponse)
	}

	n := models.NutritionInfo{
		Calories: *ans.Calories,
		Protein:  *ans.Protein,
		Carbs:    *ans.Carbs,
		Fat:      *ans.Fat,
	}
	if !n.IsValid() {
		return models.NutritionInfo{}, fmt.Errorf("%w: out of range nutrition %+v", ErrMalformedResponse, n)
	}
	return n, nil
}
