package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutrimind/backend/internal/types"
)

// GenerateMealPlan builds a multi-day meal plan. Derived figures are always
// recomputed locally: total_time from prep+cook, day totals from the
// field-wise nutrition sum, and the calorie average from the day totals.
// Model-supplied values for any of these are ignored.
func (s *AIService) GenerateMealPlan(ctx context.Context, req types.MealPlanRequest) (*types.MealPlanResponse, error) {
	prompt := BuildMealPlanPrompt(req)

	raw, err := s.client.Complete(ctx, UserMessage(prompt), s.temperature)
	if err != nil {
		return nil, s.fail(CapabilityMealPlan, "", err)
	}

	var payload mealPlanPayload
	if err := s.jsonExtractor.Extract(raw, ShapeObject, &payload); err != nil {
		return nil, s.fail(CapabilityMealPlan, raw, err)
	}

	now := time.Now()
	plan := make([]types.DayPlan, 0, len(payload.Days))
	totalCalories := 0

	for i, day := range payload.Days {
		dayNumber := int(day.Day)
		if dayNumber == 0 {
			dayNumber = i + 1
		}

		meals := make([]types.Meal, 0, len(day.Meals))
		var dayTotal types.NutritionInfo

		for _, meal := range day.Meals {
			mealType := meal.MealType
			if mealType == "" {
				mealType = "meal"
			}

			recipe := buildRecipe(meal.Recipe)
			recipe.MealType = mealType
			if recipe.Servings == 0 {
				recipe.Servings = 1
			}

			sumNutrition(&dayTotal, recipe.Nutrition)
			meals = append(meals, types.Meal{MealType: mealType, Recipe: recipe})
		}

		totalCalories += dayTotal.Calories
		plan = append(plan, types.DayPlan{
			Day:            dayNumber,
			Date:           now.AddDate(0, 0, dayNumber-1).Format("2006-01-02"),
			Meals:          meals,
			TotalNutrition: dayTotal,
		})
	}

	averageCalories := 0
	if req.Days > 0 {
		averageCalories = totalCalories / req.Days
	}

	return &types.MealPlanResponse{
		Success: true,
		Plan:    plan,
		Summary: types.MealPlanSummary{
			TotalDays:             req.Days,
			MealsPerDay:           req.MealsPerDay,
			AverageCaloriesPerDay: averageCalories,
			DietaryRestrictions:   nonNil(req.DietaryRestrictions),
			CalorieTarget:         req.CalorieTarget,
		},
		GeneratedAt: now,
	}, nil
}

// buildRecipe converts a model payload into a response recipe. Identity is
// assigned here, never taken from the model.
func buildRecipe(p recipePayload) types.Recipe {
	difficulty := p.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	prepTime := int(p.PrepTime)
	cookTime := int(p.CookTime)

	return types.Recipe{
		ID:           uuid.New().String(),
		Name:         p.Name,
		Description:  p.Description,
		Ingredients:  nonNil(p.Ingredients),
		Instructions: nonNil(p.Instructions),
		PrepTime:     prepTime,
		CookTime:     cookTime,
		TotalTime:    prepTime + cookTime,
		Servings:     int(p.Servings),
		Difficulty:   difficulty,
		Cuisine:      p.Cuisine,
		MealType:     p.MealType,
		Nutrition:    toNutritionInfo(p.Nutrition),
		Tags:         nonNil(p.Tags),
		ImageURL:     nil,
	}
}
