package types

import "time"

// NutritionInfo holds the nutritional figures for one serving.
// All values are bare numbers: grams, except calories (kcal) and sodium (mg).
type NutritionInfo struct {
	Calories      int     `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Fiber         float64 `json:"fiber"`
	Sugar         float64 `json:"sugar"`
	Sodium        float64 `json:"sodium"`
}

// Recipe is a single generated recipe. The ID is assigned locally,
// never taken from the model.
type Recipe struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Ingredients  []string      `json:"ingredients"`
	Instructions []string      `json:"instructions"`
	PrepTime     int           `json:"prep_time"`
	CookTime     int           `json:"cook_time"`
	TotalTime    int           `json:"total_time"`
	Servings     int           `json:"servings"`
	Difficulty   string        `json:"difficulty"`
	Cuisine      string        `json:"cuisine,omitempty"`
	MealType     string        `json:"meal_type,omitempty"`
	Nutrition    NutritionInfo `json:"nutrition"`
	Tags         []string      `json:"tags"`
	ImageURL     *string       `json:"image_url"`
}

// Meal pairs a meal slot with its recipe
type Meal struct {
	MealType string `json:"meal_type"`
	Recipe   Recipe `json:"recipe"`
}

// DayPlan is one day of a meal plan
type DayPlan struct {
	Day            int           `json:"day"`
	Date           string        `json:"date"`
	Meals          []Meal        `json:"meals"`
	TotalNutrition NutritionInfo `json:"total_nutrition"`
}

// MealPlanSummary echoes the request parameters alongside derived totals
type MealPlanSummary struct {
	TotalDays             int      `json:"total_days"`
	MealsPerDay           int      `json:"meals_per_day"`
	AverageCaloriesPerDay int      `json:"average_calories_per_day"`
	DietaryRestrictions   []string `json:"dietary_restrictions"`
	CalorieTarget         *int     `json:"calorie_target"`
}

// MealPlanResponse is the response body for meal plan generation
type MealPlanResponse struct {
	Success     bool            `json:"success"`
	Plan        []DayPlan       `json:"plan"`
	Summary     MealPlanSummary `json:"summary"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// RecipeQueryInfo echoes the search parameters back to the caller
type RecipeQueryInfo struct {
	Ingredients         []string `json:"ingredients"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	MealType            string   `json:"meal_type,omitempty"`
	Cuisine             string   `json:"cuisine,omitempty"`
	CookingTime         *int     `json:"cooking_time"`
	Servings            int      `json:"servings"`
}

// RecipeSearchResponse is the response body for recipe search
type RecipeSearchResponse struct {
	Success    bool            `json:"success"`
	Recipes    []Recipe        `json:"recipes"`
	TotalCount int             `json:"total_count"`
	QueryInfo  RecipeQueryInfo `json:"query_info"`
}

// ChatResponse is the response body for the chat endpoint
type ChatResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NutritionAnalysisResponse is the response body for nutrition analysis
type NutritionAnalysisResponse struct {
	Success             bool          `json:"success"`
	RecipeName          string        `json:"recipe_name"`
	NutritionPerServing NutritionInfo `json:"nutrition_per_serving"`
	NutritionTotal      NutritionInfo `json:"nutrition_total"`
	Servings            int           `json:"servings"`
	HealthScore         int           `json:"health_score"`
	Recommendations     []string      `json:"recommendations"`
}

// HealthCheckResponse is the response body for the health endpoint
type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// ErrorResponse is the generic error envelope. Raw model output never
// appears here.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
