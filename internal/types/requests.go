package types

// MealPlanRequest represents the request body for meal plan generation.
// Bounds are enforced here at the binding layer; the service trusts them.
type MealPlanRequest struct {
	DietaryRestrictions []string `json:"dietary_restrictions" binding:"omitempty,dive,oneof=vegetarian vegan gluten_free dairy_free keto paleo low_carb high_protein pescatarian halal kosher"`
	CalorieTarget       *int     `json:"calorie_target" binding:"omitempty,gte=800,lte=5000"`
	MealsPerDay         int      `json:"meals_per_day" binding:"omitempty,gte=1,lte=6"`
	Days                int      `json:"days" binding:"omitempty,gte=1,lte=7"`
	Allergies           []string `json:"allergies" binding:"omitempty,max=10"`
	Preferences         string   `json:"preferences" binding:"omitempty,max=500"`
}

// ApplyDefaults fills unset fields with the documented defaults
func (r *MealPlanRequest) ApplyDefaults() {
	if r.MealsPerDay == 0 {
		r.MealsPerDay = 3
	}
	if r.Days == 0 {
		r.Days = 1
	}
}

// RecipeSearchRequest represents the request body for ingredient-based recipe search
type RecipeSearchRequest struct {
	Ingredients         []string `json:"ingredients" binding:"required,min=1,max=20,dive,required"`
	DietaryRestrictions []string `json:"dietary_restrictions" binding:"omitempty,dive,oneof=vegetarian vegan gluten_free dairy_free keto paleo low_carb high_protein pescatarian halal kosher"`
	MealType            string   `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Cuisine             string   `json:"cuisine" binding:"omitempty,max=50"`
	CookingTime         *int     `json:"cooking_time" binding:"omitempty,gte=5,lte=240"`
	Servings            int      `json:"servings" binding:"omitempty,gte=1,lte=12"`
}

// ApplyDefaults fills unset fields with the documented defaults
func (r *RecipeSearchRequest) ApplyDefaults() {
	if r.Servings == 0 {
		r.Servings = 4
	}
}

// ChatMessage is a single prior turn in a chat conversation
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest represents the request body for the chat endpoint
type ChatRequest struct {
	Message string        `json:"message" binding:"required,min=1,max=1000"`
	Context []ChatMessage `json:"context" binding:"omitempty,dive"`
}

// NutritionAnalysisRequest represents the request body for nutrition analysis
type NutritionAnalysisRequest struct {
	RecipeName  string   `json:"recipe_name" binding:"required,min=1,max=200"`
	Ingredients []string `json:"ingredients" binding:"required,min=1,dive,required"`
	Servings    int      `json:"servings" binding:"omitempty,gte=1,lte=12"`
}

// ApplyDefaults fills unset fields with the documented defaults
func (r *NutritionAnalysisRequest) ApplyDefaults() {
	if r.Servings == 0 {
		r.Servings = 1
	}
}
