package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nutrimind/backend/internal/types"
)

// chatSystemPrompt sets the assistant persona for free-form chat
const chatSystemPrompt = `You are NutriMind, a helpful AI nutritionist and recipe expert.
Provide meal planning advice, recipes, and nutrition guidance.`

// promptRules is embedded verbatim in every prompt that expects a JSON
// reply. The completion endpoint has no structured-output guarantee, so this
// text is the only lever for shape compliance.
const promptRules = `STRICT RULES:
- Respond with JSON ONLY, no explanations, no text outside JSON
- Do NOT wrap the output in ` + "```json```" + ` or any markdown formatting
- Nutrition values MUST be pure numbers (no units, no "g", no "mg")
- Example: "protein": 18 not "18g"
- Example: "sodium": 480 not "480mg"`

const mealPlanSchema = `{
  "days": [
    {
      "day": 1,
      "meals": [
        {
          "meal_type": "breakfast",
          "recipe": {
            "name": "string",
            "description": "string",
            "ingredients": ["string"],
            "instructions": ["string"],
            "prep_time": 0,
            "cook_time": 0,
            "servings": 1,
            "difficulty": "easy",
            "nutrition": {
              "calories": 0,
              "protein": 0,
              "carbohydrates": 0,
              "fat": 0,
              "fiber": 0,
              "sugar": 0,
              "sodium": 0
            }
          }
        }
      ]
    }
  ]
}`

// BuildMealPlanPrompt renders the meal plan generation prompt. It is a pure
// function: identical requests produce byte-identical prompts.
func BuildMealPlanPrompt(req types.MealPlanRequest) string {
	var b strings.Builder

	b.WriteString("You are NutriMind, an expert meal-planning AI.\n")
	b.WriteString("Your ONLY task is to output valid JSON matching the schema below.\n")
	b.WriteString("If you cannot satisfy a field, use a reasonable placeholder.\n\n")
	b.WriteString(promptRules)
	b.WriteString("\n\nOutput must strictly follow this schema:\n")
	b.WriteString(mealPlanSchema)
	b.WriteString("\n\nUSER INPUT:\n")
	fmt.Fprintf(&b, "- Dietary restrictions: %s\n", joinOrNone(req.DietaryRestrictions))
	fmt.Fprintf(&b, "- Calorie target: %s\n", intOrNone(req.CalorieTarget))
	fmt.Fprintf(&b, "- Meals per day: %d\n", req.MealsPerDay)
	fmt.Fprintf(&b, "- Days: %d\n", req.Days)
	fmt.Fprintf(&b, "- Allergies: %s\n", joinOrNone(req.Allergies))
	fmt.Fprintf(&b, "- Preferences: %s\n", stringOrNone(req.Preferences))
	b.WriteString("\nReturn JSON ONLY.\n")

	return b.String()
}

// BuildRecipeSearchPrompt renders the ingredient-based recipe search prompt
func BuildRecipeSearchPrompt(req types.RecipeSearchRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Find 3-5 recipes using these ingredients: %s\n\n", strings.Join(req.Ingredients, ", "))
	fmt.Fprintf(&b, "Restrictions: %s\n", joinOrNone(req.DietaryRestrictions))
	fmt.Fprintf(&b, "Meal type: %s\n", anyOr(req.MealType))
	fmt.Fprintf(&b, "Cuisine: %s\n", anyOr(req.Cuisine))
	fmt.Fprintf(&b, "Max cooking time: %s minutes\n", anyOrInt(req.CookingTime))
	fmt.Fprintf(&b, "Servings: %d\n\n", req.Servings)
	b.WriteString(promptRules)
	b.WriteString("\n\nOUTPUT FORMAT:\n")
	fmt.Fprintf(&b, `[
  {
    "name": "...",
    "description": "...",
    "ingredients": ["..."],
    "instructions": ["..."],
    "prep_time": 0,
    "cook_time": 0,
    "servings": %d,
    "difficulty": "easy",
    "cuisine": %q,
    "meal_type": %q,
    "nutrition": {
      "calories": 0,
      "protein": 0,
      "carbohydrates": 0,
      "fat": 0,
      "fiber": 0,
      "sugar": 0,
      "sodium": 0
    },
    "tags": []
  }
]
`, req.Servings, req.Cuisine, req.MealType)

	return b.String()
}

// BuildNutritionAnalysisPrompt renders the nutrition analysis prompt
func BuildNutritionAnalysisPrompt(req types.NutritionAnalysisRequest) string {
	var b strings.Builder

	b.WriteString("Analyze the nutritional content of this recipe and return JSON only.\n\n")
	fmt.Fprintf(&b, "Recipe: %s\n", req.RecipeName)
	fmt.Fprintf(&b, "Servings: %d\n\n", req.Servings)
	b.WriteString("Ingredients:\n")
	for _, ingredient := range req.Ingredients {
		fmt.Fprintf(&b, "- %s\n", ingredient)
	}
	b.WriteString("\n")
	b.WriteString(promptRules)
	b.WriteString("\n\nRequired JSON format:\n")
	b.WriteString(`{
  "nutrition_per_serving": {
    "calories": 0,
    "protein": 0,
    "carbohydrates": 0,
    "fat": 0,
    "fiber": 0,
    "sugar": 0,
    "sodium": 0
  },
  "health_score": 0,
  "recommendations": ["..."]
}
`)

	return b.String()
}

// BuildChatMessages assembles the conversation for the chat capability:
// persona, prior turns, then the new user message.
func BuildChatMessages(req types.ChatRequest) []Message {
	messages := make([]Message, 0, len(req.Context)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: chatSystemPrompt})
	for _, turn := range req.Context {
		messages = append(messages, Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, Message{Role: RoleUser, Content: req.Message})
	return messages
}

// Absent optional fields render as an explicit token rather than being
// omitted, so the model cannot infer a default differently across calls.

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}

func stringOrNone(v string) string {
	if v == "" {
		return "None"
	}
	return v
}

func intOrNone(v *int) string {
	if v == nil {
		return "None"
	}
	return strconv.Itoa(*v)
}

func anyOr(v string) string {
	if v == "" {
		return "Any"
	}
	return v
}

func anyOrInt(v *int) string {
	if v == nil {
		return "Any"
	}
	return strconv.Itoa(*v)
}
