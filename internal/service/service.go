package service

import (
	"log"

	"github.com/nutrimind/backend/internal/types"
)

// analysisTemperature trades creativity for determinism where numeric
// accuracy matters more than variety.
const analysisTemperature = 0.3

// AIService composes prompt building, model invocation and JSON extraction
// for the four AI capabilities. It holds no per-request state; every call
// owns its own prompt and result.
type AIService struct {
	client        CompletionClient
	jsonExtractor *JSONExtractor
	temperature   float64
}

// NewAIService creates a new AIService instance
func NewAIService(client CompletionClient, temperature float64) *AIService {
	return &AIService{
		client:        client,
		jsonExtractor: &JSONExtractor{},
		temperature:   temperature,
	}
}

// fail wraps err with the capability tag. Raw model output is logged at the
// point of failure for diagnosability but never travels up with the error
// message shown to callers.
func (s *AIService) fail(capability Capability, raw string, err error) error {
	if raw != "" {
		log.Printf("[%s] parsing failure, raw model output: %s", capability, raw)
	}
	return &GenerationError{Capability: capability, Err: err}
}

// Model-facing payload shapes. All numerics decode as float64 so a model
// writing "10.0" where an integer is expected does not fail the whole call;
// values are narrowed when converting to response records.

type nutritionPayload struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Fiber         float64 `json:"fiber"`
	Sugar         float64 `json:"sugar"`
	Sodium        float64 `json:"sodium"`
}

type recipePayload struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Ingredients  []string         `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	PrepTime     float64          `json:"prep_time"`
	CookTime     float64          `json:"cook_time"`
	Servings     float64          `json:"servings"`
	Difficulty   string           `json:"difficulty"`
	Cuisine      string           `json:"cuisine"`
	MealType     string           `json:"meal_type"`
	Nutrition    nutritionPayload `json:"nutrition"`
	Tags         []string         `json:"tags"`
}

type mealPayload struct {
	MealType string        `json:"meal_type"`
	Recipe   recipePayload `json:"recipe"`
}

type dayPayload struct {
	Day   float64       `json:"day"`
	Meals []mealPayload `json:"meals"`
}

type mealPlanPayload struct {
	Days []dayPayload `json:"days"`
}

// toNutritionInfo narrows a model payload to the response record. A field
// the model omitted decodes as zero and contributes 0 to any aggregation.
func toNutritionInfo(p nutritionPayload) types.NutritionInfo {
	return types.NutritionInfo{
		Calories:      int(p.Calories),
		Protein:       p.Protein,
		Carbohydrates: p.Carbohydrates,
		Fat:           p.Fat,
		Fiber:         p.Fiber,
		Sugar:         p.Sugar,
		Sodium:        p.Sodium,
	}
}

func sumNutrition(total *types.NutritionInfo, n types.NutritionInfo) {
	total.Calories += n.Calories
	total.Protein += n.Protein
	total.Carbohydrates += n.Carbohydrates
	total.Fat += n.Fat
	total.Fiber += n.Fiber
	total.Sugar += n.Sugar
	total.Sodium += n.Sodium
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
