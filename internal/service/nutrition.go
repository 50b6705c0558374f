package service

import (
	"context"

	"github.com/nutrimind/backend/internal/types"
)

type nutritionAnalysisPayload struct {
	NutritionPerServing nutritionPayload `json:"nutrition_per_serving"`
	HealthScore         float64          `json:"health_score"`
	Recommendations     []string         `json:"recommendations"`
}

// AnalyzeNutrition estimates the nutritional content of a recipe. The model
// supplies per-serving figures only; the totals are multiplied out locally.
// Runs at a lower temperature than the other capabilities.
func (s *AIService) AnalyzeNutrition(ctx context.Context, req types.NutritionAnalysisRequest) (*types.NutritionAnalysisResponse, error) {
	prompt := BuildNutritionAnalysisPrompt(req)

	raw, err := s.client.Complete(ctx, UserMessage(prompt), analysisTemperature)
	if err != nil {
		return nil, s.fail(CapabilityNutrition, "", err)
	}

	var payload nutritionAnalysisPayload
	if err := s.jsonExtractor.Extract(raw, ShapeObject, &payload); err != nil {
		return nil, s.fail(CapabilityNutrition, raw, err)
	}

	perServing := toNutritionInfo(payload.NutritionPerServing)

	return &types.NutritionAnalysisResponse{
		Success:             true,
		RecipeName:          req.RecipeName,
		NutritionPerServing: perServing,
		NutritionTotal:      scaleNutrition(perServing, req.Servings),
		Servings:            req.Servings,
		HealthScore:         int(payload.HealthScore),
		Recommendations:     nonNil(payload.Recommendations),
	}, nil
}

func scaleNutrition(n types.NutritionInfo, servings int) types.NutritionInfo {
	factor := float64(servings)
	return types.NutritionInfo{
		Calories:      n.Calories * servings,
		Protein:       n.Protein * factor,
		Carbohydrates: n.Carbohydrates * factor,
		Fat:           n.Fat * factor,
		Fiber:         n.Fiber * factor,
		Sugar:         n.Sugar * factor,
		Sodium:        n.Sodium * factor,
	}
}
