package mocks

import (
	"context"

	"github.com/nutrimind/backend/internal/types"
)

// MockNutritionAI is a mock implementation of the api.NutritionAI contract
// for handler tests. Unset functions return empty successful responses.
type MockNutritionAI struct {
	GenerateMealPlanFunc func(ctx context.Context, req types.MealPlanRequest) (*types.MealPlanResponse, error)
	FindRecipesFunc      func(ctx context.Context, req types.RecipeSearchRequest) (*types.RecipeSearchResponse, error)
	ChatFunc             func(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error)
	AnalyzeNutritionFunc func(ctx context.Context, req types.NutritionAnalysisRequest) (*types.NutritionAnalysisResponse, error)
}

func (m *MockNutritionAI) GenerateMealPlan(ctx context.Context, req types.MealPlanRequest) (*types.MealPlanResponse, error) {
	if m.GenerateMealPlanFunc != nil {
		return m.GenerateMealPlanFunc(ctx, req)
	}
	return &types.MealPlanResponse{Success: true}, nil
}

func (m *MockNutritionAI) FindRecipes(ctx context.Context, req types.RecipeSearchRequest) (*types.RecipeSearchResponse, error) {
	if m.FindRecipesFunc != nil {
		return m.FindRecipesFunc(ctx, req)
	}
	return &types.RecipeSearchResponse{Success: true}, nil
}

func (m *MockNutritionAI) Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, req)
	}
	return &types.ChatResponse{Success: true}, nil
}

func (m *MockNutritionAI) AnalyzeNutrition(ctx context.Context, req types.NutritionAnalysisRequest) (*types.NutritionAnalysisResponse, error) {
	if m.AnalyzeNutritionFunc != nil {
		return m.AnalyzeNutritionFunc(ctx, req)
	}
	return &types.NutritionAnalysisResponse{Success: true}, nil
}
