package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/nutrimind/backend/internal/types"
)

// NutritionAI is the functional contract the API layer invokes. The concrete
// implementation lives in internal/service; handlers only re-serialize its
// outputs.
type NutritionAI interface {
	GenerateMealPlan(ctx context.Context, req types.MealPlanRequest) (*types.MealPlanResponse, error)
	FindRecipes(ctx context.Context, req types.RecipeSearchRequest) (*types.RecipeSearchResponse, error)
	Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error)
	AnalyzeNutrition(ctx context.Context, req types.NutritionAnalysisRequest) (*types.NutritionAnalysisResponse, error)
}

// SetupAPI registers all routes under /api
func SetupAPI(router *gin.Engine, ai NutritionAI, provider string) {
	group := router.Group("/api")
	{
		NewAIHandler(ai).RegisterRoutes(group)
		NewHealthHandler(provider).RegisterRoutes(group)
	}
}
