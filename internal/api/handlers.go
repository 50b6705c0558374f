package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrimind/backend/internal/types"
)

// AIHandler handles the AI-backed endpoints
type AIHandler struct {
	ai NutritionAI
}

// NewAIHandler creates a new AIHandler instance
func NewAIHandler(ai NutritionAI) *AIHandler {
	return &AIHandler{ai: ai}
}

// RegisterRoutes registers the AI routes
func (h *AIHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/meal-plan", h.GenerateMealPlan)
	router.POST("/recipes/search", h.SearchRecipes)
	router.GET("/recipes/trending", h.TrendingRecipes)
	router.GET("/recipes/:id", h.GetRecipe)
	router.POST("/chat", h.Chat)
	router.POST("/nutrition-analysis", h.AnalyzeNutrition)
}

// GenerateMealPlan handles POST /api/meal-plan
func (h *AIHandler) GenerateMealPlan(c *gin.Context) {
	var req types.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}
	req.ApplyDefaults()

	plan, err := h.ai.GenerateMealPlan(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error generating meal plan: %v", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to generate meal plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// SearchRecipes handles POST /api/recipes/search
func (h *AIHandler) SearchRecipes(c *gin.Context) {
	var req types.RecipeSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}
	req.ApplyDefaults()

	recipes, err := h.ai.FindRecipes(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error searching recipes: %v", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Recipe search failed"})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// Chat handles POST /api/chat
func (h *AIHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.ai.Chat(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error in chat: %v", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Chat failed"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// AnalyzeNutrition handles POST /api/nutrition-analysis
func (h *AIHandler) AnalyzeNutrition(c *gin.Context) {
	var req types.NutritionAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}
	req.ApplyDefaults()

	analysis, err := h.ai.AnalyzeNutrition(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error analyzing nutrition: %v", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Nutrition analysis failed"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetRecipe handles GET /api/recipes/:id. Recipes are not persisted, so
// lookup by id has nothing to read from.
func (h *AIHandler) GetRecipe(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, types.ErrorResponse{
		Error: "Recipe retrieval by ID not implemented. Use the search endpoint.",
	})
}

// TrendingRecipes handles GET /api/recipes/trending
func (h *AIHandler) TrendingRecipes(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, types.ErrorResponse{
		Error: "Trending recipes feature coming soon",
	})
}
