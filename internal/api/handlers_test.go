package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrimind/backend/internal/mocks"
	"github.com/nutrimind/backend/internal/types"
)

func setupTestRouter(ai NutritionAI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupAPI(router, ai, "asi")
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	jsonData, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateMealPlanHandler(t *testing.T) {
	t.Run("should apply defaults before invoking the service", func(t *testing.T) {
		var gotReq types.MealPlanRequest
		mock := &mocks.MockNutritionAI{
			GenerateMealPlanFunc: func(ctx context.Context, req types.MealPlanRequest) (*types.MealPlanResponse, error) {
				gotReq = req
				return &types.MealPlanResponse{Success: true}, nil
			},
		}
		router := setupTestRouter(mock)

		w := postJSON(t, router, "/api/meal-plan", map[string]any{
			"dietary_restrictions": []string{"vegan"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, gotReq.MealsPerDay)
		assert.Equal(t, 1, gotReq.Days)
	})

	t.Run("should reject out-of-bounds days", func(t *testing.T) {
		router := setupTestRouter(&mocks.MockNutritionAI{})

		w := postJSON(t, router, "/api/meal-plan", map[string]any{"days": 99})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should reject an unknown dietary restriction", func(t *testing.T) {
		router := setupTestRouter(&mocks.MockNutritionAI{})

		w := postJSON(t, router, "/api/meal-plan", map[string]any{
			"dietary_restrictions": []string{"carnivore"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should map service failures to a generic error", func(t *testing.T) {
		mock := &mocks.MockNutritionAI{
			GenerateMealPlanFunc: func(ctx context.Context, req types.MealPlanRequest) (*types.MealPlanResponse, error) {
				return nil, errors.New("raw model output: {gibberish")
			},
		}
		router := setupTestRouter(mock)

		w := postJSON(t, router, "/api/meal-plan", map[string]any{"days": 1})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to generate meal plan", resp.Error)
		assert.NotContains(t, w.Body.String(), "gibberish")
	})
}

func TestSearchRecipesHandler(t *testing.T) {
	t.Run("should require at least one ingredient", func(t *testing.T) {
		router := setupTestRouter(&mocks.MockNutritionAI{})

		w := postJSON(t, router, "/api/recipes/search", map[string]any{"ingredients": []string{}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should default servings to four", func(t *testing.T) {
		var gotReq types.RecipeSearchRequest
		mock := &mocks.MockNutritionAI{
			FindRecipesFunc: func(ctx context.Context, req types.RecipeSearchRequest) (*types.RecipeSearchResponse, error) {
				gotReq = req
				return &types.RecipeSearchResponse{Success: true}, nil
			},
		}
		router := setupTestRouter(mock)

		w := postJSON(t, router, "/api/recipes/search", map[string]any{
			"ingredients": []string{"rice", "beans"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 4, gotReq.Servings)
	})

	t.Run("should map service failures to a generic error", func(t *testing.T) {
		mock := &mocks.MockNutritionAI{
			FindRecipesFunc: func(ctx context.Context, req types.RecipeSearchRequest) (*types.RecipeSearchResponse, error) {
				return nil, errors.New("boom")
			},
		}
		router := setupTestRouter(mock)

		w := postJSON(t, router, "/api/recipes/search", map[string]any{
			"ingredients": []string{"rice"},
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Recipe search failed")
	})
}

func TestChatHandler(t *testing.T) {
	t.Run("should require a message", func(t *testing.T) {
		router := setupTestRouter(&mocks.MockNutritionAI{})

		w := postJSON(t, router, "/api/chat", map[string]any{"message": ""})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should return the chat response", func(t *testing.T) {
		mock := &mocks.MockNutritionAI{
			ChatFunc: func(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
				return &types.ChatResponse{
					Success:     true,
					Message:     "Try a recipe with lentils",
					Suggestions: []string{"Show me similar recipes"},
				}, nil
			},
		}
		router := setupTestRouter(mock)

		w := postJSON(t, router, "/api/chat", map[string]any{"message": "dinner ideas?"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp types.ChatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Try a recipe with lentils", resp.Message)
		assert.Equal(t, []string{"Show me similar recipes"}, resp.Suggestions)
	})
}

func TestAnalyzeNutritionHandler(t *testing.T) {
	t.Run("should default servings to one", func(t *testing.T) {
		var gotReq types.NutritionAnalysisRequest
		mock := &mocks.MockNutritionAI{
			AnalyzeNutritionFunc: func(ctx context.Context, req types.NutritionAnalysisRequest) (*types.NutritionAnalysisResponse, error) {
				gotReq = req
				return &types.NutritionAnalysisResponse{Success: true}, nil
			},
		}
		router := setupTestRouter(mock)

		w := postJSON(t, router, "/api/nutrition-analysis", map[string]any{
			"recipe_name": "Pasta",
			"ingredients": []string{"200g pasta"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, gotReq.Servings)
	})

	t.Run("should require a recipe name", func(t *testing.T) {
		router := setupTestRouter(&mocks.MockNutritionAI{})

		w := postJSON(t, router, "/api/nutrition-analysis", map[string]any{
			"ingredients": []string{"200g pasta"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	router := setupTestRouter(&mocks.MockNutritionAI{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp types.HealthCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "asi", resp.Services["ai_provider"])
}

func TestRecipePlaceholders(t *testing.T) {
	router := setupTestRouter(&mocks.MockNutritionAI{})

	for _, path := range []string{"/api/recipes/trending", "/api/recipes/some-id"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotImplemented, w.Code, path)
	}
}
