package service

import (
	"context"

	"github.com/nutrimind/backend/internal/types"
)

// FindRecipes searches for recipes built around the requested ingredients.
// Fields the model omits default to the values from the request itself, not
// to generic fallbacks: a recipe without a cuisine inherits the requested
// cuisine, absent or not.
func (s *AIService) FindRecipes(ctx context.Context, req types.RecipeSearchRequest) (*types.RecipeSearchResponse, error) {
	prompt := BuildRecipeSearchPrompt(req)

	raw, err := s.client.Complete(ctx, UserMessage(prompt), s.temperature)
	if err != nil {
		return nil, s.fail(CapabilityRecipeSearch, "", err)
	}

	var payload []recipePayload
	if err := s.jsonExtractor.Extract(raw, ShapeArray, &payload); err != nil {
		return nil, s.fail(CapabilityRecipeSearch, raw, err)
	}

	recipes := make([]types.Recipe, 0, len(payload))
	for _, p := range payload {
		recipe := buildRecipe(p)
		if recipe.Servings == 0 {
			recipe.Servings = req.Servings
		}
		if recipe.Cuisine == "" {
			recipe.Cuisine = req.Cuisine
		}
		if recipe.MealType == "" {
			recipe.MealType = req.MealType
		}
		recipes = append(recipes, recipe)
	}

	return &types.RecipeSearchResponse{
		Success:    true,
		Recipes:    recipes,
		TotalCount: len(recipes),
		QueryInfo: types.RecipeQueryInfo{
			Ingredients:         req.Ingredients,
			DietaryRestrictions: nonNil(req.DietaryRestrictions),
			MealType:            req.MealType,
			Cuisine:             req.Cuisine,
			CookingTime:         req.CookingTime,
			Servings:            req.Servings,
		},
	}, nil
}
