package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateRecipes = "recipes generated successfully"
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail = "recipe detail retrieved successfully"

	MessageFailedGenerateRecipes = "failed to generate recipes"
	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail = "failed to retrieve recipe detail"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrNoIngredients   = errors.New("no ingredients available for recipe generation")
	ErrGeminiAPIFailed = errors.New("gemini API processing failed")
)

type (
	GenerateRecipesRequest struct {
		IncludeExpiringOnly bool `json:"include_expiring_only"`
		MaxRecipes          int  `json:"max_recipes" validate:"omitempty,min=1,max=10"`
	}

	Recipe struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		CookingTime string    `json:"cooking_time"`
		Ingredients []string  `json:"ingredients"`
		Steps       []string  `json:"steps"`
		CreatedAt   time.Time `json:"created_at"`
	}

	GenerateRecipesResponse struct {
		Recipes       []Recipe `json:"recipes"`
		TotalRecipes  int      `json:"total_recipes"`
		ExpiringItems int      `json:"expiring_items"`
	}
)
