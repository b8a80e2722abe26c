package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"foodkeeper-backend/domain"
	"foodkeeper-backend/entities"
	"foodkeeper-backend/internal/utils"
	"foodkeeper-backend/pkg/food"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultMaxRecipes = 5

type (
	RecipeService interface {
		GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest, userID string) (domain.GenerateRecipesResponse, error)
		GetRecipes(ctx context.Context, userID string, page, limit int) ([]domain.Recipe, int64, error)
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		foodRepository   food.FoodRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, foodRepository food.FoodRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		foodRepository:   foodRepository,
	}
}

func (s *recipeService) GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest, userID string) (domain.GenerateRecipesResponse, error) {
	var foodItems []*entities.FoodItem
	var err error

	now := time.Now()
	expiryThreshold := now.AddDate(0, 0, 7)

	if req.IncludeExpiringOnly {
		foodItems, err = s.foodRepository.GetFoodItemsByExpiryRange(ctx, userID, now, expiryThreshold)
		if err != nil {
			return domain.GenerateRecipesResponse{}, err
		}
	} else {
		foodItems, _, err = s.foodRepository.GetFoodItems(ctx, userID, "", 1, 100)
		if err != nil {
			return domain.GenerateRecipesResponse{}, err
		}
	}

	if len(foodItems) == 0 {
		return domain.GenerateRecipesResponse{}, domain.ErrNoIngredients
	}

	expiringItems := 0
	ingredients := make([]map[string]interface{}, 0, len(foodItems))
	for _, item := range foodItems {
		ingredient := map[string]interface{}{
			"name": item.Name,
		}
		if item.ExpiryDate != nil {
			ingredient["expiryDate"] = item.ExpiryDate.Format("2006-01-02")
			ingredient["daysUntilExpiry"] = int(item.ExpiryDate.Sub(now).Hours() / 24)
			if item.ExpiryDate.Before(expiryThreshold) {
				expiringItems++
			}
		}
		ingredients = append(ingredients, ingredient)
	}

	maxRecipes := req.MaxRecipes
	if maxRecipes <= 0 {
		maxRecipes = defaultMaxRecipes
	}

	recipes, err := s.generateRecipesFromIngredients(ctx, ingredients, maxRecipes, userID)
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}

	return domain.GenerateRecipesResponse{
		Recipes:       recipes,
		TotalRecipes:  len(recipes),
		ExpiringItems: expiringItems,
	}, nil
}

func (s *recipeService) generateRecipesFromIngredients(ctx context.Context, ingredients []map[string]interface{}, maxRecipes int, userID string) ([]domain.Recipe, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	ingredientsJSON, _ := json.Marshal(ingredients)

	prompt := fmt.Sprintf(
		"You are a professional chef. Using the following on-hand ingredients "+
			"(with expiry dates where known): %s, create %d unique and practical recipes. "+
			"Prioritize ingredients that are closest to expiry. "+
			"Add common spices or oil if needed. "+
			"Return ONLY a valid JSON array of recipe objects with exactly these fields: "+
			"'title' (string), 'description' (string), 'cookingTime' (string, e.g. \"30 minutes\"), "+
			"'ingredients' (array of strings), 'steps' (array of strings). "+
			"Make sure the recipes are realistic and can actually be prepared with the given ingredients. "+
			"Do not include any explanations, markdown formatting, or extra text.",
		string(ingredientsJSON),
		maxRecipes,
	)

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	geminiReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	geminiReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(geminiReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrGeminiAPIFailed
	}

	responseText := extractJSONArray(geminiResp.Candidates[0].Content.Parts[0].Text)
	if responseText == "" {
		return nil, domain.ErrGeminiAPIFailed
	}

	var rawRecipes []struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		CookingTime string   `json:"cookingTime"`
		Ingredients []string `json:"ingredients"`
		Steps       []string `json:"steps"`
	}
	if err := json.Unmarshal([]byte(responseText), &rawRecipes); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response: %v - Raw response: %s", err, responseText)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipes := make([]domain.Recipe, 0, len(rawRecipes))
	for _, raw := range rawRecipes {
		if raw.Title == "" {
			continue
		}
		if raw.CookingTime == "" {
			raw.CookingTime = "30 minutes"
		}

		ingredientsJSON, _ := json.Marshal(raw.Ingredients)
		stepsJSON, _ := json.Marshal(raw.Steps)

		dbRecipe := &entities.Recipe{
			ID:          uuid.New(),
			UserID:      userUUID,
			Title:       raw.Title,
			Description: raw.Description,
			CookingTime: raw.CookingTime,
			Ingredients: string(ingredientsJSON),
			Steps:       string(stepsJSON),
			IsGenerated: true,
		}

		// Persistence is best-effort, the generated recipe is still returned.
		_ = s.recipeRepository.CreateRecipe(ctx, dbRecipe)

		recipes = append(recipes, domain.Recipe{
			ID:          dbRecipe.ID.String(),
			Title:       raw.Title,
			Description: raw.Description,
			CookingTime: raw.CookingTime,
			Ingredients: raw.Ingredients,
			Steps:       raw.Steps,
			CreatedAt:   time.Now(),
		})
	}

	return recipes, nil
}

// extractJSONArray pulls the JSON array out of a model response that may be
// wrapped in markdown code fences or surrounding prose.
func extractJSONArray(responseText string) string {
	responseText = strings.TrimSpace(responseText)

	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
	}
	responseText = strings.TrimSpace(responseText)

	startIdx := strings.Index(responseText, "[")
	endIdx := strings.LastIndex(responseText, "]")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		// A single object gets wrapped into a one-element array.
		startIdx = strings.Index(responseText, "{")
		endIdx = strings.LastIndex(responseText, "}")
		if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
			return ""
		}
		return "[" + responseText[startIdx:endIdx+1] + "]"
	}

	return responseText[startIdx : endIdx+1]
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string, page, limit int) ([]domain.Recipe, int64, error) {
	dbRecipes, count, err := s.recipeRepository.GetRecipes(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var recipes []domain.Recipe
	for _, dbRecipe := range dbRecipes {
		recipes = append(recipes, toRecipe(dbRecipe))
	}

	return recipes, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.Recipe, error) {
	dbRecipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, err
	}

	if dbRecipe.UserID.String() != userID {
		return domain.Recipe{}, domain.ErrUserNotAllowed
	}

	return toRecipe(dbRecipe), nil
}

func toRecipe(dbRecipe *entities.Recipe) domain.Recipe {
	var ingredients []string
	if err := json.Unmarshal([]byte(dbRecipe.Ingredients), &ingredients); err != nil {
		ingredients = nil
	}

	var steps []string
	if err := json.Unmarshal([]byte(dbRecipe.Steps), &steps); err != nil {
		steps = nil
	}

	return domain.Recipe{
		ID:          dbRecipe.ID.String(),
		Title:       dbRecipe.Title,
		Description: dbRecipe.Description,
		CookingTime: dbRecipe.CookingTime,
		Ingredients: ingredients,
		Steps:       steps,
		CreatedAt:   dbRecipe.CreatedAt,
	}
}
