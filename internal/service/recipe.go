package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/leoskitchen/backend/internal/models"
	"github.com/leoskitchen/backend/internal/types"
)

const recipeCacheTTL = 5 * time.Minute

func recipeCacheKey(id uuid.UUID) string {
	return "recipe:" + id.String()
}

// DefaultCalories is the suggestion pre-filled when the author does not
// supply a calorie count: 4 kcal per gram of protein and carbs, 9 per gram
// of fat. The author may override it.
func DefaultCalories(protein, carbs, fat int) int {
	return protein*4 + carbs*4 + fat*9
}

// NormalizeTags splits a comma-separated tag field, trims each entry and
// drops empties, preserving order.
func NormalizeTags(raw string) []string {
	tags := make([]string, 0)
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// SplitLines turns a one-item-per-line textarea into a trimmed list with
// blank lines removed. Used for ingredients and instructions.
func SplitLines(raw string) []string {
	lines := make([]string, 0)
	for _, l := range strings.Split(raw, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// RecipeService owns recipe CRUD. The cache client is optional; when nil
// every read goes straight to the database.
type RecipeService struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewRecipeService(db *gorm.DB, cache *redis.Client) *RecipeService {
	return &RecipeService{
		db:    db,
		cache: cache,
	}
}

// Create normalizes the form input and inserts the recipe with zeroed
// counters. The owner identity comes from the caller's session and is never
// editable afterwards.
func (s *RecipeService) Create(ctx context.Context, ownerID uuid.UUID, ownerUsername string, input *types.RecipeInput) (*models.Recipe, error) {
	if ownerID == uuid.Nil {
		return nil, ErrAuthRequired
	}
	if input.Name == "" || input.Category == "" {
		return nil, ErrMissingFields
	}
	if !validCategory(input.Category) {
		return nil, ErrInvalidCategory
	}

	calories := input.Calories
	if calories == 0 {
		calories = DefaultCalories(input.Protein, input.Carbs, input.Fat)
	}

	now := time.Now()
	recipe := models.Recipe{
		Name:         input.Name,
		Category:     input.Category,
		Tags:         NormalizeTags(input.Tags),
		Description:  input.Description,
		RecipeURL:    input.RecipeURL,
		Image:        input.Image,
		Protein:      input.Protein,
		Carbs:        input.Carbs,
		Fat:          input.Fat,
		Calories:     calories,
		Fiber:        input.Fiber,
		Sugar:        input.Sugar,
		Sodium:       input.Sodium,
		Cholesterol:  input.Cholesterol,
		SaturatedFat: input.SaturatedFat,
		TransFat:     input.TransFat,
		Ingredients:  SplitLines(input.Ingredients),
		Instructions: SplitLines(input.Instructions),
		UserID:       ownerID,
		Username:     ownerUsername,
		DatePosted:   now,
		UpdatedAt:    now,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, fmt.Errorf("creating recipe: %w", err)
	}
	return &recipe, nil
}

// Get returns a recipe by id, serving from the cache when one is configured.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, recipeCacheKey(id)).Bytes(); err == nil {
			var cached models.Recipe
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("fetching recipe: %w", err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(&recipe); err == nil {
			s.cache.Set(ctx, recipeCacheKey(id), data, recipeCacheTTL)
		}
	}
	return &recipe, nil
}

// Update replaces the editable fields of a recipe. Only the owner may edit;
// counters, owner identity and date_posted are never touched.
func (s *RecipeService) Update(ctx context.Context, editorID, id uuid.UUID, input *types.RecipeInput) (*models.Recipe, error) {
	if editorID == uuid.Nil {
		return nil, ErrAuthRequired
	}
	if input.Category != "" && !validCategory(input.Category) {
		return nil, ErrInvalidCategory
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("fetching recipe: %w", err)
	}
	if recipe.UserID != editorID {
		return nil, ErrNotRecipeOwner
	}

	calories := input.Calories
	if calories == 0 {
		calories = DefaultCalories(input.Protein, input.Carbs, input.Fat)
	}

	updates := map[string]interface{}{
		"name":          input.Name,
		"category":      input.Category,
		"tags":          models.StringArray(NormalizeTags(input.Tags)),
		"description":   input.Description,
		"recipe_url":    input.RecipeURL,
		"image":         input.Image,
		"protein":       input.Protein,
		"carbs":         input.Carbs,
		"fat":           input.Fat,
		"calories":      calories,
		"fiber":         input.Fiber,
		"sugar":         input.Sugar,
		"sodium":        input.Sodium,
		"cholesterol":   input.Cholesterol,
		"saturated_fat": input.SaturatedFat,
		"trans_fat":     input.TransFat,
		"ingredients":   models.StringArray(SplitLines(input.Ingredients)),
		"instructions":  models.StringArray(SplitLines(input.Instructions)),
		"updated_at":    time.Now(),
	}
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating recipe: %w", err)
	}

	if s.cache != nil {
		s.cache.Del(ctx, recipeCacheKey(id))
	}

	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("fetching recipe: %w", err)
	}
	return &recipe, nil
}

// ListByOwner returns all recipes posted by one user.
func (s *RecipeService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("date_posted DESC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return recipes, nil
}

// List is the browse feed: optional category equality and keyword filter.
func (s *RecipeService) List(ctx context.Context, category, search string) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var recipes []models.Recipe
	if err := query.Order("date_posted DESC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return recipes, nil
}

// ListSimilar returns up to limit recipes in the same category, never
// including excludeID. An empty result is the caller's cue to show its
// static fallback list.
func (s *RecipeService) ListSimilar(ctx context.Context, excludeID uuid.UUID, category string, limit int) ([]models.RecipeSummary, error) {
	var similar []models.RecipeSummary
	err := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select("id, name, image").
		Where("category = ? AND id <> ?", category, excludeID).
		Limit(limit).
		Scan(&similar).Error
	if err != nil {
		return nil, fmt.Errorf("listing similar recipes: %w", err)
	}
	return similar, nil
}

func validCategory(category string) bool {
	for _, c := range models.Categories {
		if c == category {
			return true
		}
	}
	return false
}
