package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/leoskitchen/backend/internal/models"
	"github.com/leoskitchen/backend/internal/types"
)

// SocialService owns likes, saves, favorites, comments and the profile
// activity counts. Counter updates go through single-statement increments so
// concurrent calls from different users never lose updates; the per-user
// records are keyed by (user_id, recipe_id) so repeats converge to one row.
type SocialService struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewSocialService(db *gorm.DB, cache *redis.Client) *SocialService {
	return &SocialService{
		db:    db,
		cache: cache,
	}
}

// Like increments the recipe's like counter and upserts the caller's like
// record. Every call increments; the record stays unique per user.
func (s *SocialService) Like(ctx context.Context, userID, recipeID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrAuthRequired
	}
	if err := s.incrementCounter(ctx, recipeID, "likes"); err != nil {
		return err
	}

	like := models.RecipeLike{UserID: userID, RecipeID: recipeID}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"liked_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&like).Error
	if err != nil {
		return fmt.Errorf("recording like: %w", err)
	}
	return nil
}

// Save mirrors Like against the saved counter and the caller's saved list.
func (s *SocialService) Save(ctx context.Context, userID, recipeID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrAuthRequired
	}
	if err := s.incrementCounter(ctx, recipeID, "saved_count"); err != nil {
		return err
	}

	save := models.RecipeSave{UserID: userID, RecipeID: recipeID}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"saved_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&save).Error
	if err != nil {
		return fmt.Errorf("recording save: %w", err)
	}
	return nil
}

// Unsave removes the recipe from the caller's saved list. The recipe's
// saved_count is deliberately left alone: it counts save events, not the
// current size of anyone's list.
func (s *SocialService) Unsave(ctx context.Context, userID, recipeID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrAuthRequired
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.RecipeSave{}).Error
	if err != nil {
		return fmt.Errorf("removing save: %w", err)
	}
	return nil
}

// Favorite marks a recipe as a favorite of the caller. Favorites have no
// counter on the recipe.
func (s *SocialService) Favorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrAuthRequired
	}
	if err := s.recipeExists(ctx, recipeID); err != nil {
		return err
	}

	fav := models.RecipeFavorite{UserID: userID, RecipeID: recipeID}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"favorited_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&fav).Error
	if err != nil {
		return fmt.Errorf("recording favorite: %w", err)
	}
	return nil
}

// Unfavorite removes a favorite record.
func (s *SocialService) Unfavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrAuthRequired
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.RecipeFavorite{}).Error
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	return nil
}

// AddComment stores a comment on a recipe. The created_at stamp is left to
// the database clock so listing order is consistent across clients.
func (s *SocialService) AddComment(ctx context.Context, userID uuid.UUID, username string, recipeID uuid.UUID, text string) (*models.Comment, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthRequired
	}
	if text == "" {
		return nil, ErrEmptyComment
	}
	if err := s.recipeExists(ctx, recipeID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		RecipeID: recipeID,
		UserID:   userID,
		Username: username,
		Text:     text,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}
	return &comment, nil
}

// ListComments returns the newest comments on a recipe, at most limit.
func (s *SocialService) ListComments(ctx context.Context, recipeID uuid.UUID, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

// ListSaved returns the recipes on the caller's saved list.
func (s *SocialService) ListSaved(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	return s.listInteracted(ctx, userID, "recipe_saves")
}

// ListFavorites returns the caller's favorite recipes.
func (s *SocialService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	return s.listInteracted(ctx, userID, "recipe_favorites")
}

// Stats computes the profile activity numbers from live queries.
func (s *SocialService) Stats(ctx context.Context, userID uuid.UUID) (*types.ProfileStats, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	var stats types.ProfileStats
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Recipe{}).Where("user_id = ?", userID).Count(&stats.RecipesShared).Error; err != nil {
		return nil, fmt.Errorf("counting recipes: %w", err)
	}
	if err := db.Model(&models.RecipeSave{}).Where("user_id = ?", userID).Count(&stats.SavedRecipes).Error; err != nil {
		return nil, fmt.Errorf("counting saves: %w", err)
	}
	err := db.Model(&models.Recipe{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(likes), 0)").
		Scan(&stats.TotalLikes).Error
	if err != nil {
		return nil, fmt.Errorf("summing likes: %w", err)
	}
	if err := db.Model(&models.Comment{}).Where("user_id = ?", userID).Count(&stats.Comments).Error; err != nil {
		return nil, fmt.Errorf("counting comments: %w", err)
	}

	return &stats, nil
}

// incrementCounter applies the store's atomic increment to a recipe counter,
// without touching updated_at. Zero rows affected means the recipe is gone.
func (s *SocialService) incrementCounter(ctx context.Context, recipeID uuid.UUID, column string) error {
	result := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("incrementing %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	if s.cache != nil {
		s.cache.Del(ctx, recipeCacheKey(recipeID))
	}
	return nil
}

func (s *SocialService) recipeExists(ctx context.Context, recipeID uuid.UUID) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return fmt.Errorf("checking recipe: %w", err)
	}
	if count == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

func (s *SocialService) listInteracted(ctx context.Context, userID uuid.UUID, table string) ([]models.Recipe, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthRequired
	}
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Joins("JOIN "+table+" ON "+table+".recipe_id = recipes.id").
		Where(table+".user_id = ?", userID).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	return recipes, nil
}
