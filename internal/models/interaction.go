package models

import (
	"time"

	"github.com/google/uuid"
)

// Per-user interaction records. Each is keyed by (user_id, recipe_id), so a
// repeated like/save converges to a single row; the timestamp is
// last-writer-wins and assigned by the database.

type RecipeLike struct {
	UserID   uuid.UUID `gorm:"type:uuid;primarykey" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;primarykey" json:"recipe_id"`
	LikedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"liked_at"`
}

func (RecipeLike) TableName() string {
	return "recipe_likes"
}

type RecipeSave struct {
	UserID   uuid.UUID `gorm:"type:uuid;primarykey" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;primarykey" json:"recipe_id"`
	SavedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"saved_at"`
}

func (RecipeSave) TableName() string {
	return "recipe_saves"
}

type RecipeFavorite struct {
	UserID      uuid.UUID `gorm:"type:uuid;primarykey" json:"user_id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;primarykey" json:"recipe_id"`
	FavoritedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"favorited_at"`
}

func (RecipeFavorite) TableName() string {
	return "recipe_favorites"
}
