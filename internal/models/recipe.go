package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe categories accepted by the service.
var Categories = []string{"Breakfast", "Lunch", "Dinner", "Snacks", "Desserts"}

// StringArray stores a []string as JSON so the same model works on Postgres
// (jsonb) and SQLite (text).
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported array column value: %T", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a shared meal. Owner identity (UserID, Username) and DatePosted
// are immutable after creation. The counters are only ever incremented.
type Recipe struct {
	ID          uuid.UUID   `gorm:"type:uuid;primarykey" json:"id"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Category    string      `gorm:"size:50;not null" json:"category"`
	Tags        StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	Description string      `gorm:"type:text" json:"description"`
	RecipeURL   string      `gorm:"size:255" json:"recipe_url"`
	// Image is opaque to the service: a URL or an inline data URI.
	Image string `gorm:"type:text" json:"image"`

	Protein      int     `gorm:"not null;default:0" json:"protein"`
	Carbs        int     `gorm:"not null;default:0" json:"carbs"`
	Fat          int     `gorm:"not null;default:0" json:"fat"`
	Calories     int     `gorm:"not null;default:0" json:"calories"`
	Fiber        int     `gorm:"not null;default:0" json:"fiber"`
	Sugar        int     `gorm:"not null;default:0" json:"sugar"`
	Sodium       int     `gorm:"not null;default:0" json:"sodium"`
	Cholesterol  int     `gorm:"not null;default:0" json:"cholesterol"`
	SaturatedFat float64 `gorm:"not null;default:0" json:"saturated_fat"`
	TransFat     float64 `gorm:"not null;default:0" json:"trans_fat"`

	Ingredients  StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`

	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Username string    `gorm:"size:50;not null" json:"username"`

	DatePosted time.Time `gorm:"not null" json:"date_posted"`
	UpdatedAt  time.Time `json:"updated_at"`

	Likes      int `gorm:"not null;default:0" json:"likes"`
	Comments   int `gorm:"not null;default:0" json:"comments"`
	Rating     int `gorm:"not null;default:0" json:"rating"`
	Reviews    int `gorm:"not null;default:0" json:"reviews"`
	SavedCount int `gorm:"not null;default:0" json:"saved_count"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeSummary is the trimmed shape rendered in "you might also like" grids.
type RecipeSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image"`
}
