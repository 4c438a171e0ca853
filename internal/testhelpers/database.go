package testhelpers

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/leoskitchen/backend/internal/database"
	"github.com/leoskitchen/backend/internal/models"
	"github.com/leoskitchen/backend/internal/service"
	"github.com/leoskitchen/backend/internal/types"
)

const TestJWTSecret = "test-secret"

// SetupTestDB opens a fresh in-memory database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// CreateTestUser registers a user through the auth service and returns it.
func CreateTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	authService := service.NewAuthService(db, TestJWTSecret)
	user, err := authService.Register(context.Background(), &types.RegisterRequest{
		Username:        username,
		Email:           fmt.Sprintf("%s@example.com", username),
		Password:        "password123",
		ConfirmPassword: "password123",
		AcceptedTerms:   true,
	})
	if err != nil {
		t.Fatalf("failed to create test user %q: %v", username, err)
	}
	return user
}

// CreateTestUserAndToken registers a user and returns it with a valid
// bearer token for the HTTP tests.
func CreateTestUserAndToken(t *testing.T, db *gorm.DB, username string) (*models.User, string) {
	t.Helper()

	user := CreateTestUser(t, db, username)
	authService := service.NewAuthService(db, TestJWTSecret)
	token, err := authService.GenerateToken(&types.Session{UserID: user.ID, Username: user.Username})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user, token
}

// CreateTestRecipe posts a recipe owned by the given user.
func CreateTestRecipe(t *testing.T, db *gorm.DB, owner *models.User, name, category string) *models.Recipe {
	t.Helper()

	recipeService := service.NewRecipeService(db, nil)
	recipe, err := recipeService.Create(context.Background(), owner.ID, owner.Username, &types.RecipeInput{
		Name:         name,
		Category:     category,
		Protein:      20,
		Carbs:        30,
		Fat:          10,
		Ingredients:  "1 cup oats\n2 scoops protein powder",
		Instructions: "Mix everything\nServe",
	})
	if err != nil {
		t.Fatalf("failed to create test recipe %q: %v", name, err)
	}
	return recipe
}
