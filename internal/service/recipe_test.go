package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoskitchen/backend/internal/service"
	"github.com/leoskitchen/backend/internal/testhelpers"
	"github.com/leoskitchen/backend/internal/types"
)

func TestDefaultCalories(t *testing.T) {
	assert.Equal(t, 290, service.DefaultCalories(20, 30, 10))
	assert.Equal(t, 0, service.DefaultCalories(0, 0, 0))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"high-protein", "keto"}, service.NormalizeTags("high-protein, , keto ,  "))
	assert.Empty(t, service.NormalizeTags(""))
	assert.Equal(t, []string{"vegan"}, service.NormalizeTags("vegan"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t,
		[]string{"1 cup oats", "2 scoops protein powder"},
		service.SplitLines("1 cup oats\n\n2 scoops protein powder\n"))
	assert.Empty(t, service.SplitLines(""))
}

func TestCreateRecipe(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeSvc := service.NewRecipeService(db, nil)
	owner := testhelpers.CreateTestUser(t, db, "chef1")

	recipe, err := recipeSvc.Create(context.Background(), owner.ID, owner.Username, &types.RecipeInput{
		Name:         "Protein Bowl",
		Category:     "Breakfast",
		Tags:         "high-protein, , keto ,  ",
		Protein:      20,
		Carbs:        30,
		Fat:          10,
		Ingredients:  "1 cup oats\n\n2 scoops protein powder\n",
		Instructions: "Mix\nServe",
	})
	require.NoError(t, err)

	// No explicit calories: the 4/4/9 suggestion applies.
	assert.Equal(t, 290, recipe.Calories)
	assert.Equal(t, []string{"high-protein", "keto"}, []string(recipe.Tags))
	assert.Equal(t, []string{"1 cup oats", "2 scoops protein powder"}, []string(recipe.Ingredients))
	assert.Equal(t, owner.ID, recipe.UserID)
	assert.Equal(t, "chef1", recipe.Username)
	assert.False(t, recipe.DatePosted.IsZero())

	// Counters start at zero.
	assert.Zero(t, recipe.Likes)
	assert.Zero(t, recipe.Comments)
	assert.Zero(t, recipe.Rating)
	assert.Zero(t, recipe.Reviews)
	assert.Zero(t, recipe.SavedCount)
}

func TestCreateRecipeExplicitCalories(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeSvc := service.NewRecipeService(db, nil)
	owner := testhelpers.CreateTestUser(t, db, "chef1")

	recipe, err := recipeSvc.Create(context.Background(), owner.ID, owner.Username, &types.RecipeInput{
		Name:     "Custom Count",
		Category: "Lunch",
		Protein:  20,
		Carbs:    30,
		Fat:      10,
		Calories: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, 500, recipe.Calories)
}

func TestCreateRecipeValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeSvc := service.NewRecipeService(db, nil)
	owner := testhelpers.CreateTestUser(t, db, "chef1")

	_, err := recipeSvc.Create(context.Background(), uuid.Nil, "", &types.RecipeInput{Name: "X", Category: "Lunch"})
	assert.ErrorIs(t, err, service.ErrAuthRequired)

	_, err = recipeSvc.Create(context.Background(), owner.ID, owner.Username, &types.RecipeInput{Category: "Lunch"})
	assert.ErrorIs(t, err, service.ErrMissingFields)

	_, err = recipeSvc.Create(context.Background(), owner.ID, owner.Username, &types.RecipeInput{Name: "X", Category: "Brunch"})
	assert.ErrorIs(t, err, service.ErrInvalidCategory)
}

func TestGetRecipe(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeSvc := service.NewRecipeService(db, nil)
	owner := testhelpers.CreateTestUser(t, db, "chef1")
	created := testhelpers.CreateTestRecipe(t, db, owner, "Oats", "Breakfast")

	got, err := recipeSvc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Oats", got.Name)

	_, err = recipeSvc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestUpdateRecipe(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeSvc := service.NewRecipeService(db, nil)
	socialSvc := service.NewSocialService(db, nil)
	owner := testhelpers.CreateTestUser(t, db, "chef1")
	other := testhelpers.CreateTestUser(t, db, "chef2")
	created := testhelpers.CreateTestRecipe(t, db, owner, "Oats", "Breakfast")

	// A like before the edit; the counter must survive the update.
	require.NoError(t, socialSvc.Like(context.Background(), other.ID, created.ID))

	updated, err := recipeSvc.Update(context.Background(), owner.ID, created.ID, &types.RecipeInput{
		Name:         "Overnight Oats",
		Category:     "Breakfast",
		Tags:         "meal-prep",
		Protein:      25,
		Carbs:        40,
		Fat:          8,
		Ingredients:  "1 cup oats",
		Instructions: "Refrigerate overnight",
	})
	require.NoError(t, err)

	assert.Equal(t, "Overnight Oats", updated.Name)
	assert.Equal(t, 25, updated.Protein)
	assert.Equal(t, service.DefaultCalories(25, 40, 8), updated.Calories)

	// Owner identity, posting date and counters are untouched.
	assert.Equal(t, owner.ID, updated.UserID)
	assert.Equal(t, "chef1", updated.Username)
	assert.Equal(t, created.DatePosted.Unix(), updated.DatePosted.Unix())
	assert.Equal(t, 1, updated.Likes)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdateRecipeAuthorization(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeSvc := service.NewRecipeService(db, nil)
	owner := testhelpers.CreateTestUser(t, db, "chef1")
	other := testhelpers.CreateTestUser(t, db, "chef2")
	created := testhelpers.CreateTestRecipe(t, db, owner, "Oats", "Breakfast")

	input := &types.RecipeInput{Name: "Hijacked", Category: "Breakfast"}

	_, err := recipeSvc.Update(context.Background(), other.ID, created.ID, input)
	assert.ErrorIs(t, err, service.ErrNotRecipeOwner)

	_, err = recipeSvc.Update(context.Background(), uuid.Nil, created.ID, input)
	assert.ErrorIs(t, err, service.ErrAuthRequired)

	_, err = recipeSvc.Update(context.Background(), other.ID, uuid.New(), input)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)

	// The recipe is unchanged after the rejected edits.
	got, err := recipeSvc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oats", got.Name)
}

func TestListByOwner(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeSvc := service.NewRecipeService(db, nil)
	chef1 := testhelpers.CreateTestUser(t, db, "chef1")
	chef2 := testhelpers.CreateTestUser(t, db, "chef2")
	testhelpers.CreateTestRecipe(t, db, chef1, "Oats", "Breakfast")
	testhelpers.CreateTestRecipe(t, db, chef1, "Salad", "Lunch")
	testhelpers.CreateTestRecipe(t, db, chef2, "Curry", "Dinner")

	recipes, err := recipeSvc.ListByOwner(context.Background(), chef1.ID)
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
	for _, r := range recipes {
		assert.Equal(t, chef1.ID, r.UserID)
	}
}

func TestListFilters(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeSvc := service.NewRecipeService(db, nil)
	chef := testhelpers.CreateTestUser(t, db, "chef1")
	testhelpers.CreateTestRecipe(t, db, chef, "Protein Oats", "Breakfast")
	testhelpers.CreateTestRecipe(t, db, chef, "Greek Salad", "Lunch")

	byCategory, err := recipeSvc.List(context.Background(), "Breakfast", "")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Protein Oats", byCategory[0].Name)

	bySearch, err := recipeSvc.List(context.Background(), "", "greek")
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Greek Salad", bySearch[0].Name)

	all, err := recipeSvc.List(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListSimilar(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeSvc := service.NewRecipeService(db, nil)
	chef := testhelpers.CreateTestUser(t, db, "chef1")

	r1 := testhelpers.CreateTestRecipe(t, db, chef, "Oats", "Breakfast")
	testhelpers.CreateTestRecipe(t, db, chef, "Pancakes", "Breakfast")
	testhelpers.CreateTestRecipe(t, db, chef, "Smoothie", "Breakfast")
	testhelpers.CreateTestRecipe(t, db, chef, "Yogurt Bowl", "Breakfast")
	testhelpers.CreateTestRecipe(t, db, chef, "Omelette", "Breakfast")
	testhelpers.CreateTestRecipe(t, db, chef, "Curry", "Dinner")

	similar, err := recipeSvc.ListSimilar(context.Background(), r1.ID, "Breakfast", 3)
	require.NoError(t, err)

	// Never the excluded recipe, at most the limit, same category only.
	assert.Len(t, similar, 3)
	for _, s := range similar {
		assert.NotEqual(t, r1.ID, s.ID)
		assert.NotEqual(t, "Curry", s.Name)
	}

	// Empty category yields an empty result, the caller's fallback cue.
	similar, err = recipeSvc.ListSimilar(context.Background(), r1.ID, "Desserts", 3)
	require.NoError(t, err)
	assert.Empty(t, similar)
}
