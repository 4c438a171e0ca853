package types

// RegisterRequest carries the registration form. Tags along the original
// form: full name is optional, terms must be accepted.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name"`
	AcceptedTerms   bool   `json:"accepted_terms"`
}

// LoginRequest accepts either a username or an email in the same field.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// RecipeInput carries the share-your-meal form. Tags arrive comma separated,
// ingredients and instructions one item per line; the service normalizes
// both. A zero Calories value means "suggest the default from the macros".
type RecipeInput struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Tags         string  `json:"tags"`
	Description  string  `json:"description"`
	RecipeURL    string  `json:"recipe_url"`
	Image        string  `json:"image"`
	Protein      int     `json:"protein"`
	Carbs        int     `json:"carbs"`
	Fat          int     `json:"fat"`
	Calories     int     `json:"calories"`
	Fiber        int     `json:"fiber"`
	Sugar        int     `json:"sugar"`
	Sodium       int     `json:"sodium"`
	Cholesterol  int     `json:"cholesterol"`
	SaturatedFat float64 `json:"saturated_fat"`
	TransFat     float64 `json:"trans_fat"`
	Ingredients  string  `json:"ingredients"`
	Instructions string  `json:"instructions"`
}

// UpdateProfileRequest updates the owner-editable profile fields. Nil means
// "leave unchanged".
type UpdateProfileRequest struct {
	FullName   *string `json:"full_name"`
	Bio        *string `json:"bio"`
	ProfilePic *string `json:"profile_pic"`
}

// ProfileStats are the activity numbers on the profile page, computed from
// real queries.
type ProfileStats struct {
	RecipesShared int64 `json:"recipes_shared"`
	SavedRecipes  int64 `json:"saved_recipes"`
	TotalLikes    int64 `json:"total_likes"`
	Comments      int64 `json:"comments"`
}
