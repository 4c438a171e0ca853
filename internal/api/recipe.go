package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leoskitchen/backend/internal/middleware"
	"github.com/leoskitchen/backend/internal/service"
	"github.com/leoskitchen/backend/internal/types"
)

const defaultCommentLimit = 10

type RecipeHandler struct {
	recipeService *service.RecipeService
	socialService *service.SocialService
	authService   *service.AuthService
}

func NewRecipeHandler(recipeService *service.RecipeService, socialService *service.SocialService, authService *service.AuthService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		socialService: socialService,
		authService:   authService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/similar", h.GetSimilarRecipes)
		recipes.GET("/:id/comments", h.ListComments)

		authed := recipes.Group("", middleware.Auth(h.authService))
		{
			authed.POST("", h.CreateRecipe)
			authed.PUT("/:id", h.UpdateRecipe)
			authed.POST("/:id/like", h.LikeRecipe)
			authed.POST("/:id/save", h.SaveRecipe)
			authed.DELETE("/:id/save", h.UnsaveRecipe)
			authed.POST("/:id/favorite", h.FavoriteRecipe)
			authed.DELETE("/:id/favorite", h.UnfavoriteRecipe)
			authed.POST("/:id/comments", h.AddComment)
		}
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.List(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) GetSimilarRecipes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	limit := 3
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	similar, err := h.recipeService.ListSimilar(c.Request.Context(), id, recipe.Category, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"similar_recipes": similar})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var input types.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session := middleware.SessionFrom(c)
	recipe, err := h.recipeService.Create(c.Request.Context(), session.UserID, session.Username, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var input types.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session := middleware.SessionFrom(c)
	recipe, err := h.recipeService.Update(c.Request.Context(), session.UserID, id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) LikeRecipe(c *gin.Context) {
	h.interact(c, h.socialService.Like, "recipe liked")
}

func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	h.interact(c, h.socialService.Save, "recipe saved")
}

func (h *RecipeHandler) UnsaveRecipe(c *gin.Context) {
	h.interact(c, h.socialService.Unsave, "recipe removed from saved")
}

func (h *RecipeHandler) FavoriteRecipe(c *gin.Context) {
	h.interact(c, h.socialService.Favorite, "recipe favorited")
}

func (h *RecipeHandler) UnfavoriteRecipe(c *gin.Context) {
	h.interact(c, h.socialService.Unfavorite, "recipe unfavorited")
}

func (h *RecipeHandler) AddComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session := middleware.SessionFrom(c)
	comment, err := h.socialService.AddComment(c.Request.Context(), session.UserID, session.Username, id, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *RecipeHandler) ListComments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	limit := defaultCommentLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	comments, err := h.socialService.ListComments(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// interact is the shared shape of the like/save/favorite endpoints: parse
// the recipe id, run the operation as the session user, confirm.
func (h *RecipeHandler) interact(c *gin.Context, op func(context.Context, uuid.UUID, uuid.UUID) error, message string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	session := middleware.SessionFrom(c)
	if err := op(c.Request.Context(), session.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "id": id})
}
