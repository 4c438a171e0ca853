package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leoskitchen/backend/internal/middleware"
	"github.com/leoskitchen/backend/internal/service"
	"github.com/leoskitchen/backend/internal/types"
)

// ProfileHandler serves the logged-in user's profile page: account fields,
// their recipes, saved/favorite lists and activity stats.
type ProfileHandler struct {
	profileService *service.ProfileService
	recipeService  *service.RecipeService
	socialService  *service.SocialService
	authService    *service.AuthService
}

func NewProfileHandler(profileService *service.ProfileService, recipeService *service.RecipeService, socialService *service.SocialService, authService *service.AuthService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		recipeService:  recipeService,
		socialService:  socialService,
		authService:    authService,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile", middleware.Auth(h.authService))
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.GET("/recipes", h.GetMyRecipes)
		profile.GET("/saved", h.GetSavedRecipes)
		profile.GET("/favorites", h.GetFavoriteRecipes)
		profile.GET("/stats", h.GetStats)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	session := middleware.SessionFrom(c)
	user, err := h.profileService.GetProfile(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session := middleware.SessionFrom(c)
	user, err := h.profileService.UpdateProfile(c.Request.Context(), session.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) GetMyRecipes(c *gin.Context) {
	session := middleware.SessionFrom(c)
	recipes, err := h.recipeService.ListByOwner(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *ProfileHandler) GetSavedRecipes(c *gin.Context) {
	session := middleware.SessionFrom(c)
	recipes, err := h.socialService.ListSaved(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *ProfileHandler) GetFavoriteRecipes(c *gin.Context) {
	session := middleware.SessionFrom(c)
	recipes, err := h.socialService.ListFavorites(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *ProfileHandler) GetStats(c *gin.Context) {
	session := middleware.SessionFrom(c)
	stats, err := h.socialService.Stats(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
