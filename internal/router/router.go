package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leoskitchen/backend/internal/api"
	"github.com/leoskitchen/backend/internal/middleware"
)

// Setup configures the application routes. healthCheck may be nil, in which
// case /health only confirms the process is serving.
func Setup(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	profileHandler *api.ProfileHandler,
	allowedOrigins []string,
	healthCheck func(context.Context) error,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		if healthCheck != nil {
			if err := healthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		recipeHandler.RegisterRoutes(v1)
		profileHandler.RegisterRoutes(v1)
	}

	return router
}
