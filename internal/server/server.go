package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/leoskitchen/backend/config"
	"github.com/leoskitchen/backend/internal/api"
	"github.com/leoskitchen/backend/internal/database"
	"github.com/leoskitchen/backend/internal/router"
	"github.com/leoskitchen/backend/internal/service"
)

// Server wires the services and handlers together and runs the HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance. The cache client and the health
// connection may be nil.
func New(cfg *config.Config, db *gorm.DB, cache *redis.Client, healthDB *sql.DB) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db, cache)
	socialService := service.NewSocialService(db, cache)
	profileService := service.NewProfileService(db)

	authHandler := api.NewAuthHandler(authService)
	recipeHandler := api.NewRecipeHandler(recipeService, socialService, authService)
	profileHandler := api.NewProfileHandler(profileService, recipeService, socialService, authService)

	var healthCheck func(context.Context) error
	if healthDB != nil {
		healthCheck = func(ctx context.Context) error {
			return database.HealthCheck(ctx, healthDB)
		}
	}

	r := router.Setup(authHandler, recipeHandler, profileHandler, cfg.AllowedOrigins, healthCheck)

	return &Server{
		router: r,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: r,
		},
	}
}

// Router returns the configured HTTP handler.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
