package routes

import (
	"github.com/gin-gonic/gin"

	"pactum/internal/interfaces/http/handlers"
	"pactum/internal/interfaces/http/middleware"
)

// EntityRouteConfig holds dependencies for entity routes.
type EntityRouteConfig struct {
	EntityHandler        *handlers.EntityHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupEntityRoutes configures the contracting party routes.
func SetupEntityRoutes(engine *gin.Engine, cfg *EntityRouteConfig) {
	entities := engine.Group("/api/entities")
	entities.Use(cfg.AuthMiddleware.RequireAuth())
	entities.Use(cfg.PermissionMiddleware.Enforce())
	{
		entities.POST("", cfg.EntityHandler.Register)
		entities.GET("", cfg.EntityHandler.Find)
		entities.GET("/:sid", cfg.EntityHandler.Get)
		entities.PUT("/:sid/profile", cfg.EntityHandler.AttachProfile)
	}
}
