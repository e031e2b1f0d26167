// Package routes wires handlers onto the gin engine. Each context gets its
// own setup function so the router stays a flat list of registrations.
package routes

import (
	"github.com/gin-gonic/gin"

	"pactum/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

// SetupAuthRoutes configures the authentication routes. Login is the only
// unauthenticated endpoint besides the gateway callback.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
	}
}
