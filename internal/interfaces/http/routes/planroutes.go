package routes

import (
	"github.com/gin-gonic/gin"

	"pactum/internal/interfaces/http/handlers"
	"pactum/internal/interfaces/http/middleware"
	"pactum/internal/shared/authorization"
)

// PlanRouteConfig holds dependencies for plan catalog routes.
type PlanRouteConfig struct {
	PlanHandler          *handlers.PlanHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPlanRoutes configures the plan catalog routes. Reads are open to any
// authenticated actor; catalog writes live under the admin prefix.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/api/plans")
	plans.Use(cfg.AuthMiddleware.RequireAuth())
	plans.Use(cfg.PermissionMiddleware.Enforce())
	{
		plans.GET("", cfg.PlanHandler.List)
		plans.GET("/:sid", cfg.PlanHandler.Get)
	}

	adminPlans := engine.Group("/api/admin/plans")
	adminPlans.Use(cfg.AuthMiddleware.RequireAuth())
	adminPlans.Use(authorization.RequireAdmin())
	adminPlans.Use(cfg.PermissionMiddleware.Enforce())
	{
		adminPlans.POST("", cfg.PlanHandler.Create)
		adminPlans.POST("/:sid/revise", cfg.PlanHandler.Revise)
		adminPlans.POST("/:sid/retire", cfg.PlanHandler.Retire)
	}
}
