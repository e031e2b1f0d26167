package routes

import (
	"github.com/gin-gonic/gin"

	"pactum/internal/interfaces/http/handlers"
	"pactum/internal/interfaces/http/middleware"
	"pactum/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for the administrative surface.
type AdminRouteConfig struct {
	BillingHandler       *handlers.BillingHandler
	EvaluationHandler    *handlers.EvaluationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures the billing and evaluation admin routes.
// The evaluation inactivation accepts GET as well as POST for legacy admin
// tooling that triggers it from a link.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	admin.Use(authorization.RequireAdmin())
	admin.Use(cfg.PermissionMiddleware.Enforce())
	{
		admin.GET("/billing", cfg.BillingHandler.Status)
		// retired spreadsheet export, kept registered so callers get 410
		// instead of a misleading 404
		admin.GET("/billing/export/csv", cfg.BillingHandler.ExportCSV)

		admin.GET("/evaluations/inactivate", cfg.EvaluationHandler.Inactivate)
		admin.POST("/evaluations/inactivate", cfg.EvaluationHandler.Inactivate)
	}
}
