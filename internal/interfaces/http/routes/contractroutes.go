package routes

import (
	"github.com/gin-gonic/gin"

	"pactum/internal/interfaces/http/handlers"
	"pactum/internal/interfaces/http/middleware"
)

// ContractRouteConfig holds dependencies for contract routes.
type ContractRouteConfig struct {
	ContractHandler      *handlers.ContractHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupContractRoutes configures the contract lifecycle routes.
func SetupContractRoutes(engine *gin.Engine, cfg *ContractRouteConfig) {
	contracts := engine.Group("/api/contracts")
	contracts.Use(cfg.AuthMiddleware.RequireAuth())
	contracts.Use(cfg.PermissionMiddleware.Enforce())
	{
		contracts.POST("", cfg.ContractHandler.Create)
		contracts.GET("/:sid", cfg.ContractHandler.Get)
		contracts.POST("/:sid/activate", cfg.ContractHandler.Activate)
		contracts.POST("/:sid/suspend", cfg.ContractHandler.Suspend)
		contracts.POST("/:sid/reinstate", cfg.ContractHandler.Reinstate)
		contracts.POST("/:sid/terminate", cfg.ContractHandler.Terminate)
		contracts.POST("/:sid/annotations", cfg.ContractHandler.Annotate)
	}
}
