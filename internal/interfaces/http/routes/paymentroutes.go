package routes

import (
	"github.com/gin-gonic/gin"

	"pactum/internal/interfaces/http/handlers"
	"pactum/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler       *handlers.PaymentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPaymentRoutes configures the payment routes. The gateway callback is
// registered outside the authenticated group; its HMAC signature is the
// only credential the gateway presents.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	engine.POST("/api/payments/callback", cfg.PaymentHandler.GatewayCallback)

	payments := engine.Group("/api/payments")
	payments.Use(cfg.AuthMiddleware.RequireAuth())
	payments.Use(cfg.PermissionMiddleware.Enforce())
	{
		payments.POST("", cfg.PaymentHandler.Initiate)
		payments.GET("/:sid", cfg.PaymentHandler.Get)
		payments.POST("/:sid/refund", cfg.PaymentHandler.Refund)
	}
}
