package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pactum/internal/infrastructure/auth"
	"pactum/internal/shared/constants"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the actor identity in the
// request context for handlers and the permission layer.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Debugw("token verification failed", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActorSID, claims.AccountSID)
		c.Set(constants.ContextKeyUserRole, claims.Role.String())
		c.Set(constants.ContextKeyEntityID, claims.EntityID)
		c.Set(constants.ContextKeySessionID, claims.SessionID)

		c.Next()
	}
}
