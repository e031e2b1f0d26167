package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pactum/internal/shared/constants"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/utils"
)

// RouteEnforcer decides whether a role may perform an action on a resource.
type RouteEnforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer RouteEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer RouteEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// Enforce checks the route pattern and method against the policy store.
// Runs after RequireAuth; a missing role means the request never passed it.
func (m *PermissionMiddleware) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		resource := c.FullPath()
		action := c.Request.Method

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed",
				"error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
