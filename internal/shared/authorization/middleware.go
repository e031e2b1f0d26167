package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pactum/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(RoleAdmin)
}

// RequireRole aborts the request unless the authenticated session carries at
// least the given role. Checks fail closed: no role in context means reject.
func RequireRole(min UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole == "" || !UserRole(userRole).AtLeast(min) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "insufficient role",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessEntity reports whether the actor may operate on records owned by
// the given entity. Operators and admins may act on any entity; entity-self
// sessions only on their own.
func CanAccessEntity(actorEntityID uint, role UserRole, entityID uint) bool {
	if role.AtLeast(RoleOperator) {
		return true
	}
	return actorEntityID != 0 && actorEntityID == entityID
}
