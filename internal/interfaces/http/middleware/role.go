package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// RequireRole admits users whose role meets or exceeds min. It must
// run after Authenticate; an unauthenticated request is a 401, never a
// 403.
func RequireRole(min identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			unauthorized(c)
			return
		}
		if !claims.UserRole().AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// RequireAdmin admits any staff member (editor and above).
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(identity.RoleEditor)
}

// RequireManager admits managers and super admins.
func RequireManager() gin.HandlerFunc {
	return RequireRole(identity.RoleManager)
}

// RequireSuperAdmin admits super admins only.
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireRole(identity.RoleSuperAdmin)
}
