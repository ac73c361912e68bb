package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petemporio/internal/domain"
	"petemporio/internal/pkg/response"
)

// RequireRoles ensures the authenticated principal has one of the given
// roles.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p.UserID == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// AdminOnly requires the admin role.
func AdminOnly() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin)
}

// StaffOnly requires employee or admin.
func StaffOnly() gin.HandlerFunc {
	return RequireRoles(domain.RoleEmployee, domain.RoleAdmin)
}
