package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"petemporio/internal/domain"
	jwtsvc "petemporio/internal/pkg/jwt"
)

const principalKey = "principal"

// Auth validates the bearer token and resolves the acting Principal once per
// request. Downstream services receive the principal explicitly; nothing
// reads authentication state from globals.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(principalKey, domain.Principal{
			UserID: claims.UserID,
			Role:   claims.Role,
		})
		c.Set("user_id", claims.UserID)
		c.Set("role", string(claims.Role))

		c.Next()
	}
}

// PrincipalFrom returns the principal resolved by Auth. Zero value when the
// route was not authenticated.
func PrincipalFrom(c *gin.Context) domain.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}
	}
	p, _ := v.(domain.Principal)
	return p
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": msg,
		},
	})
}
