package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"learnhive/internal/models/db_models"
	"learnhive/pkg/utils"
)

// RoleLookup resolves the stored role for an email. Satisfied by the user
// service; kept as a local interface so the middleware does not depend on the
// service package.
type RoleLookup interface {
	GetRole(ctx context.Context, email string) (db_models.Role, error)
}

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminMiddleware re-reads the user row on every request rather than trusting
// the role claim; a demoted admin loses access as soon as the row changes.
func AdminMiddleware(roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")

		role, err := roles.GetRole(c.Request.Context(), email)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		if role != db_models.RoleAdmin {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
