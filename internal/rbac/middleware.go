package rbac

import (
	"net/http"

	"hrfiles/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize gates a route on the caller's role. The role claim is set by the
// auth middleware; a missing role fails closed.
func Authorize(service Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "Please login again.")
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Authorization check failed.")
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "You do not have permission to access this resource.")
			c.Abort()
			return
		}

		c.Next()
	}
}
