package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"hrfiles/internal/authz"
	"hrfiles/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextEmployeeCode = "employee_code"
	ContextEmployeeName = "employee_name"
	ContextDepartment   = "department"
	ContextDesignation  = "designation"
	ContextRole         = "role"
)

// AuthMiddleware validates the bearer token and fails closed: protected
// operations never run without a verified session.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Please login again.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			message := "Invalid session token."
			if err != nil && strings.Contains(err.Error(), "expired") {
				message = "Session expired, please login again."
			}
			response.Error(c, http.StatusUnauthorized, message)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid token claims.")
			c.Abort()
			return
		}

		code, ok := claims["employee_code"].(string)
		if !ok || code == "" {
			response.Error(c, http.StatusUnauthorized, "Employee code not found in token.")
			c.Abort()
			return
		}

		name, _ := claims["employee_name"].(string)
		department, _ := claims["department"].(string)
		designation, _ := claims["designation"].(string)
		role, _ := claims["role"].(string)

		c.Set(ContextEmployeeCode, code)
		c.Set(ContextEmployeeName, name)
		c.Set(ContextDepartment, department)
		c.Set(ContextDesignation, designation)
		c.Set(ContextRole, role)

		c.Next()
	}
}

// CallerFromContext rebuilds the explicit caller value the workflow layers
// receive. Returns false when the auth middleware did not run.
func CallerFromContext(c *gin.Context) (authz.Caller, bool) {
	code := c.GetString(ContextEmployeeCode)
	if code == "" {
		return authz.Caller{}, false
	}
	return authz.Caller{
		Code:        code,
		Name:        c.GetString(ContextEmployeeName),
		Department:  c.GetString(ContextDepartment),
		Designation: c.GetString(ContextDesignation),
		Role:        c.GetString(ContextRole),
	}, true
}
