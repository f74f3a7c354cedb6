package employee

import (
	"hrfiles/internal/middleware"
	"hrfiles/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	// Login stays outside the auth group; brute force is slowed per IP.
	r.POST("/employees/login",
		middleware.RateLimitByIP(1, 5),
		middleware.ContextLogger(logger),
		handler.Login,
	)

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			rbac.Authorize(rbacService, "employees", "read"),
			handler.GetAll,
		)

		employees.GET("/:id",
			rbac.Authorize(rbacService, "employees", "read"),
			handler.GetById,
		)

		employees.POST("",
			rbac.Authorize(rbacService, "employees", "write"),
			handler.Create,
		)

		employees.PUT("/:id",
			rbac.Authorize(rbacService, "employees", "write"),
			handler.Update,
		)

		employees.DELETE("/:id",
			rbac.Authorize(rbacService, "employees", "delete"),
			handler.Delete,
		)
	}

	// Label lookups stay outside the auth group: the signup form loads them
	// before a session exists. They live under /employees so the static paths
	// win over the authenticated /employees/:id route.
	lookups := r.Group("/employees")
	lookups.Use(middleware.ContextLogger(logger))
	{
		lookups.GET("/departments", handler.Departments)
		lookups.GET("/designations", handler.Designations)
	}
}
