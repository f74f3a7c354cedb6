package staffrequest

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
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	requests.Use(middleware.ContextLogger(logger))
	{
		requests.GET("",
			rbac.Authorize(rbacService, "requests", "read"),
			handler.GetAll,
		)

		requests.GET("/:id",
			rbac.Authorize(rbacService, "requests", "read"),
			handler.GetById,
		)

		requests.POST("",
			handler.Create,
		)

		requests.PUT("/:id",
			rbac.Authorize(rbacService, "requests", "write"),
			handler.Update,
		)
	}
}
