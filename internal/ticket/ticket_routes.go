package ticket

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
	tickets := r.Group("/tickets")
	tickets.Use(middleware.AuthMiddleware())
	tickets.Use(middleware.ContextLogger(logger))
	{
		tickets.GET("",
			rbac.Authorize(rbacService, "tickets", "read"),
			handler.GetAll,
		)

		tickets.GET("/:id",
			rbac.Authorize(rbacService, "tickets", "read"),
			handler.GetById,
		)

		tickets.GET("/:id/bill",
			rbac.Authorize(rbacService, "tickets", "read"),
			handler.DownloadBill,
		)

		// Desk membership is enforced in the service from the session code.
		tickets.POST("",
			handler.Create,
		)
	}
}
