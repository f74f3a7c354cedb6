package leaverequest

import (
	"hrfiles/internal/middleware"
	"hrfiles/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	leaves := r.Group("/leave-requests")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("",
			rbac.Authorize(rbacService, "leave-requests", "read"),
			handler.GetAll,
		)

		leaves.GET("/status/:status",
			rbac.Authorize(rbacService, "leave-requests", "read"),
			handler.GetByStatus,
		)

		leaves.GET("/pending-approvals",
			rbac.Authorize(rbacService, "leave-requests", "read"),
			handler.PendingApprovals,
		)

		leaves.POST("",
			middleware.Idempotency(rdb),
			handler.Create,
		)

		// Approval authority is resolved per caller inside the service;
		// RBAC only gates that a session exists with a known role.
		leaves.PUT("/:id",
			rbac.Authorize(rbacService, "leave-requests", "read"),
			handler.Update,
		)
	}
}
