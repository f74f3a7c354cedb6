package dashboard

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
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware())
	dash.Use(middleware.ContextLogger(logger))
	{
		dash.GET("",
			rbac.Authorize(rbacService, "dashboard", "read"),
			handler.Stats,
		)
	}
}
