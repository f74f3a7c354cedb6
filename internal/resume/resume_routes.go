package resume

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
	resumes := r.Group("/resumes")
	resumes.Use(middleware.AuthMiddleware())
	resumes.Use(middleware.ContextLogger(logger))
	{
		resumes.GET("",
			rbac.Authorize(rbacService, "resumes", "read"),
			handler.GetAll,
		)

		resumes.GET("/selected",
			rbac.Authorize(rbacService, "resumes", "read"),
			handler.GetSelected,
		)

		resumes.GET("/:id",
			rbac.Authorize(rbacService, "resumes", "read"),
			handler.GetById,
		)

		resumes.GET("/:id/file",
			rbac.Authorize(rbacService, "resumes", "read"),
			handler.DownloadFile,
		)

		resumes.POST("",
			rbac.Authorize(rbacService, "resumes", "write"),
			handler.Create,
		)

		resumes.PUT("/:id",
			rbac.Authorize(rbacService, "resumes", "write"),
			handler.Update,
		)
	}
}
