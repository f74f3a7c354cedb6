package app

import (
	"context"
	"database/sql"

	"hrfiles/internal/authz"
	"hrfiles/internal/dashboard"
	"hrfiles/internal/employee"
	"hrfiles/internal/leaverequest"
	"hrfiles/internal/messaging/kafka"
	"hrfiles/internal/middleware"
	"hrfiles/internal/rbac"
	"hrfiles/internal/resume"
	"hrfiles/internal/shared/counter"
	"hrfiles/internal/staffrequest"
	"hrfiles/internal/storage"
	"hrfiles/internal/ticket"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	store, err := storage.NewFromEnv(context.Background())
	if err != nil {
		return err
	}

	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leaverequest.NewRepository(gormDB)
	staffRepo := staffrequest.NewRepository(gormDB)
	ticketRepo := ticket.NewRepository(gormDB)
	resumeRepo := resume.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Authorization ---
	rbacService, err := rbac.NewService(logger)
	if err != nil {
		return err
	}
	approvers := authz.NewStaticProvider()

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, counterRepo, logger)
	leaveService := leaverequest.NewService(db, leaveRepo, approvers, outboxRepo, logger)
	staffService := staffrequest.NewService(db, staffRepo, counterRepo, logger)
	ticketService := ticket.NewService(ticketRepo, approvers, store, logger)
	resumeService := resume.NewService(resumeRepo, store, logger)
	dashboardService := dashboard.NewService(dashboardRepo, rdb, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leaverequest.NewHandler(leaveService, logger)
	staffHandler := staffrequest.NewHandler(staffService, logger)
	ticketHandler := ticket.NewHandler(ticketService, logger)
	resumeHandler := resume.NewHandler(resumeService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)

	// --- Routes ---
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		leaverequest.RegisterRoutes(api, leaveHandler, rbacService, rdb, logger)
		staffrequest.RegisterRoutes(api, staffHandler, rbacService, logger)
		ticket.RegisterRoutes(api, ticketHandler, rbacService, logger)
		resume.RegisterRoutes(api, resumeHandler, rbacService, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, logger)
	}

	return nil
}
