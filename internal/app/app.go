package app

import (
	"context"
	"database/sql"
	"os"

	"hrfiles/internal/employee"
	"hrfiles/internal/leaverequest"
	"hrfiles/internal/resume"
	"hrfiles/internal/shared/connection"
	"hrfiles/internal/shared/counter"
	"hrfiles/internal/staffrequest"
	"hrfiles/internal/ticket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects infrastructure, runs migrations, and registers every
// module's routes on the router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := migrate(gormDB, sqlDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		// The API degrades without redis (no cache, no idempotency replay
		// protection) rather than refusing to start.
		zap.L().Warn("redis unavailable, continuing without cache", zap.Error(err))
		redisClient = nil
	}

	return registerModules(router, sqlDB, gormDB, redisClient)
}

func migrate(gormDB *gorm.DB, sqlDB *sql.DB) error {
	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&leaverequest.LeaveRequest{},
		&staffrequest.StaffRequest{},
		&ticket.Ticket{},
		&resume.Resume{},
		&counter.Counter{},
	); err != nil {
		return err
	}

	// The outbox table is owned by raw SQL, not gorm: the producer worker
	// reads it with database/sql and the schema carries retry bookkeeping.
	const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT NOT NULL DEFAULT '',
	aggregate_type TEXT NOT NULL,
	aggregate_id TEXT NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created
	ON outbox_events (status, created_at);
`
	_, err := sqlDB.ExecContext(context.Background(), outboxDDL)
	return err
}
