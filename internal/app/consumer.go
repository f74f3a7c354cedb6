package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hrfiles/internal/employee"
	"hrfiles/internal/events"
	"hrfiles/internal/messaging/kafka/consumer"
	"hrfiles/internal/notification"
	"hrfiles/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer tails leave-decision events and emails the requester.
// Without SMTP configuration deliveries are logged instead of sent.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

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
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	employeeRepo := employee.NewRepository(gormDB)

	var mailer notification.Mailer
	if cfg, ok := notification.ConfigFromEnv(); ok {
		mailer = notification.NewSMTPMailer(cfg)
	} else {
		logger.Warn("SMTP not configured, decisions will be logged only")
		mailer = notification.NewLogMailer(logger)
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.LeaveDecisionTopic,
		GroupID:        "hrfiles-leave-notifier",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeLeaveDecisions(ctx, reader, employeeRepo, mailer, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
