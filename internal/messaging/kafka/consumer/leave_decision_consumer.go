package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hrfiles/internal/employee"
	"hrfiles/internal/events"
	"hrfiles/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveDecisions mails the requester whenever a leave request clears
// or fails an approval stage. Malformed messages are committed and dropped;
// delivery failures are committed too — notification is best-effort and must
// never wedge the partition.
func ConsumeLeaveDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	employeeRepo employee.Repository,
	mailer notification.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decision")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecisionEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave decision event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notifyRequester(ctx, employeeRepo, mailer, event); err != nil {
			log.Warn("leave decision notification failed",
				zap.String("leave_request_id", event.LeaveRequestID),
				zap.String("employee_code", event.EmployeeCode),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision processed",
			zap.String("leave_request_id", event.LeaveRequestID),
			zap.String("stage", event.Stage),
			zap.String("decision", event.Decision),
		)
	}
}

func notifyRequester(
	ctx context.Context,
	employeeRepo employee.Repository,
	mailer notification.Mailer,
	event events.LeaveDecisionEvent,
) error {
	emp, err := employeeRepo.FindByCode(ctx, event.EmployeeCode)
	if err != nil {
		return fmt.Errorf("lookup requester %s: %w", event.EmployeeCode, err)
	}
	if emp.Email == "" {
		return fmt.Errorf("requester %s has no email", event.EmployeeCode)
	}

	stage := "your manager"
	if event.Stage == events.LeaveStageHr {
		stage = "HR"
	}

	subject := fmt.Sprintf("Leave request %s by %s", strings.ToLower(event.Decision), stage)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour leave request has been %s by %s (%s).\n\nHR File Management",
		event.EmployeeName,
		strings.ToLower(event.Decision),
		event.DecidedBy,
		stage,
	)

	return mailer.Send(emp.Email, subject, body)
}
