package events

import "time"

const LeaveDecisionTopic = "hr.leave.decision.v1"

const (
	LeaveStageManager = "manager"
	LeaveStageHr      = "hr"
)

// LeaveDecisionEvent is emitted through the outbox whenever a leave request
// clears (or fails) an approval stage.
type LeaveDecisionEvent struct {
	EventType      string    `json:"event_type"`
	LeaveRequestID string    `json:"leave_request_id"`
	EmployeeCode   string    `json:"employee_code"`
	EmployeeName   string    `json:"employee_name"`
	Department     string    `json:"department"`
	Stage          string    `json:"stage"`
	Decision       string    `json:"decision"`
	DecidedBy      string    `json:"decided_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}
