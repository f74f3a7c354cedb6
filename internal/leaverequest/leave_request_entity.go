package leaverequest

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// LeaveRequest carries both approval stages on one row: the manager stage
// writes approved_by/approved_by_status, the HR stage writes
// hr_approval/approval_hr and finalizes request_status.
type LeaveRequest struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode     string    `gorm:"size:20;not null;index"`
	EmployeeName     string    `gorm:"size:150;not null"`
	Designation      string    `gorm:"size:100"`
	Department       string    `gorm:"size:100;not null;index"`
	FromDate         time.Time `gorm:"not null"`
	ToDate           time.Time `gorm:"not null"`
	Reason           string    `gorm:"size:500;not null"`
	MobileNumber     string    `gorm:"size:20"`
	UrgentMobile     string    `gorm:"size:20"`
	RequestStatus    string    `gorm:"size:20;not null;default:Pending"`
	// ApprovedBy holds the manager's display name, not a code; size it like
	// EmployeeName.
	ApprovedBy       string    `gorm:"size:150"`
	ApprovedByStatus string    `gorm:"size:20"`
	HrApproval       string    `gorm:"size:20"`
	ApprovalHr       string    `gorm:"size:20"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
