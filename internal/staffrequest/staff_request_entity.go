package staffrequest

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeTravel   = "Travel"
	TypeStaffing = "Staffing"

	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

// StaffRequest covers both travel and staffing variants; the unused columns
// of the other variant stay empty, matching the single form the SPA submits.
type StaffRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestNo     string    `gorm:"uniqueIndex:uq_staff_request_no;size:20;not null"`
	EmployeeCode  string    `gorm:"size:20;not null;index"`
	EmployeeName  string    `gorm:"size:150;not null"`
	Department    string    `gorm:"size:100"`
	RequestType   string    `gorm:"size:20;not null"`
	TravelType    string    `gorm:"size:50"`
	Reason        string    `gorm:"size:500"`
	Headcount     int
	FromDate      *time.Time
	ToDate        *time.Time
	DepartureDate *time.Time
	RequestFor    string `gorm:"size:100"`
	Quantity      int
	Experience    string `gorm:"size:100"`
	Education     string `gorm:"size:100"`
	Remarks       string `gorm:"size:500"`
	RequestStatus string `gorm:"size:20;not null;default:Open"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (StaffRequest) TableName() string {
	return "staff_requests"
}
