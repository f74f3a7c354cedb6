package resume

import (
	"time"

	"github.com/google/uuid"
)

const (
	CandidateStatusSelected = "Selected"
	CandidateStatusRejected = "Rejected"
)

// Resume tracks a candidate from intake through interview scheduling to the
// join decision. The pipeline columns start empty and are filled by partial
// updates as the candidate moves along.
type Resume struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReqID                 string    `gorm:"size:20;index"`
	Name                  string    `gorm:"size:150;not null"`
	Email                 string    `gorm:"size:150"`
	Mobile                string    `gorm:"size:20"`
	AppliedForDesignation string    `gorm:"size:100"`
	Experience            string    `gorm:"size:100"`
	PreviousCompany       string    `gorm:"size:150"`
	PreviousSalary        string    `gorm:"size:50"`
	MaritalStatus         string    `gorm:"size:20"`
	Reference             string    `gorm:"size:150"`
	PresentAddress        string    `gorm:"size:500"`
	ReasonForChanging     string    `gorm:"size:500"`
	InterviewerPlanned    string    `gorm:"size:150"`
	InterviewerActual     string    `gorm:"size:150"`
	InterviewerStatus     string    `gorm:"size:50"`
	CandidateStatus       string    `gorm:"size:50;index"`
	JoinedStatus          string    `gorm:"size:50"`
	FileKey               string    `gorm:"size:255"`
	FileContentType       string    `gorm:"size:100"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Resume) TableName() string {
	return "resumes"
}
