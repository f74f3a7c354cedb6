package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "Active"
	StatusResigned = "Resigned"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"uniqueIndex:uq_employee_code;size:20;not null"`
	Name         string    `gorm:"size:150;not null"`
	Email        string    `gorm:"uniqueIndex:uq_employee_email;size:150"`
	MobileNumber string    `gorm:"size:20"`
	Department   string    `gorm:"size:100;not null"`
	Designation  string    `gorm:"size:100"`
	Role         string    `gorm:"size:20;not null;default:user"`
	Status       string    `gorm:"size:20;not null;default:Active"`
	Password     string    `gorm:"size:100;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string {
	return "employees"
}
