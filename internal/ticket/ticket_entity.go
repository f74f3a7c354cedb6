package ticket

import (
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PersonName      string    `gorm:"size:150;not null"`
	PersonCode      string    `gorm:"size:20"`
	BookedByName    string    `gorm:"size:150"`
	BookedByCode    string    `gorm:"size:20;not null;index"`
	BillNumber      string    `gorm:"size:50"`
	TravelsName     string    `gorm:"size:150"`
	TypeOfBill      string    `gorm:"size:50"`
	Charges         float64
	PerTicketAmount float64
	TotalAmount     float64
	RequestStatus   string `gorm:"size:20;not null;default:Booked"`
	BillKey         string `gorm:"size:255"`
	BillContentType string `gorm:"size:100"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Ticket) TableName() string {
	return "tickets"
}
