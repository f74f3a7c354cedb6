package ticket

// CreateTicketRequest binds the multipart form fields; the bill file itself
// is read from the request separately.
type CreateTicketRequest struct {
	PersonName      string  `form:"person_name" binding:"required"`
	PersonCode      string  `form:"person_code"`
	BillNumber      string  `form:"bill_number"`
	TravelsName     string  `form:"travels_name"`
	TypeOfBill      string  `form:"type_of_bill"`
	Charges         float64 `form:"charges"`
	PerTicketAmount float64 `form:"per_ticket_amount"`
	TotalAmount     float64 `form:"total_amount"`
}

type TicketResponse struct {
	ID              string  `json:"id"`
	PersonName      string  `json:"person_name"`
	PersonCode      string  `json:"person_code"`
	BookedByName    string  `json:"booked_by_name"`
	BookedByCode    string  `json:"booked_by_code"`
	BillNumber      string  `json:"bill_number"`
	TravelsName     string  `json:"travels_name"`
	TypeOfBill      string  `json:"type_of_bill"`
	Charges         float64 `json:"charges"`
	PerTicketAmount float64 `json:"per_ticket_amount"`
	TotalAmount     float64 `json:"total_amount"`
	RequestStatus   string  `json:"request_status"`
	HasBill         bool    `json:"has_bill"`
	CreatedAt       string  `json:"created_at"`
}
