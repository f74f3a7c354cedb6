package staffrequest

type CreateStaffRequest struct {
	RequestType   string `json:"request_type" binding:"required,oneof=Travel Staffing"`
	TravelType    string `json:"travel_type"`
	Reason        string `json:"reason"`
	Headcount     int    `json:"headcount"`
	FromDate      string `json:"from_date"`
	ToDate        string `json:"to_date"`
	DepartureDate string `json:"departure_date"`
	RequestFor    string `json:"request_for"`
	Quantity      int    `json:"quantity"`
	Experience    string `json:"experience"`
	Education     string `json:"education"`
	Remarks       string `json:"remarks"`
}

// UpdateStaffRequest is partial: nil fields keep their stored value.
type UpdateStaffRequest struct {
	RequestStatus *string `json:"request_status" binding:"omitempty,oneof=Open Closed"`
	Remarks       *string `json:"remarks"`
}

type StaffRequestResponse struct {
	ID            string `json:"id"`
	RequestNo     string `json:"request_no"`
	EmployeeCode  string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	Department    string `json:"department"`
	RequestType   string `json:"request_type"`
	TravelType    string `json:"travel_type,omitempty"`
	Reason        string `json:"reason,omitempty"`
	Headcount     int    `json:"headcount,omitempty"`
	FromDate      string `json:"from_date,omitempty"`
	ToDate        string `json:"to_date,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"`
	RequestFor    string `json:"request_for,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
	Experience    string `json:"experience,omitempty"`
	Education     string `json:"education,omitempty"`
	Remarks       string `json:"remarks,omitempty"`
	RequestStatus string `json:"request_status"`
	CreatedAt     string `json:"created_at"`
}
