package leaverequest

type CreateLeaveRequest struct {
	FromDate     string `json:"from_date" binding:"required"`
	ToDate       string `json:"to_date" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
	MobileNumber string `json:"mobilenumber"`
	UrgentMobile string `json:"urgent_mobilenumber"`
}

// UpdateLeaveRequest is the single PUT payload the client sends for both
// approval stages. Which stage runs is decided by the fields present:
// hr_approval selects the HR stage, approved_by_status the manager stage.
type UpdateLeaveRequest struct {
	ApprovedBy       string `json:"approved_by"`
	ApprovedByStatus string `json:"approved_by_status" binding:"omitempty,oneof=Approved Rejected"`
	HrApproval       string `json:"hr_approval" binding:"omitempty,oneof=Approved"`
	RequestStatus    string `json:"request_status"`
	ApprovalHr       string `json:"approval_hr"`
}

type LeaveRequestResponse struct {
	ID               string `json:"id"`
	EmployeeCode     string `json:"employee_id"`
	EmployeeName     string `json:"employee_name"`
	Designation      string `json:"designation"`
	Department       string `json:"department"`
	FromDate         string `json:"from_date"`
	ToDate           string `json:"to_date"`
	Days             int    `json:"days"`
	Reason           string `json:"reason"`
	MobileNumber     string `json:"mobilenumber"`
	UrgentMobile     string `json:"urgent_mobilenumber"`
	RequestStatus    string `json:"request_status"`
	ApprovedBy       string `json:"approved_by"`
	ApprovedByStatus string `json:"approved_by_status"`
	HrApproval       string `json:"hr_approval"`
	ApprovalHr       string `json:"approval_hr"`
	CreatedAt        string `json:"created_at"`
}
