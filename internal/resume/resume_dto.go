package resume

type CreateResumeRequest struct {
	ReqID                 string `form:"req_id"`
	Name                  string `form:"name" binding:"required"`
	Email                 string `form:"email" binding:"omitempty,email"`
	Mobile                string `form:"mobile"`
	AppliedForDesignation string `form:"applied_for_designation"`
	Experience            string `form:"experience"`
	PreviousCompany       string `form:"previous_company"`
	PreviousSalary        string `form:"previous_salary"`
	MaritalStatus         string `form:"marital_status"`
	Reference             string `form:"reference"`
	PresentAddress        string `form:"present_address"`
	ReasonForChanging     string `form:"reason_for_changing"`
}

// UpdateResumeRequest is partial: nil fields keep their stored value, empty
// strings clear them (the SPA sends the whole edited column).
type UpdateResumeRequest struct {
	InterviewerPlanned *string `json:"interviewer_planned"`
	InterviewerActual  *string `json:"interviewer_actual"`
	InterviewerStatus  *string `json:"interviewer_status"`
	CandidateStatus    *string `json:"candidate_status"`
	JoinedStatus       *string `json:"joined_status"`
}

type ResumeResponse struct {
	ID                    string `json:"id"`
	ReqID                 string `json:"req_id"`
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Mobile                string `json:"mobile"`
	AppliedForDesignation string `json:"applied_for_designation"`
	Experience            string `json:"experience"`
	PreviousCompany       string `json:"previous_company"`
	PreviousSalary        string `json:"previous_salary"`
	MaritalStatus         string `json:"marital_status"`
	Reference             string `json:"reference"`
	PresentAddress        string `json:"present_address"`
	ReasonForChanging     string `json:"reason_for_changing"`
	InterviewerPlanned    string `json:"interviewer_planned"`
	InterviewerActual     string `json:"interviewer_actual"`
	InterviewerStatus     string `json:"interviewer_status"`
	CandidateStatus       string `json:"candidate_status"`
	JoinedStatus          string `json:"joined_status"`
	HasFile               bool   `json:"has_file"`
	CreatedAt             string `json:"created_at"`
}
