package employee

type LoginRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Employee EmployeeResponse `json:"employee"`
}

type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	MobileNumber string `json:"mobile_number"`
	Department   string `json:"department" binding:"required"`
	Designation  string `json:"designation"`
	Role         string `json:"role" binding:"omitempty,oneof=admin user"`
	Status       string `json:"status" binding:"omitempty,oneof=Active Resigned"`
	Password     string `json:"password" binding:"required,min=6"`
}

type UpdateEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	MobileNumber string `json:"mobile_number"`
	Department   string `json:"department" binding:"required"`
	Designation  string `json:"designation"`
	Role         string `json:"role" binding:"omitempty,oneof=admin user"`
	Status       string `json:"status" binding:"omitempty,oneof=Active Resigned"`
	Password     string `json:"password" binding:"omitempty,min=6"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Department   string `json:"department"`
	Designation  string `json:"designation"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}
