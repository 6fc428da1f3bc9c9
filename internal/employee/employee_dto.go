package employee

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID           string                      `json:"id"`
	UserID       string                      `json:"user_id"`
	CompanyID    string                      `json:"company_id"`
	Name         string                      `json:"name"`
	Email        string                      `json:"email"`
	EmployeeCode string                      `json:"employee_code"`
	Position     string                      `json:"position"`
	JoinDate     string                      `json:"join_date"`
	Department   *EmployeeDepartmentResponse `json:"department,omitempty"`
}

type EmployeeListResult struct {
	Items []EmployeeResponse
	Total int64
}
