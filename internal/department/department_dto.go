package department

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type DepartmentResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}
