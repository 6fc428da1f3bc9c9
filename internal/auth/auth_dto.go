package auth

import "go-hrm/internal/domain"

type LoginRequest struct {
	CompanySlug string `json:"company_slug" binding:"required,min=2,slug"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type RegisterCompanyRequest struct {
	CompanyName string `json:"company_name" binding:"required,min=2,max=150"`
	CompanySlug string `json:"company_slug" binding:"required,min=2,max=100,slug"`
	Name        string `json:"name" binding:"required,min=2"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

// RegisterMemberRequest registers an employee or a manager. Position is
// ignored for managers.
type RegisterMemberRequest struct {
	CompanySlug    string `json:"company_slug" binding:"required,min=2,slug"`
	DepartmentName string `json:"department_name" binding:"required,min=2"`
	Name           string `json:"name" binding:"required,min=2"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Position       string `json:"position" binding:"omitempty,min=2"`
}

type UserResponse struct {
	ID           string      `json:"id"`
	CompanyID    string      `json:"company_id"`
	DepartmentID *string     `json:"department_id,omitempty"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
}

type CompanySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Session is a freshly issued credential plus the account it belongs to.
type Session struct {
	Token   string          `json:"token"`
	User    UserResponse    `json:"user"`
	Company *CompanySummary `json:"company,omitempty"`
}

type MemberResponse struct {
	User         UserResponse `json:"user"`
	EmployeeID   string       `json:"employee_id"`
	EmployeeCode string       `json:"employee_code"`
	Position     string       `json:"position"`
}
