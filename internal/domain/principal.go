package domain

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// Principal is the authenticated identity derived from a verified credential.
// It is never persisted and carries nothing beyond these fields.
type Principal struct {
	UserID       uuid.UUID  `json:"userId"`
	TenantID     uuid.UUID  `json:"companyId"`
	Role         Role       `json:"role"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty"`
}

func (p Principal) HasDepartment() bool {
	return p.DepartmentID != nil && *p.DepartmentID != uuid.Nil
}
