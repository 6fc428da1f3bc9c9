package authz

import (
	"slices"

	authzerrors "go-hrm/internal/authz/errors"
	"go-hrm/internal/domain"
)

// Fallback selects what ScopeFor does for a manager without a department.
type Fallback int

const (
	// FallbackStrict rejects the request with ErrNoDepartmentAssigned.
	FallbackStrict Fallback = iota
	// FallbackTenant widens the scope to the whole tenant.
	FallbackTenant
)

// Require returns the principal unchanged when its role is one of roles.
func Require(p domain.Principal, roles ...domain.Role) (domain.Principal, error) {
	if !slices.Contains(roles, p.Role) {
		return domain.Principal{}, authzerrors.ErrForbidden
	}
	return p, nil
}

// ScopeFor computes the visibility scope of p.
//
//	USER                       -> Self
//	MANAGER with department    -> Department
//	MANAGER without department -> ErrNoDepartmentAssigned, or Tenant with FallbackTenant
//	ADMIN                      -> Tenant
func ScopeFor(p domain.Principal, fallback Fallback) (domain.VisibilityScope, error) {
	switch p.Role {
	case domain.RoleAdmin:
		return domain.TenantScope(p.TenantID), nil
	case domain.RoleManager:
		if p.HasDepartment() {
			return domain.DepartmentScope(p.TenantID, *p.DepartmentID), nil
		}
		if fallback == FallbackTenant {
			return domain.TenantScope(p.TenantID), nil
		}
		return domain.VisibilityScope{}, authzerrors.ErrNoDepartmentAssigned
	case domain.RoleUser:
		return domain.SelfScope(p.TenantID, p.UserID), nil
	}
	return domain.VisibilityScope{}, authzerrors.ErrForbidden
}
