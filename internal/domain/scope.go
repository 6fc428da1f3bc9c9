package domain

import "github.com/google/uuid"

type ScopeKind string

const (
	ScopeSelf       ScopeKind = "SELF"
	ScopeDepartment ScopeKind = "DEPARTMENT"
	ScopeTenant     ScopeKind = "TENANT"
)

// VisibilityScope is the set of records a principal may see. TenantID is
// always set. UserID is set for ScopeSelf, DepartmentID for ScopeDepartment.
type VisibilityScope struct {
	Kind         ScopeKind
	TenantID     uuid.UUID
	UserID       uuid.UUID
	DepartmentID uuid.UUID
}

func SelfScope(tenantID, userID uuid.UUID) VisibilityScope {
	return VisibilityScope{Kind: ScopeSelf, TenantID: tenantID, UserID: userID}
}

func DepartmentScope(tenantID, departmentID uuid.UUID) VisibilityScope {
	return VisibilityScope{Kind: ScopeDepartment, TenantID: tenantID, DepartmentID: departmentID}
}

func TenantScope(tenantID uuid.UUID) VisibilityScope {
	return VisibilityScope{Kind: ScopeTenant, TenantID: tenantID}
}
