package authz_test

import (
	"testing"

	"go-hrm/internal/authz"
	authzerrors "go-hrm/internal/authz/errors"
	"go-hrm/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func principal(role domain.Role, dept *uuid.UUID) domain.Principal {
	return domain.Principal{
		UserID:       uuid.New(),
		TenantID:     uuid.New(),
		Role:         role,
		DepartmentID: dept,
	}
}

func TestRequire(t *testing.T) {
	admin := principal(domain.RoleAdmin, nil)

	got, err := authz.Require(admin, domain.RoleAdmin, domain.RoleManager)
	assert.NoError(t, err)
	assert.Equal(t, admin, got)

	_, err = authz.Require(principal(domain.RoleUser, nil), domain.RoleAdmin, domain.RoleManager)
	assert.ErrorIs(t, err, authzerrors.ErrForbidden)

	_, err = authz.Require(admin)
	assert.ErrorIs(t, err, authzerrors.ErrForbidden)
}

func TestScopeFor(t *testing.T) {
	deptID := uuid.New()

	t.Run("user sees self", func(t *testing.T) {
		p := principal(domain.RoleUser, &deptID)
		scope, err := authz.ScopeFor(p, authz.FallbackStrict)
		assert.NoError(t, err)
		assert.Equal(t, domain.ScopeSelf, scope.Kind)
		assert.Equal(t, p.UserID, scope.UserID)
		assert.Equal(t, p.TenantID, scope.TenantID)
	})

	t.Run("manager sees department", func(t *testing.T) {
		p := principal(domain.RoleManager, &deptID)
		scope, err := authz.ScopeFor(p, authz.FallbackStrict)
		assert.NoError(t, err)
		assert.Equal(t, domain.ScopeDepartment, scope.Kind)
		assert.Equal(t, deptID, scope.DepartmentID)
	})

	t.Run("manager without department is rejected in strict mode", func(t *testing.T) {
		_, err := authz.ScopeFor(principal(domain.RoleManager, nil), authz.FallbackStrict)
		assert.ErrorIs(t, err, authzerrors.ErrNoDepartmentAssigned)

		nilDept := uuid.Nil
		_, err = authz.ScopeFor(principal(domain.RoleManager, &nilDept), authz.FallbackStrict)
		assert.ErrorIs(t, err, authzerrors.ErrNoDepartmentAssigned)
	})

	t.Run("manager without department widens to tenant with fallback", func(t *testing.T) {
		p := principal(domain.RoleManager, nil)
		scope, err := authz.ScopeFor(p, authz.FallbackTenant)
		assert.NoError(t, err)
		assert.Equal(t, domain.TenantScope(p.TenantID), scope)
	})

	t.Run("admin sees tenant", func(t *testing.T) {
		p := principal(domain.RoleAdmin, &deptID)
		scope, err := authz.ScopeFor(p, authz.FallbackStrict)
		assert.NoError(t, err)
		assert.Equal(t, domain.TenantScope(p.TenantID), scope)
	})

	t.Run("unknown role is forbidden", func(t *testing.T) {
		_, err := authz.ScopeFor(principal(domain.Role("GUEST"), nil), authz.FallbackTenant)
		assert.ErrorIs(t, err, authzerrors.ErrForbidden)
	})
}

func TestAuthorizer_Permit(t *testing.T) {
	a, err := authz.NewAuthorizer()
	assert.NoError(t, err)

	tests := []struct {
		role     domain.Role
		resource string
		action   string
		allowed  bool
	}{
		{domain.RoleAdmin, authz.ResourceEmployee, authz.ActionRead, true},
		{domain.RoleManager, authz.ResourceEmployee, authz.ActionRead, true},
		{domain.RoleUser, authz.ResourceLeave, authz.ActionRead, true},
		{domain.RoleUser, authz.ResourceEmployee, authz.ActionRead, false},
		{domain.RoleManager, authz.ResourceCompany, authz.ActionManage, false},
		{domain.RoleAdmin, authz.ResourceMember, authz.ActionCreate, true},
		{domain.RoleManager, authz.ResourceMember, authz.ActionCreate, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+":"+tt.resource+":"+tt.action, func(t *testing.T) {
			ok, err := a.Permit(principal(tt.role, nil), tt.resource, tt.action)
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, ok)
		})
	}
}
