package authz

import (
	"fmt"

	"go-hrm/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	ResourceLeave      = "leave"
	ResourceEmployee   = "employee"
	ResourceDepartment = "department"
	ResourceCompany    = "company"
	ResourceMember     = "member"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionManage = "manage"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// defaultPolicies is the route permission table, one row per role/resource/action.
var defaultPolicies = [][]string{
	{"ADMIN", ResourceLeave, ActionRead},
	{"ADMIN", ResourceLeave, ActionCreate},
	{"ADMIN", ResourceEmployee, ActionRead},
	{"ADMIN", ResourceDepartment, ActionRead},
	{"ADMIN", ResourceDepartment, ActionCreate},
	{"ADMIN", ResourceCompany, ActionRead},
	{"ADMIN", ResourceCompany, ActionManage},
	{"ADMIN", ResourceMember, ActionCreate},

	{"MANAGER", ResourceLeave, ActionRead},
	{"MANAGER", ResourceLeave, ActionCreate},
	{"MANAGER", ResourceEmployee, ActionRead},
	{"MANAGER", ResourceDepartment, ActionRead},
	{"MANAGER", ResourceCompany, ActionRead},

	{"USER", ResourceLeave, ActionRead},
	{"USER", ResourceLeave, ActionCreate},
	{"USER", ResourceDepartment, ActionRead},
	{"USER", ResourceCompany, ActionRead},
}

// Authorizer evaluates route permissions with a casbin enforcer.
type Authorizer struct {
	enforcer *casbin.SyncedEnforcer
}

func NewAuthorizer() (*Authorizer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("authz: load model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("authz: new enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(defaultPolicies); err != nil {
		return nil, fmt.Errorf("authz: load policies: %w", err)
	}

	return &Authorizer{enforcer: enforcer}, nil
}

// Permit reports whether p's role may perform action on resource.
func (a *Authorizer) Permit(p domain.Principal, resource, action string) (bool, error) {
	return a.enforcer.Enforce(string(p.Role), resource, action)
}

// Scope is ScopeFor exposed on the authorizer so middleware depends on one value.
func (a *Authorizer) Scope(p domain.Principal, fallback Fallback) (domain.VisibilityScope, error) {
	return ScopeFor(p, fallback)
}
