package query

import (
	"strings"

	"go-hrm/internal/domain"

	"github.com/google/uuid"
)

// FilterSpec is a storage-neutral description of which rows a scope may see.
// TenantID is always set; the other fields are optional narrowing.
type FilterSpec struct {
	TenantID     uuid.UUID
	UserID       *uuid.UUID
	DepartmentID *uuid.UUID
	Search       string
}

// BuildFilter translates a visibility scope and an optional search term into
// a FilterSpec. Blank search terms are ignored.
func BuildFilter(scope domain.VisibilityScope, search string) FilterSpec {
	spec := FilterSpec{
		TenantID: scope.TenantID,
		Search:   strings.TrimSpace(search),
	}

	switch scope.Kind {
	case domain.ScopeSelf:
		userID := scope.UserID
		spec.UserID = &userID
	case domain.ScopeDepartment:
		deptID := scope.DepartmentID
		spec.DepartmentID = &deptID
	}

	return spec
}

// WithoutSearch keeps the scope filters only. Aggregates use it so the
// search box never changes the stats.
func (f FilterSpec) WithoutSearch() FilterSpec {
	f.Search = ""
	return f
}
