package tenant

import (
	"strings"

	"go-hrm/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope restricts a query to one company.
func Scope(companyID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// likeEscaper makes the search term a literal substring under ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// Columns names the columns a FilterSpec maps to for one resource. Search
// columns are matched case-insensitively with OR.
type Columns struct {
	Tenant     string
	User       string
	Department string
	Search     []string
}

// Apply translates spec into gorm conditions. The caller must already have
// joined every table the columns refer to.
func Apply(spec query.FilterSpec, cols Columns) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where(cols.Tenant+" = ?", spec.TenantID)

		if spec.UserID != nil {
			db = db.Where(cols.User+" = ?", *spec.UserID)
		}
		if spec.DepartmentID != nil {
			db = db.Where(cols.Department+" = ?", *spec.DepartmentID)
		}

		if spec.Search != "" && len(cols.Search) > 0 {
			term := "%" + likeEscaper.Replace(strings.ToLower(spec.Search)) + "%"
			clauses := make([]string, 0, len(cols.Search))
			args := make([]any, 0, len(cols.Search))
			for _, col := range cols.Search {
				clauses = append(clauses, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
				args = append(args, term)
			}
			db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}

		return db
	}
}
