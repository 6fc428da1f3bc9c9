package employee

import (
	"context"

	"go-hrm/internal/query"
	"go-hrm/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListColumns maps a FilterSpec onto the employees table.
var ListColumns = tenant.Columns{
	Tenant:     "employees.company_id",
	User:       "employees.user_id",
	Department: "employees.department_id",
	Search:     []string{"employees.name", "employees.email", "employees.employee_code"},
}

//go:generate mockgen -destination=mock/employee_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	List(ctx context.Context, spec query.FilterSpec, page query.Page) ([]Employee, int64, error)
	FindByIDAndCompany(ctx context.Context, companyID, id uuid.UUID) (*Employee, error)
	FindByUserID(ctx context.Context, companyID, userID uuid.UUID) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) List(ctx context.Context, spec query.FilterSpec, page query.Page) ([]Employee, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Apply(spec, ListColumns)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Scopes(tenant.Apply(spec, ListColumns)).
		Order("employees.name ASC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&employees).Error
	return employees, total, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id uuid.UUID) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Scopes(tenant.Scope(companyID)).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByUserID(ctx context.Context, companyID, userID uuid.UUID) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Scopes(tenant.Scope(companyID)).
		First(&empl, "user_id = ?", userID).Error
	return &empl, err
}
