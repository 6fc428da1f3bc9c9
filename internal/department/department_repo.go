package department

import (
	"context"

	"go-hrm/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mock/department_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, dept *Department) error
	FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]Department, error)
	FindByName(ctx context.Context, companyID uuid.UUID, name string) (*Department, error)
	FindByIDAndCompany(ctx context.Context, companyID, id uuid.UUID) (*Department, error)
	// EnsureNames inserts the missing names and reports how many were new.
	EnsureNames(ctx context.Context, companyID uuid.UUID, names []string) (int64, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByName(ctx context.Context, companyID uuid.UUID, name string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("name = ?", name).
		First(&dept).Error
	return &dept, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id uuid.UUID) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&dept).Error
	return &dept, err
}

func (r *repository) EnsureNames(ctx context.Context, companyID uuid.UUID, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}

	rows := make([]Department, len(names))
	for i, name := range names {
		rows[i] = Department{ID: uuid.New(), CompanyID: companyID, Name: name}
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(&rows)
	return res.RowsAffected, res.Error
}
