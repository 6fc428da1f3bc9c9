package leave

import (
	"context"
	"time"

	"go-hrm/internal/query"
	"go-hrm/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const joinEmployees = "JOIN employees ON employees.id = leave_requests.employee_id"

// ListColumns maps a FilterSpec onto leave_requests joined with employees.
var ListColumns = tenant.Columns{
	Tenant:     "leave_requests.company_id",
	User:       "employees.user_id",
	Department: "employees.department_id",
	Search:     []string{"employees.name", "leave_requests.leave_type"},
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *Leave) error
	FindByIDAndCompany(ctx context.Context, companyID, id uuid.UUID) (*Leave, error)
	FindScoped(ctx context.Context, spec query.FilterSpec, id uuid.UUID) (*Leave, error)
	List(ctx context.Context, spec query.FilterSpec, page query.Page) ([]Leave, int64, error)
	Stats(ctx context.Context, spec query.FilterSpec, now time.Time) (Stats, error)
	CompareAndSetStatus(ctx context.Context, l *Leave, from Status) (int64, error)
	HasOverlappingPeriod(ctx context.Context, companyID, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id uuid.UUID) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Employee.Department").
		Scopes(tenant.Scope(companyID)).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindScoped(ctx context.Context, spec query.FilterSpec, id uuid.UUID) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Employee.Department").
		Joins(joinEmployees).
		Scopes(tenant.Apply(spec.WithoutSearch(), ListColumns)).
		Where("leave_requests.id = ?", id).
		First(&l).Error
	return &l, err
}

func (r *repository) List(ctx context.Context, spec query.FilterSpec, page query.Page) ([]Leave, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Joins(joinEmployees).
		Scopes(tenant.Apply(spec, ListColumns)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leaves []Leave
	err := r.db.WithContext(ctx).
		Preload("Employee.Department").
		Joins(joinEmployees).
		Scopes(tenant.Apply(spec, ListColumns)).
		Order("leave_requests.created_at DESC").
		Order("leave_requests.id ASC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&leaves).Error
	return leaves, total, err
}

// Stats counts over spec in one pass. Month boundaries and "today" are UTC.
func (r *repository) Stats(ctx context.Context, spec query.FilterSpec, now time.Time) (Stats, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var stats Stats
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Joins(joinEmployees).
		Scopes(tenant.Apply(spec.WithoutSearch(), ListColumns)).
		Select(`
COALESCE(SUM(CASE WHEN leave_requests.status = ? THEN 1 ELSE 0 END), 0) AS pending,
COALESCE(SUM(CASE WHEN leave_requests.status = ? AND leave_requests.reviewed_at >= ? THEN 1 ELSE 0 END), 0) AS approved_month,
COALESCE(SUM(CASE WHEN leave_requests.status = ? AND leave_requests.reviewed_at >= ? THEN 1 ELSE 0 END), 0) AS rejected_month,
COALESCE(SUM(CASE WHEN leave_requests.status = ? AND leave_requests.start_date <= ? AND leave_requests.end_date >= ? THEN 1 ELSE 0 END), 0) AS on_leave_today`,
			StatusPending,
			StatusApproved, monthStart,
			StatusRejected, monthStart,
			StatusApproved, today, today,
		).
		Scan(&stats).Error
	return stats, err
}

// CompareAndSetStatus writes l's status and review fields only if the stored
// status is still from. It returns the number of rows changed, 0 or 1.
func (r *repository) CompareAndSetStatus(ctx context.Context, l *Leave, from Status) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("id = ? AND company_id = ? AND status = ?", l.ID, l.CompanyID, from).
		Updates(map[string]any{
			"status":         l.Status,
			"reviewed_by_id": l.ReviewedByID,
			"reviewed_at":    l.ReviewedAt,
			"updated_at":     l.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

// HasOverlappingPeriod ignores rejected requests.
func (r *repository) HasOverlappingPeriod(ctx context.Context, companyID, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", StatusRejected).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
		Count(&count).Error
	return count > 0, err
}
