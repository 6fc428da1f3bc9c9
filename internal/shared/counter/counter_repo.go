package counter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const TypeEmployeeCode = "employee_code"

// CompanyCounter is a per-company monotonic sequence.
type CompanyCounter struct {
	CompanyID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CounterType string    `gorm:"type:varchar(50);primaryKey"`
	LastValue   int64     `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (CompanyCounter) TableName() string {
	return "company_counters"
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, companyID uuid.UUID, counterType string) (int64, error)
	WithTx(tx *gorm.DB) Repository
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

func (r *repository) GetNextValue(ctx context.Context, companyID uuid.UUID, counterType string) (int64, error) {
	var nextValue int64
	now := time.Now().UTC()

	// Atomic upsert so concurrent registrations never share a value.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO company_counters (company_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (company_id, counter_type) DO UPDATE
		SET last_value = company_counters.last_value + 1, updated_at = ?
		RETURNING last_value
	`, companyID, counterType, now, now).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
