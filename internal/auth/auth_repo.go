package auth

import (
	"context"

	"go-hrm/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/auth_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, companyID uuid.UUID, email string) (*User, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*User, error)
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

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) FindByEmail(ctx context.Context, companyID uuid.UUID, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("email = ?", email).
		First(&user).Error
	return &user, err
}

func (r *repository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&user, "id = ?", id).Error
	return &user, err
}
