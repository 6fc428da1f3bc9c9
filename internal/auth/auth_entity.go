package auth

import (
	"time"

	"go-hrm/internal/domain"

	"github.com/google/uuid"
)

// User is a login account. Emails are unique per company, not globally.
type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_user_company_email"`
	DepartmentID *uuid.UUID  `gorm:"type:uuid;index"`
	Name         string      `gorm:"type:varchar(255);not null"`
	Email        string      `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_company_email"`
	Password     string      `gorm:"type:varchar(255);not null"`
	Role         domain.Role `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) Principal() domain.Principal {
	return domain.Principal{
		UserID:       u.ID,
		TenantID:     u.CompanyID,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
	}
}
