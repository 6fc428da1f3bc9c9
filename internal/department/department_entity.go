package department

import (
	"time"

	"github.com/google/uuid"
)

// DefaultNames are provisioned for every new company.
var DefaultNames = []string{"HR", "Engineering", "Finance", "Operations"}

type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_department_company_name"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:uq_department_company_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
