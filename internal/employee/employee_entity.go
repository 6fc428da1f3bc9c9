package employee

import (
	"time"

	"go-hrm/internal/department"

	"github.com/google/uuid"
)

// Employee is the HR record of a user. Every employee belongs to exactly one
// user and the link is what self-scoped queries join through.
type Employee struct {
	ID           uuid.UUID              `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID              `gorm:"type:uuid;not null;index;uniqueIndex:uq_employee_code"`
	DepartmentID *uuid.UUID             `gorm:"type:uuid;index"`
	UserID       uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex:uq_employee_user"`
	Name         string                 `gorm:"type:varchar(255);not null"`
	Email        string                 `gorm:"type:varchar(255);not null"`
	EmployeeCode string                 `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_code"`
	Position     string                 `gorm:"type:varchar(100)"`
	JoinDate     time.Time              `gorm:"not null"`
	Department   *department.Department `gorm:"foreignKey:DepartmentID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
