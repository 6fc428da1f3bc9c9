package leave

import (
	"time"

	"go-hrm/internal/employee"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Type string

const (
	TypeAnnual Type = "ANNUAL"
	TypeSick   Type = "SICK"
	TypeUnpaid Type = "UNPAID"
	TypeOther  Type = "OTHER"
)

type Action string

const (
	ActionApprove Action = "APPROVE"
	ActionReject  Action = "REJECT"
	ActionReset   Action = "RESET"
)

// NextStatus maps a review action to the status it produces from current.
// ok is false when the action is unknown or not allowed from current.
func NextStatus(current Status, action Action) (next Status, ok bool) {
	switch action {
	case ActionApprove:
		return StatusApproved, current == StatusPending
	case ActionReject:
		return StatusRejected, current == StatusPending
	case ActionReset:
		return StatusPending, current == StatusApproved || current == StatusRejected
	}
	return "", false
}

// Leave is a leave request. ReviewedByID and ReviewedAt are both nil exactly
// when Status is PENDING.
type Leave struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_company_status"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_employee_dates"`
	LeaveType    Type       `gorm:"type:varchar(20);not null"`
	StartDate    time.Time  `gorm:"type:date;not null;index:idx_leave_employee_dates"`
	EndDate      time.Time  `gorm:"type:date;not null;index:idx_leave_employee_dates"`
	TotalDays    int        `gorm:"not null"`
	Reason       string     `gorm:"type:text"`
	Status       Status     `gorm:"type:varchar(20);not null;index:idx_leave_company_status"`
	ReviewedByID *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`
}

func (Leave) TableName() string {
	return "leave_requests"
}

// ReviewConsistent reports whether the review fields agree with Status.
func (l Leave) ReviewConsistent() bool {
	reviewed := l.ReviewedByID != nil && l.ReviewedAt != nil
	unreviewed := l.ReviewedByID == nil && l.ReviewedAt == nil
	if l.Status == StatusPending {
		return unreviewed
	}
	return reviewed
}
