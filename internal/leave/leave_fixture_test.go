package leave_test

import (
	"fmt"
	"testing"
	"time"

	"go-hrm/internal/department"
	"go-hrm/internal/domain"
	"go-hrm/internal/employee"
	"go-hrm/internal/leave"
	"go-hrm/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func day(d string) time.Time {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		panic(err)
	}
	return t
}

// world is one company with an HR and an Engineering department, a manager
// and an employee in each, an admin, and a second company.
type world struct {
	db *gorm.DB

	companyID uuid.UUID
	otherID   uuid.UUID
	hrDept    uuid.UUID
	engDept   uuid.UUID

	admin      domain.Principal
	hrManager  domain.Principal
	engManager domain.Principal
	hrUser     domain.Principal
	engUser    domain.Principal
	otherAdmin domain.Principal

	hrEmployee    employee.Employee
	engEmployee   employee.Employee
	otherEmployee employee.Employee
}

func newWorld(t *testing.T) *world {
	t.Helper()
	db := testdb.New(t, &department.Department{}, &employee.Employee{}, &leave.Leave{})

	w := &world{
		db:        db,
		companyID: uuid.New(),
		otherID:   uuid.New(),
		hrDept:    uuid.New(),
		engDept:   uuid.New(),
	}
	otherDept := uuid.New()
	assert.NoError(t, db.Create(&[]department.Department{
		{ID: w.hrDept, CompanyID: w.companyID, Name: "HR"},
		{ID: w.engDept, CompanyID: w.companyID, Name: "Engineering"},
		{ID: otherDept, CompanyID: w.otherID, Name: "HR"},
	}).Error)

	principal := func(company uuid.UUID, role domain.Role, dept *uuid.UUID) domain.Principal {
		return domain.Principal{UserID: uuid.New(), TenantID: company, Role: role, DepartmentID: dept}
	}
	w.admin = principal(w.companyID, domain.RoleAdmin, nil)
	w.hrManager = principal(w.companyID, domain.RoleManager, &w.hrDept)
	w.engManager = principal(w.companyID, domain.RoleManager, &w.engDept)
	w.hrUser = principal(w.companyID, domain.RoleUser, &w.hrDept)
	w.engUser = principal(w.companyID, domain.RoleUser, &w.engDept)
	w.otherAdmin = principal(w.otherID, domain.RoleAdmin, nil)

	w.hrEmployee = w.addEmployee(t, w.hrUser, "Hana HR", 1)
	w.engEmployee = w.addEmployee(t, w.engUser, "Eko Engineer", 2)
	otherUser := principal(w.otherID, domain.RoleUser, &otherDept)
	w.otherEmployee = w.addEmployee(t, otherUser, "Olga Other", 1)
	return w
}

func (w *world) addEmployee(t *testing.T, p domain.Principal, name string, seq int64) employee.Employee {
	t.Helper()
	empl := employee.Employee{
		ID:           uuid.New(),
		CompanyID:    p.TenantID,
		DepartmentID: p.DepartmentID,
		UserID:       p.UserID,
		Name:         name,
		Email:        fmt.Sprintf("%d@example.test", seq),
		EmployeeCode: employee.FormatEmployeeCode(seq),
		JoinDate:     day("2024-01-01"),
	}
	assert.NoError(t, w.db.Create(&empl).Error)
	return empl
}

type leaveOpt func(*leave.Leave)

func reviewed(by domain.Principal, status leave.Status, at time.Time) leaveOpt {
	return func(l *leave.Leave) {
		l.Status = status
		l.ReviewedByID = &by.UserID
		l.ReviewedAt = &at
	}
}

func created(at time.Time) leaveOpt {
	return func(l *leave.Leave) { l.CreatedAt = at }
}

func (w *world) addLeave(t *testing.T, empl employee.Employee, start, end string, opts ...leaveOpt) leave.Leave {
	t.Helper()
	l := leave.Leave{
		ID:         uuid.New(),
		CompanyID:  empl.CompanyID,
		EmployeeID: empl.ID,
		LeaveType:  leave.TypeAnnual,
		StartDate:  day(start),
		EndDate:    day(end),
		TotalDays:  int(day(end).Sub(day(start)).Hours()/24) + 1,
		Status:     leave.StatusPending,
	}
	for _, opt := range opts {
		opt(&l)
	}
	assert.NoError(t, w.db.Create(&l).Error)
	return l
}

func (w *world) reload(t *testing.T, id uuid.UUID) leave.Leave {
	t.Helper()
	var l leave.Leave
	assert.NoError(t, w.db.First(&l, "id = ?", id).Error)
	return l
}
