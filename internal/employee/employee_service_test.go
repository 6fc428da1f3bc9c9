package employee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrm/internal/department"
	"go-hrm/internal/domain"
	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"
	employeeMock "go-hrm/internal/employee/mock"
	"go-hrm/internal/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestFormatEmployeeCode(t *testing.T) {
	assert.Equal(t, "EMP-000001", employee.FormatEmployeeCode(1))
	assert.Equal(t, "EMP-123456", employee.FormatEmployeeCode(123456))
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := employeeMock.NewMockRepository(ctrl)
	svc := employee.NewService(repo)
	ctx := context.Background()
	companyID, deptID := uuid.New(), uuid.New()
	scope := domain.DepartmentScope(companyID, deptID)
	page := query.NewPage(1, 5)

	t.Run("PassesScopedFilter", func(t *testing.T) {
		repo.EXPECT().
			List(ctx, query.FilterSpec{TenantID: companyID, DepartmentID: &deptID, Search: "ana"}, page).
			Return([]employee.Employee{{
				ID:           uuid.New(),
				CompanyID:    companyID,
				DepartmentID: &deptID,
				Name:         "Ana",
				EmployeeCode: "EMP-000001",
				JoinDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Department:   &department.Department{ID: deptID, Name: "HR"},
			}}, int64(1), nil)

		res, err := svc.List(ctx, scope, "  ana ", page)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), res.Total)
		assert.Equal(t, "2024-03-01", res.Items[0].JoinDate)
		assert.Equal(t, "HR", res.Items[0].Department.Name)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo.EXPECT().List(ctx, gomock.Any(), page).Return(nil, int64(0), errors.New("db down"))

		_, err := svc.List(ctx, scope, "", page)
		assert.Error(t, err)
	})
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := employeeMock.NewMockRepository(ctrl)
	svc := employee.NewService(repo)
	ctx := context.Background()
	companyID, deptID, otherDept := uuid.New(), uuid.New(), uuid.New()
	id := uuid.New()
	empl := &employee.Employee{ID: id, CompanyID: companyID, DepartmentID: &deptID, UserID: uuid.New()}

	t.Run("VisibleInDepartment", func(t *testing.T) {
		repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(empl, nil)

		res, err := svc.GetByID(ctx, domain.DepartmentScope(companyID, deptID), id)
		assert.NoError(t, err)
		assert.Equal(t, id.String(), res.ID)
	})

	t.Run("OtherDepartmentIsNotFound", func(t *testing.T) {
		repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(empl, nil)

		_, err := svc.GetByID(ctx, domain.DepartmentScope(companyID, otherDept), id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("OtherTenantIsNotFound", func(t *testing.T) {
		other := uuid.New()
		repo.EXPECT().FindByIDAndCompany(ctx, other, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, domain.TenantScope(other), id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestService_GetMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := employeeMock.NewMockRepository(ctrl)
	svc := employee.NewService(repo)
	p := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleUser}

	repo.EXPECT().FindByUserID(gomock.Any(), p.TenantID, p.UserID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetMine(context.Background(), p)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestVisible(t *testing.T) {
	companyID, deptID, userID := uuid.New(), uuid.New(), uuid.New()
	empl := &employee.Employee{CompanyID: companyID, DepartmentID: &deptID, UserID: userID}
	noDept := &employee.Employee{CompanyID: companyID, UserID: userID}

	assert.True(t, employee.Visible(domain.TenantScope(companyID), empl))
	assert.True(t, employee.Visible(domain.DepartmentScope(companyID, deptID), empl))
	assert.False(t, employee.Visible(domain.DepartmentScope(companyID, deptID), noDept))
	assert.True(t, employee.Visible(domain.SelfScope(companyID, userID), empl))
	assert.False(t, employee.Visible(domain.SelfScope(companyID, uuid.New()), empl))
}
