package employee

import (
	"context"
	"fmt"

	"go-hrm/internal/domain"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/query"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FormatEmployeeCode renders a per-company sequence value as EMP-000001.
func FormatEmployeeCode(seq int64) string {
	return fmt.Sprintf("EMP-%06d", seq)
}

//go:generate mockgen -destination=mock/employee_service_mock.go -package=mock . Service
type Service interface {
	List(ctx context.Context, scope domain.VisibilityScope, search string, page query.Page) (EmployeeListResult, error)
	GetMine(ctx context.Context, p domain.Principal) (EmployeeResponse, error)
	GetByID(ctx context.Context, scope domain.VisibilityScope, id uuid.UUID) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(
	ctx context.Context,
	scope domain.VisibilityScope,
	search string,
	page query.Page,
) (EmployeeListResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("list employees requested",
		zap.String("request_id", rid),
		zap.String("company_id", scope.TenantID.String()),
		zap.String("scope", string(scope.Kind)),
	)

	employees, total, err := s.repo.List(ctx, query.BuildFilter(scope, search), page)
	if err != nil {
		s.logger.Error("list employees failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeListResult{}, mapRepositoryError(err)
	}

	return EmployeeListResult{Items: mapToListResponse(employees), Total: total}, nil
}

func (s *service) GetMine(ctx context.Context, p domain.Principal) (EmployeeResponse, error) {
	empl, err := s.repo.FindByUserID(ctx, p.TenantID, p.UserID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

// GetByID returns the employee only when it is visible in scope; anything
// else is reported as not found.
func (s *service) GetByID(ctx context.Context, scope domain.VisibilityScope, id uuid.UUID) (EmployeeResponse, error) {
	empl, err := s.repo.FindByIDAndCompany(ctx, scope.TenantID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if !Visible(scope, empl) {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(*empl), nil
}

// Visible reports whether scope covers empl. The tenant must already match.
func Visible(scope domain.VisibilityScope, empl *Employee) bool {
	switch scope.Kind {
	case domain.ScopeTenant:
		return true
	case domain.ScopeDepartment:
		return empl.DepartmentID != nil && *empl.DepartmentID == scope.DepartmentID
	case domain.ScopeSelf:
		return empl.UserID == scope.UserID
	}
	return false
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID.String(),
		UserID:       empl.UserID.String(),
		CompanyID:    empl.CompanyID.String(),
		Name:         empl.Name,
		Email:        empl.Email,
		EmployeeCode: empl.EmployeeCode,
		Position:     empl.Position,
		JoinDate:     empl.JoinDate.Format("2006-01-02"),
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
