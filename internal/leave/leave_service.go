package leave

import (
	"context"
	"errors"
	"time"

	"go-hrm/internal/authz"
	authzerrors "go-hrm/internal/authz/errors"
	"go-hrm/internal/domain"
	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"
	leaveerrors "go-hrm/internal/leave/errors"
	"go-hrm/internal/query"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -destination=mock/leave_service_mock.go -package=mock . Service
type Service interface {
	List(ctx context.Context, scope domain.VisibilityScope, search string, page query.Page) (ListResult, error)
	GetByID(ctx context.Context, scope domain.VisibilityScope, id uuid.UUID) (LeaveResponse, error)
	Create(ctx context.Context, p domain.Principal, req CreateLeaveRequest) (LeaveResponse, error)
	Transition(ctx context.Context, p domain.Principal, scope domain.VisibilityScope, id uuid.UUID, action Action) (LeaveResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees employee.Repository
	metrics   *metrics.Metrics
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employees employee.Repository,
	m *metrics.Metrics,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(db, repo, employees, m, time.Now, logger...)
}

func NewServiceWithClock(
	db *gorm.DB,
	repo Repository,
	employees employee.Repository,
	m *metrics.Metrics,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, employees: employees, metrics: m, now: now, logger: l}
}

func (s *service) List(
	ctx context.Context,
	scope domain.VisibilityScope,
	search string,
	page query.Page,
) (ListResult, error) {
	spec := query.BuildFilter(scope, search)

	leaves, total, err := s.repo.List(ctx, spec, page)
	if err != nil {
		s.logger.Error("list leaves failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return ListResult{}, err
	}

	stats, err := s.repo.Stats(ctx, spec.WithoutSearch(), s.now())
	if err != nil {
		s.logger.Error("leave stats failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return ListResult{}, err
	}

	return ListResult{Items: mapToListResponse(leaves), Total: total, Stats: stats}, nil
}

func (s *service) GetByID(ctx context.Context, scope domain.VisibilityScope, id uuid.UUID) (LeaveResponse, error) {
	l, err := s.repo.FindScoped(ctx, query.BuildFilter(scope, ""), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

// Create files a PENDING request for the caller's own employee record.
func (s *service) Create(ctx context.Context, p domain.Principal, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	startDate, endDate, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	empl, err := s.employees.FindByUserID(ctx, p.TenantID, p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, employeeerrors.ErrNoEmployeeProfile
		}
		return LeaveResponse{}, err
	}

	l := &Leave{
		ID:         uuid.New(),
		CompanyID:  p.TenantID,
		EmployeeID: empl.ID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  int(endDate.Sub(startDate).Hours()/24) + 1,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		overlap, err := qtx.HasOverlappingPeriod(ctx, p.TenantID, empl.ID, startDate, endDate)
		if err != nil {
			return err
		}
		if overlap {
			return leaveerrors.ErrLeaveOverlap
		}
		return qtx.Create(ctx, l)
	})
	if err != nil {
		s.logger.Warn("create leave failed",
			zap.String("request_id", rid),
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", empl.ID.String()),
	)

	l.Employee = empl
	return mapToResponse(*l), nil
}

// Transition applies a review action. The write is a compare-and-set on the
// status that was read, so two reviewers racing on one request cannot both
// win.
func (s *service) Transition(
	ctx context.Context,
	p domain.Principal,
	scope domain.VisibilityScope,
	id uuid.UUID,
	action Action,
) (resp LeaveResponse, err error) {
	rid := contextutil.GetRequestID(ctx)
	defer func() {
		s.metrics.LeaveTransition(string(action), metricResult(err))
	}()

	l, err := s.repo.FindByIDAndCompany(ctx, p.TenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if _, err := authz.Require(p, domain.RoleAdmin, domain.RoleManager); err != nil {
		return LeaveResponse{}, err
	}

	if !inDepartment(scope, l) {
		s.logger.Warn("leave review outside department",
			zap.String("request_id", rid),
			zap.String("leave_id", id.String()),
			zap.String("user_id", p.UserID.String()),
		)
		return LeaveResponse{}, authzerrors.ErrForbidden
	}

	current := l.Status
	next, ok := NextStatus(current, action)
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrInvalidAction
	}

	now := s.now().UTC()
	l.Status = next
	l.UpdatedAt = now
	if next == StatusPending {
		l.ReviewedByID = nil
		l.ReviewedAt = nil
	} else {
		reviewer := p.UserID
		l.ReviewedByID = &reviewer
		l.ReviewedAt = &now
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.repo.WithTx(tx).CompareAndSetStatus(ctx, l, current)
		if err != nil {
			return err
		}
		if rows == 0 {
			return leaveerrors.ErrLeaveConcurrentUpdate
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("leave transition failed",
			zap.String("request_id", rid),
			zap.String("leave_id", id.String()),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("leave transition applied",
		zap.String("request_id", rid),
		zap.String("leave_id", id.String()),
		zap.String("from_status", string(current)),
		zap.String("to_status", string(next)),
		zap.String("reviewer_id", p.UserID.String()),
	)
	return mapToResponse(*l), nil
}

// inDepartment is the reviewer's department guard. Tenant scope sees every
// request; department scope only its own department's employees.
func inDepartment(scope domain.VisibilityScope, l *Leave) bool {
	switch scope.Kind {
	case domain.ScopeTenant:
		return true
	case domain.ScopeDepartment:
		return l.Employee != nil &&
			l.Employee.DepartmentID != nil &&
			*l.Employee.DepartmentID == scope.DepartmentID
	}
	return false
}

func metricResult(err error) string {
	if err == nil {
		return "ok"
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return apperror.CodeInternalError
}

func parseRange(rawStart, rawEnd string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout, rawStart, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.ParseInLocation(dateLayout, rawEnd, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		CompanyID:  l.CompanyID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		TotalDays:  l.TotalDays,
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.Employee != nil {
		resp.Employee = &LeaveEmployeeResponse{
			ID:           l.Employee.ID.String(),
			Name:         l.Employee.Name,
			EmployeeCode: l.Employee.EmployeeCode,
		}
		if d := l.Employee.Department; d != nil {
			resp.Employee.Department = &LeaveDepartmentResponse{ID: d.ID.String(), Name: d.Name}
		}
	}
	if l.ReviewedByID != nil {
		v := l.ReviewedByID.String()
		resp.ReviewedByID = &v
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.UTC().Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
