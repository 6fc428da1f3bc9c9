package department

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	departmenterrors "go-hrm/internal/department/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	DepartmentListKeyPrefix = "departments:all:"
	departmentListTTL       = time.Hour
)

func GetDepartmentListKey(companyID uuid.UUID) string {
	return DepartmentListKeyPrefix + companyID.String()
}

//go:generate mockgen -destination=mock/department_service_mock.go -package=mock . Service
type Service interface {
	GetAll(ctx context.Context, companyID uuid.UUID) ([]DepartmentResponse, error)
	Create(ctx context.Context, companyID uuid.UUID, req CreateDepartmentRequest) (DepartmentResponse, error)
	// ProvisionDefaults creates DefaultNames for a new company. Safe to repeat.
	ProvisionDefaults(ctx context.Context, companyID uuid.UUID) (int64, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context, companyID uuid.UUID) ([]DepartmentResponse, error) {
	cacheKey := GetDepartmentListKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		depts, err := s.repo.FindAllByCompany(ctx, companyID)
		if err != nil {
			s.logger.Error("list departments failed", zap.String("company_id", companyID.String()), zap.Error(err))
			return nil, err
		}

		resp := mapToListResponse(depts)

		// Master data, one hour is fine.
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, departmentListTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) Create(ctx context.Context, companyID uuid.UUID, req CreateDepartmentRequest) (DepartmentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if _, err := s.repo.FindByName(ctx, companyID, name); err == nil {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return DepartmentResponse{}, err
	}

	dept := &Department{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      name,
	}

	// The unique index still guards against a concurrent insert.
	if err := s.repo.Create(ctx, dept); err != nil {
		s.logger.Warn("create department failed", zap.String("name", dept.Name), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, companyID)
	s.logger.Info("department created",
		zap.String("company_id", companyID.String()),
		zap.String("department_id", dept.ID.String()),
	)
	return mapToResponse(*dept), nil
}

func (s *service) ProvisionDefaults(ctx context.Context, companyID uuid.UUID) (int64, error) {
	created, err := s.repo.EnsureNames(ctx, companyID, DefaultNames)
	if err != nil {
		return 0, err
	}
	if created > 0 {
		s.invalidate(ctx, companyID)
	}
	return created, nil
}

func (s *service) invalidate(ctx context.Context, companyID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetDepartmentListKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return departmenterrors.ErrDepartmentAlreadyExists
	}
	return err
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        dept.ID.String(),
		Name:      dept.Name,
		CompanyID: dept.CompanyID.String(),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
