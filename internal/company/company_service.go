package company

import (
	"context"
	"errors"

	companyerrors "go-hrm/internal/company/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (CompanyResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (CompanyResponse, error)
}

type service struct {
	repo     Repository
	resolver Resolver
	logger   *zap.Logger
}

func NewService(repo Repository, resolver Resolver, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, resolver: resolver, logger: l}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (CompanyResponse, error) {
	comp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(comp), nil
}

// UpdateStatus changes the tenant status and drops the resolver cache entry
// so the next login sees the new status.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (CompanyResponse, error) {
	if !status.Valid() {
		return CompanyResponse{}, companyerrors.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("update company status failed", zap.String("company_id", id.String()), zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	comp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if err := s.resolver.Invalidate(ctx, comp.Slug); err != nil {
		s.logger.Error("failed to invalidate tenant cache",
			zap.String("slug", comp.Slug),
			zap.Error(err),
		)
	}

	s.logger.Info("company status updated",
		zap.String("company_id", id.String()),
		zap.String("status", string(status)),
	)
	return mapToResponse(comp), nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}
	return err
}

func mapToResponse(c *Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Slug:      c.Slug,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}
