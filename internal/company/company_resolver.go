package company

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	companyerrors "go-hrm/internal/company/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	TenantSlugKeyPrefix = "tenants:slug:"
	tenantCacheTTL      = 5 * time.Minute
)

func TenantSlugKey(slug string) string {
	return TenantSlugKeyPrefix + slug
}

// Tenant is what the resolver hands to login and registration.
type Tenant struct {
	ID     uuid.UUID `json:"id"`
	Slug   string    `json:"slug"`
	Name   string    `json:"name"`
	Status Status    `json:"status"`
}

//go:generate mockgen -destination=mock/company_resolver_mock.go -package=mock . Resolver
type Resolver interface {
	// Resolve maps a slug to an ACTIVE tenant.
	Resolve(ctx context.Context, slug string) (Tenant, error)
	// Invalidate drops the cached entry for slug.
	Invalidate(ctx context.Context, slug string) error
}

type resolver struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewResolver builds a Resolver. rdb may be nil, in which case every call
// reads the database.
func NewResolver(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("company.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.resolver")
	}
	return &resolver{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

func (r *resolver) Resolve(ctx context.Context, slug string) (Tenant, error) {
	slug = NormalizeSlug(slug)
	if slug == "" {
		return Tenant{}, companyerrors.ErrTenantNotFound
	}

	t, err := r.lookup(ctx, slug)
	if err != nil {
		return Tenant{}, err
	}

	if t.Status != StatusActive {
		r.logger.Debug("tenant not active",
			zap.String("slug", slug),
			zap.String("status", string(t.Status)),
		)
		return Tenant{}, companyerrors.ErrTenantInactive
	}
	return t, nil
}

func (r *resolver) lookup(ctx context.Context, slug string) (Tenant, error) {
	cacheKey := TenantSlugKey(slug)

	if r.rdb != nil {
		if cached, err := r.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var t Tenant
			if json.Unmarshal(cached, &t) == nil {
				return t, nil
			}
		}
	}

	v, err, _ := r.sf.Do(cacheKey, func() (any, error) {
		comp, err := r.repo.GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Tenant{}, companyerrors.ErrTenantNotFound
			}
			r.logger.Error("tenant lookup failed", zap.String("slug", slug), zap.Error(err))
			return Tenant{}, err
		}

		t := Tenant{ID: comp.ID, Slug: comp.Slug, Name: comp.Name, Status: comp.Status}

		if r.rdb != nil {
			if data, err := json.Marshal(t); err == nil {
				if err := r.rdb.Set(ctx, cacheKey, data, tenantCacheTTL).Err(); err != nil {
					r.logger.Warn("tenant cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return t, nil
	})
	if err != nil {
		return Tenant{}, err
	}
	return v.(Tenant), nil
}

func (r *resolver) Invalidate(ctx context.Context, slug string) error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Del(ctx, TenantSlugKey(NormalizeSlug(slug))).Err()
}
