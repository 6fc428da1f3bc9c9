package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-hrm/internal/auth/errors"
	authzerrors "go-hrm/internal/authz/errors"
	"go-hrm/internal/company"
	"go-hrm/internal/department"
	"go-hrm/internal/domain"
	"go-hrm/internal/employee"
	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const managerPosition = "Manager"

// Issuer signs credentials. *credential.Codec implements it.
type Issuer interface {
	Issue(p domain.Principal, now time.Time) (string, error)
}

//go:generate mockgen -destination=mock/auth_service_mock.go -package=mock . Service
type Service interface {
	Login(ctx context.Context, req LoginRequest) (Session, error)
	RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (Session, error)
	RegisterEmployee(ctx context.Context, req RegisterMemberRequest) (MemberResponse, error)
	RegisterManager(ctx context.Context, admin domain.Principal, req RegisterMemberRequest) (MemberResponse, error)
	Me(ctx context.Context, p domain.Principal) (UserResponse, error)
}

// Dependencies groups the stores the auth flows write across.
type Dependencies struct {
	DB          *gorm.DB
	Users       Repository
	Companies   company.Repository
	Departments department.Repository
	Employees   employee.Repository
	Counters    counter.Repository
	Outbox      kafka.OutboxRepository
	Resolver    company.Resolver
	Issuer      Issuer
}

type service struct {
	Dependencies
	hashCost int
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		Dependencies: deps,
		hashCost:     bcrypt.DefaultCost,
		now:          time.Now,
		logger:       l,
	}
}

// NewServiceWithClock is NewService with a fixed clock and bcrypt cost, for
// tests that check token expiry.
func NewServiceWithClock(deps Dependencies, now func() time.Time, hashCost int, logger ...*zap.Logger) Service {
	s := NewService(deps, logger...).(*service)
	s.now = now
	s.hashCost = hashCost
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Login(ctx context.Context, req LoginRequest) (Session, error) {
	rid := contextutil.GetRequestID(ctx)

	tenant, err := s.Resolver.Resolve(ctx, req.CompanySlug)
	if err != nil {
		return Session{}, err
	}

	user, err := s.Users.FindByEmail(ctx, tenant.ID, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info("login rejected", zap.String("request_id", rid), zap.String("company_id", tenant.ID.String()))
			return Session{}, autherrors.ErrInvalidLogin
		}
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Info("login rejected", zap.String("request_id", rid), zap.String("company_id", tenant.ID.String()))
		return Session{}, autherrors.ErrInvalidLogin
	}

	token, err := s.Issuer.Issue(user.Principal(), s.now())
	if err != nil {
		return Session{}, err
	}

	s.logger.Info("login success",
		zap.String("request_id", rid),
		zap.String("user_id", user.ID.String()),
		zap.String("company_id", tenant.ID.String()),
	)
	return Session{Token: token, User: mapUser(*user)}, nil
}

func (s *service) RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (Session, error) {
	rid := contextutil.GetRequestID(ctx)
	slug := company.NormalizeSlug(req.CompanySlug)

	if _, err := s.Companies.GetBySlug(ctx, slug); err == nil {
		return Session{}, autherrors.ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return Session{}, err
	}

	now := s.now().UTC()
	comp := &company.Company{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.CompanyName),
		Slug:      slug,
		Status:    company.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	admin := &User{
		ID:        uuid.New(),
		CompanyID: comp.ID,
		Name:      strings.TrimSpace(req.Name),
		Email:     normalizeEmail(req.Email),
		Password:  string(hashed),
		Role:      domain.RoleAdmin,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Companies.WithTx(tx).Create(ctx, comp); err != nil {
			return err
		}
		if err := s.Users.WithTx(tx).Create(ctx, admin); err != nil {
			return err
		}
		if s.Outbox == nil {
			return nil
		}

		event, err := kafka.NewOutboxEvent(rid, "company", comp.ID.String(),
			events.EventTypeCompanyRegistered, events.CompanyLifecycleTopic,
			events.CompanyRegisteredEvent{
				EventType:   events.EventTypeCompanyRegistered,
				RequestID:   rid,
				CompanyID:   comp.ID.String(),
				Slug:        comp.Slug,
				AdminUserID: admin.ID.String(),
				OccurredAt:  now,
			})
		if err != nil {
			return err
		}
		return s.Outbox.WithTx(tx).Create(ctx, event)
	})
	if err != nil {
		s.logger.Error("register company failed", zap.String("request_id", rid), zap.String("slug", slug), zap.Error(err))
		return Session{}, mapRepositoryError(err)
	}

	token, err := s.Issuer.Issue(admin.Principal(), s.now())
	if err != nil {
		return Session{}, err
	}

	s.logger.Info("company registered",
		zap.String("request_id", rid),
		zap.String("company_id", comp.ID.String()),
		zap.String("slug", slug),
	)
	return Session{
		Token:   token,
		User:    mapUser(*admin),
		Company: &CompanySummary{ID: comp.ID.String(), Name: comp.Name, Slug: comp.Slug},
	}, nil
}

func (s *service) RegisterEmployee(ctx context.Context, req RegisterMemberRequest) (MemberResponse, error) {
	if strings.TrimSpace(req.Position) == "" {
		return MemberResponse{}, apperror.RequiredField("position")
	}
	return s.registerMember(ctx, req, domain.RoleUser, nil)
}

// RegisterManager only lets an admin add managers to their own company.
func (s *service) RegisterManager(ctx context.Context, admin domain.Principal, req RegisterMemberRequest) (MemberResponse, error) {
	req.Position = managerPosition
	return s.registerMember(ctx, req, domain.RoleManager, &admin)
}

func (s *service) registerMember(
	ctx context.Context,
	req RegisterMemberRequest,
	role domain.Role,
	actor *domain.Principal,
) (MemberResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tenant, err := s.Resolver.Resolve(ctx, req.CompanySlug)
	if err != nil {
		return MemberResponse{}, err
	}
	if actor != nil && actor.TenantID != tenant.ID {
		s.logger.Warn("cross-tenant member registration rejected",
			zap.String("request_id", rid),
			zap.String("actor_company_id", actor.TenantID.String()),
			zap.String("target_company_id", tenant.ID.String()),
		)
		return MemberResponse{}, authzerrors.ErrForbidden
	}

	dept, err := s.Departments.FindByName(ctx, tenant.ID, strings.TrimSpace(req.DepartmentName))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MemberResponse{}, autherrors.ErrDepartmentNotFound
		}
		return MemberResponse{}, err
	}

	email := normalizeEmail(req.Email)
	if _, err := s.Users.FindByEmail(ctx, tenant.ID, email); err == nil {
		return MemberResponse{}, autherrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return MemberResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return MemberResponse{}, err
	}

	user := &User{
		ID:           uuid.New(),
		CompanyID:    tenant.ID,
		DepartmentID: &dept.ID,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Password:     string(hashed),
		Role:         role,
	}
	empl := &employee.Employee{
		ID:           uuid.New(),
		CompanyID:    tenant.ID,
		DepartmentID: &dept.ID,
		UserID:       user.ID,
		Name:         user.Name,
		Email:        email,
		Position:     strings.TrimSpace(req.Position),
		JoinDate:     s.now().UTC(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Users.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		seq, err := s.Counters.WithTx(tx).GetNextValue(ctx, tenant.ID, counter.TypeEmployeeCode)
		if err != nil {
			return err
		}
		empl.EmployeeCode = employee.FormatEmployeeCode(seq)
		return s.Employees.WithTx(tx).Create(ctx, empl)
	})
	if err != nil {
		s.logger.Error("register member failed",
			zap.String("request_id", rid),
			zap.String("company_id", tenant.ID.String()),
			zap.String("role", string(role)),
			zap.Error(err),
		)
		return MemberResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("member registered",
		zap.String("request_id", rid),
		zap.String("company_id", tenant.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)),
		zap.String("employee_code", empl.EmployeeCode),
	)
	return MemberResponse{
		User:         mapUser(*user),
		EmployeeID:   empl.ID.String(),
		EmployeeCode: empl.EmployeeCode,
		Position:     empl.Position,
	}, nil
}

func (s *service) Me(ctx context.Context, p domain.Principal) (UserResponse, error) {
	user, err := s.Users.FindByID(ctx, p.TenantID, p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, autherrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapUser(*user), nil
}

func mapUser(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		CompanyID: u.CompanyID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
	}
	if u.DepartmentID != nil {
		id := u.DepartmentID.String()
		resp.DepartmentID = &id
	}
	return resp
}
