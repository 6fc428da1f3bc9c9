package app

import (
	"net/http"
	"time"

	"go-hrm/internal/auth"
	"go-hrm/internal/authz"
	"go-hrm/internal/company"
	"go-hrm/internal/config"
	"go-hrm/internal/credential"
	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	"go-hrm/internal/leave"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/counter"
	"go-hrm/internal/shared/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra is what the HTTP modules are built from. Redis and Metrics may be nil.
type Infra struct {
	Config  config.Config
	DB      *gorm.DB
	Redis   *redis.Client
	Metrics *metrics.Metrics
	Logger  *zap.Logger
	// Now overrides the clock of the credential checks and leave service.
	Now func() time.Time
}

// Models lists every table the API owns, in migration order.
func Models() []any {
	return []any{
		&company.Company{},
		&department.Department{},
		&auth.User{},
		&employee.Employee{},
		&leave.Leave{},
		&counter.CompanyCounter{},
		&kafka.OutboxEvent{},
	}
}

// NewRouter builds the gin engine with the ambient middleware chain, the
// health and metrics endpoints, and every module under /api/v1.
func NewRouter(infra Infra) (*gin.Engine, error) {
	if infra.Logger == nil {
		infra.Logger = zap.L()
	}
	if infra.Now == nil {
		infra.Now = time.Now
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.ContextLogger(infra.Logger))
	if infra.Metrics != nil {
		r.Use(infra.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(infra.Metrics.Handler()))
	}
	r.GET("/healthz", healthz(infra.DB))

	if err := registerModules(r.Group("/api/v1"), infra); err != nil {
		return nil, err
	}
	return r, nil
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func registerModules(api *gin.RouterGroup, infra Infra) error {
	db, rdb, log := infra.DB, infra.Redis, infra.Logger

	// --- Security core ---
	codec, err := credential.NewCodec(infra.Config.JWTSecret)
	if err != nil {
		return err
	}
	authorizer, err := authz.NewAuthorizer()
	if err != nil {
		return err
	}
	authn := middleware.NewAuthenticator(codec, infra.Now)

	// --- Repositories ---
	companyRepo := company.NewRepository(db)
	departmentRepo := department.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	leaveRepo := leave.NewRepository(db)
	userRepo := auth.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	resolver := company.NewResolver(companyRepo, rdb, log)
	companyService := company.NewService(companyRepo, resolver, log)
	departmentService := department.NewService(departmentRepo, rdb, log)
	employeeService := employee.NewService(employeeRepo, log)
	leaveService := leave.NewServiceWithClock(db, leaveRepo, employeeRepo, infra.Metrics, infra.Now, log)
	authService := auth.NewService(auth.Dependencies{
		DB:          db,
		Users:       userRepo,
		Companies:   companyRepo,
		Departments: departmentRepo,
		Employees:   employeeRepo,
		Counters:    counterRepo,
		Outbox:      outboxRepo,
		Resolver:    resolver,
		Issuer:      codec,
	}, log)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, infra.Config.IsProduction(), log)
	companyHandler := company.NewHandler(companyService, log)
	departmentHandler := department.NewHandler(departmentService, log)
	employeeHandler := employee.NewHandler(employeeService, log)
	leaveHandler := leave.NewHandler(leaveService, log)

	// --- Routes Registration ---
	auth.RegisterRoutes(api, authHandler, authn, authorizer, rdb, infra.Config.RateLimit)
	company.RegisterRoutes(api, companyHandler, authn, authorizer)
	department.RegisterRoutes(api, departmentHandler, authn, authorizer)
	employee.RegisterRoutes(api, employeeHandler, authn, authorizer)
	leave.RegisterRoutes(api, leaveHandler, authn, authorizer)

	return nil
}
