package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go-hrm/internal/app"
	"go-hrm/internal/config"
	"go-hrm/internal/department"
	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/messaging/kafka/consumer"
	"go-hrm/internal/messaging/kafka/producer"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/metrics"
	"go-hrm/internal/shared/testdb"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type captureWriter struct {
	mu   sync.Mutex
	msgs []kafkago.Message
}

func (w *captureWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, msgs...)
	return nil
}

type env struct {
	t      *testing.T
	db     *gorm.DB
	rdb    *redis.Client
	router *gin.Engine
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	db := testdb.New(t, app.Models()...)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	router, err := app.NewRouter(app.Infra{
		Config: config.Config{
			JWTSecret: strings.Repeat("k", 32),
			RateLimit: config.RateLimitConfig{LoginPerSecond: 100, LoginBurst: 100, UserPerSecond: 100, UserBurst: 100},
		},
		DB:      db,
		Redis:   rdb,
		Metrics: metrics.New(),
		Logger:  zap.NewNop(),
	})
	require.NoError(t, err)
	return &env{t: t, db: db, rdb: rdb, router: router}
}

func (e *env) call(method, path, token string, body any) (int, map[string]any) {
	e.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var res map[string]any
	json.Unmarshal(w.Body.Bytes(), &res)
	return w.Code, res
}

func data(res map[string]any) map[string]any {
	d, _ := res["data"].(map[string]any)
	return d
}

func (e *env) login(slug, email, password string) string {
	e.t.Helper()
	code, res := e.call(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"company_slug": slug, "email": email, "password": password,
	})
	require.Equal(e.t, http.StatusOK, code, res)
	return data(res)["token"].(string)
}

// signup registers a company and runs its outbox row through the relay and
// the provisioning consumer so the default departments exist.
func (e *env) signup(name, slug, email string) string {
	e.t.Helper()
	ctx := context.Background()

	code, res := e.call(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"company_name": name,
		"company_slug": slug,
		"name":         "Admin " + name,
		"email":        email,
		"password":     "secret123",
	})
	require.Equal(e.t, http.StatusCreated, code, res)
	token := data(res)["token"].(string)

	writer := &captureWriter{}
	sent, err := producer.NewRelay(kafka.NewOutboxRepository(e.db), writer, nil, zap.NewNop()).ProcessPending(ctx)
	require.NoError(e.t, err)
	require.Equal(e.t, 1, sent)
	require.Len(e.t, writer.msgs, 1)
	assert.Equal(e.t, events.CompanyLifecycleTopic, writer.msgs[0].Topic)

	handler := consumer.NewCompanyLifecycleHandler(
		department.NewService(department.NewRepository(e.db), e.rdb, zap.NewNop()),
		zap.NewNop(),
	)
	require.NoError(e.t, handler.Handle(ctx, writer.msgs[0]))
	require.NoError(e.t, handler.Handle(ctx, writer.msgs[0]), "redelivery is harmless")
	return token
}

func TestHealthAndMetrics(t *testing.T) {
	e := newEnv(t)

	code, res := e.call(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", res["status"])

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hrm_http_requests_total")
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	e := newEnv(t)

	code, _ := e.call(http.MethodGet, "/api/v1/leaves", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = e.call(http.MethodGet, "/api/v1/employees", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestCompanyLifecycle(t *testing.T) {
	e := newEnv(t)
	adminToken := e.signup("Acme Corp", "acme", "ada@acme.test")

	code, res := e.call(http.MethodGet, "/api/v1/departments", adminToken, nil)
	require.Equal(t, http.StatusOK, code, res)
	assert.Len(t, res["data"], len(department.DefaultNames))

	// Members join the Engineering department.
	code, res = e.call(http.MethodPost, "/api/v1/auth/register-employee", "", map[string]string{
		"company_slug":    "acme",
		"department_name": "Engineering",
		"name":            "Eko Engineer",
		"email":           "eko@acme.test",
		"password":        "secret123",
		"position":        "Backend Engineer",
	})
	require.Equal(t, http.StatusCreated, code, res)
	assert.Equal(t, "EMP-000001", data(res)["employee_code"])

	code, res = e.call(http.MethodPost, "/api/v1/auth/register-manager", adminToken, map[string]string{
		"company_slug":    "acme",
		"department_name": "Engineering",
		"name":            "Mira Manager",
		"email":           "mira@acme.test",
		"password":        "secret123",
	})
	require.Equal(t, http.StatusCreated, code, res)
	assert.Equal(t, "EMP-000002", data(res)["employee_code"])

	employeeToken := e.login("acme", "eko@acme.test", "secret123")
	managerToken := e.login("acme", "mira@acme.test", "secret123")

	// The employee files a request, the department manager approves it.
	code, res = e.call(http.MethodPost, "/api/v1/leaves", employeeToken, map[string]string{
		"leave_type": "ANNUAL",
		"start_date": "2030-01-06",
		"end_date":   "2030-01-08",
		"reason":     "trip",
	})
	require.Equal(t, http.StatusCreated, code, res)
	leaveID := data(res)["id"].(string)
	assert.Equal(t, float64(3), data(res)["total_days"])

	code, _ = e.call(http.MethodPatch, "/api/v1/leaves/"+leaveID, employeeToken, map[string]string{"action": "APPROVE"})
	assert.Equal(t, http.StatusForbidden, code)

	// A user of another company cannot learn that the request exists.
	e.signup("Globex", "globex", "gil@globex.test")
	code, res = e.call(http.MethodPost, "/api/v1/auth/register-employee", "", map[string]string{
		"company_slug":    "globex",
		"department_name": "Engineering",
		"name":            "Otto Outsider",
		"email":           "otto@globex.test",
		"password":        "secret123",
	})
	require.Equal(t, http.StatusCreated, code, res)
	outsiderToken := e.login("globex", "otto@globex.test", "secret123")

	code, _ = e.call(http.MethodPatch, "/api/v1/leaves/"+leaveID, outsiderToken, map[string]string{"action": "APPROVE"})
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = e.call(http.MethodGet, "/api/v1/leaves/"+leaveID, outsiderToken, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, res = e.call(http.MethodPatch, "/api/v1/leaves/"+leaveID, managerToken, map[string]string{"action": "APPROVE"})
	require.Equal(t, http.StatusOK, code, res)
	assert.Equal(t, "Leave approved", res["message"])

	code, res = e.call(http.MethodPatch, "/api/v1/leaves/"+leaveID, managerToken, map[string]string{"action": "REJECT"})
	assert.Equal(t, http.StatusBadRequest, code, res)

	code, res = e.call(http.MethodGet, "/api/v1/leaves", adminToken, nil)
	require.Equal(t, http.StatusOK, code, res)
	assert.Equal(t, float64(1), res["pagination"].(map[string]any)["total"])
	stats := res["stats"].(map[string]any)
	assert.Equal(t, float64(0), stats["pending"])
	assert.Equal(t, float64(1), stats["approvedMonth"])

	code, res = e.call(http.MethodGet, "/api/v1/employees", managerToken, nil)
	require.Equal(t, http.StatusOK, code, res)
	assert.Equal(t, float64(2), res["pagination"].(map[string]any)["total"])

	code, res = e.call(http.MethodGet, "/api/v1/employees/me", employeeToken, nil)
	require.Equal(t, http.StatusOK, code, res)
	assert.Equal(t, "EMP-000001", data(res)["employee_code"])

	// A suspended company can no longer log in.
	code, res = e.call(http.MethodPatch, "/api/v1/companies/me/status", adminToken, map[string]string{"status": "SUSPENDED"})
	require.Equal(t, http.StatusOK, code, res)

	code, _ = e.call(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"company_slug": "acme", "email": "eko@acme.test", "password": "secret123",
	})
	assert.NotEqual(t, http.StatusOK, code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `hrm_leave_transitions_total{action="APPROVE",result="ok"} 1`)
	assert.Contains(t, w.Body.String(), `hrm_leave_transitions_total{action="REJECT",result="INVALID_STATE"} 1`)
}
