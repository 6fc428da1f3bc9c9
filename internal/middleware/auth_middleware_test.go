package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/credential"
	"go-hrm/internal/domain"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "middleware-test-secret-0123456789abcdef"

var fixedNow = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func newAuthenticator(t *testing.T) (*middleware.Authenticator, *credential.Codec) {
	t.Helper()
	codec, err := credential.NewCodec(testSecret)
	assert.NoError(t, err)
	return middleware.NewAuthenticator(codec, func() time.Time { return fixedNow }), codec
}

func issue(t *testing.T, codec *credential.Codec, p domain.Principal, at time.Time) string {
	t.Helper()
	token, err := codec.Issue(p, at)
	assert.NoError(t, err)
	return token
}

func TestAuthenticator_Authenticate(t *testing.T) {
	authn, codec := newAuthenticator(t)

	headerUser := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleAdmin}
	cookieUser := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleUser}
	headerToken := issue(t, codec, headerUser, fixedNow)
	cookieToken := issue(t, codec, cookieUser, fixedNow)

	t.Run("bearer header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+headerToken)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: cookieToken})

		p, err := authn.Authenticate(req)
		assert.NoError(t, err)
		assert.Equal(t, headerUser, p)
	})

	t.Run("cookie used when header absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: cookieToken})

		p, err := authn.Authenticate(req)
		assert.NoError(t, err)
		assert.Equal(t, cookieUser, p)
	})

	t.Run("non bearer header is treated as absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token "+headerToken)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: cookieToken})

		p, err := authn.Authenticate(req)
		assert.NoError(t, err)
		assert.Equal(t, cookieUser, p)
	})

	t.Run("empty bearer falls back to cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer ")
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: cookieToken})

		p, err := authn.Authenticate(req)
		assert.NoError(t, err)
		assert.Equal(t, cookieUser, p)
	})

	t.Run("nothing present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := authn.Authenticate(req)
		assert.ErrorIs(t, err, autherrors.ErrUnauthenticated)
	})

	t.Run("expired credential", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, codec, headerUser, fixedNow.Add(-8*24*time.Hour)))

		_, err := authn.Authenticate(req)
		assert.ErrorIs(t, err, autherrors.ErrExpiredCredential)
	})

	t.Run("invalid bearer does not fall back to cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: cookieToken})

		_, err := authn.Authenticate(req)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredential)
	})
}

func TestAuthenticator_Required(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authn, codec := newAuthenticator(t)
	user := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleManager}

	r := gin.New()
	r.GET("/me", authn.Required(), func(c *gin.Context) {
		p, ok := middleware.PrincipalFrom(c)
		assert.True(t, ok)
		ctxPrincipal, ok := contextutil.GetPrincipal(c.Request.Context())
		assert.True(t, ok)
		assert.Equal(t, p, ctxPrincipal)
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, codec, user, fixedNow))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.UserID.String())
	})

	t.Run("Unauthenticated and expired share one message", func(t *testing.T) {
		w1 := httptest.NewRecorder()
		r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/me", nil))

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, codec, user, fixedNow.Add(-30*24*time.Hour)))
		w2 := httptest.NewRecorder()
		r.ServeHTTP(w2, req)

		assert.Equal(t, http.StatusUnauthorized, w1.Code)
		assert.Equal(t, http.StatusUnauthorized, w2.Code)

		var b1, b2 map[string]any
		assert.NoError(t, json.Unmarshal(w1.Body.Bytes(), &b1))
		assert.NoError(t, json.Unmarshal(w2.Body.Bytes(), &b2))
		assert.Equal(t, b1["error"], b2["error"])
	})
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authn, codec := newAuthenticator(t)

	r := gin.New()
	r.POST("/admin-only", authn.Required(), middleware.RequireRoles(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	call := func(role domain.Role) int {
		token := issue(t, codec, domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: role}, fixedNow)
		req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call(domain.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, call(domain.RoleManager))
	assert.Equal(t, http.StatusForbidden, call(domain.RoleUser))
}
