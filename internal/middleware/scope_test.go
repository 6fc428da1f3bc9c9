package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrm/internal/authz"
	"go-hrm/internal/domain"
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestScopeAndPermit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authn, codec := newAuthenticator(t)
	authorizer, err := authz.NewAuthorizer()
	assert.NoError(t, err)

	var seen domain.VisibilityScope
	handler := func(c *gin.Context) {
		scope, ok := middleware.ScopeFrom(c)
		assert.True(t, ok)
		seen = scope
		c.Status(http.StatusNoContent)
	}

	r := gin.New()
	r.GET("/strict", authn.Required(), middleware.Scope(authorizer, authz.FallbackStrict), handler)
	r.GET("/lenient", authn.Required(), middleware.Scope(authorizer, authz.FallbackTenant), handler)
	r.GET("/directory", authn.Required(), middleware.Permit(authorizer, authz.ResourceEmployee, authz.ActionRead), handler)

	call := func(method, path string, p domain.Principal) int {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, codec, p, fixedNow))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	deptID := uuid.New()
	manager := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleManager, DepartmentID: &deptID}
	orphanManager := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleManager}
	user := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleUser}

	t.Run("manager gets department scope", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, call(http.MethodGet, "/strict", manager))
		assert.Equal(t, domain.DepartmentScope(manager.TenantID, deptID), seen)
	})

	t.Run("manager without department", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, call(http.MethodGet, "/strict", orphanManager))
		assert.Equal(t, http.StatusNoContent, call(http.MethodGet, "/lenient", orphanManager))
		assert.Equal(t, domain.TenantScope(orphanManager.TenantID), seen)
	})

	t.Run("user gets self scope", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, call(http.MethodGet, "/strict", user))
		assert.Equal(t, domain.SelfScope(user.TenantID, user.UserID), seen)
	})

	t.Run("permit", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, call(http.MethodGet, "/directory", manager))
		assert.Equal(t, http.StatusForbidden, call(http.MethodGet, "/directory", user))
	})
}
