package company_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrm/internal/company"
	companyerrors "go-hrm/internal/company/errors"
	companyMock "go-hrm/internal/company/mock"
	"go-hrm/internal/domain"
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func withPrincipal(p domain.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetPrincipal(c, p)
		c.Next()
	}
}

func TestHandler_GetMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)
	admin := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().GetByID(gomock.Any(), admin.TenantID).Return(company.CompanyResponse{
			ID:   admin.TenantID.String(),
			Name: "Test Company",
		}, nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.GET("/me", withPrincipal(admin), handler.GetMe)
		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["ok"])
		assert.Equal(t, "Test Company", res["data"].(map[string]any)["name"])
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.GET("/me", handler.GetMe)
		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)
	admin := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleAdmin}

	call := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.PATCH("/me/status", withPrincipal(admin), handler.UpdateStatus)
		req, _ := http.NewRequest(http.MethodPatch, "/me/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().
			UpdateStatus(gomock.Any(), admin.TenantID, company.StatusSuspended).
			Return(company.CompanyResponse{ID: admin.TenantID.String(), Status: company.StatusSuspended}, nil)

		w := call(`{"status":"SUSPENDED"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Company status updated")
	})

	t.Run("Validation Error", func(t *testing.T) {
		w := call(`{"status":"DELETED"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService.EXPECT().
			UpdateStatus(gomock.Any(), admin.TenantID, company.StatusActive).
			Return(company.CompanyResponse{}, companyerrors.ErrCompanyNotFound)

		w := call(`{"status":"ACTIVE"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
