package employee_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrm/internal/authz"
	"go-hrm/internal/domain"
	"go-hrm/internal/employee"
	employeeMock "go-hrm/internal/employee/mock"
	"go-hrm/internal/middleware"
	"go-hrm/internal/query"

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

func TestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	handler := employee.NewHandler(mockService)
	authorizer, err := authz.NewAuthorizer()
	assert.NoError(t, err)

	serve := func(p domain.Principal, target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.GET("/employees", withPrincipal(p), middleware.Scope(authorizer, authz.FallbackStrict), handler.GetAll)
		req, _ := http.NewRequest(http.MethodGet, target, nil)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("ManagerSeesDepartmentPage", func(t *testing.T) {
		deptID := uuid.New()
		manager := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleManager, DepartmentID: &deptID}

		mockService.EXPECT().
			List(gomock.Any(), domain.DepartmentScope(manager.TenantID, deptID), "ana", query.NewPage(2, 5)).
			Return(employee.EmployeeListResult{
				Items: []employee.EmployeeResponse{{Name: "Ana"}},
				Total: 12,
			}, nil)

		w := serve(manager, "/employees?page=2&search=ana")
		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		pagination := res["pagination"].(map[string]any)
		assert.Equal(t, float64(12), pagination["total"])
		assert.Equal(t, float64(3), pagination["totalPages"])
	})

	t.Run("ManagerWithoutDepartmentIsRejected", func(t *testing.T) {
		manager := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleManager}

		w := serve(manager, "/employees")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetByID_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := employee.NewHandler(employeeMock.NewMockService(ctrl))
	authorizer, err := authz.NewAuthorizer()
	assert.NoError(t, err)
	admin := domain.Principal{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleAdmin}

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.GET("/employees/:id", withPrincipal(admin), middleware.Scope(authorizer, authz.FallbackStrict), handler.GetByID)
	req, _ := http.NewRequest(http.MethodGet, "/employees/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
