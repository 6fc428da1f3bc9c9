package department

import (
	"net/http"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("department.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}

	depts, err := h.service.GetAll(c.Request.Context(), p.TenantID)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, depts, nil)
}

func (h *Handler) Create(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}

	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	dept, err := h.service.Create(c.Request.Context(), p.TenantID, req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dept, nil)
}
