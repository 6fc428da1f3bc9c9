package company

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
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetMe(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}

	comp, err := h.service.GetByID(c.Request.Context(), p.TenantID)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	comp, err := h.service.UpdateStatus(c.Request.Context(), p.TenantID, req.Status)
	if err != nil {
		h.logger.Warn("update status rejected", zap.Error(err))
		response.AppError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, comp, "Company status updated")
}
