package leave

import (
	"net/http"
	"strings"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/middleware"
	"go-hrm/internal/query"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	scope, ok := middleware.ScopeFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}

	page := query.ParsePage(c.Query("page"), c.Query("limit"))
	res, err := h.service.List(c.Request.Context(), scope, c.Query("search"), page)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.List(c, res.Items, response.NewPaginationMeta(res.Total, page.Page, page.Limit), res.Stats)
}

func (h *Handler) GetByID(c *gin.Context) {
	scope, ok := middleware.ScopeFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.AppError(c, apperror.InvalidField("id"))
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), scope, id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Create(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}
	scope, ok := middleware.ScopeFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.AppError(c, apperror.InvalidField("id"))
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Transition(c.Request.Context(), p, scope, id, req.Action)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, res, "Leave "+strings.ToLower(string(res.Status)))
}
