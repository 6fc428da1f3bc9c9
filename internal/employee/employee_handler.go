package employee

import (
	"net/http"

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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
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

	meta := response.NewPaginationMeta(res.Total, page.Page, page.Limit)
	response.List(c, res.Items, meta, nil)
}

func (h *Handler) GetMe(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}

	empl, err := h.service.GetMine(c.Request.Context(), p)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, empl, nil)
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

	empl, err := h.service.GetByID(c.Request.Context(), scope, id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, empl, nil)
}
