package auth

import (
	"net/http"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/credential"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service      Service
	secureCookie bool
	logger       *zap.Logger
}

// NewHandler builds the auth handler. secureCookie marks the credential
// cookie Secure and should be true in production.
func NewHandler(s Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, secureCookie: secureCookie, logger: l}
}

func (h *Handler) setCredentialCookie(c *gin.Context, token string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	session, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	h.setCredentialCookie(c, session.Token, int(credential.TTL.Seconds()))
	response.Success(c, http.StatusOK, session, nil)
}

func (h *Handler) RegisterCompany(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	session, err := h.service.RegisterCompany(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	h.setCredentialCookie(c, session.Token, int(credential.TTL.Seconds()))
	response.Success(c, http.StatusCreated, session, nil)
}

func (h *Handler) RegisterEmployee(c *gin.Context) {
	var req RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.RegisterEmployee(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) RegisterManager(c *gin.Context) {
	admin, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}

	var req RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.RegisterManager(c.Request.Context(), admin, req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Me(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.AppError(c, autherrors.ErrUnauthenticated)
		return
	}

	user, err := h.service.Me(c.Request.Context(), p)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user, nil)
}

// Logout only clears the cookie. Issued tokens stay valid until they expire.
func (h *Handler) Logout(c *gin.Context) {
	h.setCredentialCookie(c, "", -1)
	response.SuccessWithMessage(c, http.StatusOK, nil, "Logged out")
}
