package company

import (
	"go-hrm/internal/authz"
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authn *middleware.Authenticator,
	permitter middleware.Permitter,
) {
	company := r.Group("/companies")
	company.Use(authn.Required())
	{
		// Dashboard header, refreshed often.
		company.GET("/me",
			middleware.RateLimitByUser(2, 10),
			middleware.Permit(permitter, authz.ResourceCompany, authz.ActionRead),
			handler.GetMe,
		)

		// 1x per 10 seconds.
		company.PATCH("/me/status",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Permit(permitter, authz.ResourceCompany, authz.ActionManage),
			handler.UpdateStatus,
		)
	}
}
