package employee

import (
	"go-hrm/internal/authz"
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the employee directory. Listing is strict: a manager
// without a department gets an error instead of the whole tenant.
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	authn *middleware.Authenticator,
	authorizer *authz.Authorizer,
) {
	employees := r.Group("/employees")
	employees.Use(authn.Required())
	{
		employees.GET("/me", h.GetMe)
		employees.GET("",
			middleware.Permit(authorizer, authz.ResourceEmployee, authz.ActionRead),
			middleware.Scope(authorizer, authz.FallbackStrict),
			h.GetAll,
		)
		employees.GET("/:id",
			middleware.Permit(authorizer, authz.ResourceEmployee, authz.ActionRead),
			middleware.Scope(authorizer, authz.FallbackStrict),
			h.GetByID,
		)
	}
}
