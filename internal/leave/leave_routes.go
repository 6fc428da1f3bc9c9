package leave

import (
	"go-hrm/internal/authz"
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the leave endpoints. A manager without a department
// falls back to tenant scope here. PATCH has no role gate: Transition looks the
// request up in the caller's tenant before checking the role, so a foreign id
// is a 404 for every caller.
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	authn *middleware.Authenticator,
	authorizer *authz.Authorizer,
) {
	scope := middleware.Scope(authorizer, authz.FallbackTenant)

	leaves := r.Group("/leaves")
	leaves.Use(authn.Required())
	{
		leaves.GET("", middleware.Permit(authorizer, authz.ResourceLeave, authz.ActionRead), scope, h.GetAll)
		leaves.POST("", middleware.Permit(authorizer, authz.ResourceLeave, authz.ActionCreate), h.Create)
		leaves.GET("/:id", middleware.Permit(authorizer, authz.ResourceLeave, authz.ActionRead), scope, h.GetByID)
		leaves.PATCH("/:id", scope, h.UpdateStatus)
	}
}
