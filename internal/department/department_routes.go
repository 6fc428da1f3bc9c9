package department

import (
	"go-hrm/internal/authz"
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	authn *middleware.Authenticator,
	permitter middleware.Permitter,
) {
	departments := r.Group("/departments")
	departments.Use(authn.Required())
	{
		departments.GET("", middleware.Permit(permitter, authz.ResourceDepartment, authz.ActionRead), h.GetAll)
		departments.POST("", middleware.Permit(permitter, authz.ResourceDepartment, authz.ActionCreate), h.Create)
	}
}
