package auth

import (
	"go-hrm/internal/authz"
	"go-hrm/internal/config"
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authn *middleware.Authenticator,
	permitter middleware.Permitter,
	rdb *redis.Client,
	limits config.RateLimitConfig,
) {
	publicLimit := middleware.RateLimitByIP(rate.Limit(limits.LoginPerSecond), limits.LoginBurst)
	idempotent := middleware.Idempotency(rdb)

	auth := r.Group("/auth")
	{
		auth.POST("/login", publicLimit, handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.POST("/register", publicLimit, idempotent, handler.RegisterCompany)
		auth.POST("/register-employee", publicLimit, idempotent, handler.RegisterEmployee)

		auth.GET("/me",
			authn.Required(),
			middleware.RateLimitByUser(rate.Limit(limits.UserPerSecond), limits.UserBurst),
			handler.Me,
		)
		auth.POST("/register-manager",
			authn.Required(),
			middleware.Permit(permitter, authz.ResourceMember, authz.ActionCreate),
			idempotent,
			handler.RegisterManager,
		)
	}
}
