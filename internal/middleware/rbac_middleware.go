package middleware

import (
	autherrors "go-hrm/internal/auth/errors"
	authzerrors "go-hrm/internal/authz/errors"
	"go-hrm/internal/domain"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Permitter is satisfied by authz.Authorizer.
type Permitter interface {
	Permit(p domain.Principal, resource, action string) (bool, error)
}

// Permit checks the route permission table for resource:action.
func Permit(permitter Permitter, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			response.AppError(c, autherrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		allowed, err := permitter.Permit(p, resource, action)
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("permission check failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			response.AppError(c, err)
			c.Abort()
			return
		}

		if !allowed {
			response.AppError(c, authzerrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
