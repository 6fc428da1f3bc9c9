package middleware

import (
	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/authz"
	"go-hrm/internal/domain"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const scopeKey = "visibility_scope"

type ScopeResolver interface {
	Scope(p domain.Principal, fallback authz.Fallback) (domain.VisibilityScope, error)
}

// Scope computes the principal's visibility scope once per request. Handlers
// read it with ScopeFrom.
func Scope(resolver ScopeResolver, fallback authz.Fallback) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			response.AppError(c, autherrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		scope, err := resolver.Scope(p, fallback)
		if err != nil {
			response.AppError(c, err)
			c.Abort()
			return
		}

		c.Set(scopeKey, scope)
		c.Next()
	}
}

func ScopeFrom(c *gin.Context) (domain.VisibilityScope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return domain.VisibilityScope{}, false
	}
	scope, ok := v.(domain.VisibilityScope)
	return scope, ok
}
