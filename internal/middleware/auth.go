package middleware

import (
	"github.com/gin-gonic/gin"

	"financeapp/internal/auth"
	apperrors "financeapp/internal/errors"
	"financeapp/internal/models"
	"financeapp/internal/rbac"
)

// userIDKey is set on the Gin context once a session is resolved so that
// request logging can attribute the request.
const userIDKey = "userID"

// SessionHandler is a handler that receives the resolved session explicitly.
type SessionHandler func(c *gin.Context, session *auth.Session)

// WithAuth resolves the request session, runs the RBAC gate for roles and on
// success calls handler with the session. No roles means any authenticated
// user. A failing session store answers 500; a missing session 401; a role
// outside roles 403.
func WithAuth(resolver auth.Resolver, handler SessionHandler, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := resolver.Resolve(c.Request.Context(), c.Request)
		if err != nil {
			abortWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}

		switch rbac.Authorize(session, roles...) {
		case rbac.Unauthorized:
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		case rbac.Forbidden:
			c.Set(userIDKey, session.User.ID)
			abortWithError(c, apperrors.ErrForbidden)
			return
		}

		c.Set(userIDKey, session.User.ID)
		handler(c, session)
	}
}

// WithPermission is WithAuth with the roles the RBAC policy grants p.
func WithPermission(resolver auth.Resolver, p rbac.Permission, handler SessionHandler) gin.HandlerFunc {
	return WithAuth(resolver, handler, rbac.Roles(p)...)
}
