// Package auth bridges server-side login sessions into the request-scoped
// Session value that handlers and the RBAC gate consume.
package auth

import (
	"context"
	"net/http"
	"time"

	"financeapp/internal/models"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "session_token"

// AuthUser is the user as seen by request handlers.
type AuthUser struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Image *string     `json:"image"`
	Role  models.Role `json:"role"`
}

// SessionInfo identifies the login backing a request.
type SessionInfo struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Session is the resolved identity of a request.
type Session struct {
	User    AuthUser    `json:"user"`
	Session SessionInfo `json:"session"`
}

// Resolver resolves the session of an incoming request. It returns nil, nil
// when the request carries no usable session, and an error only when the
// session store itself fails.
type Resolver interface {
	Resolve(ctx context.Context, r *http.Request) (*Session, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, r *http.Request) (*Session, error)

// Resolve calls f(ctx, r).
func (f ResolverFunc) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	return f(ctx, r)
}

// NewSession builds the request session from its stored parts.
func NewSession(u *models.User, s *models.Session) *Session {
	return &Session{
		User: AuthUser{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Image: u.Image,
			Role:  u.Role,
		},
		Session: SessionInfo{ID: s.ID, ExpiresAt: s.ExpiresAt},
	}
}
