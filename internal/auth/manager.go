package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"financeapp/internal/logger"
	"financeapp/internal/models"
)

// SessionStore persists login sessions.
type SessionStore interface {
	// CreateSession inserts s, assigning its ID.
	CreateSession(ctx context.Context, s *models.Session) error
	// FindSession returns the session with its user preloaded, or nil when
	// no such session exists.
	FindSession(ctx context.Context, id string) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// Manager issues, resolves and revokes sessions. It implements Resolver.
type Manager struct {
	store  SessionStore
	tokens *TokenSigner
	cache  *SessionCache
	ttl    time.Duration
	now    func() time.Time
}

// NewManager wires a session manager. cache may be nil.
func NewManager(store SessionStore, tokens *TokenSigner, cache *SessionCache, ttl time.Duration) *Manager {
	return &Manager{store: store, tokens: tokens, cache: cache, ttl: ttl, now: time.Now}
}

var _ Resolver = (*Manager)(nil)

// Issue creates a session row for user and returns its signed token.
func (m *Manager) Issue(ctx context.Context, user *models.User, ipAddress, userAgent string) (string, *models.Session, error) {
	now := m.now()
	s := &models.Session{
		UserID:    user.ID,
		ExpiresAt: now.Add(m.ttl),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := m.store.CreateSession(ctx, s); err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	token, err := m.tokens.Sign(s.ID, user.ID, now, s.ExpiresAt)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}
	return token, s, nil
}

// Resolve implements Resolver. The user is loaded with the session so that
// role changes apply on the next request once the cache entry is dropped.
// A stale cookie does not hide a valid Bearer token.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	for _, raw := range TokensFromRequest(r) {
		session, err := m.resolveToken(ctx, raw)
		if err != nil || session != nil {
			return session, err
		}
	}
	return nil, nil
}

func (m *Manager) resolveToken(ctx context.Context, raw string) (*Session, error) {
	claims, err := m.tokens.Parse(raw)
	if err != nil {
		return nil, nil
	}

	if cached, ok := m.cache.Get(claims.ID); ok {
		return &cached, nil
	}

	stored, err := m.store.FindSession(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if stored == nil || stored.UserID != claims.Subject || stored.User.ID == "" {
		return nil, nil
	}
	if stored.Expired(m.now()) {
		if err := m.store.DeleteSession(ctx, stored.ID); err != nil {
			logger.Get().Warnw("failed to delete expired session", "session_id", stored.ID, "error", err)
		}
		return nil, nil
	}

	session := NewSession(&stored.User, stored)
	m.cache.Set(*session)
	return session, nil
}

// Revoke deletes a session and drops it from the cache.
func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	m.cache.Invalidate(sessionID)
	if err := m.store.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// InvalidateUser forgets cached sessions of a user whose profile changed.
func (m *Manager) InvalidateUser(userID string) {
	if n := m.cache.InvalidateUser(userID); n > 0 {
		logger.Get().Debugw("invalidated cached sessions", "user_id", userID, "count", n)
	}
}

// Cookie builds the session cookie for token. A negative maxAge clears it.
func Cookie(token string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
