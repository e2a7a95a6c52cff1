package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"financeapp/internal/auth"
	apperrors "financeapp/internal/errors"
	"financeapp/internal/logger"
	"financeapp/internal/models"
	"financeapp/internal/rbac"
	"financeapp/internal/services"
	"financeapp/internal/uuid"
)

const (
	stateCookieName = "oauth_state"
	stateCookiePath = "/api/v1/auth"
	stateMaxAge     = 10 * 60
)

// OAuthProvider is the external identity provider used for sign-in.
type OAuthProvider interface {
	Configured() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.GitHubProfile, error)
}

// SessionIssuer creates and revokes login sessions.
type SessionIssuer interface {
	Issue(ctx context.Context, user *models.User, ipAddress, userAgent string) (string, *models.Session, error)
	Revoke(ctx context.Context, sessionID string) error
}

// AuthConfig holds the settings the auth endpoints need.
type AuthConfig struct {
	FrontendURL  string
	CookieSecure bool
	SessionTTL   time.Duration
}

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	provider     OAuthProvider
	sessions     SessionIssuer
	userService  services.UserServicer
	auditService services.AuditServicer
	cfg          AuthConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(provider OAuthProvider, sessions SessionIssuer, userService services.UserServicer, auditService services.AuditServicer, cfg AuthConfig) *AuthHandler {
	return &AuthHandler{
		provider:     provider,
		sessions:     sessions,
		userService:  userService,
		auditService: auditService,
		cfg:          cfg,
	}
}

// CurrentUserResponse wraps the signed-in user.
type CurrentUserResponse struct {
	User    auth.AuthUser    `json:"user"`
	Session auth.SessionInfo `json:"session"`
}

// NavigationResponse lists the menu entries the user may open.
type NavigationResponse struct {
	Items []rbac.NavItem `json:"items"`
}

// GitHubLogin starts the GitHub OAuth flow
// @Summary     Sign in with GitHub
// @Description Redirects to GitHub and stores an anti-forgery state cookie
// @Tags        auth
// @Success     307 "Redirect to GitHub"
// @Failure     503 {object} ErrorResponse "GitHub OAuth not configured"
// @Router      /auth/github [get]
func (h *AuthHandler) GitHubLogin(c *gin.Context) {
	if !h.provider.Configured() {
		respondWithError(c, apperrors.ErrOAuthNotConfigured)
		return
	}

	state := uuid.Random()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, stateMaxAge, stateCookiePath, "", h.cfg.CookieSecure, true)
	c.Redirect(http.StatusTemporaryRedirect, h.provider.AuthCodeURL(state))
}

// GitHubCallback completes the GitHub OAuth flow
// @Summary     GitHub OAuth callback
// @Description Exchanges the code, links or creates the user, opens a session and redirects to the frontend
// @Tags        auth
// @Param       code  query string true "Authorization code"
// @Param       state query string true "Anti-forgery state"
// @Success     302 "Redirect to the frontend with the session cookie set"
// @Failure     400 {object} ErrorResponse "State mismatch or missing code"
// @Failure     502 {object} ErrorResponse "GitHub exchange failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/github/callback [get]
func (h *AuthHandler) GitHubCallback(c *gin.Context) {
	expected, err := c.Cookie(stateCookieName)
	c.SetCookie(stateCookieName, "", -1, stateCookiePath, "", h.cfg.CookieSecure, true)
	if err != nil || expected == "" || c.Query("state") != expected {
		respondWithError(c, apperrors.ErrOAuthStateMismatch)
		return
	}

	code := c.Query("code")
	if code == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Falta el código de autorización"))
		return
	}

	profile, err := h.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrOAuthExchangeFailed, err))
		return
	}

	user, err := h.userService.UpsertGitHubUser(c.Request.Context(), profile)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, session, err := h.sessions.Issue(c.Request.Context(), user, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	http.SetCookie(c.Writer, auth.Cookie(token, int(h.cfg.SessionTTL.Seconds()), h.cfg.CookieSecure))
	h.auditService.Log(c.Request.Context(), user.ID, services.AuditLogin, "session", session.ID, c.ClientIP(),
		map[string]interface{}{"provider": auth.ProviderGitHub})

	c.Redirect(http.StatusFound, h.cfg.FrontendURL)
}

// Logout ends the current session
// @Summary     Sign out
// @Description Deletes the current session and clears the session cookie
// @Tags        auth
// @Produce     json
// @Security    SessionCookie
// @Success     200 {object} MessageResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context, session *auth.Session) {
	if err := h.sessions.Revoke(c.Request.Context(), session.Session.ID); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	http.SetCookie(c.Writer, auth.Cookie("", -1, h.cfg.CookieSecure))
	h.auditService.Log(c.Request.Context(), session.User.ID, services.AuditLogout, "session", session.Session.ID, c.ClientIP(), nil)

	logger.Get().Infow("user signed out", "user_id", session.User.ID)
	c.JSON(http.StatusOK, MessageResponse{Message: "Sesión cerrada"})
}

// Me returns the signed-in user
// @Summary     Current user
// @Tags        auth
// @Produce     json
// @Security    SessionCookie
// @Success     200 {object} CurrentUserResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /me [get]
func (h *AuthHandler) Me(c *gin.Context, session *auth.Session) {
	c.JSON(http.StatusOK, CurrentUserResponse{User: session.User, Session: session.Session})
}

// Navigation returns the menu filtered by the user's role
// @Summary     Navigation menu
// @Tags        auth
// @Produce     json
// @Security    SessionCookie
// @Success     200 {object} NavigationResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /navigation [get]
func (h *AuthHandler) Navigation(c *gin.Context, session *auth.Session) {
	c.JSON(http.StatusOK, NavigationResponse{Items: rbac.Navigation(session)})
}
