package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"financeapp/internal/auth"
	"financeapp/internal/export"
	"financeapp/internal/models"
	"financeapp/internal/pagination"
	"financeapp/internal/report"
	"financeapp/internal/services"
	"financeapp/internal/validator"
)

// --- mock services ---

type mockMovementService struct {
	listMovementsFn    func(ctx context.Context, filter services.MovementFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Movement], error)
	listAllMovementsFn func(ctx context.Context, order services.SortOrder) ([]models.Movement, error)
	createMovementFn   func(ctx context.Context, userID string, in services.NewMovement) (*models.Movement, error)
}

func (m *mockMovementService) ListMovements(ctx context.Context, filter services.MovementFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Movement], error) {
	if m.listMovementsFn != nil {
		return m.listMovementsFn(ctx, filter, page)
	}
	page.Defaults()
	resp := pagination.NewPageResponse[models.Movement](nil, page.Page, page.Limit, 0)
	return &resp, nil
}

func (m *mockMovementService) ListAllMovements(ctx context.Context, order services.SortOrder) ([]models.Movement, error) {
	if m.listAllMovementsFn != nil {
		return m.listAllMovementsFn(ctx, order)
	}
	return []models.Movement{}, nil
}

func (m *mockMovementService) CreateMovement(ctx context.Context, userID string, in services.NewMovement) (*models.Movement, error) {
	if m.createMovementFn != nil {
		return m.createMovementFn(ctx, userID, in)
	}
	return &models.Movement{}, nil
}

type mockUserService struct {
	listUsersFn        func(ctx context.Context) ([]models.User, error)
	getUserByIDFn      func(ctx context.Context, id string) (*models.User, error)
	updateUserFn       func(ctx context.Context, id string, upd services.UserUpdate) (*models.User, error)
	upsertGitHubUserFn func(ctx context.Context, profile *auth.GitHubProfile) (*models.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return []models.User{}, nil
}

func (m *mockUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, id string, upd services.UserUpdate) (*models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, id, upd)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) UpsertGitHubUser(ctx context.Context, profile *auth.GitHubProfile) (*models.User, error) {
	if m.upsertGitHubUserFn != nil {
		return m.upsertGitHubUserFn(ctx, profile)
	}
	return &models.User{}, nil
}

type mockReportService struct {
	getReportFn  func(ctx context.Context) (*report.Report, error)
	exportRowsFn func(ctx context.Context) ([]export.MovementRow, error)
}

func (m *mockReportService) GetReport(ctx context.Context) (*report.Report, error) {
	if m.getReportFn != nil {
		return m.getReportFn(ctx)
	}
	r := report.Compute(nil)
	return &r, nil
}

func (m *mockReportService) ExportRows(ctx context.Context) ([]export.MovementRow, error) {
	if m.exportRowsFn != nil {
		return m.exportRowsFn(ctx)
	}
	return []export.MovementRow{}, nil
}

type auditEntry struct {
	userID       string
	action       string
	resourceType string
	resourceID   string
	changes      map[string]interface{}
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(_ context.Context, userID, action, resourceType, resourceID, _ string, changes map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{userID, action, resourceType, resourceID, changes})
}

type mockProvider struct {
	configured bool
	exchangeFn func(ctx context.Context, code string) (*auth.GitHubProfile, error)
}

func (m *mockProvider) Configured() bool { return m.configured }

func (m *mockProvider) AuthCodeURL(state string) string {
	return "https://github.example/login/oauth/authorize?state=" + state
}

func (m *mockProvider) Exchange(ctx context.Context, code string) (*auth.GitHubProfile, error) {
	if m.exchangeFn != nil {
		return m.exchangeFn(ctx, code)
	}
	return &auth.GitHubProfile{ID: "1", Email: "a@example.com"}, nil
}

type mockSessions struct {
	issueFn     func(ctx context.Context, user *models.User, ip, ua string) (string, *models.Session, error)
	revokeFn    func(ctx context.Context, sessionID string) error
	invalidated []string
}

func (m *mockSessions) Issue(ctx context.Context, user *models.User, ip, ua string) (string, *models.Session, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, user, ip, ua)
	}
	return "token", &models.Session{Base: models.Base{ID: "s-1"}, UserID: user.ID}, nil
}

func (m *mockSessions) Revoke(ctx context.Context, sessionID string) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, sessionID)
	}
	return nil
}

func (m *mockSessions) InvalidateUser(userID string) {
	m.invalidated = append(m.invalidated, userID)
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func adminSession() *auth.Session {
	return &auth.Session{
		User:    auth.AuthUser{ID: "admin-1", Name: "Ana Admin", Email: "ana@example.com", Role: models.RoleAdmin},
		Session: auth.SessionInfo{ID: "s-admin"},
	}
}

func userSession() *auth.Session {
	return &auth.Session{
		User:    auth.AuthUser{ID: "user-1", Name: "Uriel", Email: "uriel@example.com", Role: models.RoleUser},
		Session: auth.SessionInfo{ID: "s-user"},
	}
}

// withSession adapts a session handler for routes registered without the auth gate.
func withSession(s *auth.Session, h func(*gin.Context, *auth.Session)) gin.HandlerFunc {
	return func(c *gin.Context) { h(c, s) }
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func errorDetails(t *testing.T, result map[string]interface{}) []string {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	raw, _ := errObj["details"].([]interface{})
	out := make([]string, 0, len(raw))
	for _, d := range raw {
		s, _ := d.(string)
		out = append(out, s)
	}
	return out
}
