package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "financeapp/internal/errors"
	"financeapp/internal/models"
	"financeapp/internal/services"
	"financeapp/internal/validator"
)

const knownUserID = "0190a6c4-0000-7000-8000-000000000001"

func setupUserRouter(handler *UserHandler) *gin.Engine {
	r := gin.New()
	r.GET("/users", withSession(adminSession(), handler.ListUsers))
	r.PUT("/users/:id", withSession(adminSession(), handler.UpdateUser))
	return r
}

func TestUserHandler_ListUsers(t *testing.T) {
	svc := &mockUserService{
		listUsersFn: func(context.Context) ([]models.User, error) {
			return []models.User{
				{Base: models.Base{ID: "u-1"}, Name: "Ana", Email: "ana@example.com", Role: models.RoleAdmin},
				{Base: models.Base{ID: "u-2"}, Name: "Beto", Email: "beto@example.com", Role: models.RoleUser},
			}, nil
		},
	}
	r := setupUserRouter(NewUserHandler(svc, &mockSessions{}, &mockAuditService{}))

	rec := doRequest(r, http.MethodGet, "/users", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := parseJSON(t, rec)
	if body["total"] != float64(2) {
		t.Errorf("expected total 2, got %v", body["total"])
	}
	users := body["users"].([]interface{})
	first := users[0].(map[string]interface{})
	if first["name"] != "Ana" || first["role"] != "ADMIN" {
		t.Errorf("unexpected first user %v", first)
	}
	if _, leaked := first["accounts"]; leaked {
		t.Error("provider accounts must not be serialized")
	}
}

func TestUserHandler_UpdateUser(t *testing.T) {
	existing := func(context.Context, string) (*models.User, error) {
		return &models.User{Base: models.Base{ID: knownUserID}, Name: "Juan", Email: "juan@example.com", Role: models.RoleUser}, nil
	}

	t.Run("returns 200 and invalidates cached sessions", func(t *testing.T) {
		var got services.UserUpdate
		svc := &mockUserService{
			getUserByIDFn: existing,
			updateUserFn: func(_ context.Context, id string, upd services.UserUpdate) (*models.User, error) {
				got = upd
				return &models.User{Base: models.Base{ID: id}, Name: *upd.Name, Role: *upd.Role}, nil
			},
		}
		sessions := &mockSessions{}
		audit := &mockAuditService{}
		r := setupUserRouter(NewUserHandler(svc, sessions, audit))

		rec := doRequest(r, http.MethodPut, "/users/"+knownUserID, `{"name":" Juan Pérez ","role":"ADMIN"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		if got.Name == nil || *got.Name != "Juan Pérez" {
			t.Errorf("expected trimmed name, got %v", got.Name)
		}
		if got.Role == nil || *got.Role != models.RoleAdmin {
			t.Errorf("expected ADMIN role, got %v", got.Role)
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if user["role"] != "ADMIN" {
			t.Errorf("unexpected user %v", user)
		}
		if len(sessions.invalidated) != 1 || sessions.invalidated[0] != knownUserID {
			t.Errorf("expected cached sessions of %s to be invalidated, got %v", knownUserID, sessions.invalidated)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != services.AuditUpdateUser || audit.entries[0].userID != "admin-1" {
			t.Errorf("expected one UPDATE_USER audit entry by the admin, got %+v", audit.entries)
		}
	})

	t.Run("role only", func(t *testing.T) {
		var got services.UserUpdate
		svc := &mockUserService{
			getUserByIDFn: existing,
			updateUserFn: func(_ context.Context, id string, upd services.UserUpdate) (*models.User, error) {
				got = upd
				return &models.User{Base: models.Base{ID: id}, Name: "Juan", Role: *upd.Role}, nil
			},
		}
		r := setupUserRouter(NewUserHandler(svc, &mockSessions{}, &mockAuditService{}))

		rec := doRequest(r, http.MethodPut, "/users/"+knownUserID, `{"role":"USER"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Name != nil {
			t.Errorf("absent name must not be updated, got %q", *got.Name)
		}
	})

	tests := []struct {
		name        string
		id          string
		body        string
		getErr      error
		wantStatus  int
		wantCode    string
		wantDetails []string
	}{
		{
			name:       "unknown user",
			id:         knownUserID,
			body:       `{"name":"Nuevo"}`,
			getErr:     apperrors.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name:       "malformed id",
			id:         "not-a-uuid",
			body:       `{"name":"Nuevo"}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name:       "nothing to update",
			id:         knownUserID,
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:        "invalid fields",
			id:          knownUserID,
			body:        `{"name":"J","role":"ROOT"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantDetails: []string{validator.MsgNameTooShort, validator.MsgRoleInvalid},
		},
		{
			name:        "blank name",
			id:          knownUserID,
			body:        `{"name":"   "}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantDetails: []string{validator.MsgNameEmpty},
		},
	}

	for _, tt := range tests {
		t.Run("returns "+tt.wantCode+" for "+tt.name, func(t *testing.T) {
			updated := false
			svc := &mockUserService{
				getUserByIDFn: func(ctx context.Context, id string) (*models.User, error) {
					if tt.getErr != nil {
						return nil, tt.getErr
					}
					return existing(ctx, id)
				},
				updateUserFn: func(context.Context, string, services.UserUpdate) (*models.User, error) {
					updated = true
					return &models.User{}, nil
				},
			}
			sessions := &mockSessions{}
			r := setupUserRouter(NewUserHandler(svc, sessions, &mockAuditService{}))

			rec := doRequest(r, http.MethodPut, "/users/"+tt.id, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			body := parseJSON(t, rec)
			assertErrorCode(t, body, tt.wantCode)
			if tt.wantDetails != nil {
				got := errorDetails(t, body)
				if len(got) != len(tt.wantDetails) {
					t.Fatalf("expected details %v, got %v", tt.wantDetails, got)
				}
				for i := range got {
					if got[i] != tt.wantDetails[i] {
						t.Errorf("detail %d: expected %q, got %q", i, tt.wantDetails[i], got[i])
					}
				}
			}
			if updated {
				t.Error("service update must not be called")
			}
			if len(sessions.invalidated) != 0 {
				t.Error("sessions must not be invalidated")
			}
		})
	}
}
