package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"financeapp/internal/auth"
	apperrors "financeapp/internal/errors"
	"financeapp/internal/models"
	"financeapp/internal/services"
	"financeapp/internal/uuid"
	"financeapp/internal/validator"
)

// SessionInvalidator drops cached sessions of a user whose profile changed.
type SessionInvalidator interface {
	InvalidateUser(userID string)
}

// UserHandler handles user administration requests.
type UserHandler struct {
	userService  services.UserServicer
	sessions     SessionInvalidator
	auditService services.AuditServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer, sessions SessionInvalidator, auditService services.AuditServicer) *UserHandler {
	return &UserHandler{userService: userService, sessions: sessions, auditService: auditService}
}

// UserListResponse lists every user.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// UserEnvelope wraps a single user.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// ListUsers handles the user list
// @Summary     List users
// @Tags        users
// @Produce     json
// @Security    SessionCookie
// @Success     200 {object} UserListResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [get]
func (h *UserHandler) ListUsers(c *gin.Context, _ *auth.Session) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, UserListResponse{Users: out, Total: len(out)})
}

// UpdateUser handles name and role changes
// @Summary     Update a user
// @Description Changes the name and/or role of a user. Only the fields sent are validated and saved.
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       id      path string                    true "User ID"
// @Param       request body validator.UserUpdateInput true "Fields to update"
// @Success     200 {object} UserEnvelope
// @Failure     400 {object} ErrorResponse "Validation failed or nothing to update"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context, session *auth.Session) {
	id := c.Param("id")
	if !uuid.IsValid(id) {
		respondWithError(c, apperrors.ErrUserNotFound)
		return
	}

	existing, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var in validator.UserUpdateInput
	if err := decodeJSON(c.Request.Body, &in); err != nil {
		respondWithError(c, err)
		return
	}
	if in.Empty() {
		respondWithError(c, apperrors.ErrNothingToSave)
		return
	}
	if res := validator.ValidateUserUpdate(in); !res.IsValid {
		respondWithError(c, apperrors.WithDetails(apperrors.ErrValidation, res.Errors))
		return
	}

	var upd services.UserUpdate
	changes := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		upd.Name = &name
		changes["name"] = map[string]string{"from": existing.Name, "to": name}
	}
	if in.Role != nil {
		role := models.Role(*in.Role)
		upd.Role = &role
		changes["role"] = map[string]models.Role{"from": existing.Role, "to": role}
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, upd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.sessions.InvalidateUser(user.ID)
	h.auditService.Log(c.Request.Context(), session.User.ID, services.AuditUpdateUser, "user", user.ID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, UserEnvelope{User: toUserResponse(user)})
}
