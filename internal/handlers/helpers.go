package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financeapp/internal/errors"
	"financeapp/internal/logger"
	"financeapp/internal/models"
)

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, message and details.
// Otherwise it logs the unexpected error and returns a generic internal
// server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		body := gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		}
		if len(appErr.Details) > 0 {
			body["details"] = appErr.Details
		}
		c.JSON(appErr.StatusCode, gin.H{"error": body})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// decodeJSON reads a JSON body keeping numbers as json.Number so that the
// validator sees exactly what the client sent.
func decodeJSON(body io.Reader, out interface{}) error {
	if body == nil {
		return apperrors.ErrInvalidInput
	}
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "El cuerpo de la solicitud no es un JSON válido")
	}
	return nil
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// OwnerResponse is the creator of a movement as embedded in list responses.
type OwnerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MovementResponse represents a movement in the response
type MovementResponse struct {
	ID        string              `json:"id"`
	Concept   string              `json:"concept"`
	Amount    float64             `json:"amount"`
	Type      models.MovementType `json:"type"`
	Date      time.Time           `json:"date"`
	CreatedAt time.Time           `json:"createdAt"`
	User      OwnerResponse       `json:"user"`
}

func toMovementResponse(m *models.Movement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		Concept:   m.Concept,
		Amount:    m.Amount.Round(2).InexactFloat64(),
		Type:      m.Type,
		Date:      m.Date.UTC(),
		CreatedAt: m.CreatedAt.UTC(),
		User:      OwnerResponse{ID: m.User.ID, Name: m.User.Name},
	}
}

// UserResponse represents the user data in the response
type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     *string     `json:"phone"`
	Image     *string     `json:"image"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Image:     u.Image,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC(),
	}
}
