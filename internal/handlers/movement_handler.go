package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"financeapp/internal/auth"
	apperrors "financeapp/internal/errors"
	"financeapp/internal/models"
	"financeapp/internal/pagination"
	"financeapp/internal/services"
	"financeapp/internal/validator"
)

// MovementHandler handles movement-related requests.
type MovementHandler struct {
	movementService services.MovementServicer
	auditService    services.AuditServicer
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(movementService services.MovementServicer, auditService services.AuditServicer) *MovementHandler {
	return &MovementHandler{movementService: movementService, auditService: auditService}
}

// ListMovementsQuery holds the query parameters of the movement list.
type ListMovementsQuery struct {
	pagination.PageRequest
	Type string `form:"type" binding:"omitempty,movement_type"`
	From string `form:"from"`
	To   string `form:"to"`
}

// MovementListResponse is one page of movements.
type MovementListResponse struct {
	Movements  []MovementResponse `json:"movements"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

// MovementEnvelope wraps a single movement.
type MovementEnvelope struct {
	Movement MovementResponse `json:"movement"`
}

// ListMovements handles the paginated movement list
// @Summary     List movements
// @Description Movements of every user, newest first, with optional type and date filters
// @Tags        movements
// @Produce     json
// @Security    SessionCookie
// @Param       page  query int    false "Page number (default 1)"
// @Param       limit query int    false "Items per page (default 50, max 100)"
// @Param       type  query string false "INCOME or EXPENSE"
// @Param       from  query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to    query string false "End date, inclusive (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} MovementListResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /movements [get]
func (h *MovementHandler) ListMovements(c *gin.Context, _ *auth.Session) {
	var q ListMovementsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := q.filter()
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := h.movementService.ListMovements(c.Request.Context(), filter, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items := make([]MovementResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toMovementResponse(&page.Items[i]))
	}

	c.JSON(http.StatusOK, MovementListResponse{
		Movements:  items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

func (q ListMovementsQuery) filter() (services.MovementFilter, error) {
	var f services.MovementFilter
	if q.Type != "" {
		t := models.MovementType(q.Type)
		f.Type = &t
	}
	if q.From != "" {
		from, err := validator.ParseDate(q.From)
		if err != nil {
			return f, apperrors.WithMessage(apperrors.ErrInvalidInput, validator.MsgDateInvalid)
		}
		f.From = &from
	}
	if q.To != "" {
		to, err := validator.ParseDate(q.To)
		if err != nil {
			return f, apperrors.WithMessage(apperrors.ErrInvalidInput, validator.MsgDateInvalid)
		}
		// A bare date includes the whole day.
		if len(q.To) == len("2006-01-02") {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return f, apperrors.WithMessage(apperrors.ErrInvalidInput, "La fecha inicial debe ser anterior a la final")
	}
	return f, nil
}

// CreateMovement handles the creation of a new movement
// @Summary     Create a movement
// @Description Records an income or expense. Every field is validated and all messages are returned together.
// @Tags        movements
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body validator.MovementInput true "Movement details"
// @Success     201 {object} MovementEnvelope "Movement created"
// @Failure     400 {object} ErrorResponse "Validation failed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /movements [post]
func (h *MovementHandler) CreateMovement(c *gin.Context, session *auth.Session) {
	var in validator.MovementInput
	if err := decodeJSON(c.Request.Body, &in); err != nil {
		respondWithError(c, err)
		return
	}

	if res := validator.ValidateMovement(in); !res.IsValid {
		respondWithError(c, apperrors.WithDetails(apperrors.ErrValidation, res.Errors))
		return
	}

	date, _ := validator.ParseDate(validator.Text(in.Date))

	movement, err := h.movementService.CreateMovement(c.Request.Context(), session.User.ID, services.NewMovement{
		Concept: validator.Text(in.Concept),
		Amount:  in.ParsedAmount(),
		Type:    models.MovementType(validator.Text(in.Type)),
		Date:    date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), session.User.ID, services.AuditCreateMovement, "movement", movement.ID, c.ClientIP(),
		map[string]interface{}{"type": movement.Type, "amount": movement.Amount.StringFixed(2), "concept": movement.Concept})

	c.JSON(http.StatusCreated, MovementEnvelope{Movement: toMovementResponse(movement)})
}
