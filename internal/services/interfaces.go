package services

import (
	"context"
	"time"

	"financeapp/internal/auth"
	"financeapp/internal/export"
	"financeapp/internal/models"
	"financeapp/internal/pagination"
	"financeapp/internal/report"

	"github.com/shopspring/decimal"
)

// SortOrder selects the date ordering of movement reads.
type SortOrder string

const (
	DateAsc  SortOrder = "ASC"
	DateDesc SortOrder = "DESC"
)

// MovementFilter holds optional filter parameters for listing movements.
type MovementFilter struct {
	Type *models.MovementType
	From *time.Time
	To   *time.Time
}

// NewMovement carries validated fields of a movement to create.
type NewMovement struct {
	Concept string
	Amount  decimal.Decimal
	Type    models.MovementType
	Date    time.Time
}

// MovementServicer defines the contract for movement reads and writes.
type MovementServicer interface {
	ListMovements(ctx context.Context, filter MovementFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Movement], error)
	ListAllMovements(ctx context.Context, order SortOrder) ([]models.Movement, error)
	CreateMovement(ctx context.Context, userID string, in NewMovement) (*models.Movement, error)
}

// UserUpdate holds the optional fields of an administrative user update.
type UserUpdate struct {
	Name *string
	Role *models.Role
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, upd UserUpdate) (*models.User, error)
	UpsertGitHubUser(ctx context.Context, profile *auth.GitHubProfile) (*models.User, error)
}

// SessionServicer persists login sessions.
type SessionServicer interface {
	auth.SessionStore
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ReportServicer assembles report data from stored movements.
type ReportServicer interface {
	GetReport(ctx context.Context) (*report.Report, error)
	ExportRows(ctx context.Context) ([]export.MovementRow, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
