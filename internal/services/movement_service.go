package services

import (
	"context"
	"strings"

	apperrors "financeapp/internal/errors"
	"financeapp/internal/events"
	"financeapp/internal/logger"
	"financeapp/internal/models"
	"financeapp/internal/pagination"
	"financeapp/internal/validator"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// movementService handles movement-related business logic.
type movementService struct {
	db        *gorm.DB
	publisher events.Publisher
}

// NewMovementService creates a new MovementServicer.
func NewMovementService(db *gorm.DB, publisher events.Publisher) MovementServicer {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &movementService{db: db, publisher: publisher}
}

// applyMovementFilters adds WHERE clauses for the non-nil filter fields.
func applyMovementFilters(filter MovementFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Type != nil {
			db = db.Where("type = ?", *filter.Type)
		}
		if filter.From != nil {
			db = db.Where("date >= ?", filter.From.UTC())
		}
		if filter.To != nil {
			db = db.Where("date <= ?", filter.To.UTC())
		}
		return db
	}
}

// ownerColumns limits the preloaded owner to what list views show.
func ownerColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

// ListMovements returns one page of movements, newest first, with the total
// count of matching rows. Count and page are fetched concurrently.
func (s *movementService) ListMovements(ctx context.Context, filter MovementFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Movement], error) {
	page.Defaults()

	var (
		total     int64
		movements []models.Movement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Model(&models.Movement{}).
			Scopes(applyMovementFilters(filter)).
			Count(&total).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Scopes(applyMovementFilters(filter), pagination.Paginate(page)).
			Preload("User", ownerColumns).
			Order("date DESC").Order("id DESC").
			Find(&movements).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(movements, page.Page, page.Limit, total)
	return &resp, nil
}

// ListAllMovements returns every movement with its owner, ordered by date.
func (s *movementService) ListAllMovements(ctx context.Context, order SortOrder) ([]models.Movement, error) {
	if order != DateAsc {
		order = DateDesc
	}

	var movements []models.Movement
	err := s.db.WithContext(ctx).
		Preload("User", ownerColumns).
		Order("date " + string(order)).Order("id " + string(order)).
		Find(&movements).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return movements, nil
}

// CreateMovement stores a new movement owned by userID and announces it.
// Input is expected to have passed validator.ValidateMovement.
func (s *movementService) CreateMovement(ctx context.Context, userID string, in NewMovement) (*models.Movement, error) {
	amount := in.Amount.Round(2)
	if !amount.IsPositive() || amount.GreaterThan(validator.MaxAmount) || !in.Type.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	movement := &models.Movement{
		Concept: strings.TrimSpace(in.Concept),
		Amount:  amount,
		Type:    in.Type,
		Date:    in.Date.UTC(),
		UserID:  userID,
	}
	if err := s.db.WithContext(ctx).Create(movement).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.WithContext(ctx).Scopes(ownerColumns).First(&movement.User, "id = ?", userID).Error; err != nil {
		logger.Get().Warnw("failed to load movement owner", "movement_id", movement.ID, "error", err)
	}

	if err := s.publisher.PublishMovementCreated(ctx, events.NewMovementCreated(movement)); err != nil {
		logger.Get().Errorw("failed to publish movement event", "movement_id", movement.ID, "error", err)
	}

	return movement, nil
}
