// Package events publishes domain events for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"time"

	"financeapp/internal/models"
)

// RoutingMovementCreated is the routing key of MovementCreated messages.
const RoutingMovementCreated = "movement.created"

// MovementCreated is emitted after a movement is persisted.
type MovementCreated struct {
	ID        string              `json:"id"`
	Concept   string              `json:"concept"`
	Amount    string              `json:"amount"`
	Type      models.MovementType `json:"type"`
	Date      time.Time           `json:"date"`
	UserID    string              `json:"userId"`
	Timestamp time.Time           `json:"timestamp"`
}

// NewMovementCreated builds the event for m.
func NewMovementCreated(m *models.Movement) MovementCreated {
	return MovementCreated{
		ID:        m.ID,
		Concept:   m.Concept,
		Amount:    m.Amount.StringFixed(2),
		Type:      m.Type,
		Date:      m.Date.UTC(),
		UserID:    m.UserID,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON encodes the event.
func (e MovementCreated) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers domain events.
type Publisher interface {
	PublishMovementCreated(ctx context.Context, evt MovementCreated) error
	Close() error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

// PublishMovementCreated implements Publisher.
func (Noop) PublishMovementCreated(context.Context, MovementCreated) error { return nil }

// Close implements Publisher.
func (Noop) Close() error { return nil }
