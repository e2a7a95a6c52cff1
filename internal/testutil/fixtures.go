package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"financeapp/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a USER with a unique e-mail.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithRole(t, db, models.RoleUser)
}

// CreateTestAdmin creates an ADMIN with a unique e-mail.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithRole(t, db, models.RoleAdmin)
}

// CreateTestUserWithRole creates a user with the given role.
func CreateTestUserWithRole(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWith(t, db, fmt.Sprintf("User %d", n), fmt.Sprintf("user%d@test.com", n), role)
}

// CreateTestUserWith creates a user with explicit name, e-mail and role.
func CreateTestUserWith(t *testing.T, db *gorm.DB, name, email string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: email, Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestSession creates a session for user expiring after ttl.
func CreateTestSession(t *testing.T, db *gorm.DB, userID string, ttl time.Duration) *models.Session {
	t.Helper()

	sess := &models.Session{UserID: userID, ExpiresAt: time.Now().Add(ttl).UTC()}
	if err := db.Omit("User").Create(sess).Error; err != nil {
		t.Fatalf("failed to create test session: %v", err)
	}
	return sess
}

// CreateTestMovement creates a movement owned by userID. date is YYYY-MM-DD.
func CreateTestMovement(t *testing.T, db *gorm.DB, userID string, typ models.MovementType, amount, concept, date string) *models.Movement {
	t.Helper()

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", date, err)
	}

	movement := &models.Movement{
		Concept: concept,
		Amount:  decimal.RequireFromString(amount),
		Type:    typ,
		Date:    d.UTC(),
		UserID:  userID,
	}
	if err := db.Omit("User").Create(movement).Error; err != nil {
		t.Fatalf("failed to create test movement: %v", err)
	}
	return movement
}
