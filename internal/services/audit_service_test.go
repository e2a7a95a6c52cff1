package services

import (
	"context"
	"testing"

	"financeapp/internal/models"
	"financeapp/internal/testutil"
)

func TestAuditService_Log(t *testing.T) {
	ctx := context.Background()

	t.Run("stores entry with changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAuditService(db)

		svc.Log(ctx, "u-1", AuditUpdateUser, "user", "u-2", "10.0.0.1",
			map[string]interface{}{"role": map[string]string{"from": "USER", "to": "ADMIN"}})

		var entry models.AuditLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("expected audit entry: %v", err)
		}
		if entry.Action != AuditUpdateUser || entry.ResourceID != "u-2" || entry.IPAddress != "10.0.0.1" {
			t.Errorf("unexpected entry %+v", entry)
		}
		if entry.Changes != `{"role":{"from":"USER","to":"ADMIN"}}` {
			t.Errorf("unexpected changes %s", entry.Changes)
		}
	})

	t.Run("nil changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAuditService(db)

		svc.Log(ctx, "u-1", AuditLogout, "session", "s-1", "", nil)

		var entry models.AuditLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("expected audit entry: %v", err)
		}
		if entry.Changes != "" {
			t.Errorf("expected empty changes, got %q", entry.Changes)
		}
	})

	t.Run("store failure is swallowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAuditService(db)
		testutil.TeardownTestDB(t, db)

		svc.Log(ctx, "u-1", AuditLogin, "session", "s-1", "", nil)
	})
}
