package services

import (
	"context"
	"testing"

	"financeapp/internal/auth"
	"financeapp/internal/models"
	"financeapp/internal/testutil"
)

func strPtr(s string) *string { return &s }

func rolePtr(r models.Role) *models.Role { return &r }

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered_by_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)

		testutil.CreateTestUserWith(t, db, "Carla", "carla@example.com", models.RoleUser)
		testutil.CreateTestUserWith(t, db, "Andrés", "andres@example.com", models.RoleAdmin)
		testutil.CreateTestUserWith(t, db, "Beatriz", "beatriz@example.com", models.RoleUser)

		users, err := svc.ListUsers(ctx)
		testutil.AssertNoError(t, err)

		want := []string{"Andrés", "Beatriz", "Carla"}
		if len(users) != len(want) {
			t.Fatalf("expected %d users, got %d", len(want), len(users))
		}
		for i, name := range want {
			if users[i].Name != name {
				t.Errorf("position %d: expected %s, got %s", i, name, users[i].Name)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)

		users, err := svc.ListUsers(ctx)
		testutil.AssertNoError(t, err)
		if users == nil || len(users) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", users)
		}
	})
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)
		created := testutil.CreateTestUser(t, db)

		user, err := svc.GetUserByID(ctx, created.ID)
		testutil.AssertNoError(t, err)
		if user.Email != created.Email {
			t.Errorf("expected email %s, got %s", created.Email, user.Email)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)

		_, err := svc.GetUserByID(ctx, "01890000-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("name_and_role", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)
		created := testutil.CreateTestUser(t, db)

		user, err := svc.UpdateUser(ctx, created.ID, UserUpdate{
			Name: strPtr("  Juan Pérez "),
			Role: rolePtr(models.RoleAdmin),
		})
		testutil.AssertNoError(t, err)

		if user.Name != "Juan Pérez" {
			t.Errorf("expected trimmed name, got %q", user.Name)
		}
		if user.Role != models.RoleAdmin {
			t.Errorf("expected ADMIN, got %s", user.Role)
		}

		var stored models.User
		db.First(&stored, "id = ?", created.ID)
		if stored.Role != models.RoleAdmin || stored.Name != "Juan Pérez" {
			t.Errorf("expected update to be persisted, got %+v", stored)
		}
	})

	t.Run("role_only_keeps_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)
		created := testutil.CreateTestAdmin(t, db)

		user, err := svc.UpdateUser(ctx, created.ID, UserUpdate{Role: rolePtr(models.RoleUser)})
		testutil.AssertNoError(t, err)

		if user.Name != created.Name {
			t.Errorf("expected name %q to be kept, got %q", created.Name, user.Name)
		}
		if user.Role != models.RoleUser {
			t.Errorf("expected USER, got %s", user.Role)
		}
	})

	t.Run("nothing_to_save", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)
		created := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateUser(ctx, created.ID, UserUpdate{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_role", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)
		created := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateUser(ctx, created.ID, UserUpdate{Role: rolePtr(models.Role("ROOT"))})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)

		_, err := svc.UpdateUser(ctx, "01890000-0000-7000-8000-000000000000", UserUpdate{Name: strPtr("Nadie")})
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestUpsertGitHubUser(t *testing.T) {
	ctx := context.Background()

	profile := func() *auth.GitHubProfile {
		return &auth.GitHubProfile{
			ID:          "42",
			Login:       "octo",
			Name:        "Octo Cat",
			Email:       "octo@example.com",
			AvatarURL:   "https://avatars.example.com/42",
			AccessToken: "gho_first",
			Scope:       "read:user,user:email",
		}
	}

	t.Run("creates_user_and_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)

		user, err := svc.UpsertGitHubUser(ctx, profile())
		testutil.AssertNoError(t, err)

		if user.Role != models.RoleUser {
			t.Errorf("expected USER role, got %s", user.Role)
		}
		if user.Image == nil || *user.Image != "https://avatars.example.com/42" {
			t.Errorf("expected avatar as image, got %v", user.Image)
		}

		var account models.Account
		if err := db.First(&account, "user_id = ?", user.ID).Error; err != nil {
			t.Fatalf("expected linked account: %v", err)
		}
		if account.ProviderID != auth.ProviderGitHub || account.ProviderAccountID != "42" {
			t.Errorf("unexpected account %+v", account)
		}
	})

	t.Run("admin_email_gets_admin_role", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, []string{" OCTO@example.com "})

		user, err := svc.UpsertGitHubUser(ctx, profile())
		testutil.AssertNoError(t, err)
		if user.Role != models.RoleAdmin {
			t.Errorf("expected ADMIN role, got %s", user.Role)
		}
	})

	t.Run("returning_user_updates_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)

		first, err := svc.UpsertGitHubUser(ctx, profile())
		testutil.AssertNoError(t, err)

		p := profile()
		p.AccessToken = "gho_second"
		p.AvatarURL = "https://avatars.example.com/42?v=2"
		second, err := svc.UpsertGitHubUser(ctx, p)
		testutil.AssertNoError(t, err)

		if second.ID != first.ID {
			t.Errorf("expected same user, got %s and %s", first.ID, second.ID)
		}

		var accounts []models.Account
		db.Find(&accounts)
		if len(accounts) != 1 || accounts[0].AccessToken != "gho_second" {
			t.Errorf("expected one account with refreshed token, got %+v", accounts)
		}
		if second.Image == nil || *second.Image != p.AvatarURL {
			t.Errorf("expected refreshed image, got %v", second.Image)
		}
	})

	t.Run("links_existing_user_by_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)
		existing := testutil.CreateTestUserWith(t, db, "Octavia", "octo@example.com", models.RoleAdmin)

		user, err := svc.UpsertGitHubUser(ctx, profile())
		testutil.AssertNoError(t, err)

		if user.ID != existing.ID {
			t.Errorf("expected existing user %s, got %s", existing.ID, user.ID)
		}
		if user.Role != models.RoleAdmin || user.Name != "Octavia" {
			t.Errorf("expected existing name and role to be kept, got %s/%s", user.Name, user.Role)
		}

		var count int64
		db.Model(&models.User{}).Count(&count)
		if count != 1 {
			t.Errorf("expected no new user, got %d users", count)
		}
	})

	t.Run("invalid_profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewUserService(db, nil)

		tests := []struct {
			name    string
			profile *auth.GitHubProfile
		}{
			{"nil", nil},
			{"missing_id", &auth.GitHubProfile{Email: "a@b.co"}},
			{"missing_email", &auth.GitHubProfile{ID: "1"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.UpsertGitHubUser(ctx, tt.profile)
				testutil.AssertAppError(t, err, "INVALID_INPUT")
			})
		}
	})
}
