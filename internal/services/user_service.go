package services

import (
	"context"
	"errors"
	"strings"

	"financeapp/internal/auth"
	apperrors "financeapp/internal/errors"
	"financeapp/internal/models"

	"gorm.io/gorm"
)

// userService handles user-related business logic.
type userService struct {
	db          *gorm.DB
	adminEmails map[string]bool
}

// NewUserService creates a new UserServicer. Users whose e-mail is listed in
// adminEmails are created as administrators.
func NewUserService(db *gorm.DB, adminEmails []string) UserServicer {
	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(e))] = true
	}
	return &userService{db: db, adminEmails: admins}
}

// ListUsers returns every user ordered by name.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// UpdateUser applies the non-nil fields of upd. Input is expected to have
// passed validator.ValidateUserUpdate.
func (s *userService) UpdateUser(ctx context.Context, id string, upd UserUpdate) (*models.User, error) {
	updates := map[string]any{}
	if upd.Name != nil {
		updates["name"] = strings.TrimSpace(*upd.Name)
	}
	if upd.Role != nil {
		if !upd.Role.IsValid() {
			return nil, apperrors.ErrInvalidInput
		}
		updates["role"] = *upd.Role
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrNothingToSave
	}

	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&user, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// UpsertGitHubUser returns the user linked to a GitHub identity, linking an
// existing user by e-mail or creating a new one when needed.
func (s *userService) UpsertGitHubUser(ctx context.Context, profile *auth.GitHubProfile) (*models.User, error) {
	if profile == nil || profile.ID == "" || profile.Email == "" {
		return nil, apperrors.ErrInvalidInput
	}

	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.Account
		err := tx.Where("provider_id = ? AND provider_account_id = ?", auth.ProviderGitHub, profile.ID).First(&account).Error
		switch {
		case err == nil:
			if err := tx.First(&user, "id = ?", account.UserID).Error; err != nil {
				return err
			}
			if err := tx.Model(&account).Updates(map[string]any{
				"access_token": profile.AccessToken,
				"scope":        profile.Scope,
			}).Error; err != nil {
				return err
			}
			return s.refreshImage(tx, &user, profile)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		err = tx.Where("email = ?", strings.ToLower(profile.Email)).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				Name:  profile.Name,
				Email: strings.ToLower(profile.Email),
				Role:  s.roleFor(profile.Email),
			}
			if profile.AvatarURL != "" {
				image := profile.AvatarURL
				user.Image = &image
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := s.refreshImage(tx, &user, profile); err != nil {
				return err
			}
		}

		return tx.Create(&models.Account{
			UserID:            user.ID,
			ProviderID:        auth.ProviderGitHub,
			ProviderAccountID: profile.ID,
			AccessToken:       profile.AccessToken,
			Scope:             profile.Scope,
		}).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

func (s *userService) roleFor(email string) models.Role {
	if s.adminEmails[strings.ToLower(email)] {
		return models.RoleAdmin
	}
	return models.RoleUser
}

func (s *userService) refreshImage(tx *gorm.DB, user *models.User, profile *auth.GitHubProfile) error {
	if profile.AvatarURL == "" || (user.Image != nil && *user.Image == profile.AvatarURL) {
		return nil
	}
	image := profile.AvatarURL
	user.Image = &image
	return tx.Model(user).Update("image", image).Error
}
