package models

import "time"

// Role is the coarse permission level of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents the user model in the database
type User struct {
	Base
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     *string   `json:"phone"`
	Role      Role      `gorm:"type:varchar(16);not null;default:USER" json:"role"`
	Image     *string   `json:"image"`
	UpdatedAt time.Time `json:"updatedAt"`
	Accounts  []Account `gorm:"foreignKey:UserID" json:"-"`
}

// Account links a user to an identity at an external OAuth provider.
type Account struct {
	Base
	UserID            string    `gorm:"type:uuid;not null;index" json:"userId"`
	ProviderID        string    `gorm:"not null;uniqueIndex:idx_accounts_provider" json:"providerId"`
	ProviderAccountID string    `gorm:"not null;uniqueIndex:idx_accounts_provider" json:"providerAccountId"`
	AccessToken       string    `json:"-"`
	Scope             string    `json:"scope,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
