package models

import "time"

// Session is a server-side login. The signed token handed to the client only
// carries its ID, so deleting the row revokes the login.
type Session struct {
	Base
	UserID    string    `gorm:"type:uuid;not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

// Expired reports whether the session is no longer usable at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
