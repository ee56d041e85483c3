// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// It contains authentication credentials and the public identity shown on the dashboard.
type User struct {
	// ID is the internal primary key. It is never exposed to clients;
	// UserID is the externally visible handle.
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown in the dashboard header.
	Name string `gorm:"size:255;not null"`

	// UserID is the externally visible unique handle. Transactions reference
	// their owner through this value, not through ID.
	UserID string `gorm:"column:user_id;uniqueIndex;size:64;not null"`

	// Email is the user's email address used for login.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
