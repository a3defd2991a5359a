// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// It carries the credentials used for authentication plus profile metadata.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name shown in URLs and profile pages.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:20;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	Password string `gorm:"size:255;not null"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:50;not null"`

	// FirstName is the user's given name.
	FirstName string `gorm:"size:30;not null"`

	// LastName is the user's family name.
	LastName string `gorm:"size:30;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// FullName returns the display name used on the profile page.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
