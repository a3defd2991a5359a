// Package entity defines the domain entities for the feedback feature.
package entity

import (
	"time"

	userentity "feedback_backend/internal/feature/auth/domain/entity"
)

// Feedback is a titled note posted by a user on their own profile page.
type Feedback struct {
	// ID is the unique identifier for the feedback entry.
	ID uint `gorm:"primaryKey"`

	// Title is the headline of the entry.
	// It must be unique across all feedback.
	Title string `gorm:"uniqueIndex;size:100;not null"`

	// Content is the body text of the entry.
	Content string `gorm:"type:text;not null"`

	// UserID references the owning user.
	UserID uint `gorm:"not null"`

	// User is the owning account. The cascade constraint deletes all owned
	// feedback when the user row is removed; no orphan feedback is permitted.
	User userentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	// CreatedAt is the timestamp when the entry was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the entry was last updated.
	UpdatedAt time.Time
}

// TableName keeps the historical singular table name.
func (Feedback) TableName() string {
	return "feedback"
}
