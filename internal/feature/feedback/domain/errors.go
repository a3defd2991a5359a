// Package domain defines domain-level errors for the feedback feature.
package domain

import "errors"

var (
	// ErrFeedbackNotFound indicates that no feedback entry exists for the given ID.
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrTitleAlreadyExists indicates that another entry already uses the title.
	ErrTitleAlreadyExists = errors.New("title already taken")
)
