// Package usecase implements the business logic for profile pages and
// account deletion.
package usecase

import (
	"context"

	userentity "feedback_backend/internal/feature/auth/domain/entity"
	feedbackentity "feedback_backend/internal/feature/feedback/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByUsername retrieves a user matching the specified username.
	FindByUsername(ctx context.Context, username string) (*userentity.User, error)

	// Delete removes the user and every feedback entry it owns.
	Delete(ctx context.Context, u *userentity.User) error
}

// FeedbackLister lists the feedback entries shown on a profile page.
type FeedbackLister interface {
	ListByUserID(ctx context.Context, userID uint) ([]feedbackentity.Feedback, error)
}

// UsersUsecase provides business logic for the user profile routes.
type UsersUsecase struct {
	users    UserRepository
	feedback FeedbackLister
}

// NewUsersUsecase creates a new UsersUsecase with the given repositories.
func NewUsersUsecase(users UserRepository, feedback FeedbackLister) *UsersUsecase {
	return &UsersUsecase{users: users, feedback: feedback}
}

// Profile returns the user with the given username together with all
// feedback entries they own, oldest first.
func (u *UsersUsecase) Profile(ctx context.Context, username string) (*userentity.User, []feedbackentity.Feedback, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	list, err := u.feedback.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, list, nil
}

// DeleteAccount removes the user and, through the cascade, all their feedback.
func (u *UsersUsecase) DeleteAccount(ctx context.Context, username string) error {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	return u.users.Delete(ctx, user)
}
