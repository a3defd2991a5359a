// Package usecase implements the business logic for the feedback feature.
package usecase

import (
	"context"

	"feedback_backend/internal/feature/feedback/domain/entity"
)

// FeedbackRepository abstracts the persistence layer for feedback entries.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type FeedbackRepository interface {
	// Create persists a new entry.
	// It returns domain.ErrTitleAlreadyExists if the title is taken.
	Create(ctx context.Context, f *entity.Feedback) error

	// FindByID retrieves an entry with its owning user attached.
	// It returns domain.ErrFeedbackNotFound if no such entry exists.
	FindByID(ctx context.Context, id uint) (*entity.Feedback, error)

	// ListByUserID returns the entries owned by a user in insertion order.
	ListByUserID(ctx context.Context, userID uint) ([]entity.Feedback, error)

	// Update persists a mutated title and content.
	// It returns domain.ErrTitleAlreadyExists if the new title is taken.
	Update(ctx context.Context, f *entity.Feedback) error

	// Delete removes an entry.
	Delete(ctx context.Context, f *entity.Feedback) error
}

// FeedbackUsecase provides business logic for feedback entries.
type FeedbackUsecase struct {
	repo FeedbackRepository
}

// NewFeedbackUsecase creates a new FeedbackUsecase with the given repository.
func NewFeedbackUsecase(r FeedbackRepository) *FeedbackUsecase {
	return &FeedbackUsecase{repo: r}
}

// Add creates a new entry owned by the given user.
func (u *FeedbackUsecase) Add(ctx context.Context, userID uint, title, content string) (*entity.Feedback, error) {
	f := &entity.Feedback{Title: title, Content: content, UserID: userID}
	if err := u.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Get returns the entry with the given ID, owner attached.
func (u *FeedbackUsecase) Get(ctx context.Context, id uint) (*entity.Feedback, error) {
	return u.repo.FindByID(ctx, id)
}

// Update persists new title and content on an existing entry.
func (u *FeedbackUsecase) Update(ctx context.Context, f *entity.Feedback, title, content string) error {
	f.Title = title
	f.Content = content
	return u.repo.Update(ctx, f)
}

// Delete removes the entry.
func (u *FeedbackUsecase) Delete(ctx context.Context, f *entity.Feedback) error {
	return u.repo.Delete(ctx, f)
}
