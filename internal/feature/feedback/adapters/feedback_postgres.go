// Package adapters provides the repository implementations for the feedback feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"feedback_backend/internal/feature/feedback/domain"
	"feedback_backend/internal/feature/feedback/domain/entity"
	"feedback_backend/internal/feature/feedback/usecase"
)

// feedbackPostgres is the GORM-backed implementation of the FeedbackRepository interface.
type feedbackPostgres struct {
	db *gorm.DB
}

// Compile-time check that feedbackPostgres implements usecase.FeedbackRepository.
var _ usecase.FeedbackRepository = (*feedbackPostgres)(nil)

// NewFeedbackPostgres creates a new feedbackPostgres bound to the given gorm.DB.
func NewFeedbackPostgres(db *gorm.DB) *feedbackPostgres {
	return &feedbackPostgres{db: db}
}

// isDuplicateKey reports whether err is a unique-constraint violation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts the entry. A title collision returns domain.ErrTitleAlreadyExists.
func (r *feedbackPostgres) Create(ctx context.Context, f *entity.Feedback) error {
	// Omit the association so Create never touches the users table.
	if err := r.db.WithContext(ctx).Omit("User").Create(f).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrTitleAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID retrieves an entry by ID with its owning user preloaded.
// It returns domain.ErrFeedbackNotFound if no row matches.
func (r *feedbackPostgres) FindByID(ctx context.Context, id uint) (*entity.Feedback, error) {
	var f entity.Feedback
	if err := r.db.WithContext(ctx).Preload("User").First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListByUserID returns all entries owned by userID, oldest first.
func (r *feedbackPostgres) ListByUserID(ctx context.Context, userID uint) ([]entity.Feedback, error) {
	var list []entity.Feedback
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Update persists the mutated title and content.
// A title collision returns domain.ErrTitleAlreadyExists.
func (r *feedbackPostgres) Update(ctx context.Context, f *entity.Feedback) error {
	err := r.db.WithContext(ctx).Model(f).
		Select("title", "content").
		Updates(map[string]any{"title": f.Title, "content": f.Content}).Error
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrTitleAlreadyExists
		}
		return err
	}
	return nil
}

// Delete removes the entry.
func (r *feedbackPostgres) Delete(ctx context.Context, f *entity.Feedback) error {
	return r.db.WithContext(ctx).Delete(&entity.Feedback{}, f.ID).Error
}
