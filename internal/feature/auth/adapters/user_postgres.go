// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"feedback_backend/internal/feature/auth/domain"
	"feedback_backend/internal/feature/auth/domain/entity"
	"feedback_backend/internal/feature/auth/usecase"
)

// userPostgres is the GORM-backed implementation of the UserRepository interface.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements usecase.UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new userPostgres bound to the given gorm.DB.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// Postgres signals SQLSTATE 23505; drivers opened with TranslateError
// surface gorm.ErrDuplicatedKey instead.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts the user into the database.
// A username or email collision returns domain.ErrUserAlreadyExists.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// FindByUsername retrieves a user by username.
// It returns domain.ErrUserNotFound if no row matches.
func (r *userPostgres) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Delete removes the user row and all feedback rows it owns.
// Both deletes run in one transaction so no orphan feedback can survive,
// matching the ON DELETE CASCADE declared on the foreign key.
func (r *userPostgres) Delete(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM feedback WHERE user_id = ?", u.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.User{}, u.ID).Error
	})
}
