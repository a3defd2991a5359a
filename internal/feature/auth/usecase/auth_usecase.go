// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"feedback_backend/internal/feature/auth/domain"
	"feedback_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns domain.ErrUserAlreadyExists if the username or email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user matching the specified username.
	// It returns domain.ErrUserNotFound if no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// AuthUsecase implements registration and credential verification.
type AuthUsecase struct {
	users UserRepository
}

// NewAuthUsecase creates a new AuthUsecase with the given repository.
func NewAuthUsecase(users UserRepository) *AuthUsecase {
	return &AuthUsecase{users: users}
}

// NewUser builds an unpersisted User with the password replaced by its bcrypt
// hash. Persistence stays with the caller so hashing and storage remain
// separate steps.
func NewUser(username, password, email, firstName, lastName string) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &entity.User{
		Username:  username,
		Password:  string(hashed),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// Register creates a new user with a hashed password and persists it.
// It returns domain.ErrUserAlreadyExists when the username or email is taken.
func (u *AuthUsecase) Register(ctx context.Context, username, password, email, firstName, lastName string) (*entity.User, error) {
	user, err := NewUser(username, password, email, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// dummyHash is compared against when the username does not exist, so a login
// attempt always pays the bcrypt cost regardless of whether the user exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Authenticate verifies a username/password pair and returns the matching
// user. Wrong credentials yield domain.ErrInvalidCredentials; the error does
// not reveal whether the username or the password was wrong.
func (u *AuthUsecase) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	// Always run the comparison to keep timing independent of user existence.
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
