// Package db opens the application database and runs schema migrations.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	userentity "feedback_backend/internal/feature/auth/domain/entity"
	feedbackentity "feedback_backend/internal/feature/feedback/domain/entity"
)

// connectTimeout bounds the startup retry loop.
const connectTimeout = 60 * time.Second

// Open connects to Postgres, retrying until the database accepts
// connections or the timeout elapses. TranslateError lets adapters match
// duplicate-key violations as gorm.ErrDuplicatedKey across drivers.
func Open(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", connectTimeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// Migrate creates or updates the users and feedback tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userentity.User{},
		&feedbackentity.Feedback{},
	)
}
