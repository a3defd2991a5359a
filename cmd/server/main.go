package main

import (
	"log"

	"feedback_backend/internal/app/router"
	authadapters "feedback_backend/internal/feature/auth/adapters"
	authhandler "feedback_backend/internal/feature/auth/transport/handler"
	authusecase "feedback_backend/internal/feature/auth/usecase"
	feedbackadapters "feedback_backend/internal/feature/feedback/adapters"
	feedbackhandler "feedback_backend/internal/feature/feedback/transport/handler"
	feedbackusecase "feedback_backend/internal/feature/feedback/usecase"
	usershandler "feedback_backend/internal/feature/users/transport/handler"
	usersusecase "feedback_backend/internal/feature/users/usecase"
	"feedback_backend/internal/platform/config"
	platformdb "feedback_backend/internal/platform/db"
)

func main() {
	cfg := config.Load()

	// db
	db, err := platformdb.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.RunMigrations {
		if err := platformdb.Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	feedbackRepo := feedbackadapters.NewFeedbackPostgres(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo)
	usersUC := usersusecase.NewUsersUsecase(userRepo, feedbackRepo)
	feedbackUC := feedbackusecase.NewFeedbackUsecase(feedbackRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	usersH := usershandler.NewUsersHandler(usersUC)
	feedbackH := feedbackhandler.NewFeedbackHandler(feedbackUC, userRepo)

	r := router.NewRouter(cfg.SessionSecret, authH, usersH, feedbackH)

	// SESSION_SECRET check, a reminder while developing.
	if cfg.SessionSecret == "secret" {
		log.Println("[WARN] SESSION_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
