// Package handler provides the HTTP handlers for the user profile routes.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "feedback_backend/internal/feature/auth/domain"
	userentity "feedback_backend/internal/feature/auth/domain/entity"
	feedbackentity "feedback_backend/internal/feature/feedback/domain/entity"
	platformhandler "feedback_backend/internal/platform/http/handler"
	"feedback_backend/internal/platform/session"
)

// UsersUsecase defines the profile operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UsersUsecase interface {
	// Profile returns a user and the feedback entries they own.
	Profile(ctx context.Context, username string) (*userentity.User, []feedbackentity.Feedback, error)
	// DeleteAccount removes the user and all their feedback.
	DeleteAccount(ctx context.Context, username string) error
}

// UsersHandler handles the profile page and account deletion routes.
type UsersHandler struct {
	users UsersUsecase
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(users UsersUsecase) *UsersHandler {
	return &UsersHandler{users: users}
}

// Show handles GET /users/:username.
// Unknown usernames produce the 404 page, matching the feedback routes.
func (h *UsersHandler) Show(c *gin.Context) {
	username := c.Param("username")

	user, feedback, err := h.users.Profile(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			platformhandler.NotFound(c)
			return
		}
		slog.Error("failed to load profile", "error", err, "username", username)
		platformhandler.InternalError(c)
		return
	}

	identity, _ := session.Identity(c)
	c.HTML(http.StatusOK, "user.html", gin.H{
		"Title":    user.Username,
		"Flashes":  session.TakeFlashes(c),
		"User":     user,
		"Feedback": feedback,
		"IsOwner":  identity == user.Username,
	})
}

// Delete handles POST /users/:username/delete.
// Only the owning session may delete the account; anyone else is redirected
// to the login page with a warning.
func (h *UsersHandler) Delete(c *gin.Context) {
	username := c.Param("username")

	identity, ok := session.Identity(c)
	if !ok || identity != username {
		session.AddFlash(c, session.CategoryWarning, "You must be logged in to view!")
		_ = session.Save(c)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := h.users.DeleteAccount(c.Request.Context(), username); err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			platformhandler.NotFound(c)
			return
		}
		slog.Error("failed to delete account", "error", err, "username", username)
		platformhandler.InternalError(c)
		return
	}

	session.Logout(c)
	session.AddFlash(c, session.CategoryInfo, "User deleted")
	if err := session.Save(c); err != nil {
		slog.Error("failed to save session", "error", err)
	}
	slog.Info("account deleted", "username", username, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/login")
}
