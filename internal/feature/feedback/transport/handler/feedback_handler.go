// Package handler provides the HTTP handlers for the feedback feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authdomain "feedback_backend/internal/feature/auth/domain"
	userentity "feedback_backend/internal/feature/auth/domain/entity"
	"feedback_backend/internal/feature/feedback/domain"
	"feedback_backend/internal/feature/feedback/domain/entity"
	"feedback_backend/internal/feature/feedback/transport/http/dto"
	"feedback_backend/internal/platform/http/form"
	platformhandler "feedback_backend/internal/platform/http/handler"
	"feedback_backend/internal/platform/session"
)

// FeedbackUsecase defines the feedback operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type FeedbackUsecase interface {
	// Add creates a new entry owned by the given user.
	Add(ctx context.Context, userID uint, title, content string) (*entity.Feedback, error)
	// Get returns the entry with its owner attached.
	Get(ctx context.Context, id uint) (*entity.Feedback, error)
	// Update persists new title and content on an entry.
	Update(ctx context.Context, f *entity.Feedback, title, content string) error
	// Delete removes an entry.
	Delete(ctx context.Context, f *entity.Feedback) error
}

// UserFinder resolves the profile owner for the add-feedback routes.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*userentity.User, error)
}

// FeedbackHandler handles the feedback add, edit and delete routes.
type FeedbackHandler struct {
	feedback FeedbackUsecase
	users    UserFinder
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedback FeedbackUsecase, users UserFinder) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback, users: users}
}

// redirectToLogin sends an unauthorized caller to the login page with the
// warning flash. Mutating routes never respond with a hard 403.
func redirectToLogin(c *gin.Context) {
	session.AddFlash(c, session.CategoryWarning, "You must be logged in to view!")
	_ = session.Save(c)
	c.Redirect(http.StatusFound, "/login")
}

// renderForm renders the shared add/edit feedback form.
func renderForm(c *gin.Context, status int, heading, action, username string, f dto.FeedbackForm, errs map[string]string) {
	c.HTML(status, "feedback_form.html", gin.H{
		"Title":    heading,
		"Heading":  heading,
		"Action":   action,
		"Username": username,
		"Flashes":  session.TakeFlashes(c),
		"Form":     f,
		"Errors":   errs,
	})
}

// owner looks up the profile owner for the add routes after the ownership
// check has passed. An unknown username yields the 404 page.
func (h *FeedbackHandler) owner(c *gin.Context, username string) (*userentity.User, bool) {
	user, err := h.users.FindByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			platformhandler.NotFound(c)
		} else {
			slog.Error("failed to load user", "error", err, "username", username)
			platformhandler.InternalError(c)
		}
		return nil, false
	}
	return user, true
}

// ShowAdd handles GET /users/:username/feedback/add.
func (h *FeedbackHandler) ShowAdd(c *gin.Context) {
	username := c.Param("username")
	if identity, ok := session.Identity(c); !ok || identity != username {
		redirectToLogin(c)
		return
	}
	if _, ok := h.owner(c, username); !ok {
		return
	}
	renderForm(c, http.StatusOK, "Add Feedback", "/users/"+username+"/feedback/add", username, dto.FeedbackForm{}, nil)
}

// Add handles POST /users/:username/feedback/add.
func (h *FeedbackHandler) Add(c *gin.Context) {
	username := c.Param("username")
	if identity, ok := session.Identity(c); !ok || identity != username {
		redirectToLogin(c)
		return
	}
	user, ok := h.owner(c, username)
	if !ok {
		return
	}

	action := "/users/" + username + "/feedback/add"
	var req dto.FeedbackForm
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("feedback validation failed", "error", err, "remote_addr", c.ClientIP())
		renderForm(c, http.StatusBadRequest, "Add Feedback", action, username, req, form.Errors(err))
		return
	}

	if _, err := h.feedback.Add(c.Request.Context(), user.ID, req.Title, req.Content); err != nil {
		if errors.Is(err, domain.ErrTitleAlreadyExists) {
			renderForm(c, http.StatusBadRequest, "Add Feedback", action, username, req, map[string]string{
				"title": "Title already taken.",
			})
			return
		}
		slog.Error("failed to add feedback", "error", err, "username", username)
		platformhandler.InternalError(c)
		return
	}

	session.AddFlash(c, session.CategorySuccess, "Feedback added")
	_ = session.Save(c)
	c.Redirect(http.StatusFound, "/users/"+username)
}

// load fetches the feedback entry for the :id routes. A malformed or unknown
// ID yields the 404 page before any ownership check runs.
func (h *FeedbackHandler) load(c *gin.Context) (*entity.Feedback, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		platformhandler.NotFound(c)
		return nil, false
	}
	f, err := h.feedback.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrFeedbackNotFound) {
			platformhandler.NotFound(c)
		} else {
			slog.Error("failed to load feedback", "error", err, "id", id)
			platformhandler.InternalError(c)
		}
		return nil, false
	}
	return f, true
}

// ShowEdit handles GET /feedback/:id/update. The form is pre-filled with the
// current title and content.
func (h *FeedbackHandler) ShowEdit(c *gin.Context) {
	f, ok := h.load(c)
	if !ok {
		return
	}
	if identity, ok := session.Identity(c); !ok || identity != f.User.Username {
		redirectToLogin(c)
		return
	}
	action := "/feedback/" + strconv.FormatUint(uint64(f.ID), 10) + "/update"
	prefilled := dto.FeedbackForm{Title: f.Title, Content: f.Content}
	renderForm(c, http.StatusOK, "Edit Feedback", action, f.User.Username, prefilled, nil)
}

// Update handles POST /feedback/:id/update.
func (h *FeedbackHandler) Update(c *gin.Context) {
	f, ok := h.load(c)
	if !ok {
		return
	}
	if identity, ok := session.Identity(c); !ok || identity != f.User.Username {
		redirectToLogin(c)
		return
	}

	action := "/feedback/" + strconv.FormatUint(uint64(f.ID), 10) + "/update"
	var req dto.FeedbackForm
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("feedback validation failed", "error", err, "remote_addr", c.ClientIP())
		renderForm(c, http.StatusBadRequest, "Edit Feedback", action, f.User.Username, req, form.Errors(err))
		return
	}

	if err := h.feedback.Update(c.Request.Context(), f, req.Title, req.Content); err != nil {
		if errors.Is(err, domain.ErrTitleAlreadyExists) {
			renderForm(c, http.StatusBadRequest, "Edit Feedback", action, f.User.Username, req, map[string]string{
				"title": "Title already taken.",
			})
			return
		}
		slog.Error("failed to update feedback", "error", err, "id", f.ID)
		platformhandler.InternalError(c)
		return
	}

	session.AddFlash(c, session.CategorySuccess, "Feedback updated")
	_ = session.Save(c)
	c.Redirect(http.StatusFound, "/users/"+f.User.Username)
}

// Delete handles POST /feedback/:id/delete.
func (h *FeedbackHandler) Delete(c *gin.Context) {
	f, ok := h.load(c)
	if !ok {
		return
	}
	if identity, ok := session.Identity(c); !ok || identity != f.User.Username {
		redirectToLogin(c)
		return
	}

	if err := h.feedback.Delete(c.Request.Context(), f); err != nil {
		slog.Error("failed to delete feedback", "error", err, "id", f.ID)
		platformhandler.InternalError(c)
		return
	}

	session.AddFlash(c, session.CategoryInfo, "Feedback deleted")
	_ = session.Save(c)
	c.Redirect(http.StatusFound, "/users/"+f.User.Username)
}
