// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback_backend/internal/feature/auth/domain"
	"feedback_backend/internal/feature/auth/domain/entity"
	"feedback_backend/internal/feature/auth/transport/http/dto"
	"feedback_backend/internal/platform/http/form"
	platformhandler "feedback_backend/internal/platform/http/handler"
	"feedback_backend/internal/platform/session"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates and persists a new user with a hashed password.
	Register(ctx context.Context, username, password, email, firstName, lastName string) (*entity.User, error)
	// Authenticate verifies a username/password pair and returns the user.
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
}

// AuthHandler handles the registration, login and logout routes.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// renderRegister re-renders the registration form with the submitted values
// and any field errors.
func renderRegister(c *gin.Context, status int, f dto.RegisterForm, errs map[string]string) {
	c.HTML(status, "register.html", gin.H{
		"Title":   "Register",
		"Flashes": session.TakeFlashes(c),
		"Form":    f,
		"Errors":  errs,
	})
}

// ShowRegister handles GET /register.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	renderRegister(c, http.StatusOK, dto.RegisterForm{}, nil)
}

// Register handles POST /register.
// - Validation failures re-render the form with field errors.
// - A taken username or email re-renders with an "already taken" error.
// - Success logs the new user in and redirects to their profile.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterForm
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		renderRegister(c, http.StatusBadRequest, req, form.Errors(err))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Password, req.Email, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			slog.Warn("register rejected, username or email taken", "username", req.Username, "remote_addr", c.ClientIP())
			renderRegister(c, http.StatusBadRequest, req, map[string]string{
				"username": "Username or email already taken.",
			})
			return
		}
		slog.Error("register failed", "error", err, "username", req.Username)
		platformhandler.InternalError(c)
		return
	}

	session.Login(c, user.Username)
	session.AddFlash(c, session.CategorySuccess, "Welcome! Successfully Created Your Account!")
	if err := session.Save(c); err != nil {
		slog.Error("failed to save session", "error", err)
		platformhandler.InternalError(c)
		return
	}
	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/users/"+user.Username)
}

// renderLogin re-renders the login form with the submitted values and any
// field errors.
func renderLogin(c *gin.Context, status int, f dto.LoginForm, errs map[string]string) {
	c.HTML(status, "login.html", gin.H{
		"Title":   "Log In",
		"Flashes": session.TakeFlashes(c),
		"Form":    f,
		"Errors":  errs,
	})
}

// ShowLogin handles GET /login.
// A visitor who is already logged in is sent to their own profile.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if username, ok := session.Identity(c); ok {
		c.Redirect(http.StatusFound, "/users/"+username)
		return
	}
	renderLogin(c, http.StatusOK, dto.LoginForm{}, nil)
}

// Login handles POST /login.
// Wrong credentials re-render the form with a generic error on the username
// field; the response never reveals which part was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	if username, ok := session.Identity(c); ok {
		c.Redirect(http.StatusFound, "/users/"+username)
		return
	}

	var req dto.LoginForm
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		renderLogin(c, http.StatusBadRequest, req, form.Errors(err))
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
		renderLogin(c, http.StatusUnauthorized, req, map[string]string{
			"username": "Invalid username/password.",
		})
		return
	}

	session.Login(c, user.Username)
	if err := session.Save(c); err != nil {
		slog.Error("failed to save session", "error", err)
		platformhandler.InternalError(c)
		return
	}
	slog.Info("user login successful", "username", user.Username, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/users/"+user.Username)
}

// Logout handles GET /logout. It clears the session identity and sends the
// visitor back to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	session.Logout(c)
	session.AddFlash(c, session.CategoryInfo, "Goodbye!")
	if err := session.Save(c); err != nil {
		slog.Error("failed to save session", "error", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
