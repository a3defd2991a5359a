// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "feedback_backend/internal/feature/auth/transport/handler"
	feedbackhandler "feedback_backend/internal/feature/feedback/transport/handler"
	usershandler "feedback_backend/internal/feature/users/transport/handler"
	platformhandler "feedback_backend/internal/platform/http/handler"
	"feedback_backend/internal/platform/session"
	"feedback_backend/web"
)

// NewRouter builds the gin engine with the session middleware, the
// embedded templates and the full route table.
func NewRouter(sessionSecret string, auth *authhandler.AuthHandler,
	users *usershandler.UsersHandler, feedback *feedbackhandler.FeedbackHandler) *gin.Engine {
	r := gin.Default()

	r.SetHTMLTemplate(web.Templates())
	r.Use(session.Middleware(sessionSecret))

	// Liveness probe.
	r.GET("/healthz", platformhandler.Health)

	// Landing page redirects to registration.
	r.GET("/", platformhandler.Home)

	// Account registration and login.
	r.GET("/register", auth.ShowRegister)
	r.POST("/register", auth.Register)
	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.GET("/logout", auth.Logout)

	// Profile pages and account deletion.
	r.GET("/users/:username", users.Show)
	r.POST("/users/:username/delete", users.Delete)

	// Feedback, owner-only for every mutation.
	r.GET("/users/:username/feedback/add", feedback.ShowAdd)
	r.POST("/users/:username/feedback/add", feedback.Add)
	r.GET("/feedback/:id/update", feedback.ShowEdit)
	r.POST("/feedback/:id/update", feedback.Update)
	r.POST("/feedback/:id/delete", feedback.Delete)

	r.NoRoute(platformhandler.NotFound)

	return r
}
