// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback_backend/internal/platform/session"
)

// Health handles the /healthz endpoint used for liveness checks.
// It responds to every GET/HEAD/OPTIONS request and prevents caching.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(http.StatusOK)
	case "OPTIONS":
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Home handles GET / by sending visitors to the registration page.
func Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/register")
}

// NotFound renders the 404 page. It serves both unmatched routes and
// lookups that found no row.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"Title":   "Not Found",
		"Flashes": session.TakeFlashes(c),
	})
}

// InternalError renders the generic 500 page.
func InternalError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Error",
		"Flashes": session.TakeFlashes(c),
	})
}
