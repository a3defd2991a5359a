// Package session manages the signed cookie session that carries the
// logged-in username and one-shot flash messages.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	// cookieName is the name of the session cookie.
	cookieName = "feedback_session"

	// identityKey is the session key holding the logged-in username.
	identityKey = "username"
)

// Flash categories. They double as CSS classes on rendered pages.
const (
	CategorySuccess = "success"
	CategoryInfo    = "info"
	CategoryWarning = "warning"
	CategoryDanger  = "danger"
)

// flashCategories lists every category TakeFlashes drains, in render order.
var flashCategories = []string{CategorySuccess, CategoryInfo, CategoryWarning, CategoryDanger}

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

// Middleware returns the session middleware backed by a signed cookie store.
// The secret signs the cookie so the client cannot forge an identity.
func Middleware(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
	})
	return sessions.Sessions(cookieName, store)
}

// Identity returns the logged-in username, if any.
func Identity(c *gin.Context) (string, bool) {
	v := sessions.Default(c).Get(identityKey)
	username, ok := v.(string)
	return username, ok && username != ""
}

// Login records username as the session identity.
// Save must be called before the response is written.
func Login(c *gin.Context, username string) {
	sessions.Default(c).Set(identityKey, username)
}

// Logout clears the session identity.
// Save must be called before the response is written.
func Logout(c *gin.Context) {
	sessions.Default(c).Delete(identityKey)
}

// AddFlash queues a flash message under the given category.
// Save must be called before the response is written.
func AddFlash(c *gin.Context, category, message string) {
	sessions.Default(c).AddFlash(message, category)
}

// TakeFlashes drains all pending flash messages and persists their
// consumption, so each message renders exactly once.
func TakeFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	var flashes []Flash
	for _, category := range flashCategories {
		for _, v := range s.Flashes(category) {
			if msg, ok := v.(string); ok {
				flashes = append(flashes, Flash{Category: category, Message: msg})
			}
		}
	}
	// Reading flashes mutates the session; write the cookie back even when
	// nothing was pending so stale state cannot linger.
	_ = s.Save()
	return flashes
}

// Save writes the pending session mutations into the response cookie.
func Save(c *gin.Context) error {
	return sessions.Default(c).Save()
}
