package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback_backend/internal/feature/auth/domain"
	"feedback_backend/internal/feature/auth/domain/entity"
	"feedback_backend/internal/platform/session"
	"feedback_backend/web"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc     func(ctx context.Context, username, password, email, firstName, lastName string) (*entity.User, error)
	AuthenticateFunc func(ctx context.Context, username, password string) (*entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, username, password, email, firstName, lastName string) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, password, email, firstName, lastName)
	}
	return &entity.User{Username: username}, nil
}

func (m *mockAuthUsecase) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, username, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// setupRouter builds a test engine with the real templates and session
// middleware. The extra /test/login route mints a logged-in session cookie.
func setupRouter(uc AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.Use(session.Middleware("test-secret"))
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/test/login/:username", func(c *gin.Context) {
		session.Login(c, c.Param("username"))
		_ = session.Save(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

// loginCookie returns a session cookie carrying username as the identity.
func loginCookie(t *testing.T, r *gin.Engine, username string) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test/login/"+username, nil)
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "no session cookie issued")
	return cookies[0]
}

// postForm submits an urlencoded form to the engine.
func postForm(r *gin.Engine, path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func validRegistration() url.Values {
	return url.Values{
		"username":   {"alice"},
		"password":   {"pw123!A"},
		"email":      {"alice@example.com"},
		"first_name": {"Alice"},
		"last_name":  {"Smith"},
	}
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		form           url.Values
		registerFunc   func(ctx context.Context, username, password, email, firstName, lastName string) (*entity.User, error)
		expectedStatus int
		expectedBody   string
		expectedTarget string
	}{
		{
			name: "success redirects to the new profile",
			form: validRegistration(),
			registerFunc: func(ctx context.Context, username, password, email, firstName, lastName string) (*entity.User, error) {
				return &entity.User{ID: 1, Username: username}, nil
			},
			expectedStatus: http.StatusFound,
			expectedTarget: "/users/alice",
		},
		{
			name: "missing username re-renders with a field error",
			form: func() url.Values {
				v := validRegistration()
				v.Del("username")
				return v
			}(),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required.",
		},
		{
			name: "invalid email re-renders with a field error",
			form: func() url.Values {
				v := validRegistration()
				v.Set("email", "not-an-email")
				return v
			}(),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid email address.",
		},
		{
			name: "overlong username re-renders with a length error",
			form: func() url.Values {
				v := validRegistration()
				v.Set("username", strings.Repeat("a", 21))
				return v
			}(),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Must be at most 20 characters.",
		},
		{
			name: "taken username re-renders with an already-taken error",
			form: validRegistration(),
			registerFunc: func(ctx context.Context, username, password, email, firstName, lastName string) (*entity.User, error) {
				return nil, domain.ErrUserAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Username or email already taken.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockAuthUsecase{RegisterFunc: tt.registerFunc})

			w := postForm(r, "/register", tt.form)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedTarget != "" {
				assert.Equal(t, tt.expectedTarget, w.Header().Get("Location"))
			}
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestAuthHandler_Register_KeepsSubmittedValues(t *testing.T) {
	r := setupRouter(&mockAuthUsecase{})

	form := validRegistration()
	form.Del("password")
	w := postForm(r, "/register", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// The form re-renders with what the user typed, except the password.
	assert.Contains(t, w.Body.String(), `value="alice"`)
	assert.Contains(t, w.Body.String(), `value="alice@example.com"`)
}

func TestAuthHandler_Login(t *testing.T) {
	alice := &entity.User{ID: 1, Username: "alice"}

	t.Run("correct credentials set the identity and redirect", func(t *testing.T) {
		r := setupRouter(&mockAuthUsecase{
			AuthenticateFunc: func(ctx context.Context, username, password string) (*entity.User, error) {
				if username == "alice" && password == "pw123!A" {
					return alice, nil
				}
				return nil, domain.ErrInvalidCredentials
			},
		})

		w := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"pw123!A"}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/users/alice", w.Header().Get("Location"))
		assert.NotEmpty(t, w.Result().Cookies(), "session cookie should be set")
	})

	t.Run("wrong credentials re-render with a generic error", func(t *testing.T) {
		r := setupRouter(&mockAuthUsecase{})

		w := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"wrong"}})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid username/password.")
	})

	t.Run("missing fields re-render with field errors", func(t *testing.T) {
		r := setupRouter(&mockAuthUsecase{})

		w := postForm(r, "/login", url.Values{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required.")
	})

	t.Run("already logged in visitors are sent to their profile", func(t *testing.T) {
		r := setupRouter(&mockAuthUsecase{})
		cookie := loginCookie(t, r, "alice")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(cookie)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/users/alice", w.Header().Get("Location"))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	r := setupRouter(&mockAuthUsecase{})
	cookie := loginCookie(t, r, "alice")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// The identity is gone: /login now renders instead of redirecting.
	var next *http.Cookie
	for _, c := range w.Result().Cookies() {
		next = c
	}
	require.NotNil(t, next, "logout should rewrite the session cookie")

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/login", nil)
	req2.AddCookie(next)
	r.ServeHTTP(w2, req2)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Goodbye!")
}
