package testhelpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fridgechef/backend/config"
	"github.com/fridgechef/backend/internal/api"
	"github.com/fridgechef/backend/internal/middleware"
	"github.com/fridgechef/backend/internal/router"
	"github.com/fridgechef/backend/internal/service"
)

// TestServer bundles a fully wired router with its backing services for
// handler-level tests.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
	Auth   *service.AuthService
}

// NewTestServer wires the whole application against an in-memory database
// and session store. upstreamURL points the generation proxy at a fake
// provider; leave it empty for tests that never call it.
func NewTestServer(t *testing.T, upstreamURL string) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := NewTestDB(t)
	logger := zap.NewNop()

	sessions := service.NewSessionService(NewMemorySessionStore(), "test-secret", 24*time.Hour)
	authService := service.NewAuthService(db, sessions)

	cfg := &config.Config{
		GroqAPIKey: "test-key",
		GroqAPIURL: upstreamURL,
	}

	engine := router.New(router.Options{
		Health:         api.NewHealthHandler(db),
		Auth:           api.NewAuthHandler(authService),
		Users:          api.NewUserHandler(authService),
		Accounts:       api.NewAccountHandler(service.NewAccountService(db)),
		Ingredients:    api.NewIngredientHandler(service.NewIngredientService(db)),
		Recipes:        api.NewRecipeHandler(service.NewRecipeService(db)),
		LLM:            api.NewLLMHandler(service.NewLLMService(cfg, logger)),
		Validator:      authService,
		AllowedOrigins: []string{"http://localhost:5173"},
	})

	return &TestServer{Router: engine, DB: db, Auth: authService}
}

// Do performs a JSON request against the router. body may be nil; cookie is
// the raw session cookie value from a previous login or register.
func (ts *TestServer) Do(t *testing.T, method, path string, body interface{}, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: cookie})
	}

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

// Register registers a user through the API and returns the session cookie
// value.
func (ts *TestServer) Register(t *testing.T, username, email string) string {
	t.Helper()

	w := ts.Do(t, http.MethodPost, "/auth/register", map[string]interface{}{
		"username": username,
		"email":    email,
		"password": "password-123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return SessionCookie(t, w)
}

// SessionCookie extracts the session cookie value from a response.
func SessionCookie(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}

// DecodeJSON unmarshals a response body.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
