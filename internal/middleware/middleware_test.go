package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/auth"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/coordinator"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/store"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestRequestLoggerTrackerAndTiming(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestTracker(), RequestTiming(), RequestLogger())
	router.GET("/test/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/42?q=1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "200", statusLabel(http.StatusOK))
	assert.Equal(t, "404", statusLabel(http.StatusNotFound))
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc", want: "abc", ok: true},
		{header: "bearer abc", want: "abc", ok: true},
		{header: "Bearer ", ok: false},
		{header: "Basic abc", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Authorization", tt.header)

			got, ok := BearerToken(c)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

type sourceFunc func(ctx context.Context, token string) (*coordinator.Coordinator, error)

func (f sourceFunc) Acquire(ctx context.Context, token string) (*coordinator.Coordinator, error) {
	return f(ctx, token)
}

func TestSessionAuth(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("secreto")
	require.NoError(t, err)
	svc, err := auth.NewService(auth.Options{
		AdminEmail:        "admin@example.org",
		AdminPasswordHash: hash,
		Secret:            "test-secret",
		TTL:               time.Hour,
	}, auth.NewMemoryRegistry())
	require.NoError(t, err)

	manager := coordinator.NewManager(store.NewMemory(), svc)
	defer manager.Close()
	_, session, err := manager.SignIn(ctx, auth.Credentials{Email: "admin@example.org", Password: "secreto"})
	require.NoError(t, err)

	router := gin.New()
	router.Use(RequestID(), SessionAuth(manager), AuditContext())
	router.GET("/me", func(c *gin.Context) {
		coord, ok := Coordinator(c)
		require.True(t, ok)
		auditCtx := utils.AuditContextFrom(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"authenticated": coord.IsAuthenticated(),
			"email":         auditCtx.UserID,
			"token_matches": SessionToken(c) == session.Token,
			"has_request":   auditCtx.RequestID != "",
		})
	})

	t.Run("valid session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+session.Token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":true,"email":"admin@example.org","token_matches":true,"has_request":true}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("session backend failure", func(t *testing.T) {
		failing := gin.New()
		failing.Use(SessionAuth(sourceFunc(func(context.Context, string) (*coordinator.Coordinator, error) {
			return nil, errors.New("redis down")
		})))
		failing.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer x")
		w := httptest.NewRecorder()
		failing.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("unauthenticated sentinel", func(t *testing.T) {
		denied := gin.New()
		denied.Use(SessionAuth(sourceFunc(func(context.Context, string) (*coordinator.Coordinator, error) {
			return nil, models.ErrUnauthenticated
		})))
		denied.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer x")
		w := httptest.NewRecorder()
		denied.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
