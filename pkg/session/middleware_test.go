package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausaware/langswitch/pkg/session"
)

func TestMiddleware(t *testing.T) {
	manager := setupManager(t)

	t.Run("attaches an existing session", func(t *testing.T) {
		w := httptest.NewRecorder()
		created, err := manager.Ensure(context.Background(), w, httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/", nil)
		for _, c := range w.Result().Cookies() {
			r.AddCookie(c)
		}

		var attached *session.Session
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attached, _ = session.FromContext(r.Context())
		})

		manager.Middleware(inner).ServeHTTP(httptest.NewRecorder(), r)

		require.NotNil(t, attached)
		assert.Equal(t, created.ID, attached.ID)
	})

	t.Run("passes through without a session", func(t *testing.T) {
		var called bool
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			_, ok := session.FromContext(r.Context())
			assert.False(t, ok)
			assert.Equal(t, session.NoSessionID, session.IDFromContext(r.Context()))
		})

		manager.Middleware(inner).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

		assert.True(t, called)
	})
}

func TestEnsureSession(t *testing.T) {
	manager := setupManager(t)

	t.Run("creates and attaches a session", func(t *testing.T) {
		var attached *session.Session
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attached, _ = session.FromContext(r.Context())
		})

		w := httptest.NewRecorder()
		manager.EnsureSession(inner).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		require.NotNil(t, attached)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "test-sid", cookies[0].Name)
	})

	t.Run("reuses the request's session", func(t *testing.T) {
		w := httptest.NewRecorder()
		created, err := manager.Ensure(context.Background(), w, httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/", nil)
		for _, c := range w.Result().Cookies() {
			r.AddCookie(c)
		}

		var attached *session.Session
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attached, _ = session.FromContext(r.Context())
		})

		manager.EnsureSession(inner).ServeHTTP(httptest.NewRecorder(), r)

		require.NotNil(t, attached)
		assert.Equal(t, created.ID, attached.ID)
	})

	t.Run("store failure yields a 500", func(t *testing.T) {
		broken := session.New(
			session.WithCookieManager(newTestCookieManager(t)),
			session.WithStore(erroringStore{}),
		)

		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})

		w := httptest.NewRecorder()
		broken.EnsureSession(inner).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
