package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausaware/langswitch/pkg/cookie"
	"github.com/hausaware/langswitch/pkg/session"
)

func setupManager(t *testing.T) *session.Manager {
	t.Helper()

	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)

	return session.New(
		session.WithCookieManager(cookieMgr),
		session.WithConfig(session.Config{
			CookieName:      "test-sid",
			Lifetime:        time.Hour,
			CleanupInterval: 0, // Disable cleanup for tests
		}),
	)
}

func TestManager_Ensure(t *testing.T) {
	manager := setupManager(t)
	ctx := context.Background()

	t.Run("creates new session", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)

		sess, err := manager.Ensure(ctx, w, r)
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.NotEmpty(t, sess.Token)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "test-sid", cookies[0].Name)
	})

	t.Run("returns existing valid session", func(t *testing.T) {
		w1 := httptest.NewRecorder()
		r1 := httptest.NewRequest("GET", "/", nil)
		sess1, err := manager.Ensure(ctx, w1, r1)
		require.NoError(t, err)

		r2 := httptest.NewRequest("GET", "/", nil)
		for _, c := range w1.Result().Cookies() {
			r2.AddCookie(c)
		}
		w2 := httptest.NewRecorder()

		sess2, err := manager.Ensure(ctx, w2, r2)
		require.NoError(t, err)
		assert.Equal(t, sess1.ID, sess2.ID)
		assert.Equal(t, sess1.Token, sess2.Token)
	})

	t.Run("creates new session for tampered cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "test-sid", Value: "forged-value"})

		sess, err := manager.Ensure(ctx, w, r)
		require.NoError(t, err)
		assert.NotNil(t, sess)
	})
}

func TestManager_Save(t *testing.T) {
	manager := setupManager(t)
	ctx := context.Background()

	t.Run("persists modified sessions", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)
		sess, err := manager.Ensure(ctx, w, r)
		require.NoError(t, err)

		sess.Set("lang", "ha")
		require.NoError(t, manager.Save(ctx, sess))
		assert.False(t, sess.Modified())

		r2 := httptest.NewRequest("GET", "/", nil)
		for _, c := range w.Result().Cookies() {
			r2.AddCookie(c)
		}

		got, err := manager.Get(ctx, r2)
		require.NoError(t, err)
		lang, ok := got.GetString("lang")
		require.True(t, ok)
		assert.Equal(t, "ha", lang)
	})

	t.Run("skips store for unmodified sessions", func(t *testing.T) {
		sess := session.NewSession("never-stored", time.Hour)
		// Save returns nil without touching the store because nothing changed.
		assert.NoError(t, manager.Save(ctx, sess))
	})

	t.Run("rejects nil session", func(t *testing.T) {
		assert.ErrorIs(t, manager.Save(ctx, nil), session.ErrInvalidSession)
	})
}

func TestManager_Destroy(t *testing.T) {
	manager := setupManager(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	_, err := manager.Ensure(ctx, w, r)
	require.NoError(t, err)

	r2 := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r2.AddCookie(c)
	}

	w2 := httptest.NewRecorder()
	require.NoError(t, manager.Destroy(ctx, w2, r2))

	_, err = manager.Get(ctx, r2)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
