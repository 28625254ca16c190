package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/techarena/internal/config"
	"github.com/dukerupert/techarena/internal/database"
)

func setupServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Default()
	cfg.Session.LoginMax = 3
	srv := New(db, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err = srv.Service().Seed()
	require.NoError(t, err)
	return srv, srv.Router()
}

func login(t *testing.T, h http.Handler, email string) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": "password123"})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func get(h http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	_, h := setupServer(t)

	rec := get(h, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProtectedRoutesNeedSession(t *testing.T) {
	_, h := setupServer(t)

	for _, path := range []string{"/api/me", "/api/dashboard", "/api/tasks", "/api/ranking", "/api/compliance"} {
		assert.Equal(t, http.StatusUnauthorized, get(h, path, nil).Code, path)
	}
}

func TestAdminRoutes(t *testing.T) {
	_, h := setupServer(t)
	tech := login(t, h, "tech1@telenet.be")
	admin := login(t, h, "admin@telenet.be")

	for _, path := range []string{"/api/compliance", "/api/compliance/export.csv", "/api/ranking", "/api/users"} {
		assert.Equal(t, http.StatusForbidden, get(h, path, tech).Code, path)
		assert.Equal(t, http.StatusOK, get(h, path, admin).Code, path)
	}
	assert.Equal(t, http.StatusOK, get(h, "/api/catalog", tech).Code)
}

func TestLogoutEndsSession(t *testing.T) {
	_, h := setupServer(t)
	cookie := login(t, h, "tech2@telenet.be")

	require.Equal(t, http.StatusOK, get(h, "/api/me", cookie).Code)

	req := httptest.NewRequest("POST", "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, get(h, "/api/me", cookie).Code)
}

func TestLoginRateLimited(t *testing.T) {
	_, h := setupServer(t)

	body := []byte(`{"email":"tech1@telenet.be","password":"wrong-password"}`)
	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.RemoteAddr = "192.0.2.10:4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{401, 401, 401, 429}, codes)
}

func TestOriginHosts(t *testing.T) {
	got := originHosts([]string{"https://dash.example.com", "localhost:5173"})
	assert.Equal(t, []string{"dash.example.com", "localhost:5173"}, got)
}
