package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/techarena/internal/model"
)

func newAuthHandler(env *testEnv) *AuthHandler {
	return NewAuthHandler(env.svc, CookieConfig{Name: "techarena_session", TTL: time.Hour}, env.logger)
}

func TestLogin(t *testing.T) {
	env := setupEnv(t)
	h := newAuthHandler(env)

	rec := httptest.NewRecorder()
	h.Login(rec, request(t, model.User{}, "POST", "/login", map[string]string{
		"email":    "TECH1@telenet.be",
		"password": "password123",
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, env.jan.ID, decode[model.User](t, rec).ID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "techarena_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Len(t, cookies[0].Value, 64)

	u, sess, err := env.svc.SessionUser(cookies[0].Value)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, env.jan.ID, u.ID)
}

func TestLoginFailures(t *testing.T) {
	env := setupEnv(t)
	h := newAuthHandler(env)

	tests := []struct {
		name string
		body map[string]string
		want int
	}{
		{"wrong password", map[string]string{"email": "tech1@telenet.be", "password": "nope"}, http.StatusUnauthorized},
		{"unknown email", map[string]string{"email": "ghost@telenet.be", "password": "password123"}, http.StatusUnauthorized},
		{"missing fields", map[string]string{"email": " "}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Login(rec, request(t, model.User{}, "POST", "/login", tt.body))
			assert.Equal(t, tt.want, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestLogoutAndMe(t *testing.T) {
	env := setupEnv(t)
	h := newAuthHandler(env)

	sess, _, err := env.svc.Login("tech1@telenet.be", "password123")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Me(rec, request(t, env.jan, "GET", "/api/me", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jan Technieker", decode[model.User](t, rec).Name)

	req := request(t, env.jan, "POST", "/logout", nil)
	req = req.WithContext(withSession(req, env.jan, sess.ID))
	rec = httptest.NewRecorder()
	h.Logout(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	u, _, err := env.svc.SessionUser(sess.Token)
	require.NoError(t, err)
	assert.Nil(t, u)
}
