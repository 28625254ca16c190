package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dukerupert/techarena/internal/auth"
	"github.com/dukerupert/techarena/internal/dashboard"
	"github.com/dukerupert/techarena/internal/database"
	"github.com/dukerupert/techarena/internal/model"
)

type testEnv struct {
	svc    *dashboard.Service
	logger *slog.Logger
	admin  model.User
	jan    model.User
	piet   model.User
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := dashboard.New(db, nil, dashboard.Options{DefaultPassword: "password123", SessionTTL: time.Hour}, logger)
	_, err = svc.Seed()
	require.NoError(t, err)

	env := &testEnv{svc: svc, logger: logger}
	for ref, dst := range map[string]*model.User{
		"admin@telenet.be": &env.admin,
		"tech1@telenet.be": &env.jan,
		"tech2@telenet.be": &env.piet,
	} {
		u, err := svc.FindUser(ref)
		require.NoError(t, err)
		*dst = *u
	}
	return env
}

// request builds a request already carrying actor's auth context.
func request(t *testing.T, actor model.User, method, target string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	ctx := auth.WithAuth(req.Context(), auth.AuthContext{User: actor, SessionID: 1})
	return req.WithContext(ctx)
}

func withSession(r *http.Request, actor model.User, sessionID int64) context.Context {
	return auth.WithAuth(r.Context(), auth.AuthContext{User: actor, SessionID: sessionID})
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// addTasks stores n completed tasks for tech on day through the service.
func (e *testEnv) addTasks(t *testing.T, tech model.User, day model.Date, outcome model.Outcome, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := e.svc.SaveTask(tech, dashboard.TaskInput{
			Date:    day,
			Type:    model.TaskRepair,
			Outcome: outcome,
			Status:  model.TaskCompleted,
		})
		require.NoError(t, err)
	}
}
