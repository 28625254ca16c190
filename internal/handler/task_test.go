package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/techarena/internal/model"
)

func TestTaskCreateAndGet(t *testing.T) {
	env := setupEnv(t)
	h := NewTaskHandler(env.svc, env.logger)

	body := map[string]any{
		"date":             "2024-06-03",
		"type":             "Install 1",
		"customer_number":  " 4711 ",
		"outcome":          "OK",
		"status":           "COMPLETED",
		"install_products": []map[string]string{{"category": "MODEM", "model": "MV2+"}},
	}
	rec := httptest.NewRecorder()
	h.Create(rec, request(t, env.jan, "POST", "/api/tasks", body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[model.Task](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, env.jan.ID, created.TechnicianID)
	assert.Equal(t, "4711", created.CustomerNumber)
	assert.Equal(t, model.NewDate(2024, 6, 3), created.Date)

	req := request(t, env.jan, "GET", "/api/tasks/"+created.ID, nil)
	req.SetPathValue("id", created.ID)
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = request(t, env.piet, "GET", "/api/tasks/"+created.ID, nil)
	req.SetPathValue("id", created.ID)
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskCreateErrors(t *testing.T) {
	env := setupEnv(t)
	h := NewTaskHandler(env.svc, env.logger)

	tests := []struct {
		name  string
		actor model.User
		body  any
		want  int
	}{
		{"completed without outcome", env.jan, map[string]any{"type": "Repair", "status": "COMPLETED"}, http.StatusBadRequest},
		{"unknown type", env.jan, map[string]any{"type": "Teleport"}, http.StatusBadRequest},
		{"missing type", env.jan, map[string]any{"outcome": "OK"}, http.StatusBadRequest},
		{"admin cannot create", env.admin, map[string]any{"type": "Repair"}, http.StatusForbidden},
		{"bad JSON", env.jan, "not an object", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Create(rec, request(t, tt.actor, "POST", "/api/tasks", tt.body))
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}

	tasks, err := env.svc.ListTasks(env.admin, "ALL", model.MonthOf(env.svc.Today()))
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskUpdateAndDelete(t *testing.T) {
	env := setupEnv(t)
	h := NewTaskHandler(env.svc, env.logger)
	day := model.NewDate(2024, 6, 3)
	env.addTasks(t, env.jan, day, model.OutcomeOK, 1)

	tasks, err := env.svc.ListTasks(env.jan, "", model.MonthOf(day))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	id := tasks[0].ID

	update := func(actor model.User, body any) *httptest.ResponseRecorder {
		req := request(t, actor, "PUT", "/api/tasks/"+id, body)
		req.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		h.Update(rec, req)
		return rec
	}

	rec := update(env.jan, map[string]any{"type": "Repair", "outcome": "NOK", "status": "COMPLETED"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.OutcomeNOK, decode[model.Task](t, rec).Outcome)

	rec = update(env.piet, map[string]any{"type": "Repair"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = update(env.jan, map[string]any{"type": "Repair", "date": "2024-06-04"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	req := request(t, env.piet, "DELETE", "/api/tasks/"+id, nil)
	req.SetPathValue("id", id)
	rec = httptest.NewRecorder()
	h.Delete(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = request(t, env.admin, "DELETE", "/api/tasks/"+id, nil)
	req.SetPathValue("id", id)
	rec = httptest.NewRecorder()
	h.Delete(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTaskListVisibility(t *testing.T) {
	env := setupEnv(t)
	h := NewTaskHandler(env.svc, env.logger)
	day := model.NewDate(2024, 6, 3)
	env.addTasks(t, env.jan, day, model.OutcomeOK, 2)
	env.addTasks(t, env.piet, day, model.OutcomeOK, 3)

	list := func(actor model.User, query string) []model.Task {
		rec := httptest.NewRecorder()
		h.List(rec, request(t, actor, "GET", "/api/tasks?month=2024-06"+query, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		return decode[[]model.Task](t, rec)
	}

	assert.Len(t, list(env.jan, ""), 2)
	assert.Len(t, list(env.jan, "&technician="+env.piet.ID), 2, "technicians cannot widen their view")
	assert.Len(t, list(env.admin, ""), 5)
	assert.Len(t, list(env.admin, "&technician="+env.piet.ID), 3)
	assert.Empty(t, list(env.admin, "&technician=nobody"))

	rec := httptest.NewRecorder()
	h.List(rec, request(t, env.admin, "GET", "/api/tasks?month=June", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
