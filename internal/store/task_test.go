package store

import (
	"testing"
	"time"

	"github.com/dukerupert/techarena/internal/model"
)

func setupTaskTestDB(t *testing.T) *TaskStore {
	t.Helper()
	return NewTaskStore(setupTestDB(t))
}

func newTask(techID string, day model.Date, outcome model.Outcome) model.Task {
	status := model.TaskCompleted
	if outcome == model.OutcomeNone {
		status = model.TaskDraft
	}
	return model.Task{
		TechnicianID:   techID,
		TechnicianName: "Jan",
		Date:           day,
		Type:           model.TaskInstall2,
		Outcome:        outcome,
		Status:         status,
	}
}

func TestTaskSaveAndGet(t *testing.T) {
	ts := setupTaskTestDB(t)

	task := newTask("tech-1", model.NewDate(2024, time.June, 4), model.OutcomeOK)
	task.CustomerNumber = "C-1001"
	task.InstallProducts = []model.InstallProduct{{Category: model.CategoryModem, Model: "MV2+"}}
	task.OtherProducts = []model.OtherProduct{{Name: "Pods", Quantity: 2}}
	task.Photos = []string{"photo-1.jpg"}

	saved, err := ts.Save(task)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := ts.GetByID(saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Date != task.Date {
		t.Errorf("date = %v, want %v", got.Date, task.Date)
	}
	if len(got.InstallProducts) != 1 || got.InstallProducts[0].Model != "MV2+" {
		t.Errorf("install products = %+v", got.InstallProducts)
	}
	if len(got.OtherProducts) != 1 || got.OtherProducts[0].Quantity != 2 {
		t.Errorf("other products = %+v", got.OtherProducts)
	}
	if len(got.Photos) != 1 {
		t.Errorf("photos = %v", got.Photos)
	}
}

func TestTaskSaveUpsertKeepsOwnerAndDate(t *testing.T) {
	ts := setupTaskTestDB(t)

	saved, _ := ts.Save(newTask("tech-1", model.NewDate(2024, time.June, 4), model.OutcomeNone))

	changed := *saved
	changed.TechnicianID = "tech-2"
	changed.Date = model.NewDate(2024, time.June, 5)
	changed.Outcome = model.OutcomeNOK
	changed.Status = model.TaskCompleted
	changed.UpdatedAt = time.Time{}

	got, err := ts.Save(changed)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.TechnicianID != "tech-1" {
		t.Errorf("technician = %q, want tech-1", got.TechnicianID)
	}
	if got.Date.String() != "2024-06-04" {
		t.Errorf("date = %s, want 2024-06-04", got.Date)
	}
	if got.Outcome != model.OutcomeNOK || got.Status != model.TaskCompleted {
		t.Errorf("outcome/status = %s/%s", got.Outcome, got.Status)
	}

	all, _ := ts.List()
	if len(all) != 1 {
		t.Errorf("tasks = %d, want 1", len(all))
	}
}

func TestTaskCompletedWithoutOutcomeRejected(t *testing.T) {
	ts := setupTaskTestDB(t)

	task := newTask("tech-1", model.NewDate(2024, time.June, 4), model.OutcomeNone)
	task.Status = model.TaskCompleted
	if _, err := ts.Save(task); err == nil {
		t.Error("expected constraint error for COMPLETED task without outcome")
	}
}

func TestTaskListBetween(t *testing.T) {
	ts := setupTaskTestDB(t)

	for _, d := range []model.Date{
		model.NewDate(2024, time.May, 31),
		model.NewDate(2024, time.June, 1),
		model.NewDate(2024, time.June, 30),
		model.NewDate(2024, time.July, 1),
	} {
		if _, err := ts.Save(newTask("tech-1", d, model.OutcomeOK)); err != nil {
			t.Fatalf("save %s: %v", d, err)
		}
	}

	june := model.Month{Year: 2024, Month: time.June}
	tasks, err := ts.ListBetween(june.First(), june.Last())
	if err != nil {
		t.Fatalf("list between: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("tasks = %d, want 2", len(tasks))
	}
}

func TestTaskDelete(t *testing.T) {
	ts := setupTaskTestDB(t)

	saved, _ := ts.Save(newTask("tech-1", model.NewDate(2024, time.June, 4), model.OutcomeOK))
	if err := ts.Delete(saved.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := ts.GetByID(saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected task to be gone")
	}
}

func TestTaskListEmpty(t *testing.T) {
	ts := setupTaskTestDB(t)

	tasks, err := ts.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("tasks = %d, want 0", len(tasks))
	}
}
