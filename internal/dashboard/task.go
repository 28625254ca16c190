package dashboard

import (
	"sort"
	"strings"

	"github.com/dukerupert/techarena/internal/compliance"
	"github.com/dukerupert/techarena/internal/model"
	ws "github.com/dukerupert/techarena/internal/websocket"
)

// TaskInput is what a technician submits from the task form. ID is empty
// for a new task.
type TaskInput struct {
	ID              string                 `json:"id"`
	Date            model.Date             `json:"date"`
	Type            model.TaskType         `json:"type" validate:"required"`
	CustomerNumber  string                 `json:"customer_number" validate:"max=64"`
	Outcome         model.Outcome          `json:"outcome"`
	Status          model.TaskStatus       `json:"status"`
	InstallProducts []model.InstallProduct `json:"install_products" validate:"max=10,dive"`
	OtherProducts   []model.OtherProduct   `json:"other_products" validate:"max=50,dive"`
	Photos          []string               `json:"photos" validate:"max=20,dive,required"`
	Notes           string                 `json:"notes" validate:"max=2000"`
}

func (s *Service) checkTask(in *TaskInput) error {
	in.CustomerNumber = strings.TrimSpace(in.CustomerNumber)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.Status == "" {
		in.Status = model.TaskDraft
	}
	if err := s.checkStruct(in); err != nil {
		return err
	}
	if !in.Type.Valid() {
		return invalid("unknown task type %q", in.Type)
	}
	if !in.Outcome.Valid() {
		return invalid("unknown outcome %q", in.Outcome)
	}
	if !in.Status.Valid() {
		return invalid("unknown status %q", in.Status)
	}
	if in.Status == model.TaskCompleted && in.Outcome == model.OutcomeNone {
		return ErrOutcomeRequired
	}
	if !in.Type.HasInstallProducts() {
		in.InstallProducts = nil
	}
	for _, p := range in.InstallProducts {
		if !model.IsInstallModel(p.Category, p.Model) {
			return invalid("unknown %s model %q", p.Category, p.Model)
		}
	}
	for _, p := range in.OtherProducts {
		if !model.IsOtherProduct(p.Name) {
			return invalid("unknown product %q", p.Name)
		}
	}
	return nil
}

// SaveTask creates or updates a task. New tasks belong to the acting
// technician and default to today. Updates may not move a task to another
// technician or date, and technicians may only touch their own tasks.
// Nothing is written when validation fails.
func (s *Service) SaveTask(actor model.User, in TaskInput) (*model.Task, error) {
	if err := s.checkTask(&in); err != nil {
		return nil, err
	}

	var task model.Task
	if in.ID == "" {
		if !actor.IsTechnician() {
			return nil, ErrNotTechnician
		}
		task = model.Task{
			TechnicianID:   actor.ID,
			TechnicianName: actor.Name,
			Date:           in.Date,
		}
		if task.Date.IsZero() {
			task.Date = model.DateOf(s.now())
		}
	} else {
		existing, err := s.tasks.GetByID(in.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		if !canModify(actor, *existing) {
			return nil, ErrForbidden
		}
		if !in.Date.IsZero() && in.Date != existing.Date {
			return nil, ErrImmutableField
		}
		task = *existing
	}

	task.Type = in.Type
	task.CustomerNumber = in.CustomerNumber
	task.Outcome = in.Outcome
	task.Status = in.Status
	task.InstallProducts = in.InstallProducts
	task.OtherProducts = in.OtherProducts
	task.Photos = in.Photos
	task.Notes = in.Notes
	task.UpdatedAt = s.now().UTC()

	saved, err := s.tasks.Save(task)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("task saved", "task_id", saved.ID, "technician_id", saved.TechnicianID, "status", saved.Status)
	s.broadcast(ws.NewMessage("task", "saved", saved.ID, map[string]any{"date": saved.Date.String()}).ForOwner(saved.TechnicianID))
	return saved, nil
}

// GetTask returns a task the actor may see.
func (s *Service) GetTask(actor model.User, id string) (*model.Task, error) {
	t, err := s.tasks.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	if !canModify(actor, *t) {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *Service) DeleteTask(actor model.User, id string) error {
	t, err := s.tasks.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrNotFound
	}
	if !canModify(actor, *t) {
		return ErrForbidden
	}
	if err := s.tasks.Delete(id); err != nil {
		return err
	}
	s.broadcast(ws.NewMessage("task", "deleted", id, map[string]any{"date": t.Date.String()}).ForOwner(t.TechnicianID))
	return nil
}

// ListTasks returns the tasks visible to actor in month, most recently
// updated first.
func (s *Service) ListTasks(actor model.User, selection string, month model.Month) ([]model.Task, error) {
	tasks, err := s.tasks.ListBetween(month.First(), month.Last())
	if err != nil {
		return nil, err
	}
	visible := compliance.VisibleTasks(actor, selection, tasks)
	sortByUpdated(visible)
	return visible, nil
}

func canModify(actor model.User, t model.Task) bool {
	return actor.IsAdmin() || (actor.IsTechnician() && t.TechnicianID == actor.ID)
}

func sortByUpdated(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].UpdatedAt.After(tasks[j].UpdatedAt)
	})
}

// ToggleExtraShift flips the acting technician's extra-shift flag for a
// Saturday and returns the new value.
func (s *Service) ToggleExtraShift(actor model.User, date model.Date) (bool, error) {
	if !actor.IsTechnician() {
		return false, ErrNotTechnician
	}
	if !date.IsSaturday() {
		return false, ErrNotSaturday
	}
	on, err := s.shifts.Toggle(actor.ID, date)
	if err != nil {
		return false, err
	}
	s.logger.Info("extra shift toggled", "technician_id", actor.ID, "date", date.String(), "active", on)
	s.broadcast(ws.NewMessage("extra_shift", "toggled", actor.ID, map[string]any{
		"date":   date.String(),
		"active": on,
	}).ForOwner(actor.ID))
	return on, nil
}
