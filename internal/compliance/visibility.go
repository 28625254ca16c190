package compliance

import "github.com/dukerupert/techarena/internal/model"

// AllTechnicians is the admin selection that shows every task.
const AllTechnicians = "ALL"

// VisibleTasks returns the subset of tasks the actor may aggregate over.
// Technicians only ever see their own tasks. Admins see everything, or a
// single technician's tasks when selection names one.
func VisibleTasks(actor model.User, selection string, tasks []model.Task) []model.Task {
	owner := selection
	switch {
	case actor.IsTechnician():
		owner = actor.ID
	case actor.IsAdmin():
		if selection == "" || selection == AllTechnicians {
			return append([]model.Task(nil), tasks...)
		}
	default:
		return nil
	}

	var visible []model.Task
	for _, t := range tasks {
		if t.TechnicianID == owner {
			visible = append(visible, t)
		}
	}
	return visible
}

// Scope reports the technician whose extra-shift flag and quota apply to a
// view, or "" for the combined admin view.
func Scope(actor model.User, selection string) string {
	if actor.IsTechnician() {
		return actor.ID
	}
	if selection == AllTechnicians {
		return ""
	}
	return selection
}
