package dashboard

import (
	"github.com/dukerupert/techarena/internal/compliance"
	"github.com/dukerupert/techarena/internal/model"
)

type ViewMode string

const (
	ModeWeek  ViewMode = "week"
	ModeMonth ViewMode = "month"
)

// View is everything the main dashboard renders for one selected day.
type View struct {
	Date        model.Date
	Mode        ViewMode
	Selection   string
	Day         compliance.DayStats
	Month       compliance.MonthStats
	Strip       []compliance.DayStats
	Tasks       []model.Task
	ExtraShift  bool
	QuotaMissed bool
	Technicians []model.User
}

// Dashboard builds the main view for actor. Technicians always see their
// own figures; admins see ALL or the selected technician.
func (s *Service) Dashboard(actor model.User, selection string, day model.Date, mode ViewMode) (*View, error) {
	switch {
	case actor.IsTechnician():
		selection = actor.ID
	case selection == "":
		selection = compliance.AllTechnicians
	}
	if mode != ModeMonth {
		mode = ModeWeek
	}

	all, err := s.tasks.List()
	if err != nil {
		return nil, err
	}
	shifts, err := s.shifts.List()
	if err != nil {
		return nil, err
	}
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}

	visible := compliance.VisibleTasks(actor, selection, all)
	month := model.MonthOf(day)

	days := compliance.WeekDays(day)
	if mode == ModeMonth {
		days = month.Days()
	}

	view := &View{
		Date:      day,
		Mode:      mode,
		Selection: selection,
		Day:       compliance.DailyStats(visible, day),
		Month:     compliance.MonthlyStats(visible, month, shifts),
		Strip:     compliance.DayStrip(visible, days),
	}

	for _, t := range visible {
		if t.Date == day {
			view.Tasks = append(view.Tasks, t)
		}
	}
	sortByUpdated(view.Tasks)

	if scope := compliance.Scope(actor, selection); scope != "" {
		view.ExtraShift = shifts.Has(scope, day)
		view.QuotaMissed = day != model.DateOf(s.now()) &&
			!day.IsSaturday() &&
			view.Day.Total > 0 &&
			!view.Day.Compliant()
	}
	if actor.IsAdmin() {
		view.Technicians = compliance.Technicians(users)
	}
	return view, nil
}

// Compliance builds the monthly report for active technicians, optionally
// narrowed to one technician.
func (s *Service) Compliance(month model.Month, technicianID string) (compliance.Report, error) {
	users, tasks, shifts, err := s.monthInputs(month)
	if err != nil {
		return compliance.Report{}, err
	}
	return compliance.ComplianceReport(users, tasks, month, shifts, technicianID), nil
}

// Ranking is the admin leaderboard. Technicians may not read other
// technicians' bonuses.
func (s *Service) Ranking(actor model.User, month model.Month) ([]compliance.RankingEntry, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	users, tasks, shifts, err := s.monthInputs(month)
	if err != nil {
		return nil, err
	}
	return compliance.BonusRanking(users, tasks, month, shifts), nil
}

func (s *Service) monthInputs(month model.Month) ([]model.User, []model.Task, model.ExtraShifts, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, nil, nil, err
	}
	tasks, err := s.tasks.ListBetween(month.First(), month.Last())
	if err != nil {
		return nil, nil, nil, err
	}
	shifts, err := s.shifts.List()
	if err != nil {
		return nil, nil, nil, err
	}
	return users, tasks, shifts, nil
}

// Today is the service clock's current date.
func (s *Service) Today() model.Date {
	return model.DateOf(s.now())
}
