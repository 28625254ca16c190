package handler

import (
	"github.com/dukerupert/techarena/internal/compliance"
	"github.com/dukerupert/techarena/internal/dashboard"
	"github.com/dukerupert/techarena/internal/model"
)

// Decimal figures leave the API as plain JSON numbers.

type dayStatsJSON struct {
	Date      model.Date `json:"date"`
	OK        int        `json:"ok"`
	NOK       int        `json:"nok"`
	PP        int        `json:"pp"`
	Cancel    int        `json:"cancel"`
	Total     int        `json:"total"`
	Goal      int        `json:"goal"`
	Compliant bool       `json:"compliant"`
}

func toDayStats(s compliance.DayStats) dayStatsJSON {
	return dayStatsJSON{
		Date:      s.Date,
		OK:        s.OK,
		NOK:       s.NOK,
		PP:        s.PP,
		Cancel:    s.Cancel,
		Total:     s.Total,
		Goal:      s.Goal(),
		Compliant: s.Compliant(),
	}
}

type monthStatsJSON struct {
	Month         model.Month `json:"month"`
	OK            int         `json:"ok"`
	NOK           int         `json:"nok"`
	PP            int         `json:"pp"`
	Cancel        int         `json:"cancel"`
	Total         int         `json:"total"`
	Goal          int         `json:"goal"`
	CompliantDays int         `json:"compliant_days"`
	BonusTasks    float64     `json:"bonus_tasks"`
}

func toMonthStats(s compliance.MonthStats) monthStatsJSON {
	return monthStatsJSON{
		Month:         s.Month,
		OK:            s.OK,
		NOK:           s.NOK,
		PP:            s.PP,
		Cancel:        s.Cancel,
		Total:         s.Total,
		Goal:          s.Goal(),
		CompliantDays: s.CompliantDays,
		BonusTasks:    s.BonusTasks.InexactFloat64(),
	}
}

type technicianJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type viewJSON struct {
	Date        model.Date       `json:"date"`
	Mode        string           `json:"mode"`
	Technician  string           `json:"technician"`
	Day         dayStatsJSON     `json:"day"`
	Month       monthStatsJSON   `json:"month"`
	Strip       []dayStatsJSON   `json:"strip"`
	Tasks       []model.Task     `json:"tasks"`
	ExtraShift  bool             `json:"extra_shift"`
	QuotaMissed bool             `json:"quota_missed"`
	Technicians []technicianJSON `json:"technicians,omitempty"`
}

func toView(v *dashboard.View) viewJSON {
	out := viewJSON{
		Date:        v.Date,
		Mode:        string(v.Mode),
		Technician:  v.Selection,
		Day:         toDayStats(v.Day),
		Month:       toMonthStats(v.Month),
		Strip:       make([]dayStatsJSON, 0, len(v.Strip)),
		Tasks:       v.Tasks,
		ExtraShift:  v.ExtraShift,
		QuotaMissed: v.QuotaMissed,
	}
	for _, d := range v.Strip {
		out.Strip = append(out.Strip, toDayStats(d))
	}
	if out.Tasks == nil {
		out.Tasks = []model.Task{}
	}
	for _, t := range v.Technicians {
		out.Technicians = append(out.Technicians, technicianJSON{ID: t.ID, Name: t.Name})
	}
	return out
}

type rowJSON struct {
	TechnicianID     string  `json:"technician_id"`
	TechnicianName   string  `json:"technician_name"`
	TotalValidTasks  int     `json:"total_valid_tasks"`
	DaysCompliant    int     `json:"days_compliant"`
	DaysNonCompliant int     `json:"days_non_compliant"`
	BonusTasks       float64 `json:"bonus_tasks"`
	Status           string  `json:"status"`
}

type summaryJSON struct {
	FullyCompliant  int     `json:"fully_compliant"`
	Warnings        int     `json:"warnings"`
	TotalBonusTasks float64 `json:"total_bonus_tasks"`
	Technicians     int     `json:"technicians"`
}

type reportJSON struct {
	Month   model.Month `json:"month"`
	Rows    []rowJSON   `json:"rows"`
	Summary summaryJSON `json:"summary"`
}

func toReport(r compliance.Report) reportJSON {
	out := reportJSON{
		Month: r.Month,
		Rows:  make([]rowJSON, 0, len(r.Rows)),
		Summary: summaryJSON{
			FullyCompliant:  r.Summary.FullyCompliant,
			Warnings:        r.Summary.Warnings,
			TotalBonusTasks: r.Summary.TotalBonusTasks.InexactFloat64(),
			Technicians:     r.Summary.Technicians,
		},
	}
	for _, row := range r.Rows {
		out.Rows = append(out.Rows, rowJSON{
			TechnicianID:     row.TechnicianID,
			TechnicianName:   row.TechnicianName,
			TotalValidTasks:  row.TotalValidTasks,
			DaysCompliant:    row.DaysCompliant,
			DaysNonCompliant: row.DaysNonCompliant,
			BonusTasks:       row.BonusTasks.InexactFloat64(),
			Status:           string(row.Status),
		})
	}
	return out
}

type rankingJSON struct {
	Position       int     `json:"position"`
	TechnicianID   string  `json:"technician_id"`
	TechnicianName string  `json:"technician_name"`
	BonusTasks     float64 `json:"bonus_tasks"`
	Podium         bool    `json:"podium"`
}

func toRanking(entries []compliance.RankingEntry) []rankingJSON {
	out := make([]rankingJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, rankingJSON{
			Position:       e.Position,
			TechnicianID:   e.TechnicianID,
			TechnicianName: e.TechnicianName,
			BonusTasks:     e.BonusTasks.InexactFloat64(),
			Podium:         e.Podium,
		})
	}
	return out
}
