package compliance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dukerupert/techarena/internal/model"
)

type Status string

const (
	StatusPerfect Status = "PERFECT"
	StatusWarning Status = "WARNING"
	StatusNoData  Status = "NO_DATA"
)

// Row is one technician's compliance over a month.
type Row struct {
	TechnicianID     string
	TechnicianName   string
	TotalValidTasks  int
	DaysCompliant    int
	DaysNonCompliant int
	BonusTasks       decimal.Decimal
	Status           Status
}

// Summary holds the report-level KPIs.
type Summary struct {
	FullyCompliant  int
	Warnings        int
	TotalBonusTasks decimal.Decimal
	Technicians     int
}

type Report struct {
	Month   model.Month
	Rows    []Row
	Summary Summary
}

// Technicians returns the active users with the technician role, in input order.
func Technicians(users []model.User) []model.User {
	var techs []model.User
	for _, u := range users {
		if u.Active && u.IsTechnician() {
			techs = append(techs, u)
		}
	}
	return techs
}

// Classify maps worked-day counts to a status. Any non-compliant day is a warning.
func Classify(daysCompliant, daysNonCompliant int) Status {
	switch {
	case daysNonCompliant > 0:
		return StatusWarning
	case daysCompliant > 0:
		return StatusPerfect
	default:
		return StatusNoData
	}
}

// TechnicianRow classifies one technician's OK/NOK tasks within month.
// Tasks owned by other technicians are ignored.
func TechnicianRow(tech model.User, tasks []model.Task, month model.Month, shifts model.ExtraShifts) Row {
	row := Row{TechnicianID: tech.ID, TechnicianName: tech.Name, BonusTasks: decimal.Zero}
	goals := make(map[model.Date]int)
	for _, t := range tasks {
		if t.TechnicianID != tech.ID || !month.Contains(t.Date) || !countsTowardGoal(t.Outcome) {
			continue
		}
		row.TotalValidTasks++
		goals[t.Date]++
	}

	for day, goal := range goals {
		if goal >= Quota {
			row.DaysCompliant++
			row.BonusTasks = row.BonusTasks.Add(DayBonus(goal, day, shifts.Has(tech.ID, day)))
		} else {
			row.DaysNonCompliant++
		}
	}
	row.Status = Classify(row.DaysCompliant, row.DaysNonCompliant)
	return row
}

// ComplianceReport builds one row per active technician. A non-empty
// technicianID narrows the rows to that technician.
func ComplianceReport(users []model.User, tasks []model.Task, month model.Month, shifts model.ExtraShifts, technicianID string) Report {
	report := Report{Month: month, Summary: Summary{TotalBonusTasks: decimal.Zero}}
	for _, tech := range Technicians(users) {
		if technicianID != "" && technicianID != AllTechnicians && tech.ID != technicianID {
			continue
		}
		row := TechnicianRow(tech, tasks, month, shifts)
		report.Rows = append(report.Rows, row)

		switch row.Status {
		case StatusPerfect:
			report.Summary.FullyCompliant++
		case StatusWarning:
			report.Summary.Warnings++
		}
		report.Summary.TotalBonusTasks = report.Summary.TotalBonusTasks.Add(row.BonusTasks)
	}
	report.Summary.Technicians = len(report.Rows)
	return report
}

// RankingEntry is a leaderboard position. Podium marks the top three.
type RankingEntry struct {
	Position       int
	TechnicianID   string
	TechnicianName string
	BonusTasks     decimal.Decimal
	Podium         bool
}

// BonusRanking lists technicians with a positive bonus for month, highest
// first. Equal bonuses keep the users' input order.
func BonusRanking(users []model.User, tasks []model.Task, month model.Month, shifts model.ExtraShifts) []RankingEntry {
	var rows []Row
	for _, row := range ComplianceReport(users, tasks, month, shifts, AllTechnicians).Rows {
		if row.BonusTasks.IsPositive() {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].BonusTasks.GreaterThan(rows[j].BonusTasks)
	})

	ranking := make([]RankingEntry, len(rows))
	for i, row := range rows {
		ranking[i] = RankingEntry{
			Position:       i + 1,
			TechnicianID:   row.TechnicianID,
			TechnicianName: row.TechnicianName,
			BonusTasks:     row.BonusTasks,
			Podium:         i < 3,
		}
	}
	return ranking
}
