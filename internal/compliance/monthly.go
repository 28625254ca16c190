package compliance

import (
	"github.com/shopspring/decimal"

	"github.com/dukerupert/techarena/internal/model"
)

// MonthStats aggregates a task set over one calendar month.
type MonthStats struct {
	Month         model.Month
	OK            int
	NOK           int
	PP            int
	Cancel        int
	Total         int
	CompliantDays int
	BonusTasks    decimal.Decimal
}

func (s MonthStats) Goal() int {
	return s.OK + s.NOK
}

// MonthlyStats aggregates tasks dated within month. CompliantDays counts
// distinct dates whose combined goal meets the quota. The bonus is summed
// over (technician, date) buckets so each day's multiplier is resolved
// against the owning technician's extra-shift flag.
func MonthlyStats(tasks []model.Task, month model.Month, shifts model.ExtraShifts) MonthStats {
	stats := MonthStats{Month: month, BonusTasks: decimal.Zero}
	goalByDate := make(map[model.Date]int)
	goalByTechDay := make(map[model.ExtraShiftKey]int)

	for _, t := range tasks {
		if !month.Contains(t.Date) {
			continue
		}
		stats.Total++
		switch t.Outcome {
		case model.OutcomeOK:
			stats.OK++
		case model.OutcomeNOK:
			stats.NOK++
		case model.OutcomePP:
			stats.PP++
		case model.OutcomeCancel:
			stats.Cancel++
		}
		if countsTowardGoal(t.Outcome) {
			goalByDate[t.Date]++
			goalByTechDay[model.ExtraShiftKey{TechnicianID: t.TechnicianID, Date: t.Date}]++
		}
	}

	for _, goal := range goalByDate {
		if goal >= Quota {
			stats.CompliantDays++
		}
	}
	stats.BonusTasks = bucketBonus(goalByTechDay, shifts)
	return stats
}

func bucketBonus(goals map[model.ExtraShiftKey]int, shifts model.ExtraShifts) decimal.Decimal {
	total := decimal.Zero
	for key, goal := range goals {
		total = total.Add(DayBonus(goal, key.Date, shifts[key]))
	}
	return total
}
