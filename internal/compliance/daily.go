// Package compliance derives quota, bonus and ranking figures from task
// records. Every function is pure: callers load tasks and extra-shift flags
// from the store and pass them in.
package compliance

import (
	"github.com/shopspring/decimal"

	"github.com/dukerupert/techarena/internal/model"
)

// Quota is the number of OK+NOK tasks a technician must reach per day.
const Quota = 10

// extraShiftMultiplier scales a volunteered Saturday's excess.
var extraShiftMultiplier = decimal.NewFromFloat(1.5)

// DayStats counts task outcomes on one calendar day.
type DayStats struct {
	Date   model.Date
	OK     int
	NOK    int
	PP     int
	Cancel int
	Total  int
}

// Goal is the number of tasks that count toward the quota.
func (s DayStats) Goal() int {
	return s.OK + s.NOK
}

func (s DayStats) Compliant() bool {
	return s.Goal() >= Quota
}

func (s *DayStats) add(t model.Task) {
	s.Total++
	switch t.Outcome {
	case model.OutcomeOK:
		s.OK++
	case model.OutcomeNOK:
		s.NOK++
	case model.OutcomePP:
		s.PP++
	case model.OutcomeCancel:
		s.Cancel++
	}
}

// DailyStats counts the tasks dated on day, whatever their status.
func DailyStats(tasks []model.Task, day model.Date) DayStats {
	stats := DayStats{Date: day}
	for _, t := range tasks {
		if t.Date == day {
			stats.add(t)
		}
	}
	return stats
}

// DayStrip returns DailyStats for each day in days, in order.
func DayStrip(tasks []model.Task, days []model.Date) []DayStats {
	byDate := make(map[model.Date]*DayStats, len(days))
	strip := make([]DayStats, len(days))
	for i, d := range days {
		strip[i].Date = d
		byDate[d] = &strip[i]
	}
	for _, t := range tasks {
		if s, ok := byDate[t.Date]; ok {
			s.add(t)
		}
	}
	return strip
}

// WeekDays lists Monday through Sunday of the week containing d.
func WeekDays(d model.Date) []model.Date {
	start := d.StartOfWeek()
	days := make([]model.Date, 7)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

// DayBonus is the excess over quota for one technician-day. A Saturday
// flagged as an extra shift earns 1.5 times the excess.
func DayBonus(goal int, day model.Date, extraShift bool) decimal.Decimal {
	if goal < Quota {
		return decimal.Zero
	}
	excess := decimal.NewFromInt(int64(goal - Quota))
	if extraShift && day.IsSaturday() {
		return excess.Mul(extraShiftMultiplier)
	}
	return excess
}

func countsTowardGoal(o model.Outcome) bool {
	return o == model.OutcomeOK || o == model.OutcomeNOK
}
