package attendance

import (
	"time"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

const (
	workStartHour       = 8
	graceMinutes        = 5
	defaultBreakMinutes = 60
	standardDayMinutes  = 480
)

var sixty = decimal.NewFromInt(60)

// effectiveTimeOut picks the timestamp duration math runs against: the
// next-day timeout for a night shift when present, the plain time-out otherwise.
func effectiveTimeOut(a attendance.Attendance) *time.Time {
	if a.IsNightshift && a.NextDayTimeout != nil {
		return a.NextDayTimeout
	}
	return a.TimeOut
}

// computeLateMinutes measures lateness against the 08:00 expected start.
// Arrivals within the 5-minute grace window count as on time; beyond it the
// full distance from 08:00 is charged, not just the overshoot past 08:05.
func computeLateMinutes(a attendance.Attendance) int {
	if a.TimeIn == nil {
		return 0
	}
	expected := time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(),
		workStartHour, 0, 0, 0, a.Date.Location())
	grace := expected.Add(graceMinutes * time.Minute)
	if a.TimeIn.After(grace) {
		return int(a.TimeIn.Sub(expected).Minutes())
	}
	return 0
}

// breakMinutes returns the recorded break duration when both stamps are
// present and ordered (BreakOut starts the break, BreakIn ends it), the flat
// default otherwise.
func breakMinutes(a attendance.Attendance) int {
	if a.BreakIn != nil && a.BreakOut != nil && a.BreakIn.After(*a.BreakOut) {
		return int(a.BreakIn.Sub(*a.BreakOut).Minutes())
	}
	return defaultBreakMinutes
}

// netWorkedMinutes is time-in to effective time-out minus the break, floored at 0.
func netWorkedMinutes(a attendance.Attendance) int {
	out := effectiveTimeOut(a)
	if a.TimeIn == nil || out == nil {
		return 0
	}
	net := int(out.Sub(*a.TimeIn).Minutes()) - breakMinutes(a)
	if net < 0 {
		net = 0
	}
	return net
}

func computeUndertimeMinutes(a attendance.Attendance) int {
	out := effectiveTimeOut(a)
	if a.TimeIn == nil || out == nil {
		return 0
	}
	undertime := standardDayMinutes - netWorkedMinutes(a)
	if undertime < 0 {
		undertime = 0
	}
	return undertime
}

func computeHoursWorked(a attendance.Attendance) decimal.Decimal {
	out := effectiveTimeOut(a)
	if a.TimeIn == nil || out == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(netWorkedMinutes(a))).Div(sixty).Round(2)
}

// RecalculateMetrics derives late_minutes, undertime_minutes and hours_worked
// from the raw time fields. With force the derived fields are overwritten
// unconditionally (any raw time changed); without it only zero-valued fields
// are filled, so a nonzero manual override survives creation. A manual value
// of exactly zero is indistinguishable from "never set" and gets recomputed.
func RecalculateMetrics(a *attendance.Attendance, force bool) {
	if force || a.LateMinutes == 0 {
		a.LateMinutes = computeLateMinutes(*a)
	}
	if force || a.UndertimeMinutes == 0 {
		a.UndertimeMinutes = computeUndertimeMinutes(*a)
	}
	if force || a.HoursWorked.IsZero() {
		a.HoursWorked = computeHoursWorked(*a)
	}
}
