package summary

import (
	"testing"
	"time"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func workedDay(day int) attendance.Attendance {
	date := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
	in := time.Date(2025, 3, day, 8, 0, 0, 0, time.UTC)
	out := time.Date(2025, 3, day, 17, 0, 0, 0, time.UTC)
	return attendance.Attendance{
		Date:        date,
		TimeIn:      &in,
		TimeOut:     &out,
		HoursWorked: decimal.NewFromInt(8),
	}
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	totals := Aggregate(nil)

	assert.True(t, totals.DaysWorked.IsZero())
	assert.True(t, totals.HoursWorked.IsZero())
	assert.True(t, totals.OTHours.IsZero())
	assert.Equal(t, 0, totals.OffDays)
	assert.Equal(t, 0, totals.LateUnderMinutes)
	assert.False(t, totals.HasCT)
	assert.False(t, totals.HasCS)
	assert.False(t, totals.HasOB)
}

func TestAggregate_PlainWorkedDays(t *testing.T) {
	t.Parallel()

	records := []attendance.Attendance{workedDay(3), workedDay(4), workedDay(5)}

	totals := Aggregate(records)

	assert.True(t, totals.DaysWorked.Equal(decimal.NewFromInt(3)), "got %s", totals.DaysWorked)
	assert.True(t, totals.HoursWorked.Equal(decimal.NewFromInt(24)))
}

func TestAggregate_DaysWorkedContribution(t *testing.T) {
	t.Parallel()

	noTimeIn := workedDay(3)
	noTimeIn.TimeIn = nil
	noTimeIn.SLVL = decimal.RequireFromString("0.5")

	fullLeave := workedDay(4)
	fullLeave.SLVL = decimal.NewFromInt(1)

	halfLeave := workedDay(5)
	halfLeave.SLVL = decimal.RequireFromString("0.5")

	tests := []struct {
		name   string
		record attendance.Attendance
		want   string
	}{
		{"no time-in contributes nothing even with leave", noTimeIn, "0"},
		{"full-day leave contributes nothing", fullLeave, "0"},
		{"half-day leave contributes the remainder", halfLeave, "0.5"},
		{"plain day contributes one", workedDay(6), "1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			totals := Aggregate([]attendance.Attendance{tt.record})

			assert.True(t, totals.DaysWorked.Equal(decimal.RequireFromString(tt.want)),
				"got %s", totals.DaysWorked)
		})
	}
}

func TestAggregate_HalfDayLeaveAcrossPeriod(t *testing.T) {
	t.Parallel()

	halfLeave := workedDay(5)
	halfLeave.SLVL = decimal.RequireFromString("0.5")

	records := []attendance.Attendance{workedDay(3), workedDay(4), halfLeave}

	totals := Aggregate(records)

	assert.True(t, totals.DaysWorked.Equal(decimal.RequireFromString("2.5")), "got %s", totals.DaysWorked)
	assert.True(t, totals.SLVLDays.Equal(decimal.RequireFromString("0.5")))
}

func TestAggregate_NightDifferential(t *testing.T) {
	t.Parallel()

	night := workedDay(3)
	night.IsNightshift = true

	zeroHourNight := workedDay(4)
	zeroHourNight.IsNightshift = true
	zeroHourNight.HoursWorked = decimal.Zero

	day := workedDay(5)

	totals := Aggregate([]attendance.Attendance{night, zeroHourNight, day})

	// Only the nightshift row with positive hours feeds NSD
	assert.True(t, totals.NSDHours.Equal(decimal.NewFromInt(8)), "got %s", totals.NSDHours)
}

func TestAggregate_LateAndUndertimePooled(t *testing.T) {
	t.Parallel()

	a := workedDay(3)
	a.LateMinutes = 20
	b := workedDay(4)
	b.UndertimeMinutes = 45
	c := workedDay(5)
	c.LateMinutes = 10
	c.UndertimeMinutes = 5

	totals := Aggregate([]attendance.Attendance{a, b, c})

	assert.Equal(t, 80, totals.LateUnderMinutes)
}

func TestAggregate_FlagsAndOffDays(t *testing.T) {
	t.Parallel()

	rest := workedDay(3)
	rest.RestDay = true
	ct := workedDay(4)
	ct.CT = true
	ob := workedDay(5)
	ob.OB = true

	totals := Aggregate([]attendance.Attendance{rest, ct, ob})

	assert.Equal(t, 1, totals.OffDays)
	assert.True(t, totals.HasCT)
	assert.False(t, totals.HasCS)
	assert.True(t, totals.HasOB)
}

func TestAggregate_StraightSums(t *testing.T) {
	t.Parallel()

	a := workedDay(3)
	a.Overtime = decimal.NewFromInt(2)
	a.TravelOrder = decimal.NewFromInt(1)
	a.HolidayHours = decimal.NewFromInt(8)
	a.TripCount = decimal.NewFromInt(3)

	b := workedDay(4)
	b.Overtime = decimal.RequireFromString("1.5")
	b.OTRegHoliday = decimal.NewFromInt(4)
	b.OTSpecialHoliday = decimal.NewFromInt(2)
	b.OffsetHours = decimal.NewFromInt(1)
	b.RetroMultiplier = decimal.RequireFromString("0.25")

	totals := Aggregate([]attendance.Attendance{a, b})

	assert.True(t, totals.OTHours.Equal(decimal.RequireFromString("3.5")))
	assert.True(t, totals.TravelOrderHours.Equal(decimal.NewFromInt(1)))
	assert.True(t, totals.HolidayHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, totals.OTRegHolidayHours.Equal(decimal.NewFromInt(4)))
	assert.True(t, totals.OTSpecialHolidayHours.Equal(decimal.NewFromInt(2)))
	assert.True(t, totals.OffsetHours.Equal(decimal.NewFromInt(1)))
	assert.True(t, totals.TripCount.Equal(decimal.NewFromInt(3)))
	assert.True(t, totals.Retro.Equal(decimal.RequireFromString("0.25")))
}

func TestAggregate_OrderIndependent(t *testing.T) {
	t.Parallel()

	half := workedDay(5)
	half.SLVL = decimal.RequireFromString("0.5")
	late := workedDay(6)
	late.LateMinutes = 12
	night := workedDay(7)
	night.IsNightshift = true

	forward := Aggregate([]attendance.Attendance{workedDay(3), half, late, night})
	backward := Aggregate([]attendance.Attendance{night, late, half, workedDay(3)})

	assert.True(t, forward.DaysWorked.Equal(backward.DaysWorked))
	assert.True(t, forward.HoursWorked.Equal(backward.HoursWorked))
	assert.True(t, forward.NSDHours.Equal(backward.NSDHours))
	assert.Equal(t, forward.LateUnderMinutes, backward.LateUnderMinutes)
}
