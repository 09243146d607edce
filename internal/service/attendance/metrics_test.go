package attendance

import (
	"testing"
	"time"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func clock(day time.Time, hour, min int) *time.Time {
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.UTC)
	return &t
}

func nextDayClock(day time.Time, hour, min int) *time.Time {
	t := time.Date(day.Year(), day.Month(), day.Day()+1, hour, min, 0, 0, time.UTC)
	return &t
}

var testDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestRecalculateMetrics_OnTimeFullDay(t *testing.T) {
	t.Parallel()

	a := attendance.Attendance{
		Date:    testDay,
		TimeIn:  clock(testDay, 8, 0),
		TimeOut: clock(testDay, 17, 0),
	}

	RecalculateMetrics(&a, true)

	assert.Equal(t, 0, a.LateMinutes)
	assert.Equal(t, 0, a.UndertimeMinutes)
	// 9h minus the flat 60-minute break
	assert.True(t, a.HoursWorked.Equal(decimal.NewFromInt(8)), "got %s", a.HoursWorked)
}

func TestRecalculateMetrics_GraceWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inMinute int
		wantLate int
	}{
		{"exactly on time", 0, 0},
		{"inside grace", 4, 0},
		{"at grace boundary", 5, 0},
		{"one past grace charges from the hour", 6, 6},
		{"well past grace", 30, 30},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := attendance.Attendance{
				Date:    testDay,
				TimeIn:  clock(testDay, 8, tt.inMinute),
				TimeOut: clock(testDay, 17, 0),
			}

			RecalculateMetrics(&a, true)

			assert.Equal(t, tt.wantLate, a.LateMinutes)
		})
	}
}

func TestRecalculateMetrics_RecordedBreak(t *testing.T) {
	t.Parallel()

	// 90-minute recorded break instead of the flat 60
	a := attendance.Attendance{
		Date:     testDay,
		TimeIn:   clock(testDay, 8, 0),
		TimeOut:  clock(testDay, 17, 0),
		BreakOut: clock(testDay, 12, 0),
		BreakIn:  clock(testDay, 13, 30),
	}

	RecalculateMetrics(&a, true)

	assert.True(t, a.HoursWorked.Equal(decimal.RequireFromString("7.5")), "got %s", a.HoursWorked)
	assert.Equal(t, 30, a.UndertimeMinutes)
}

func TestRecalculateMetrics_InvertedBreakFallsBackToDefault(t *testing.T) {
	t.Parallel()

	// BreakIn before BreakOut is an incoherent pair, so the flat 60 applies
	a := attendance.Attendance{
		Date:     testDay,
		TimeIn:   clock(testDay, 8, 0),
		TimeOut:  clock(testDay, 17, 0),
		BreakOut: clock(testDay, 13, 0),
		BreakIn:  clock(testDay, 12, 0),
	}

	RecalculateMetrics(&a, true)

	assert.True(t, a.HoursWorked.Equal(decimal.NewFromInt(8)), "got %s", a.HoursWorked)
}

func TestRecalculateMetrics_Undertime(t *testing.T) {
	t.Parallel()

	a := attendance.Attendance{
		Date:    testDay,
		TimeIn:  clock(testDay, 8, 0),
		TimeOut: clock(testDay, 16, 0),
	}

	RecalculateMetrics(&a, true)

	// 8h minus break = 420 net minutes, 60 short of the standard 480
	assert.Equal(t, 60, a.UndertimeMinutes)
	assert.True(t, a.HoursWorked.Equal(decimal.NewFromInt(7)), "got %s", a.HoursWorked)
}

func TestRecalculateMetrics_NightshiftUsesNextDayTimeout(t *testing.T) {
	t.Parallel()

	a := attendance.Attendance{
		Date:           testDay,
		TimeIn:         clock(testDay, 22, 0),
		TimeOut:        clock(testDay, 23, 0),
		NextDayTimeout: nextDayClock(testDay, 7, 0),
		IsNightshift:   true,
	}

	RecalculateMetrics(&a, true)

	// 22:00 to 07:00 next day is 9h, minus the flat break
	assert.True(t, a.HoursWorked.Equal(decimal.NewFromInt(8)), "got %s", a.HoursWorked)
	assert.Equal(t, 0, a.UndertimeMinutes)
}

func TestRecalculateMetrics_NightshiftWithoutNextDayTimeout(t *testing.T) {
	t.Parallel()

	a := attendance.Attendance{
		Date:         testDay,
		TimeIn:       clock(testDay, 22, 0),
		TimeOut:      nextDayClock(testDay, 7, 0),
		IsNightshift: true,
	}

	RecalculateMetrics(&a, true)

	// Falls back to the plain time-out
	assert.True(t, a.HoursWorked.Equal(decimal.NewFromInt(8)), "got %s", a.HoursWorked)
}

func TestRecalculateMetrics_MissingTimeIn(t *testing.T) {
	t.Parallel()

	a := attendance.Attendance{
		Date:    testDay,
		TimeOut: clock(testDay, 17, 0),
	}

	RecalculateMetrics(&a, true)

	assert.Equal(t, 0, a.LateMinutes)
	assert.Equal(t, 0, a.UndertimeMinutes)
	assert.True(t, a.HoursWorked.IsZero())
}

func TestRecalculateMetrics_ShortStintFloorsAtZero(t *testing.T) {
	t.Parallel()

	// 30 minutes on site, less than the flat break
	a := attendance.Attendance{
		Date:    testDay,
		TimeIn:  clock(testDay, 8, 0),
		TimeOut: clock(testDay, 8, 30),
	}

	RecalculateMetrics(&a, true)

	assert.True(t, a.HoursWorked.IsZero())
	assert.Equal(t, 480, a.UndertimeMinutes)
}

func TestRecalculateMetrics_ManualOverrideSurvivesWithoutForce(t *testing.T) {
	t.Parallel()

	a := attendance.Attendance{
		Date:        testDay,
		TimeIn:      clock(testDay, 8, 0),
		TimeOut:     clock(testDay, 17, 0),
		LateMinutes: 15,
		HoursWorked: decimal.RequireFromString("6.5"),
	}

	RecalculateMetrics(&a, false)

	assert.Equal(t, 15, a.LateMinutes)
	assert.True(t, a.HoursWorked.Equal(decimal.RequireFromString("6.5")))
	// Undertime was zero, so it still gets derived
	assert.Equal(t, 0, a.UndertimeMinutes)
}

func TestRecalculateMetrics_ForceOverwritesManualValues(t *testing.T) {
	t.Parallel()

	a := attendance.Attendance{
		Date:        testDay,
		TimeIn:      clock(testDay, 8, 0),
		TimeOut:     clock(testDay, 17, 0),
		LateMinutes: 15,
		HoursWorked: decimal.RequireFromString("6.5"),
	}

	RecalculateMetrics(&a, true)

	assert.Equal(t, 0, a.LateMinutes)
	assert.True(t, a.HoursWorked.Equal(decimal.NewFromInt(8)))
}

func TestRecalculateMetrics_Idempotent(t *testing.T) {
	t.Parallel()

	a := attendance.Attendance{
		Date:    testDay,
		TimeIn:  clock(testDay, 8, 20),
		TimeOut: clock(testDay, 17, 0),
	}

	RecalculateMetrics(&a, true)
	first := a
	RecalculateMetrics(&a, true)

	assert.Equal(t, first.LateMinutes, a.LateMinutes)
	assert.Equal(t, first.UndertimeMinutes, a.UndertimeMinutes)
	assert.True(t, first.HoursWorked.Equal(a.HoursWorked))
}
