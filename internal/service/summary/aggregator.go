package summary

import (
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

var oneDay = decimal.NewFromInt(1)

// Totals is the fold of one employee's attendance records over a cutoff.
// Every accumulator is a sum or an OR, so the result does not depend on
// record order.
type Totals struct {
	DaysWorked            decimal.Decimal
	HoursWorked           decimal.Decimal
	OTHours               decimal.Decimal
	OffDays               int
	LateUnderMinutes      int
	NSDHours              decimal.Decimal
	SLVLDays              decimal.Decimal
	Retro                 decimal.Decimal
	TravelOrderHours      decimal.Decimal
	HolidayHours          decimal.Decimal
	OTRegHolidayHours     decimal.Decimal
	OTSpecialHolidayHours decimal.Decimal
	OffsetHours           decimal.Decimal
	TripCount             decimal.Decimal
	HasCT                 bool
	HasCS                 bool
	HasOB                 bool
}

// daysWorkedContribution values one attendance row in worked days. A row
// without a time-in contributes nothing even when leave-flagged; a full
// leave day contributes nothing; a partial leave day contributes the
// remaining fraction.
func daysWorkedContribution(record attendance.Attendance) decimal.Decimal {
	if record.TimeIn == nil {
		return decimal.Zero
	}
	switch {
	case record.SLVL.GreaterThanOrEqual(oneDay):
		return decimal.Zero
	case record.SLVL.IsPositive():
		return oneDay.Sub(record.SLVL)
	default:
		return oneDay
	}
}

// Aggregate folds attendance records into period totals. DaysWorked is
// rounded to one decimal place at the end.
func Aggregate(records []attendance.Attendance) Totals {
	var t Totals
	t.DaysWorked = decimal.Zero
	t.HoursWorked = decimal.Zero
	t.OTHours = decimal.Zero
	t.NSDHours = decimal.Zero
	t.SLVLDays = decimal.Zero
	t.Retro = decimal.Zero
	t.TravelOrderHours = decimal.Zero
	t.HolidayHours = decimal.Zero
	t.OTRegHolidayHours = decimal.Zero
	t.OTSpecialHolidayHours = decimal.Zero
	t.OffsetHours = decimal.Zero
	t.TripCount = decimal.Zero

	for _, record := range records {
		t.DaysWorked = t.DaysWorked.Add(daysWorkedContribution(record))
		t.HoursWorked = t.HoursWorked.Add(record.HoursWorked)
		t.OTHours = t.OTHours.Add(record.Overtime)

		if record.RestDay {
			t.OffDays++
		}

		t.LateUnderMinutes += record.LateMinutes + record.UndertimeMinutes

		if record.IsNightshift && record.HoursWorked.IsPositive() {
			t.NSDHours = t.NSDHours.Add(record.HoursWorked)
		}

		t.SLVLDays = t.SLVLDays.Add(record.SLVL)
		t.Retro = t.Retro.Add(record.RetroMultiplier)
		t.TravelOrderHours = t.TravelOrderHours.Add(record.TravelOrder)
		t.HolidayHours = t.HolidayHours.Add(record.HolidayHours)
		t.OTRegHolidayHours = t.OTRegHolidayHours.Add(record.OTRegHoliday)
		t.OTSpecialHolidayHours = t.OTSpecialHolidayHours.Add(record.OTSpecialHoliday)
		t.OffsetHours = t.OffsetHours.Add(record.OffsetHours)
		t.TripCount = t.TripCount.Add(record.TripCount)

		t.HasCT = t.HasCT || record.CT
		t.HasCS = t.HasCS || record.CS
		t.HasOB = t.HasOB || record.OB
	}

	t.DaysWorked = t.DaysWorked.Round(1)

	return t
}
