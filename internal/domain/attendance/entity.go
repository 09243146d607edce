package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostingStatus enum
type PostingStatus string

const (
	PostingStatusNotPosted PostingStatus = "not_posted"
	PostingStatusPosted    PostingStatus = "posted"
)

// Attendance - one row per employee per day. Raw clock times plus the
// per-day metrics derived from them. Once posted the row belongs to a
// payroll period and is never recomputed again.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time

	// Raw times. BreakOut is the start of the break, BreakIn the return
	// from it; the naming is inherited from the biometric import format.
	TimeIn         *time.Time
	TimeOut        *time.Time
	BreakIn        *time.Time
	BreakOut       *time.Time
	NextDayTimeout *time.Time
	IsNightshift   bool

	// Derived by the metrics calculator, recomputable on demand
	LateMinutes      int
	UndertimeMinutes int
	HoursWorked      decimal.Decimal

	// Carried through to payroll
	Overtime         decimal.Decimal
	TravelOrder      decimal.Decimal
	SLVL             decimal.Decimal
	HolidayHours     decimal.Decimal
	OTRegHoliday     decimal.Decimal
	OTSpecialHoliday decimal.Decimal
	RetroMultiplier  decimal.Decimal
	OffsetHours      decimal.Decimal
	TripCount        decimal.Decimal
	RestDay          bool
	CT               bool
	CS               bool
	OB               bool

	PostingStatus PostingStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
}

// RawTimesEqual reports whether the raw time fields of two records match.
// A mismatch on any of them forces a full metrics recompute.
func (a Attendance) RawTimesEqual(b Attendance) bool {
	return timePtrEqual(a.TimeIn, b.TimeIn) &&
		timePtrEqual(a.TimeOut, b.TimeOut) &&
		timePtrEqual(a.BreakIn, b.BreakIn) &&
		timePtrEqual(a.BreakOut, b.BreakOut) &&
		timePtrEqual(a.NextDayTimeout, b.NextDayTimeout) &&
		a.IsNightshift == b.IsNightshift
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
