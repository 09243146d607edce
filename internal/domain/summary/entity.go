package summary

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodType enum - the two semi-monthly cutoffs
type PeriodType string

const (
	PeriodFirstHalf  PeriodType = "first_half"
	PeriodSecondHalf PeriodType = "second_half"
)

func (p PeriodType) Valid() bool {
	return p == PeriodFirstHalf || p == PeriodSecondHalf
}

// PeriodBounds returns the inclusive calendar-day range of a cutoff:
// day 1-15 for the first half, day 16 to end of month for the second.
func PeriodBounds(year int, month time.Month, period PeriodType) (time.Time, time.Time) {
	if period == PeriodFirstHalf {
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
	}
	endOfMonth := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return time.Date(year, month, 16, 0, 0, 0, 0, time.UTC), endOfMonth
}

// ExpectedDays returns the working-day divisor used for monthly-rated
// employees: 15 for the first half, remaining days of the month otherwise.
func ExpectedDays(year int, month time.Month, period PeriodType) int {
	if period == PeriodFirstHalf {
		return 15
	}
	_, end := PeriodBounds(year, month, period)
	return end.Day() - 15
}

// SummaryStatus enum
type SummaryStatus string

const (
	SummaryStatusDraft  SummaryStatus = "draft"
	SummaryStatusPosted SummaryStatus = "posted"
	SummaryStatusLocked SummaryStatus = "locked"
)

// PeriodSummary - the fold of one employee's attendance over one cutoff.
// At most one row per (employee, year, month, period_type). Only draft
// summaries may be regenerated; posted and locked rows are immutable snapshots.
type PeriodSummary struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int
	PeriodType PeriodType

	// Aggregated from attendance
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

	// Pass-through financials copied at generation time
	Advance         decimal.Decimal
	ChargeStore     decimal.Decimal
	Charge          decimal.Decimal
	Meals           decimal.Decimal
	Miscellaneous   decimal.Decimal
	OtherDeductions decimal.Decimal
	MFShares        decimal.Decimal
	MFLoan          decimal.Decimal
	SSSLoan         decimal.Decimal
	HDMFLoan        decimal.Decimal
	HDMFPrem        decimal.Decimal
	SSSPrem         decimal.Decimal
	Philhealth      decimal.Decimal
	Allowances      decimal.Decimal

	Status   SummaryStatus
	PostedBy *string
	PostedAt *time.Time
	LockedBy *string
	LockedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}
