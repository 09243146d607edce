package summary

import (
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateSummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	PeriodType string `json:"period_type"`
}

func (r *GenerateSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !PeriodType(r.PeriodType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period_type",
			Message: "period_type must be first_half or second_half",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SummaryFilter struct {
	EmployeeID string
	Year       *int
	Month      *int
	PeriodType *string
	Status     *string
	Page       int
	Limit      int
}

type SummaryResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	PeriodType   string `json:"period_type"`

	DaysWorked            decimal.Decimal `json:"days_worked"`
	HoursWorked           decimal.Decimal `json:"hours_worked"`
	OTHours               decimal.Decimal `json:"ot_hours"`
	OffDays               int             `json:"off_days"`
	LateUnderMinutes      int             `json:"late_under_minutes"`
	NSDHours              decimal.Decimal `json:"nsd_hours"`
	SLVLDays              decimal.Decimal `json:"slvl_days"`
	Retro                 decimal.Decimal `json:"retro"`
	TravelOrderHours      decimal.Decimal `json:"travel_order_hours"`
	HolidayHours          decimal.Decimal `json:"holiday_hours"`
	OTRegHolidayHours     decimal.Decimal `json:"ot_reg_holiday_hours"`
	OTSpecialHolidayHours decimal.Decimal `json:"ot_special_holiday_hours"`
	OffsetHours           decimal.Decimal `json:"offset_hours"`
	TripCount             decimal.Decimal `json:"trip_count"`
	HasCT                 bool            `json:"has_ct"`
	HasCS                 bool            `json:"has_cs"`
	HasOB                 bool            `json:"has_ob"`

	Advance         decimal.Decimal `json:"advance"`
	ChargeStore     decimal.Decimal `json:"charge_store"`
	Charge          decimal.Decimal `json:"charge"`
	Meals           decimal.Decimal `json:"meals"`
	Miscellaneous   decimal.Decimal `json:"miscellaneous"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	MFShares        decimal.Decimal `json:"mf_shares"`
	MFLoan          decimal.Decimal `json:"mf_loan"`
	SSSLoan         decimal.Decimal `json:"sss_loan"`
	HDMFLoan        decimal.Decimal `json:"hdmf_loan"`
	HDMFPrem        decimal.Decimal `json:"hdmf_prem"`
	SSSPrem         decimal.Decimal `json:"sss_prem"`
	Philhealth      decimal.Decimal `json:"philhealth"`
	Allowances      decimal.Decimal `json:"allowances"`

	Status   string  `json:"status"`
	PostedBy *string `json:"posted_by"`
	PostedAt *string `json:"posted_at"`
	LockedBy *string `json:"locked_by"`
	LockedAt *string `json:"locked_at"`
}

type ListSummaryResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Summaries  []SummaryResponse `json:"summaries"`
}
