package payroll

import (
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// PAYROLL DTOs
// ========================================

type GeneratePayrollRequest struct {
	SummaryID string `json:"summary_id"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SummaryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "summary_id",
			Message: "summary_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePayrollRequest carries the adjustable inputs of a still-editable
// payroll. Computed amounts are re-derived afterwards, never set directly.
type UpdatePayrollRequest struct {
	ID string `json:"-"`

	AbsenceDays    *decimal.Decimal `json:"absence_days"`
	OTRestDayHours *decimal.Decimal `json:"ot_rest_day_hours"`
	OtherEarnings  *decimal.Decimal `json:"other_earnings"`

	MFShares               *decimal.Decimal `json:"mf_shares"`
	MFLoan                 *decimal.Decimal `json:"mf_loan"`
	SSSLoan                *decimal.Decimal `json:"sss_loan"`
	HDMFLoan               *decimal.Decimal `json:"hdmf_loan"`
	AdvanceDeduction       *decimal.Decimal `json:"advance_deduction"`
	ChargeStore            *decimal.Decimal `json:"charge_store"`
	ChargeDeduction        *decimal.Decimal `json:"charge_deduction"`
	MealsDeduction         *decimal.Decimal `json:"meals_deduction"`
	MiscellaneousDeduction *decimal.Decimal `json:"miscellaneous_deduction"`
	OtherDeductions        *decimal.Decimal `json:"other_deductions"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApprovalRequest struct {
	ID      string  `json:"-"`
	Remarks *string `json:"remarks"`
}

type PayrollFilter struct {
	EmployeeID     string
	Year           *int
	Month          *int
	PeriodType     *string
	Status         *string
	ApprovalStatus *string
	Page           int
	Limit          int
}

type PayrollResponse struct {
	ID           string `json:"id"`
	SummaryID    string `json:"summary_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	PeriodType   string `json:"period_type"`

	Department   *string         `json:"department"`
	JobTitle     *string         `json:"job_title"`
	PayType      string          `json:"pay_type"`
	BasicRate    decimal.Decimal `json:"basic_rate"`
	PayAllowance decimal.Decimal `json:"pay_allowance"`
	IsTaxable    bool            `json:"is_taxable"`

	DaysWorked            decimal.Decimal `json:"days_worked"`
	HoursWorked           decimal.Decimal `json:"hours_worked"`
	LateUnderMinutes      int             `json:"late_under_minutes"`
	LateUnderHours        decimal.Decimal `json:"late_under_hours"`
	OTRegularHours        decimal.Decimal `json:"ot_regular_hours"`
	OTRestDayHours        decimal.Decimal `json:"ot_rest_day_hours"`
	NSDHours              decimal.Decimal `json:"nsd_hours"`
	HolidayHours          decimal.Decimal `json:"holiday_hours"`
	OTRegularHolidayHours decimal.Decimal `json:"ot_regular_holiday_hours"`
	OTSpecialHolidayHours decimal.Decimal `json:"ot_special_holiday_hours"`
	TravelOrderHours      decimal.Decimal `json:"travel_order_hours"`
	SLVLDays              decimal.Decimal `json:"slvl_days"`
	RetroAmount           decimal.Decimal `json:"retro_amount"`
	OffsetHours           decimal.Decimal `json:"offset_hours"`
	TripCount             decimal.Decimal `json:"trip_count"`
	AbsenceDays           decimal.Decimal `json:"absence_days"`
	OtherEarnings         decimal.Decimal `json:"other_earnings"`

	BasicPay                  decimal.Decimal `json:"basic_pay"`
	Allowances                decimal.Decimal `json:"allowances"`
	LateUnderDeduction        decimal.Decimal `json:"late_under_deduction"`
	AbsenceDeduction          decimal.Decimal `json:"absence_deduction"`
	OTRegularAmount           decimal.Decimal `json:"ot_regular_amount"`
	OTRestDayAmount           decimal.Decimal `json:"ot_rest_day_amount"`
	OTSpecialHolidayAmount    decimal.Decimal `json:"ot_special_holiday_amount"`
	OTRegularHolidayAmount    decimal.Decimal `json:"ot_regular_holiday_amount"`
	OvertimePay               decimal.Decimal `json:"overtime_pay"`
	NSDAmount                 decimal.Decimal `json:"nsd_amount"`
	HolidayAmount             decimal.Decimal `json:"holiday_amount"`
	TravelOrderAmount         decimal.Decimal `json:"travel_order_amount"`
	SLVLAmount                decimal.Decimal `json:"slvl_amount"`
	OffsetAmount              decimal.Decimal `json:"offset_amount"`
	TripAmount                decimal.Decimal `json:"trip_amount"`
	PremiumPay                decimal.Decimal `json:"premium_pay"`
	TotalCompanyDeductions    decimal.Decimal `json:"total_company_deductions"`
	TotalOtherDeductions      decimal.Decimal `json:"total_other_deductions"`
	SSSContribution           decimal.Decimal `json:"sss_contribution"`
	PhilhealthContribution    decimal.Decimal `json:"philhealth_contribution"`
	HDMFContribution          decimal.Decimal `json:"hdmf_contribution"`
	TotalGovernmentDeductions decimal.Decimal `json:"total_government_deductions"`
	TaxableIncome             decimal.Decimal `json:"taxable_income"`
	WithholdingTax            decimal.Decimal `json:"withholding_tax"`
	GrossEarnings             decimal.Decimal `json:"gross_earnings"`
	TotalDeductions           decimal.Decimal `json:"total_deductions"`
	NetPay                    decimal.Decimal `json:"net_pay"`

	Status          string  `json:"status"`
	ApprovalStatus  string  `json:"approval_status"`
	CurrentApprover string  `json:"current_approver"`
	ApprovedBy      *string `json:"approved_by"`
	ApprovedAt      *string `json:"approved_at"`
	ApprovalRemarks *string `json:"approval_remarks"`
	FinalizedBy     *string `json:"finalized_by"`
	FinalizedAt     *string `json:"finalized_at"`
	PaidBy          *string `json:"paid_by"`
	PaidAt          *string `json:"paid_at"`
}

type ListPayrollResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Payrolls   []PayrollResponse `json:"payrolls"`
}

// ========================================
// BENEFIT / DEDUCTION DTOs
// ========================================

type UpsertBenefitRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Cutoff     string `json:"cutoff"`
	IsDefault  bool   `json:"is_default"`

	MFShares   decimal.Decimal `json:"mf_shares"`
	SSSLoan    decimal.Decimal `json:"sss_loan"`
	HDMFLoan   decimal.Decimal `json:"hdmf_loan"`
	HDMFPrem   decimal.Decimal `json:"hdmf_prem"`
	SSSPrem    decimal.Decimal `json:"sss_prem"`
	Philhealth decimal.Decimal `json:"philhealth"`
	Allowances decimal.Decimal `json:"allowances"`
}

func (r *UpsertBenefitRequest) Validate() error {
	return validatePeriodKey(r.EmployeeID, r.Year, r.Month, r.Cutoff, r.IsDefault)
}

type UpsertDeductionRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Cutoff     string `json:"cutoff"`
	IsDefault  bool   `json:"is_default"`

	Advance         decimal.Decimal `json:"advance"`
	ChargeStore     decimal.Decimal `json:"charge_store"`
	Charge          decimal.Decimal `json:"charge"`
	Meals           decimal.Decimal `json:"meals"`
	Miscellaneous   decimal.Decimal `json:"miscellaneous"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

func (r *UpsertDeductionRequest) Validate() error {
	return validatePeriodKey(r.EmployeeID, r.Year, r.Month, r.Cutoff, r.IsDefault)
}

type CopyFromDefaultRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Year        int      `json:"year"`
	Month       int      `json:"month"`
	Cutoff      string   `json:"cutoff"`
}

func (r *CopyFromDefaultRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "at least one employee is required",
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

	if !summary.PeriodType(r.Cutoff).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "cutoff",
			Message: "cutoff must be first_half or second_half",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BenefitResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Cutoff     string `json:"cutoff"`
	IsDefault  bool   `json:"is_default"`

	MFShares   decimal.Decimal `json:"mf_shares"`
	SSSLoan    decimal.Decimal `json:"sss_loan"`
	HDMFLoan   decimal.Decimal `json:"hdmf_loan"`
	HDMFPrem   decimal.Decimal `json:"hdmf_prem"`
	SSSPrem    decimal.Decimal `json:"sss_prem"`
	Philhealth decimal.Decimal `json:"philhealth"`
	Allowances decimal.Decimal `json:"allowances"`
}

type DeductionResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Cutoff     string `json:"cutoff"`
	IsDefault  bool   `json:"is_default"`

	Advance         decimal.Decimal `json:"advance"`
	ChargeStore     decimal.Decimal `json:"charge_store"`
	Charge          decimal.Decimal `json:"charge"`
	Meals           decimal.Decimal `json:"meals"`
	Miscellaneous   decimal.Decimal `json:"miscellaneous"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

func validatePeriodKey(employeeID string, year, month int, cutoff string, isDefault bool) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	// Default template rows are not bound to a specific period
	if !isDefault {
		if !validator.IsValidYear(year) {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: "year is out of range",
			})
		}
		if !validator.IsValidMonth(month) {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
	}

	if !summary.PeriodType(cutoff).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "cutoff",
			Message: "cutoff must be first_half or second_half",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
