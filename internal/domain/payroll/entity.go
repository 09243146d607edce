package payroll

import (
	"time"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/employee"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/shopspring/decimal"
)

// Benefit - recurring per-employee contribution amounts for one cutoff.
// A row with IsDefault set is the template employees inherit from when no
// period-specific row exists.
type Benefit struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int
	Cutoff     summary.PeriodType
	IsDefault  bool

	MFShares   decimal.Decimal
	SSSLoan    decimal.Decimal
	HDMFLoan   decimal.Decimal
	HDMFPrem   decimal.Decimal
	SSSPrem    decimal.Decimal
	Philhealth decimal.Decimal
	Allowances decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Deduction - one-off deduction amounts for one cutoff.
type Deduction struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int
	Cutoff     summary.PeriodType
	IsDefault  bool

	Advance         decimal.Decimal
	ChargeStore     decimal.Decimal
	Charge          decimal.Decimal
	Meals           decimal.Decimal
	Miscellaneous   decimal.Decimal
	OtherDeductions decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollStatus enum - forward-only lifecycle
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusFinalized PayrollStatus = "finalized"
	PayrollStatusPaid      PayrollStatus = "paid"
)

// ApprovalStatus enum - forward-only from pending
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// ApproverRole names who may act on a payroll in its current state.
type ApproverRole string

const (
	RoleHR      ApproverRole = "hr"
	RoleFinance ApproverRole = "finance"
	RoleNone    ApproverRole = "none"
)

// CurrentApprover returns the role whose action moves the payroll forward:
// HR decides the pending approval, finance finalizes an approved draft and
// pays a finalized one. Paid and rejected payrolls have no next actor.
func CurrentApprover(status PayrollStatus, approval ApprovalStatus) ApproverRole {
	switch {
	case approval == ApprovalStatusRejected:
		return RoleNone
	case approval == ApprovalStatusPending:
		return RoleHR
	case status == PayrollStatusDraft:
		return RoleFinance
	case status == PayrollStatusFinalized:
		return RoleFinance
	default:
		return RoleNone
	}
}

// FinalPayroll - the fully itemized payroll record derived from one posted
// period summary plus the matched benefit and deduction rows. Exactly one
// per (employee, year, month, period_type).
type FinalPayroll struct {
	ID         string
	SummaryID  string
	EmployeeID string
	Year       int
	Month      int
	PeriodType summary.PeriodType

	// Employee profile snapshot taken at generation
	EmployeeName string
	Department   *string
	JobTitle     *string
	PayType      employee.PayType
	BasicRate    decimal.Decimal
	PayAllowance decimal.Decimal
	IsTaxable    bool

	// Inputs mapped from the period summary
	DaysWorked            decimal.Decimal
	HoursWorked           decimal.Decimal
	LateUnderMinutes      int
	LateUnderHours        decimal.Decimal
	OTRegularHours        decimal.Decimal
	NSDHours              decimal.Decimal
	HolidayHours          decimal.Decimal
	OTRegularHolidayHours decimal.Decimal
	OTSpecialHolidayHours decimal.Decimal
	TravelOrderHours      decimal.Decimal
	SLVLDays              decimal.Decimal
	RetroAmount           decimal.Decimal
	OffsetHours           decimal.Decimal
	TripCount             decimal.Decimal
	HasCT                 bool
	HasCS                 bool
	HasOB                 bool

	// Inputs the summary never populates; adjustable while editable
	AbsenceDays    decimal.Decimal
	OTRestDayHours decimal.Decimal
	OtherEarnings  decimal.Decimal

	// Inputs mapped from the matched benefit and deduction rows
	MFShares               decimal.Decimal
	MFLoan                 decimal.Decimal
	SSSLoan                decimal.Decimal
	HDMFLoan               decimal.Decimal
	AdvanceDeduction       decimal.Decimal
	ChargeStore            decimal.Decimal
	ChargeDeduction        decimal.Decimal
	MealsDeduction         decimal.Decimal
	MiscellaneousDeduction decimal.Decimal
	OtherDeductions        decimal.Decimal

	// Derived by the calculator, never user-supplied
	BasicPay                  decimal.Decimal
	Allowances                decimal.Decimal
	LateUnderDeduction        decimal.Decimal
	AbsenceDeduction          decimal.Decimal
	OTRegularAmount           decimal.Decimal
	OTRestDayAmount           decimal.Decimal
	OTSpecialHolidayAmount    decimal.Decimal
	OTRegularHolidayAmount    decimal.Decimal
	OvertimePay               decimal.Decimal
	NSDAmount                 decimal.Decimal
	HolidayAmount             decimal.Decimal
	TravelOrderAmount         decimal.Decimal
	SLVLAmount                decimal.Decimal
	OffsetAmount              decimal.Decimal
	TripAmount                decimal.Decimal
	PremiumPay                decimal.Decimal
	TotalCompanyDeductions    decimal.Decimal
	TotalOtherDeductions      decimal.Decimal
	SSSContribution           decimal.Decimal
	PhilhealthContribution    decimal.Decimal
	HDMFContribution          decimal.Decimal
	TotalGovernmentDeductions decimal.Decimal
	TaxableIncome             decimal.Decimal
	WithholdingTax            decimal.Decimal
	GrossEarnings             decimal.Decimal
	TotalDeductions           decimal.Decimal
	NetPay                    decimal.Decimal

	Status          PayrollStatus
	ApprovalStatus  ApprovalStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	ApprovalRemarks *string
	FinalizedBy     *string
	FinalizedAt     *time.Time
	PaidBy          *string
	PaidAt          *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Editable reports whether monetary fields may still be adjusted.
func (p *FinalPayroll) Editable() bool {
	return p.Status == PayrollStatusDraft && p.ApprovalStatus == ApprovalStatusPending
}
