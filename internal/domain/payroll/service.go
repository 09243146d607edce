package payroll

import "context"

// PayrollService defines business logic for final payrolls
type PayrollService interface {
	// GeneratePayroll derives a final payroll from one posted period
	// summary. Refuses when one already exists for the same cutoff.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest, actorID string) (PayrollResponse, error)

	// RecalculatePayroll re-runs the full calculation on an editable
	// payroll; idempotent for unchanged inputs
	RecalculatePayroll(ctx context.Context, id string) (PayrollResponse, error)

	// UpdatePayroll adjusts caller-settable inputs while editable, then recalculates
	UpdatePayroll(ctx context.Context, req UpdatePayrollRequest) (PayrollResponse, error)

	// ApprovePayroll / RejectPayroll decide a pending approval
	ApprovePayroll(ctx context.Context, req ApprovalRequest, actorID string) (PayrollResponse, error)
	RejectPayroll(ctx context.Context, req ApprovalRequest, actorID string) (PayrollResponse, error)

	// FinalizePayroll locks an approved draft's monetary fields
	FinalizePayroll(ctx context.Context, id string, actorID string) (PayrollResponse, error)

	// MarkPaid transitions a finalized payroll to paid
	MarkPaid(ctx context.Context, id string, actorID string) (PayrollResponse, error)

	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)

	// Benefit / deduction inputs
	UpsertBenefit(ctx context.Context, req UpsertBenefitRequest) (BenefitResponse, error)
	UpsertDeduction(ctx context.Context, req UpsertDeductionRequest) (DeductionResponse, error)
	ListBenefits(ctx context.Context, employeeID string) ([]BenefitResponse, error)
	ListDeductions(ctx context.Context, employeeID string) ([]DeductionResponse, error)
	CopyFromDefault(ctx context.Context, req CopyFromDefaultRequest) (int, error)
}
