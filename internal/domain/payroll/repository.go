package payroll

import (
	"context"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
)

// PayrollRepository defines data access methods for final payrolls.
type PayrollRepository interface {
	// Create inserts a new final payroll. The unique index on
	// (employee_id, year, month, period_type) is the duplicate backstop.
	Create(ctx context.Context, p FinalPayroll) (FinalPayroll, error)

	// GetByID retrieves a final payroll by ID
	GetByID(ctx context.Context, id string) (FinalPayroll, error)

	// GetByEmployeePeriod retrieves the payroll for one employee and cutoff
	GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int, periodType summary.PeriodType) (*FinalPayroll, error)

	// Update rewrites all mutable fields of an existing payroll
	Update(ctx context.Context, p FinalPayroll) error

	// List retrieves payrolls with filters and pagination
	List(ctx context.Context, filter PayrollFilter) ([]FinalPayroll, int64, error)
}

// BenefitRepository defines data access methods for benefit records.
type BenefitRepository interface {
	Upsert(ctx context.Context, b Benefit) (Benefit, error)

	// GetByEmployeePeriod returns the period-specific row, nil when absent
	GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int, cutoff summary.PeriodType) (*Benefit, error)

	// GetDefault returns the employee's template row for a cutoff, nil when absent
	GetDefault(ctx context.Context, employeeID string, cutoff summary.PeriodType) (*Benefit, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]Benefit, error)
}

// DeductionRepository defines data access methods for deduction records.
type DeductionRepository interface {
	Upsert(ctx context.Context, d Deduction) (Deduction, error)

	GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int, cutoff summary.PeriodType) (*Deduction, error)

	GetDefault(ctx context.Context, employeeID string, cutoff summary.PeriodType) (*Deduction, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]Deduction, error)
}
