package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/payroll"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) payroll.DeductionRepository {
	return &deductionRepository{db: db}
}

const deductionColumns = `
	d.id, d.employee_id, d.year, d.month, d.cutoff, d.is_default,
	d.advance, d.charge_store, d.charge, d.meals, d.miscellaneous,
	d.other_deductions, d.created_at, d.updated_at`

func scanDeduction(row pgx.Row) (payroll.Deduction, error) {
	var d payroll.Deduction
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.Year, &d.Month, &d.Cutoff, &d.IsDefault,
		&d.Advance, &d.ChargeStore, &d.Charge, &d.Meals, &d.Miscellaneous,
		&d.OtherDeductions, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// Upsert implements payroll.DeductionRepository.
func (r *deductionRepository) Upsert(ctx context.Context, d payroll.Deduction) (payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	var existing *payroll.Deduction
	var err error
	if d.IsDefault {
		existing, err = r.GetDefault(ctx, d.EmployeeID, d.Cutoff)
	} else {
		existing, err = r.GetByEmployeePeriod(ctx, d.EmployeeID, d.Year, d.Month, d.Cutoff)
	}
	if err != nil {
		return payroll.Deduction{}, err
	}

	if existing != nil {
		d.ID = existing.ID
		query := `
			UPDATE deductions SET
				advance = $2, charge_store = $3, charge = $4, meals = $5,
				miscellaneous = $6, other_deductions = $7, updated_at = NOW()
			WHERE id = $1
			RETURNING created_at, updated_at
		`
		err = q.QueryRow(ctx, query,
			d.ID, d.Advance, d.ChargeStore, d.Charge, d.Meals,
			d.Miscellaneous, d.OtherDeductions,
		).Scan(&d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return payroll.Deduction{}, fmt.Errorf("failed to update deduction: %w", err)
		}
		return d, nil
	}

	d.ID = uuid.NewString()
	query := `
		INSERT INTO deductions (
			id, employee_id, year, month, cutoff, is_default,
			advance, charge_store, charge, meals, miscellaneous, other_deductions
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		d.ID, d.EmployeeID, d.Year, d.Month, d.Cutoff, d.IsDefault,
		d.Advance, d.ChargeStore, d.Charge, d.Meals, d.Miscellaneous, d.OtherDeductions,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return payroll.Deduction{}, fmt.Errorf("failed to create deduction: %w", err)
	}

	return d, nil
}

// GetByEmployeePeriod implements payroll.DeductionRepository.
func (r *deductionRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int, cutoff summary.PeriodType) (*payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions d
		WHERE d.employee_id = $1
		  AND d.year = $2
		  AND d.month = $3
		  AND d.cutoff = $4
		  AND NOT d.is_default
		LIMIT 1
	`

	d, err := scanDeduction(q.QueryRow(ctx, query, employeeID, year, month, cutoff))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deduction: %w", err)
	}

	return &d, nil
}

// GetDefault implements payroll.DeductionRepository.
func (r *deductionRepository) GetDefault(ctx context.Context, employeeID string, cutoff summary.PeriodType) (*payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions d
		WHERE d.employee_id = $1
		  AND d.cutoff = $2
		  AND d.is_default
		LIMIT 1
	`

	d, err := scanDeduction(q.QueryRow(ctx, query, employeeID, cutoff))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get default deduction: %w", err)
	}

	return &d, nil
}

// ListByEmployee implements payroll.DeductionRepository.
func (r *deductionRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions d
		WHERE d.employee_id = $1
		ORDER BY d.is_default DESC, d.year DESC, d.month DESC, d.cutoff
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var records []payroll.Deduction
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		records = append(records, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deductions: %w", err)
	}

	return records, nil
}
