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

type benefitRepository struct {
	db *database.DB
}

func NewBenefitRepository(db *database.DB) payroll.BenefitRepository {
	return &benefitRepository{db: db}
}

const benefitColumns = `
	b.id, b.employee_id, b.year, b.month, b.cutoff, b.is_default,
	b.mf_shares, b.sss_loan, b.hdmf_loan, b.hdmf_prem, b.sss_prem,
	b.philhealth, b.allowances, b.created_at, b.updated_at`

func scanBenefit(row pgx.Row) (payroll.Benefit, error) {
	var b payroll.Benefit
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.Year, &b.Month, &b.Cutoff, &b.IsDefault,
		&b.MFShares, &b.SSSLoan, &b.HDMFLoan, &b.HDMFPrem, &b.SSSPrem,
		&b.Philhealth, &b.Allowances, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// Upsert implements payroll.BenefitRepository. Default template rows are
// keyed by (employee, cutoff), period rows by (employee, year, month, cutoff).
func (r *benefitRepository) Upsert(ctx context.Context, b payroll.Benefit) (payroll.Benefit, error) {
	q := GetQuerier(ctx, r.db)

	var existing *payroll.Benefit
	var err error
	if b.IsDefault {
		existing, err = r.GetDefault(ctx, b.EmployeeID, b.Cutoff)
	} else {
		existing, err = r.GetByEmployeePeriod(ctx, b.EmployeeID, b.Year, b.Month, b.Cutoff)
	}
	if err != nil {
		return payroll.Benefit{}, err
	}

	if existing != nil {
		b.ID = existing.ID
		query := `
			UPDATE benefits SET
				mf_shares = $2, sss_loan = $3, hdmf_loan = $4, hdmf_prem = $5,
				sss_prem = $6, philhealth = $7, allowances = $8, updated_at = NOW()
			WHERE id = $1
			RETURNING created_at, updated_at
		`
		err = q.QueryRow(ctx, query,
			b.ID, b.MFShares, b.SSSLoan, b.HDMFLoan, b.HDMFPrem,
			b.SSSPrem, b.Philhealth, b.Allowances,
		).Scan(&b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return payroll.Benefit{}, fmt.Errorf("failed to update benefit: %w", err)
		}
		return b, nil
	}

	b.ID = uuid.NewString()
	query := `
		INSERT INTO benefits (
			id, employee_id, year, month, cutoff, is_default,
			mf_shares, sss_loan, hdmf_loan, hdmf_prem, sss_prem,
			philhealth, allowances
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		b.ID, b.EmployeeID, b.Year, b.Month, b.Cutoff, b.IsDefault,
		b.MFShares, b.SSSLoan, b.HDMFLoan, b.HDMFPrem, b.SSSPrem,
		b.Philhealth, b.Allowances,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return payroll.Benefit{}, fmt.Errorf("failed to create benefit: %w", err)
	}

	return b, nil
}

// GetByEmployeePeriod implements payroll.BenefitRepository.
func (r *benefitRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int, cutoff summary.PeriodType) (*payroll.Benefit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + benefitColumns + `
		FROM benefits b
		WHERE b.employee_id = $1
		  AND b.year = $2
		  AND b.month = $3
		  AND b.cutoff = $4
		  AND NOT b.is_default
		LIMIT 1
	`

	b, err := scanBenefit(q.QueryRow(ctx, query, employeeID, year, month, cutoff))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get benefit: %w", err)
	}

	return &b, nil
}

// GetDefault implements payroll.BenefitRepository.
func (r *benefitRepository) GetDefault(ctx context.Context, employeeID string, cutoff summary.PeriodType) (*payroll.Benefit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + benefitColumns + `
		FROM benefits b
		WHERE b.employee_id = $1
		  AND b.cutoff = $2
		  AND b.is_default
		LIMIT 1
	`

	b, err := scanBenefit(q.QueryRow(ctx, query, employeeID, cutoff))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get default benefit: %w", err)
	}

	return &b, nil
}

// ListByEmployee implements payroll.BenefitRepository.
func (r *benefitRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Benefit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + benefitColumns + `
		FROM benefits b
		WHERE b.employee_id = $1
		ORDER BY b.is_default DESC, b.year DESC, b.month DESC, b.cutoff
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}
	defer rows.Close()

	var records []payroll.Benefit
	for rows.Next() {
		b, err := scanBenefit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan benefit: %w", err)
		}
		records = append(records, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read benefits: %w", err)
	}

	return records, nil
}
