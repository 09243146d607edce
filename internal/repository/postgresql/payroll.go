package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/payroll"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.summary_id, p.employee_id, p.year, p.month, p.period_type,
	p.employee_name, p.department, p.job_title, p.pay_type, p.basic_rate,
	p.pay_allowance, p.is_taxable,
	p.days_worked, p.hours_worked, p.late_under_minutes, p.late_under_hours,
	p.ot_regular_hours, p.nsd_hours, p.holiday_hours,
	p.ot_regular_holiday_hours, p.ot_special_holiday_hours, p.travel_order_hours,
	p.slvl_days, p.retro_amount, p.offset_hours, p.trip_count,
	p.has_ct, p.has_cs, p.has_ob,
	p.absence_days, p.ot_rest_day_hours, p.other_earnings,
	p.mf_shares, p.mf_loan, p.sss_loan, p.hdmf_loan,
	p.advance_deduction, p.charge_store, p.charge_deduction,
	p.meals_deduction, p.miscellaneous_deduction, p.other_deductions,
	p.basic_pay, p.allowances, p.late_under_deduction, p.absence_deduction,
	p.ot_regular_amount, p.ot_rest_day_amount, p.ot_special_holiday_amount,
	p.ot_regular_holiday_amount, p.overtime_pay,
	p.nsd_amount, p.holiday_amount, p.travel_order_amount, p.slvl_amount,
	p.offset_amount, p.trip_amount, p.premium_pay,
	p.total_company_deductions, p.total_other_deductions,
	p.sss_contribution, p.philhealth_contribution, p.hdmf_contribution,
	p.total_government_deductions, p.taxable_income, p.withholding_tax,
	p.gross_earnings, p.total_deductions, p.net_pay,
	p.status, p.approval_status, p.approved_by, p.approved_at, p.approval_remarks,
	p.finalized_by, p.finalized_at, p.paid_by, p.paid_at,
	p.created_at, p.updated_at`

func scanPayroll(row pgx.Row) (payroll.FinalPayroll, error) {
	var p payroll.FinalPayroll
	err := row.Scan(
		&p.ID, &p.SummaryID, &p.EmployeeID, &p.Year, &p.Month, &p.PeriodType,
		&p.EmployeeName, &p.Department, &p.JobTitle, &p.PayType, &p.BasicRate,
		&p.PayAllowance, &p.IsTaxable,
		&p.DaysWorked, &p.HoursWorked, &p.LateUnderMinutes, &p.LateUnderHours,
		&p.OTRegularHours, &p.NSDHours, &p.HolidayHours,
		&p.OTRegularHolidayHours, &p.OTSpecialHolidayHours, &p.TravelOrderHours,
		&p.SLVLDays, &p.RetroAmount, &p.OffsetHours, &p.TripCount,
		&p.HasCT, &p.HasCS, &p.HasOB,
		&p.AbsenceDays, &p.OTRestDayHours, &p.OtherEarnings,
		&p.MFShares, &p.MFLoan, &p.SSSLoan, &p.HDMFLoan,
		&p.AdvanceDeduction, &p.ChargeStore, &p.ChargeDeduction,
		&p.MealsDeduction, &p.MiscellaneousDeduction, &p.OtherDeductions,
		&p.BasicPay, &p.Allowances, &p.LateUnderDeduction, &p.AbsenceDeduction,
		&p.OTRegularAmount, &p.OTRestDayAmount, &p.OTSpecialHolidayAmount,
		&p.OTRegularHolidayAmount, &p.OvertimePay,
		&p.NSDAmount, &p.HolidayAmount, &p.TravelOrderAmount, &p.SLVLAmount,
		&p.OffsetAmount, &p.TripAmount, &p.PremiumPay,
		&p.TotalCompanyDeductions, &p.TotalOtherDeductions,
		&p.SSSContribution, &p.PhilhealthContribution, &p.HDMFContribution,
		&p.TotalGovernmentDeductions, &p.TaxableIncome, &p.WithholdingTax,
		&p.GrossEarnings, &p.TotalDeductions, &p.NetPay,
		&p.Status, &p.ApprovalStatus, &p.ApprovedBy, &p.ApprovedAt, &p.ApprovalRemarks,
		&p.FinalizedBy, &p.FinalizedAt, &p.PaidBy, &p.PaidAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, p payroll.FinalPayroll) (payroll.FinalPayroll, error) {
	q := GetQuerier(ctx, r.db)

	p.ID = uuid.NewString()

	query := `
		INSERT INTO final_payrolls (
			id, summary_id, employee_id, year, month, period_type,
			employee_name, department, job_title, pay_type, basic_rate,
			pay_allowance, is_taxable,
			days_worked, hours_worked, late_under_minutes, late_under_hours,
			ot_regular_hours, nsd_hours, holiday_hours,
			ot_regular_holiday_hours, ot_special_holiday_hours, travel_order_hours,
			slvl_days, retro_amount, offset_hours, trip_count,
			has_ct, has_cs, has_ob,
			absence_days, ot_rest_day_hours, other_earnings,
			mf_shares, mf_loan, sss_loan, hdmf_loan,
			advance_deduction, charge_store, charge_deduction,
			meals_deduction, miscellaneous_deduction, other_deductions,
			basic_pay, allowances, late_under_deduction, absence_deduction,
			ot_regular_amount, ot_rest_day_amount, ot_special_holiday_amount,
			ot_regular_holiday_amount, overtime_pay,
			nsd_amount, holiday_amount, travel_order_amount, slvl_amount,
			offset_amount, trip_amount, premium_pay,
			total_company_deductions, total_other_deductions,
			sss_contribution, philhealth_contribution, hdmf_contribution,
			total_government_deductions, taxable_income, withholding_tax,
			gross_earnings, total_deductions, net_pay,
			status, approval_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
			$29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41,
			$42, $43, $44, $45, $46, $47, $48, $49, $50, $51, $52, $53, $54,
			$55, $56, $57, $58, $59, $60, $61, $62, $63, $64, $65, $66, $67,
			$68, $69, $70, $71, $72
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.SummaryID, p.EmployeeID, p.Year, p.Month, p.PeriodType,
		p.EmployeeName, p.Department, p.JobTitle, p.PayType, p.BasicRate,
		p.PayAllowance, p.IsTaxable,
		p.DaysWorked, p.HoursWorked, p.LateUnderMinutes, p.LateUnderHours,
		p.OTRegularHours, p.NSDHours, p.HolidayHours,
		p.OTRegularHolidayHours, p.OTSpecialHolidayHours, p.TravelOrderHours,
		p.SLVLDays, p.RetroAmount, p.OffsetHours, p.TripCount,
		p.HasCT, p.HasCS, p.HasOB,
		p.AbsenceDays, p.OTRestDayHours, p.OtherEarnings,
		p.MFShares, p.MFLoan, p.SSSLoan, p.HDMFLoan,
		p.AdvanceDeduction, p.ChargeStore, p.ChargeDeduction,
		p.MealsDeduction, p.MiscellaneousDeduction, p.OtherDeductions,
		p.BasicPay, p.Allowances, p.LateUnderDeduction, p.AbsenceDeduction,
		p.OTRegularAmount, p.OTRestDayAmount, p.OTSpecialHolidayAmount,
		p.OTRegularHolidayAmount, p.OvertimePay,
		p.NSDAmount, p.HolidayAmount, p.TravelOrderAmount, p.SLVLAmount,
		p.OffsetAmount, p.TripAmount, p.PremiumPay,
		p.TotalCompanyDeductions, p.TotalOtherDeductions,
		p.SSSContribution, p.PhilhealthContribution, p.HDMFContribution,
		p.TotalGovernmentDeductions, p.TaxableIncome, p.WithholdingTax,
		p.GrossEarnings, p.TotalDeductions, p.NetPay,
		p.Status, p.ApprovalStatus,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "final_payrolls_employee_period_key") {
			return payroll.FinalPayroll{}, payroll.ErrFinalPayrollAlreadyExists
		}
		return payroll.FinalPayroll{}, fmt.Errorf("failed to create final payroll: %w", err)
	}

	return p, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.FinalPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM final_payrolls p WHERE p.id = $1`

	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.FinalPayroll{}, payroll.ErrFinalPayrollNotFound
		}
		return payroll.FinalPayroll{}, fmt.Errorf("failed to get final payroll: %w", err)
	}

	return p, nil
}

// GetByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int, periodType summary.PeriodType) (*payroll.FinalPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM final_payrolls p
		WHERE p.employee_id = $1
		  AND p.year = $2
		  AND p.month = $3
		  AND p.period_type = $4
		LIMIT 1
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, year, month, periodType))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get final payroll by period: %w", err)
	}

	return &p, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepository) Update(ctx context.Context, p payroll.FinalPayroll) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE final_payrolls SET
			absence_days = $2, ot_rest_day_hours = $3, other_earnings = $4,
			mf_shares = $5, mf_loan = $6, sss_loan = $7, hdmf_loan = $8,
			advance_deduction = $9, charge_store = $10, charge_deduction = $11,
			meals_deduction = $12, miscellaneous_deduction = $13, other_deductions = $14,
			basic_pay = $15, allowances = $16, late_under_hours = $17,
			late_under_deduction = $18, absence_deduction = $19,
			ot_regular_amount = $20, ot_rest_day_amount = $21,
			ot_special_holiday_amount = $22, ot_regular_holiday_amount = $23,
			overtime_pay = $24,
			nsd_amount = $25, holiday_amount = $26, travel_order_amount = $27,
			slvl_amount = $28, offset_amount = $29, trip_amount = $30, premium_pay = $31,
			total_company_deductions = $32, total_other_deductions = $33,
			sss_contribution = $34, philhealth_contribution = $35, hdmf_contribution = $36,
			total_government_deductions = $37, taxable_income = $38, withholding_tax = $39,
			gross_earnings = $40, total_deductions = $41, net_pay = $42,
			status = $43, approval_status = $44,
			approved_by = $45, approved_at = $46, approval_remarks = $47,
			finalized_by = $48, finalized_at = $49, paid_by = $50, paid_at = $51,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		p.ID,
		p.AbsenceDays, p.OTRestDayHours, p.OtherEarnings,
		p.MFShares, p.MFLoan, p.SSSLoan, p.HDMFLoan,
		p.AdvanceDeduction, p.ChargeStore, p.ChargeDeduction,
		p.MealsDeduction, p.MiscellaneousDeduction, p.OtherDeductions,
		p.BasicPay, p.Allowances, p.LateUnderHours,
		p.LateUnderDeduction, p.AbsenceDeduction,
		p.OTRegularAmount, p.OTRestDayAmount,
		p.OTSpecialHolidayAmount, p.OTRegularHolidayAmount,
		p.OvertimePay,
		p.NSDAmount, p.HolidayAmount, p.TravelOrderAmount,
		p.SLVLAmount, p.OffsetAmount, p.TripAmount, p.PremiumPay,
		p.TotalCompanyDeductions, p.TotalOtherDeductions,
		p.SSSContribution, p.PhilhealthContribution, p.HDMFContribution,
		p.TotalGovernmentDeductions, p.TaxableIncome, p.WithholdingTax,
		p.GrossEarnings, p.TotalDeductions, p.NetPay,
		p.Status, p.ApprovalStatus,
		p.ApprovedBy, p.ApprovedAt, p.ApprovalRemarks,
		p.FinalizedBy, p.FinalizedAt, p.PaidBy, p.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update final payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrFinalPayrollNotFound
	}

	return nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.FinalPayroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("p.year = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("p.month = $%d", argPos))
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.PeriodType != nil {
		conditions = append(conditions, fmt.Sprintf("p.period_type = $%d", argPos))
		args = append(args, *filter.PeriodType)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.ApprovalStatus != nil {
		conditions = append(conditions, fmt.Sprintf("p.approval_status = $%d", argPos))
		args = append(args, *filter.ApprovalStatus)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM final_payrolls p WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count final payrolls: %w", err)
	}

	query := `
		SELECT ` + payrollColumns + `
		FROM final_payrolls p
		WHERE ` + where + `
		ORDER BY p.year DESC, p.month DESC, p.period_type, p.employee_name
	`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list final payrolls: %w", err)
	}
	defer rows.Close()

	var records []payroll.FinalPayroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan final payroll: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read final payrolls: %w", err)
	}

	return records, total, nil
}
