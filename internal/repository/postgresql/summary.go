package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type summaryRepository struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) summary.SummaryRepository {
	return &summaryRepository{db: db}
}

const summaryColumns = `
	s.id, s.employee_id, s.year, s.month, s.period_type,
	s.days_worked, s.hours_worked, s.ot_hours, s.off_days, s.late_under_minutes,
	s.nsd_hours, s.slvl_days, s.retro, s.travel_order_hours, s.holiday_hours,
	s.ot_reg_holiday_hours, s.ot_special_holiday_hours, s.offset_hours, s.trip_count,
	s.has_ct, s.has_cs, s.has_ob,
	s.advance, s.charge_store, s.charge, s.meals, s.miscellaneous, s.other_deductions,
	s.mf_shares, s.mf_loan, s.sss_loan, s.hdmf_loan, s.hdmf_prem, s.sss_prem,
	s.philhealth, s.allowances,
	s.status, s.posted_by, s.posted_at, s.locked_by, s.locked_at, s.created_at, s.updated_at`

func scanSummary(row pgx.Row, dest *summary.PeriodSummary) error {
	return row.Scan(
		&dest.ID, &dest.EmployeeID, &dest.Year, &dest.Month, &dest.PeriodType,
		&dest.DaysWorked, &dest.HoursWorked, &dest.OTHours, &dest.OffDays, &dest.LateUnderMinutes,
		&dest.NSDHours, &dest.SLVLDays, &dest.Retro, &dest.TravelOrderHours, &dest.HolidayHours,
		&dest.OTRegHolidayHours, &dest.OTSpecialHolidayHours, &dest.OffsetHours, &dest.TripCount,
		&dest.HasCT, &dest.HasCS, &dest.HasOB,
		&dest.Advance, &dest.ChargeStore, &dest.Charge, &dest.Meals, &dest.Miscellaneous, &dest.OtherDeductions,
		&dest.MFShares, &dest.MFLoan, &dest.SSSLoan, &dest.HDMFLoan, &dest.HDMFPrem, &dest.SSSPrem,
		&dest.Philhealth, &dest.Allowances,
		&dest.Status, &dest.PostedBy, &dest.PostedAt, &dest.LockedBy, &dest.LockedAt, &dest.CreatedAt, &dest.UpdatedAt,
	)
}

// Upsert implements summary.SummaryRepository. Replaces an existing draft
// row for the same cutoff; a posted or locked row makes the update a no-op
// and surfaces as ErrSummaryNotDraft.
func (r *summaryRepository) Upsert(ctx context.Context, s summary.PeriodSummary) (summary.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO period_summaries (
			id, employee_id, year, month, period_type,
			days_worked, hours_worked, ot_hours, off_days, late_under_minutes,
			nsd_hours, slvl_days, retro, travel_order_hours, holiday_hours,
			ot_reg_holiday_hours, ot_special_holiday_hours, offset_hours, trip_count,
			has_ct, has_cs, has_ob,
			advance, charge_store, charge, meals, miscellaneous, other_deductions,
			mf_shares, mf_loan, sss_loan, hdmf_loan, hdmf_prem, sss_prem,
			philhealth, allowances, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
			$29, $30, $31, $32, $33, $34, $35, $36, $37
		)
		ON CONFLICT (employee_id, year, month, period_type) DO UPDATE SET
			days_worked = EXCLUDED.days_worked,
			hours_worked = EXCLUDED.hours_worked,
			ot_hours = EXCLUDED.ot_hours,
			off_days = EXCLUDED.off_days,
			late_under_minutes = EXCLUDED.late_under_minutes,
			nsd_hours = EXCLUDED.nsd_hours,
			slvl_days = EXCLUDED.slvl_days,
			retro = EXCLUDED.retro,
			travel_order_hours = EXCLUDED.travel_order_hours,
			holiday_hours = EXCLUDED.holiday_hours,
			ot_reg_holiday_hours = EXCLUDED.ot_reg_holiday_hours,
			ot_special_holiday_hours = EXCLUDED.ot_special_holiday_hours,
			offset_hours = EXCLUDED.offset_hours,
			trip_count = EXCLUDED.trip_count,
			has_ct = EXCLUDED.has_ct,
			has_cs = EXCLUDED.has_cs,
			has_ob = EXCLUDED.has_ob,
			advance = EXCLUDED.advance,
			charge_store = EXCLUDED.charge_store,
			charge = EXCLUDED.charge,
			meals = EXCLUDED.meals,
			miscellaneous = EXCLUDED.miscellaneous,
			other_deductions = EXCLUDED.other_deductions,
			mf_shares = EXCLUDED.mf_shares,
			mf_loan = EXCLUDED.mf_loan,
			sss_loan = EXCLUDED.sss_loan,
			hdmf_loan = EXCLUDED.hdmf_loan,
			hdmf_prem = EXCLUDED.hdmf_prem,
			sss_prem = EXCLUDED.sss_prem,
			philhealth = EXCLUDED.philhealth,
			allowances = EXCLUDED.allowances,
			updated_at = NOW()
		WHERE period_summaries.status = 'draft'
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.EmployeeID, s.Year, s.Month, s.PeriodType,
		s.DaysWorked, s.HoursWorked, s.OTHours, s.OffDays, s.LateUnderMinutes,
		s.NSDHours, s.SLVLDays, s.Retro, s.TravelOrderHours, s.HolidayHours,
		s.OTRegHolidayHours, s.OTSpecialHolidayHours, s.OffsetHours, s.TripCount,
		s.HasCT, s.HasCS, s.HasOB,
		s.Advance, s.ChargeStore, s.Charge, s.Meals, s.Miscellaneous, s.OtherDeductions,
		s.MFShares, s.MFLoan, s.SSSLoan, s.HDMFLoan, s.HDMFPrem, s.SSSPrem,
		s.Philhealth, s.Allowances, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return summary.PeriodSummary{}, summary.ErrSummaryNotDraft
		}
		return summary.PeriodSummary{}, fmt.Errorf("failed to upsert summary: %w", err)
	}

	return s, nil
}

// GetByID implements summary.SummaryRepository.
func (r *summaryRepository) GetByID(ctx context.Context, id string) (summary.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `, e.name
		FROM period_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	var s summary.PeriodSummary
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.EmployeeID, &s.Year, &s.Month, &s.PeriodType,
		&s.DaysWorked, &s.HoursWorked, &s.OTHours, &s.OffDays, &s.LateUnderMinutes,
		&s.NSDHours, &s.SLVLDays, &s.Retro, &s.TravelOrderHours, &s.HolidayHours,
		&s.OTRegHolidayHours, &s.OTSpecialHolidayHours, &s.OffsetHours, &s.TripCount,
		&s.HasCT, &s.HasCS, &s.HasOB,
		&s.Advance, &s.ChargeStore, &s.Charge, &s.Meals, &s.Miscellaneous, &s.OtherDeductions,
		&s.MFShares, &s.MFLoan, &s.SSSLoan, &s.HDMFLoan, &s.HDMFPrem, &s.SSSPrem,
		&s.Philhealth, &s.Allowances,
		&s.Status, &s.PostedBy, &s.PostedAt, &s.LockedBy, &s.LockedAt, &s.CreatedAt, &s.UpdatedAt,
		&s.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return summary.PeriodSummary{}, summary.ErrSummaryNotFound
		}
		return summary.PeriodSummary{}, fmt.Errorf("failed to get summary: %w", err)
	}

	return s, nil
}

// GetByEmployeePeriod implements summary.SummaryRepository.
func (r *summaryRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int, periodType summary.PeriodType) (*summary.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM period_summaries s
		WHERE s.employee_id = $1
		  AND s.year = $2
		  AND s.month = $3
		  AND s.period_type = $4
		LIMIT 1
	`

	var s summary.PeriodSummary
	err := scanSummary(q.QueryRow(ctx, query, employeeID, year, month, periodType), &s)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get summary by period: %w", err)
	}

	return &s, nil
}

// MarkPosted implements summary.SummaryRepository.
func (r *summaryRepository) MarkPosted(ctx context.Context, id string, actorID string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE period_summaries
		SET status = 'posted', posted_by = $2, posted_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, actorID, at)
	if err != nil {
		return fmt.Errorf("failed to mark summary posted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return summary.ErrSummaryNotFound
	}

	return nil
}

// MarkLocked implements summary.SummaryRepository. Leaves the posting stamp
// untouched; locking records its own actor and time.
func (r *summaryRepository) MarkLocked(ctx context.Context, id string, actorID string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE period_summaries
		SET status = 'locked', locked_by = $2, locked_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, actorID, at)
	if err != nil {
		return fmt.Errorf("failed to mark summary locked: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return summary.ErrSummaryNotFound
	}

	return nil
}

// List implements summary.SummaryRepository.
func (r *summaryRepository) List(ctx context.Context, filter summary.SummaryFilter) ([]summary.PeriodSummary, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("s.year = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("s.month = $%d", argPos))
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.PeriodType != nil {
		conditions = append(conditions, fmt.Sprintf("s.period_type = $%d", argPos))
		args = append(args, *filter.PeriodType)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM period_summaries s WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count summaries: %w", err)
	}

	query := `
		SELECT ` + summaryColumns + `, e.name
		FROM period_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE ` + where + `
		ORDER BY s.year DESC, s.month DESC, s.period_type, e.name
	`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list summaries: %w", err)
	}
	defer rows.Close()

	var records []summary.PeriodSummary
	for rows.Next() {
		var s summary.PeriodSummary
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Year, &s.Month, &s.PeriodType,
			&s.DaysWorked, &s.HoursWorked, &s.OTHours, &s.OffDays, &s.LateUnderMinutes,
			&s.NSDHours, &s.SLVLDays, &s.Retro, &s.TravelOrderHours, &s.HolidayHours,
			&s.OTRegHolidayHours, &s.OTSpecialHolidayHours, &s.OffsetHours, &s.TripCount,
			&s.HasCT, &s.HasCS, &s.HasOB,
			&s.Advance, &s.ChargeStore, &s.Charge, &s.Meals, &s.Miscellaneous, &s.OtherDeductions,
			&s.MFShares, &s.MFLoan, &s.SSSLoan, &s.HDMFLoan, &s.HDMFPrem, &s.SSSPrem,
			&s.Philhealth, &s.Allowances,
			&s.Status, &s.PostedBy, &s.PostedAt, &s.LockedBy, &s.LockedAt, &s.CreatedAt, &s.UpdatedAt,
			&s.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan summary: %w", err)
		}
		records = append(records, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read summaries: %w", err)
	}

	return records, total, nil
}
