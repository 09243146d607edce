package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/attendance"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.time_in, a.time_out, a.break_in, a.break_out, a.next_day_timeout, a.is_nightshift,
	a.late_minutes, a.undertime_minutes, a.hours_worked,
	a.overtime, a.travel_order, a.slvl, a.holiday_hours,
	a.ot_reg_holiday, a.ot_special_holiday, a.retro_multiplier,
	a.offset_hours, a.trip_count,
	a.rest_day, a.ct, a.cs, a.ob,
	a.posting_status, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.TimeIn, &att.TimeOut, &att.BreakIn, &att.BreakOut, &att.NextDayTimeout, &att.IsNightshift,
		&att.LateMinutes, &att.UndertimeMinutes, &att.HoursWorked,
		&att.Overtime, &att.TravelOrder, &att.SLVL, &att.HolidayHours,
		&att.OTRegHoliday, &att.OTSpecialHoliday, &att.RetroMultiplier,
		&att.OffsetHours, &att.TripCount,
		&att.RestDay, &att.CT, &att.CS, &att.OB,
		&att.PostingStatus, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	newAttendance.ID = uuid.NewString()

	query := `
		INSERT INTO attendances (
			id, employee_id, date,
			time_in, time_out, break_in, break_out, next_day_timeout, is_nightshift,
			late_minutes, undertime_minutes, hours_worked,
			overtime, travel_order, slvl, holiday_hours,
			ot_reg_holiday, ot_special_holiday, retro_multiplier,
			offset_hours, trip_count,
			rest_day, ct, cs, ob, posting_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.TimeIn,
		newAttendance.TimeOut,
		newAttendance.BreakIn,
		newAttendance.BreakOut,
		newAttendance.NextDayTimeout,
		newAttendance.IsNightshift,
		newAttendance.LateMinutes,
		newAttendance.UndertimeMinutes,
		newAttendance.HoursWorked,
		newAttendance.Overtime,
		newAttendance.TravelOrder,
		newAttendance.SLVL,
		newAttendance.HolidayHours,
		newAttendance.OTRegHoliday,
		newAttendance.OTSpecialHoliday,
		newAttendance.RetroMultiplier,
		newAttendance.OffsetHours,
		newAttendance.TripCount,
		newAttendance.RestDay,
		newAttendance.CT,
		newAttendance.CS,
		newAttendance.OB,
		newAttendance.PostingStatus,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "attendances_employee_date_key") {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.TimeIn, &att.TimeOut, &att.BreakIn, &att.BreakOut, &att.NextDayTimeout, &att.IsNightshift,
		&att.LateMinutes, &att.UndertimeMinutes, &att.HoursWorked,
		&att.Overtime, &att.TravelOrder, &att.SLVL, &att.HolidayHours,
		&att.OTRegHoliday, &att.OTSpecialHoliday, &att.RetroMultiplier,
		&att.OffsetHours, &att.TripCount,
		&att.RestDay, &att.CT, &att.CS, &att.OB,
		&att.PostingStatus, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			time_in = $2, time_out = $3, break_in = $4, break_out = $5,
			next_day_timeout = $6, is_nightshift = $7,
			late_minutes = $8, undertime_minutes = $9, hours_worked = $10,
			overtime = $11, travel_order = $12, slvl = $13, holiday_hours = $14,
			ot_reg_holiday = $15, ot_special_holiday = $16, retro_multiplier = $17,
			offset_hours = $18, trip_count = $19,
			rest_day = $20, ct = $21, cs = $22, ob = $23,
			posting_status = $24, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.TimeIn, att.TimeOut, att.BreakIn, att.BreakOut,
		att.NextDayTimeout, att.IsNightshift,
		att.LateMinutes, att.UndertimeMinutes, att.HoursWorked,
		att.Overtime, att.TravelOrder, att.SLVL, att.HolidayHours,
		att.OTRegHoliday, att.OTSpecialHoliday, att.RetroMultiplier,
		att.OffsetHours, att.TripCount,
		att.RestDay, att.CT, att.CS, att.OB,
		att.PostingStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argPos))
		args = append(args, *filter.DateFrom)
		argPos++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argPos))
		args = append(args, *filter.DateTo)
		argPos++
	}
	if filter.PostingStatus != nil {
		conditions = append(conditions, fmt.Sprintf("a.posting_status = $%d", argPos))
		args = append(args, *filter.PostingStatus)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + where + `
		ORDER BY a.date DESC, e.name
	`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date,
			&att.TimeIn, &att.TimeOut, &att.BreakIn, &att.BreakOut, &att.NextDayTimeout, &att.IsNightshift,
			&att.LateMinutes, &att.UndertimeMinutes, &att.HoursWorked,
			&att.Overtime, &att.TravelOrder, &att.SLVL, &att.HolidayHours,
			&att.OTRegHoliday, &att.OTSpecialHoliday, &att.RetroMultiplier,
			&att.OffsetHours, &att.TripCount,
			&att.RestDay, &att.CT, &att.CS, &att.OB,
			&att.PostingStatus, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read attendances: %w", err)
	}

	return records, total, nil
}

// ListForPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListForPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date BETWEEN $2 AND $3
		  AND a.posting_status = $4
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to, attendance.PostingStatusNotPosted)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for period: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendances: %w", err)
	}

	return records, nil
}

// MarkPosted implements attendance.AttendanceRepository.
func (r *attendanceRepository) MarkPosted(ctx context.Context, employeeID string, from, to time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET posting_status = $4, updated_at = NOW()
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		  AND posting_status = $5
	`

	if _, err := q.Exec(ctx, query, employeeID, from, to, attendance.PostingStatusPosted, attendance.PostingStatusNotPosted); err != nil {
		return fmt.Errorf("failed to mark attendances posted: %w", err)
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
