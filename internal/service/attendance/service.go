package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/attendance"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/employee"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	logger *slog.Logger
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		logger:               logger,
	}
}

// parseClock resolves a clock string against the attendance date. Accepts a
// full "2006-01-02 15:04:05" timestamp or a bare clock combined with the
// date. A malformed value is logged and dropped, never fatal: one bad row
// must not halt attendance processing.
func (a *AttendanceServiceImpl) parseClock(date time.Time, field string, value *string, nextDay bool) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", *value); err == nil {
		return &t
	}
	layouts := []string{"15:04:05", "15:04"}
	for _, layout := range layouts {
		if clock, err := time.Parse(layout, *value); err == nil {
			day := date
			if nextDay {
				day = date.AddDate(0, 0, 1)
			}
			t := time.Date(day.Year(), day.Month(), day.Day(),
				clock.Hour(), clock.Minute(), clock.Second(), 0, date.Location())
			return &t
		}
	}
	a.logger.Warn("unparseable clock value, treating as empty",
		slog.String("field", field),
		slog.String("value", *value),
		slog.String("date", date.Format("2006-01-02")),
	)
	return nil
}

// CreateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	if _, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceAlreadyExists
	}

	record := attendance.Attendance{
		EmployeeID:     req.EmployeeID,
		Date:           date,
		TimeIn:         a.parseClock(date, "time_in", req.TimeIn, false),
		TimeOut:        a.parseClock(date, "time_out", req.TimeOut, false),
		BreakIn:        a.parseClock(date, "break_in", req.BreakIn, false),
		BreakOut:       a.parseClock(date, "break_out", req.BreakOut, false),
		NextDayTimeout: a.parseClock(date, "next_day_timeout", req.NextDayTimeout, true),
		IsNightshift:   req.IsNightshift,

		Overtime:         derefDecimal(req.Overtime),
		TravelOrder:      derefDecimal(req.TravelOrder),
		SLVL:             derefDecimal(req.SLVL),
		HolidayHours:     derefDecimal(req.HolidayHours),
		OTRegHoliday:     derefDecimal(req.OTRegHoliday),
		OTSpecialHoliday: derefDecimal(req.OTSpecialHoliday),
		RetroMultiplier:  derefDecimal(req.RetroMultiplier),
		OffsetHours:      derefDecimal(req.OffsetHours),
		TripCount:        derefDecimal(req.TripCount),
		RestDay:          req.RestDay,
		CT:               req.CT,
		CS:               req.CS,
		OB:               req.OB,

		PostingStatus: attendance.PostingStatusNotPosted,
	}

	// Manual metric values; zero-valued ones are recomputed below
	if req.LateMinutes != nil {
		record.LateMinutes = *req.LateMinutes
	}
	if req.UndertimeMinutes != nil {
		record.UndertimeMinutes = *req.UndertimeMinutes
	}
	if req.HoursWorked != nil {
		record.HoursWorked = *req.HoursWorked
	} else {
		record.HoursWorked = decimal.Zero
	}

	RecalculateMetrics(&record, false)

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if record.PostingStatus == attendance.PostingStatusPosted {
		return attendance.AttendanceResponse{}, attendance.ErrAttendancePosted
	}

	before := record

	if req.TimeIn != nil {
		record.TimeIn = a.parseClock(record.Date, "time_in", req.TimeIn, false)
	}
	if req.TimeOut != nil {
		record.TimeOut = a.parseClock(record.Date, "time_out", req.TimeOut, false)
	}
	if req.BreakIn != nil {
		record.BreakIn = a.parseClock(record.Date, "break_in", req.BreakIn, false)
	}
	if req.BreakOut != nil {
		record.BreakOut = a.parseClock(record.Date, "break_out", req.BreakOut, false)
	}
	if req.NextDayTimeout != nil {
		record.NextDayTimeout = a.parseClock(record.Date, "next_day_timeout", req.NextDayTimeout, true)
	}
	if req.IsNightshift != nil {
		record.IsNightshift = *req.IsNightshift
	}

	if req.Overtime != nil {
		record.Overtime = *req.Overtime
	}
	if req.TravelOrder != nil {
		record.TravelOrder = *req.TravelOrder
	}
	if req.SLVL != nil {
		record.SLVL = *req.SLVL
	}
	if req.HolidayHours != nil {
		record.HolidayHours = *req.HolidayHours
	}
	if req.OTRegHoliday != nil {
		record.OTRegHoliday = *req.OTRegHoliday
	}
	if req.OTSpecialHoliday != nil {
		record.OTSpecialHoliday = *req.OTSpecialHoliday
	}
	if req.RetroMultiplier != nil {
		record.RetroMultiplier = *req.RetroMultiplier
	}
	if req.OffsetHours != nil {
		record.OffsetHours = *req.OffsetHours
	}
	if req.TripCount != nil {
		record.TripCount = *req.TripCount
	}
	if req.RestDay != nil {
		record.RestDay = *req.RestDay
	}
	if req.CT != nil {
		record.CT = *req.CT
	}
	if req.CS != nil {
		record.CS = *req.CS
	}
	if req.OB != nil {
		record.OB = *req.OB
	}

	// Raw time change forces a full recompute of the derived metrics
	if !record.RawTimesEqual(before) {
		RecalculateMetrics(&record, true)
	}

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return mapAttendanceToResponse(record), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapAttendanceToResponse(record))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: responses,
	}, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to get attendance: %w", err)
	}

	if record.PostingStatus == attendance.PostingStatusPosted {
		return attendance.ErrAttendancePosted
	}

	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	return nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(record attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if record.EmployeeName != nil {
		employeeName = *record.EmployeeName
	}

	return attendance.AttendanceResponse{
		ID:               record.ID,
		EmployeeID:       record.EmployeeID,
		EmployeeName:     employeeName,
		Date:             record.Date.Format("2006-01-02"),
		TimeIn:           timePtrToString(record.TimeIn),
		TimeOut:          timePtrToString(record.TimeOut),
		BreakIn:          timePtrToString(record.BreakIn),
		BreakOut:         timePtrToString(record.BreakOut),
		NextDayTimeout:   timePtrToString(record.NextDayTimeout),
		IsNightshift:     record.IsNightshift,
		LateMinutes:      record.LateMinutes,
		UndertimeMinutes: record.UndertimeMinutes,
		HoursWorked:      record.HoursWorked,
		Overtime:         record.Overtime,
		TravelOrder:      record.TravelOrder,
		SLVL:             record.SLVL,
		HolidayHours:     record.HolidayHours,
		OTRegHoliday:     record.OTRegHoliday,
		OTSpecialHoliday: record.OTSpecialHoliday,
		RetroMultiplier:  record.RetroMultiplier,
		OffsetHours:      record.OffsetHours,
		TripCount:        record.TripCount,
		RestDay:          record.RestDay,
		CT:               record.CT,
		CS:               record.CS,
		OB:               record.OB,
		PostingStatus:    string(record.PostingStatus),
		CreatedAt:        record.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        record.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
