package attendance

import (
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateAttendanceRequest struct {
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"`
	TimeIn         *string `json:"time_in"`
	TimeOut        *string `json:"time_out"`
	BreakIn        *string `json:"break_in"`
	BreakOut       *string `json:"break_out"`
	NextDayTimeout *string `json:"next_day_timeout"`
	IsNightshift   bool    `json:"is_nightshift"`

	// Manual overrides for derived metrics; a zero value is treated the
	// same as "not supplied" and gets recomputed.
	LateMinutes      *int             `json:"late_minutes"`
	UndertimeMinutes *int             `json:"undertime_minutes"`
	HoursWorked      *decimal.Decimal `json:"hours_worked"`

	Overtime         *decimal.Decimal `json:"overtime"`
	TravelOrder      *decimal.Decimal `json:"travel_order"`
	SLVL             *decimal.Decimal `json:"slvl"`
	HolidayHours     *decimal.Decimal `json:"holiday_hours"`
	OTRegHoliday     *decimal.Decimal `json:"ot_reg_holiday"`
	OTSpecialHoliday *decimal.Decimal `json:"ot_special_holiday"`
	RetroMultiplier  *decimal.Decimal `json:"retromultiplier"`
	OffsetHours      *decimal.Decimal `json:"offset_hours"`
	TripCount        *decimal.Decimal `json:"trip_count"`
	RestDay          bool             `json:"restday"`
	CT               bool             `json:"ct"`
	CS               bool             `json:"cs"`
	OB               bool             `json:"ob"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.SLVL != nil && r.SLVL.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "slvl",
			Message: "slvl must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID             string  `json:"-"`
	TimeIn         *string `json:"time_in"`
	TimeOut        *string `json:"time_out"`
	BreakIn        *string `json:"break_in"`
	BreakOut       *string `json:"break_out"`
	NextDayTimeout *string `json:"next_day_timeout"`
	IsNightshift   *bool   `json:"is_nightshift"`

	Overtime         *decimal.Decimal `json:"overtime"`
	TravelOrder      *decimal.Decimal `json:"travel_order"`
	SLVL             *decimal.Decimal `json:"slvl"`
	HolidayHours     *decimal.Decimal `json:"holiday_hours"`
	OTRegHoliday     *decimal.Decimal `json:"ot_reg_holiday"`
	OTSpecialHoliday *decimal.Decimal `json:"ot_special_holiday"`
	RetroMultiplier  *decimal.Decimal `json:"retromultiplier"`
	OffsetHours      *decimal.Decimal `json:"offset_hours"`
	TripCount        *decimal.Decimal `json:"trip_count"`
	RestDay          *bool            `json:"restday"`
	CT               *bool            `json:"ct"`
	CS               *bool            `json:"cs"`
	OB               *bool            `json:"ob"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.SLVL != nil && r.SLVL.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "slvl",
			Message: "slvl must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	EmployeeID    string
	DateFrom      *string
	DateTo        *string
	PostingStatus *string
	Page          int
	Limit         int
}

type AttendanceResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	Date             string          `json:"date"`
	TimeIn           *string         `json:"time_in"`
	TimeOut          *string         `json:"time_out"`
	BreakIn          *string         `json:"break_in"`
	BreakOut         *string         `json:"break_out"`
	NextDayTimeout   *string         `json:"next_day_timeout"`
	IsNightshift     bool            `json:"is_nightshift"`
	LateMinutes      int             `json:"late_minutes"`
	UndertimeMinutes int             `json:"undertime_minutes"`
	HoursWorked      decimal.Decimal `json:"hours_worked"`
	Overtime         decimal.Decimal `json:"overtime"`
	TravelOrder      decimal.Decimal `json:"travel_order"`
	SLVL             decimal.Decimal `json:"slvl"`
	HolidayHours     decimal.Decimal `json:"holiday_hours"`
	OTRegHoliday     decimal.Decimal `json:"ot_reg_holiday"`
	OTSpecialHoliday decimal.Decimal `json:"ot_special_holiday"`
	RetroMultiplier  decimal.Decimal `json:"retromultiplier"`
	OffsetHours      decimal.Decimal `json:"offset_hours"`
	TripCount        decimal.Decimal `json:"trip_count"`
	RestDay          bool            `json:"restday"`
	CT               bool            `json:"ct"`
	CS               bool            `json:"cs"`
	OB               bool            `json:"ob"`
	PostingStatus    string          `json:"posting_status"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Attendances []AttendanceResponse `json:"attendances"`
}
