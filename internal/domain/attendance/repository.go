package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one day.
	// Used to enforce the one-row-per-employee-per-day invariant.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListForPeriod retrieves the not-yet-posted records of one employee
	// inside [from, to] inclusive, the input set for period aggregation.
	ListForPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// MarkPosted flips records to posted. Called when the covering period
	// summary is posted, inside the same transaction.
	MarkPosted(ctx context.Context, employeeID string, from, to time.Time) error

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error
}
