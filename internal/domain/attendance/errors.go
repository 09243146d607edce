package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound      = errors.New("attendance record not found")
	ErrAttendanceAlreadyExists = errors.New("attendance record already exists for this employee and date")
	ErrAttendancePosted        = errors.New("attendance record already posted, cannot modify")
)
