package attendance

import (
	"time"

	"github.com/frahmantamala/hr-payroll/internal"
)

// Status values recorded for a day. The set is open-ended in the schema; these
// three are the ones aggregation cares about.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
)

// Attendance is one employee's status for one date. The (employee_id, date)
// pair is unique at the schema level.
type Attendance struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	EmployeeID int64     `json:"employee_id" gorm:"column:employee_id;not null"`
	Date       time.Time `json:"date" gorm:"column:date;type:date"`
	Status     string    `json:"status" gorm:"not null"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// Record is the list-view row: attendance joined to the employee master.
type Record struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

type AttendanceDTO struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (dto AttendanceDTO) Validate() error {
	if dto.EmployeeID <= 0 {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Date == "" {
		return internal.NewValidationError("date is required", internal.ErrCodeValidationFailed)
	}
	if _, err := time.Parse(time.DateOnly, dto.Date); err != nil {
		return internal.NewValidationError("date must be formatted YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if dto.Status == "" {
		return internal.NewValidationError("status is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// ParsedDate returns the DTO date as a time. Validate must have passed.
func (dto AttendanceDTO) ParsedDate() time.Time {
	d, _ := time.Parse(time.DateOnly, dto.Date)
	return d
}

var (
	ErrAttendanceNotFound  = internal.NewNotFoundError("attendance record not found", internal.ErrCodeAttendanceNotFound)
	ErrDuplicateAttendance = internal.NewConflictError("attendance already recorded for this employee and date", internal.ErrCodeDuplicateAttendance)
)
