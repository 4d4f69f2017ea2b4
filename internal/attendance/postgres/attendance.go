package postgres

import (
	"time"

	"github.com/frahmantamala/hr-payroll/internal/attendance"
	"gorm.io/gorm"
)

// AttendanceRepository implements the attendance.Repository interface using GORM
type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.Repository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) ListByDate(date time.Time) ([]*attendance.Record, error) {
	var records []*attendance.Record
	err := r.db.Raw(`
		SELECT a.id, a.employee_id, e.name, e.department, a.date, a.status
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.date = ?
		ORDER BY e.name ASC
	`, date).Scan(&records).Error
	return records, err
}

func (r *AttendanceRepository) GetByID(id int64) (*attendance.Attendance, error) {
	var att attendance.Attendance
	err := r.db.Where("id = ?", id).First(&att).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &att, nil
}

func (r *AttendanceRepository) ExistsForDate(employeeID int64, date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&attendance.Attendance{}).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Count(&count).Error
	return count > 0, err
}

func (r *AttendanceRepository) Create(att *attendance.Attendance) error {
	return r.db.Create(att).Error
}

func (r *AttendanceRepository) Update(att *attendance.Attendance) error {
	return r.db.Save(att).Error
}

func (r *AttendanceRepository) Delete(id int64) error {
	return r.db.Delete(&attendance.Attendance{}, id).Error
}
