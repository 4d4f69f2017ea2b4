package postgres

import (
	"github.com/frahmantamala/hr-payroll/internal/dashboard"
	"gorm.io/gorm"
)

// DashboardRepository implements the dashboard.Repository interface using GORM
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountEmployees() (int64, error) {
	var count int64
	err := r.db.Raw(`SELECT COUNT(*) FROM employees`).Scan(&count).Error
	return count, err
}

func (r *DashboardRepository) CountActiveProjects() (int64, error) {
	var count int64
	err := r.db.Raw(`SELECT COUNT(*) FROM projects WHERE status = 'Active'`).Scan(&count).Error
	return count, err
}

func (r *DashboardRepository) CountAttendance(date string) (int64, error) {
	var count int64
	err := r.db.Raw(`SELECT COUNT(*) FROM attendance WHERE date = ?`, date).Scan(&count).Error
	return count, err
}

func (r *DashboardRepository) CountPresent(date string) (int64, error) {
	var count int64
	err := r.db.Raw(`
		SELECT COUNT(*) FROM attendance WHERE date = ? AND status = 'Present'
	`, date).Scan(&count).Error
	return count, err
}

// PayrollForCurrentMonth sums net pay for records whose period ends inside
// the current calendar month.
func (r *DashboardRepository) PayrollForCurrentMonth() (float64, error) {
	var total float64
	err := r.db.Raw(`
		SELECT COALESCE(SUM(net_pay), 0)
		FROM payroll
		WHERE pay_period_end >= date_trunc('month', CURRENT_DATE)
		  AND pay_period_end < date_trunc('month', CURRENT_DATE) + INTERVAL '1 month'
	`).Scan(&total).Error
	return total, err
}
