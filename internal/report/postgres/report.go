package postgres

import (
	"fmt"

	"github.com/frahmantamala/hr-payroll/internal/report"
	"gorm.io/gorm"
)

// ReportRepository implements the report.Repository interface using GORM
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) report.Repository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Insert(rep *report.Report) error {
	return r.db.Create(rep).Error
}

func (r *ReportRepository) GetByID(id int64) (*report.Report, error) {
	var rep report.Report
	err := r.db.Where("id = ?", id).First(&rep).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, report.ErrReportNotFound
		}
		return nil, err
	}
	return &rep, nil
}

func (r *ReportRepository) List() ([]*report.Report, error) {
	var reports []*report.Report
	err := r.db.Order("report_date DESC").Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) ProjectName(id int64) (string, error) {
	var name string
	err := r.db.Raw(`SELECT project_name FROM projects WHERE id = ?`, id).Scan(&name).Error
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", gorm.ErrRecordNotFound
	}
	return name, nil
}

func (r *ReportRepository) EmployeeMaster() ([]*report.EmployeeRow, error) {
	var rows []*report.EmployeeRow
	err := r.db.Raw(`
		SELECT id, name, position, department, status
		FROM employees
		ORDER BY name
	`).Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) DailyAttendance(date string) ([]*report.DailyAttendanceRow, error) {
	var rows []*report.DailyAttendanceRow
	err := r.db.Raw(`
		SELECT e.name, e.department, e.position, a.status, a.date
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.date = ?
		ORDER BY e.name
	`, date).Scan(&rows).Error
	return rows, err
}

// MonthlyAttendance summarizes per-employee attendance for one YYYY-MM month.
// Every employee appears; the rate guards against employees with no records.
func (r *ReportRepository) MonthlyAttendance(month string) ([]*report.MonthlyAttendanceRow, error) {
	var rows []*report.MonthlyAttendanceRow
	err := r.db.Raw(`
		SELECT
			e.id,
			e.name,
			e.department,
			e.position,
			COUNT(a.id) AS days_recorded,
			SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END) AS days_present,
			SUM(CASE WHEN a.status = 'Absent' THEN 1 ELSE 0 END) AS days_absent,
			SUM(CASE WHEN a.status = 'Late' THEN 1 ELSE 0 END) AS days_late,
			CASE
				WHEN COUNT(a.id) > 0 THEN ROUND((SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END)::numeric / COUNT(a.id)) * 100, 2)
				ELSE 0
			END AS attendance_rate
		FROM employees e
		LEFT JOIN attendance a ON e.id = a.employee_id AND TO_CHAR(a.date, 'YYYY-MM') = ?
		GROUP BY e.id, e.name, e.department, e.position
		ORDER BY e.department, e.name
	`, month).Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) PayrollPerEmployee() ([]*report.PayrollEmployeeRow, error) {
	var rows []*report.PayrollEmployeeRow
	err := r.db.Raw(`
		SELECT
			e.id,
			e.name,
			e.department,
			e.position,
			COUNT(p.id) AS pay_records,
			COALESCE(SUM(p.net_pay), 0) AS total_earned,
			COALESCE(AVG(p.net_pay), 0) AS avg_pay,
			MAX(p.pay_period_end) AS latest_pay_period
		FROM employees e
		LEFT JOIN payroll p ON e.id = p.employee_id
		GROUP BY e.id, e.name, e.department, e.position
		ORDER BY total_earned DESC, e.name
	`).Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) PayrollEntries() ([]*report.PayrollEntryRow, error) {
	var rows []*report.PayrollEntryRow
	err := r.db.Raw(`
		SELECT e.name, e.department, e.position, p.pay_period_start, p.pay_period_end,
		       p.basic_salary, p.overtime, p.deductions, p.net_pay, p.status
		FROM payroll p
		JOIN employees e ON e.id = p.employee_id
		ORDER BY p.pay_period_end DESC, e.name
	`).Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) PayrollPerProject(projectID *int64) ([]*report.PayrollProjectRow, error) {
	query := `
		SELECT
			p.id AS project_id,
			p.project_name,
			p.department,
			p.status AS project_status,
			COUNT(DISTINCT pe.employee_id) AS assigned_employees,
			COUNT(pay.id) AS payroll_records,
			COALESCE(SUM(pay.net_pay), 0) AS total_payroll_cost,
			COALESCE(AVG(pay.net_pay), 0) AS avg_employee_pay
		FROM projects p
		LEFT JOIN project_employees pe ON p.id = pe.project_id
		LEFT JOIN payroll pay ON p.id = pay.project_id
		%s
		GROUP BY p.id, p.project_name, p.department, p.status
		ORDER BY total_payroll_cost DESC
	`

	var rows []*report.PayrollProjectRow
	var err error
	if projectID != nil {
		err = r.db.Raw(fmt.Sprintf(query, "WHERE p.id = ?"), *projectID).Scan(&rows).Error
	} else {
		err = r.db.Raw(fmt.Sprintf(query, "")).Scan(&rows).Error
	}
	return rows, err
}

func (r *ReportRepository) ProjectRosters() ([]*report.RosterRow, error) {
	var rows []*report.RosterRow
	err := r.db.Raw(`
		SELECT
			p.id AS project_id, p.project_name, p.department AS project_department, p.status AS project_status,
			e.id AS employee_id, e.name AS employee_name, e.position AS employee_position, e.department AS employee_department
		FROM projects p
		LEFT JOIN project_employees pe ON p.id = pe.project_id
		LEFT JOIN employees e ON pe.employee_id = e.id
		ORDER BY p.project_name, e.name
	`).Scan(&rows).Error
	return rows, err
}
