package postgres

import (
	"github.com/frahmantamala/hr-payroll/internal/payroll"
	"github.com/frahmantamala/hr-payroll/internal/project"
	"gorm.io/gorm"
)

// PayrollRepository implements the payroll.Repository interface using GORM
type PayrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) payroll.Repository {
	return &PayrollRepository{db: db}
}

// Create inserts the payroll row and, when it targets a project, makes sure
// the employee is assigned to that project. Both writes run in one
// transaction so a failed assignment never leaves an orphan payroll row.
func (r *PayrollRepository) Create(p *payroll.Payroll) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		if p.ProjectID == nil {
			return nil
		}

		var count int64
		err := tx.Model(&project.Assignment{}).
			Where("project_id = ? AND employee_id = ?", *p.ProjectID, p.EmployeeID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		a := project.Assignment{ProjectID: *p.ProjectID, EmployeeID: p.EmployeeID}
		return tx.Create(&a).Error
	})
}

func (r *PayrollRepository) GetByID(id int64) (*payroll.Payroll, error) {
	var p payroll.Payroll
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, payroll.ErrPayrollNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PayrollRepository) List() ([]*payroll.ListRecord, error) {
	var records []*payroll.ListRecord
	err := r.db.Raw(`
		SELECT p.*, e.name, e.position AS emp_position, pr.project_name
		FROM payroll p
		JOIN employees e ON p.employee_id = e.id
		LEFT JOIN projects pr ON p.project_id = pr.id
		ORDER BY p.pay_period_start DESC, e.name
	`).Scan(&records).Error
	return records, err
}

// Summary aggregates gross, deductions and net over all payroll or one
// project's payroll. Old rows may predate the derived columns, so each term
// falls back to the legacy columns when the derived one is null.
func (r *PayrollRepository) Summary(projectID *int64) (*payroll.Summary, error) {
	query := `
		SELECT
			COUNT(DISTINCT employee_id) AS employees_paid,
			COALESCE(SUM(COALESCE(gross_pay, basic_salary + overtime)), 0) AS total_gross_pay,
			COALESCE(SUM(COALESCE(total_deductions, deductions)), 0) AS total_deductions,
			COALESCE(SUM(net_pay), 0) AS total_net_pay
		FROM payroll
	`
	var summary payroll.Summary
	var err error
	if projectID != nil {
		err = r.db.Raw(query+" WHERE project_id = ?", *projectID).Scan(&summary).Error
	} else {
		err = r.db.Raw(query).Scan(&summary).Error
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *PayrollRepository) Update(p *payroll.Payroll) error {
	return r.db.Save(p).Error
}

func (r *PayrollRepository) Delete(id int64) error {
	return r.db.Delete(&payroll.Payroll{}, id).Error
}

func (r *PayrollRepository) Overview() ([]*payroll.OverviewRow, error) {
	var rows []*payroll.OverviewRow
	err := r.db.Raw(`
		SELECT
			pr.id,
			pr.project_name,
			pr.department,
			pr.status,
			COALESCE((SELECT SUM(net_pay) FROM payroll WHERE project_id = pr.id), 0) AS total_payroll_cost,
			(SELECT COUNT(*) FROM project_employees WHERE project_id = pr.id) AS employee_count,
			(SELECT COUNT(DISTINCT employee_id) FROM payroll WHERE project_id = pr.id) AS employees_with_payroll,
			(SELECT COUNT(*) FROM payroll WHERE project_id = pr.id) AS payroll_record_count
		FROM projects pr
		ORDER BY pr.project_name
	`).Scan(&rows).Error
	return rows, err
}

// LatestPerEmployee returns every employee assigned to the project, joined to
// their most recent payroll on it when one exists. Employees never paid on
// the project come back with null payroll columns.
func (r *PayrollRepository) LatestPerEmployee(projectID int64) ([]*payroll.ProjectPayrollRow, error) {
	var rows []*payroll.ProjectPayrollRow
	err := r.db.Raw(`
		SELECT
			e.id AS employee_id,
			e.name,
			e.position,
			latest.id AS payroll_id,
			latest.pay_period_start,
			latest.pay_period_end,
			latest.basic_salary,
			latest.overtime,
			latest.deductions,
			latest.net_pay,
			latest.gross_pay,
			latest.status
		FROM project_employees pe
		JOIN employees e ON pe.employee_id = e.id
		LEFT JOIN (
			SELECT *, ROW_NUMBER() OVER (
				PARTITION BY employee_id
				ORDER BY pay_period_start DESC, id DESC
			) AS rn
			FROM payroll
			WHERE project_id = ?
		) latest ON latest.employee_id = e.id AND latest.rn = 1
		WHERE pe.project_id = ?
		ORDER BY e.name
	`, projectID, projectID).Scan(&rows).Error
	return rows, err
}
