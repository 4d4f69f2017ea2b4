package report

import (
	"fmt"
	"time"

	"github.com/frahmantamala/hr-payroll/internal"
)

// Type is the closed set of report kinds. It is stored as its own column, so
// viewing and downloading dispatch on it directly instead of parsing the
// display title.
type Type string

const (
	TypeEmployees         Type = "employees"
	TypeAttendanceDaily   Type = "attendance_daily"
	TypeAttendanceMonthly Type = "attendance_monthly"
	TypePayrollEmployee   Type = "payroll_employee"
	TypePayrollProject    Type = "payroll_project"
	TypeProjectList       Type = "project_list"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeEmployees, TypeAttendanceDaily, TypeAttendanceMonthly,
		TypePayrollEmployee, TypePayrollProject, TypeProjectList:
		return Type(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportType, s)
}

// RequiresProject reports whether the type is scoped to a single project.
func (t Type) RequiresProject() bool {
	return t == TypePayrollProject || t == TypeProjectList
}

// Report is one generated report. ParamDate and ParamMonth capture the
// period the report was generated for; the title and description are derived
// display strings only.
type Report struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ReportType  Type      `json:"report_type" gorm:"column:report_type;not null"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by" gorm:"column:created_by"`
	ProjectID   *int64    `json:"project_id,omitempty" gorm:"column:project_id"`
	ParamDate   *string   `json:"param_date,omitempty" gorm:"column:param_date"`
	ParamMonth  *string   `json:"param_month,omitempty" gorm:"column:param_month"`
	ReportDate  time.Time `json:"report_date" gorm:"column:report_date;default:now()"`
}

func (Report) TableName() string {
	return "reports"
}

// EmployeeRow is one employee in the master list report.
type EmployeeRow struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// DailyAttendanceRow is one employee's attendance on the report's date.
type DailyAttendanceRow struct {
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date" gorm:"type:date"`
}

// MonthlyAttendanceRow summarizes one employee's attendance over the report's
// month. AttendanceRate is present/recorded as a percentage, 0 when the
// employee has no records that month.
type MonthlyAttendanceRow struct {
	EmployeeID     int64   `json:"employee_id" gorm:"column:id"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	DaysRecorded   int64   `json:"days_recorded" gorm:"column:days_recorded"`
	DaysPresent    int64   `json:"days_present" gorm:"column:days_present"`
	DaysAbsent     int64   `json:"days_absent" gorm:"column:days_absent"`
	DaysLate       int64   `json:"days_late" gorm:"column:days_late"`
	AttendanceRate float64 `json:"attendance_rate" gorm:"column:attendance_rate"`
}

// PayrollEmployeeRow is one employee's payroll rollup: every employee
// appears, zero-record employees included.
type PayrollEmployeeRow struct {
	EmployeeID      int64      `json:"employee_id" gorm:"column:id"`
	Name            string     `json:"name"`
	Department      string     `json:"department"`
	Position        string     `json:"position"`
	PayRecords      int64      `json:"pay_records" gorm:"column:pay_records"`
	TotalEarned     float64    `json:"total_earned" gorm:"column:total_earned"`
	AvgPay          float64    `json:"avg_pay" gorm:"column:avg_pay"`
	LatestPayPeriod *time.Time `json:"latest_pay_period,omitempty" gorm:"column:latest_pay_period;type:date"`
}

// PayrollEntryRow is one raw payroll record in the per-employee report's flat
// entry list.
type PayrollEntryRow struct {
	Name           string    `json:"name"`
	Department     string    `json:"department"`
	Position       string    `json:"position"`
	PayPeriodStart time.Time `json:"pay_period_start" gorm:"column:pay_period_start;type:date"`
	PayPeriodEnd   time.Time `json:"pay_period_end" gorm:"column:pay_period_end;type:date"`
	BasicSalary    float64   `json:"basic_salary" gorm:"column:basic_salary"`
	Overtime       float64   `json:"overtime"`
	Deductions     float64   `json:"deductions"`
	NetPay         float64   `json:"net_pay" gorm:"column:net_pay"`
	Status         string    `json:"status"`
}

// PayrollEmployeeReport is the per-employee payroll report with its derived
// totals.
type PayrollEmployeeReport struct {
	Summary              []*PayrollEmployeeRow `json:"payroll_summary"`
	Entries              []*PayrollEntryRow    `json:"payroll_entries"`
	TotalPayrollCost     float64               `json:"total_payroll_cost"`
	TotalEmployees       int                   `json:"total_employees"`
	EmployeesWithPayroll int                   `json:"employees_with_payroll"`
	AvgEmployeePay       float64               `json:"avg_employee_pay"`
	LatestPayPeriod      *time.Time            `json:"latest_pay_period,omitempty"`
}

// PayrollProjectRow is one project's payroll rollup.
type PayrollProjectRow struct {
	ProjectID         int64   `json:"project_id" gorm:"column:project_id"`
	ProjectName       string  `json:"project_name" gorm:"column:project_name"`
	Department        string  `json:"department"`
	ProjectStatus     string  `json:"project_status" gorm:"column:project_status"`
	AssignedEmployees int64   `json:"assigned_employees" gorm:"column:assigned_employees"`
	PayrollRecords    int64   `json:"payroll_records" gorm:"column:payroll_records"`
	TotalPayrollCost  float64 `json:"total_payroll_cost" gorm:"column:total_payroll_cost"`
	AvgEmployeePay    float64 `json:"avg_employee_pay" gorm:"column:avg_employee_pay"`
}

// PayrollProjectReport is the per-project payroll report with its derived
// totals.
type PayrollProjectReport struct {
	Projects            []*PayrollProjectRow `json:"project_data"`
	TotalPayrollCost    float64              `json:"total_payroll_cost"`
	TotalEmployees      int64                `json:"total_employees"`
	TotalPayrollRecords int64                `json:"total_payroll_records"`
	AvgEmployeeCost     float64              `json:"avg_employee_cost"`
}

// RosterRow is one (project, employee) pair from the roster join. EmployeeID
// is nil for projects with nobody assigned, which still appear.
type RosterRow struct {
	ProjectID          int64   `json:"project_id" gorm:"column:project_id"`
	ProjectName        string  `json:"project_name" gorm:"column:project_name"`
	ProjectDepartment  string  `json:"project_department" gorm:"column:project_department"`
	ProjectStatus      string  `json:"project_status" gorm:"column:project_status"`
	EmployeeID         *int64  `json:"employee_id,omitempty" gorm:"column:employee_id"`
	EmployeeName       *string `json:"employee_name,omitempty" gorm:"column:employee_name"`
	EmployeePosition   *string `json:"employee_position,omitempty" gorm:"column:employee_position"`
	EmployeeDepartment *string `json:"employee_department,omitempty" gorm:"column:employee_department"`
}

// ProjectRoster is one project with its employee list for the project list
// report.
type ProjectRoster struct {
	ProjectID         int64           `json:"project_id"`
	ProjectName       string          `json:"project_name"`
	ProjectDepartment string          `json:"project_department"`
	ProjectStatus     string          `json:"project_status"`
	Employees         []*RosterMember `json:"employees"`
}

type RosterMember struct {
	EmployeeID int64  `json:"employee_id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

// ProjectListReport is the project employee list report with its derived
// totals.
type ProjectListReport struct {
	Projects          []*ProjectRoster `json:"projects_data"`
	TotalProjects     int              `json:"total_projects"`
	TotalAssignments  int              `json:"total_assignments"`
	ProjectsWithStaff int              `json:"projects_with_staff"`
}

var (
	ErrReportNotFound    = internal.NewNotFoundError("report not found", internal.ErrCodeReportNotFound)
	ErrUnknownReportType = internal.NewValidationError("unknown report type", internal.ErrCodeUnknownReportType)
	ErrProjectRequired   = internal.NewValidationError("a project is required for this report type", internal.ErrCodeValidationFailed)
)
