package report

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/frahmantamala/hr-payroll/internal/project"
)

// Repository defines the data access methods for reports: the report rows
// themselves plus the aggregation query behind each report type.
type Repository interface {
	Insert(rep *Report) error
	GetByID(id int64) (*Report, error)
	List() ([]*Report, error)
	ProjectName(id int64) (string, error)

	EmployeeMaster() ([]*EmployeeRow, error)
	DailyAttendance(date string) ([]*DailyAttendanceRow, error)
	MonthlyAttendance(month string) ([]*MonthlyAttendanceRow, error)
	PayrollPerEmployee() ([]*PayrollEmployeeRow, error)
	PayrollEntries() ([]*PayrollEntryRow, error)
	PayrollPerProject(projectID *int64) ([]*PayrollProjectRow, error)
	ProjectRosters() ([]*RosterRow, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Generate persists a report row for the requested type. The title and
// description are display strings; dispatch on view/download reads the typed
// column, never the title.
func (s *Service) Generate(dto GenerateDTO, createdBy string) (*Report, error) {
	rt, err := ParseType(dto.ReportType)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		ReportType: rt,
		CreatedBy:  createdBy,
	}

	switch rt {
	case TypeEmployees:
		rep.Title = "Employee Master List"
		rep.Description = "Complete list of all employees."

	case TypeAttendanceDaily:
		d := dto.date()
		rep.ParamDate = &d
		rep.Title = fmt.Sprintf("Daily Attendance Report - %s", d)
		rep.Description = fmt.Sprintf("Employee attendance for %s", d)

	case TypeAttendanceMonthly:
		m := dto.month()
		rep.ParamMonth = &m
		rep.Title = "Monthly Attendance Summary"
		rep.Description = fmt.Sprintf("Summary of employee attendance for %s", displayMonth(m))

	case TypePayrollEmployee:
		rep.Title = "Payroll Per Employee"
		rep.Description = "Payroll records grouped by employee with totals and averages."

	case TypePayrollProject, TypeProjectList:
		if dto.ProjectID == nil {
			return nil, ErrProjectRequired
		}
		name, err := s.repo.ProjectName(*dto.ProjectID)
		if err != nil {
			return nil, project.ErrProjectNotFound
		}
		rep.ProjectID = dto.ProjectID
		if rt == TypePayrollProject {
			rep.Title = fmt.Sprintf("Payroll Report - %s", name)
			rep.Description = fmt.Sprintf("Detailed payroll analysis for %s", name)
		} else {
			rep.Title = fmt.Sprintf("Project Employee List - %s", name)
			rep.Description = fmt.Sprintf("Employees assigned to %s", name)
		}
	}

	if err := s.repo.Insert(rep); err != nil {
		s.logger.Error("failed to insert report", "error", err, "report_type", rt)
		return nil, err
	}

	s.logger.Info("report generated", "report_id", rep.ID, "report_type", rt, "created_by", createdBy)
	return rep, nil
}

func (s *Service) ListReports() ([]*Report, error) {
	reports, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list reports", "error", err)
		return nil, err
	}
	return reports, nil
}

// View loads a report and runs its aggregation, returning the report row and
// a type-specific payload.
func (s *Service) View(id int64) (*Report, interface{}, error) {
	rep, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, ErrReportNotFound
	}

	payload, err := s.buildPayload(rep)
	if err != nil {
		s.logger.Error("failed to build report payload", "error", err, "report_id", id, "report_type", rep.ReportType)
		return nil, nil, err
	}
	return rep, payload, nil
}

func (s *Service) buildPayload(rep *Report) (interface{}, error) {
	switch rep.ReportType {
	case TypeEmployees:
		return s.repo.EmployeeMaster()

	case TypeAttendanceDaily:
		return s.repo.DailyAttendance(paramOr(rep.ParamDate, time.Now().Format(time.DateOnly)))

	case TypeAttendanceMonthly:
		return s.repo.MonthlyAttendance(paramOr(rep.ParamMonth, time.Now().Format("2006-01")))

	case TypePayrollEmployee:
		return s.payrollEmployeeReport()

	case TypePayrollProject:
		return s.payrollProjectReport(rep.ProjectID)

	case TypeProjectList:
		return s.projectListReport()
	}
	return nil, ErrUnknownReportType
}

func (s *Service) payrollEmployeeReport() (*PayrollEmployeeReport, error) {
	summary, err := s.repo.PayrollPerEmployee()
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.PayrollEntries()
	if err != nil {
		return nil, err
	}

	out := &PayrollEmployeeReport{
		Summary:        summary,
		Entries:        entries,
		TotalEmployees: len(summary),
	}
	for _, row := range summary {
		out.TotalPayrollCost += row.TotalEarned
		if row.TotalEarned > 0 {
			out.EmployeesWithPayroll++
		}
		if row.LatestPayPeriod != nil {
			if out.LatestPayPeriod == nil || row.LatestPayPeriod.After(*out.LatestPayPeriod) {
				out.LatestPayPeriod = row.LatestPayPeriod
			}
		}
	}
	if out.EmployeesWithPayroll > 0 {
		out.AvgEmployeePay = out.TotalPayrollCost / float64(out.EmployeesWithPayroll)
	}
	return out, nil
}

func (s *Service) payrollProjectReport(projectID *int64) (*PayrollProjectReport, error) {
	projects, err := s.repo.PayrollPerProject(projectID)
	if err != nil {
		return nil, err
	}

	out := &PayrollProjectReport{Projects: projects}
	for _, p := range projects {
		out.TotalPayrollCost += p.TotalPayrollCost
		out.TotalEmployees += p.AssignedEmployees
		out.TotalPayrollRecords += p.PayrollRecords
	}
	if out.TotalEmployees > 0 {
		out.AvgEmployeeCost = out.TotalPayrollCost / float64(out.TotalEmployees)
	}
	return out, nil
}

func (s *Service) projectListReport() (*ProjectListReport, error) {
	rows, err := s.repo.ProjectRosters()
	if err != nil {
		return nil, err
	}

	// rows come back ordered by project then employee, so grouping is a
	// single pass
	var projects []*ProjectRoster
	var current *ProjectRoster
	for _, row := range rows {
		if current == nil || current.ProjectID != row.ProjectID {
			current = &ProjectRoster{
				ProjectID:         row.ProjectID,
				ProjectName:       row.ProjectName,
				ProjectDepartment: row.ProjectDepartment,
				ProjectStatus:     row.ProjectStatus,
				Employees:         []*RosterMember{},
			}
			projects = append(projects, current)
		}
		if row.EmployeeID != nil {
			current.Employees = append(current.Employees, &RosterMember{
				EmployeeID: *row.EmployeeID,
				Name:       deref(row.EmployeeName),
				Position:   deref(row.EmployeePosition),
				Department: deref(row.EmployeeDepartment),
			})
		}
	}

	out := &ProjectListReport{
		Projects:      projects,
		TotalProjects: len(projects),
	}
	for _, p := range projects {
		out.TotalAssignments += len(p.Employees)
		if len(p.Employees) > 0 {
			out.ProjectsWithStaff++
		}
	}
	return out, nil
}

// Download runs the report's aggregation and flattens it into the CSV
// document shape.
func (s *Service) Download(id int64) (*Document, error) {
	rep, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrReportNotFound
	}

	switch rep.ReportType {
	case TypeEmployees:
		rows, err := s.repo.EmployeeMaster()
		if err != nil {
			return nil, err
		}
		return employeeDocument(rows), nil

	case TypeAttendanceDaily:
		date := paramOr(rep.ParamDate, time.Now().Format(time.DateOnly))
		rows, err := s.repo.DailyAttendance(date)
		if err != nil {
			return nil, err
		}
		return dailyAttendanceDocument(date, rows), nil

	case TypeAttendanceMonthly:
		month := paramOr(rep.ParamMonth, time.Now().Format("2006-01"))
		rows, err := s.repo.MonthlyAttendance(month)
		if err != nil {
			return nil, err
		}
		return monthlyAttendanceDocument(month, rows), nil

	case TypePayrollEmployee:
		data, err := s.payrollEmployeeReport()
		if err != nil {
			return nil, err
		}
		return payrollEmployeeDocument(data), nil

	case TypePayrollProject:
		data, err := s.payrollProjectReport(rep.ProjectID)
		if err != nil {
			return nil, err
		}
		return payrollProjectDocument(rep.Title, data), nil

	case TypeProjectList:
		data, err := s.projectListReport()
		if err != nil {
			return nil, err
		}
		return projectListDocument(rep.Title, data), nil
	}
	return nil, ErrUnknownReportType
}

func employeeDocument(rows []*EmployeeRow) *Document {
	doc := NewDocument(
		fmt.Sprintf("Employee Master List - %s", time.Now().Format(time.DateOnly)),
		[]string{"name", "position", "department", "status"},
	)
	for _, r := range rows {
		doc.AddRow(r.Name, r.Position, r.Department, r.Status)
	}
	return doc
}

func dailyAttendanceDocument(date string, rows []*DailyAttendanceRow) *Document {
	doc := NewDocument(
		fmt.Sprintf("Daily Attendance - %s", date),
		[]string{"name", "department", "position", "status", "date"},
	)
	for _, r := range rows {
		doc.AddRow(r.Name, r.Department, r.Position, r.Status, r.Date.Format(time.DateOnly))
	}
	return doc
}

func monthlyAttendanceDocument(month string, rows []*MonthlyAttendanceRow) *Document {
	doc := NewDocument(
		fmt.Sprintf("Monthly Attendance Summary - %s", month),
		[]string{"name", "department", "position", "days_recorded", "days_present", "days_absent", "days_late", "attendance_rate"},
	)
	for _, r := range rows {
		doc.AddRow(
			r.Name, r.Department, r.Position,
			strconv.FormatInt(r.DaysRecorded, 10),
			strconv.FormatInt(r.DaysPresent, 10),
			strconv.FormatInt(r.DaysAbsent, 10),
			strconv.FormatInt(r.DaysLate, 10),
			formatAmount(r.AttendanceRate),
		)
	}
	return doc
}

func payrollEmployeeDocument(data *PayrollEmployeeReport) *Document {
	doc := NewDocument(
		"Payroll Per Employee",
		[]string{"name", "department", "position", "pay_records", "total_earned", "avg_pay", "latest_pay_period"},
	)
	for _, r := range data.Summary {
		latest := ""
		if r.LatestPayPeriod != nil {
			latest = r.LatestPayPeriod.Format(time.DateOnly)
		}
		doc.AddRow(
			r.Name, r.Department, r.Position,
			strconv.FormatInt(r.PayRecords, 10),
			formatAmount(r.TotalEarned),
			formatAmount(r.AvgPay),
			latest,
		)
	}
	return doc
}

func payrollProjectDocument(title string, data *PayrollProjectReport) *Document {
	doc := NewDocument(
		title,
		[]string{"project_name", "department", "project_status", "assigned_employees", "payroll_records", "total_payroll_cost", "avg_employee_pay"},
	)
	for _, p := range data.Projects {
		doc.AddRow(
			p.ProjectName, p.Department, p.ProjectStatus,
			strconv.FormatInt(p.AssignedEmployees, 10),
			strconv.FormatInt(p.PayrollRecords, 10),
			formatAmount(p.TotalPayrollCost),
			formatAmount(p.AvgEmployeePay),
		)
	}
	return doc
}

func projectListDocument(title string, data *ProjectListReport) *Document {
	doc := NewDocument(
		title,
		[]string{"project_name", "project_department", "project_status", "employee_name", "employee_position", "employee_department"},
	)
	for _, p := range data.Projects {
		if len(p.Employees) == 0 {
			doc.AddRow(p.ProjectName, p.ProjectDepartment, p.ProjectStatus, "", "", "")
			continue
		}
		for _, e := range p.Employees {
			doc.AddRow(p.ProjectName, p.ProjectDepartment, p.ProjectStatus, e.Name, e.Position, e.Department)
		}
	}
	return doc
}

// displayMonth renders a YYYY-MM month as "January 2006 (Month: 2006-01)".
func displayMonth(month string) string {
	m, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return fmt.Sprintf("%s (Month: %s)", m.Format("January 2006"), month)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func paramOr(p *string, fallback string) string {
	if p != nil && *p != "" {
		return *p
	}
	return fallback
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
