package report_test

import (
	"log/slog"
	"os"
	"time"

	"github.com/frahmantamala/hr-payroll/internal/project"
	"github.com/frahmantamala/hr-payroll/internal/report"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// mockRepository implements report.Repository for testing
type mockRepository struct {
	reports      map[int64]*report.Report
	nextID       int64
	projectNames map[int64]string

	employees       []*report.EmployeeRow
	daily           []*report.DailyAttendanceRow
	monthly         []*report.MonthlyAttendanceRow
	payrollSummary  []*report.PayrollEmployeeRow
	payrollEntries  []*report.PayrollEntryRow
	payrollProjects []*report.PayrollProjectRow
	rosters         []*report.RosterRow

	lastDailyDate    string
	lastMonthlyMonth string
	lastProjectID    *int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		reports:      make(map[int64]*report.Report),
		nextID:       1,
		projectNames: map[int64]string{7: "Bridge Repair"},
	}
}

func (m *mockRepository) Insert(rep *report.Report) error {
	rep.ID = m.nextID
	m.nextID++
	rep.ReportDate = time.Now()
	m.reports[rep.ID] = rep
	return nil
}

func (m *mockRepository) GetByID(id int64) (*report.Report, error) {
	rep, ok := m.reports[id]
	if !ok {
		return nil, report.ErrReportNotFound
	}
	return rep, nil
}

func (m *mockRepository) List() ([]*report.Report, error) {
	var out []*report.Report
	for _, rep := range m.reports {
		out = append(out, rep)
	}
	return out, nil
}

func (m *mockRepository) ProjectName(id int64) (string, error) {
	name, ok := m.projectNames[id]
	if !ok {
		return "", project.ErrProjectNotFound
	}
	return name, nil
}

func (m *mockRepository) EmployeeMaster() ([]*report.EmployeeRow, error) {
	return m.employees, nil
}

func (m *mockRepository) DailyAttendance(date string) ([]*report.DailyAttendanceRow, error) {
	m.lastDailyDate = date
	return m.daily, nil
}

func (m *mockRepository) MonthlyAttendance(month string) ([]*report.MonthlyAttendanceRow, error) {
	m.lastMonthlyMonth = month
	return m.monthly, nil
}

func (m *mockRepository) PayrollPerEmployee() ([]*report.PayrollEmployeeRow, error) {
	return m.payrollSummary, nil
}

func (m *mockRepository) PayrollEntries() ([]*report.PayrollEntryRow, error) {
	return m.payrollEntries, nil
}

func (m *mockRepository) PayrollPerProject(projectID *int64) ([]*report.PayrollProjectRow, error) {
	m.lastProjectID = projectID
	return m.payrollProjects, nil
}

func (m *mockRepository) ProjectRosters() ([]*report.RosterRow, error) {
	return m.rosters, nil
}

var _ = Describe("Report Service", func() {
	var (
		mockRepo *mockRepository
		service  *report.Service
	)

	BeforeEach(func() {
		mockRepo = newMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = report.NewService(mockRepo, logger)
	})

	Describe("Generate", func() {
		It("rejects an unknown report type", func() {
			_, err := service.Generate(report.GenerateDTO{ReportType: "everything"}, "admin")
			Expect(err).To(MatchError(report.ErrUnknownReportType))
		})

		It("persists an employee master list report", func() {
			rep, err := service.Generate(report.GenerateDTO{ReportType: "employees"}, "admin")
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.ReportType).To(Equal(report.TypeEmployees))
			Expect(rep.Title).To(Equal("Employee Master List"))
			Expect(rep.CreatedBy).To(Equal("admin"))
		})

		It("stores the requested date for a daily attendance report", func() {
			rep, err := service.Generate(report.GenerateDTO{ReportType: "attendance_daily", Date: "2026-08-15"}, "admin")
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.ParamDate).NotTo(BeNil())
			Expect(*rep.ParamDate).To(Equal("2026-08-15"))
			Expect(rep.Title).To(Equal("Daily Attendance Report - 2026-08-15"))
		})

		It("defaults the daily attendance date to today", func() {
			rep, err := service.Generate(report.GenerateDTO{ReportType: "attendance_daily"}, "admin")
			Expect(err).NotTo(HaveOccurred())
			Expect(*rep.ParamDate).To(Equal(time.Now().Format(time.DateOnly)))
		})

		It("describes the monthly summary with a readable month", func() {
			rep, err := service.Generate(report.GenerateDTO{ReportType: "attendance_monthly", Month: "2026-08"}, "admin")
			Expect(err).NotTo(HaveOccurred())
			Expect(*rep.ParamMonth).To(Equal("2026-08"))
			Expect(rep.Description).To(ContainSubstring("August 2026"))
			Expect(rep.Description).To(ContainSubstring("Month: 2026-08"))
		})

		It("requires a project for project-scoped types", func() {
			for _, rt := range []string{"payroll_project", "project_list"} {
				_, err := service.Generate(report.GenerateDTO{ReportType: rt}, "admin")
				Expect(err).To(MatchError(report.ErrProjectRequired))
			}
		})

		It("names the project in project-scoped titles", func() {
			projectID := int64(7)
			rep, err := service.Generate(report.GenerateDTO{ReportType: "payroll_project", ProjectID: &projectID}, "admin")
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Title).To(Equal("Payroll Report - Bridge Repair"))

			rep, err = service.Generate(report.GenerateDTO{ReportType: "project_list", ProjectID: &projectID}, "admin")
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Title).To(Equal("Project Employee List - Bridge Repair"))
		})

		It("returns not found for an unknown project", func() {
			projectID := int64(99)
			_, err := service.Generate(report.GenerateDTO{ReportType: "project_list", ProjectID: &projectID}, "admin")
			Expect(err).To(MatchError(project.ErrProjectNotFound))
		})
	})

	Describe("View", func() {
		It("dispatches each stored type to its own aggregation", func() {
			projectID := int64(7)
			cases := []report.GenerateDTO{
				{ReportType: "employees"},
				{ReportType: "attendance_daily", Date: "2026-08-15"},
				{ReportType: "attendance_monthly", Month: "2026-08"},
				{ReportType: "payroll_employee"},
				{ReportType: "payroll_project", ProjectID: &projectID},
				{ReportType: "project_list", ProjectID: &projectID},
			}

			for _, dto := range cases {
				rep, err := service.Generate(dto, "admin")
				Expect(err).NotTo(HaveOccurred())

				got, payload, err := service.View(rep.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.ReportType).To(Equal(report.Type(dto.ReportType)))
				Expect(payload).NotTo(BeNil())
			}
		})

		It("queries the stored date rather than today", func() {
			rep, err := service.Generate(report.GenerateDTO{ReportType: "attendance_daily", Date: "2025-01-02"}, "admin")
			Expect(err).NotTo(HaveOccurred())

			_, _, err = service.View(rep.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.lastDailyDate).To(Equal("2025-01-02"))
		})

		It("scopes the payroll project view to the stored project", func() {
			projectID := int64(7)
			rep, err := service.Generate(report.GenerateDTO{ReportType: "payroll_project", ProjectID: &projectID}, "admin")
			Expect(err).NotTo(HaveOccurred())

			_, _, err = service.View(rep.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.lastProjectID).NotTo(BeNil())
			Expect(*mockRepo.lastProjectID).To(Equal(projectID))
		})

		It("returns not found for an unknown report", func() {
			_, _, err := service.View(404)
			Expect(err).To(MatchError(report.ErrReportNotFound))
		})

		Context("payroll per employee derived figures", func() {
			BeforeEach(func() {
				older := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
				newer := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
				mockRepo.payrollSummary = []*report.PayrollEmployeeRow{
					{EmployeeID: 1, Name: "Juan", TotalEarned: 10000, LatestPayPeriod: &older},
					{EmployeeID: 2, Name: "Maria", TotalEarned: 20000, LatestPayPeriod: &newer},
					{EmployeeID: 3, Name: "Pedro", TotalEarned: 0},
				}
			})

			It("totals only across employees with payroll", func() {
				rep, err := service.Generate(report.GenerateDTO{ReportType: "payroll_employee"}, "admin")
				Expect(err).NotTo(HaveOccurred())

				_, payload, err := service.View(rep.ID)
				Expect(err).NotTo(HaveOccurred())

				data, ok := payload.(*report.PayrollEmployeeReport)
				Expect(ok).To(BeTrue())
				Expect(data.TotalPayrollCost).To(Equal(30000.0))
				Expect(data.TotalEmployees).To(Equal(3))
				Expect(data.EmployeesWithPayroll).To(Equal(2))
				Expect(data.AvgEmployeePay).To(Equal(15000.0))
				Expect(data.LatestPayPeriod.Month()).To(Equal(time.August))
			})
		})

		Context("project list grouping", func() {
			BeforeEach(func() {
				e1, e2 := int64(1), int64(2)
				n1, n2 := "Juan", "Maria"
				pos := "Foreman"
				dep := "Operations"
				mockRepo.rosters = []*report.RosterRow{
					{ProjectID: 7, ProjectName: "Bridge Repair", EmployeeID: &e1, EmployeeName: &n1, EmployeePosition: &pos, EmployeeDepartment: &dep},
					{ProjectID: 7, ProjectName: "Bridge Repair", EmployeeID: &e2, EmployeeName: &n2, EmployeePosition: &pos, EmployeeDepartment: &dep},
					{ProjectID: 9, ProjectName: "Warehouse Build"},
				}
			})

			It("keeps zero-assignment projects with an empty roster", func() {
				projectID := int64(7)
				rep, err := service.Generate(report.GenerateDTO{ReportType: "project_list", ProjectID: &projectID}, "admin")
				Expect(err).NotTo(HaveOccurred())

				_, payload, err := service.View(rep.ID)
				Expect(err).NotTo(HaveOccurred())

				data, ok := payload.(*report.ProjectListReport)
				Expect(ok).To(BeTrue())
				Expect(data.TotalProjects).To(Equal(2))
				Expect(data.TotalAssignments).To(Equal(2))
				Expect(data.ProjectsWithStaff).To(Equal(1))
				Expect(data.Projects[1].Employees).To(BeEmpty())
			})
		})
	})

	Describe("Download", func() {
		It("flattens the employee master list into a document", func() {
			mockRepo.employees = []*report.EmployeeRow{
				{Name: "Juan", Position: "Foreman", Department: "Operations", Status: "Active"},
			}
			rep, err := service.Generate(report.GenerateDTO{ReportType: "employees"}, "admin")
			Expect(err).NotTo(HaveOccurred())

			doc, err := service.Download(rep.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Columns).To(Equal([]string{"name", "position", "department", "status"}))
			Expect(doc.Rows).To(HaveLen(1))
			Expect(doc.Rows[0]).To(Equal([]string{"Juan", "Foreman", "Operations", "Active"}))
		})

		It("produces a document for every report type", func() {
			projectID := int64(7)
			cases := []report.GenerateDTO{
				{ReportType: "employees"},
				{ReportType: "attendance_daily"},
				{ReportType: "attendance_monthly"},
				{ReportType: "payroll_employee"},
				{ReportType: "payroll_project", ProjectID: &projectID},
				{ReportType: "project_list", ProjectID: &projectID},
			}

			for _, dto := range cases {
				rep, err := service.Generate(dto, "admin")
				Expect(err).NotTo(HaveOccurred())

				doc, err := service.Download(rep.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(doc.Title).NotTo(BeEmpty())
				Expect(doc.Columns).NotTo(BeEmpty())
			}
		})

		It("formats amounts with two decimals", func() {
			mockRepo.monthly = []*report.MonthlyAttendanceRow{
				{Name: "Juan", DaysRecorded: 3, DaysPresent: 2, DaysAbsent: 1, AttendanceRate: 66.67},
			}
			rep, err := service.Generate(report.GenerateDTO{ReportType: "attendance_monthly", Month: "2026-08"}, "admin")
			Expect(err).NotTo(HaveOccurred())

			doc, err := service.Download(rep.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Rows[0]).To(ContainElement("66.67"))
		})
	})
})
