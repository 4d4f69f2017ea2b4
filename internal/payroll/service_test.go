package payroll_test

import (
	"errors"
	"log/slog"
	"os"

	"github.com/frahmantamala/hr-payroll/internal/payroll"
	"github.com/frahmantamala/hr-payroll/internal/project"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// mockRepository implements payroll.Repository for testing
type mockRepository struct {
	records    map[int64]*payroll.Payroll
	nextID     int64
	assigned   map[[2]int64]bool
	rows       []*payroll.ProjectPayrollRow
	summary    *payroll.Summary
	shouldFail bool
	failError  error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		records:  make(map[int64]*payroll.Payroll),
		nextID:   1,
		assigned: make(map[[2]int64]bool),
		summary:  &payroll.Summary{},
	}
}

func (m *mockRepository) Create(p *payroll.Payroll) error {
	if m.shouldFail {
		return m.failError
	}
	p.ID = m.nextID
	m.nextID++
	m.records[p.ID] = p
	if p.ProjectID != nil {
		m.assigned[[2]int64{*p.ProjectID, p.EmployeeID}] = true
	}
	return nil
}

func (m *mockRepository) GetByID(id int64) (*payroll.Payroll, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	p, ok := m.records[id]
	if !ok {
		return nil, payroll.ErrPayrollNotFound
	}
	return p, nil
}

func (m *mockRepository) List() ([]*payroll.ListRecord, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var out []*payroll.ListRecord
	for _, p := range m.records {
		out = append(out, &payroll.ListRecord{Payroll: *p})
	}
	return out, nil
}

func (m *mockRepository) Summary(projectID *int64) (*payroll.Summary, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.summary, nil
}

func (m *mockRepository) Update(p *payroll.Payroll) error {
	if m.shouldFail {
		return m.failError
	}
	m.records[p.ID] = p
	return nil
}

func (m *mockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.records, id)
	return nil
}

func (m *mockRepository) Overview() ([]*payroll.OverviewRow, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return nil, nil
}

func (m *mockRepository) LatestPerEmployee(projectID int64) ([]*payroll.ProjectPayrollRow, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.rows, nil
}

// mockProjectReader implements payroll.ProjectReader for testing
type mockProjectReader struct {
	projects map[int64]*project.Project
	roster   []*project.RosterEmployee
}

func newMockProjectReader() *mockProjectReader {
	return &mockProjectReader{projects: make(map[int64]*project.Project)}
}

func (m *mockProjectReader) GetProject(id int64) (*project.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, project.ErrProjectNotFound
	}
	return p, nil
}

func (m *mockProjectReader) GetRoster(projectID int64) ([]*project.RosterEmployee, error) {
	return m.roster, nil
}

var _ = Describe("Payroll Service", func() {
	var (
		mockRepo  *mockRepository
		projects  *mockProjectReader
		service   *payroll.Service
		validBase payroll.PayrollDTO
	)

	BeforeEach(func() {
		mockRepo = newMockRepository()
		projects = newMockProjectReader()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = payroll.NewService(mockRepo, projects, logger)

		validBase = payroll.PayrollDTO{
			EmployeeID:     1,
			PayPeriodStart: "2026-08-01",
			PayPeriodEnd:   "2026-08-15",
			DailyRate:      500,
			Meal:           50,
			Transpo:        50,
			DaysWorked:     22,
			TotalOTHours:   10,
			CashAdvance:    200,
		}
	})

	Describe("CreatePayroll", func() {
		It("persists a record with the computed figures", func() {
			p, err := service.CreatePayroll(validBase)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ID).NotTo(BeZero())
			Expect(p.ComputationMode).To(Equal(payroll.ModeItemized))
			Expect(p.GrossPay).To(Equal(13981.25))
			Expect(p.NetPay).To(Equal(13781.25))
		})

		It("defaults the status to Pending", func() {
			p, err := service.CreatePayroll(validBase)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Status).To(Equal(payroll.StatusPending))
		})

		It("keeps an explicit status", func() {
			dto := validBase
			dto.Status = payroll.StatusPaid
			p, err := service.CreatePayroll(dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Status).To(Equal(payroll.StatusPaid))
		})

		It("rejects a missing employee", func() {
			dto := validBase
			dto.EmployeeID = 0
			_, err := service.CreatePayroll(dto)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("employee_id"))
		})

		It("rejects a malformed period date", func() {
			dto := validBase
			dto.PayPeriodEnd = "15-08-2026"
			_, err := service.CreatePayroll(dto)
			Expect(err).To(HaveOccurred())
		})

		It("propagates repository failures", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("database error")
			_, err := service.CreatePayroll(validBase)
			Expect(err).To(MatchError(ContainSubstring("database error")))
		})
	})

	Describe("UpdatePayroll", func() {
		It("recomputes the figures from the submitted inputs", func() {
			created, err := service.CreatePayroll(validBase)
			Expect(err).NotTo(HaveOccurred())

			dto := validBase
			dto.DaysWorked = 10
			dto.TotalOTHours = 0
			dto.CashAdvance = 0
			updated, err := service.UpdatePayroll(created.ID, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ID).To(Equal(created.ID))
			Expect(updated.GrossPay).To(Equal(6000.0))
			Expect(updated.NetPay).To(Equal(6000.0))
		})

		It("switches mode when the inputs change shape", func() {
			created, err := service.CreatePayroll(validBase)
			Expect(err).NotTo(HaveOccurred())

			dto := validBase
			dto.BasicSalary = 20000
			updated, err := service.UpdatePayroll(created.ID, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ComputationMode).To(Equal(payroll.ModeLegacy))
		})

		It("returns not found for an unknown id", func() {
			_, err := service.UpdatePayroll(99, validBase)
			Expect(err).To(MatchError(payroll.ErrPayrollNotFound))
		})
	})

	Describe("DeletePayroll", func() {
		It("returns the record's project id", func() {
			projectID := int64(7)
			dto := validBase
			dto.ProjectID = &projectID
			created, err := service.CreatePayroll(dto)
			Expect(err).NotTo(HaveOccurred())

			got, err := service.DeletePayroll(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).NotTo(BeNil())
			Expect(*got).To(Equal(projectID))
		})

		It("returns not found for an unknown id", func() {
			_, err := service.DeletePayroll(99)
			Expect(err).To(MatchError(payroll.ErrPayrollNotFound))
		})
	})

	Describe("GetProjectPayroll", func() {
		BeforeEach(func() {
			projects.projects[7] = &project.Project{ID: 7, ProjectName: "Bridge Repair"}
			projects.roster = []*project.RosterEmployee{
				{ID: 1, Name: "Juan Dela Cruz", Position: "Foreman"},
				{ID: 2, Name: "Maria Santos", Position: "Laborer"},
			}
		})

		It("marks employees without payroll with a placeholder row", func() {
			payrollID := int64(11)
			netPay := 5000.0
			mockRepo.rows = []*payroll.ProjectPayrollRow{
				{EmployeeID: 1, Name: "Juan Dela Cruz", PayrollID: &payrollID, NetPay: &netPay},
				{EmployeeID: 2, Name: "Maria Santos"},
			}

			page, err := service.GetProjectPayroll(7)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Records).To(HaveLen(2))

			Expect(page.Records[0].HasPayroll).To(BeTrue())
			Expect(*page.Records[0].NetPay).To(Equal(5000.0))

			Expect(page.Records[1].HasPayroll).To(BeFalse())
			Expect(*page.Records[1].Status).To(Equal("No Payroll"))
			Expect(*page.Records[1].NetPay).To(BeZero())
			Expect(*page.Records[1].BasicSalary).To(BeZero())
		})

		It("returns not found for an unknown project", func() {
			_, err := service.GetProjectPayroll(99)
			Expect(err).To(MatchError(project.ErrProjectNotFound))
		})
	})
})
