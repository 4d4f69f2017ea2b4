package payroll

import (
	"log/slog"

	"github.com/frahmantamala/hr-payroll/internal/project"
)

// Repository defines the data access methods for payroll. Create runs the
// insert and the conditional assignment insert in one transaction.
type Repository interface {
	Create(p *Payroll) error
	GetByID(id int64) (*Payroll, error)
	List() ([]*ListRecord, error)
	Summary(projectID *int64) (*Summary, error)
	Update(p *Payroll) error
	Delete(id int64) error
	Overview() ([]*OverviewRow, error)
	LatestPerEmployee(projectID int64) ([]*ProjectPayrollRow, error)
}

// ProjectReader is the slice of the project service payroll needs.
type ProjectReader interface {
	GetProject(id int64) (*project.Project, error)
	GetRoster(projectID int64) ([]*project.RosterEmployee, error)
}

type Service struct {
	repo     Repository
	projects ProjectReader
	logger   *slog.Logger
}

func NewService(repo Repository, projects ProjectReader, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
		logger:   logger,
	}
}

// CreatePayroll computes the pay figures and persists the record. When a
// project is supplied the employee ends up assigned to it: the repository
// inserts the assignment row inside the same transaction unless one exists.
func (s *Service) CreatePayroll(dto PayrollDTO) (*Payroll, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("payroll validation failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	p := s.buildRecord(dto)

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create payroll", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("payroll created",
		"payroll_id", p.ID,
		"employee_id", p.EmployeeID,
		"mode", p.ComputationMode,
		"net_pay", p.NetPay)
	return p, nil
}

// UpdatePayroll re-runs the same computation the create path uses, keyed by
// the submitted inputs, and overwrites the stored figures.
func (s *Service) UpdatePayroll(id int64, dto PayrollDTO) (*Payroll, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("payroll validation failed", "error", err, "payroll_id", id)
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("payroll not found for update", "error", err, "payroll_id", id)
		return nil, ErrPayrollNotFound
	}

	p := s.buildRecord(dto)
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(p); err != nil {
		s.logger.Error("failed to update payroll", "error", err, "payroll_id", id)
		return nil, err
	}

	s.logger.Info("payroll updated", "payroll_id", id, "mode", p.ComputationMode, "net_pay", p.NetPay)
	return p, nil
}

func (s *Service) buildRecord(dto PayrollDTO) *Payroll {
	comp := Compute(dto.Inputs())
	start, end := dto.period()

	status := dto.Status
	if status == "" {
		status = StatusPending
	}

	return &Payroll{
		EmployeeID:     dto.EmployeeID,
		ProjectID:      dto.ProjectID,
		PayPeriodStart: start,
		PayPeriodEnd:   end,
		Position:       dto.Position,

		DailyRate:        dto.DailyRate,
		Meal:             dto.Meal,
		Transpo:          dto.Transpo,
		TotalDailySalary: comp.TotalDailySalary,
		DaysWorked:       dto.DaysWorked,
		TotalOTHours:     dto.TotalOTHours,
		OTAmount:         comp.OTAmount,
		HolidayPay:       dto.HolidayPay,
		HolidayPayAmount: dto.HolidayPayAmount,
		Others:           dto.Others,
		CashAdvance:      dto.CashAdvance,
		TotalDeductions:  comp.TotalDeductions,
		GrossPay:         comp.GrossPay,
		NetPay:           comp.NetPay,

		BasicSalary: comp.BasicSalary,
		Overtime:    comp.Overtime,
		Deductions:  comp.Deductions,

		ComputationMode: comp.Mode,
		Status:          status,
	}
}

func (s *Service) GetPayroll(id int64) (*Payroll, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get payroll", "error", err, "payroll_id", id)
		return nil, ErrPayrollNotFound
	}
	return p, nil
}

// ListPayroll returns the joined payroll history, newest period first, with
// the all-time summary.
func (s *Service) ListPayroll() ([]*ListRecord, *Summary, error) {
	records, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list payroll", "error", err)
		return nil, nil, err
	}

	summary, err := s.repo.Summary(nil)
	if err != nil {
		s.logger.Error("failed to summarize payroll", "error", err)
		return nil, nil, err
	}

	return records, summary, nil
}

// DeletePayroll removes the record, returning its project id so callers can
// route back to the project view it belonged to.
func (s *Service) DeletePayroll(id int64) (*int64, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("payroll not found for delete", "error", err, "payroll_id", id)
		return nil, ErrPayrollNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete payroll", "error", err, "payroll_id", id)
		return nil, err
	}

	s.logger.Info("payroll deleted", "payroll_id", id)
	return p.ProjectID, nil
}

// Overview returns the per-project payroll cost rollup.
func (s *Service) Overview() ([]*OverviewRow, error) {
	rows, err := s.repo.Overview()
	if err != nil {
		s.logger.Error("failed to build payroll overview", "error", err)
		return nil, err
	}
	return rows, nil
}

// ProjectPayroll is the project payroll page: the project, its roster, each
// assigned employee's latest payroll on the project (a zeroed "No Payroll"
// row when they have none), and the project summary.
type ProjectPayroll struct {
	Project           *project.Project          `json:"project"`
	AssignedEmployees []*project.RosterEmployee `json:"assigned_employees"`
	Records           []*ProjectPayrollRow      `json:"payroll_records"`
	Summary           *Summary                  `json:"summary"`
}

func (s *Service) GetProjectPayroll(projectID int64) (*ProjectPayroll, error) {
	proj, err := s.projects.GetProject(projectID)
	if err != nil {
		return nil, project.ErrProjectNotFound
	}

	roster, err := s.projects.GetRoster(projectID)
	if err != nil {
		s.logger.Error("failed to load project roster", "error", err, "project_id", projectID)
		return nil, err
	}

	rows, err := s.repo.LatestPerEmployee(projectID)
	if err != nil {
		s.logger.Error("failed to load project payroll", "error", err, "project_id", projectID)
		return nil, err
	}

	noPayrollStatus := "No Payroll"
	zero := 0.0
	for _, row := range rows {
		if row.PayrollID == nil {
			row.HasPayroll = false
			row.BasicSalary = &zero
			row.Overtime = &zero
			row.Deductions = &zero
			row.NetPay = &zero
			row.Status = &noPayrollStatus
		} else {
			row.HasPayroll = true
		}
	}

	summary, err := s.repo.Summary(&projectID)
	if err != nil {
		s.logger.Error("failed to summarize project payroll", "error", err, "project_id", projectID)
		return nil, err
	}

	return &ProjectPayroll{
		Project:           proj,
		AssignedEmployees: roster,
		Records:           rows,
		Summary:           summary,
	}, nil
}
