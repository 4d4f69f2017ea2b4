package employee

import (
	"log/slog"
)

// Repository defines the data access methods for employees
type Repository interface {
	GetAll() ([]*Employee, error)
	GetByID(id int64) (*Employee, error)
	Create(emp *Employee) error
	Update(emp *Employee) error
	Delete(id int64) error
}

// Service handles employee business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListEmployees returns all employees ordered by name.
func (s *Service) ListEmployees() ([]*Employee, error) {
	employees, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

func (s *Service) CreateEmployee(dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee validation failed", "error", err)
		return nil, err
	}

	emp := &Employee{
		Name:       dto.Name,
		Position:   dto.Position,
		Department: dto.Department,
		Status:     dto.Status,
	}

	if err := s.repo.Create(emp); err != nil {
		s.logger.Error("failed to create employee", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", emp.ID, "name", emp.Name)
	return emp, nil
}

func (s *Service) UpdateEmployee(id int64, dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee validation failed", "error", err, "employee_id", id)
		return nil, err
	}

	emp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("employee not found for update", "error", err, "employee_id", id)
		return nil, ErrEmployeeNotFound
	}

	emp.Name = dto.Name
	emp.Position = dto.Position
	emp.Department = dto.Department
	emp.Status = dto.Status

	if err := s.repo.Update(emp); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, err
	}

	s.logger.Info("employee updated", "employee_id", id)
	return emp, nil
}

// DeleteEmployee removes the row unconditionally. Attendance, payroll and
// assignment rows referencing it are left in place; readers tolerate orphans.
func (s *Service) DeleteEmployee(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return err
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}
