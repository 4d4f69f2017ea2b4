package project

import (
	"log/slog"
)

type Repository interface {
	GetAll() ([]*Project, error)
	GetByID(id int64) (*Project, error)
	CreateWithAssignments(p *Project, employeeIDs []int64) error
	UpdateFields(p *Project) error
	UpdateWithAssignments(p *Project, employeeIDs []int64) error
	Delete(id int64) error
	GetRoster(projectID int64) ([]*RosterEmployee, error)
	GetAssignedIDs(projectID int64) ([]int64, error)
}

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

func (s *Service) ListProjects() ([]*Project, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list projects", "error", err)
		return nil, err
	}
	return projects, nil
}

func (s *Service) GetProject(id int64) (*Project, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("project not found", "error", err, "project_id", id)
		return nil, ErrProjectNotFound
	}
	return p, nil
}

// CreateProject inserts the project and its initial assignments in one
// transaction.
func (s *Service) CreateProject(dto ProjectDTO) (*Project, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("project validation failed", "error", err)
		return nil, err
	}

	start, end := dto.parsedDates()
	p := &Project{
		ProjectName: dto.ProjectName,
		Department:  dto.Department,
		StartDate:   start,
		EndDate:     end,
		Status:      dto.Status,
	}

	if err := s.repo.CreateWithAssignments(p, dto.EmployeeIDs); err != nil {
		s.logger.Error("failed to create project", "error", err, "project_name", dto.ProjectName)
		return nil, err
	}

	s.logger.Info("project created",
		"project_id", p.ID,
		"project_name", p.ProjectName,
		"assigned_employees", len(dto.EmployeeIDs))
	return p, nil
}

// UpdateProject updates the project fields only, leaving assignments alone.
func (s *Service) UpdateProject(id int64, dto ProjectDTO) (*Project, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("project validation failed", "error", err, "project_id", id)
		return nil, err
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("project not found for update", "error", err, "project_id", id)
		return nil, ErrProjectNotFound
	}

	start, end := dto.parsedDates()
	p.ProjectName = dto.ProjectName
	p.Department = dto.Department
	p.StartDate = start
	p.EndDate = end
	p.Status = dto.Status

	if err := s.repo.UpdateFields(p); err != nil {
		s.logger.Error("failed to update project", "error", err, "project_id", id)
		return nil, err
	}

	s.logger.Info("project updated", "project_id", id)
	return p, nil
}

// EditProject updates the fields and replaces the whole roster: existing
// assignment rows are dropped and the submitted list inserted, in one
// transaction.
func (s *Service) EditProject(id int64, dto ProjectDTO) (*Project, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("project validation failed", "error", err, "project_id", id)
		return nil, err
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("project not found for edit", "error", err, "project_id", id)
		return nil, ErrProjectNotFound
	}

	start, end := dto.parsedDates()
	p.ProjectName = dto.ProjectName
	p.Department = dto.Department
	p.StartDate = start
	p.EndDate = end
	p.Status = dto.Status

	if err := s.repo.UpdateWithAssignments(p, dto.EmployeeIDs); err != nil {
		s.logger.Error("failed to edit project", "error", err, "project_id", id)
		return nil, err
	}

	s.logger.Info("project and assignments updated",
		"project_id", id,
		"assigned_employees", len(dto.EmployeeIDs))
	return p, nil
}

func (s *Service) DeleteProject(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete project", "error", err, "project_id", id)
		return err
	}

	s.logger.Info("project deleted", "project_id", id)
	return nil
}

// GetRoster returns the employees assigned to a project, ordered by name.
func (s *Service) GetRoster(projectID int64) ([]*RosterEmployee, error) {
	if _, err := s.repo.GetByID(projectID); err != nil {
		return nil, ErrProjectNotFound
	}

	roster, err := s.repo.GetRoster(projectID)
	if err != nil {
		s.logger.Error("failed to get project roster", "error", err, "project_id", projectID)
		return nil, err
	}
	return roster, nil
}

// GetAssignedIDs returns the employee ids currently assigned, for edit forms.
func (s *Service) GetAssignedIDs(projectID int64) ([]int64, error) {
	ids, err := s.repo.GetAssignedIDs(projectID)
	if err != nil {
		s.logger.Error("failed to get assigned employee ids", "error", err, "project_id", projectID)
		return nil, err
	}
	return ids, nil
}
