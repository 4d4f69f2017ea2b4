package dashboard

import (
	"log/slog"
	"math"
	"time"
)

// Repository defines the counting queries behind the dashboard.
type Repository interface {
	CountEmployees() (int64, error)
	CountActiveProjects() (int64, error)
	CountAttendance(date string) (int64, error)
	CountPresent(date string) (int64, error)
	PayrollForCurrentMonth() (float64, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetStats() (*Stats, error) {
	employees, err := s.repo.CountEmployees()
	if err != nil {
		s.logger.Error("failed to count employees", "error", err)
		return nil, err
	}

	projects, err := s.repo.CountActiveProjects()
	if err != nil {
		s.logger.Error("failed to count active projects", "error", err)
		return nil, err
	}

	today := time.Now().Format(time.DateOnly)
	recorded, err := s.repo.CountAttendance(today)
	if err != nil {
		s.logger.Error("failed to count attendance", "error", err)
		return nil, err
	}

	var rate float64
	if recorded > 0 {
		present, err := s.repo.CountPresent(today)
		if err != nil {
			s.logger.Error("failed to count present attendance", "error", err)
			return nil, err
		}
		rate = math.Round(float64(present)/float64(recorded)*100*100) / 100
	}

	payrollMonth, err := s.repo.PayrollForCurrentMonth()
	if err != nil {
		s.logger.Error("failed to sum monthly payroll", "error", err)
		return nil, err
	}

	return &Stats{
		TotalEmployees: employees,
		ActiveProjects: projects,
		AttendanceRate: rate,
		PayrollMonth:   payrollMonth,
	}, nil
}
