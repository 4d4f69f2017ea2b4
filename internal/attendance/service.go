package attendance

import (
	"log/slog"
	"time"
)

type Repository interface {
	ListByDate(date time.Time) ([]*Record, error)
	GetByID(id int64) (*Attendance, error)
	ExistsForDate(employeeID int64, date time.Time) (bool, error)
	Create(att *Attendance) error
	Update(att *Attendance) error
	Delete(id int64) error
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

// ListForDate returns the joined attendance rows for one date. Employees with
// no record that day are simply absent from the result.
func (s *Service) ListForDate(date time.Time) ([]*Record, error) {
	records, err := s.repo.ListByDate(date)
	if err != nil {
		s.logger.Error("failed to list attendance", "error", err, "date", date.Format(time.DateOnly))
		return nil, err
	}
	return records, nil
}

func (s *Service) RecordAttendance(dto AttendanceDTO) (*Attendance, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("attendance validation failed", "error", err)
		return nil, err
	}

	date := dto.ParsedDate()

	exists, err := s.repo.ExistsForDate(dto.EmployeeID, date)
	if err != nil {
		s.logger.Error("failed to check existing attendance", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateAttendance
	}

	att := &Attendance{
		EmployeeID: dto.EmployeeID,
		Date:       date,
		Status:     dto.Status,
	}

	if err := s.repo.Create(att); err != nil {
		s.logger.Error("failed to create attendance", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("attendance recorded",
		"attendance_id", att.ID,
		"employee_id", att.EmployeeID,
		"date", dto.Date,
		"status", att.Status)
	return att, nil
}

func (s *Service) UpdateAttendance(id int64, dto AttendanceDTO) (*Attendance, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("attendance validation failed", "error", err, "attendance_id", id)
		return nil, err
	}

	att, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("attendance not found for update", "error", err, "attendance_id", id)
		return nil, ErrAttendanceNotFound
	}

	att.EmployeeID = dto.EmployeeID
	att.Date = dto.ParsedDate()
	att.Status = dto.Status

	if err := s.repo.Update(att); err != nil {
		s.logger.Error("failed to update attendance", "error", err, "attendance_id", id)
		return nil, err
	}

	s.logger.Info("attendance updated", "attendance_id", id)
	return att, nil
}

func (s *Service) DeleteAttendance(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete attendance", "error", err, "attendance_id", id)
		return err
	}

	s.logger.Info("attendance deleted", "attendance_id", id)
	return nil
}
