package project

import (
	"time"

	"github.com/frahmantamala/hr-payroll/internal"
)

const StatusActive = "Active"

type Project struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ProjectName string    `json:"project_name" gorm:"column:project_name;not null"`
	Department  string    `json:"department"`
	StartDate   time.Time `json:"start_date" gorm:"column:start_date;type:date"`
	EndDate     time.Time `json:"end_date" gorm:"column:end_date;type:date"`
	Status      string    `json:"status"`
}

func (Project) TableName() string {
	return "projects"
}

// Assignment links an employee to a project. The pair is unique at the schema
// level.
type Assignment struct {
	ProjectID  int64 `json:"project_id" gorm:"column:project_id"`
	EmployeeID int64 `json:"employee_id" gorm:"column:employee_id"`
}

func (Assignment) TableName() string {
	return "project_employees"
}

// RosterEmployee is a roster row: the employee fields the project views need.
type RosterEmployee struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type ProjectDTO struct {
	ProjectName string  `json:"project_name"`
	Department  string  `json:"department"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
	EmployeeIDs []int64 `json:"employee_ids,omitempty"`
}

func (dto ProjectDTO) Validate() error {
	if dto.ProjectName == "" {
		return internal.NewValidationError("project_name is required", internal.ErrCodeValidationFailed)
	}
	if dto.Department == "" {
		return internal.NewValidationError("department is required", internal.ErrCodeValidationFailed)
	}
	if dto.StartDate == "" {
		return internal.NewValidationError("start_date is required", internal.ErrCodeValidationFailed)
	}
	if _, err := time.Parse(time.DateOnly, dto.StartDate); err != nil {
		return internal.NewValidationError("start_date must be formatted YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if dto.EndDate == "" {
		return internal.NewValidationError("end_date is required", internal.ErrCodeValidationFailed)
	}
	if _, err := time.Parse(time.DateOnly, dto.EndDate); err != nil {
		return internal.NewValidationError("end_date must be formatted YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if dto.Status == "" {
		return internal.NewValidationError("status is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (dto ProjectDTO) parsedDates() (time.Time, time.Time) {
	start, _ := time.Parse(time.DateOnly, dto.StartDate)
	end, _ := time.Parse(time.DateOnly, dto.EndDate)
	return start, end
}

var ErrProjectNotFound = internal.NewNotFoundError("project not found", internal.ErrCodeProjectNotFound)
