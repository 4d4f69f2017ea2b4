package employee

import "github.com/frahmantamala/hr-payroll/internal"

// Employee is the staff master record.
type Employee struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"not null"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeDTO carries the form fields for create and update. Only presence is
// validated.
type EmployeeDTO struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

func (dto EmployeeDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if dto.Position == "" {
		return internal.NewValidationError("position is required", internal.ErrCodeValidationFailed)
	}
	if dto.Department == "" {
		return internal.NewValidationError("department is required", internal.ErrCodeValidationFailed)
	}
	if dto.Status == "" {
		return internal.NewValidationError("status is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

var ErrEmployeeNotFound = internal.NewNotFoundError("employee not found", internal.ErrCodeEmployeeNotFound)
