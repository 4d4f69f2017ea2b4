package postgres

import (
	"github.com/frahmantamala/hr-payroll/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll() ([]*employee.Employee, error) {
	var employees []*employee.Employee
	err := r.db.Order("name ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) Create(emp *employee.Employee) error {
	return r.db.Create(emp).Error
}

func (r *EmployeeRepository) Update(emp *employee.Employee) error {
	return r.db.Save(emp).Error
}

func (r *EmployeeRepository) Delete(id int64) error {
	return r.db.Delete(&employee.Employee{}, id).Error
}
