package postgres

import (
	"github.com/frahmantamala/hr-payroll/internal/project"
	"gorm.io/gorm"
)

// ProjectRepository implements the project.Repository interface using GORM
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetAll() ([]*project.Project, error) {
	var projects []*project.Project
	err := r.db.Order("project_name ASC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) GetByID(id int64) (*project.Project, error) {
	var p project.Project
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, project.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) CreateWithAssignments(p *project.Project, employeeIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for _, empID := range employeeIDs {
			a := project.Assignment{ProjectID: p.ID, EmployeeID: empID}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProjectRepository) UpdateFields(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *ProjectRepository) UpdateWithAssignments(p *project.Project, employeeIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", p.ID).Delete(&project.Assignment{}).Error; err != nil {
			return err
		}
		for _, empID := range employeeIDs {
			a := project.Assignment{ProjectID: p.ID, EmployeeID: empID}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProjectRepository) Delete(id int64) error {
	return r.db.Delete(&project.Project{}, id).Error
}

func (r *ProjectRepository) GetRoster(projectID int64) ([]*project.RosterEmployee, error) {
	var roster []*project.RosterEmployee
	err := r.db.Raw(`
		SELECT e.id, e.name, e.position
		FROM project_employees pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE pe.project_id = ?
		ORDER BY e.name
	`, projectID).Scan(&roster).Error
	return roster, err
}

func (r *ProjectRepository) GetAssignedIDs(projectID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Raw(`
		SELECT employee_id FROM project_employees WHERE project_id = ?
	`, projectID).Scan(&ids).Error
	return ids, err
}
