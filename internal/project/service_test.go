package project_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/frahmantamala/hr-payroll/internal/project"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestProject(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Project Suite")
}

// mockRepository implements project.Repository for testing
type mockRepository struct {
	projects    map[int64]*project.Project
	assignments map[int64][]int64
	nextID      int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		projects:    make(map[int64]*project.Project),
		assignments: make(map[int64][]int64),
		nextID:      1,
	}
}

func (m *mockRepository) GetAll() ([]*project.Project, error) {
	var out []*project.Project
	for _, p := range m.projects {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepository) GetByID(id int64) (*project.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, project.ErrProjectNotFound
	}
	return p, nil
}

func (m *mockRepository) CreateWithAssignments(p *project.Project, employeeIDs []int64) error {
	p.ID = m.nextID
	m.nextID++
	m.projects[p.ID] = p
	m.assignments[p.ID] = employeeIDs
	return nil
}

func (m *mockRepository) UpdateFields(p *project.Project) error {
	m.projects[p.ID] = p
	return nil
}

func (m *mockRepository) UpdateWithAssignments(p *project.Project, employeeIDs []int64) error {
	m.projects[p.ID] = p
	m.assignments[p.ID] = employeeIDs
	return nil
}

func (m *mockRepository) Delete(id int64) error {
	delete(m.projects, id)
	delete(m.assignments, id)
	return nil
}

func (m *mockRepository) GetRoster(projectID int64) ([]*project.RosterEmployee, error) {
	var roster []*project.RosterEmployee
	for _, id := range m.assignments[projectID] {
		roster = append(roster, &project.RosterEmployee{ID: id, Name: "Employee"})
	}
	return roster, nil
}

func (m *mockRepository) GetAssignedIDs(projectID int64) ([]int64, error) {
	return m.assignments[projectID], nil
}

var _ = Describe("Project Service", func() {
	var (
		mockRepo *mockRepository
		service  *project.Service
		validDTO project.ProjectDTO
	)

	BeforeEach(func() {
		mockRepo = newMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = project.NewService(mockRepo, logger)

		validDTO = project.ProjectDTO{
			ProjectName: "Bridge Repair",
			Department:  "Operations",
			StartDate:   "2026-01-01",
			EndDate:     "2026-12-31",
			Status:      "Active",
			EmployeeIDs: []int64{1, 2},
		}
	})

	Describe("CreateProject", func() {
		It("creates the project with its initial roster", func() {
			p, err := service.CreateProject(validDTO)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ID).NotTo(BeZero())
			Expect(mockRepo.assignments[p.ID]).To(Equal([]int64{1, 2}))
		})

		It("rejects a malformed start date", func() {
			dto := validDTO
			dto.StartDate = "01/01/2026"
			_, err := service.CreateProject(dto)
			Expect(err).To(MatchError(ContainSubstring("start_date")))
		})

		It("requires an end date", func() {
			dto := validDTO
			dto.EndDate = ""
			_, err := service.CreateProject(dto)
			Expect(err).To(MatchError(ContainSubstring("end_date")))
		})
	})

	Describe("UpdateProject", func() {
		It("updates fields without touching the roster", func() {
			p, err := service.CreateProject(validDTO)
			Expect(err).NotTo(HaveOccurred())

			dto := validDTO
			dto.Status = "Completed"
			dto.EmployeeIDs = []int64{3}
			updated, err := service.UpdateProject(p.ID, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal("Completed"))
			Expect(mockRepo.assignments[p.ID]).To(Equal([]int64{1, 2}))
		})

		It("returns not found for an unknown id", func() {
			_, err := service.UpdateProject(99, validDTO)
			Expect(err).To(MatchError(project.ErrProjectNotFound))
		})
	})

	Describe("EditProject", func() {
		It("replaces the roster with the submitted list", func() {
			p, err := service.CreateProject(validDTO)
			Expect(err).NotTo(HaveOccurred())

			dto := validDTO
			dto.EmployeeIDs = []int64{3}
			_, err = service.EditProject(p.ID, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.assignments[p.ID]).To(Equal([]int64{3}))
		})

		It("clears the roster when none are submitted", func() {
			p, err := service.CreateProject(validDTO)
			Expect(err).NotTo(HaveOccurred())

			dto := validDTO
			dto.EmployeeIDs = nil
			_, err = service.EditProject(p.ID, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.assignments[p.ID]).To(BeEmpty())
		})
	})

	Describe("GetRoster", func() {
		It("returns not found for an unknown project", func() {
			_, err := service.GetRoster(99)
			Expect(err).To(MatchError(project.ErrProjectNotFound))
		})

		It("returns the assigned employees", func() {
			p, err := service.CreateProject(validDTO)
			Expect(err).NotTo(HaveOccurred())

			roster, err := service.GetRoster(p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(roster).To(HaveLen(2))
		})
	})

	Describe("DeleteProject", func() {
		It("removes the project and its assignments", func() {
			p, err := service.CreateProject(validDTO)
			Expect(err).NotTo(HaveOccurred())
			Expect(service.DeleteProject(p.ID)).To(Succeed())
			Expect(mockRepo.projects).NotTo(HaveKey(p.ID))
			Expect(mockRepo.assignments).NotTo(HaveKey(p.ID))
		})
	})
})
