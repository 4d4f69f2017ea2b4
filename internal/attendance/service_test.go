package attendance_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frahmantamala/hr-payroll/internal/attendance"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAttendance(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attendance Suite")
}

// mockRepository implements attendance.Repository for testing
type mockRepository struct {
	records    map[int64]*attendance.Attendance
	nextID     int64
	shouldFail bool
	failError  error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		records: make(map[int64]*attendance.Attendance),
		nextID:  1,
	}
}

func (m *mockRepository) ListByDate(date time.Time) ([]*attendance.Record, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var out []*attendance.Record
	for _, a := range m.records {
		if a.Date.Equal(date) {
			out = append(out, &attendance.Record{
				ID:         a.ID,
				EmployeeID: a.EmployeeID,
				Date:       a.Date,
				Status:     a.Status,
			})
		}
	}
	return out, nil
}

func (m *mockRepository) GetByID(id int64) (*attendance.Attendance, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	a, ok := m.records[id]
	if !ok {
		return nil, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (m *mockRepository) ExistsForDate(employeeID int64, date time.Time) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	for _, a := range m.records {
		if a.EmployeeID == employeeID && a.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) Create(att *attendance.Attendance) error {
	if m.shouldFail {
		return m.failError
	}
	att.ID = m.nextID
	m.nextID++
	m.records[att.ID] = att
	return nil
}

func (m *mockRepository) Update(att *attendance.Attendance) error {
	if m.shouldFail {
		return m.failError
	}
	m.records[att.ID] = att
	return nil
}

func (m *mockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.records, id)
	return nil
}

var _ = Describe("Attendance Service", func() {
	var (
		mockRepo *mockRepository
		service  *attendance.Service
	)

	BeforeEach(func() {
		mockRepo = newMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = attendance.NewService(mockRepo, logger)
	})

	Describe("RecordAttendance", func() {
		It("records a valid submission", func() {
			att, err := service.RecordAttendance(attendance.AttendanceDTO{
				EmployeeID: 1,
				Date:       "2026-08-28",
				Status:     attendance.StatusPresent,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(att.ID).NotTo(BeZero())
			Expect(att.Status).To(Equal(attendance.StatusPresent))
		})

		It("rejects a second record for the same employee and date", func() {
			dto := attendance.AttendanceDTO{
				EmployeeID: 1,
				Date:       "2026-08-28",
				Status:     attendance.StatusPresent,
			}
			_, err := service.RecordAttendance(dto)
			Expect(err).NotTo(HaveOccurred())

			dto.Status = attendance.StatusLate
			_, err = service.RecordAttendance(dto)
			Expect(err).To(MatchError(attendance.ErrDuplicateAttendance))
		})

		It("allows the same employee on another date", func() {
			_, err := service.RecordAttendance(attendance.AttendanceDTO{
				EmployeeID: 1, Date: "2026-08-28", Status: attendance.StatusPresent,
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.RecordAttendance(attendance.AttendanceDTO{
				EmployeeID: 1, Date: "2026-08-29", Status: attendance.StatusAbsent,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a malformed date", func() {
			_, err := service.RecordAttendance(attendance.AttendanceDTO{
				EmployeeID: 1, Date: "28/08/2026", Status: attendance.StatusPresent,
			})
			Expect(err).To(HaveOccurred())
		})

		It("propagates repository failures", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("database error")
			_, err := service.RecordAttendance(attendance.AttendanceDTO{
				EmployeeID: 1, Date: "2026-08-28", Status: attendance.StatusPresent,
			})
			Expect(err).To(MatchError(ContainSubstring("database error")))
		})
	})

	Describe("UpdateAttendance", func() {
		It("overwrites the stored fields", func() {
			created, err := service.RecordAttendance(attendance.AttendanceDTO{
				EmployeeID: 1, Date: "2026-08-28", Status: attendance.StatusPresent,
			})
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.UpdateAttendance(created.ID, attendance.AttendanceDTO{
				EmployeeID: 1, Date: "2026-08-28", Status: attendance.StatusLate,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(attendance.StatusLate))
		})

		It("returns not found for an unknown id", func() {
			_, err := service.UpdateAttendance(99, attendance.AttendanceDTO{
				EmployeeID: 1, Date: "2026-08-28", Status: attendance.StatusLate,
			})
			Expect(err).To(MatchError(attendance.ErrAttendanceNotFound))
		})
	})

	Describe("ListForDate", func() {
		It("returns only records for the requested date", func() {
			_, err := service.RecordAttendance(attendance.AttendanceDTO{
				EmployeeID: 1, Date: "2026-08-28", Status: attendance.StatusPresent,
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.RecordAttendance(attendance.AttendanceDTO{
				EmployeeID: 2, Date: "2026-08-27", Status: attendance.StatusPresent,
			})
			Expect(err).NotTo(HaveOccurred())

			day, _ := time.Parse(time.DateOnly, "2026-08-28")
			records, err := service.ListForDate(day)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].EmployeeID).To(Equal(int64(1)))
		})
	})
})
