package dashboard

// Stats are the landing-page figures. AttendanceRate is the percentage of
// today's recorded attendance marked Present, 0 when nothing is recorded yet.
type Stats struct {
	TotalEmployees int64   `json:"total_employees"`
	ActiveProjects int64   `json:"active_projects"`
	AttendanceRate float64 `json:"attendance_rate"`
	PayrollMonth   float64 `json:"payroll_month"`
}
