package report

import "time"

// GenerateDTO is a report generation request. Date applies to the daily
// attendance type, Month (YYYY-MM) to the monthly summary, ProjectID to the
// project-scoped types; each defaults when absent.
type GenerateDTO struct {
	ReportType string `json:"report_type"`
	Date       string `json:"date,omitempty"`
	Month      string `json:"month,omitempty"`
	ProjectID  *int64 `json:"project_id,omitempty"`
}

func (dto GenerateDTO) date() string {
	if dto.Date == "" {
		return time.Now().Format(time.DateOnly)
	}
	return dto.Date
}

func (dto GenerateDTO) month() string {
	if dto.Month == "" {
		return time.Now().Format("2006-01")
	}
	return dto.Month
}
