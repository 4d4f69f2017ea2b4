package payroll

import (
	"time"

	"github.com/frahmantamala/hr-payroll/internal"
)

// PayrollDTO carries a payroll submission. Monetary fields default to zero
// when absent; the computation mode is inferred from basic_salary, never sent
// explicitly.
type PayrollDTO struct {
	EmployeeID     int64  `json:"employee_id"`
	ProjectID      *int64 `json:"project_id,omitempty"`
	PayPeriodStart string `json:"pay_period_start"`
	PayPeriodEnd   string `json:"pay_period_end"`
	Position       string `json:"position"`

	DailyRate        float64 `json:"daily_rate"`
	Meal             float64 `json:"meal"`
	Transpo          float64 `json:"transpo"`
	DaysWorked       int     `json:"days_worked"`
	TotalOTHours     float64 `json:"total_ot_hours"`
	HolidayPay       float64 `json:"holiday_pay"`
	HolidayPayAmount float64 `json:"holiday_pay_amount"`
	Others           float64 `json:"others"`
	CashAdvance      float64 `json:"cash_advance"`

	BasicSalary float64 `json:"basic_salary"`
	Overtime    float64 `json:"overtime"`
	Deductions  float64 `json:"deductions"`

	Status string `json:"status"`
}

func (dto PayrollDTO) Validate() error {
	if dto.EmployeeID <= 0 {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.PayPeriodStart == "" {
		return internal.NewValidationError("pay_period_start is required", internal.ErrCodeValidationFailed)
	}
	if _, err := time.Parse(time.DateOnly, dto.PayPeriodStart); err != nil {
		return internal.NewValidationError("pay_period_start must be formatted YYYY-MM-DD", internal.ErrCodeInvalidPeriod)
	}
	if dto.PayPeriodEnd == "" {
		return internal.NewValidationError("pay_period_end is required", internal.ErrCodeValidationFailed)
	}
	if _, err := time.Parse(time.DateOnly, dto.PayPeriodEnd); err != nil {
		return internal.NewValidationError("pay_period_end must be formatted YYYY-MM-DD", internal.ErrCodeInvalidPeriod)
	}
	return nil
}

func (dto PayrollDTO) period() (time.Time, time.Time) {
	start, _ := time.Parse(time.DateOnly, dto.PayPeriodStart)
	end, _ := time.Parse(time.DateOnly, dto.PayPeriodEnd)
	return start, end
}

// Inputs maps the DTO onto the computation inputs.
func (dto PayrollDTO) Inputs() ComputeInputs {
	return ComputeInputs{
		BasicSalary:      dto.BasicSalary,
		Overtime:         dto.Overtime,
		Deductions:       dto.Deductions,
		DailyRate:        dto.DailyRate,
		Meal:             dto.Meal,
		Transpo:          dto.Transpo,
		DaysWorked:       dto.DaysWorked,
		TotalOTHours:     dto.TotalOTHours,
		HolidayPayAmount: dto.HolidayPayAmount,
		Others:           dto.Others,
		CashAdvance:      dto.CashAdvance,
	}
}
