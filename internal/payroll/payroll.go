package payroll

import (
	"time"

	"github.com/frahmantamala/hr-payroll/internal"
)

// Fixed business constants: overtime premium and the hours that convert a
// daily rate into an hourly one. Not configurable.
const (
	OvertimeMultiplier = 1.25
	DailyRateDivisor   = 8.0
)

// Computation modes. A row remembers how it was computed so edits re-run the
// same branch selection the create path used.
const (
	ModeLegacy   = "legacy"
	ModeItemized = "itemized"
)

const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

// Payroll is one pay run for one employee over one period.
type Payroll struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	EmployeeID     int64     `json:"employee_id" gorm:"column:employee_id;not null"`
	ProjectID      *int64    `json:"project_id,omitempty" gorm:"column:project_id"`
	PayPeriodStart time.Time `json:"pay_period_start" gorm:"column:pay_period_start;type:date"`
	PayPeriodEnd   time.Time `json:"pay_period_end" gorm:"column:pay_period_end;type:date"`
	Position       string    `json:"position"`

	DailyRate        float64 `json:"daily_rate" gorm:"column:daily_rate"`
	Meal             float64 `json:"meal"`
	Transpo          float64 `json:"transpo"`
	TotalDailySalary float64 `json:"total_daily_salary" gorm:"column:total_daily_salary"`
	DaysWorked       int     `json:"days_worked" gorm:"column:days_worked"`
	TotalOTHours     float64 `json:"total_ot_hours" gorm:"column:total_ot_hours"`
	OTAmount         float64 `json:"ot_amount" gorm:"column:ot_amount"`
	HolidayPay       float64 `json:"holiday_pay" gorm:"column:holiday_pay"`
	HolidayPayAmount float64 `json:"holiday_pay_amount" gorm:"column:holiday_pay_amount"`
	Others           float64 `json:"others"`
	CashAdvance      float64 `json:"cash_advance" gorm:"column:cash_advance"`
	TotalDeductions  float64 `json:"total_deductions" gorm:"column:total_deductions"`
	GrossPay         float64 `json:"gross_pay" gorm:"column:gross_pay"`
	NetPay           float64 `json:"net_pay" gorm:"column:net_pay"`

	BasicSalary float64 `json:"basic_salary" gorm:"column:basic_salary"`
	Overtime    float64 `json:"overtime"`
	Deductions  float64 `json:"deductions"`

	ComputationMode string    `json:"computation_mode" gorm:"column:computation_mode"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
}

func (Payroll) TableName() string {
	return "payroll"
}

// ComputeInputs are the raw per-period figures a payroll submission carries.
// Absent or unparseable values arrive as zero.
type ComputeInputs struct {
	BasicSalary      float64
	Overtime         float64
	Deductions       float64
	DailyRate        float64
	Meal             float64
	Transpo          float64
	DaysWorked       int
	TotalOTHours     float64
	HolidayPayAmount float64
	Others           float64
	CashAdvance      float64
}

// Computation is the derived pay figures. BasicSalary, Overtime and
// Deductions are back-filled in itemized mode so readers that only know the
// legacy columns still see coherent totals.
type Computation struct {
	Mode             string
	TotalDailySalary float64
	OTAmount         float64
	TotalDeductions  float64
	GrossPay         float64
	NetPay           float64
	BasicSalary      float64
	Overtime         float64
	Deductions       float64
}

// Compute derives the pay figures for one submission. A positive basic salary
// selects legacy mode; otherwise the itemized daily-rate mode applies.
func Compute(in ComputeInputs) Computation {
	if in.BasicSalary > 0 {
		return computeLegacy(in)
	}
	return computeItemized(in)
}

func computeLegacy(in ComputeInputs) Computation {
	c := Computation{
		Mode:        ModeLegacy,
		BasicSalary: in.BasicSalary,
		Overtime:    in.Overtime,
		Deductions:  in.Deductions,
	}

	c.NetPay = in.BasicSalary + in.Overtime - in.Deductions

	if in.DailyRate > 0 {
		c.TotalDailySalary = in.DailyRate + in.Meal + in.Transpo
	} else {
		// floor the divisor at 1 so a zero days_worked cannot divide by zero
		days := in.DaysWorked
		if days < 1 {
			days = 1
		}
		c.TotalDailySalary = in.BasicSalary / float64(days)
	}

	if in.TotalOTHours > 0 && in.DailyRate > 0 {
		c.OTAmount = (in.DailyRate / DailyRateDivisor) * OvertimeMultiplier * in.TotalOTHours
	} else {
		c.OTAmount = in.Overtime
	}

	if in.CashAdvance > 0 {
		c.TotalDeductions = in.CashAdvance
	} else {
		c.TotalDeductions = in.Deductions
	}

	c.GrossPay = in.BasicSalary + in.Overtime
	return c
}

func computeItemized(in ComputeInputs) Computation {
	c := Computation{Mode: ModeItemized}

	c.TotalDailySalary = in.DailyRate + in.Meal + in.Transpo

	if in.DailyRate > 0 {
		c.OTAmount = (in.DailyRate / DailyRateDivisor) * OvertimeMultiplier * in.TotalOTHours
	}

	c.TotalDeductions = in.CashAdvance
	c.GrossPay = c.TotalDailySalary*float64(in.DaysWorked) + c.OTAmount + in.HolidayPayAmount + in.Others
	c.NetPay = c.GrossPay - c.TotalDeductions

	c.BasicSalary = c.TotalDailySalary * float64(in.DaysWorked)
	c.Overtime = c.OTAmount
	c.Deductions = c.TotalDeductions
	return c
}

// ListRecord is the payroll list row joined to employee and project names.
type ListRecord struct {
	Payroll
	Name        string  `json:"name"`
	EmpPosition string  `json:"emp_position" gorm:"column:emp_position"`
	ProjectName *string `json:"project_name,omitempty" gorm:"column:project_name"`
}

// Summary aggregates a payroll set, falling back to the legacy columns when
// the derived ones are null on old rows.
type Summary struct {
	EmployeesPaid   int64   `json:"employees_paid" gorm:"column:employees_paid"`
	TotalGrossPay   float64 `json:"total_gross_pay" gorm:"column:total_gross_pay"`
	TotalDeductions float64 `json:"total_deductions" gorm:"column:total_deductions"`
	TotalNetPay     float64 `json:"total_net_pay" gorm:"column:total_net_pay"`
}

// OverviewRow is the per-project cost rollup.
type OverviewRow struct {
	ID                   int64   `json:"id"`
	ProjectName          string  `json:"project_name" gorm:"column:project_name"`
	Department           string  `json:"department"`
	Status               string  `json:"status"`
	TotalPayrollCost     float64 `json:"total_payroll_cost" gorm:"column:total_payroll_cost"`
	EmployeeCount        int64   `json:"employee_count" gorm:"column:employee_count"`
	EmployeesWithPayroll int64   `json:"employees_with_payroll" gorm:"column:employees_with_payroll"`
	PayrollRecordCount   int64   `json:"payroll_record_count" gorm:"column:payroll_record_count"`
}

// ProjectPayrollRow is one assigned employee with their latest payroll on the
// project, when they have one. Payroll fields are nil for employees never paid
// on the project.
type ProjectPayrollRow struct {
	EmployeeID     int64      `json:"employee_id" gorm:"column:employee_id"`
	Name           string     `json:"name"`
	Position       string     `json:"position"`
	PayrollID      *int64     `json:"payroll_id,omitempty" gorm:"column:payroll_id"`
	PayPeriodStart *time.Time `json:"pay_period_start,omitempty" gorm:"column:pay_period_start"`
	PayPeriodEnd   *time.Time `json:"pay_period_end,omitempty" gorm:"column:pay_period_end"`
	BasicSalary    *float64   `json:"basic_salary,omitempty" gorm:"column:basic_salary"`
	Overtime       *float64   `json:"overtime,omitempty"`
	Deductions     *float64   `json:"deductions,omitempty"`
	NetPay         *float64   `json:"net_pay,omitempty" gorm:"column:net_pay"`
	GrossPay       *float64   `json:"gross_pay,omitempty" gorm:"column:gross_pay"`
	Status         *string    `json:"status,omitempty"`
	HasPayroll     bool       `json:"has_payroll" gorm:"-"`
}

var ErrPayrollNotFound = internal.NewNotFoundError("payroll record not found", internal.ErrCodePayrollNotFound)
