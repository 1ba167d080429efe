package payroll

import (
	"time"

	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/shopspring/decimal"
)

// Period is a half-open date range [Start, End). Monthly runs build it with
// PeriodForMonth, but any custom cycle (semi-monthly, weekly) works.
type Period struct {
	Start time.Time
	End   time.Time
}

// PeriodForMonth returns the period covering one calendar month.
func PeriodForMonth(month time.Month, year int) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// Contains reports whether t falls inside the period. The start is included,
// the end is not.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// PayrollItem - one aggregated pay-code line in an employee's payroll.
// Aggregation produces at most one item per pay code for a given
// (employee, job, period); manual items are appended as separate lines and
// may repeat a pay code.
type PayrollItem struct {
	PayCodeID   string
	Description string
	PayType     worklog.PayType
	RateUnit    worklog.RateUnit
	Rate        decimal.Decimal
	Quantity    decimal.Decimal
	Amount      decimal.Decimal
	IsManual    bool
}

// EmployeePayroll - the terminal artifact of one employee/job computation for
// a period. GrossPay always equals the rounded sum of item amounts; NetPay
// equals GrossPay at this layer, statutory deductions are subtracted
// downstream. A rerun produces a fresh value that replaces the stored one.
type EmployeePayroll struct {
	ID              string
	EmployeeID      string
	JobType         string
	Section         string
	PeriodMonth     int
	PeriodYear      int
	Items           []PayrollItem
	GrossPay        decimal.Decimal
	NetPay          decimal.Decimal
	EndMonthPayment decimal.Decimal
	// EndMonthSplit is the share of net pay the totals were computed
	// with. Stored so a later recompute (manual items) keeps the split
	// the run was generated with instead of the deployment default.
	EndMonthSplit decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RunState enum - per-employee progress inside one batch run.
type RunState string

const (
	RunStatePending    RunState = "pending"
	RunStateProcessing RunState = "processing"
	RunStateSuccess    RunState = "success"
	RunStateError      RunState = "error"
)

// EmployeeRunResult - the outcome for one (employee, job) pair in a batch
// run. One employee's failure never aborts the others.
type EmployeeRunResult struct {
	EmployeeID string
	JobType    string
	Section    string
	State      RunState
	GrossPay   decimal.Decimal
	Error      string
}

// PayrollRun - summary of one batch processing run.
type PayrollRun struct {
	ID          string
	PeriodMonth int
	PeriodYear  int
	Sections    []string
	StartedAt   time.Time
	FinishedAt  time.Time
	Results     []EmployeeRunResult
}

// Deduction - one statutory deduction line returned by the external
// deduction module.
type Deduction struct {
	Label          string
	EmployeeAmount decimal.Decimal
	EmployerAmount decimal.Decimal
}

// DeductionCalculator is the boundary to the statutory-deduction module. It
// consumes gross pay and returns a deduction breakdown; its rate tables and
// legal rules live outside this engine.
type DeductionCalculator interface {
	Calculate(grossPay decimal.Decimal, employeeID string) ([]Deduction, error)
}
