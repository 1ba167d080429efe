package payroll

import (
	"github.com/ladang-systems/payroll-backend-go/internal/domain/payroll"
	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/shopspring/decimal"
)

// DefaultEndMonthSplit is the default share of net pay paid out at end of
// month, the rest having been advanced mid-month. A business policy default,
// not a statutory rule; callers override it per run.
var DefaultEndMonthSplit = decimal.NewFromFloat(0.5)

// ProcessEmployeePayroll computes one employee's payroll for one job over a
// period. Gross pay is the rounded sum of aggregated item amounts; net pay
// equals gross pay at this layer, statutory deductions are an external
// collaborator invoked later in the pipeline.
//
// No matching work logs is a valid, common state (the employee did not work
// that period) and yields a payroll with no items and zero totals, never an
// error.
func ProcessEmployeePayroll(workLogs []worklog.WorkLog, employeeID, jobType, section string, period payroll.Period, endMonthSplit decimal.Decimal) payroll.EmployeePayroll {
	items := AggregateActivities(workLogs, employeeID, jobType, period)

	p := payroll.EmployeePayroll{
		EmployeeID:  employeeID,
		JobType:     jobType,
		Section:     section,
		PeriodMonth: int(period.Start.Month()),
		PeriodYear:  period.Start.Year(),
		Items:       items,
	}
	return RecomputeTotals(p, endMonthSplit)
}

// RecomputeTotals re-derives gross, net and end-month figures from a
// payroll's current item list. Used both after aggregation and after manual
// items are appended, so gross pay always reconciles with Σ item.Amount.
// The split is recorded on the payroll so later recomputes reuse it.
func RecomputeTotals(p payroll.EmployeePayroll, endMonthSplit decimal.Decimal) payroll.EmployeePayroll {
	gross := decimal.Zero
	for _, item := range p.Items {
		gross = gross.Add(item.Amount)
	}

	p.GrossPay = gross.Round(2)
	p.NetPay = p.GrossPay
	p.EndMonthSplit = endMonthSplit
	p.EndMonthPayment = p.NetPay.Mul(endMonthSplit).Round(2)
	return p
}
