package payroll

import "context"

// PayrollRepository defines persistence for computed payrolls. A rerun for
// the same (employee, job, period) replaces the stored payroll and its items
// wholesale; items are never merged in the database.
type PayrollRepository interface {
	// Upsert stores a freshly computed payroll, replacing any existing one
	// for the same (employee, job, period)
	Upsert(ctx context.Context, p EmployeePayroll) (EmployeePayroll, error)

	// GetByEmployeePeriod retrieves one payroll with its items
	GetByEmployeePeriod(ctx context.Context, employeeID, jobType string, month, year int) (EmployeePayroll, error)

	// ListByPeriod retrieves all payrolls for a period with their items
	ListByPeriod(ctx context.Context, month, year int) ([]EmployeePayroll, error)

	// ReplaceItems swaps a stored payroll's item list and totals, used when
	// manual items are appended after a run
	ReplaceItems(ctx context.Context, p EmployeePayroll) (EmployeePayroll, error)

	// Delete removes a payroll, used when an employee drops out of a rerun
	Delete(ctx context.Context, employeeID, jobType string, month, year int) error
}
