package payroll

import "context"

// PayrollService is the engine's boundary-facing contract consumed by the
// HTTP layer and the scheduler.
type PayrollService interface {
	// GeneratePayroll runs the batch computation for a period and persists
	// the resulting payrolls
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (PayrollRunResponse, error)

	// GetEmployeePayroll retrieves one stored payroll
	GetEmployeePayroll(ctx context.Context, employeeID, jobType string, month, year int) (EmployeePayrollResponse, error)

	// ListPayrolls retrieves all stored payrolls for a period
	ListPayrolls(ctx context.Context, month, year int) ([]EmployeePayrollResponse, error)

	// AddManualItem appends a caller-validated Tambahan line to a stored
	// payroll, recomputes its totals and persists the new item list
	AddManualItem(ctx context.Context, employeeID, jobType string, month, year int, spec ManualItemSpec) (EmployeePayrollResponse, error)
}
