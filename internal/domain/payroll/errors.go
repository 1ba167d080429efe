package payroll

import "errors"

var (
	ErrPayrollNotFound    = errors.New("employee payroll not found for this period")
	ErrInvalidPeriod      = errors.New("invalid payroll period")
	ErrNoWorkLogsInPeriod = errors.New("no work logs recorded in this period")
	ErrRunInProgress      = errors.New("payroll run already in progress for this period")
)
