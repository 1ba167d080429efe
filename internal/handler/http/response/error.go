package response

import (
	"errors"
	"net/http"

	"github.com/ladang-systems/payroll-backend-go/internal/domain/payroll"
	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/ladang-systems/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Employee payroll not found for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrNoWorkLogsInPeriod):
		NotFound(w, "No work logs recorded in this period")
	case errors.Is(err, payroll.ErrRunInProgress):
		Conflict(w, "Payroll run already in progress for this period")

	// Work log domain errors
	case errors.Is(err, worklog.ErrWorkLogNotFound):
		NotFound(w, "Work log not found")
	case errors.Is(err, worklog.ErrWorkLogLocked):
		Conflict(w, "Work log already processed")
	case errors.Is(err, worklog.ErrEmployeeEntryNotFound):
		NotFound(w, "Employee entry not found in work log")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
