package payroll

import (
	"time"

	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/ladang-systems/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== GENERATION DTOs ==========

type GeneratePayrollRequest struct {
	PeriodMonth   int              `json:"period_month"`
	PeriodYear    int              `json:"period_year"`
	EndMonthSplit *decimal.Decimal `json:"end_month_split,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 || r.PeriodYear > 2100 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be a valid year"})
	}
	if r.EndMonthSplit != nil && (r.EndMonthSplit.IsNegative() || r.EndMonthSplit.GreaterThan(decimal.NewFromInt(1))) {
		errs = append(errs, validator.ValidationError{Field: "end_month_split", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the half-open range for the requested month.
func (r *GeneratePayrollRequest) Period() Period {
	return PeriodForMonth(time.Month(r.PeriodMonth), r.PeriodYear)
}

type PayrollRunResponse struct {
	RunID       string                      `json:"run_id"`
	PeriodMonth int                         `json:"period_month"`
	PeriodYear  int                         `json:"period_year"`
	Sections    []string                    `json:"sections"`
	StartedAt   string                      `json:"started_at"`
	FinishedAt  string                      `json:"finished_at"`
	Processed   int                         `json:"processed"`
	Failed      int                         `json:"failed"`
	Results     []EmployeeRunResultResponse `json:"results"`
}

type EmployeeRunResultResponse struct {
	EmployeeID string          `json:"employee_id"`
	JobType    string          `json:"job_type"`
	Section    string          `json:"section"`
	State      string          `json:"state"`
	GrossPay   decimal.Decimal `json:"gross_pay"`
	Error      string          `json:"error,omitempty"`
}

// ========== MANUAL ITEM DTOs ==========

// ManualItemSpec describes a Tambahan line added outside work-log
// aggregation. Amount and the manual flag are computed by the engine, never
// supplied by the caller. Rate and quantity positivity is validated at the
// form layer; the engine itself tolerates zero or negative values.
type ManualItemSpec struct {
	PayCodeID   string          `json:"pay_code_id"`
	Description string          `json:"description"`
	RateUnit    string          `json:"rate_unit"`
	Rate        decimal.Decimal `json:"rate"`
	Quantity    decimal.Decimal `json:"quantity"`
}

func (s *ManualItemSpec) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(s.PayCodeID) {
		errs = append(errs, validator.ValidationError{Field: "pay_code_id", Message: "is required"})
	}
	if validator.IsEmpty(s.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if !worklog.RateUnit(s.RateUnit).Valid() {
		errs = append(errs, validator.ValidationError{Field: "rate_unit", Message: "must be one of Hour, Day, Bag, Trip, Percent, Fixed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== PAYROLL DTOs ==========

type PayrollItemResponse struct {
	PayCodeID   string          `json:"pay_code_id"`
	Description string          `json:"description"`
	PayType     string          `json:"pay_type"`
	RateUnit    string          `json:"rate_unit"`
	Rate        decimal.Decimal `json:"rate"`
	Quantity    decimal.Decimal `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	IsManual    bool            `json:"is_manual"`
}

type EmployeePayrollResponse struct {
	ID              string                `json:"id"`
	EmployeeID      string                `json:"employee_id"`
	JobType         string                `json:"job_type"`
	Section         string                `json:"section"`
	PeriodMonth     int                   `json:"period_month"`
	PeriodYear      int                   `json:"period_year"`
	Items           []PayrollItemResponse `json:"items"`
	GrossPay        decimal.Decimal       `json:"gross_pay"`
	NetPay          decimal.Decimal       `json:"net_pay"`
	EndMonthPayment decimal.Decimal       `json:"end_month_payment"`
	EndMonthSplit   decimal.Decimal       `json:"end_month_split"`
}
