package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ladang-systems/payroll-backend-go/internal/domain/payroll"
	"github.com/ladang-systems/payroll-backend-go/internal/handler/http/response"
	"github.com/ladang-systems/payroll-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	// Batch runs
	GeneratePayroll(w http.ResponseWriter, r *http.Request)

	// Payroll queries
	ListPayrolls(w http.ResponseWriter, r *http.Request)
	GetEmployeePayroll(w http.ResponseWriter, r *http.Request)

	// Manual items
	AddManualItem(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== BATCH RUNS ==========

func (h *payrollHandlerImpl) GeneratePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GeneratePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== PAYROLL QUERIES ==========

func (h *payrollHandlerImpl) ListPayrolls(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.ListPayrolls(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetEmployeePayroll(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !validator.IsValidEmployeeCode(employeeID) {
		response.BadRequest(w, "employeeID must be 2-10 uppercase letters or digits", nil)
		return
	}
	jobType := r.URL.Query().Get("job_type")
	if jobType == "" {
		response.BadRequest(w, "job_type query parameter is required", nil)
		return
	}

	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetEmployeePayroll(r.Context(), employeeID, jobType, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== MANUAL ITEMS ==========

func (h *payrollHandlerImpl) AddManualItem(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !validator.IsValidEmployeeCode(employeeID) {
		response.BadRequest(w, "employeeID must be 2-10 uppercase letters or digits", nil)
		return
	}
	jobType := r.URL.Query().Get("job_type")
	if jobType == "" {
		response.BadRequest(w, "job_type query parameter is required", nil)
		return
	}

	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	var spec payroll.ManualItemSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.AddManualItem(r.Context(), employeeID, jobType, month, year, spec)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Manual item added", result)
}

// ========== HELPERS ==========

func periodFromQuery(w http.ResponseWriter, r *http.Request) (month, year int, ok bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "month query parameter must be 1-12", nil)
		return 0, 0, false
	}

	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(w, "year query parameter must be a valid year", nil)
		return 0, 0, false
	}

	return month, year, true
}
