package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ladang-systems/payroll-backend-go/internal/domain/payroll"
	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	workLogRepo worklog.WorkLogRepository
	payrollRepo payroll.PayrollRepository

	// workerLimit bounds how many employee computations run at once so a
	// batch run cannot overwhelm the persistence layer
	workerLimit   int
	endMonthSplit decimal.Decimal
}

func NewPayrollService(
	workLogRepo worklog.WorkLogRepository,
	payrollRepo payroll.PayrollRepository,
	workerLimit int,
	endMonthSplit decimal.Decimal,
) payroll.PayrollService {
	if workerLimit < 1 {
		workerLimit = 1
	}
	// Negative means "use the default". Zero is a legitimate policy of
	// paying everything mid-month, so it must stay expressible.
	if endMonthSplit.IsNegative() {
		endMonthSplit = DefaultEndMonthSplit
	}
	return &PayrollServiceImpl{
		workLogRepo:   workLogRepo,
		payrollRepo:   payrollRepo,
		workerLimit:   workerLimit,
		endMonthSplit: endMonthSplit,
	}
}

// employeeJob is one (employee, job) pair discovered in a period's work logs.
type employeeJob struct {
	EmployeeID string
	JobType    string
	Section    string
}

// ========== BATCH GENERATION ==========

func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	period := req.Period()
	split := s.endMonthSplit
	if req.EndMonthSplit != nil {
		split = *req.EndMonthSplit
	}

	workLogs, err := s.workLogRepo.ListByPeriod(ctx, period.Start, period.End)
	if err != nil {
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to load work logs: %w", err)
	}

	reportRateUnitAnomalies(workLogs)

	sections, err := s.workLogRepo.ListSections(ctx, period.Start, period.End)
	if err != nil {
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to list sections: %w", err)
	}

	pairs := collectEmployeeJobs(workLogs)
	startedAt := time.Now()

	results := make([]payroll.EmployeeRunResult, len(pairs))
	for i, pair := range pairs {
		results[i] = payroll.EmployeeRunResult{
			EmployeeID: pair.EmployeeID,
			JobType:    pair.JobType,
			Section:    pair.Section,
			State:      payroll.RunStatePending,
		}
	}

	// One employee per worker slot; each computation reads only its own
	// slice of the work logs and writes only its own payroll, so the only
	// shared write is to its own results entry.
	sem := make(chan struct{}, s.workerLimit)
	var wg sync.WaitGroup

	for i, pair := range pairs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, pair employeeJob) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i].State = payroll.RunStateProcessing
			if err := s.processOne(ctx, workLogs, pair, period, split, &results[i]); err != nil {
				results[i].State = payroll.RunStateError
				results[i].Error = err.Error()
				slog.Error("payroll computation failed",
					"employee_id", pair.EmployeeID,
					"job_type", pair.JobType,
					"error", err,
				)
				return
			}
			results[i].State = payroll.RunStateSuccess
		}(i, pair)
	}
	wg.Wait()

	s.removeStalePayrolls(ctx, req.PeriodMonth, req.PeriodYear, pairs)

	run := payroll.PayrollRun{
		ID:          uuid.NewString(),
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Sections:    sections,
		StartedAt:   startedAt,
		FinishedAt:  time.Now(),
		Results:     results,
	}

	slog.Info("payroll run finished",
		"run_id", run.ID,
		"period_month", run.PeriodMonth,
		"period_year", run.PeriodYear,
		"employees", len(results),
	)

	return mapToRunResponse(run), nil
}

// processOne computes and persists a single employee's payroll. A panic from
// malformed activity data is demoted to a per-employee error so the rest of
// the batch keeps going.
func (s *PayrollServiceImpl) processOne(ctx context.Context, workLogs []worklog.WorkLog, pair employeeJob, period payroll.Period, split decimal.Decimal, result *payroll.EmployeeRunResult) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("payroll computation panicked: %v", p)
		}
	}()

	p := ProcessEmployeePayroll(workLogs, pair.EmployeeID, pair.JobType, pair.Section, period, split)

	stored, err := s.payrollRepo.Upsert(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to store payroll: %w", err)
	}

	result.GrossPay = stored.GrossPay
	return nil
}

// removeStalePayrolls deletes stored payrolls whose (employee, job) pair no
// longer appears in the period's work logs, so a rerun after work-log
// corrections does not leave an orphaned payroll behind for an employee who
// dropped out. Cleanup failures are logged, never fail the run.
func (s *PayrollServiceImpl) removeStalePayrolls(ctx context.Context, month, year int, pairs []employeeJob) {
	stored, err := s.payrollRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		slog.Error("failed to list payrolls for stale cleanup", "error", err)
		return
	}

	current := make(map[string]struct{}, len(pairs))
	for _, pair := range pairs {
		current[pair.EmployeeID+"|"+pair.JobType] = struct{}{}
	}

	for _, p := range stored {
		if _, ok := current[p.EmployeeID+"|"+p.JobType]; ok {
			continue
		}
		if err := s.payrollRepo.Delete(ctx, p.EmployeeID, p.JobType, month, year); err != nil {
			slog.Error("failed to delete stale payroll",
				"employee_id", p.EmployeeID,
				"job_type", p.JobType,
				"error", err,
			)
			continue
		}
		slog.Info("stale payroll removed",
			"employee_id", p.EmployeeID,
			"job_type", p.JobType,
			"period_month", month,
			"period_year", year,
		)
	}
}

// collectEmployeeJobs derives the distinct (employee, job) pairs present in
// a period's work logs, each tagged with the section of its first-seen
// entry. Sorted for a deterministic processing order.
func collectEmployeeJobs(workLogs []worklog.WorkLog) []employeeJob {
	seen := make(map[string]employeeJob)
	for _, log := range workLogs {
		for _, entry := range log.Entries {
			key := entry.EmployeeID + "|" + entry.JobID
			if _, ok := seen[key]; !ok {
				seen[key] = employeeJob{
					EmployeeID: entry.EmployeeID,
					JobType:    entry.JobID,
					Section:    log.Section,
				}
			}
		}
	}

	pairs := make([]employeeJob, 0, len(seen))
	for _, pair := range seen {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].EmployeeID != pairs[j].EmployeeID {
			return pairs[i].EmployeeID < pairs[j].EmployeeID
		}
		return pairs[i].JobType < pairs[j].JobType
	})
	return pairs
}

// reportRateUnitAnomalies logs activities whose rate unit the calculator
// will zero out, so catalogue data-entry mistakes are not silently lost.
func reportRateUnitAnomalies(workLogs []worklog.WorkLog) {
	for _, log := range workLogs {
		for _, entry := range log.Entries {
			for _, act := range entry.Activities {
				if !act.RateUnit.Valid() {
					slog.Warn("unrecognized rate unit, line pays zero",
						"work_log_id", log.ID,
						"employee_id", entry.EmployeeID,
						"pay_code_id", act.PayCodeID,
						"rate_unit", string(act.RateUnit),
					)
				}
			}
		}
	}
}

// ========== QUERIES ==========

func (s *PayrollServiceImpl) GetEmployeePayroll(ctx context.Context, employeeID, jobType string, month, year int) (payroll.EmployeePayrollResponse, error) {
	p, err := s.payrollRepo.GetByEmployeePeriod(ctx, employeeID, jobType, month, year)
	if err != nil {
		return payroll.EmployeePayrollResponse{}, err
	}
	return mapToPayrollResponse(p), nil
}

func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, month, year int) ([]payroll.EmployeePayrollResponse, error) {
	payrolls, err := s.payrollRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.EmployeePayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		result = append(result, mapToPayrollResponse(p))
	}
	return result, nil
}

// ========== MANUAL ITEMS ==========

func (s *PayrollServiceImpl) AddManualItem(ctx context.Context, employeeID, jobType string, month, year int, spec payroll.ManualItemSpec) (payroll.EmployeePayrollResponse, error) {
	if err := spec.Validate(); err != nil {
		return payroll.EmployeePayrollResponse{}, err
	}

	p, err := s.payrollRepo.GetByEmployeePeriod(ctx, employeeID, jobType, month, year)
	if err != nil {
		return payroll.EmployeePayrollResponse{}, err
	}

	p.Items = AddManualItem(p.Items, spec)
	// Reuse the split the payroll was generated with, not the deployment
	// default: a run made with an overridden split must keep its mid/end
	// month breakdown when manual items are appended.
	p = RecomputeTotals(p, p.EndMonthSplit)

	stored, err := s.payrollRepo.ReplaceItems(ctx, p)
	if err != nil {
		return payroll.EmployeePayrollResponse{}, fmt.Errorf("failed to store manual item: %w", err)
	}

	return mapToPayrollResponse(stored), nil
}

// ========== HELPERS ==========

func mapToPayrollResponse(p payroll.EmployeePayroll) payroll.EmployeePayrollResponse {
	items := make([]payroll.PayrollItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, payroll.PayrollItemResponse{
			PayCodeID:   item.PayCodeID,
			Description: item.Description,
			PayType:     string(item.PayType),
			RateUnit:    string(item.RateUnit),
			Rate:        item.Rate,
			Quantity:    item.Quantity,
			Amount:      item.Amount,
			IsManual:    item.IsManual,
		})
	}

	return payroll.EmployeePayrollResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		JobType:         p.JobType,
		Section:         p.Section,
		PeriodMonth:     p.PeriodMonth,
		PeriodYear:      p.PeriodYear,
		Items:           items,
		GrossPay:        p.GrossPay,
		NetPay:          p.NetPay,
		EndMonthPayment: p.EndMonthPayment,
		EndMonthSplit:   p.EndMonthSplit,
	}
}

func mapToRunResponse(run payroll.PayrollRun) payroll.PayrollRunResponse {
	results := make([]payroll.EmployeeRunResultResponse, 0, len(run.Results))
	processed, failed := 0, 0
	for _, r := range run.Results {
		if r.State == payroll.RunStateError {
			failed++
		} else {
			processed++
		}
		results = append(results, payroll.EmployeeRunResultResponse{
			EmployeeID: r.EmployeeID,
			JobType:    r.JobType,
			Section:    r.Section,
			State:      string(r.State),
			GrossPay:   r.GrossPay,
			Error:      r.Error,
		})
	}

	return payroll.PayrollRunResponse{
		RunID:       run.ID,
		PeriodMonth: run.PeriodMonth,
		PeriodYear:  run.PeriodYear,
		Sections:    run.Sections,
		StartedAt:   run.StartedAt.Format(time.RFC3339),
		FinishedAt:  run.FinishedAt.Format(time.RFC3339),
		Processed:   processed,
		Failed:      failed,
		Results:     results,
	}
}
