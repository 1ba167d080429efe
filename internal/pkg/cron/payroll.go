package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/ladang-systems/payroll-backend-go/internal/domain/payroll"
)

// PayrollJobs keeps stored payrolls in sync with late work-log corrections:
// during the first days of a month the previous month's run is recomputed
// automatically, so supervisors fixing yesterday's logs do not have to
// trigger a run by hand each time.
type PayrollJobs struct {
	payrollService payroll.PayrollService

	// sync window in days after month end during which reruns happen
	syncWindowDays int
}

func NewPayrollJobs(payrollService payroll.PayrollService, syncWindowDays int) *PayrollJobs {
	if syncWindowDays < 1 {
		syncWindowDays = 5
	}
	return &PayrollJobs{
		payrollService: payrollService,
		syncWindowDays: syncWindowDays,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("resync_previous_month_payroll", 12*time.Hour, j.ResyncPreviousMonth)
}

// ResyncPreviousMonth reruns the previous month's payroll while still inside
// the sync window; outside it the job is a no-op.
func (j *PayrollJobs) ResyncPreviousMonth(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Day() > j.syncWindowDays {
		return nil
	}

	prev := now.AddDate(0, -1, 0)
	req := payroll.GeneratePayrollRequest{
		PeriodMonth: int(prev.Month()),
		PeriodYear:  prev.Year(),
	}

	run, err := j.payrollService.GeneratePayroll(ctx, req)
	if err != nil {
		return err
	}

	slog.Info("Previous month payroll resynced",
		"run_id", run.RunID,
		"period_month", run.PeriodMonth,
		"period_year", run.PeriodYear,
		"processed", run.Processed,
		"failed", run.Failed,
	)
	return nil
}
