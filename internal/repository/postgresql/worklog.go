package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/ladang-systems/payroll-backend-go/internal/pkg/database"
)

type workLogRepository struct {
	db *database.DB
}

func NewWorkLogRepository(db *database.DB) worklog.WorkLogRepository {
	return &workLogRepository{db: db}
}

func (r *workLogRepository) ListByPeriod(ctx context.Context, start, end time.Time) ([]worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, log_date, shift, day_type, section, status, created_at, updated_at
		FROM work_logs
		WHERE log_date >= $1 AND log_date < $2
		ORDER BY log_date, id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}
	defer rows.Close()

	var logs []worklog.WorkLog
	for rows.Next() {
		var log worklog.WorkLog
		if err := rows.Scan(
			&log.ID, &log.LogDate, &log.Shift, &log.DayType, &log.Section, &log.Status,
			&log.CreatedAt, &log.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work logs: %w", err)
	}

	if err := r.attachEntries(ctx, logs); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *workLogRepository) ListSections(ctx context.Context, start, end time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT section
		FROM work_logs
		WHERE log_date >= $1 AND log_date < $2
		ORDER BY section
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	var sections []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sections: %w", err)
	}

	return sections, nil
}

// attachEntries loads employee entries and their activities for the given
// logs in two queries, then assembles the nesting in memory.
func (r *workLogRepository) attachEntries(ctx context.Context, logs []worklog.WorkLog) error {
	if len(logs) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	logIDs := make([]string, 0, len(logs))
	logIndex := make(map[string]int, len(logs))
	for i, log := range logs {
		logIDs = append(logIDs, log.ID)
		logIndex[log.ID] = i
	}

	entryQuery := `
		SELECT id, work_log_id, employee_id, job_id, total_hours
		FROM employee_entries
		WHERE work_log_id = ANY($1)
		ORDER BY work_log_id, id
	`

	rows, err := q.Query(ctx, entryQuery, logIDs)
	if err != nil {
		return fmt.Errorf("failed to list employee entries: %w", err)
	}
	defer rows.Close()

	entryIDs := make([]string, 0)
	entryLoc := make(map[string][2]int) // entry id -> (log index, entry index)
	for rows.Next() {
		var e worklog.EmployeeEntry
		if err := rows.Scan(&e.ID, &e.WorkLogID, &e.EmployeeID, &e.JobID, &e.TotalHours); err != nil {
			return fmt.Errorf("failed to scan employee entry: %w", err)
		}
		i := logIndex[e.WorkLogID]
		logs[i].Entries = append(logs[i].Entries, e)
		entryLoc[e.ID] = [2]int{i, len(logs[i].Entries) - 1}
		entryIDs = append(entryIDs, e.ID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate employee entries: %w", err)
	}
	rows.Close()

	if len(entryIDs) == 0 {
		return nil
	}

	activityQuery := `
		SELECT id, entry_id, pay_code_id, description, pay_type, rate_unit,
			   rate_used, hours_applied, units_produced, calculated_amount
		FROM activities
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, id
	`

	actRows, err := q.Query(ctx, activityQuery, entryIDs)
	if err != nil {
		return fmt.Errorf("failed to list activities: %w", err)
	}
	defer actRows.Close()

	for actRows.Next() {
		var a worklog.Activity
		if err := actRows.Scan(
			&a.ID, &a.EntryID, &a.PayCodeID, &a.Description, &a.PayType, &a.RateUnit,
			&a.RateUsed, &a.HoursApplied, &a.UnitsProduced, &a.CalculatedAmount,
		); err != nil {
			return fmt.Errorf("failed to scan activity: %w", err)
		}
		loc, ok := entryLoc[a.EntryID]
		if !ok {
			continue
		}
		entry := &logs[loc[0]].Entries[loc[1]]
		entry.Activities = append(entry.Activities, a)
	}
	if err := actRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate activities: %w", err)
	}

	return nil
}
