package worklog

import (
	"context"
	"time"
)

// WorkLogRepository defines read access to work logs. The payroll engine only
// ever reads work logs; they are created and mutated by the upstream daily and
// monthly log entry workflows.
type WorkLogRepository interface {
	// ListByPeriod retrieves all work logs whose log date falls in the
	// half-open range [start, end), with entries and activities attached
	ListByPeriod(ctx context.Context, start, end time.Time) ([]WorkLog, error)

	// ListSections returns the distinct section labels present in a period
	ListSections(ctx context.Context, start, end time.Time) ([]string, error)
}
