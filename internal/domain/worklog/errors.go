package worklog

import "errors"

var (
	ErrWorkLogNotFound       = errors.New("work log not found")
	ErrWorkLogLocked         = errors.New("work log already processed, cannot modify")
	ErrEmployeeEntryNotFound = errors.New("employee entry not found")
)
