package payroll

import (
	"github.com/ladang-systems/payroll-backend-go/internal/domain/payroll"
	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/shopspring/decimal"
)

// AggregateActivities folds every activity recorded for one (employee, job)
// pair across a period into one payroll item per pay code.
//
// Work logs are filtered on the half-open period [period.Start, period.End);
// a log dated exactly on the start is included, one dated on the end is not.
// Within a selected log, only entries matching both employeeID and jobID
// contribute - an employee working two jobs in the same period yields two
// independent item sets, never merged.
//
// The first activity seen under a pay code seeds the item's description,
// pay type, rate and rate unit; occurrences are assumed stable within a
// period, first-seen wins if they are not. Every occurrence then adds its
// already-computed amount and a unit-appropriate quantity:
//
//	Hour                    -> hours applied
//	Day, Bag, Trip, Percent -> units produced
//	Fixed                   -> 1 per occurrence
//	anything else           -> 0, but the amount still accumulates
//
// The returned slice preserves first-seen order so results are deterministic.
// Pure fold, no I/O; safe to run in parallel across employees.
func AggregateActivities(workLogs []worklog.WorkLog, employeeID, jobID string, period payroll.Period) []payroll.PayrollItem {
	byPayCode := make(map[string]int)
	items := make([]payroll.PayrollItem, 0)

	for _, log := range workLogs {
		if !period.Contains(log.LogDate) {
			continue
		}
		for _, entry := range log.Entries {
			if entry.EmployeeID != employeeID || entry.JobID != jobID {
				continue
			}
			for _, act := range entry.Activities {
				idx, ok := byPayCode[act.PayCodeID]
				if !ok {
					items = append(items, payroll.PayrollItem{
						PayCodeID:   act.PayCodeID,
						Description: act.Description,
						PayType:     act.PayType,
						RateUnit:    act.RateUnit,
						Rate:        act.RateUsed,
						Quantity:    decimal.Zero,
						Amount:      decimal.Zero,
					})
					idx = len(items) - 1
					byPayCode[act.PayCodeID] = idx
				}
				items[idx].Amount = items[idx].Amount.Add(act.CalculatedAmount)
				items[idx].Quantity = items[idx].Quantity.Add(activityQuantity(act))
			}
		}
	}

	return items
}

// activityQuantity picks the quantity an activity contributes to its item.
// Fixed lines count occurrences, never the raw rate.
func activityQuantity(act worklog.Activity) decimal.Decimal {
	switch act.RateUnit {
	case worklog.RateUnitHour:
		return act.HoursApplied
	case worklog.RateUnitDay, worklog.RateUnitBag, worklog.RateUnitTrip, worklog.RateUnitPercent:
		return act.UnitsProduced
	case worklog.RateUnitFixed:
		return decimal.NewFromInt(1)
	default:
		return decimal.Zero
	}
}
