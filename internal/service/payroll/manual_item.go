package payroll

import (
	"github.com/ladang-systems/payroll-backend-go/internal/domain/payroll"
	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
)

// AddManualItem appends a Tambahan line to an item list and returns the new
// list; the input slice is never mutated and callers must treat the return
// value as the new source of truth.
//
// A manual item under the same pay code as an aggregated item stays a
// separate line on purpose - downstream grouping by pay type is what
// separates them visually, not a dedup step here. Zero or negative rate and
// quantity pass through mechanically and produce a correspondingly zero or
// negative amount; rejecting nonsense is the form layer's job.
func AddManualItem(items []payroll.PayrollItem, spec payroll.ManualItemSpec) []payroll.PayrollItem {
	unit := worklog.RateUnit(spec.RateUnit)

	result := make([]payroll.PayrollItem, len(items), len(items)+1)
	copy(result, items)

	return append(result, payroll.PayrollItem{
		PayCodeID:   spec.PayCodeID,
		Description: spec.Description,
		PayType:     worklog.PayTypeTambahan,
		RateUnit:    unit,
		Rate:        spec.Rate,
		Quantity:    spec.Quantity,
		Amount:      CalculateAmount(spec.Rate, spec.Quantity, unit, worklog.DayTypeNormal),
		IsManual:    true,
	})
}
