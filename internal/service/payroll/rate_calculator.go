package payroll

import (
	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CalculateAmount turns a rate and a quantity into a monetary amount for the
// given rate unit. Quantity means hours for Hour, produced units for Day, Bag
// and Trip, and the base amount the percentage applies to for Percent. Fixed
// ignores quantity entirely.
//
// The result is rounded to 2 decimal places here, once, at the leaf. Callers
// must never re-round individual line amounts, only the final sums, so
// rounding drift cannot compound across aggregation.
//
// An unrecognized unit yields zero rather than an error: a catalogue
// data-entry mistake degrades to "no pay for this line" instead of aborting a
// whole batch run. The batch layer reports such lines as anomalies.
//
// dayType is accepted for forward compatibility with a Sunday/holiday
// multiplier but does not participate in the formula yet; the rate tier is
// chosen upstream when the activity is recorded.
func CalculateAmount(rate, quantity decimal.Decimal, unit worklog.RateUnit, dayType worklog.DayType) decimal.Decimal {
	switch unit {
	case worklog.RateUnitHour, worklog.RateUnitDay, worklog.RateUnitBag, worklog.RateUnitTrip:
		return rate.Mul(quantity).Round(2)
	case worklog.RateUnitPercent:
		return rate.Mul(quantity).Div(oneHundred).Round(2)
	case worklog.RateUnitFixed:
		return rate.Round(2)
	default:
		return decimal.Zero
	}
}
