package payroll

import (
	"testing"
	"time"

	"github.com/ladang-systems/payroll-backend-go/internal/domain/payroll"
	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func hourActivity(payCode string, rate, hours string) worklog.Activity {
	r, h := d(rate), d(hours)
	return worklog.Activity{
		PayCodeID:        payCode,
		Description:      payCode + " work",
		PayType:          worklog.PayTypeBase,
		RateUnit:         worklog.RateUnitHour,
		RateUsed:         r,
		HoursApplied:     h,
		CalculatedAmount: CalculateAmount(r, h, worklog.RateUnitHour, worklog.DayTypeNormal),
	}
}

func unitActivity(payCode string, unit worklog.RateUnit, rate, units string) worklog.Activity {
	r, u := d(rate), d(units)
	return worklog.Activity{
		PayCodeID:        payCode,
		Description:      payCode + " work",
		PayType:          worklog.PayTypeBase,
		RateUnit:         unit,
		RateUsed:         r,
		UnitsProduced:    u,
		CalculatedAmount: CalculateAmount(r, u, unit, worklog.DayTypeNormal),
	}
}

func singleEntryLog(id string, logDate time.Time, employeeID, jobID string, activities ...worklog.Activity) worklog.WorkLog {
	return worklog.WorkLog{
		ID:      id,
		LogDate: logDate,
		DayType: worklog.DayTypeNormal,
		Section: "A",
		Status:  worklog.WorkLogStatusProcessed,
		Entries: []worklog.EmployeeEntry{{
			WorkLogID:  id,
			EmployeeID: employeeID,
			JobID:      jobID,
			Activities: activities,
		}},
	}
}

func marchPeriod() payroll.Period {
	return payroll.PeriodForMonth(time.March, 2024)
}

func TestAggregateActivities_SumsAmountAndHoursAcrossLogs(t *testing.T) {
	t.Parallel()

	logs := []worklog.WorkLog{
		singleEntryLog("WL1", date(2024, time.March, 4), "E1", "MEE", hourActivity("BASE", "10", "8")),
		singleEntryLog("WL2", date(2024, time.March, 5), "E1", "MEE", hourActivity("BASE", "10", "6.5")),
	}

	items := AggregateActivities(logs, "E1", "MEE", marchPeriod())

	require.Len(t, items, 1)
	assert.Equal(t, "BASE", items[0].PayCodeID)
	assert.True(t, items[0].Quantity.Equal(d("14.5")), "quantity %s", items[0].Quantity)
	assert.True(t, items[0].Amount.Equal(d("145")), "amount %s", items[0].Amount)
	assert.False(t, items[0].IsManual)
}

func TestAggregateActivities_JobIsolation(t *testing.T) {
	t.Parallel()

	// Same employee, two jobs in the same period
	logs := []worklog.WorkLog{
		singleEntryLog("WL1", date(2024, time.March, 4), "E1", "MEE", hourActivity("BASE", "10", "8")),
		singleEntryLog("WL2", date(2024, time.March, 5), "E1", "LORI", unitActivity("TRIP", worklog.RateUnitTrip, "35", "2")),
	}

	meeItems := AggregateActivities(logs, "E1", "MEE", marchPeriod())
	loriItems := AggregateActivities(logs, "E1", "LORI", marchPeriod())

	require.Len(t, meeItems, 1)
	require.Len(t, loriItems, 1)
	assert.Equal(t, "BASE", meeItems[0].PayCodeID)
	assert.Equal(t, "TRIP", loriItems[0].PayCodeID)
	assert.True(t, meeItems[0].Amount.Equal(d("80")))
	assert.True(t, loriItems[0].Amount.Equal(d("70")))
}

func TestAggregateActivities_PeriodBoundary(t *testing.T) {
	t.Parallel()

	logs := []worklog.WorkLog{
		// Exactly on period start: included
		singleEntryLog("WL1", date(2024, time.March, 1), "E1", "MEE", hourActivity("BASE", "10", "8")),
		// Day after period end: excluded
		singleEntryLog("WL2", date(2024, time.April, 1), "E1", "MEE", hourActivity("BASE", "10", "8")),
	}

	items := AggregateActivities(logs, "E1", "MEE", marchPeriod())

	require.Len(t, items, 1)
	assert.True(t, items[0].Quantity.Equal(d("8")), "quantity %s", items[0].Quantity)
	assert.True(t, items[0].Amount.Equal(d("80")), "amount %s", items[0].Amount)
}

func TestAggregateActivities_FixedCountsOccurrencesNotRate(t *testing.T) {
	t.Parallel()

	fixed := worklog.Activity{
		PayCodeID:        "ALLOW",
		Description:      "Monthly allowance",
		PayType:          worklog.PayTypeTambahan,
		RateUnit:         worklog.RateUnitFixed,
		RateUsed:         d("250"),
		CalculatedAmount: CalculateAmount(d("250"), decimal.Zero, worklog.RateUnitFixed, worklog.DayTypeNormal),
	}
	logs := []worklog.WorkLog{
		singleEntryLog("WL1", date(2024, time.March, 4), "E1", "MEE", fixed),
		singleEntryLog("WL2", date(2024, time.March, 11), "E1", "MEE", fixed),
	}

	items := AggregateActivities(logs, "E1", "MEE", marchPeriod())

	require.Len(t, items, 1)
	assert.True(t, items[0].Quantity.Equal(d("2")), "quantity %s", items[0].Quantity)
	assert.True(t, items[0].Amount.Equal(d("500")), "amount %s", items[0].Amount)
}

func TestAggregateActivities_UnknownUnitAccumulatesAmountOnly(t *testing.T) {
	t.Parallel()

	odd := worklog.Activity{
		PayCodeID:        "ODD",
		Description:      "Legacy line",
		RateUnit:         worklog.RateUnit("Tonne"),
		RateUsed:         d("3"),
		UnitsProduced:    d("12"),
		CalculatedAmount: d("36"), // captured at record time by an older catalogue
	}
	logs := []worklog.WorkLog{
		singleEntryLog("WL1", date(2024, time.March, 4), "E1", "MEE", odd),
	}

	items := AggregateActivities(logs, "E1", "MEE", marchPeriod())

	require.Len(t, items, 1)
	assert.True(t, items[0].Quantity.IsZero())
	assert.True(t, items[0].Amount.Equal(d("36")))
}

func TestAggregateActivities_FirstSeenSeedsItemMetadata(t *testing.T) {
	t.Parallel()

	first := hourActivity("BASE", "10", "8")
	second := hourActivity("BASE", "12", "4") // rate drifted mid-period; first-seen wins for metadata
	second.Description = "renamed later"

	logs := []worklog.WorkLog{
		singleEntryLog("WL1", date(2024, time.March, 4), "E1", "MEE", first),
		singleEntryLog("WL2", date(2024, time.March, 5), "E1", "MEE", second),
	}

	items := AggregateActivities(logs, "E1", "MEE", marchPeriod())

	require.Len(t, items, 1)
	assert.Equal(t, "BASE work", items[0].Description)
	assert.True(t, items[0].Rate.Equal(d("10")))
	// Amounts still sum over every occurrence: 80 + 48
	assert.True(t, items[0].Amount.Equal(d("128")), "amount %s", items[0].Amount)
	assert.True(t, items[0].Quantity.Equal(d("12")))
}

func TestAggregateActivities_StableInsertionOrder(t *testing.T) {
	t.Parallel()

	logs := []worklog.WorkLog{
		singleEntryLog("WL1", date(2024, time.March, 4), "E1", "MEE",
			hourActivity("BASE", "10", "8"),
			unitActivity("BAG", worklog.RateUnitBag, "1.2", "40"),
		),
		singleEntryLog("WL2", date(2024, time.March, 5), "E1", "MEE",
			unitActivity("BAG", worklog.RateUnitBag, "1.2", "60"),
			hourActivity("OT", "15", "2"),
		),
	}

	items := AggregateActivities(logs, "E1", "MEE", marchPeriod())

	require.Len(t, items, 3)
	assert.Equal(t, "BASE", items[0].PayCodeID)
	assert.Equal(t, "BAG", items[1].PayCodeID)
	assert.Equal(t, "OT", items[2].PayCodeID)
	assert.True(t, items[1].Quantity.Equal(d("100")))
	assert.True(t, items[1].Amount.Equal(d("120")))
}

func TestAggregateActivities_NoMatchesYieldsEmptySlice(t *testing.T) {
	t.Parallel()

	logs := []worklog.WorkLog{
		singleEntryLog("WL1", date(2024, time.March, 4), "E2", "MEE", hourActivity("BASE", "10", "8")),
	}

	items := AggregateActivities(logs, "E1", "MEE", marchPeriod())

	assert.NotNil(t, items)
	assert.Empty(t, items)
}
