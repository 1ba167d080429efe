package payroll

import (
	"testing"
	"time"

	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEmployeePayroll_SingleLogScenario(t *testing.T) {
	t.Parallel()

	// One March work log, one entry (E1, MEE, 8 hours), one hourly BASE
	// activity at rate 10
	logs := []worklog.WorkLog{
		singleEntryLog("WL1", date(2024, time.March, 4), "E1", "MEE", hourActivity("BASE", "10", "8")),
	}

	p := ProcessEmployeePayroll(logs, "E1", "MEE", "A", marchPeriod(), DefaultEndMonthSplit)

	require.Len(t, p.Items, 1)
	assert.Equal(t, "BASE", p.Items[0].PayCodeID)
	assert.True(t, p.Items[0].Quantity.Equal(d("8")))
	assert.True(t, p.Items[0].Amount.Equal(d("80")))

	assert.Equal(t, "E1", p.EmployeeID)
	assert.Equal(t, "MEE", p.JobType)
	assert.Equal(t, "A", p.Section)
	assert.Equal(t, 3, p.PeriodMonth)
	assert.Equal(t, 2024, p.PeriodYear)

	assert.True(t, p.GrossPay.Equal(d("80")), "gross %s", p.GrossPay)
	assert.True(t, p.NetPay.Equal(p.GrossPay))
	assert.True(t, p.EndMonthPayment.Equal(d("40")), "end month %s", p.EndMonthPayment)
}

func TestProcessEmployeePayroll_NoWorkLogsIsNotAnError(t *testing.T) {
	t.Parallel()

	p := ProcessEmployeePayroll(nil, "E1", "MEE", "A", marchPeriod(), DefaultEndMonthSplit)

	assert.Empty(t, p.Items)
	assert.True(t, p.GrossPay.IsZero())
	assert.True(t, p.NetPay.IsZero())
	assert.True(t, p.EndMonthPayment.IsZero())
}

func TestProcessEmployeePayroll_GrossReconcilesWithItemSum(t *testing.T) {
	t.Parallel()

	logs := []worklog.WorkLog{
		singleEntryLog("WL1", date(2024, time.March, 4), "E1", "MEE",
			hourActivity("BASE", "10", "8"),
			unitActivity("BAG", worklog.RateUnitBag, "1.2", "55"),
		),
		singleEntryLog("WL2", date(2024, time.March, 5), "E1", "MEE",
			hourActivity("OT", "15", "2.5"),
		),
	}

	p := ProcessEmployeePayroll(logs, "E1", "MEE", "A", marchPeriod(), DefaultEndMonthSplit)

	sum := d("0")
	for _, item := range p.Items {
		sum = sum.Add(item.Amount)
	}
	assert.True(t, p.GrossPay.Equal(sum.Round(2)), "gross %s, item sum %s", p.GrossPay, sum)
	assert.True(t, p.NetPay.Equal(p.GrossPay))
}

func TestProcessEmployeePayroll_EndMonthSplitIsOverridable(t *testing.T) {
	t.Parallel()

	logs := []worklog.WorkLog{
		singleEntryLog("WL1", date(2024, time.March, 4), "E1", "MEE", hourActivity("BASE", "10", "8")),
	}

	p := ProcessEmployeePayroll(logs, "E1", "MEE", "A", marchPeriod(), d("0.6"))

	assert.True(t, p.EndMonthPayment.Equal(d("48")), "end month %s", p.EndMonthPayment)
	assert.True(t, p.EndMonthSplit.Equal(d("0.6")), "recorded split %s", p.EndMonthSplit)
}

func TestRecomputeTotals_AfterManualAppend(t *testing.T) {
	t.Parallel()

	logs := []worklog.WorkLog{
		singleEntryLog("WL1", date(2024, time.March, 4), "E1", "MEE", hourActivity("BASE", "10", "8")),
	}
	p := ProcessEmployeePayroll(logs, "E1", "MEE", "A", marchPeriod(), DefaultEndMonthSplit)

	p.Items = AddManualItem(p.Items, manualFixedSpec("BONUS", "50"))
	p = RecomputeTotals(p, DefaultEndMonthSplit)

	require.Len(t, p.Items, 2)
	assert.True(t, p.GrossPay.Equal(d("130")), "gross %s", p.GrossPay)
	assert.True(t, p.NetPay.Equal(d("130")))
	assert.True(t, p.EndMonthPayment.Equal(d("65")))
}
