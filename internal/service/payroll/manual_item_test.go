package payroll

import (
	"testing"

	"github.com/ladang-systems/payroll-backend-go/internal/domain/payroll"
	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manualFixedSpec(payCode, rate string) payroll.ManualItemSpec {
	return payroll.ManualItemSpec{
		PayCodeID:   payCode,
		Description: payCode + " manual",
		RateUnit:    string(worklog.RateUnitFixed),
		Rate:        d(rate),
		Quantity:    d("1"),
	}
}

func TestAddManualItem_AppendsWithoutTouchingExistingItems(t *testing.T) {
	t.Parallel()

	existing := []payroll.PayrollItem{
		{PayCodeID: "BASE", Description: "BASE work", Rate: d("10"), Quantity: d("8"), Amount: d("80")},
		{PayCodeID: "BAG", Description: "BAG work", Rate: d("1.2"), Quantity: d("40"), Amount: d("48")},
	}
	snapshot := make([]payroll.PayrollItem, len(existing))
	copy(snapshot, existing)

	result := AddManualItem(existing, manualFixedSpec("BONUS", "50"))

	require.Len(t, result, 3)
	assert.Equal(t, snapshot, existing, "input slice must not be mutated")
	assert.Equal(t, snapshot[0], result[0])
	assert.Equal(t, snapshot[1], result[1])

	added := result[2]
	assert.Equal(t, "BONUS", added.PayCodeID)
	assert.True(t, added.IsManual)
	assert.Equal(t, worklog.PayTypeTambahan, added.PayType)
	assert.True(t, added.Amount.Equal(d("50")))
}

func TestAddManualItem_AmountComputedPerRateUnit(t *testing.T) {
	t.Parallel()

	spec := payroll.ManualItemSpec{
		PayCodeID:   "EXTRA",
		Description: "Extra trips",
		RateUnit:    string(worklog.RateUnitTrip),
		Rate:        d("35"),
		Quantity:    d("3"),
	}

	result := AddManualItem(nil, spec)

	require.Len(t, result, 1)
	assert.True(t, result[0].Amount.Equal(d("105")), "amount %s", result[0].Amount)
}

func TestAddManualItem_DuplicatePayCodeStaysSeparateLine(t *testing.T) {
	t.Parallel()

	existing := []payroll.PayrollItem{
		{PayCodeID: "BASE", Description: "BASE work", Rate: d("10"), Quantity: d("8"), Amount: d("80")},
	}

	result := AddManualItem(existing, manualFixedSpec("BASE", "20"))

	require.Len(t, result, 2)
	assert.Equal(t, "BASE", result[0].PayCodeID)
	assert.Equal(t, "BASE", result[1].PayCodeID)
	assert.False(t, result[0].IsManual)
	assert.True(t, result[1].IsManual)
}

func TestAddManualItem_ToleratesZeroAndNegativeInputs(t *testing.T) {
	t.Parallel()

	spec := payroll.ManualItemSpec{
		PayCodeID:   "ADJ",
		Description: "Correction",
		RateUnit:    string(worklog.RateUnitFixed),
		Rate:        d("-25"),
		Quantity:    d("0"),
	}

	result := AddManualItem(nil, spec)

	require.Len(t, result, 1)
	assert.True(t, result[0].Amount.Equal(d("-25")), "amount %s", result[0].Amount)
}
