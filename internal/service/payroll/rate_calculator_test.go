package payroll

import (
	"testing"

	"github.com/ladang-systems/payroll-backend-go/internal/domain/worklog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCalculateAmount_PerUnitFormula(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		rate     string
		quantity string
		unit     worklog.RateUnit
		want     string
	}{
		{"hourly", "10", "8", worklog.RateUnitHour, "80"},
		{"daily", "45.5", "2", worklog.RateUnitDay, "91"},
		{"per bag", "1.2", "150", worklog.RateUnitBag, "180"},
		{"per trip", "35", "3", worklog.RateUnitTrip, "105"},
		{"percent of base amount", "5", "1000", worklog.RateUnitPercent, "50"},
		{"fixed ignores quantity", "250", "999", worklog.RateUnitFixed, "250"},
		{"fixed with zero quantity", "250", "0", worklog.RateUnitFixed, "250"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalculateAmount(d(c.rate), d(c.quantity), c.unit, worklog.DayTypeNormal)
			assert.True(t, got.Equal(d(c.want)), "got %s, want %s", got, c.want)
		})
	}
}

func TestCalculateAmount_RoundsToTwoPlacesAtLeaf(t *testing.T) {
	t.Parallel()

	// 7.333 x 3 = 21.999 -> 22.00
	got := CalculateAmount(d("7.333"), d("3"), worklog.RateUnitHour, worklog.DayTypeNormal)
	assert.True(t, got.Equal(d("22")), "got %s", got)

	// 2.5% of 333.33 = 8.33325 -> 8.33
	got = CalculateAmount(d("2.5"), d("333.33"), worklog.RateUnitPercent, worklog.DayTypeNormal)
	assert.True(t, got.Equal(d("8.33")), "got %s", got)

	// Rounding once at the leaf is idempotent
	assert.True(t, got.Equal(got.Round(2)))
}

func TestCalculateAmount_UnknownUnitFailsSoftToZero(t *testing.T) {
	t.Parallel()

	got := CalculateAmount(d("10"), d("8"), worklog.RateUnit("Tonne"), worklog.DayTypeNormal)
	assert.True(t, got.IsZero())
}

func TestCalculateAmount_ToleratesZeroAndNegativeInputs(t *testing.T) {
	t.Parallel()

	got := CalculateAmount(d("0"), d("8"), worklog.RateUnitHour, worklog.DayTypeNormal)
	assert.True(t, got.IsZero())

	got = CalculateAmount(d("-5"), d("2"), worklog.RateUnitHour, worklog.DayTypeNormal)
	assert.True(t, got.Equal(d("-10")), "got %s", got)
}

func TestCalculateAmount_DayTypeDoesNotChangeTheFormula(t *testing.T) {
	t.Parallel()

	normal := CalculateAmount(d("10"), d("8"), worklog.RateUnitHour, worklog.DayTypeNormal)
	sunday := CalculateAmount(d("10"), d("8"), worklog.RateUnitHour, worklog.DayTypeSunday)
	holiday := CalculateAmount(d("10"), d("8"), worklog.RateUnitHour, worklog.DayTypePublicHoliday)

	assert.True(t, normal.Equal(sunday))
	assert.True(t, normal.Equal(holiday))
}
