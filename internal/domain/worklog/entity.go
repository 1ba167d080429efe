package worklog

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayType classifies a work date. It decides which rate tier upstream log
// entry applies when recording activities; the engine itself only carries it.
type DayType string

const (
	DayTypeNormal        DayType = "Biasa"
	DayTypeSunday        DayType = "Ahad"
	DayTypePublicHoliday DayType = "Umum"
)

// PayType is the coarse classification of a priced activity.
type PayType string

const (
	PayTypeBase     PayType = "Base"
	PayTypeTambahan PayType = "Tambahan"
	PayTypeOvertime PayType = "Overtime"
)

// RateUnit is the unit a pay code's rate is denominated in.
type RateUnit string

const (
	RateUnitHour    RateUnit = "Hour"
	RateUnitDay     RateUnit = "Day"
	RateUnitBag     RateUnit = "Bag"
	RateUnitTrip    RateUnit = "Trip"
	RateUnitPercent RateUnit = "Percent"
	RateUnitFixed   RateUnit = "Fixed"
)

// Valid reports whether u is one of the known rate units. Unknown units are
// not an error at computation time (they fail soft to a zero amount), but the
// batch layer reports them as anomalies.
func (u RateUnit) Valid() bool {
	switch u {
	case RateUnitHour, RateUnitDay, RateUnitBag, RateUnitTrip, RateUnitPercent, RateUnitFixed:
		return true
	}
	return false
}

// WorkLogStatus enum
type WorkLogStatus string

const (
	WorkLogStatusDraft     WorkLogStatus = "draft"
	WorkLogStatusProcessed WorkLogStatus = "processed"
)

// WorkLog - one recorded work session for one or more employees on one date.
// Owned by the upstream log entry workflows; read-only to the payroll engine.
type WorkLog struct {
	ID        string
	LogDate   time.Time
	Shift     int
	DayType   DayType
	Section   string
	Status    WorkLogStatus
	Entries   []EmployeeEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeEntry - one employee's participation in a work log. An employee may
// appear in many work logs across a period, but an entry belongs to exactly
// one work log.
type EmployeeEntry struct {
	ID         string
	WorkLogID  string
	EmployeeID string
	JobID      string
	TotalHours decimal.Decimal
	Activities []Activity
}

// Activity - one priced unit of work. Rate and amount are captured at record
// time and never re-looked-up, so historical payroll stays stable when the
// pay-code catalogue changes.
type Activity struct {
	ID               string
	EntryID          string
	PayCodeID        string
	Description      string
	PayType          PayType
	RateUnit         RateUnit
	RateUsed         decimal.Decimal
	HoursApplied     decimal.Decimal
	UnitsProduced    decimal.Decimal
	CalculatedAmount decimal.Decimal
}
