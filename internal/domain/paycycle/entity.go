package paycycle

import (
	"time"
)

// CycleType enum
type CycleType string

const (
	CycleWeekly      CycleType = "weekly"
	CycleBiWeekly    CycleType = "biweekly"
	CycleMonthly     CycleType = "monthly"
	CycleSemiMonthly CycleType = "semimonthly"
)

func (t CycleType) Valid() bool {
	switch t {
	case CycleWeekly, CycleBiWeekly, CycleMonthly, CycleSemiMonthly:
		return true
	}
	return false
}

// CycleSetting - Reusable template defining how a recurring pay period's
// dates are derived. Created once, rarely mutated. The Second* quartet is
// populated only for semimonthly cycles.
type CycleSetting struct {
	ID              string
	Name            string
	CycleType       CycleType
	FromDate        time.Time
	ToDate          time.Time
	CheckDate       time.Time
	ActualCheckDate time.Time

	SecondFromDate        *time.Time
	SecondToDate          *time.Time
	SecondCheckDate       *time.Time
	SecondActualCheckDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSemiMonthly reports whether the setting carries a second half.
func (s CycleSetting) IsSemiMonthly() bool {
	return s.CycleType == CycleSemiMonthly
}
