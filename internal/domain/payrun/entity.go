package payrun

import "time"

// PeriodStatus enum. A period advances yet_to_generate -> drafted and is
// resolved by exactly one of submitted or skipped; resolved states are
// terminal.
type PeriodStatus string

const (
	StatusYetToGenerate PeriodStatus = "yet_to_generate"
	StatusDrafted       PeriodStatus = "drafted"
	StatusSubmitted     PeriodStatus = "submitted"
	StatusSkipped       PeriodStatus = "skipped"
)

func (s PeriodStatus) Valid() bool {
	switch s {
	case StatusYetToGenerate, StatusDrafted, StatusSubmitted, StatusSkipped:
		return true
	}
	return false
}

// IsResolved reports whether the status is terminal.
func (s PeriodStatus) IsResolved() bool {
	return s == StatusSubmitted || s == StatusSkipped
}

// CanResolve reports whether a Submit or Skip may be attempted from this
// status. The ordering guard across sibling periods is checked separately.
func (s PeriodStatus) CanResolve() bool {
	return s == StatusYetToGenerate || s == StatusDrafted
}

// PeriodInstance - One concrete occurrence of a recurring pay period. At
// most one instance exists per (settings id, from date); instances sharing
// a settings id form a total order by from date.
type PeriodInstance struct {
	ID         string
	SettingsID string
	FromDate   time.Time
	ToDate     time.Time
	CheckDate  time.Time
	Status     PeriodStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
