package audit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func snapshot(balance, pay, hours string) BalanceSnapshot {
	return BalanceSnapshot{
		BalanceAmount:     decimal.RequireFromString(balance),
		StandardPayAmount: decimal.RequireFromString(pay),
		HoursWorked:       decimal.RequireFromString(hours),
	}
}

func TestBuildChangeSummary_SingleField(t *testing.T) {
	t.Parallel()

	old := snapshot("1000.00", "2500.00", "40")
	new := snapshot("750.00", "2500.00", "40")

	summary := BuildChangeSummary(old, new)

	assert.Equal(t, "Balance Amount changed from 1000 to 750", summary)
}

func TestBuildChangeSummary_MultipleFields(t *testing.T) {
	t.Parallel()

	old := snapshot("1000", "2500", "40")
	new := snapshot("800", "2600", "40")

	summary := BuildChangeSummary(old, new)

	assert.Equal(t, "Balance Amount changed from 1000 to 800; Standard Pay Amount changed from 2500 to 2600", summary)
}

func TestBuildChangeSummary_NoChange(t *testing.T) {
	t.Parallel()

	old := snapshot("1000", "2500", "40")

	// Equal values in different representations still count as unchanged.
	new := snapshot("1000.00", "2500.0", "40")

	assert.Empty(t, BuildChangeSummary(old, new))
}

func TestBuildChangeSummary_HoursOnly(t *testing.T) {
	t.Parallel()

	old := snapshot("0", "0", "40")
	new := snapshot("0", "0", "37.5")

	assert.Equal(t, "Hours Worked changed from 40 to 37.5", BuildChangeSummary(old, new))
}
