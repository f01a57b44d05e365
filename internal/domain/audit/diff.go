package audit

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot captures the audited fields of an employee at one moment.
type BalanceSnapshot struct {
	BalanceAmount     decimal.Decimal
	StandardPayAmount decimal.Decimal
	HoursWorked       decimal.Decimal
}

// BuildChangeSummary renders a human-readable diff covering only the fields
// that actually changed between two snapshots. It returns the empty string
// when nothing changed; callers then skip the append (a no-op, not an error).
func BuildChangeSummary(old, new BalanceSnapshot) string {
	var parts []string

	if !old.BalanceAmount.Equal(new.BalanceAmount) {
		parts = append(parts, change("Balance Amount", old.BalanceAmount, new.BalanceAmount))
	}
	if !old.StandardPayAmount.Equal(new.StandardPayAmount) {
		parts = append(parts, change("Standard Pay Amount", old.StandardPayAmount, new.StandardPayAmount))
	}
	if !old.HoursWorked.Equal(new.HoursWorked) {
		parts = append(parts, change("Hours Worked", old.HoursWorked, new.HoursWorked))
	}

	return strings.Join(parts, "; ")
}

func change(field string, old, new decimal.Decimal) string {
	return fmt.Sprintf("%s changed from %s to %s", field, old.String(), new.String())
}
