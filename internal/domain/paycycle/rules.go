package paycycle

import (
	"time"
)

// Pure date arithmetic for pay cycles. No I/O here: everything below is
// deterministic on its inputs so it can be unit tested without a database.

// PeriodDates is the derived boundary of one pay period.
type PeriodDates struct {
	ToDate    time.Time
	CheckDate time.Time
}

// DerivePeriod computes the period close and the nominal check date for a
// period opening at fromDate. The close offsets from the open by a fixed
// span per cycle type; monthly and semimonthly cycles follow calendar month
// boundaries. The nominal check date is the weekend-adjusted period close.
func DerivePeriod(cycleType CycleType, fromDate time.Time) (PeriodDates, error) {
	from := DateOnly(fromDate)

	var to time.Time
	switch cycleType {
	case CycleWeekly:
		to = from.AddDate(0, 0, 6)
	case CycleBiWeekly:
		to = from.AddDate(0, 0, 13)
	case CycleMonthly:
		to = from.AddDate(0, 1, 0).AddDate(0, 0, -1)
	case CycleSemiMonthly:
		if from.Day() <= 15 {
			to = time.Date(from.Year(), from.Month(), 15, 0, 0, 0, 0, time.UTC)
		} else {
			to = endOfMonth(from)
		}
	default:
		return PeriodDates{}, ErrInvalidCycleType
	}

	return PeriodDates{ToDate: to, CheckDate: AdjustForWeekend(to)}, nil
}

// DeriveSecondHalf computes the second semimonthly half from the first
// half's close: it opens the next day and closes on the last day of that
// month.
func DeriveSecondHalf(toDate time.Time) (secondFrom, secondTo time.Time) {
	secondFrom = DateOnly(toDate).AddDate(0, 0, 1)
	secondTo = endOfMonth(secondFrom)
	return secondFrom, secondTo
}

// VerifyPeriod checks a caller-supplied toDate against the derived value.
// A mismatch is a validation failure, never silently corrected.
func VerifyPeriod(cycleType CycleType, fromDate, toDate time.Time) error {
	derived, err := DerivePeriod(cycleType, fromDate)
	if err != nil {
		return err
	}
	if !derived.ToDate.Equal(DateOnly(toDate)) {
		return ErrDateOrderMismatch
	}
	return nil
}

// AdjustForWeekend shifts a check date off Saturday/Sunday onto the
// preceding business day. Idempotent: the output is never a weekend day.
func AdjustForWeekend(date time.Time) time.Time {
	d := DateOnly(date)
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, -1)
	case time.Sunday:
		return d.AddDate(0, 0, -2)
	default:
		return d
	}
}

// VerifyCheckDate reports whether actualCheckDate is consistent with the
// stored checkDate: its weekend adjustment must land exactly on checkDate,
// and it can never precede the period close.
func VerifyCheckDate(checkDate, actualCheckDate, toDate time.Time) bool {
	actual := DateOnly(actualCheckDate)
	if actual.Before(DateOnly(toDate)) {
		return false
	}
	return AdjustForWeekend(actual).Equal(DateOnly(checkDate))
}

// DateOnly truncates a timestamp to its civil date in UTC. All period
// arithmetic runs on day granularity.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
