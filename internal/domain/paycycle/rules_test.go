package paycycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDerivePeriod_Weekly(t *testing.T) {
	t.Parallel()

	// Monday 2024-01-01 opens a 7-day period closing Sunday 2024-01-07.
	derived, err := DerivePeriod(CycleWeekly, date(2024, time.January, 1))

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 7), derived.ToDate)
	// 2024-01-07 is a Sunday, so the nominal check date backs up to Friday.
	assert.Equal(t, date(2024, time.January, 5), derived.CheckDate)
}

func TestDerivePeriod_BiWeekly(t *testing.T) {
	t.Parallel()

	derived, err := DerivePeriod(CycleBiWeekly, date(2024, time.January, 1))

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 14), derived.ToDate)
	// Sunday close backs the check date up two days.
	assert.Equal(t, date(2024, time.January, 12), derived.CheckDate)
}

func TestDerivePeriod_Monthly(t *testing.T) {
	t.Parallel()

	derived, err := DerivePeriod(CycleMonthly, date(2024, time.January, 1))

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 31), derived.ToDate)
	assert.Equal(t, date(2024, time.January, 31), derived.CheckDate)
}

func TestDerivePeriod_Monthly_MidMonthOpen(t *testing.T) {
	t.Parallel()

	// A monthly period opening mid-month closes the day before the same
	// day next month.
	derived, err := DerivePeriod(CycleMonthly, date(2024, time.January, 15))

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 14), derived.ToDate)
}

func TestDerivePeriod_Monthly_LeapFebruary(t *testing.T) {
	t.Parallel()

	derived, err := DerivePeriod(CycleMonthly, date(2024, time.February, 1))

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 29), derived.ToDate)
}

func TestDerivePeriod_SemiMonthly_FirstHalf(t *testing.T) {
	t.Parallel()

	derived, err := DerivePeriod(CycleSemiMonthly, date(2024, time.March, 1))

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 15), derived.ToDate)
}

func TestDerivePeriod_SemiMonthly_SecondHalf(t *testing.T) {
	t.Parallel()

	derived, err := DerivePeriod(CycleSemiMonthly, date(2024, time.March, 16))

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 31), derived.ToDate)
}

func TestDerivePeriod_InvalidCycleType(t *testing.T) {
	t.Parallel()

	_, err := DerivePeriod(CycleType("quarterly"), date(2024, time.January, 1))

	assert.ErrorIs(t, err, ErrInvalidCycleType)
}

func TestDerivePeriod_Deterministic(t *testing.T) {
	t.Parallel()

	// Same inputs produce the same boundaries regardless of wall clock.
	for i := 0; i < 3; i++ {
		derived, err := DerivePeriod(CycleBiWeekly, date(2025, time.June, 2))
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.June, 15), derived.ToDate)
	}
}

func TestDerivePeriod_IgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	noon := time.Date(2024, time.January, 1, 12, 34, 56, 0, time.UTC)
	derived, err := DerivePeriod(CycleWeekly, noon)

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 7), derived.ToDate)
}

func TestDeriveSecondHalf(t *testing.T) {
	t.Parallel()

	secondFrom, secondTo := DeriveSecondHalf(date(2024, time.March, 15))

	assert.Equal(t, date(2024, time.March, 16), secondFrom)
	assert.Equal(t, date(2024, time.March, 31), secondTo)
}

func TestDeriveSecondHalf_LeapFebruary(t *testing.T) {
	t.Parallel()

	secondFrom, secondTo := DeriveSecondHalf(date(2024, time.February, 15))

	assert.Equal(t, date(2024, time.February, 16), secondFrom)
	assert.Equal(t, date(2024, time.February, 29), secondTo)
}

func TestVerifyPeriod(t *testing.T) {
	t.Parallel()

	err := VerifyPeriod(CycleWeekly, date(2024, time.January, 1), date(2024, time.January, 7))
	assert.NoError(t, err)

	err = VerifyPeriod(CycleWeekly, date(2024, time.January, 1), date(2024, time.January, 8))
	assert.ErrorIs(t, err, ErrDateOrderMismatch)
}

func TestAdjustForWeekend(t *testing.T) {
	t.Parallel()

	// Saturday 2024-01-06 -> Friday 2024-01-05
	assert.Equal(t, date(2024, time.January, 5), AdjustForWeekend(date(2024, time.January, 6)))
	// Sunday 2024-01-07 -> Friday 2024-01-05
	assert.Equal(t, date(2024, time.January, 5), AdjustForWeekend(date(2024, time.January, 7)))
	// Wednesday stays put
	assert.Equal(t, date(2024, time.January, 10), AdjustForWeekend(date(2024, time.January, 10)))
}

func TestAdjustForWeekend_Idempotent(t *testing.T) {
	t.Parallel()

	once := AdjustForWeekend(date(2024, time.January, 7))
	twice := AdjustForWeekend(once)

	assert.Equal(t, once, twice)
	assert.NotEqual(t, time.Saturday, twice.Weekday())
	assert.NotEqual(t, time.Sunday, twice.Weekday())
}

func TestVerifyCheckDate(t *testing.T) {
	t.Parallel()

	toDate := date(2024, time.January, 7) // Sunday close
	check := AdjustForWeekend(toDate)     // Friday 2024-01-05

	// The actual check date may sit on the close itself as long as its
	// weekend adjustment lands on the stored check date.
	assert.True(t, VerifyCheckDate(check, date(2024, time.January, 7), toDate))

	// Actual before the close is never acceptable, even if it adjusts onto
	// the stored check date.
	assert.False(t, VerifyCheckDate(check, date(2024, time.January, 5), toDate))

	// An actual date whose adjustment misses the stored check date fails.
	assert.False(t, VerifyCheckDate(check, date(2024, time.January, 10), toDate))
}

func TestVerifyCheckDate_WeekdayClose(t *testing.T) {
	t.Parallel()

	toDate := date(2024, time.January, 31) // Wednesday
	check := AdjustForWeekend(toDate)

	assert.True(t, VerifyCheckDate(check, toDate, toDate))
	assert.False(t, VerifyCheckDate(check, date(2024, time.February, 1), toDate))
}

func TestCycleType_Valid(t *testing.T) {
	t.Parallel()

	for _, ct := range []CycleType{CycleWeekly, CycleBiWeekly, CycleMonthly, CycleSemiMonthly} {
		assert.True(t, ct.Valid())
	}
	assert.False(t, CycleType("annually").Valid())
	assert.False(t, CycleType("").Valid())
}
