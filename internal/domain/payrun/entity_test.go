package payrun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []PeriodStatus{StatusYetToGenerate, StatusDrafted, StatusSubmitted, StatusSkipped} {
		assert.True(t, s.Valid())
	}
	assert.False(t, PeriodStatus("pending").Valid())
	assert.False(t, PeriodStatus("").Valid())
}

func TestPeriodStatus_IsResolved(t *testing.T) {
	t.Parallel()

	assert.False(t, StatusYetToGenerate.IsResolved())
	assert.False(t, StatusDrafted.IsResolved())
	assert.True(t, StatusSubmitted.IsResolved())
	assert.True(t, StatusSkipped.IsResolved())
}

func TestPeriodStatus_CanResolve(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusYetToGenerate.CanResolve())
	assert.True(t, StatusDrafted.CanResolve())
	assert.False(t, StatusSubmitted.CanResolve())
	assert.False(t, StatusSkipped.CanResolve())
}
