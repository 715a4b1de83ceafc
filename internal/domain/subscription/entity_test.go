//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"parkhub/internal/domain/subscription"
	"parkhub/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDurationDays(t *testing.T) {
	cases := []struct {
		plan subscription.Plan
		days int
	}{
		{subscription.PlanDaily, 1},
		{subscription.PlanWeekly, 7},
		{subscription.PlanMonthly, 30},
		{subscription.PlanYearly, 365},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.days, tc.plan.DurationDays(), tc.plan.String())
	}

	_, err := subscription.NewPlan("fortnightly")
	assert.ErrorIs(t, err, subscription.ErrInvalidPlan)
}

func TestNewSubscription(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("end date derives from the plan", func(t *testing.T) {
		sub, err := builder.NewSubscriptionBuilder().WithPlan("weekly").WithStartDate(start).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, start.Add(7*24*time.Hour), sub.EndDate())
		assert.True(t, sub.IsActive())
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := builder.NewSubscriptionBuilder().WithPrice(-1).BuildDomain()
		assert.ErrorIs(t, err, subscription.ErrNegativePrice)
	})
}

func TestSubscriptionValidAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	sub, err := builder.NewSubscriptionBuilder().WithPlan("daily").WithStartDate(start).BuildDomain()
	require.NoError(t, err)

	end := start.Add(24 * time.Hour)

	assert.True(t, sub.ValidAt(start), "start boundary is covered")
	assert.True(t, sub.ValidAt(end), "end boundary is covered")
	assert.True(t, sub.ValidAt(start.Add(12*time.Hour)))
	assert.False(t, sub.ValidAt(start.Add(-time.Second)))
	assert.False(t, sub.ValidAt(end.Add(time.Second)))

	sub.Deactivate()
	assert.False(t, sub.ValidAt(start.Add(12*time.Hour)), "deactivated subscription never validates")
}
