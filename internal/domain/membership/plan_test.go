package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsePlanType(t *testing.T) {
	p, err := ParsePlanType(" Gold ")
	require.NoError(t, err)
	require.Equal(t, PlanGold, p)

	_, err = ParsePlanType("bronze")
	require.ErrorIs(t, err, ErrInvalidPlan)
}

func TestParseDuration(t *testing.T) {
	for _, d := range []string{"1", "3", "6", "12"} {
		_, err := ParseDuration(d)
		require.NoError(t, err)
	}
	for _, d := range []string{"0", "2", "24", "x", ""} {
		_, err := ParseDuration(d)
		require.ErrorIs(t, err, ErrInvalidDuration, d)
	}
}

func TestQuoteSelectionGoldThreeMonths(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	q := QuoteSelection(PlanGold, 3, start)

	require.Equal(t, 6000.0, q.Amount)
	require.Equal(t, start.AddDate(0, 0, 90), q.EndDate)
	require.Equal(t, 3, q.DurationMonths)
}

func TestPriceTablesStayApart(t *testing.T) {
	require.Equal(t, 1000.0, PlanSilver.BasePricePerMonth())
	require.Equal(t, 2000.0, PlanGold.BasePricePerMonth())
	require.Equal(t, 3000.0, PlanPlatinum.BasePricePerMonth())

	require.Equal(t, 1999.0, PlanSilver.CheckoutPrice())
	require.Equal(t, 2999.0, PlanGold.CheckoutPrice())
	require.Equal(t, 4499.0, PlanPlatinum.CheckoutPrice())
}

func TestQuoteCheckoutIsOneMonth(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	q := QuoteCheckout(PlanPlatinum, start)

	require.Equal(t, 4499.0, q.Amount)
	require.Equal(t, 1, q.DurationMonths)
	require.Equal(t, start.AddDate(0, 0, 30), q.EndDate)

	m := New(5, q)
	require.True(t, m.IsActive)
	require.Equal(t, "platinum", m.MembershipType)
	require.Equal(t, uint(5), m.TraineeID)
}
