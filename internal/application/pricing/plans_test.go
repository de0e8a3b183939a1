package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlans_Catalog(t *testing.T) {
	plans := Plans()
	require.Len(t, plans, 2)
	assert.Equal(t, PlanBasic, plans[0].ID)
	assert.Equal(t, float64(249), plans[0].Price)
	assert.False(t, plans[0].IsPremium)
	assert.Equal(t, PlanPremium, plans[1].ID)
	assert.Equal(t, float64(499), plans[1].Price)
	assert.True(t, plans[1].IsPremium)
	assert.Equal(t, 25, plans[1].MaxImages)
}

func TestPlans_ReturnsCopy(t *testing.T) {
	plans := Plans()
	plans[0].Features[0] = "mutated"
	plans[0].Price = 1
	fresh, err := Get(PlanBasic)
	require.NoError(t, err)
	assert.Equal(t, float64(249), fresh.Price)
	assert.NotEqual(t, "mutated", fresh.Features[0])
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("gold")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
