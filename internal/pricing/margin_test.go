package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarginAtPrice(t *testing.T) {
	got := MarginAtPrice(1.5, 2)

	nearlyEqual(t, "amount", got.Amount, 0.5)
	nearlyEqual(t, "percent", got.Percent, 25)
}

func TestMarginAtPrice_BelowCost(t *testing.T) {
	got := MarginAtPrice(2, 1.6)

	assert.InDelta(t, -0.4, got.Amount, 1e-12)
	assert.InDelta(t, -25, got.Percent, 1e-9)
}

func TestMarginAtPrice_ZeroPriceIsNotFinite(t *testing.T) {
	got := MarginAtPrice(1.5, 0)

	assert.True(t, math.IsInf(got.Percent, -1))
}

func TestCheckedMargin_ZeroPrice(t *testing.T) {
	_, err := CheckedMargin(1.5, 0)
	assert.ErrorIs(t, err, ErrZeroPrice)

	got, err := CheckedMargin(1.5, 3)
	require.NoError(t, err)
	nearlyEqual(t, "percent", got.Percent, 50)
}

func TestCheckedMargin_NonFiniteResult(t *testing.T) {
	_, err := CheckedMargin(1, 1e-310)

	require.ErrorIs(t, err, ErrInvalidInput)
	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "price", inputErr.Field)

	_, err = CheckedMargin(math.Inf(1), 2)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
