package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "1,234.50", FormatCurrency(1234.5, 2))
	assert.Equal(t, "3,174.65", FormatCurrency(3174.6473684, 2))
	assert.Equal(t, "1.4400", FormatCurrency(1.4399975, 4))
	assert.Equal(t, "-12.00", FormatCurrency(-12, 2))
	assert.Equal(t, NotAvailable, FormatCurrency(math.Inf(1), 2))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.50%", FormatPercent(12.5, 2))
	assert.Equal(t, "0.3%", FormatPercent(0.335, 1))
	assert.Equal(t, NotAvailable, FormatPercent(math.NaN(), 2))
}

func TestFormatRoundsExactBinaryValue(t *testing.T) {
	// 1.005 and 1.045 sit just below the half; 0.25 and 2.5 are exact ties.
	assert.Equal(t, "1.00%", FormatPercent(1.005, 2))
	assert.Equal(t, "1.04%", FormatPercent(1.045, 2))
	assert.Equal(t, "0.3%", FormatPercent(0.25, 1))
	assert.Equal(t, "-0.3%", FormatPercent(-0.25, 1))
	assert.Equal(t, "3%", FormatPercent(2.5, 0))

	assert.Equal(t, "1.00", FormatCurrency(1.005, 2))
	assert.Equal(t, "0.13", FormatCurrency(0.125, 2))
}

func TestLabelNumbers(t *testing.T) {
	assert.Equal(t, "0.335", plainNumber(0.335))
	assert.Equal(t, "19", plainNumber(19))
	assert.Equal(t, "3,000", groupedNumber(3000))
	assert.Equal(t, "1,350.5", groupedNumber(1350.5))
}
