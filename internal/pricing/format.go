package pricing

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NotAvailable is rendered for values that are NaN or infinite.
const NotAvailable = "—"

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatCurrency renders v with en-US digit grouping and exactly decimals
// fraction digits, e.g. 1234.5 -> "1,234.50".
func FormatCurrency(v float64, decimals int) string {
	if !finite(v) {
		return NotAvailable
	}
	rounded := exactDecimal(v).Round(int32(decimals)).InexactFloat64()
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(rounded,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// FormatPercent renders v with a fixed number of decimals and a trailing %.
func FormatPercent(v float64, decimals int) string {
	if !finite(v) {
		return NotAvailable
	}
	return exactDecimal(v).StringFixed(int32(decimals)) + "%"
}

// exactDecimal is the full binary value of v, not its shortest round-trip
// form, so 1.005 (stored as 1.00499...) rounds to 1.00 at two places.
// Exact ties still round half away from zero.
func exactDecimal(v float64) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatFloat(v, 'f', exactDigits, 64))
}

// exactDigits covers the longest fraction a float64 can carry (subnormals).
const exactDigits = 1074

// plainNumber is the shortest decimal that round-trips, as used in labels.
func plainNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// groupedNumber renders a label amount with en-US grouping and up to three
// fraction digits.
func groupedNumber(v float64) string {
	if !finite(v) {
		return plainNumber(v)
	}
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}
