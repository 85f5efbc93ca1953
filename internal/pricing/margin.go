package pricing

import "errors"

// ErrZeroPrice is returned by CheckedMargin for a zero candidate price.
var ErrZeroPrice = errors.New("candidate price must not be zero")

// MarginResult is the margin earned at a candidate price, in $/lb and percent
// of that price.
type MarginResult struct {
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// MarginAtPrice answers "what if I sold at price X". Callers must not pass a
// zero price; the percent would be NaN or Inf.
func MarginAtPrice(landedCostLb, salePrice float64) MarginResult {
	amount := salePrice - landedCostLb
	return MarginResult{
		Amount:  amount,
		Percent: (amount / salePrice) * 100,
	}
}

// CheckedMargin is MarginAtPrice with its preconditions checked: a zero price
// is ErrZeroPrice, and any input that overflows to NaN or Inf (a subnormal
// price, infinite cost) is an *InvalidInputError.
func CheckedMargin(landedCostLb, salePrice float64) (MarginResult, error) {
	if salePrice == 0 {
		return MarginResult{}, ErrZeroPrice
	}
	if !finite(salePrice) {
		return MarginResult{}, invalid("price", "must be a finite number")
	}
	if !finite(landedCostLb) {
		return MarginResult{}, invalid("landedCostLb", "must be a finite number")
	}

	result := MarginAtPrice(landedCostLb, salePrice)
	if !finite(result.Amount) || !finite(result.Percent) {
		return MarginResult{}, invalid("price", "too small to compute a margin percent")
	}
	return result, nil
}
