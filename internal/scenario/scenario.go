// Package scenario stores named pricing snapshots and a short calculation
// history, and renders them for comparison and export.
package scenario

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Simplici0/landedcost/internal/pricing"
)

var ErrNotFound = errors.New("scenario not found")

// Scenario is a saved input together with the breakdown it produced.
type Scenario struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	CreatedAt time.Time             `json:"createdAt"`
	Input     pricing.PricingInput  `json:"input"`
	Breakdown pricing.CostBreakdown `json:"breakdown"`
}

func New(name string, input pricing.PricingInput, breakdown pricing.CostBreakdown) Scenario {
	return Scenario{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		Input:     input,
		Breakdown: breakdown,
	}
}

// ComparisonRow holds one metric of a current-vs-saved comparison.
// Diff is current minus saved, so a positive diff means the current deal
// costs more.
type ComparisonRow struct {
	Metric   string  `json:"metric"`
	Current  float64 `json:"current"`
	Saved    float64 `json:"saved"`
	Diff     float64 `json:"diff"`
	Decimals int     `json:"decimals"`
}

type Comparison struct {
	ScenarioID   string          `json:"scenarioId"`
	ScenarioName string          `json:"scenarioName"`
	Rows         []ComparisonRow `json:"rows"`
}

func Compare(current, saved pricing.CostBreakdown) Comparison {
	row := func(metric string, cur, sav float64, decimals int) ComparisonRow {
		return ComparisonRow{Metric: metric, Current: cur, Saved: sav, Diff: cur - sav, Decimals: decimals}
	}
	return Comparison{Rows: []ComparisonRow{
		row("FOB Price", current.FOBValue, saved.FOBValue, 2),
		row("Landed $/MT", current.TotalLandedCostMT, saved.TotalLandedCostMT, 2),
		row("Landed $/lb", current.TotalLandedCostLb, saved.TotalLandedCostLb, 4),
	}}
}

// CompareWith compares a freshly calculated breakdown against s.
func (s Scenario) CompareWith(current pricing.CostBreakdown) Comparison {
	c := Compare(current, s.Breakdown)
	c.ScenarioID = s.ID
	c.ScenarioName = s.Name
	return c
}

// FormatDiff renders a diff with an explicit sign, e.g. "+$12.50" or "-$0.0125".
func (r ComparisonRow) FormatDiff() string {
	sign := "+"
	if r.Diff < 0 {
		sign = "-"
	}
	abs := r.Diff
	if abs < 0 {
		abs = -abs
	}
	return sign + "$" + pricing.FormatCurrency(abs, r.Decimals)
}
