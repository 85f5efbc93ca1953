package scenario

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Simplici0/landedcost/internal/pricing"
)

func money(v float64, decimals int) string {
	if v < 0 {
		return "-$" + pricing.FormatCurrency(-v, decimals)
	}
	return "$" + pricing.FormatCurrency(v, decimals)
}

// Text renders s as a plain-text cost sheet.
func (s Scenario) Text() string {
	var b strings.Builder
	in, bd := s.Input, s.Breakdown

	fmt.Fprintf(&b, "%s\n", s.Name)
	fmt.Fprintf(&b, "Saved %s\n", s.CreatedAt.UTC().Format("2006-01-02 15:04 MST"))

	product := strings.TrimSpace(strings.Join(nonEmpty(in.ProductGrade, in.ProductSize), " - "))
	if product != "" {
		fmt.Fprintf(&b, "%s\n", product)
	}
	fmt.Fprintf(&b, "%s %s -> %s, %s\n\n", in.Incoterm, in.OriginPort, in.DestinationPort, in.ShippingType)

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COST BREAKDOWN\t$/MT\t$/lb\t")
	for _, item := range bd.LineItems {
		label := item.Label
		if item.Description != "" {
			label += " (" + item.Description + ")"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", label, money(item.AmountPerMT, 2), money(item.AmountPerLb, 4))
	}
	fmt.Fprintf(w, "CIF Value\t%s\t%s\t\n", money(bd.CIFValue, 2), money(bd.CIFValue/pricing.MTToLb, 4))
	fmt.Fprintf(w, "TOTAL LANDED COST\t%s\t%s\t\n", money(bd.TotalLandedCostMT, 2), money(bd.TotalLandedCostLb, 4))
	if !in.Target.IsNone() {
		fmt.Fprintf(w, "Margin (%s)\t-\t%s\t\n", pricing.FormatPercent(bd.MarginPercent, 1), money(bd.MarginAmount, 4))
		fmt.Fprintf(w, "TARGET SALE PRICE\t-\t%s\t\n", money(bd.TargetSalePrice, 4))
	}
	_ = w.Flush()

	return b.String()
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
