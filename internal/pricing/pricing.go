package pricing

import "fmt"

type lineItems []CostLineItem

func (l *lineItems) add(label, description string, amountPerMT float64) {
	*l = append(*l, CostLineItem{
		Label:       label,
		Description: description,
		AmountPerMT: amountPerMT,
		AmountPerLb: amountPerMT / MTToLb,
	})
}

// Calculate computes the landed-cost breakdown for one product configuration.
//
// Line items are emitted only when active, but the total always sums every
// component, so suppressing a zero row never changes the result. Zero
// capacities are not checked here; use CalculateChecked for that.
func Calculate(in PricingInput) CostBreakdown {
	var items lineItems

	freightPerMT := in.OceanFreight
	if in.ShippingType == Container {
		freightPerMT = in.OceanFreight / in.ContainerCapacity
	}

	var fobValue, cifValue float64
	if in.Incoterm == FOB {
		fobValue = in.BasePrice
		cifValue = in.BasePrice + freightPerMT
	} else {
		// Insurance is not backed out of a CIF quote; it is charged again below.
		cifValue = in.BasePrice
		fobValue = in.BasePrice - freightPerMT
	}

	adjustedFOB := fobValue * (1 - in.WeightGainPercent/100)

	items.add("Base FOB Price", "", fobValue)

	if in.WeightGainPercent > 0 {
		items.add(
			fmt.Sprintf("Weight Gain (%.2f%%)", in.WeightGainPercent),
			"Adjustment for mill vs theoretical weight",
			-(fobValue - adjustedFOB),
		)
	}

	if in.Incoterm == FOB {
		label := "Ocean Freight"
		if in.ShippingType == Container {
			label = fmt.Sprintf("Ocean Freight ($%s ÷ %s MT)", groupedNumber(in.OceanFreight), plainNumber(in.ContainerCapacity))
		}
		items.add(label, "", freightPerMT)
	}

	section232 := adjustedFOB * (in.Section232Rate / 100)
	items.add(fmt.Sprintf("Section 232 (%s%% × FOB)", plainNumber(in.Section232Rate)), "", section232)

	hmf := adjustedFOB * (in.HMFRate / 100)
	items.add(fmt.Sprintf("HMF (%s%% × FOB)", plainNumber(in.HMFRate)), "", hmf)

	mpf := adjustedFOB * (in.MPFRate / 100)
	if in.MPFRate > 0 {
		items.add(fmt.Sprintf("MPF (%s%% × FOB)", plainNumber(in.MPFRate)), "", mpf)
	}

	marineIns := cifValue * (in.MarineInsuranceRate / 100)
	items.add(fmt.Sprintf("Marine Insurance (%s%% × CIF)", plainNumber(in.MarineInsuranceRate)), "", marineIns)

	creditIns := cifValue * (in.CreditInsuranceRate / 100)
	items.add(fmt.Sprintf("Credit Insurance (%s%% × CIF)", plainNumber(in.CreditInsuranceRate)), "", creditIns)

	lcFinance := 0.0
	if in.IncludeLCFinance {
		lcFinance = (cifValue * (in.LCRate / 100) * in.LCDays) / DaysPerYear
		items.add(fmt.Sprintf("LC Pre-Cash (%s%% × %sd)", plainNumber(in.LCRate), plainNumber(in.LCDays)), "", lcFinance)
	}

	postSailingFinance := 0.0
	if in.IncludeFinancing {
		days := in.WaterDays + in.TermsDays + in.BufferDays
		postSailingFinance = (cifValue * (in.FinancingRate / 100) * days) / DaysPerYear
		items.add(
			fmt.Sprintf("LC Sailing (%s%% × %sd)", plainNumber(in.FinancingRate), plainNumber(days)),
			fmt.Sprintf("%s water + %s terms + %s buffer", plainNumber(in.WaterDays), plainNumber(in.TermsDays), plainNumber(in.BufferDays)),
			postSailingFinance,
		)
	}

	// Only the financed share of the tariff itself accrues interest.
	tariffFinance := 0.0
	if in.IncludeTariffFinance {
		tariffFinance = (adjustedFOB * (in.Section232Rate / 100) * (in.TariffFinancePercent / 100) *
			(in.TariffFinanceRate / 100) * in.TariffFinanceDays) / DaysPerYear
		items.add(
			fmt.Sprintf("Tariff Finance (%s%% × %s%% × %sd)",
				plainNumber(in.TariffFinancePercent), plainNumber(in.TariffFinanceRate), plainNumber(in.TariffFinanceDays)),
			"",
			tariffFinance,
		)
	}

	handlingCost := 0.0
	if in.ShippingType == Container {
		if in.DrayagePerContainer > 0 {
			handlingCost = in.DrayagePerContainer / in.DestuffCapacity
			items.add(
				fmt.Sprintf("Drayage ($%s ÷ %s MT)", groupedNumber(in.DrayagePerContainer), plainNumber(in.DestuffCapacity)),
				"",
				handlingCost,
			)
		}
	} else if in.StevedoringPerMT > 0 {
		handlingCost = in.StevedoringPerMT
		items.add("Stevedoring", "", handlingCost)
	}

	storageCost := 0.0
	if in.StoragePerMTPerMonth > 0 && in.StorageMonths > 0 {
		storageCost = in.StoragePerMTPerMonth * in.StorageMonths
		items.add(
			fmt.Sprintf("Storage ($%s/MT × %s mo)", plainNumber(in.StoragePerMTPerMonth), plainNumber(in.StorageMonths)),
			"",
			storageCost,
		)
	}

	brokerCost := 0.0
	if in.BrokerFee > 0 {
		switch in.BrokerFeeType {
		case BrokerPerMT:
			brokerCost = in.BrokerFee
			items.add("Broker Fee", "", brokerCost)
		case BrokerPerContainer:
			brokerCost = (in.BrokerFee * in.BrokerContainers) / in.ContainerCapacity
			items.add(
				fmt.Sprintf("Broker Fee ($%s × %s FCL)", plainNumber(in.BrokerFee), plainNumber(in.BrokerContainers)),
				"",
				brokerCost,
			)
		default:
			// Flat fee, spread over one container's capacity.
			brokerCost = in.BrokerFee / in.ContainerCapacity
			items.add("Broker Fee (flat)", "", brokerCost)
		}
	}

	commission := 0.0
	if in.CommissionRate > 0 {
		commission = adjustedFOB * (in.CommissionRate / 100)
		name := in.CommissionName
		if name == "" {
			name = "Commission"
		}
		items.add(fmt.Sprintf("%s (%s%% × FOB)", name, plainNumber(in.CommissionRate)), "", commission)
	}

	totalLandedCostMT := adjustedFOB +
		freightPerMT +
		section232 +
		hmf +
		mpf +
		marineIns +
		creditIns +
		lcFinance +
		postSailingFinance +
		tariffFinance +
		handlingCost +
		storageCost +
		brokerCost +
		commission
	totalLandedCostLb := totalLandedCostMT / MTToLb

	salePrice, marginAmount, marginPercent := resolveMargin(in.Target, totalLandedCostLb)

	return CostBreakdown{
		FOBValue:          fobValue,
		AdjustedFOB:       adjustedFOB,
		FreightPerMT:      freightPerMT,
		CIFValue:          cifValue,
		LineItems:         items,
		TotalLandedCostMT: totalLandedCostMT,
		TotalLandedCostLb: totalLandedCostLb,
		MarginAmount:      marginAmount,
		MarginPercent:     marginPercent,
		TargetSalePrice:   salePrice,
	}
}

// CalculateChecked validates the input before calculating, so the result
// never carries NaN or Inf. Inputs that pass Validate but still overflow
// (huge or subnormal values) are reported against the first bad output.
func CalculateChecked(in PricingInput) (CostBreakdown, error) {
	if err := Validate(in); err != nil {
		return CostBreakdown{}, err
	}
	b := Calculate(in)
	if field, ok := b.firstNonFinite(); !ok {
		return CostBreakdown{}, invalid(field, "input produces a non-finite result")
	}
	return b, nil
}

// firstNonFinite names the first output field that is NaN or Inf.
func (b CostBreakdown) firstNonFinite() (string, bool) {
	fields := []struct {
		name string
		v    float64
	}{
		{"fobValue", b.FOBValue},
		{"adjustedFOB", b.AdjustedFOB},
		{"freightPerMT", b.FreightPerMT},
		{"cifValue", b.CIFValue},
		{"totalLandedCostMT", b.TotalLandedCostMT},
		{"totalLandedCostLb", b.TotalLandedCostLb},
		{"marginAmount", b.MarginAmount},
		{"marginPercent", b.MarginPercent},
		{"targetSalePrice", b.TargetSalePrice},
	}
	for _, f := range fields {
		if !finite(f.v) {
			return f.name, false
		}
	}
	for _, item := range b.LineItems {
		if !finite(item.AmountPerMT) || !finite(item.AmountPerLb) {
			return "lineItems", false
		}
	}
	return "", true
}

func resolveMargin(target MarginTarget, landedCostLb float64) (salePrice, amount, percent float64) {
	switch {
	case target.Kind == TargetSalePrice && target.Value > 0:
		salePrice = target.Value
		amount = salePrice - landedCostLb
		percent = (amount / salePrice) * 100
	case target.Kind == TargetMarginPercent && target.Value > 0:
		percent = target.Value
		salePrice = landedCostLb / (1 - percent/100)
		amount = salePrice - landedCostLb
	default:
		salePrice = landedCostLb
	}
	return salePrice, amount, percent
}
