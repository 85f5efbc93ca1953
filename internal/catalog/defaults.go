package catalog

import "github.com/Simplici0/landedcost/internal/pricing"

func rate(v float64) *float64 { return &v }

// Defaults returns a fresh copy of the built-in catalog. Callers may mutate it.
func Defaults() Settings {
	return Settings{
		Suppliers: []Supplier{
			{ID: "pvst", Name: "PVST", DefaultOriginCountry: "Taiwan", DefaultOriginPort: "Kaohsiung", DefaultIncoterm: pricing.FOB, WeightBasis: WeightTheoretical, DefaultWeightGainPercent: 5, AgentName: "Tradehansa", AgentFeePercent: 0.5},
			{ID: "stanch", Name: "Stanch", DefaultOriginCountry: "Taiwan", DefaultOriginPort: "Kaohsiung", DefaultIncoterm: pricing.FOB, WeightBasis: WeightActual, AgentName: "Chiu", AgentFeePercent: 1},
			{ID: "yeou-yih", Name: "Yeou Yih", DefaultOriginCountry: "Taiwan", DefaultOriginPort: "Kaohsiung", DefaultIncoterm: pricing.FOB, WeightBasis: WeightTheoretical, DefaultWeightGainPercent: 5, AgentName: "Chiu", AgentFeePercent: 1},
			{ID: "yuen-chang", Name: "Yuen Chang", DefaultOriginCountry: "Taiwan", DefaultOriginPort: "Kaohsiung", DefaultIncoterm: pricing.CIF, WeightBasis: WeightActual, AgentName: "Chiu", AgentFeePercent: 1},
			{ID: "wuu-jing", Name: "Wuu Jing", DefaultOriginCountry: "Taiwan", DefaultOriginPort: "Kaohsiung", DefaultIncoterm: pricing.FOB, WeightBasis: WeightActual, AgentName: "Chiu", AgentFeePercent: 1},
		},
		Customers: []Customer{
			{ID: "basic-metals", Name: "Basic Metals", DefaultDestinationPort: "Houston", CreditInsuranceRate: 0.11, PaymentTermsDays: 30},
			{ID: "alro", Name: "Alro", DefaultDestinationPort: "Chicago", CreditInsuranceRate: 0.11, PaymentTermsDays: 30},
			{ID: "oneal", Name: "Oneal", DefaultDestinationPort: "Houston", CreditInsuranceRate: 0.11, PaymentTermsDays: 30},
			{ID: "samuel", Name: "Samuel", DefaultDestinationPort: "Los Angeles", CreditInsuranceRate: 0.11, PaymentTermsDays: 30},
		},
		Ports: []Port{
			{ID: "kaohsiung", Name: "Kaohsiung", Country: "Taiwan", Type: PortOrigin},
			{ID: "taipei", Name: "Taipei", Country: "Taiwan", Type: PortOrigin},
			{ID: "mumbai", Name: "Mumbai", Country: "India", Type: PortOrigin},
			{ID: "chennai", Name: "Chennai", Country: "India", Type: PortOrigin},
			{ID: "los-angeles", Name: "Los Angeles", Country: "USA", Type: PortDestination, DrayageRate: rate(1400), StorageRatePerMonth: rate(9.5), StevedoringRate: rate(35)},
			{ID: "houston", Name: "Houston", Country: "USA", Type: PortDestination, DrayageRate: rate(900), StorageRatePerMonth: rate(5.5), StevedoringRate: rate(35)},
			{ID: "newark", Name: "Newark", Country: "USA", Type: PortDestination, DrayageRate: rate(1200), StorageRatePerMonth: rate(8), StevedoringRate: rate(35)},
			{ID: "baltimore", Name: "Baltimore", Country: "USA", Type: PortDestination, DrayageRate: rate(900), StorageRatePerMonth: rate(5.5), StevedoringRate: rate(35)},
			{ID: "seattle", Name: "Seattle", Country: "USA", Type: PortDestination, DrayageRate: rate(1400), StorageRatePerMonth: rate(7.5), StevedoringRate: rate(35)},
			{ID: "oakland", Name: "Oakland", Country: "USA", Type: PortDestination, DrayageRate: rate(1800), StorageRatePerMonth: rate(5.5), StevedoringRate: rate(35)},
			{ID: "chicago", Name: "Chicago", Country: "USA", Type: PortDestination, DrayageRate: rate(1300), StorageRatePerMonth: rate(10), StevedoringRate: rate(35)},
			{ID: "miami", Name: "Miami", Country: "USA", Type: PortDestination, DrayageRate: rate(1600), StorageRatePerMonth: rate(7), StevedoringRate: rate(35)},
		},
		// 304/L and 316/L plate.
		WeightGainTable: []WeightGainEntry{
			{Thickness: `3/16"`, SellWeight: 8.579, BuyWeight: 7.74, PercentGain: 10.91},
			{Thickness: `1/4"`, SellWeight: 11.16, BuyWeight: 10.31, PercentGain: 8.21},
			{Thickness: `5/16"`, SellWeight: 13.75, BuyWeight: 12.89, PercentGain: 6.66},
			{Thickness: `3/8"`, SellWeight: 16.5, BuyWeight: 15.47, PercentGain: 6.66},
			{Thickness: `1/2"`, SellWeight: 21.66, BuyWeight: 20.63, PercentGain: 5.01},
			{Thickness: `5/8"`, SellWeight: 26.83, BuyWeight: 25.78, PercentGain: 4.06},
			{Thickness: `3/4"`, SellWeight: 32.12, BuyWeight: 30.94, PercentGain: 3.81},
			{Thickness: `7/8"`, SellWeight: 37.29, BuyWeight: 36.10, PercentGain: 3.30},
			{Thickness: `1"`, SellWeight: 42.67, BuyWeight: 41.25, PercentGain: 3.43},
			{Thickness: `1 1/8"`, SellWeight: 47.83, BuyWeight: 46.41, PercentGain: 3.06},
			{Thickness: `1 1/4"`, SellWeight: 53, BuyWeight: 51.57, PercentGain: 2.78},
			{Thickness: `1 1/2"`, SellWeight: 63.34, BuyWeight: 61.88, PercentGain: 2.36},
			{Thickness: `1 3/4"`, SellWeight: 73.67, BuyWeight: 72.20, PercentGain: 2.04},
			{Thickness: `2"`, SellWeight: 84.01, BuyWeight: 82.51, PercentGain: 1.82},
			{Thickness: `2 1/2"`, SellWeight: 105.1, BuyWeight: 103.14, PercentGain: 1.90},
			{Thickness: `3"`, SellWeight: 126.3, BuyWeight: 123.76, PercentGain: 2.05},
			{Thickness: `3 1/4"`, SellWeight: 136.6, BuyWeight: 134.08, PercentGain: 1.88},
			{Thickness: `3 1/2"`, SellWeight: 147, BuyWeight: 144.39, PercentGain: 1.81},
			{Thickness: `3 3/4"`, SellWeight: 157, BuyWeight: 154.70, PercentGain: 1.48},
			{Thickness: `4"`, SellWeight: 167, BuyWeight: 165.02, PercentGain: 1.20},
		},
		DefaultRates: DefaultRates{
			Section232Rate:               50,
			HMFRate:                      0.335,
			MPFRate:                      0.125,
			MarineInsuranceRate:          0.24,
			CreditInsuranceRate:          0.11,
			LCRate:                       3.5,
			FinancingRate:                7.75,
			TariffFinanceRate:            7.75,
			DefaultCommissionRate:        1,
			DefaultContainerCapacity20ft: 19,
			DefaultContainerCapacity40ft: 38,
			DefaultDestuffCapacity:       18,
		},
		DrayageByPort: map[string]float64{
			"Baltimore":   900,
			"Los Angeles": 1400,
			"Seattle":     1400,
			"Houston":     900,
			"Oakland":     1800,
			"Chicago":     1300,
			"Miami":       1600,
			"Newark":      1200,
		},
		StorageByPort: map[string]float64{
			"Baltimore":   5.5,
			"Los Angeles": 9.5,
			"Seattle":     7.5,
			"Houston":     5.5,
			"Oakland":     5.5,
			"Chicago":     10,
			"Miami":       7,
			"Newark":      8,
		},
		StevedoringByPort: map[string]float64{
			"Houston":     35,
			"Los Angeles": 35,
			"Newark":      35,
			"Baltimore":   35,
		},
	}
}

// DefaultInput is the starting form state, with rates taken from the snapshot.
func (s Settings) DefaultInput() pricing.PricingInput {
	r := s.DefaultRates
	return pricing.PricingInput{
		OriginCountry:   "Taiwan",
		OriginPort:      "Kaohsiung",
		DestinationPort: "Los Angeles",
		Incoterm:        pricing.FOB,
		ShippingType:    pricing.Container,
		ContainerSize:   pricing.Container20ft,

		OceanFreight:      3000,
		ContainerCapacity: r.DefaultContainerCapacity20ft,

		ProductGrade: "304/L",

		Section232Rate:      r.Section232Rate,
		HMFRate:             r.HMFRate,
		MPFRate:             r.MPFRate,
		MarineInsuranceRate: r.MarineInsuranceRate,
		CreditInsuranceRate: r.CreditInsuranceRate,

		IncludeLCFinance: true,
		LCRate:           r.LCRate,
		LCDays:           60,

		IncludeFinancing: true,
		FinancingRate:    r.FinancingRate,
		WaterDays:        60,
		TermsDays:        30,
		BufferDays:       15,

		IncludeTariffFinance: true,
		TariffFinancePercent: 50,
		TariffFinanceRate:    r.TariffFinanceRate,
		TariffFinanceDays:    45,

		DrayagePerContainer: 1350,
		DestuffCapacity:     r.DefaultDestuffCapacity,

		StevedoringPerMT: 35,

		BrokerFeeType:    pricing.BrokerPerMT,
		BrokerContainers: 1,

		CommissionName: "Chiu",
		CommissionRate: r.DefaultCommissionRate,

		Target: pricing.NoTarget(),
	}
}
