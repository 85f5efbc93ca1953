package pricing

import "encoding/json"

const (
	// MTToLb converts metric tons to pounds.
	MTToLb = 2204.62
	// DaysPerYear is the banking day-count used to annualize every finance charge.
	DaysPerYear = 360
)

type Incoterm string

const (
	FOB Incoterm = "FOB"
	CIF Incoterm = "CIF"
)

type ShippingType string

const (
	Container ShippingType = "container"
	BreakBulk ShippingType = "breakBulk"
)

type ContainerSize string

const (
	Container20ft ContainerSize = "20ft"
	Container40ft ContainerSize = "40ft"
)

type BrokerFeeType string

const (
	BrokerPerMT        BrokerFeeType = "perMT"
	BrokerPerContainer BrokerFeeType = "perContainer"
	BrokerFlat         BrokerFeeType = "flat"
)

// TargetKind tells which side of the margin/price relationship the caller fixed.
type TargetKind string

const (
	TargetNone          TargetKind = "none"
	TargetSalePrice     TargetKind = "salePrice"
	TargetMarginPercent TargetKind = "marginPercent"
)

// MarginTarget is either a sale price ($/lb), a margin percent, or nothing.
type MarginTarget struct {
	Kind  TargetKind `json:"kind"`
	Value float64    `json:"value"`
}

func NoTarget() MarginTarget { return MarginTarget{Kind: TargetNone} }

func SalePrice(price float64) MarginTarget {
	return MarginTarget{Kind: TargetSalePrice, Value: price}
}

func MarginPercent(percent float64) MarginTarget {
	return MarginTarget{Kind: TargetMarginPercent, Value: percent}
}

// TargetFromFields resolves the two legacy form fields into a single target.
// A positive sale price wins over a positive margin percent.
func TargetFromFields(salePrice, marginPercent float64) MarginTarget {
	switch {
	case salePrice > 0:
		return SalePrice(salePrice)
	case marginPercent > 0:
		return MarginPercent(marginPercent)
	default:
		return NoTarget()
	}
}

func (t MarginTarget) IsNone() bool {
	return t.Kind == "" || t.Kind == TargetNone
}

// PricingInput is one product configuration to price. Percentages are whole
// numbers (50 means 50%).
type PricingInput struct {
	// Deal parameters
	SupplierID      string        `json:"supplierId"`
	CustomerID      string        `json:"customerId"`
	OriginCountry   string        `json:"originCountry"`
	OriginPort      string        `json:"originPort"`
	DestinationPort string        `json:"destinationPort"`
	Incoterm        Incoterm      `json:"incoterm"`
	ShippingType    ShippingType  `json:"shippingType"`
	ContainerSize   ContainerSize `json:"containerSize"`

	BasePrice         float64 `json:"basePrice"`
	OceanFreight      float64 `json:"oceanFreight"`
	ContainerCapacity float64 `json:"containerCapacity"`

	ProductGrade      string  `json:"productGrade"`
	ProductSize       string  `json:"productSize"`
	WeightGainPercent float64 `json:"weightGainPercent"`

	Section232Rate float64 `json:"section232Rate"`
	HMFRate        float64 `json:"hmfRate"`
	MPFRate        float64 `json:"mpfRate"`

	MarineInsuranceRate float64 `json:"marineInsuranceRate"`
	CreditInsuranceRate float64 `json:"creditInsuranceRate"`

	IncludeLCFinance bool    `json:"includeLCFinance"`
	LCRate           float64 `json:"lcRate"`
	LCDays           float64 `json:"lcDays"`

	IncludeFinancing bool    `json:"includeFinancing"`
	FinancingRate    float64 `json:"financingRate"`
	WaterDays        float64 `json:"waterDays"`
	TermsDays        float64 `json:"termsDays"`
	BufferDays       float64 `json:"bufferDays"`

	IncludeTariffFinance bool    `json:"includeTariffFinance"`
	TariffFinancePercent float64 `json:"tariffFinancePercent"`
	TariffFinanceRate    float64 `json:"tariffFinanceRate"`
	TariffFinanceDays    float64 `json:"tariffFinanceDays"`

	DrayagePerContainer float64 `json:"drayagePerContainer"`
	DestuffCapacity     float64 `json:"destuffCapacity"`

	StevedoringPerMT float64 `json:"stevedoringPerMT"`

	StoragePerMTPerMonth float64 `json:"storagePerMTPerMonth"`
	StorageMonths        float64 `json:"storageMonths"`

	BrokerFee        float64       `json:"brokerFee"`
	BrokerFeeType    BrokerFeeType `json:"brokerFeeType"`
	BrokerContainers float64       `json:"brokerContainers"`

	CommissionName string  `json:"commissionName"`
	CommissionRate float64 `json:"commissionRate"`

	Target MarginTarget `json:"target"`
}

// UnmarshalJSON also accepts the flat targetMarginPercent/targetSalePrice
// fields when no explicit target object is present.
func (in *PricingInput) UnmarshalJSON(data []byte) error {
	type plain PricingInput
	aux := struct {
		*plain
		TargetMarginPercent float64 `json:"targetMarginPercent"`
		TargetSalePrice     float64 `json:"targetSalePrice"`
	}{plain: (*plain)(in)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if in.Target.IsNone() {
		in.Target = TargetFromFields(aux.TargetSalePrice, aux.TargetMarginPercent)
	}
	return nil
}

// CostLineItem is one row of the audit trail. It is never fed back into the
// computation.
type CostLineItem struct {
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	AmountPerMT float64 `json:"amountPerMT"`
	AmountPerLb float64 `json:"amountPerLb"`
}

// CostBreakdown is the full output of a calculation.
type CostBreakdown struct {
	FOBValue     float64 `json:"fobValue"`
	AdjustedFOB  float64 `json:"adjustedFOB"`
	FreightPerMT float64 `json:"freightPerMT"`
	CIFValue     float64 `json:"cifValue"`

	LineItems []CostLineItem `json:"lineItems"`

	TotalLandedCostMT float64 `json:"totalLandedCostMT"`
	TotalLandedCostLb float64 `json:"totalLandedCostLb"`

	MarginAmount    float64 `json:"marginAmount"`
	MarginPercent   float64 `json:"marginPercent"`
	TargetSalePrice float64 `json:"targetSalePrice"`
}
