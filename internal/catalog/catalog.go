// Package catalog holds the supplier, customer, port and rate tables that
// pre-fill a pricing input. The engine never reads a catalog directly: a
// Settings snapshot resolves selections into plain PricingInput fields.
package catalog

import "github.com/Simplici0/landedcost/internal/pricing"

type WeightBasis string

const (
	WeightActual      WeightBasis = "actual"
	WeightTheoretical WeightBasis = "theoretical"
)

type PortType string

const (
	PortOrigin      PortType = "origin"
	PortDestination PortType = "destination"
	PortBoth        PortType = "both"
)

type Supplier struct {
	ID                       string           `json:"id"`
	Name                     string           `json:"name"`
	DefaultOriginCountry     string           `json:"defaultOriginCountry"`
	DefaultOriginPort        string           `json:"defaultOriginPort"`
	DefaultIncoterm          pricing.Incoterm `json:"defaultIncoterm"`
	WeightBasis              WeightBasis      `json:"weightBasis"`
	DefaultWeightGainPercent float64          `json:"defaultWeightGainPercent"`
	AgentName                string           `json:"agentName"`
	AgentFeePercent          float64          `json:"agentFeePercent"`
}

type Customer struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	DefaultDestinationPort string  `json:"defaultDestinationPort"`
	CreditInsuranceRate    float64 `json:"creditInsuranceRate"`
	PaymentTermsDays       float64 `json:"paymentTermsDays"`
}

// Port rates are optional; nil means the port has no rate of that kind.
type Port struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Country             string   `json:"country"`
	Type                PortType `json:"type"`
	DrayageRate         *float64 `json:"drayageRate,omitempty"`
	StorageRatePerMonth *float64 `json:"storageRatePerMonth,omitempty"`
	StevedoringRate     *float64 `json:"stevedoringRate,omitempty"`
}

// WeightGainEntry is one row of the thickness lookup table (weights in lb/ft²).
type WeightGainEntry struct {
	Thickness   string  `json:"thickness"`
	SellWeight  float64 `json:"sellWeight"`
	BuyWeight   float64 `json:"buyWeight"`
	PercentGain float64 `json:"percentGain"`
}

type DefaultRates struct {
	Section232Rate               float64 `json:"section232Rate"`
	HMFRate                      float64 `json:"hmfRate"`
	MPFRate                      float64 `json:"mpfRate"`
	MarineInsuranceRate          float64 `json:"marineInsuranceRate"`
	CreditInsuranceRate          float64 `json:"creditInsuranceRate"`
	LCRate                       float64 `json:"lcRate"`
	FinancingRate                float64 `json:"financingRate"`
	TariffFinanceRate            float64 `json:"tariffFinanceRate"`
	DefaultCommissionRate        float64 `json:"defaultCommissionRate"`
	DefaultContainerCapacity20ft float64 `json:"defaultContainerCapacity20ft"`
	DefaultContainerCapacity40ft float64 `json:"defaultContainerCapacity40ft"`
	DefaultDestuffCapacity       float64 `json:"defaultDestuffCapacity"`
}

// Settings is an immutable snapshot of every lookup table.
type Settings struct {
	Suppliers         []Supplier         `json:"suppliers"`
	Customers         []Customer         `json:"customers"`
	Ports             []Port             `json:"ports"`
	WeightGainTable   []WeightGainEntry  `json:"weightGainTable"`
	DefaultRates      DefaultRates       `json:"defaultRates"`
	DrayageByPort     map[string]float64 `json:"drayageByPort"`
	StorageByPort     map[string]float64 `json:"storageByPort"`
	StevedoringByPort map[string]float64 `json:"stevedoringByPort"`
}

func (s Settings) Supplier(id string) (Supplier, bool) {
	for _, sup := range s.Suppliers {
		if sup.ID == id {
			return sup, true
		}
	}
	return Supplier{}, false
}

func (s Settings) Customer(id string) (Customer, bool) {
	for _, c := range s.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}

// WeightGainFor returns the percent gain for a thickness such as `1/2"`.
func (s Settings) WeightGainFor(thickness string) (float64, bool) {
	for _, e := range s.WeightGainTable {
		if e.Thickness == thickness {
			return e.PercentGain, true
		}
	}
	return 0, false
}

func (s Settings) DestinationPorts() []Port {
	return s.portsOf(PortDestination)
}

func (s Settings) OriginPorts() []Port {
	return s.portsOf(PortOrigin)
}

func (s Settings) portsOf(t PortType) []Port {
	out := make([]Port, 0)
	for _, p := range s.Ports {
		if p.Type == t || p.Type == PortBoth {
			out = append(out, p)
		}
	}
	return out
}
