package catalog

import "github.com/Simplici0/landedcost/internal/pricing"

// ApplySupplier fills origin, incoterm, weight gain and commission from the
// supplier. An unknown id only records the selection.
func (s Settings) ApplySupplier(in pricing.PricingInput, supplierID string) pricing.PricingInput {
	in.SupplierID = supplierID

	sup, ok := s.Supplier(supplierID)
	if !ok {
		return in
	}
	in.OriginCountry = sup.DefaultOriginCountry
	in.OriginPort = sup.DefaultOriginPort
	in.Incoterm = sup.DefaultIncoterm
	in.WeightGainPercent = sup.DefaultWeightGainPercent
	in.CommissionName = sup.AgentName
	in.CommissionRate = sup.AgentFeePercent
	return in
}

// ApplyCustomer fills destination, credit insurance and payment terms from the
// customer, then the destination port's drayage and storage rates.
func (s Settings) ApplyCustomer(in pricing.PricingInput, customerID string) pricing.PricingInput {
	in.CustomerID = customerID

	c, ok := s.Customer(customerID)
	if !ok {
		return in
	}
	in = s.ApplyDestinationPort(in, c.DefaultDestinationPort)
	in.CreditInsuranceRate = c.CreditInsuranceRate
	in.TermsDays = c.PaymentTermsDays
	return in
}

// ApplyDestinationPort sets the port and looks up its drayage and storage
// rates. A missing or zero rate keeps the input's current value.
func (s Settings) ApplyDestinationPort(in pricing.PricingInput, portName string) pricing.PricingInput {
	in.DestinationPort = portName
	if v := s.DrayageByPort[portName]; v > 0 {
		in.DrayagePerContainer = v
	}
	if v := s.StorageByPort[portName]; v > 0 {
		in.StoragePerMTPerMonth = v
	}
	return in
}

func (s Settings) ApplyContainerSize(in pricing.PricingInput, size pricing.ContainerSize) pricing.PricingInput {
	in.ContainerSize = size
	if size == pricing.Container20ft {
		in.ContainerCapacity = s.DefaultRates.DefaultContainerCapacity20ft
	} else {
		in.ContainerCapacity = s.DefaultRates.DefaultContainerCapacity40ft
	}
	return in
}

// ApplyThickness sets the weight gain from the lookup table. The second
// result is false when the thickness is not listed.
func (s Settings) ApplyThickness(in pricing.PricingInput, thickness string) (pricing.PricingInput, bool) {
	gain, ok := s.WeightGainFor(thickness)
	if !ok {
		return in, false
	}
	in.WeightGainPercent = gain
	return in, true
}
