package pricing

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid pricing input")

// InvalidInputError names the field that would make the calculation degenerate.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// Validate reports the first input that would push NaN or Inf into a
// breakdown. It does not check signs or ranges beyond that.
func Validate(in PricingInput) error {
	switch in.Incoterm {
	case FOB, CIF:
	default:
		return invalid("incoterm", fmt.Sprintf("must be %s or %s, got %q", FOB, CIF, in.Incoterm))
	}

	switch in.ShippingType {
	case Container, BreakBulk:
	default:
		return invalid("shippingType", fmt.Sprintf("must be %s or %s, got %q", Container, BreakBulk, in.ShippingType))
	}

	if in.BrokerFee > 0 {
		switch in.BrokerFeeType {
		case BrokerPerMT, BrokerPerContainer, BrokerFlat:
		default:
			return invalid("brokerFeeType", fmt.Sprintf("unknown broker fee type %q", in.BrokerFeeType))
		}
	}

	if in.ContainerCapacity <= 0 {
		if in.ShippingType == Container {
			return invalid("containerCapacity", "must be greater than 0 for container shipping")
		}
		if in.BrokerFee > 0 && in.BrokerFeeType != BrokerPerMT {
			return invalid("containerCapacity", "must be greater than 0 to spread a container or flat broker fee")
		}
	}

	if in.ShippingType == Container && in.DrayagePerContainer > 0 && in.DestuffCapacity <= 0 {
		return invalid("destuffCapacity", "must be greater than 0 when drayage is charged")
	}

	if in.Target.Kind == TargetMarginPercent && in.Target.Value >= 100 {
		return invalid("target", "margin percent must be below 100")
	}

	return nil
}
