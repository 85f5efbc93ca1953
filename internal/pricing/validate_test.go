package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PricingInput)
		field  string
	}{
		{"valid reference input", func(*PricingInput) {}, ""},
		{"unknown incoterm", func(in *PricingInput) { in.Incoterm = "EXW" }, "incoterm"},
		{"unknown shipping type", func(in *PricingInput) { in.ShippingType = "air" }, "shippingType"},
		{"container without capacity", func(in *PricingInput) { in.ContainerCapacity = 0 }, "containerCapacity"},
		{"break bulk without capacity", func(in *PricingInput) {
			in.ShippingType = BreakBulk
			in.ContainerCapacity = 0
		}, ""},
		{"flat broker fee without capacity", func(in *PricingInput) {
			in.ShippingType = BreakBulk
			in.ContainerCapacity = 0
			in.BrokerFee = 100
			in.BrokerFeeType = BrokerFlat
		}, "containerCapacity"},
		{"unknown broker fee type", func(in *PricingInput) {
			in.BrokerFee = 100
			in.BrokerFeeType = "perTruck"
		}, "brokerFeeType"},
		{"drayage without destuff capacity", func(in *PricingInput) { in.DrayagePerContainer = 900 }, "destuffCapacity"},
		{"margin of 100 percent", func(in *PricingInput) { in.Target = MarginPercent(100) }, "target"},
		{"sale price target is fine", func(in *PricingInput) { in.Target = SalePrice(100) }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := referenceInput()
			tc.mutate(&in)

			err := Validate(in)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}

			var invalidErr *InvalidInputError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, tc.field, invalidErr.Field)
		})
	}
}
