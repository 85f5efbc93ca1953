package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{name: "defaults are valid", mutate: func(*Settings) {}},
		{
			name:   "supplier without id",
			mutate: func(s *Settings) { s.Suppliers[1].ID = "" },
			field:  "suppliers[1]",
		},
		{
			name:   "duplicate customer",
			mutate: func(s *Settings) { s.Customers[2].ID = s.Customers[0].ID },
			field:  "customers[2]",
		},
		{
			name:   "unknown incoterm",
			mutate: func(s *Settings) { s.Suppliers[0].DefaultIncoterm = "DDP" },
			field:  "suppliers[0].defaultIncoterm",
		},
		{
			name:   "unknown weight basis",
			mutate: func(s *Settings) { s.Suppliers[0].WeightBasis = "estimated" },
			field:  "suppliers[0].weightBasis",
		},
		{
			name:   "unknown port type",
			mutate: func(s *Settings) { s.Ports[3].Type = "river" },
			field:  "ports[3].type",
		},
		{
			name:   "duplicate thickness",
			mutate: func(s *Settings) { s.WeightGainTable[1].Thickness = s.WeightGainTable[0].Thickness },
			field:  "weightGainTable[1]",
		},
		{
			name:   "empty port rate key",
			mutate: func(s *Settings) { s.StorageByPort[""] = 4 },
			field:  "storageByPort",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)

			err := s.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrInvalidSettings)
			var serr *SettingsError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, tt.field, serr.Field)
		})
	}
}
