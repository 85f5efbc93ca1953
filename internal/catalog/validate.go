package catalog

import (
	"errors"
	"fmt"

	"github.com/Simplici0/landedcost/internal/pricing"
)

var ErrInvalidSettings = errors.New("invalid settings")

type SettingsError struct {
	Field  string
	Reason string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *SettingsError) Is(target error) bool {
	return target == ErrInvalidSettings
}

func settingsErr(field string, args ...any) error {
	return &SettingsError{Field: field, Reason: fmt.Sprint(args...)}
}

// Validate checks what the store cannot hold: missing or duplicate keys and
// unknown enum values.
func (s Settings) Validate() error {
	seen := map[string]bool{}
	for i, sup := range s.Suppliers {
		field := fmt.Sprintf("suppliers[%d]", i)
		if sup.ID == "" || sup.Name == "" {
			return settingsErr(field, "id and name are required")
		}
		if seen[sup.ID] {
			return settingsErr(field, "duplicate id ", sup.ID)
		}
		seen[sup.ID] = true
		if sup.DefaultIncoterm != pricing.FOB && sup.DefaultIncoterm != pricing.CIF {
			return settingsErr(field+".defaultIncoterm", "unknown incoterm ", sup.DefaultIncoterm)
		}
		if sup.WeightBasis != WeightActual && sup.WeightBasis != WeightTheoretical {
			return settingsErr(field+".weightBasis", "unknown weight basis ", sup.WeightBasis)
		}
	}

	seen = map[string]bool{}
	for i, c := range s.Customers {
		field := fmt.Sprintf("customers[%d]", i)
		if c.ID == "" || c.Name == "" {
			return settingsErr(field, "id and name are required")
		}
		if seen[c.ID] {
			return settingsErr(field, "duplicate id ", c.ID)
		}
		seen[c.ID] = true
	}

	seen = map[string]bool{}
	for i, p := range s.Ports {
		field := fmt.Sprintf("ports[%d]", i)
		if p.ID == "" || p.Name == "" {
			return settingsErr(field, "id and name are required")
		}
		if seen[p.ID] {
			return settingsErr(field, "duplicate id ", p.ID)
		}
		seen[p.ID] = true
		switch p.Type {
		case PortOrigin, PortDestination, PortBoth:
		default:
			return settingsErr(field+".type", "unknown port type ", p.Type)
		}
	}

	seen = map[string]bool{}
	for i, e := range s.WeightGainTable {
		field := fmt.Sprintf("weightGainTable[%d]", i)
		if e.Thickness == "" {
			return settingsErr(field, "thickness is required")
		}
		if seen[e.Thickness] {
			return settingsErr(field, "duplicate thickness ", e.Thickness)
		}
		seen[e.Thickness] = true
	}

	for name := range s.DrayageByPort {
		if name == "" {
			return settingsErr("drayageByPort", "empty port name")
		}
	}
	for name := range s.StorageByPort {
		if name == "" {
			return settingsErr("storageByPort", "empty port name")
		}
	}
	for name := range s.StevedoringByPort {
		if name == "" {
			return settingsErr("stevedoringByPort", "empty port name")
		}
	}

	return nil
}
