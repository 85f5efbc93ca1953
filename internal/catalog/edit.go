package catalog

import "errors"

// ErrNotFound is returned when a single catalog entry is addressed by an
// unknown id.
var ErrNotFound = errors.New("catalog entry not found")

// upsert replaces the entry with the same key or appends it. The result never
// shares a backing array with items.
func upsert[T any](items []T, item T, key func(T) string) []T {
	out := make([]T, 0, len(items)+1)
	replaced := false
	for _, existing := range items {
		if key(existing) == key(item) {
			out = append(out, item)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, item)
	}
	return out
}

func remove[T any](items []T, id string, key func(T) string) ([]T, bool) {
	out := make([]T, 0, len(items))
	found := false
	for _, existing := range items {
		if key(existing) == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	return out, found
}

func supplierKey(s Supplier) string { return s.ID }
func customerKey(c Customer) string { return c.ID }
func portKey(p Port) string         { return p.ID }

func (s Settings) UpsertSupplier(sup Supplier) Settings {
	s.Suppliers = upsert(s.Suppliers, sup, supplierKey)
	return s
}

func (s Settings) RemoveSupplier(id string) (Settings, error) {
	var ok bool
	if s.Suppliers, ok = remove(s.Suppliers, id, supplierKey); !ok {
		return s, ErrNotFound
	}
	return s, nil
}

func (s Settings) UpsertCustomer(c Customer) Settings {
	s.Customers = upsert(s.Customers, c, customerKey)
	return s
}

func (s Settings) RemoveCustomer(id string) (Settings, error) {
	var ok bool
	if s.Customers, ok = remove(s.Customers, id, customerKey); !ok {
		return s, ErrNotFound
	}
	return s, nil
}

// UpsertPort also refreshes the per-port rate maps from the port's own rates,
// so auto-fill by destination picks up the edit.
func (s Settings) UpsertPort(p Port) Settings {
	s.Ports = upsert(s.Ports, p, portKey)
	s.DrayageByPort = withRate(s.DrayageByPort, p.Name, p.DrayageRate)
	s.StorageByPort = withRate(s.StorageByPort, p.Name, p.StorageRatePerMonth)
	s.StevedoringByPort = withRate(s.StevedoringByPort, p.Name, p.StevedoringRate)
	return s
}

func (s Settings) RemovePort(id string) (Settings, error) {
	var ok bool
	if s.Ports, ok = remove(s.Ports, id, portKey); !ok {
		return s, ErrNotFound
	}
	return s, nil
}

func withRate(m map[string]float64, name string, v *float64) map[string]float64 {
	out := make(map[string]float64, len(m)+1)
	for k, rate := range m {
		out[k] = rate
	}
	if v != nil {
		out[name] = *v
	}
	return out
}
