package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
)

// PortRate is one row of the per-port rate tables. Nil means "no rate".
type PortRate struct {
	PortName    string
	Drayage     *float64
	Storage     *float64
	Stevedoring *float64
}

// PortRates folds the three per-port maps into rows, sorted by port name.
func (s Settings) PortRates() []PortRate {
	byName := map[string]*PortRate{}
	get := func(name string) *PortRate {
		pr, ok := byName[name]
		if !ok {
			pr = &PortRate{PortName: name}
			byName[name] = pr
		}
		return pr
	}
	for name, v := range s.DrayageByPort {
		get(name).Drayage = rate(v)
	}
	for name, v := range s.StorageByPort {
		get(name).Storage = rate(v)
	}
	for name, v := range s.StevedoringByPort {
		get(name).Stevedoring = rate(v)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]PortRate, 0, len(names))
	for _, name := range names {
		out = append(out, *byName[name])
	}
	return out
}

func InsertSupplier(ctx context.Context, tx *sql.Tx, position int, s Supplier) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO suppliers (
			id, position, name, default_origin_country, default_origin_port, default_incoterm,
			weight_basis, default_weight_gain_percent, agent_name, agent_fee_percent
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, position, s.Name, s.DefaultOriginCountry, s.DefaultOriginPort, s.DefaultIncoterm,
		s.WeightBasis, s.DefaultWeightGainPercent, s.AgentName, s.AgentFeePercent); err != nil {
		return fmt.Errorf("insert supplier %q: %w", s.ID, err)
	}
	return nil
}

func InsertCustomer(ctx context.Context, tx *sql.Tx, position int, c Customer) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO customers (id, position, name, default_destination_port, credit_insurance_rate, payment_terms_days)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, position, c.Name, c.DefaultDestinationPort, c.CreditInsuranceRate, c.PaymentTermsDays); err != nil {
		return fmt.Errorf("insert customer %q: %w", c.ID, err)
	}
	return nil
}

func InsertPort(ctx context.Context, tx *sql.Tx, position int, p Port) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO ports (id, position, name, country, type, drayage_rate, storage_rate_per_month, stevedoring_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, position, p.Name, p.Country, p.Type, p.DrayageRate, p.StorageRatePerMonth, p.StevedoringRate); err != nil {
		return fmt.Errorf("insert port %q: %w", p.ID, err)
	}
	return nil
}

func InsertWeightGain(ctx context.Context, tx *sql.Tx, position int, e WeightGainEntry) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO weight_gains (thickness, position, sell_weight, buy_weight, percent_gain)
		VALUES (?, ?, ?, ?, ?)
	`, e.Thickness, position, e.SellWeight, e.BuyWeight, e.PercentGain); err != nil {
		return fmt.Errorf("insert weight gain %q: %w", e.Thickness, err)
	}
	return nil
}

func InsertPortRate(ctx context.Context, tx *sql.Tx, pr PortRate) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO port_rates (port_name, drayage, storage, stevedoring)
		VALUES (?, ?, ?, ?)
	`, pr.PortName, pr.Drayage, pr.Storage, pr.Stevedoring); err != nil {
		return fmt.Errorf("insert port rate %q: %w", pr.PortName, err)
	}
	return nil
}

func InsertDefaultRates(ctx context.Context, tx *sql.Tx, d DefaultRates) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO default_rates (
			id, section232_rate, hmf_rate, mpf_rate, marine_insurance_rate, credit_insurance_rate,
			lc_rate, financing_rate, tariff_finance_rate, default_commission_rate,
			container_capacity_20ft, container_capacity_40ft, destuff_capacity
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		d.Section232Rate,
		d.HMFRate,
		d.MPFRate,
		d.MarineInsuranceRate,
		d.CreditInsuranceRate,
		d.LCRate,
		d.FinancingRate,
		d.TariffFinanceRate,
		d.DefaultCommissionRate,
		d.DefaultContainerCapacity20ft,
		d.DefaultContainerCapacity40ft,
		d.DefaultDestuffCapacity,
	); err != nil {
		return fmt.Errorf("insert default_rates singleton: %w", err)
	}
	return nil
}
