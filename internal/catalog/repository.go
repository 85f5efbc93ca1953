package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Simplici0/landedcost/internal/db"
)

// Repository persists the catalog in SQLite, one table per lookup.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewRepository(database *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  database,
		log: log.With().Str("repository", "catalog").Logger(),
	}
}

// Load reads a full snapshot. A database that was never seeded yields empty
// tables and zero rates.
func (r *Repository) Load(ctx context.Context) (Settings, error) {
	s := Settings{
		DrayageByPort:     map[string]float64{},
		StorageByPort:     map[string]float64{},
		StevedoringByPort: map[string]float64{},
	}

	var err error
	if s.Suppliers, err = r.listSuppliers(ctx); err != nil {
		return Settings{}, err
	}
	if s.Customers, err = r.listCustomers(ctx); err != nil {
		return Settings{}, err
	}
	if s.Ports, err = r.listPorts(ctx); err != nil {
		return Settings{}, err
	}
	if s.WeightGainTable, err = r.listWeightGains(ctx); err != nil {
		return Settings{}, err
	}
	if s.DefaultRates, err = r.getDefaultRates(ctx); err != nil {
		return Settings{}, err
	}
	if err := r.loadPortRates(ctx, &s); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Save replaces the stored catalog with s in a single transaction.
func (r *Repository) Save(ctx context.Context, s Settings) error {
	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, table := range []string{"suppliers", "customers", "ports", "weight_gains", "port_rates", "default_rates"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for i, sup := range s.Suppliers {
			if err := InsertSupplier(ctx, tx, i, sup); err != nil {
				return err
			}
		}
		for i, c := range s.Customers {
			if err := InsertCustomer(ctx, tx, i, c); err != nil {
				return err
			}
		}
		for i, p := range s.Ports {
			if err := InsertPort(ctx, tx, i, p); err != nil {
				return err
			}
		}
		for i, e := range s.WeightGainTable {
			if err := InsertWeightGain(ctx, tx, i, e); err != nil {
				return err
			}
		}
		for _, pr := range s.PortRates() {
			if err := InsertPortRate(ctx, tx, pr); err != nil {
				return err
			}
		}
		return InsertDefaultRates(ctx, tx, s.DefaultRates)
	})
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}

	r.log.Info().
		Int("suppliers", len(s.Suppliers)).
		Int("customers", len(s.Customers)).
		Int("ports", len(s.Ports)).
		Msg("catalog saved")
	return nil
}

// Reset restores the built-in defaults.
func (r *Repository) Reset(ctx context.Context) (Settings, error) {
	s := Defaults()
	if err := r.Save(ctx, s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (r *Repository) listSuppliers(ctx context.Context) ([]Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, default_origin_country, default_origin_port, default_incoterm,
			weight_basis, default_weight_gain_percent, agent_name, agent_fee_percent
		FROM suppliers
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := make([]Supplier, 0)
	for rows.Next() {
		var s Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.DefaultOriginCountry, &s.DefaultOriginPort, &s.DefaultIncoterm,
			&s.WeightBasis, &s.DefaultWeightGainPercent, &s.AgentName, &s.AgentFeePercent); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *Repository) listCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, default_destination_port, credit_insurance_rate, payment_terms_days
		FROM customers
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	customers := make([]Customer, 0)
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.DefaultDestinationPort, &c.CreditInsuranceRate, &c.PaymentTermsDays); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

func (r *Repository) listPorts(ctx context.Context) ([]Port, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, country, type, drayage_rate, storage_rate_per_month, stevedoring_rate
		FROM ports
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query ports: %w", err)
	}
	defer rows.Close()

	ports := make([]Port, 0)
	for rows.Next() {
		var p Port
		var drayage, storage, stevedoring sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.Name, &p.Country, &p.Type, &drayage, &storage, &stevedoring); err != nil {
			return nil, fmt.Errorf("scan port: %w", err)
		}
		p.DrayageRate = nullableRate(drayage)
		p.StorageRatePerMonth = nullableRate(storage)
		p.StevedoringRate = nullableRate(stevedoring)
		ports = append(ports, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ports: %w", err)
	}
	return ports, nil
}

func (r *Repository) listWeightGains(ctx context.Context) ([]WeightGainEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT thickness, sell_weight, buy_weight, percent_gain
		FROM weight_gains
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query weight gains: %w", err)
	}
	defer rows.Close()

	entries := make([]WeightGainEntry, 0)
	for rows.Next() {
		var e WeightGainEntry
		if err := rows.Scan(&e.Thickness, &e.SellWeight, &e.BuyWeight, &e.PercentGain); err != nil {
			return nil, fmt.Errorf("scan weight gain: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight gains: %w", err)
	}
	return entries, nil
}

func (r *Repository) getDefaultRates(ctx context.Context) (DefaultRates, error) {
	var d DefaultRates
	err := r.db.QueryRowContext(ctx, `
		SELECT section232_rate, hmf_rate, mpf_rate, marine_insurance_rate, credit_insurance_rate,
			lc_rate, financing_rate, tariff_finance_rate, default_commission_rate,
			container_capacity_20ft, container_capacity_40ft, destuff_capacity
		FROM default_rates
		WHERE id = 1
	`).Scan(
		&d.Section232Rate,
		&d.HMFRate,
		&d.MPFRate,
		&d.MarineInsuranceRate,
		&d.CreditInsuranceRate,
		&d.LCRate,
		&d.FinancingRate,
		&d.TariffFinanceRate,
		&d.DefaultCommissionRate,
		&d.DefaultContainerCapacity20ft,
		&d.DefaultContainerCapacity40ft,
		&d.DefaultDestuffCapacity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		r.log.Warn().Msg("default_rates singleton missing; using zero rates")
		return DefaultRates{}, nil
	}
	if err != nil {
		return DefaultRates{}, fmt.Errorf("query default_rates: %w", err)
	}
	return d, nil
}

func (r *Repository) loadPortRates(ctx context.Context, s *Settings) error {
	rows, err := r.db.QueryContext(ctx, `SELECT port_name, drayage, storage, stevedoring FROM port_rates`)
	if err != nil {
		return fmt.Errorf("query port rates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pr PortRate
		var drayage, storage, stevedoring sql.NullFloat64
		if err := rows.Scan(&pr.PortName, &drayage, &storage, &stevedoring); err != nil {
			return fmt.Errorf("scan port rate: %w", err)
		}
		if drayage.Valid {
			s.DrayageByPort[pr.PortName] = drayage.Float64
		}
		if storage.Valid {
			s.StorageByPort[pr.PortName] = storage.Float64
		}
		if stevedoring.Valid {
			s.StevedoringByPort[pr.PortName] = stevedoring.Float64
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate port rates: %w", err)
	}
	return nil
}

func nullableRate(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return rate(v.Float64)
}
