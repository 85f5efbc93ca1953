package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Simplici0/landedcost/internal/catalog"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run seeds defaults into a database that has never been seeded. Once the
// catalog_meta marker exists it does nothing, so rows edited or deleted
// through the API stay that way across restarts.
func Run(ctx context.Context, db *sql.DB, defaults catalog.Settings) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	seeded, err := exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM catalog_meta WHERE id = 1)`)
	if err != nil {
		_ = tx.Rollback()
		return Stats{}, fmt.Errorf("check seed marker: %w", err)
	}
	if seeded {
		_ = tx.Rollback()
		return Stats{}, nil
	}

	stats := Stats{}
	steps := []func(context.Context, *sql.Tx, catalog.Settings, *Stats) error{
		ensureDefaultRates,
		ensureSuppliers,
		ensureCustomers,
		ensurePorts,
		ensureWeightGains,
		ensurePortRates,
	}
	for _, step := range steps {
		if err := step(ctx, tx, defaults, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO catalog_meta (id, seeded_at) VALUES (1, ?)`,
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		_ = tx.Rollback()
		return Stats{}, fmt.Errorf("write seed marker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func exists(ctx context.Context, tx *sql.Tx, query string, args ...any) (bool, error) {
	var found bool
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func ensureDefaultRates(ctx context.Context, tx *sql.Tx, s catalog.Settings, stats *Stats) error {
	found, err := exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM default_rates WHERE id = 1)`)
	if err != nil {
		return fmt.Errorf("check default rates existence: %w", err)
	}
	if found {
		return nil
	}

	if err := catalog.InsertDefaultRates(ctx, tx, s.DefaultRates); err != nil {
		return err
	}
	stats.Inserts++
	return nil
}

func ensureSuppliers(ctx context.Context, tx *sql.Tx, s catalog.Settings, stats *Stats) error {
	for i, sup := range s.Suppliers {
		found, err := exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM suppliers WHERE id = ? LIMIT 1)`, sup.ID)
		if err != nil {
			return fmt.Errorf("check supplier existence: %w", err)
		}
		if found {
			continue
		}
		if err := catalog.InsertSupplier(ctx, tx, i, sup); err != nil {
			return err
		}
		stats.Inserts++
	}
	return nil
}

func ensureCustomers(ctx context.Context, tx *sql.Tx, s catalog.Settings, stats *Stats) error {
	for i, c := range s.Customers {
		found, err := exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM customers WHERE id = ? LIMIT 1)`, c.ID)
		if err != nil {
			return fmt.Errorf("check customer existence: %w", err)
		}
		if found {
			continue
		}
		if err := catalog.InsertCustomer(ctx, tx, i, c); err != nil {
			return err
		}
		stats.Inserts++
	}
	return nil
}

func ensurePorts(ctx context.Context, tx *sql.Tx, s catalog.Settings, stats *Stats) error {
	for i, p := range s.Ports {
		found, err := exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM ports WHERE id = ? LIMIT 1)`, p.ID)
		if err != nil {
			return fmt.Errorf("check port existence: %w", err)
		}
		if found {
			continue
		}
		if err := catalog.InsertPort(ctx, tx, i, p); err != nil {
			return err
		}
		stats.Inserts++
	}
	return nil
}

func ensureWeightGains(ctx context.Context, tx *sql.Tx, s catalog.Settings, stats *Stats) error {
	for i, e := range s.WeightGainTable {
		found, err := exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM weight_gains WHERE thickness = ? LIMIT 1)`, e.Thickness)
		if err != nil {
			return fmt.Errorf("check weight gain existence: %w", err)
		}
		if found {
			continue
		}
		if err := catalog.InsertWeightGain(ctx, tx, i, e); err != nil {
			return err
		}
		stats.Inserts++
	}
	return nil
}

func ensurePortRates(ctx context.Context, tx *sql.Tx, s catalog.Settings, stats *Stats) error {
	for _, pr := range s.PortRates() {
		found, err := exists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM port_rates WHERE port_name = ? LIMIT 1)`, pr.PortName)
		if err != nil {
			return fmt.Errorf("check port rate existence: %w", err)
		}
		if found {
			continue
		}
		if err := catalog.InsertPortRate(ctx, tx, pr); err != nil {
			return err
		}
		stats.Inserts++
	}
	return nil
}
