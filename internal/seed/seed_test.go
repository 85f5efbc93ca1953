package seed

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Simplici0/landedcost/internal/catalog"
	"github.com/Simplici0/landedcost/internal/db"
	"github.com/Simplici0/landedcost/internal/migrations"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return database
}

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	database := openTestDB(t)
	defaults := catalog.Defaults()
	ctx := context.Background()

	firstRun := 1 + len(defaults.Suppliers) + len(defaults.Customers) + len(defaults.Ports) +
		len(defaults.WeightGainTable) + len(defaults.PortRates())

	for i := 0; i < 5; i++ {
		stats, err := Run(ctx, database, defaults)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != firstRun {
				t.Fatalf("expected %d inserts in first run, got %d", firstRun, stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 {
			t.Fatalf("expected 0 inserts in iteration %d, got %d", i, stats.Inserts)
		}
	}

	assertCount(t, database, `SELECT COUNT(*) FROM suppliers`, nil, len(defaults.Suppliers))
	assertCount(t, database, `SELECT COUNT(*) FROM customers`, nil, len(defaults.Customers))
	assertCount(t, database, `SELECT COUNT(*) FROM ports`, nil, len(defaults.Ports))
	assertCount(t, database, `SELECT COUNT(*) FROM weight_gains`, nil, len(defaults.WeightGainTable))
	assertCount(t, database, `SELECT COUNT(*) FROM default_rates WHERE id = 1`, nil, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM port_rates WHERE port_name = ?`, defaults.Customers[0].DefaultDestinationPort, 1)
}

func TestRunKeepsEditedRows(t *testing.T) {
	t.Parallel()

	database := openTestDB(t)
	ctx := context.Background()
	defaults := catalog.Defaults()

	if _, err := Run(ctx, database, defaults); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	id := defaults.Suppliers[0].ID
	if _, err := database.Exec(`UPDATE suppliers SET name = ? WHERE id = ?`, "Renamed", id); err != nil {
		t.Fatalf("rename supplier: %v", err)
	}

	stats, err := Run(ctx, database, defaults)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if stats.Inserts != 0 {
		t.Fatalf("expected 0 inserts after edit, got %d", stats.Inserts)
	}

	var name string
	if err := database.QueryRow(`SELECT name FROM suppliers WHERE id = ?`, id).Scan(&name); err != nil {
		t.Fatalf("query supplier: %v", err)
	}
	if name != "Renamed" {
		t.Fatalf("expected edited supplier name to survive, got %q", name)
	}
}

func TestRunDoesNotRestoreDeletedDefaults(t *testing.T) {
	t.Parallel()

	database := openTestDB(t)
	ctx := context.Background()
	defaults := catalog.Defaults()

	if _, err := Run(ctx, database, defaults); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	repo := catalog.NewRepository(database, zerolog.Nop())
	edited := catalog.Defaults()
	edited.Suppliers = edited.Suppliers[1:]
	edited.Customers = edited.Customers[:1]
	delete(edited.DrayageByPort, "Miami")
	delete(edited.StorageByPort, "Miami")
	if err := repo.Save(ctx, edited); err != nil {
		t.Fatalf("save edited catalog: %v", err)
	}

	stats, err := Run(ctx, database, defaults)
	if err != nil {
		t.Fatalf("seed after edit: %v", err)
	}
	if stats.Inserts != 0 {
		t.Fatalf("expected 0 inserts after edit, got %d", stats.Inserts)
	}

	assertCount(t, database, `SELECT COUNT(*) FROM suppliers WHERE id = ?`, defaults.Suppliers[0].ID, 0)
	assertCount(t, database, `SELECT COUNT(*) FROM suppliers`, nil, len(defaults.Suppliers)-1)
	assertCount(t, database, `SELECT COUNT(*) FROM customers`, nil, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM port_rates WHERE port_name = ?`, "Miami", 0)
}

func TestRunSeedsEmptyCatalogOnlyOnce(t *testing.T) {
	t.Parallel()

	database := openTestDB(t)
	ctx := context.Background()

	if _, err := Run(ctx, database, catalog.Defaults()); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	for _, table := range []string{"suppliers", "customers", "ports", "weight_gains", "port_rates"} {
		if _, err := database.Exec(`DELETE FROM ` + table); err != nil {
			t.Fatalf("clear %s: %v", table, err)
		}
	}

	stats, err := Run(ctx, database, catalog.Defaults())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if stats.Inserts != 0 {
		t.Fatalf("expected an emptied catalog to stay empty, got %d inserts", stats.Inserts)
	}
	assertCount(t, database, `SELECT COUNT(*) FROM suppliers`, nil, 0)
	assertCount(t, database, `SELECT COUNT(*) FROM catalog_meta WHERE id = 1`, nil, 1)
}

func assertCount(t *testing.T, database *sql.DB, query string, args any, expected int) {
	t.Helper()

	var count int
	var err error
	switch v := args.(type) {
	case nil:
		err = database.QueryRow(query).Scan(&count)
	case []any:
		err = database.QueryRow(query, v...).Scan(&count)
	default:
		err = database.QueryRow(query, v).Scan(&count)
	}
	if err != nil {
		t.Fatalf("query count (%s): %v", query, err)
	}
	if count != expected {
		t.Fatalf("expected %d rows for %q, got %d", expected, query, count)
	}
}
