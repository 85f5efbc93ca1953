package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/landedcost/internal/db"
	"github.com/Simplici0/landedcost/internal/migrations"
)

func newTestRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "catalog-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, migrations.Up(database, "../../migrations"))
	return NewRepository(database, zerolog.Nop()), database
}

func TestRepositoryLoadEmpty(t *testing.T) {
	repo, _ := newTestRepository(t)

	s, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, s.Suppliers)
	assert.Empty(t, s.Ports)
	assert.Equal(t, DefaultRates{}, s.DefaultRates)
	assert.NotNil(t, s.DrayageByPort)
}

func TestRepositorySaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	want := Defaults()
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, want.Suppliers, got.Suppliers)
	assert.Equal(t, want.Customers, got.Customers)
	assert.Equal(t, want.Ports, got.Ports)
	assert.Equal(t, want.WeightGainTable, got.WeightGainTable)
	assert.Equal(t, want.DefaultRates, got.DefaultRates)
	assert.Equal(t, want.DrayageByPort, got.DrayageByPort)
	assert.Equal(t, want.StorageByPort, got.StorageByPort)
	assert.Equal(t, want.StevedoringByPort, got.StevedoringByPort)
}

func TestRepositorySaveReplacesEverything(t *testing.T) {
	repo, database := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, Defaults()))

	edited := Defaults()
	edited.Suppliers = edited.Suppliers[:1]
	edited.Suppliers[0].Name = "PVST Steel"
	edited.DefaultRates.Section232Rate = 25
	delete(edited.DrayageByPort, "Miami")
	require.NoError(t, repo.Save(ctx, edited))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Suppliers, 1)
	assert.Equal(t, "PVST Steel", got.Suppliers[0].Name)
	assert.Equal(t, 25.0, got.DefaultRates.Section232Rate)
	_, ok := got.DrayageByPort["Miami"]
	assert.False(t, ok)
	assert.Equal(t, 7.0, got.StorageByPort["Miami"])

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM default_rates`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestRepositorySaveRollsBackOnError(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, Defaults()))

	broken := Defaults()
	broken.Suppliers = append(broken.Suppliers, broken.Suppliers[0])
	require.Error(t, repo.Save(ctx, broken))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Suppliers, len(Defaults().Suppliers))
}

func TestRepositoryReset(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	edited := Defaults()
	edited.Customers = nil
	require.NoError(t, repo.Save(ctx, edited))

	s, err := repo.Reset(ctx)
	require.NoError(t, err)
	assert.Len(t, s.Customers, 4)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults().Customers, got.Customers)
}
