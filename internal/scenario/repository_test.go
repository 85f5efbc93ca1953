package scenario

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/landedcost/internal/db"
	"github.com/Simplici0/landedcost/internal/migrations"
	"github.com/Simplici0/landedcost/internal/pricing"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "scenario-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, migrations.Up(database, "../../migrations"))
	return NewRepository(database, zerolog.Nop())
}

func saveAt(t *testing.T, repo *Repository, name string, at time.Time) Scenario {
	t.Helper()

	in := referenceInput()
	s := New(name, in, pricing.Calculate(in))
	s.CreatedAt = at
	require.NoError(t, repo.Save(context.Background(), s))
	return s
}

func TestRepositorySaveGetRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	in := referenceInput()
	in.Target = pricing.MarginPercent(12)
	want := New("round trip", in, pricing.Calculate(in))
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx, want.ID)
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, want.Input, got.Input)
	assert.Equal(t, want.Breakdown, got.Breakdown)
}

func TestRepositoryGetUnknown(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryListNewestFirstWithFilter(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	saveAt(t, repo, "Houston 304", base)
	saveAt(t, repo, "Chicago 316", base.Add(time.Hour))
	saveAt(t, repo, "houston 316", base.Add(2*time.Hour))
	saveAt(t, repo, "100% FOB", base.Add(3*time.Hour))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "100% FOB", all[0].Name)
	assert.Equal(t, "Houston 304", all[3].Name)

	houston, err := repo.List(ctx, "HOUSTON")
	require.NoError(t, err)
	require.Len(t, houston, 2)
	assert.Equal(t, "houston 316", houston[0].Name)
	assert.Equal(t, "Houston 304", houston[1].Name)

	percent, err := repo.List(ctx, "%")
	require.NoError(t, err)
	require.Len(t, percent, 1)
	assert.Equal(t, "100% FOB", percent[0].Name)
}

func TestRepositoryRenameAndDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	s := saveAt(t, repo, "draft", time.Now().UTC())

	require.NoError(t, repo.Rename(ctx, s.ID, " final "))
	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Name)

	require.NoError(t, repo.Delete(ctx, s.ID))
	assert.ErrorIs(t, repo.Delete(ctx, s.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Rename(ctx, s.ID, "again"), ErrNotFound)
}

func TestHistoryKeepsNewestEntries(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	in := referenceInput()
	bd := pricing.Calculate(in)
	for i := 0; i < 5; i++ {
		e := NewHistoryEntry("PVST", "Alro", in, bd)
		e.Timestamp = base.Add(time.Duration(i) * time.Minute)
		e.LandedCostLb = float64(i)
		require.NoError(t, repo.AddHistory(ctx, e, 3))
	}

	entries, err := repo.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 4.0, entries[0].LandedCostLb)
	assert.Equal(t, 2.0, entries[2].LandedCostLb)
	assert.Equal(t, "PVST", entries[0].SupplierName)
	assert.Equal(t, "Alro", entries[0].CustomerName)
	assert.Equal(t, in, entries[0].Input)
}

func TestHistoryDefaultLimitAndClear(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	in := referenceInput()
	bd := pricing.Calculate(in)
	for i := 0; i < DefaultHistoryLimit+2; i++ {
		require.NoError(t, repo.AddHistory(ctx, NewHistoryEntry("", "", in, bd), 0))
	}

	entries, err := repo.ListHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, DefaultHistoryLimit)

	require.NoError(t, repo.ClearHistory(ctx))
	entries, err = repo.ListHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
