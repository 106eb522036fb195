package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantGame/internal/domain"
)

// openTestRepo connects to the database named by TEST_DATABASE_DSN
// (driver from TEST_DATABASE_DRIVER, default pgx) or skips.
func openTestRepo(t *testing.T) *Repo {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	driver := os.Getenv("TEST_DATABASE_DRIVER")
	if driver == "" {
		driver = "pgx"
	}

	ctx := context.Background()
	repo, err := NewRepo(ctx, driver, dsn, PoolOptions{MaxOpenConns: 4, MaxIdleConns: 2, ConnMaxLifetime: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, repo.Migrate(ctx))
	return repo
}

func TestRepo_UserRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	in := domain.User{
		Name: "Integration", Email: "it@plantes.cat", Password: "secret", Age: 30,
		Nationality: "AD", PostalCode: "AD500", ProfileImage: "it.png",
		Balance: domain.NewAmount(decimal.RequireFromString("12.5")),
	}
	id, err := repo.CreateUser(ctx, in)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.DeleteUser(ctx, id) })

	got, err := repo.GetUserByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in.Name, got.Name)
	assert.True(t, in.Balance.Equal(got.Balance.Decimal))

	in.Name = "Renamed"
	in.Balance = domain.NewAmount(decimal.NewFromInt(1000000))
	require.NoError(t, repo.UpdateUser(ctx, id, in))
	got, err = repo.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got.Balance.Decimal), "update keeps btc")

	missing, err := repo.GetUserByID(ctx, -1)
	assert.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, repo.UpdateUser(ctx, -1, in))
}

func TestRepo_BuyItemsTx(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, domain.User{Name: "Buyer", Balance: domain.NewAmount(decimal.NewFromInt(100))})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.DeleteUser(ctx, id)
		_, _ = repo.db.ExecContext(ctx, repo.dialect.rebind(`DELETE FROM items_usuaris WHERE usuari_id = ?`), id)
	})

	lines := []domain.PurchaseLine{{ItemID: 7, Quantity: 2}, {ItemID: 9, Quantity: 1}}
	require.NoError(t, repo.BuyItemsTx(ctx, id, lines, decimal.NewFromInt(30)))
	require.NoError(t, repo.BuyItemsTx(ctx, id, lines, decimal.NewFromInt(30)))

	u, err := repo.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(u.Balance.Decimal))

	owned, err := repo.ListOwnedItems(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []domain.OwnedItem{
		{UserID: id, ItemID: 7, Quantity: 4},
		{UserID: id, ItemID: 9, Quantity: 2},
	}, owned)

	err = repo.BuyItemsTx(ctx, id, lines, decimal.NewFromInt(41))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	u, _ = repo.GetUserByID(ctx, id)
	assert.True(t, decimal.NewFromInt(40).Equal(u.Balance.Decimal))
}

func TestRepo_PlantRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	in := domain.Plant{UserID: 1, Name: "Ficus", Type: "tree", Level: 2, Attack: 5, Defense: 9,
		Speed: 1, SpecialAbility: "shade", Energy: 50, Status: "ok", Rarity: "common", Image: "ficus.png"}
	id, err := repo.CreatePlant(ctx, in)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.DeletePlant(ctx, id) })

	got, err := repo.GetPlantByID(ctx, id)
	require.NoError(t, err)
	in.ID = id
	assert.Equal(t, in, *got)
}
