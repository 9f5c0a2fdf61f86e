package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/hpc-toolchain/license-manager/test/database"
)

func TestFeatureService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewFeatureService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)

	t.Run("creates feature with an empty inventory", func(t *testing.T) {
		created, err := service.Create(ctx, CreateFeatureInput{
			Name:      "explicit",
			ProductID: ledger.Product.ID,
			ConfigID:  ledger.Config.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "explicit", created.Name)
		require.NotNil(t, created.Edges.Inventory)
		assert.Zero(t, created.Edges.Inventory.Total)
		assert.Zero(t, created.Edges.Inventory.Used)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		_, err := service.Create(ctx, CreateFeatureInput{
			Name:      "orphan",
			ProductID: 99999,
			ConfigID:  ledger.Config.ID,
		})
		require.Error(t, err)
	})

	t.Run("rejects negative reserved", func(t *testing.T) {
		_, err := service.Create(ctx, CreateFeatureInput{
			Name:      "neg",
			ProductID: ledger.Product.ID,
			ConfigID:  ledger.Config.ID,
			Reserved:  -1,
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestFeatureService_UpdateInventory(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewFeatureService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)

	t.Run("overrides both counts", func(t *testing.T) {
		total, used := 100, 12
		updated, err := service.UpdateInventory(ctx, ledger.Feature.ID, UpdateInventoryInput{
			Total: &total,
			Used:  &used,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Edges.Inventory)
		assert.Equal(t, 100, updated.Edges.Inventory.Total)
		assert.Equal(t, 12, updated.Edges.Inventory.Used)
	})

	t.Run("partial override keeps the other count", func(t *testing.T) {
		used := 40
		updated, err := service.UpdateInventory(ctx, ledger.Feature.ID, UpdateInventoryInput{
			Used: &used,
		})
		require.NoError(t, err)
		assert.Equal(t, 100, updated.Edges.Inventory.Total)
		assert.Equal(t, 40, updated.Edges.Inventory.Used)
	})

	t.Run("empty override is rejected", func(t *testing.T) {
		_, err := service.UpdateInventory(ctx, ledger.Feature.ID, UpdateInventoryInput{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown feature", func(t *testing.T) {
		total := 1
		_, err := service.UpdateInventory(ctx, 99999, UpdateInventoryInput{Total: &total})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFeatureService_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewFeatureService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)

	t.Run("delete cascades to inventory", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, ledger.Feature.ID))

		count, err := client.Inventory.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, service.Delete(ctx, 99999), ErrNotFound)
	})
}
