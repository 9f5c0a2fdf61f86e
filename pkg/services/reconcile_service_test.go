package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/pkg/models"
	testdb "github.com/hpc-toolchain/license-manager/test/database"
)

func TestReconcileService_Apply(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReconcileService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)

	t.Run("updates tracked inventories", func(t *testing.T) {
		updated, err := service.Apply(ctx, ledger.Cluster.ClientID, []models.ReportItem{
			{ProductFeature: "abaqus.standard", Used: 7, Total: 50},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated)

		inv, err := ledger.Feature.QueryInventory().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 50, inv.Total)
		assert.Equal(t, 7, inv.Used)
	})

	t.Run("re-applying the same report changes nothing", func(t *testing.T) {
		updated, err := service.Apply(ctx, ledger.Cluster.ClientID, []models.ReportItem{
			{ProductFeature: "abaqus.standard", Used: 7, Total: 50},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated)

		inv, err := ledger.Feature.QueryInventory().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 50, inv.Total)
		assert.Equal(t, 7, inv.Used)
	})

	t.Run("skips features the cluster does not track", func(t *testing.T) {
		updated, err := service.Apply(ctx, ledger.Cluster.ClientID, []models.ReportItem{
			{ProductFeature: "ansys.solver", Used: 1, Total: 10},
			{ProductFeature: "abaqus.standard", Used: 3, Total: 50},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated)

		inv, err := ledger.Feature.QueryInventory().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, inv.Used)
	})

	t.Run("clamps used above total", func(t *testing.T) {
		updated, err := service.Apply(ctx, ledger.Cluster.ClientID, []models.ReportItem{
			{ProductFeature: "abaqus.standard", Used: 60, Total: 50},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated)

		inv, err := ledger.Feature.QueryInventory().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 50, inv.Total)
		assert.Equal(t, 50, inv.Used)
	})

	t.Run("unknown cluster client_id", func(t *testing.T) {
		_, err := service.Apply(ctx, "nobody", []models.ReportItem{
			{ProductFeature: "abaqus.standard", Used: 1, Total: 10},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty report is rejected", func(t *testing.T) {
		_, err := service.Apply(ctx, ledger.Cluster.ClientID, nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("negative counts are rejected", func(t *testing.T) {
		_, err := service.Apply(ctx, ledger.Cluster.ClientID, []models.ReportItem{
			{ProductFeature: "abaqus.standard", Used: -1, Total: 10},
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("malformed product_feature is rejected", func(t *testing.T) {
		_, err := service.Apply(ctx, ledger.Cluster.ClientID, []models.ReportItem{
			{ProductFeature: "standard", Used: 1, Total: 10},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestReconcileService_Apply_ClusterScoped(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReconcileService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)

	// A second cluster tracking the same product.feature must not be
	// touched by the first cluster's report.
	other, err := client.Cluster.Create().
		SetName("other-cluster").
		SetClientID("cluster-client-2").
		Save(ctx)
	require.NoError(t, err)
	otherConfig, err := client.Configuration.Create().
		SetName("abaqus servers").
		SetClusterID(other.ID).
		SetGraceTime(60).
		SetType(ledger.Config.Type).
		Save(ctx)
	require.NoError(t, err)
	otherFeature, err := client.Feature.Create().
		SetName("standard").
		SetProductID(ledger.Product.ID).
		SetConfigID(otherConfig.ID).
		SetReserved(0).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Inventory.Create().
		SetFeatureID(otherFeature.ID).
		SetTotal(5).
		SetUsed(1).
		Save(ctx)
	require.NoError(t, err)

	updated, err := service.Apply(ctx, ledger.Cluster.ClientID, []models.ReportItem{
		{ProductFeature: "abaqus.standard", Used: 9, Total: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	otherInv, err := otherFeature.QueryInventory().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, otherInv.Total)
	assert.Equal(t, 1, otherInv.Used)
}
