package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/ent"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/pkg/database"
)

// testLedger is a minimal cluster topology most service tests build on:
// one cluster, one flexlm configuration, one product with a single
// tracked feature and its inventory.
type testLedger struct {
	Cluster *ent.Cluster
	Config  *ent.Configuration
	Product *ent.Product
	Feature *ent.Feature
}

func seedLedger(t *testing.T, client *database.Client) *testLedger {
	t.Helper()
	ctx := context.Background()

	clusterRow, err := client.Cluster.Create().
		SetName("perf-cluster").
		SetClientID("cluster-client-1").
		Save(ctx)
	require.NoError(t, err)

	configRow, err := client.Configuration.Create().
		SetName("abaqus servers").
		SetClusterID(clusterRow.ID).
		SetGraceTime(60).
		SetType(configuration.TypeFlexlm).
		Save(ctx)
	require.NoError(t, err)

	productRow, err := client.Product.Create().
		SetName("abaqus").
		Save(ctx)
	require.NoError(t, err)

	featureRow, err := client.Feature.Create().
		SetName("standard").
		SetProductID(productRow.ID).
		SetConfigID(configRow.ID).
		SetReserved(0).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Inventory.Create().
		SetFeatureID(featureRow.ID).
		SetTotal(0).
		SetUsed(0).
		Save(ctx)
	require.NoError(t, err)

	return &testLedger{
		Cluster: clusterRow,
		Config:  configRow,
		Product: productRow,
		Feature: featureRow,
	}
}

// setInventory overrides the seeded feature's counts directly.
func (l *testLedger) setInventory(t *testing.T, client *database.Client, total, used int) {
	t.Helper()

	inv, err := l.Feature.QueryInventory().Only(context.Background())
	require.NoError(t, err)
	_, err = client.Inventory.UpdateOneID(inv.ID).
		SetTotal(total).
		SetUsed(used).
		Save(context.Background())
	require.NoError(t, err)
}
