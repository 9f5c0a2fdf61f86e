package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/ent/cluster"
	testdb "github.com/hpc-toolchain/license-manager/test/database"
)

func TestClusterService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewClusterService(client.Client)
	ctx := context.Background()

	t.Run("creates cluster", func(t *testing.T) {
		created, err := service.Create(ctx, CreateClusterInput{
			Name:     "alpha",
			ClientID: "alpha-client",
		})
		require.NoError(t, err)
		assert.Equal(t, "alpha", created.Name)
		assert.Equal(t, "alpha-client", created.ClientID)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := service.Create(ctx, CreateClusterInput{ClientID: "x"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing client_id", func(t *testing.T) {
		_, err := service.Create(ctx, CreateClusterInput{Name: "x"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate client_id", func(t *testing.T) {
		_, err := service.Create(ctx, CreateClusterInput{
			Name:     "beta",
			ClientID: "alpha-client",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestClusterService_GetByClientID(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewClusterService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)

	t.Run("resolves cluster and loads configurations and jobs", func(t *testing.T) {
		row, err := service.GetByClientID(ctx, ledger.Cluster.ClientID)
		require.NoError(t, err)
		assert.Equal(t, ledger.Cluster.ID, row.ID)
		require.Len(t, row.Edges.Configurations, 1)
		assert.Equal(t, ledger.Config.ID, row.Edges.Configurations[0].ID)
		assert.NotNil(t, row.Edges.Jobs)
	})

	t.Run("unknown client_id", func(t *testing.T) {
		_, err := service.GetByClientID(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestClusterService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewClusterService(client.Client)
	ctx := context.Background()

	for _, c := range []CreateClusterInput{
		{Name: "zephyr", ClientID: "client-z"},
		{Name: "aurora", ClientID: "client-a"},
		{Name: "meridian", ClientID: "client-m"},
	} {
		_, err := service.Create(ctx, c)
		require.NoError(t, err)
	}

	t.Run("default order is by id", func(t *testing.T) {
		rows, err := service.List(ctx, ListParams{})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "zephyr", rows[0].Name)
	})

	t.Run("sorts by name descending", func(t *testing.T) {
		rows, err := service.List(ctx, ListParams{SortField: cluster.FieldName, SortAscending: false})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "zephyr", rows[0].Name)
		assert.Equal(t, "aurora", rows[2].Name)
	})

	t.Run("search matches name substring case-insensitively", func(t *testing.T) {
		rows, err := service.List(ctx, ListParams{Search: "AUR"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "aurora", rows[0].Name)
	})

	t.Run("search matches client_id", func(t *testing.T) {
		rows, err := service.List(ctx, ListParams{Search: "client-m"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "meridian", rows[0].Name)
	})
}

func TestClusterService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewClusterService(client.Client)
	ctx := context.Background()

	created, err := service.Create(ctx, CreateClusterInput{Name: "old", ClientID: "old-client"})
	require.NoError(t, err)

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		name := "renamed"
		updated, err := service.Update(ctx, created.ID, UpdateClusterInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Name)
		assert.Equal(t, "old-client", updated.ClientID)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		_, err := service.Update(ctx, created.ID, UpdateClusterInput{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown id", func(t *testing.T) {
		name := "x"
		_, err := service.Update(ctx, 99999, UpdateClusterInput{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestClusterService_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewClusterService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)

	t.Run("delete cascades to configurations", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, ledger.Cluster.ID))

		_, err := service.Get(ctx, ledger.Cluster.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		count, err := client.Configuration.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, service.Delete(ctx, 99999), ErrNotFound)
	})
}
