package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/pkg/models"
	testdb "github.com/hpc-toolchain/license-manager/test/database"
)

func TestBookingService_CreateForJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBookingService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)
	ledger.setInventory(t, client, 10, 2)

	t.Run("admits a booking within the available pool", func(t *testing.T) {
		created, err := service.CreateForJob(ctx, ledger.Cluster.ClientID, models.BookingRequest{
			SlurmJobID: 100,
			UserName:   "alice",
			LeadHost:   "node001",
			Bookings: []models.LicenseBooking{
				{ProductFeature: "abaqus.standard", Quantity: 4},
			},
		})
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, 4, created[0].Quantity)

		// The job row was created on first admission.
		jobs, err := ledger.Cluster.QueryJobs().All(ctx)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, 100, jobs[0].SlurmJobID)
		assert.Equal(t, "alice", jobs[0].Username)
	})

	t.Run("rejects a booking that would overcommit", func(t *testing.T) {
		// used=2 plus the existing booking of 4 leaves 4 tokens.
		_, err := service.CreateForJob(ctx, ledger.Cluster.ClientID, models.BookingRequest{
			SlurmJobID: 101,
			UserName:   "bob",
			LeadHost:   "node002",
			Bookings: []models.LicenseBooking{
				{ProductFeature: "abaqus.standard", Quantity: 5},
			},
		})
		assert.ErrorIs(t, err, ErrBookingConflict)

		// The failed admission must not leave a booking behind.
		count, err := client.Booking.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("admits exactly the remaining tokens", func(t *testing.T) {
		created, err := service.CreateForJob(ctx, ledger.Cluster.ClientID, models.BookingRequest{
			SlurmJobID: 102,
			UserName:   "carol",
			LeadHost:   "node003",
			Bookings: []models.LicenseBooking{
				{ProductFeature: "abaqus.standard", Quantity: 4},
			},
		})
		require.NoError(t, err)
		require.Len(t, created, 1)
	})

	t.Run("unknown cluster client_id", func(t *testing.T) {
		_, err := service.CreateForJob(ctx, "nobody", models.BookingRequest{
			SlurmJobID: 103,
			UserName:   "dave",
			LeadHost:   "node004",
			Bookings: []models.LicenseBooking{
				{ProductFeature: "abaqus.standard", Quantity: 1},
			},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, err := service.CreateForJob(ctx, ledger.Cluster.ClientID, models.BookingRequest{
			SlurmJobID: 104,
			UserName:   "erin",
			LeadHost:   "node005",
			Bookings: []models.LicenseBooking{
				{ProductFeature: "abaqus.explicit", Quantity: 1},
			},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBookingService_CreateForJob_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBookingService(client.Client)
	ctx := context.Background()

	base := models.BookingRequest{
		SlurmJobID: 1,
		UserName:   "alice",
		LeadHost:   "node001",
		Bookings:   []models.LicenseBooking{{ProductFeature: "abaqus.standard", Quantity: 1}},
	}

	t.Run("missing slurm_job_id", func(t *testing.T) {
		req := base
		req.SlurmJobID = 0
		_, err := service.CreateForJob(ctx, "c", req)
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing user_name", func(t *testing.T) {
		req := base
		req.UserName = ""
		_, err := service.CreateForJob(ctx, "c", req)
		assert.True(t, IsValidationError(err))
	})

	t.Run("empty bookings", func(t *testing.T) {
		req := base
		req.Bookings = nil
		_, err := service.CreateForJob(ctx, "c", req)
		assert.True(t, IsValidationError(err))
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		req := base
		req.Bookings = []models.LicenseBooking{{ProductFeature: "abaqus.standard", Quantity: 0}}
		_, err := service.CreateForJob(ctx, "c", req)
		assert.True(t, IsValidationError(err))
	})

	t.Run("malformed product_feature", func(t *testing.T) {
		req := base
		req.Bookings = []models.LicenseBooking{{ProductFeature: "standard", Quantity: 1}}
		_, err := service.CreateForJob(ctx, "c", req)
		assert.True(t, IsValidationError(err))
	})
}

func TestBookingService_ReservedTokens(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBookingService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)
	ledger.setInventory(t, client, 10, 0)

	_, err := client.Feature.UpdateOneID(ledger.Feature.ID).
		SetReserved(8).
		Save(ctx)
	require.NoError(t, err)

	t.Run("reserved tokens shrink the bookable pool", func(t *testing.T) {
		_, err := service.CreateForJob(ctx, ledger.Cluster.ClientID, models.BookingRequest{
			SlurmJobID: 200,
			UserName:   "alice",
			LeadHost:   "node001",
			Bookings: []models.LicenseBooking{
				{ProductFeature: "abaqus.standard", Quantity: 3},
			},
		})
		assert.ErrorIs(t, err, ErrBookingConflict)

		created, err := service.CreateForJob(ctx, ledger.Cluster.ClientID, models.BookingRequest{
			SlurmJobID: 200,
			UserName:   "alice",
			LeadHost:   "node001",
			Bookings: []models.LicenseBooking{
				{ProductFeature: "abaqus.standard", Quantity: 2},
			},
		})
		require.NoError(t, err)
		require.Len(t, created, 1)
	})
}

func TestBookingService_ConcurrentAdmission(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBookingService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)
	ledger.setInventory(t, client, 10, 0)

	// 10 tokens, 20 racing requests of 1 token each: exactly 10 must win.
	const attempts = 20
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.CreateForJob(ctx, ledger.Cluster.ClientID, models.BookingRequest{
				SlurmJobID: 300 + i,
				UserName:   "racer",
				LeadHost:   "node001",
				Bookings: []models.LicenseBooking{
					{ProductFeature: "abaqus.standard", Quantity: 1},
				},
			})
		}(i)
	}
	wg.Wait()

	admitted, conflicted := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			admitted++
		default:
			require.ErrorIs(t, err, ErrBookingConflict)
			conflicted++
		}
	}
	assert.Equal(t, 10, admitted)
	assert.Equal(t, 10, conflicted)

	count, err := client.Booking.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}

func TestBookingService_ListForJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBookingService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)
	ledger.setInventory(t, client, 10, 0)

	_, err := service.CreateForJob(ctx, ledger.Cluster.ClientID, models.BookingRequest{
		SlurmJobID: 400,
		UserName:   "alice",
		LeadHost:   "node001",
		Bookings: []models.LicenseBooking{
			{ProductFeature: "abaqus.standard", Quantity: 3},
		},
	})
	require.NoError(t, err)

	t.Run("returns bookings with feature and configuration", func(t *testing.T) {
		rows, err := service.ListForJob(ctx, ledger.Cluster.ClientID, 400)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].Edges.Feature)
		require.NotNil(t, rows[0].Edges.Feature.Edges.Configuration)
		assert.Equal(t, ledger.Config.ID, rows[0].Edges.Feature.Edges.Configuration.ID)
	})

	t.Run("unknown job yields empty list", func(t *testing.T) {
		rows, err := service.ListForJob(ctx, ledger.Cluster.ClientID, 999)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestBookingService_DeleteByJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBookingService(client.Client)
	ctx := context.Background()

	ledger := seedLedger(t, client)
	ledger.setInventory(t, client, 10, 0)

	_, err := service.CreateForJob(ctx, ledger.Cluster.ClientID, models.BookingRequest{
		SlurmJobID: 500,
		UserName:   "alice",
		LeadHost:   "node001",
		Bookings: []models.LicenseBooking{
			{ProductFeature: "abaqus.standard", Quantity: 2},
		},
	})
	require.NoError(t, err)

	t.Run("releases every booking the job holds", func(t *testing.T) {
		n, err := service.DeleteByJob(ctx, ledger.Cluster.ClientID, 500)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		count, err := client.Booking.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("released tokens are bookable again", func(t *testing.T) {
		_, err := service.CreateForJob(ctx, ledger.Cluster.ClientID, models.BookingRequest{
			SlurmJobID: 501,
			UserName:   "bob",
			LeadHost:   "node002",
			Bookings: []models.LicenseBooking{
				{ProductFeature: "abaqus.standard", Quantity: 10},
			},
		})
		require.NoError(t, err)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := service.DeleteByJob(ctx, ledger.Cluster.ClientID, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
