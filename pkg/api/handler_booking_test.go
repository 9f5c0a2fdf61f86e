package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/ent"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/pkg/database"
	"github.com/hpc-toolchain/license-manager/pkg/models"
)

// seedBookingTopology creates a cluster with one flexlm feature holding
// total tokens, none used.
func seedBookingTopology(t *testing.T, client *database.Client, clientID string, total int) {
	t.Helper()
	ctx := context.Background()

	clusterRow, err := client.Cluster.Create().
		SetName("perf-cluster").
		SetClientID(clientID).
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
		SetTotal(total).
		SetUsed(0).
		Save(ctx)
	require.NoError(t, err)
}

func TestBookingHandlers(t *testing.T) {
	s, client := newTestServer(t)
	seedBookingTopology(t, client, "cluster-client-1", 10)

	agentToken := mintToken(t, allScopes(), "cluster-client-1")
	operatorToken := mintToken(t, allScopes(), "")

	bookingRequest := func(jobID, quantity int) models.BookingRequest {
		return models.BookingRequest{
			SlurmJobID: jobID,
			UserName:   "alice",
			LeadHost:   "node001",
			Bookings: []models.LicenseBooking{
				{ProductFeature: "abaqus.standard", Quantity: quantity},
			},
		}
	}

	t.Run("create bookings", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/lm/api/v1/bookings", agentToken, bookingRequest(100, 4))
		require.Equal(t, http.StatusCreated, rec.Code)

		created := decodeBody[[]ent.Booking](t, rec)
		require.Len(t, created, 1)
		assert.Equal(t, 4, created[0].Quantity)
	})

	t.Run("overcommit answers 409", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/lm/api/v1/bookings", agentToken, bookingRequest(101, 7))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("create without azp claim", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/lm/api/v1/bookings", operatorToken, bookingRequest(102, 1))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list by job", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/bookings/by_job/100", agentToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rows := decodeBody[[]ent.Booking](t, rec)
		require.Len(t, rows, 1)
	})

	t.Run("list by unknown job is empty", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/bookings/by_job/999", agentToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rows := decodeBody[[]ent.Booking](t, rec)
		assert.Empty(t, rows)
	})

	t.Run("list all bookings", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/bookings", operatorToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rows := decodeBody[[]ent.Booking](t, rec)
		assert.Len(t, rows, 1)
	})

	t.Run("delete by job", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodDelete, "/lm/api/v1/bookings/by_job/100", agentToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deleted":1}`, rec.Body.String())
	})

	t.Run("delete by unknown job answers 404", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodDelete, "/lm/api/v1/bookings/by_job/999", agentToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad slurm_job_id", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/bookings/by_job/abc", agentToken, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReconcileHandler(t *testing.T) {
	s, client := newTestServer(t)
	seedBookingTopology(t, client, "cluster-client-1", 0)

	agentToken := mintToken(t, allScopes(), "cluster-client-1")
	operatorToken := mintToken(t, allScopes(), "")

	t.Run("applies the report", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPatch, "/lm/api/v1/reconcile", agentToken, []models.ReportItem{
			{ProductFeature: "abaqus.standard", Used: 7, Total: 50},
			{ProductFeature: "ansys.solver", Used: 1, Total: 5},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"updated":1}`, rec.Body.String())
	})

	t.Run("empty report answers 400", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPatch, "/lm/api/v1/reconcile", agentToken, []models.ReportItem{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("token without azp claim", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPatch, "/lm/api/v1/reconcile", operatorToken, []models.ReportItem{
			{ProductFeature: "abaqus.standard", Used: 1, Total: 5},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
