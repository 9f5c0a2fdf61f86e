package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/pkg/identity"
	"github.com/hpc-toolchain/license-manager/pkg/models"
)

// fakeIdentityProvider serves the client-credentials exchange and counts
// how many tokens it minted.
type fakeIdentityProvider struct {
	*httptest.Server
	tokenCount atomic.Int32
}

func newFakeIdentityProvider(t *testing.T) *fakeIdentityProvider {
	t.Helper()
	idp := &fakeIdentityProvider{}
	idp.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/oauth/token", r.URL.Path)

		var req oauthTokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "client_credentials", req.GrantType)
		require.Equal(t, "agent-client", req.ClientID)

		idp.tokenCount.Add(1)
		token, err := identity.CreateTimedToken("agent", "idp", []byte("secret"), time.Hour, map[string]any{
			"azp": req.ClientID,
		})
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(oauthTokenResponse{AccessToken: token})
	}))
	t.Cleanup(idp.Close)
	return idp
}

func newTestClient(t *testing.T, idp *fakeIdentityProvider, ledgerURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:      ledgerURL,
		AuthDomain:   idp.URL,
		ClientID:     "agent-client",
		ClientSecret: "agent-secret",
		Audience:     "https://license-manager.test",
		CacheDir:     t.TempDir(),
	})
	require.NoError(t, err)
	return client
}

func TestClient_AcquireToken(t *testing.T) {
	idp := newFakeIdentityProvider(t)

	t.Run("fetches once and reuses from memory", func(t *testing.T) {
		client := newTestClient(t, idp, "http://ledger.invalid/lm")
		ctx := context.Background()

		first, err := client.AcquireToken(ctx)
		require.NoError(t, err)
		second, err := client.AcquireToken(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), idp.tokenCount.Load())
	})

	t.Run("a second process reuses the disk cache", func(t *testing.T) {
		idp := newFakeIdentityProvider(t)
		cacheDir := t.TempDir()

		cfg := Config{
			BaseURL:      "http://ledger.invalid/lm",
			AuthDomain:   idp.URL,
			ClientID:     "agent-client",
			ClientSecret: "agent-secret",
			Audience:     "https://license-manager.test",
			CacheDir:     cacheDir,
		}
		first, err := NewClient(cfg)
		require.NoError(t, err)
		_, err = first.AcquireToken(context.Background())
		require.NoError(t, err)

		second, err := NewClient(cfg)
		require.NoError(t, err)
		_, err = second.AcquireToken(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int32(1), idp.tokenCount.Load())
	})

	t.Run("identity provider failure maps to ErrAuthToken", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		t.Cleanup(broken.Close)

		client, err := NewClient(Config{
			BaseURL:    "http://ledger.invalid/lm",
			AuthDomain: broken.URL,
			ClientID:   "agent-client",
			CacheDir:   t.TempDir(),
		})
		require.NoError(t, err)

		_, err = client.AcquireToken(context.Background())
		assert.ErrorIs(t, err, ErrAuthToken)
	})
}

func TestClient_Requests(t *testing.T) {
	idp := newFakeIdentityProvider(t)

	ledger := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if len(auth) < 8 || auth[:7] != "Bearer " {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch r.Method + " " + r.URL.Path {
		case "GET /lm/health":
			w.WriteHeader(http.StatusNoContent)
		case "GET /lm/api/v1/clusters/by_client_id":
			_ = json.NewEncoder(w).Encode(models.Cluster{ID: 1, Name: "perf", ClientID: "agent-client"})
		case "GET /lm/api/v1/configurations/by_client_id":
			_ = json.NewEncoder(w).Encode([]models.Configuration{{ID: 7, Name: "abaqus servers", Type: "flexlm"}})
		case "GET /lm/api/v1/bookings/by_job/42":
			_ = json.NewEncoder(w).Encode([]models.Booking{{ID: 3, Quantity: 2}})
		case "DELETE /lm/api/v1/bookings/by_job/42":
			_ = json.NewEncoder(w).Encode(models.DeletedByJob{Deleted: 2})
		case "PATCH /lm/api/v1/reconcile":
			var report []models.ReportItem
			if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			_ = json.NewEncoder(w).Encode(models.ReconcileResponse{Updated: len(report)})
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
	t.Cleanup(ledger.Close)

	client := newTestClient(t, idp, ledger.URL+"/lm")
	ctx := context.Background()

	t.Run("health", func(t *testing.T) {
		require.NoError(t, client.Health(ctx))
	})

	t.Run("cluster by client id", func(t *testing.T) {
		cluster, err := client.Cluster(ctx)
		require.NoError(t, err)
		assert.Equal(t, "perf", cluster.Name)
	})

	t.Run("configurations by client id", func(t *testing.T) {
		configs, err := client.Configurations(ctx)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, "flexlm", configs[0].Type)
	})

	t.Run("bookings for job", func(t *testing.T) {
		bookings, err := client.BookingsForJob(ctx, 42)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, 2, bookings[0].Quantity)
	})

	t.Run("release job", func(t *testing.T) {
		deleted, err := client.ReleaseJob(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, 2, deleted)
	})

	t.Run("reconcile", func(t *testing.T) {
		updated, err := client.Reconcile(ctx, []models.ReportItem{
			{ProductFeature: "abaqus.standard", Used: 7, Total: 50},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated)
	})

	t.Run("non-2xx maps to ErrBackendConnection", func(t *testing.T) {
		err := client.Get(ctx, "/nowhere", nil)
		assert.ErrorIs(t, err, ErrBackendConnection)
	})
}

func TestClient_Validation(t *testing.T) {
	t.Run("base URL is required", func(t *testing.T) {
		_, err := NewClient(Config{})
		require.Error(t, err)
	})
}
