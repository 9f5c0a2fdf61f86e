package agent

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/pkg/agent/slurm"
	"github.com/hpc-toolchain/license-manager/pkg/backend"
	"github.com/hpc-toolchain/license-manager/pkg/identity"
)

var triggerSecret = []byte("trigger-secret")

func newAgentServer(t *testing.T, ledger *fakeLedger, queue QueueReader, withValidator bool) *Server {
	t.Helper()

	r := newReconcilerForTest(t, ledger, queue, testSettings())

	var validator *identity.Validator
	if withValidator {
		var err error
		validator, err = identity.NewValidator(identity.DomainConfig{
			Domain:   "tenant.auth0.test",
			Audience: "https://agent.test",
			Secret:   triggerSecret,
		})
		require.NoError(t, err)
	}

	return NewServer(r, r.backend, validator)
}

func triggerToken(t *testing.T, permissions []string) string {
	t.Helper()
	token, err := identity.CreateTimedToken("operator", "tenant.auth0.test", triggerSecret, time.Hour, map[string]any{
		"aud":         "https://agent.test",
		"permissions": permissions,
	})
	require.NoError(t, err)
	return token
}

func TestServer_ReconcileTrigger(t *testing.T) {
	t.Run("disabled without an auth secret", func(t *testing.T) {
		s := newAgentServer(t, newFakeLedger(t), &fakeQueue{}, false)

		req := httptest.NewRequest(http.MethodPost, "/reconcile", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("missing bearer token", func(t *testing.T) {
		s := newAgentServer(t, newFakeLedger(t), &fakeQueue{}, true)

		req := httptest.NewRequest(http.MethodPost, "/reconcile", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid bearer token", func(t *testing.T) {
		s := newAgentServer(t, newFakeLedger(t), &fakeQueue{}, true)

		req := httptest.NewRequest(http.MethodPost, "/reconcile", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without the reconcile scope", func(t *testing.T) {
		s := newAgentServer(t, newFakeLedger(t), &fakeQueue{}, true)

		req := httptest.NewRequest(http.MethodPost, "/reconcile", nil)
		req.Header.Set("Authorization", "Bearer "+triggerToken(t, []string{identity.ScopeClusterView}))
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("auth token failure during the cycle is a client error", func(t *testing.T) {
		idp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(idp.Close)

		ledger := newFakeLedger(t)
		client, err := backend.NewClient(backend.Config{
			BaseURL:      ledger.URL + "/lm",
			AuthDomain:   idp.URL,
			ClientID:     "agent-client",
			ClientSecret: "agent-secret",
			Audience:     "https://license-manager.test",
			CacheDir:     t.TempDir(),
		})
		require.NoError(t, err)

		queue := &fakeQueue{jobs: []slurm.Job{
			{JobID: 100, Username: "alice", State: "RUNNING", RunTimeSeconds: 10},
		}}
		r := NewReconciler(testSettings(), client, queue)

		validator, err := identity.NewValidator(identity.DomainConfig{
			Domain:   "tenant.auth0.test",
			Audience: "https://agent.test",
			Secret:   triggerSecret,
		})
		require.NoError(t, err)
		s := NewServer(r, client, validator)

		req := httptest.NewRequest(http.MethodPost, "/reconcile", nil)
		req.Header.Set("Authorization", "Bearer "+triggerToken(t, []string{identity.ScopeReconcile}))
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("authorized trigger runs a cycle", func(t *testing.T) {
		// An empty scheduler queue makes the cycle a quiet no-op.
		s := newAgentServer(t, newFakeLedger(t), &fakeQueue{}, true)

		req := httptest.NewRequest(http.MethodPost, "/reconcile", nil)
		req.Header.Set("Authorization", "Bearer "+triggerToken(t, []string{identity.ScopeReconcile}))
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"reconciled"}`, rec.Body.String())
	})
}

func TestServer_Health(t *testing.T) {
	t.Run("healthy when the ledger answers", func(t *testing.T) {
		ledger := newFakeLedger(t)
		s := newAgentServer(t, ledger, &fakeQueue{}, false)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unhealthy when the ledger is down", func(t *testing.T) {
		ledger := newFakeLedger(t)
		s := newAgentServer(t, ledger, &fakeQueue{}, false)
		ledger.Close()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
