package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/pkg/database"
	"github.com/hpc-toolchain/license-manager/pkg/identity"
	testdb "github.com/hpc-toolchain/license-manager/test/database"
)

const testAudience = "https://license-manager.test"

var ledgerSecret = []byte("ledger-test-secret")

func allScopes() []string {
	return []string{
		identity.ScopeClusterView, identity.ScopeClusterEdit,
		identity.ScopeConfigView, identity.ScopeConfigEdit,
		identity.ScopeLicenseServerView, identity.ScopeLicenseServerEdit,
		identity.ScopeProductView, identity.ScopeProductEdit,
		identity.ScopeFeatureView, identity.ScopeFeatureEdit,
		identity.ScopeJobView, identity.ScopeJobEdit,
		identity.ScopeBookingView, identity.ScopeBookingEdit,
		identity.ScopeReconcile,
	}
}

func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()

	client := testdb.NewTestClient(t)
	validator, err := identity.NewValidator(identity.DomainConfig{
		Domain:   "tenant.auth0.test",
		Audience: testAudience,
		Secret:   ledgerSecret,
	})
	require.NoError(t, err)

	return NewServer("/lm", client, validator), client
}

// mintToken creates a bearer token carrying the given scopes. A non-empty
// clientID becomes the azp claim, binding the token to a cluster agent.
func mintToken(t *testing.T, scopes []string, clientID string) string {
	t.Helper()

	extra := map[string]any{
		"aud":         testAudience,
		"permissions": scopes,
	}
	if clientID != "" {
		extra["azp"] = clientID
	}
	token, err := identity.CreateTimedToken("operator@example.com", "tenant.auth0.test", ledgerSecret, time.Hour, extra)
	require.NoError(t, err)
	return token
}

// doRequest performs one request against the server's router. A nil body
// sends no payload; anything else is marshalled as JSON.
func doRequest(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
