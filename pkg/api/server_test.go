package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hpc-toolchain/license-manager/pkg/identity"
)

func TestServer_Authentication(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("missing bearer token", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid bearer token", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without the required scope", func(t *testing.T) {
		token := mintToken(t, []string{identity.ScopeProductView}, "")
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("view scope does not grant edits", func(t *testing.T) {
		token := mintToken(t, []string{identity.ScopeClusterView}, "")
		rec := doRequest(t, s, http.MethodPost, "/lm/api/v1/clusters", token,
			map[string]string{"name": "x", "client_id": "y"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid token and scope pass through", func(t *testing.T) {
		token := mintToken(t, []string{identity.ScopeClusterView}, "")
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/lm/health", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_SecurityHeaders(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/lm/health", "", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}
