package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/ent"
)

func TestConfigurationsByClientID(t *testing.T) {
	s, client := newTestServer(t)

	seedBookingTopology(t, client, "cluster-client-1", 10)

	t.Run("returns the caller's configurations", func(t *testing.T) {
		token := mintToken(t, allScopes(), "cluster-client-1")
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/configurations/by_client_id", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rows := decodeBody[[]*ent.Configuration](t, rec)
		require.Len(t, rows, 1)
		assert.NotEmpty(t, rows[0].Name)
	})

	t.Run("unknown client id yields an empty list", func(t *testing.T) {
		token := mintToken(t, allScopes(), "never-registered")
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/configurations/by_client_id", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("token without client id is rejected", func(t *testing.T) {
		token := mintToken(t, allScopes(), "")
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/configurations/by_client_id", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
