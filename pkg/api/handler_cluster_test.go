package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/ent"
)

func TestClusterHandlers(t *testing.T) {
	s, _ := newTestServer(t)
	token := mintToken(t, allScopes(), "")

	var clusterID int

	t.Run("create", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/lm/api/v1/clusters", token,
			CreateClusterRequest{Name: "perf-cluster", ClientID: "cluster-client-1"})
		require.Equal(t, http.StatusCreated, rec.Code)

		created := decodeBody[ent.Cluster](t, rec)
		assert.Equal(t, "perf-cluster", created.Name)
		clusterID = created.ID
	})

	t.Run("create duplicate client_id", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/lm/api/v1/clusters", token,
			CreateClusterRequest{Name: "other", ClientID: "cluster-client-1"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("create without name", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/lm/api/v1/clusters", token,
			CreateClusterRequest{ClientID: "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		row := decodeBody[ent.Cluster](t, rec)
		assert.Equal(t, clusterID, row.ID)
	})

	t.Run("get unknown id", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters/99999", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("get non-numeric id", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters/abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rows := decodeBody[[]ent.Cluster](t, rec)
		assert.Len(t, rows, 1)
	})

	t.Run("list with search and sort", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet,
			"/lm/api/v1/clusters?search=perf&sort_field=name&sort_ascending=false", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rows := decodeBody[[]ent.Cluster](t, rec)
		assert.Len(t, rows, 1)
	})

	t.Run("list with unknown sort_field", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters?sort_field=secret", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list with bad sort_ascending", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters?sort_ascending=maybe", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		name := "renamed"
		rec := doRequest(t, s, http.MethodPut, "/lm/api/v1/clusters/1", token,
			UpdateClusterRequest{Name: &name})
		require.Equal(t, http.StatusOK, rec.Code)

		row := decodeBody[ent.Cluster](t, rec)
		assert.Equal(t, "renamed", row.Name)
		assert.Equal(t, "cluster-client-1", row.ClientID)
	})

	t.Run("update with empty body", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPut, "/lm/api/v1/clusters/1", token,
			UpdateClusterRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("by_client_id resolves the caller's cluster", func(t *testing.T) {
		agentToken := mintToken(t, allScopes(), "cluster-client-1")
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters/by_client_id", agentToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		row := decodeBody[ent.Cluster](t, rec)
		assert.Equal(t, clusterID, row.ID)
	})

	t.Run("by_client_id without azp claim", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters/by_client_id", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("by_client_id for an unregistered agent", func(t *testing.T) {
		strayToken := mintToken(t, allScopes(), "nobody")
		rec := doRequest(t, s, http.MethodGet, "/lm/api/v1/clusters/by_client_id", strayToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodDelete, "/lm/api/v1/clusters/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"deleted"}`, rec.Body.String())

		rec = doRequest(t, s, http.MethodDelete, "/lm/api/v1/clusters/1", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
