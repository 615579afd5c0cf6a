package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/AmandaBirmingham/syndna/internal/pool"
	"github.com/AmandaBirmingham/syndna/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{
		Handle: pool.NewHandle(pool.Stock()),
		Logger: testutil.NewTestLogger(t),
	})
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestServer(t).Routes(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleListPools(t *testing.T) {
	rec := get(t, newTestServer(t).Routes(), "/v1/pools")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Pools []string `json:"pools"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"pool0", "pool1", "pool1000"}, body.Pools)
}

func TestHandleGetPool(t *testing.T) {
	rec := get(t, newTestServer(t).Routes(), "/v1/pools/pool1000")
	require.Equal(t, http.StatusOK, rec.Code)

	var cfg pool.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, "pool1000", cfg.ID)
	assert.InDelta(t, 0.0794981499, cfg.ContributingFraction, 1e-12)
	assert.Equal(t, 1.0, cfg.Concentrations["synDNA_16SrRNA_seq_2_gc=0.66"])
}

func TestHandleGetPool_Unknown(t *testing.T) {
	rec := get(t, newTestServer(t).Routes(), "/v1/pools/pool42")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, `unknown pool "pool42"`)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	routes := srv.Routes()

	// One hit and one miss so the lookup counter has both outcomes.
	get(t, routes, "/v1/pools/pool0")
	get(t, routes, "/v1/pools/nope")

	rec := get(t, routes, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `syndna_pool_lookups_total{outcome="hit"} 1`)
	assert.Contains(t, rec.Body.String(), `syndna_pool_lookups_total{outcome="miss"} 1`)
	assert.Contains(t, rec.Body.String(), "syndna_pools 3")
}

func TestReload_RejectsInvalidDocument(t *testing.T) {
	doc := "poolA:\n  syndna_indiv_ng_ul:\n    s1: 1\n  syndna_contributing_fraction: 0.5\n"
	path := filepath.Join(t.TempDir(), "pools.yml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	h := pool.NewHandle(pool.Stock())
	srv := New(Config{Handle: h, PoolsPath: path, Logger: testutil.NewTestLogger(t)})

	srv.reload()
	assert.Equal(t, []string{"poolA"}, h.Current().List())

	// Break the document; a reload must keep the last good catalog.
	require.NoError(t, os.WriteFile(path, []byte("poolA: 3\n"), 0644))
	before := h.Current()
	srv.reload()
	assert.Same(t, before, h.Current())
}
