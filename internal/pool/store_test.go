package pool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempDoc writes a pool document to a temp file and returns its path.
func writeTempDoc(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pools.yml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestStore_GetUnknownPool(t *testing.T) {
	store, err := LoadBytes([]byte(validDoc))
	require.NoError(t, err)

	_, err = store.Get("pool999")
	require.Error(t, err)

	var unknownErr *UnknownPoolError
	require.ErrorAs(t, err, &unknownErr, "expected *UnknownPoolError, got %T", err)
	assert.Equal(t, "pool999", unknownErr.ID)
	assert.Equal(t, []string{"poolA", "poolB"}, unknownErr.Known)
	assert.Contains(t, err.Error(), "poolA", "error should name the known pools")
}

func TestHandle_ReplaceSwapsWholeStore(t *testing.T) {
	first, err := LoadBytes([]byte(validDoc))
	require.NoError(t, err)

	second, err := LoadBytes([]byte("poolC:\n  syndna_indiv_ng_ul:\n    s9: 3\n  syndna_contributing_fraction: 0.9\n"))
	require.NoError(t, err)

	h := NewHandle(first)
	assert.Same(t, first, h.Current())

	h.Replace(second)
	assert.Same(t, second, h.Current())
	assert.Equal(t, []string{"poolC"}, h.Current().List())
}

func TestHandle_ReloadFile(t *testing.T) {
	path := writeTempDoc(t, validDoc)

	h := NewHandle(Stock())
	require.NoError(t, h.ReloadFile(path))
	assert.Equal(t, []string{"poolA", "poolB"}, h.Current().List())
}

func TestHandle_ReloadFileKeepsOldStoreOnError(t *testing.T) {
	path := writeTempDoc(t, validDoc)

	h := NewHandle(nil)
	require.NoError(t, h.ReloadFile(path))
	before := h.Current()

	// Overwrite with a document that violates the fraction range. The
	// handle must keep serving the previous store.
	require.NoError(t, os.WriteFile(path, []byte(
		"poolA:\n  syndna_indiv_ng_ul:\n    s1: 1\n  syndna_contributing_fraction: 2\n"), 0644))

	err := h.ReloadFile(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Same(t, before, h.Current(), "failed reload must not replace the store")
}

func TestConfig_SynDNAIDs(t *testing.T) {
	cfg := Config{Concentrations: map[string]float64{"b": 1, "a": 2, "c": 3}}
	assert.Equal(t, []string{"a", "b", "c"}, cfg.SynDNAIDs())
}
