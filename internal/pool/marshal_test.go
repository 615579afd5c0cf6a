package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalDocument_RoundTrip(t *testing.T) {
	original, err := LoadBytes([]byte(validDoc))
	require.NoError(t, err)

	doc, err := original.MarshalDocument()
	require.NoError(t, err)

	reloaded, err := LoadBytes(doc)
	require.NoError(t, err, "serialized document should load cleanly")

	assert.Equal(t, original.pools, reloaded.pools, "round-trip should preserve the data model")
}

func TestMarshalDocument_StockRoundTrip(t *testing.T) {
	doc, err := Stock().MarshalDocument()
	require.NoError(t, err)

	reloaded, err := LoadBytes(doc)
	require.NoError(t, err)
	assert.Equal(t, Stock().pools, reloaded.pools)
}

func TestMarshalDocument_StableOrder(t *testing.T) {
	store, err := LoadBytes([]byte(validDoc))
	require.NoError(t, err)

	first, err := store.MarshalDocument()
	require.NoError(t, err)
	second, err := store.MarshalDocument()
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "output should be deterministic")
}
