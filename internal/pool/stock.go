package pool

import (
	_ "embed"
	"fmt"
	"sync"
)

// stockDocument is the stock pool definition shipped with the tool:
// pool0 and pool1 share the p126..p266 two-sided dilution ladder with
// different contributing fractions, and pool1000 holds the 16S rRNA
// synDNA set.
//
//go:embed data/pools.yml
var stockDocument []byte

var (
	stockOnce  sync.Once
	stockStore *Store
	stockErr   error
)

// Stock returns the built-in pool store. The embedded document is parsed
// once on first use; it is validated by the same loader as user documents,
// so a defect in the shipped data is a panic, not a silent fallback.
func Stock() *Store {
	stockOnce.Do(func() {
		stockStore, stockErr = LoadBytes(stockDocument)
	})
	if stockErr != nil {
		panic(fmt.Sprintf("embedded pool document is invalid: %v", stockErr))
	}
	return stockStore
}

// StockDocument returns the raw embedded pool document.
func StockDocument() []byte {
	out := make([]byte, len(stockDocument))
	copy(out, stockDocument)
	return out
}
