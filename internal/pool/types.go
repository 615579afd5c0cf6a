// Package pool implements the synDNA pool configuration store: a validated,
// immutable catalog of synthetic-DNA spike-in pools loaded from a YAML
// document. Each pool maps synDNA sequence ids to concentrations in ng/µL
// and carries the fraction of the pool's material expected to contribute to
// the sequenced product.
//
// A loaded Store is never mutated and is safe for unsynchronized concurrent
// reads. Long-lived consumers that need reloads hold a Handle, which swaps
// whole stores atomically.
package pool

import "sort"

// Document keys, fixed by the pool document format.
const (
	ConcentrationsKey       = "syndna_indiv_ng_ul"
	ContributingFractionKey = "syndna_contributing_fraction"
)

// Config is one named pool: its per-sequence concentrations and the
// proportion of its material that contributes to downstream measurement.
type Config struct {
	// ID is the pool identifier, unique across the store.
	ID string `json:"id"`

	// Concentrations maps synDNA id to concentration in ng/µL.
	// Values are strictly positive. The same synDNA id may recur in
	// other pools.
	Concentrations map[string]float64 `json:"syndna_indiv_ng_ul"`

	// ContributingFraction is in (0, 1].
	ContributingFraction float64 `json:"syndna_contributing_fraction"`
}

// SynDNAIDs returns the pool's synDNA ids in sorted order.
func (c Config) SynDNAIDs() []string {
	ids := make([]string, 0, len(c.Concentrations))
	for id := range c.Concentrations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
