package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AmandaBirmingham/syndna/internal/pool"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// poolSummary is the row shape for list output.
type poolSummary struct {
	ID                   string  `json:"id" yaml:"id"`
	SynDNACount          int     `json:"syndna_count" yaml:"syndna_count"`
	ContributingFraction float64 `json:"syndna_contributing_fraction" yaml:"syndna_contributing_fraction"`
}

func summarize(store *pool.Store) []poolSummary {
	ids := store.List()
	out := make([]poolSummary, 0, len(ids))
	for _, id := range ids {
		cfg, err := store.Get(id)
		if err != nil {
			continue
		}
		out = append(out, poolSummary{
			ID:                   id,
			SynDNACount:          len(cfg.Concentrations),
			ContributingFraction: cfg.ContributingFraction,
		})
	}
	return out
}

func renderSummaries(w io.Writer, summaries []poolSummary, format string) error {
	switch format {
	case "json":
		return renderJSON(w, map[string]any{"pools": summaries})
	case "yaml":
		return renderYAML(w, map[string]any{"pools": summaries})
	default:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Pool", "synDNAs", "Contributing Fraction"})
		for _, s := range summaries {
			t.AppendRow(table.Row{s.ID, s.SynDNACount, formatNumber(s.ContributingFraction)})
		}
		t.Render()
		return nil
	}
}

func renderPool(w io.Writer, cfg pool.Config, format string) error {
	switch format {
	case "json":
		return renderJSON(w, cfg)
	case "yaml":
		return renderYAML(w, map[string]any{
			cfg.ID: map[string]any{
				pool.ConcentrationsKey:       cfg.Concentrations,
				pool.ContributingFractionKey: cfg.ContributingFraction,
			},
		})
	default:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.SetTitle(fmt.Sprintf("%s (contributing fraction %s)", cfg.ID, formatNumber(cfg.ContributingFraction)))
		t.AppendHeader(table.Row{"synDNA", "ng/µL"})
		for _, id := range cfg.SynDNAIDs() {
			t.AppendRow(table.Row{id, formatNumber(cfg.Concentrations[id])})
		}
		t.Render()
		return nil
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// formatNumber trims float noise for display (1 not 1.000000).
func formatNumber(f float64) string {
	return fmt.Sprintf("%g", f)
}
