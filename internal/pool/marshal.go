package pool

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalDocument serializes the store back to the pool document form.
// Pools and synDNA ids are emitted in sorted order so output is stable;
// loading the result yields a store equal to the original.
func (s *Store) MarshalDocument() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, poolID := range s.List() {
		cfg := s.pools[poolID]

		conc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, synDNAID := range cfg.SynDNAIDs() {
			conc.Content = append(conc.Content,
				scalarNode(synDNAID),
				numberNode(cfg.Concentrations[synDNAID]))
		}

		entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		entry.Content = append(entry.Content,
			scalarNode(ConcentrationsKey), conc,
			scalarNode(ContributingFractionKey), numberNode(cfg.ContributingFraction))

		root.Content = append(root.Content, scalarNode(poolID), entry)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode pool document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode pool document: %w", err)
	}
	return buf.Bytes(), nil
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func numberNode(f float64) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	// Encode via the yaml resolver so 1 stays 1 and 0.1 stays 0.1.
	if err := n.Encode(f); err != nil {
		n.Tag = "!!float"
		n.Value = fmt.Sprintf("%v", f)
	}
	return n
}
