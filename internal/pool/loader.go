package pool

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses and validates a pool document. The document's top-level keys
// are pool ids; each value holds a syndna_indiv_ng_ul mapping and a
// syndna_contributing_fraction scalar.
//
// Load walks the yaml node tree rather than unmarshalling into structs so
// that duplicate identifiers surface as *DuplicateKeyError and shape or
// range violations as *ConfigError, each with the offending line.
func Load(r io.Reader) (*Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool document: %w", err)
	}
	return LoadBytes(raw)
}

// LoadFile loads a pool document from disk.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // G304: path is operator-supplied config
	if err != nil {
		return nil, fmt.Errorf("failed to read pool document: %w", err)
	}
	store, err := LoadBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// LoadBytes parses and validates a pool document held in memory.
func LoadBytes(raw []byte) (*Store, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("invalid YAML: %v", err)}
	}

	root := documentRoot(&doc)
	if root == nil {
		return nil, &ConfigError{Message: "document contains no pools"}
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ConfigError{
			Line:    root.Line,
			Message: "top level must be a mapping of pool ids",
		}
	}

	pools := make(map[string]Config, len(root.Content)/2)
	for i := 0; i < len(root.Content)-1; i += 2 {
		keyNode := root.Content[i]
		valNode := resolveAlias(root.Content[i+1])

		poolID, err := scalarString(keyNode, "")
		if err != nil {
			return nil, err
		}
		if _, exists := pools[poolID]; exists {
			return nil, &DuplicateKeyError{Line: keyNode.Line, Key: poolID}
		}

		cfg, err := parsePool(poolID, valNode)
		if err != nil {
			return nil, err
		}
		pools[poolID] = cfg
	}

	if len(pools) == 0 {
		return nil, &ConfigError{Message: "document contains no pools"}
	}

	return &Store{pools: pools}, nil
}

// parsePool validates a single pool entry node.
func parsePool(poolID string, node *yaml.Node) (Config, error) {
	if node.Kind != yaml.MappingNode {
		return Config{}, &ConfigError{
			Line:    node.Line,
			Pool:    poolID,
			Message: "pool entry must be a mapping",
		}
	}

	var concNode, fracNode *yaml.Node
	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		key, err := scalarString(keyNode, poolID)
		if err != nil {
			return Config{}, err
		}
		switch key {
		case ConcentrationsKey:
			concNode = resolveAlias(node.Content[i+1])
		case ContributingFractionKey:
			fracNode = resolveAlias(node.Content[i+1])
		default:
			return Config{}, &ConfigError{
				Line:    keyNode.Line,
				Pool:    poolID,
				Message: fmt.Sprintf("unknown key %q", key),
			}
		}
	}

	if concNode == nil {
		return Config{}, &ConfigError{
			Line:    node.Line,
			Pool:    poolID,
			Message: fmt.Sprintf("missing required key %q", ConcentrationsKey),
		}
	}
	if fracNode == nil {
		return Config{}, &ConfigError{
			Line:    node.Line,
			Pool:    poolID,
			Message: fmt.Sprintf("missing required key %q", ContributingFractionKey),
		}
	}

	concentrations, err := parseConcentrations(poolID, concNode)
	if err != nil {
		return Config{}, err
	}

	fraction, err := scalarNumber(fracNode, poolID, ContributingFractionKey)
	if err != nil {
		return Config{}, err
	}
	if fraction <= 0 || fraction > 1 {
		return Config{}, &ConfigError{
			Line:    fracNode.Line,
			Pool:    poolID,
			Message: fmt.Sprintf("%s must be in (0, 1], got %v", ContributingFractionKey, fraction),
		}
	}

	return Config{
		ID:                   poolID,
		Concentrations:       concentrations,
		ContributingFraction: fraction,
	}, nil
}

// parseConcentrations validates the syndna_indiv_ng_ul mapping.
func parseConcentrations(poolID string, node *yaml.Node) (map[string]float64, error) {
	if node.Kind != yaml.MappingNode {
		return nil, &ConfigError{
			Line:    node.Line,
			Pool:    poolID,
			Message: fmt.Sprintf("%s must be a mapping of synDNA id to concentration", ConcentrationsKey),
		}
	}
	if len(node.Content) == 0 {
		return nil, &ConfigError{
			Line:    node.Line,
			Pool:    poolID,
			Message: fmt.Sprintf("%s must not be empty", ConcentrationsKey),
		}
	}

	out := make(map[string]float64, len(node.Content)/2)
	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		synDNAID, err := scalarString(keyNode, poolID)
		if err != nil {
			return nil, err
		}
		if _, exists := out[synDNAID]; exists {
			return nil, &DuplicateKeyError{Line: keyNode.Line, Pool: poolID, Key: synDNAID}
		}

		valNode := resolveAlias(node.Content[i+1])
		ng, err := scalarNumber(valNode, poolID, synDNAID)
		if err != nil {
			return nil, err
		}
		if ng <= 0 {
			return nil, &ConfigError{
				Line:    valNode.Line,
				Pool:    poolID,
				Message: fmt.Sprintf("concentration for %q must be positive, got %v", synDNAID, ng),
			}
		}
		out[synDNAID] = ng
	}
	return out, nil
}

// documentRoot unwraps the document node returned by yaml.Unmarshal.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := resolveAlias(doc.Content[0])
	// An empty document decodes to a null scalar.
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil
	}
	return root
}

// resolveAlias follows anchor references so documents may share nodes.
func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func scalarString(n *yaml.Node, poolID string) (string, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.ScalarNode {
		return "", &ConfigError{
			Line:    n.Line,
			Pool:    poolID,
			Message: "identifier must be a scalar string",
		}
	}
	var s string
	if err := n.Decode(&s); err != nil {
		return "", &ConfigError{
			Line:    n.Line,
			Pool:    poolID,
			Message: fmt.Sprintf("invalid identifier: %v", err),
		}
	}
	if s == "" {
		return "", &ConfigError{
			Line:    n.Line,
			Pool:    poolID,
			Message: "identifier must not be empty",
		}
	}
	return s, nil
}

func scalarNumber(n *yaml.Node, poolID, key string) (float64, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, &ConfigError{
			Line:    n.Line,
			Pool:    poolID,
			Message: fmt.Sprintf("%s must be a number", key),
		}
	}
	var f float64
	if err := n.Decode(&f); err != nil {
		return 0, &ConfigError{
			Line:    n.Line,
			Pool:    poolID,
			Message: fmt.Sprintf("%s must be a number, got %q", key, n.Value),
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ConfigError{
			Line:    n.Line,
			Pool:    poolID,
			Message: fmt.Sprintf("%s must be finite, got %q", key, n.Value),
		}
	}
	return f, nil
}
