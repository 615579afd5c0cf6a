package pool

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigError reports a structural or range violation in a pool document:
// a missing required key, a value of the wrong type, a non-positive
// concentration, or a contributing fraction outside (0, 1].
type ConfigError struct {
	// Line is the 1-based line in the source document, 0 if unknown.
	Line int

	// Pool is the id of the pool entry being parsed, empty for
	// document-level errors.
	Pool string

	Message string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("malformed pool config")
	if e.Pool != "" {
		fmt.Fprintf(&b, " in pool %q", e.Pool)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// DuplicateKeyError reports a repeated pool id, or a repeated synDNA id
// within one pool.
type DuplicateKeyError struct {
	// Line is the 1-based line of the second occurrence, 0 if unknown.
	Line int

	// Pool is empty when the duplicate is a pool id itself.
	Pool string

	// Key is the repeated identifier.
	Key string
}

func (e *DuplicateKeyError) Error() string {
	var b strings.Builder
	if e.Pool == "" {
		fmt.Fprintf(&b, "duplicate pool id %q", e.Key)
	} else {
		fmt.Fprintf(&b, "duplicate synDNA id %q in pool %q", e.Key, e.Pool)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	return b.String()
}

// UnknownPoolError reports a lookup for a pool id that is not in the store.
type UnknownPoolError struct {
	ID    string
	Known []string
}

func (e *UnknownPoolError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown pool %q (store is empty)", e.ID)
	}
	known := append([]string(nil), e.Known...)
	sort.Strings(known)
	return fmt.Sprintf("unknown pool %q (known pools: %s)", e.ID, strings.Join(known, ", "))
}
