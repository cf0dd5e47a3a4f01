package engine

import (
	"encoding/json"
)

// ============================================================================
// POKEQUERY ENGINE TYPES — Creature records, query specs, results
// ============================================================================
// The engine reads a []Creature snapshot owned by the caller. It never
// mutates it and never loads it; see the dataset package for the reference
// catalog.
// ============================================================================

// ============================================================================
// CREATURE — the fixed-shape record
// ============================================================================

// Creature is one catalog entry.
//
// Types holds one or two tags in order (primary, secondary). The engine does
// not enforce that; a missing second element means "no second type".
type Creature struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

// PrimaryType returns Types[0], or "" when the record has no types.
func (c Creature) PrimaryType() string {
	if len(c.Types) == 0 {
		return ""
	}
	return c.Types[0]
}

// SecondaryType returns Types[1] and whether it exists.
func (c Creature) SecondaryType() (string, bool) {
	if len(c.Types) < 2 {
		return "", false
	}
	return c.Types[1], true
}

// HasType reports whether typ appears anywhere in Types. Exact match.
func (c Creature) HasType(typ string) bool {
	for _, t := range c.Types {
		if t == typ {
			return true
		}
	}
	return false
}

// ============================================================================
// QUERYSPEC — one named operation plus its argument
// ============================================================================

// Operation names one of the query operations.
type Operation string

const (
	OpDivisibleID        Operation = "divisible-id"
	OpType               Operation = "type"
	OpMultiType          Operation = "multi-type"
	OpField              Operation = "field"
	OpNamesAboveID       Operation = "names-above-id"
	OpSoleType           Operation = "sole-type"
	OpPrimaryBySecondary Operation = "primary-by-secondary"
	OpCountType          Operation = "count-type"
)

// Operations lists every operation in the order the demo runs them.
func Operations() []Operation {
	return []Operation{
		OpDivisibleID,
		OpType,
		OpMultiType,
		OpField,
		OpNamesAboveID,
		OpSoleType,
		OpPrimaryBySecondary,
		OpCountType,
	}
}

// QuerySpec defines what Execute should compute.
// Only the argument the operation reads needs to be set.
type QuerySpec struct {
	Operation Operation `json:"operation"`
	Factor    int       `json:"factor,omitempty"` // OpDivisibleID
	Type      string    `json:"type,omitempty"`   // OpType, OpSoleType, OpPrimaryBySecondary, OpCountType
	Min       int       `json:"min"`              // OpNamesAboveID
	Field     string    `json:"field,omitempty"`  // OpField
	Title     string    `json:"title,omitempty"`
}

// ============================================================================
// RESULT — render-ready output
// ============================================================================

// ResultKind tells which Result payload is populated.
type ResultKind string

const (
	KindCreatures ResultKind = "creatures"
	KindValues    ResultKind = "values"
	KindNames     ResultKind = "names"
	KindCount     ResultKind = "count"
)

// Result is the output of Execute.
// Its JSON form carries only the payload named by Kind; see MarshalJSON.
type Result struct {
	Query QuerySpec  `json:"query"`
	Kind  ResultKind `json:"kind"`

	// Exactly one of these is populated based on Kind:
	Creatures []Creature `json:"creatures,omitempty"`
	Values    []any      `json:"values,omitempty"`
	Names     []string   `json:"names,omitempty"`
	Count     int        `json:"count,omitempty"`

	// Total is the result size before any WithLimit truncation.
	Total int `json:"total"`
}

// MarshalJSON emits the payload matching Kind, as [] when empty, and leaves
// the other payloads out. count appears only for KindCount.
func (r Result) MarshalJSON() ([]byte, error) {
	out := struct {
		Query     QuerySpec   `json:"query"`
		Kind      ResultKind  `json:"kind"`
		Creatures *[]Creature `json:"creatures,omitempty"`
		Values    *[]any      `json:"values,omitempty"`
		Names     *[]string   `json:"names,omitempty"`
		Count     *int        `json:"count,omitempty"`
		Total     int         `json:"total"`
	}{
		Query: r.Query,
		Kind:  r.Kind,
		Total: r.Total,
	}

	switch r.Kind {
	case KindCreatures:
		creatures := r.Creatures
		if creatures == nil {
			creatures = []Creature{}
		}
		out.Creatures = &creatures
	case KindValues:
		values := r.Values
		if values == nil {
			values = []any{}
		}
		out.Values = &values
	case KindNames:
		names := r.Names
		if names == nil {
			names = []string{}
		}
		out.Names = &names
	case KindCount:
		count := r.Count
		out.Count = &count
	}
	return json.Marshal(out)
}

// Len returns the number of items in the populated payload.
// For KindCount it is always 1.
func (r *Result) Len() int {
	switch r.Kind {
	case KindCreatures:
		return len(r.Creatures)
	case KindValues:
		return len(r.Values)
	case KindNames:
		return len(r.Names)
	case KindCount:
		return 1
	}
	return 0
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData is a tabular rendering of a Result.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "list"
	Align string `json:"align"` // "left", "right"
}

// Headers returns the column labels in order.
func (t *TableData) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Label
	}
	return headers
}
