package engine

import (
	"strings"
)

// ============================================================================
// FIELDS — Enumerated selectors for projection
// ============================================================================
// Projection reads a Creature attribute by name. Names are a closed set, each
// bound to an accessor function at init; there is no reflection.
//
// Usage:
//
//	field, err := engine.ParseField("id")
//	ids, err := engine.ProjectField(records, field)
//
// ============================================================================

// Field selects one Creature attribute.
type Field string

const (
	FieldID    Field = "id"
	FieldName  Field = "name"
	FieldTypes Field = "types"
)

// fieldAdapter maps selectors to accessor functions.
// Declared once; read-only after init.
type fieldAdapter struct {
	order     []Field
	accessors map[Field]func(Creature) any
}

func newFieldAdapter() *fieldAdapter {
	return &fieldAdapter{accessors: make(map[Field]func(Creature) any)}
}

// Field registers an accessor.
func (a *fieldAdapter) Field(f Field, fn func(Creature) any) *fieldAdapter {
	if _, exists := a.accessors[f]; !exists {
		a.order = append(a.order, f)
	}
	a.accessors[f] = fn
	return a
}

func (a *fieldAdapter) lookup(f Field) (func(Creature) any, bool) {
	fn, ok := a.accessors[f]
	return fn, ok
}

var creatureFields = newFieldAdapter().
	Field(FieldID, func(c Creature) any { return c.ID }).
	Field(FieldName, func(c Creature) any { return c.Name }).
	Field(FieldTypes, func(c Creature) any {
		// copy so callers can't reach the record's backing array
		types := make([]string, len(c.Types))
		copy(types, c.Types)
		return types
	})

// ParseField resolves a selector name. Matching is exact after trimming
// surrounding whitespace.
func ParseField(name string) (Field, error) {
	f := Field(strings.TrimSpace(name))
	if _, ok := creatureFields.lookup(f); !ok {
		return "", &InvalidFieldError{Field: string(f)}
	}
	return f, nil
}

// FieldNames returns the valid selector names in declaration order.
func FieldNames() []string {
	names := make([]string, len(creatureFields.order))
	for i, f := range creatureFields.order {
		names[i] = string(f)
	}
	return names
}

// ProjectField extracts field from every record, in input order.
// The i-th value is an int for FieldID, a string for FieldName and a fresh
// []string for FieldTypes. An unknown field yields *InvalidFieldError and no
// values.
func ProjectField(records []Creature, field Field) ([]any, error) {
	fn, ok := creatureFields.lookup(field)
	if !ok {
		return nil, &InvalidFieldError{Field: string(field)}
	}
	values := make([]any, 0, len(records))
	for _, r := range records {
		values = append(values, fn(r))
	}
	return values, nil
}
