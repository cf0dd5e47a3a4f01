package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ============================================================================
// EXECUTOR — Dispatcher over the query operations
// ============================================================================
// Entry point: Execute(spec, records, opts...)
//
// Pipeline:
//   1. Validate the QuerySpec
//   2. Run the named operation over the full record slice
//   3. Apply WithLimit to list results
//   4. Return Result
//
// The operations themselves are plain functions and can be called directly;
// Execute exists so a caller can describe a query as data.
// ============================================================================

// Execute runs spec against records and returns a render-ready Result.
//
// Options:
//   - WithLogger(logger) — debug entry per query
//   - WithLimit(n) — truncate list results
func Execute(spec QuerySpec, records []Creature, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)

	if err := Validate(spec); err != nil {
		return nil, err
	}

	result := &Result{Query: spec}

	switch spec.Operation {
	case OpDivisibleID:
		result.Kind = KindCreatures
		result.Creatures = FilterByDivisibleID(records, spec.Factor)

	case OpType:
		result.Kind = KindCreatures
		result.Creatures = FilterByType(records, spec.Type)

	case OpMultiType:
		result.Kind = KindCreatures
		result.Creatures = FilterMultiType(records)

	case OpField:
		field, err := ParseField(spec.Field)
		if err != nil {
			return nil, err
		}
		values, err := ProjectField(records, field)
		if err != nil {
			return nil, err
		}
		result.Kind = KindValues
		result.Values = values

	case OpNamesAboveID:
		result.Kind = KindNames
		result.Names = NamesAboveID(records, spec.Min)

	case OpSoleType:
		result.Kind = KindNames
		result.Names = NamesOfSoleType(records, spec.Type)

	case OpPrimaryBySecondary:
		result.Kind = KindNames
		result.Names = PrimaryTypeBySecondary(records, spec.Type)

	case OpCountType:
		result.Kind = KindCount
		result.Count = CountByType(records, spec.Type)
	}

	result.Total = result.Len()
	applyLimit(result, cfg.Limit)

	cfg.Logger.WithFields(logrus.Fields{
		"operation": spec.Operation,
		"records":   len(records),
		"results":   result.Total,
	}).Debug("query executed")

	return result, nil
}

// Validate checks that spec names a known operation with a usable argument.
func Validate(spec QuerySpec) error {
	switch spec.Operation {
	case OpDivisibleID:
		if spec.Factor == 0 {
			return fmt.Errorf("%s: %w", spec.Operation, ErrZeroFactor)
		}
	case OpField:
		if _, err := ParseField(spec.Field); err != nil {
			return fmt.Errorf("%s: %w", spec.Operation, err)
		}
	case OpType, OpMultiType, OpNamesAboveID, OpSoleType, OpPrimaryBySecondary, OpCountType:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, spec.Operation)
	}
	return nil
}

func applyLimit(result *Result, limit int) {
	if limit <= 0 {
		return
	}
	if len(result.Creatures) > limit {
		result.Creatures = result.Creatures[:limit]
	}
	if len(result.Values) > limit {
		result.Values = result.Values[:limit]
	}
	if len(result.Names) > limit {
		result.Names = result.Names[:limit]
	}
}

// ============================================================================
// DEFAULT QUERIES — the catalog demo
// ============================================================================

// DefaultQueries returns one query per operation with the demo's literal
// arguments, in the order the demo prints them.
func DefaultQueries() []QuerySpec {
	return []QuerySpec{
		{Operation: OpDivisibleID, Factor: 5, Title: "Multiples of 5"},
		{Operation: OpType, Type: "water", Title: "Water types"},
		{Operation: OpMultiType, Title: "Multi-type"},
		{Operation: OpField, Field: string(FieldID), Title: "IDs"},
		{Operation: OpNamesAboveID, Min: 57, Title: "Names above #57"},
		{Operation: OpSoleType, Type: "normal", Title: "Pure normal types"},
		{Operation: OpPrimaryBySecondary, Type: "flying", Title: "Primary types of flying secondaries"},
		{Operation: OpCountType, Type: "psychic", Title: "Psychic count"},
	}
}

// ParseOperation resolves an operation name.
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations() {
		if string(op) == name {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}
