package engine

import (
	"fmt"
)

// ============================================================================
// TEXT BUILDER — One-line summaries
// ============================================================================

// BuildText produces a human-readable one-line summary of a Result.
func BuildText(result *Result) string {
	if result == nil {
		return "No result."
	}

	subject := describeQuery(result.Query)

	if result.Kind == KindCount {
		return fmt.Sprintf("%s: %s", subject, FormatInt(result.Count))
	}

	noun := "results"
	switch result.Kind {
	case KindCreatures:
		noun = "creatures"
	case KindValues:
		noun = "values"
	case KindNames:
		noun = "names"
		if result.Query.Operation == OpPrimaryBySecondary {
			noun = "types"
		}
	}
	if result.Total == 1 {
		noun = noun[:len(noun)-1]
	}

	shown := result.Len()
	if shown < result.Total {
		return fmt.Sprintf("%s: %s %s (showing %s)", subject, FormatInt(result.Total), noun, FormatInt(shown))
	}
	return fmt.Sprintf("%s: %s %s", subject, FormatInt(result.Total), noun)
}

// describeQuery returns the query title, or a generated description when the
// title is empty.
func describeQuery(spec QuerySpec) string {
	if spec.Title != "" {
		return spec.Title
	}
	switch spec.Operation {
	case OpDivisibleID:
		return fmt.Sprintf("IDs divisible by %d", spec.Factor)
	case OpType:
		return fmt.Sprintf("Type %q", spec.Type)
	case OpMultiType:
		return "Multi-type"
	case OpField:
		return fmt.Sprintf("Field %q", spec.Field)
	case OpNamesAboveID:
		return fmt.Sprintf("Names above #%d", spec.Min)
	case OpSoleType:
		return fmt.Sprintf("Sole type %q", spec.Type)
	case OpPrimaryBySecondary:
		return fmt.Sprintf("Primary types with secondary %q", spec.Type)
	case OpCountType:
		return fmt.Sprintf("Count of type %q", spec.Type)
	}
	return string(spec.Operation)
}
