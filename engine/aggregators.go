package engine

import (
	"strconv"
	"strings"
)

// ============================================================================
// AGGREGATORS — Counting and formatting
// ============================================================================

// CountByType counts records carrying typ in any position.
// Always equal to len(FilterByType(records, typ)).
func CountByType(records []Creature, typ string) int {
	n := 0
	for _, r := range records {
		if r.HasType(typ) {
			n++
		}
	}
	return n
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return FormatInt(n/1000) + "," + padThousands(n%1000)
}

func padThousands(n int) string {
	s := strconv.Itoa(n)
	return strings.Repeat("0", 3-len(s)) + s
}

// JoinTypes renders a type list as "grass/poison".
func JoinTypes(types []string) string {
	return strings.Join(types, "/")
}

// LabelForField returns a capitalized label for a field selector.
func LabelForField(field string) string {
	if len(field) == 0 {
		return ""
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
