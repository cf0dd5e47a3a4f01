package engine

import (
	"fmt"
	"strconv"
)

// ============================================================================
// TABLE BUILDER — Produces TableData from a Result
// ============================================================================

// BuildTable produces a TableData with one row per result item.
// A count result becomes a single row.
func BuildTable(result *Result) *TableData {
	if result == nil {
		return &TableData{Columns: []Column{}, Rows: [][]string{}}
	}

	switch result.Kind {
	case KindCreatures:
		return buildCreatureTable(result)
	case KindValues:
		return buildValueTable(result)
	case KindNames:
		return buildNameTable(result)
	case KindCount:
		return buildCountTable(result)
	}
	return &TableData{Title: result.Query.Title, Columns: []Column{}, Rows: [][]string{}}
}

// ============================================================================
// CREATURE TABLE — Row per record
// ============================================================================

func buildCreatureTable(result *Result) *TableData {
	columns := []Column{
		{Key: string(FieldID), Label: LabelForField(string(FieldID)), Type: "number", Align: "right"},
		{Key: string(FieldName), Label: LabelForField(string(FieldName)), Type: "text", Align: "left"},
		{Key: string(FieldTypes), Label: LabelForField(string(FieldTypes)), Type: "list", Align: "left"},
	}

	rows := make([][]string, 0, len(result.Creatures))
	for _, c := range result.Creatures {
		rows = append(rows, []string{strconv.Itoa(c.ID), c.Name, JoinTypes(c.Types)})
	}

	return &TableData{Title: result.Query.Title, Columns: columns, Rows: rows}
}

// ============================================================================
// VALUE TABLE — Row per projected value
// ============================================================================

func buildValueTable(result *Result) *TableData {
	field := result.Query.Field
	column := Column{Key: field, Label: LabelForField(field), Type: "text", Align: "left"}
	if Field(field) == FieldID {
		column.Type = "number"
		column.Align = "right"
	}

	rows := make([][]string, 0, len(result.Values))
	for _, v := range result.Values {
		rows = append(rows, []string{formatValue(v)})
	}

	return &TableData{Title: result.Query.Title, Columns: []Column{column}, Rows: rows}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case int:
		return strconv.Itoa(val)
	case string:
		return val
	case []string:
		return JoinTypes(val)
	default:
		return fmt.Sprint(val)
	}
}

// ============================================================================
// NAME TABLE — Row per name (or primary type)
// ============================================================================

func buildNameTable(result *Result) *TableData {
	column := Column{Key: string(FieldName), Label: LabelForField(string(FieldName)), Type: "text", Align: "left"}
	if result.Query.Operation == OpPrimaryBySecondary {
		column = Column{Key: "primary_type", Label: "Primary type", Type: "text", Align: "left"}
	}

	rows := make([][]string, 0, len(result.Names))
	for _, n := range result.Names {
		rows = append(rows, []string{n})
	}

	return &TableData{Title: result.Query.Title, Columns: []Column{column}, Rows: rows}
}

// ============================================================================
// COUNT TABLE — Single row
// ============================================================================

func buildCountTable(result *Result) *TableData {
	return &TableData{
		Title: result.Query.Title,
		Columns: []Column{
			{Key: "type", Label: "Type", Type: "text", Align: "left"},
			{Key: "count", Label: "Count", Type: "number", Align: "right"},
		},
		Rows: [][]string{{result.Query.Type, strconv.Itoa(result.Count)}},
	}
}
