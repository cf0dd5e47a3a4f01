package helpers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"

	"github.com/spektr-org/pokequery/engine"
)

// ============================================================================
// RENDER HELPER — Writes engine.Result in the CLI output formats
// ============================================================================
// Formats: json, pretty, yaml, csv, text.
// ============================================================================

// Formats lists the supported output formats.
var Formats = []string{"json", "pretty", "yaml", "csv", "text"}

// ValidFormat reports an error for a format WriteResult does not support.
func ValidFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q: want one of %s", format, strings.Join(Formats, ", "))
}

// WriteResult renders result to w in the named format.
func WriteResult(w io.Writer, result *engine.Result, format string) error {
	switch format {
	case "json", "pretty":
		return writeJSON(w, result, format)
	case "yaml":
		return writeYAML(w, result)
	case "csv":
		return writeCSV(w, result)
	case "text":
		return writeText(w, result)
	}
	return ValidFormat(format)
}

// ============================================================================
// JSON / YAML OUTPUT
// ============================================================================

func writeJSON(w io.Writer, v any, format string) error {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func writeYAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// ============================================================================
// CSV OUTPUT — header row plus one row per result item
// ============================================================================

func writeCSV(w io.Writer, result *engine.Result) error {
	cw := csv.NewWriter(w)

	if result == nil {
		if err := cw.Write([]string{"Result", "No data"}); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	}

	table := engine.BuildTable(result)
	if err := cw.Write(table.Headers()); err != nil {
		return err
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// ============================================================================
// TEXT OUTPUT — summary line plus indented rows
// ============================================================================

func writeText(w io.Writer, result *engine.Result) error {
	if _, err := fmt.Fprintln(w, engine.BuildText(result)); err != nil {
		return err
	}
	if result == nil || result.Kind == engine.KindCount {
		return nil
	}

	table := engine.BuildTable(result)
	for _, row := range table.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell
			if table.Columns[i].Type == "list" || isTypeColumn(result) {
				cells[i] = titleTypes(cell)
			}
		}
		if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(cells, "  ")); err != nil {
			return err
		}
	}
	return nil
}

// isTypeColumn reports whether the result's single column holds type names.
func isTypeColumn(result *engine.Result) bool {
	if result.Query.Operation == engine.OpPrimaryBySecondary {
		return true
	}
	return result.Kind == engine.KindValues && engine.Field(result.Query.Field) == engine.FieldTypes
}

// titleTypes turns "grass/poison" into "Grass/Poison".
func titleTypes(s string) string {
	caser := cases.Title(language.English)
	parts := strings.Split(s, "/")
	for i, p := range parts {
		parts[i] = caser.String(p)
	}
	return strings.Join(parts, "/")
}
