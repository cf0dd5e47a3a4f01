package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/spektr-org/pokequery/dataset"
	"github.com/spektr-org/pokequery/engine"
	"github.com/spektr-org/pokequery/helpers"
	"github.com/spektr-org/pokequery/internal/config"
)

// ============================================================================
// POKEQUERY CLI — runs catalog queries against the reference dataset
// ============================================================================

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}

type options struct {
	Operation string
	Factor    int
	Type      string
	Min       int
	Field     string
	Limit     int
	Format    string
	OutFile   string
	LogLevel  string
	LogFormat string
	Version   bool
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	defaults, err := config.LoadCLI()
	if err != nil {
		return nil, err
	}

	opt := &options{
		Factor:    5,
		Limit:     defaults.Limit,
		Format:    defaults.Format,
		LogLevel:  defaults.LogLevel,
		LogFormat: defaults.LogFormat,
	}

	fs := pflag.NewFlagSet("pokequery", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.Operation, "op", "", "Operation to run: "+joinOperations()+". Empty runs every demo query.")
	fs.IntVar(&opt.Factor, "factor", opt.Factor, "Divisor for divisible-id.")
	fs.StringVar(&opt.Type, "type", "", "Type for type, sole-type, primary-by-secondary and count-type.")
	fs.IntVar(&opt.Min, "min", 0, "Exclusive lower id bound for names-above-id.")
	fs.StringVar(&opt.Field, "field", string(engine.FieldID), "Field for field: "+strings.Join(engine.FieldNames(), ", ")+".")
	fs.IntVar(&opt.Limit, "limit", opt.Limit, "Show at most this many items per result (0 = all).")
	fs.StringVar(&opt.Format, "format", opt.Format, "Output format: "+strings.Join(helpers.Formats, ", ")+".")
	fs.StringVarP(&opt.OutFile, "out", "o", "", "Write output to file instead of stdout.")
	fs.StringVar(&opt.LogLevel, "log-level", opt.LogLevel, "Log level (debug, info, warn, error).")
	fs.StringVar(&opt.LogFormat, "log-format", opt.LogFormat, "Log format (text, json).")
	fs.BoolVar(&opt.Version, "version", false, "Print version and exit.")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `pokequery — query the reference creature catalog

Usage:
  pokequery
  pokequery --op type --type water --format csv
  pokequery --op names-above-id --min 57 --limit 10
  pokequery --op field --field types --format yaml

Flags:
`)
		fs.PrintDefaults()
		fmt.Fprintf(stderr, `
Environment:
  POKEQUERY_LOG_LEVEL   default log level (info)
  POKEQUERY_LOG_FORMAT  text or json (text)
  POKEQUERY_FORMAT      default output format (text)
  POKEQUERY_LIMIT       default --limit (0)
`)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opt, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opt, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if opt.Version {
		_, err := fmt.Fprintf(stdout, "pokequery %s\n", version)
		return err
	}

	logger, err := config.NewLogger(stderr, opt.LogLevel, opt.LogFormat)
	if err != nil {
		return err
	}

	if err := helpers.ValidFormat(opt.Format); err != nil {
		return err
	}

	queries, err := buildQueries(opt)
	if err != nil {
		return err
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := stdout
	if opt.OutFile != "" {
		f, err := os.Create(opt.OutFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Read data ─────────────────────────────────────────────────────────
	records, err := dataset.Creatures()
	if err != nil {
		return err
	}
	logger.WithField("records", len(records)).Debug("dataset loaded")

	// ── Query mode ────────────────────────────────────────────────────────
	for i, spec := range queries {
		result, err := engine.Execute(spec, records,
			engine.WithLogger(logger),
			engine.WithLimit(opt.Limit),
		)
		if err != nil {
			return fmt.Errorf("%s: %w", spec.Operation, err)
		}
		if i > 0 {
			if err := writeSeparator(writer, opt.Format); err != nil {
				return err
			}
		}
		if err := helpers.WriteResult(writer, result, opt.Format); err != nil {
			return err
		}
	}

	if opt.OutFile != "" {
		logger.WithFields(logrus.Fields{"file": opt.OutFile, "queries": len(queries)}).Info("output written")
	}
	return nil
}

// buildQueries turns flags into query specs. No --op means the demo set.
func buildQueries(opt *options) ([]engine.QuerySpec, error) {
	if opt.Operation == "" {
		return engine.DefaultQueries(), nil
	}

	op, err := engine.ParseOperation(opt.Operation)
	if err != nil {
		return nil, err
	}

	spec := engine.QuerySpec{Operation: op}
	switch op {
	case engine.OpDivisibleID:
		spec.Factor = opt.Factor
	case engine.OpType, engine.OpSoleType, engine.OpPrimaryBySecondary, engine.OpCountType:
		if strings.TrimSpace(opt.Type) == "" {
			return nil, fmt.Errorf("--type is required for %s", op)
		}
		spec.Type = opt.Type
	case engine.OpNamesAboveID:
		spec.Min = opt.Min
	case engine.OpField:
		spec.Field = opt.Field
	}

	if err := engine.Validate(spec); err != nil {
		return nil, err
	}
	return []engine.QuerySpec{spec}, nil
}

func writeSeparator(w io.Writer, format string) error {
	var err error
	switch format {
	case "yaml":
		_, err = fmt.Fprintln(w, "---")
	case "csv", "text":
		_, err = fmt.Fprintln(w)
	}
	return err
}

func joinOperations() string {
	ops := engine.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}
