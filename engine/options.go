package engine

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// Option configures Execute via functional options pattern.
type Option func(*config)

type config struct {
	Logger logrus.FieldLogger
	Limit  int // truncate list results; 0 = all
}

// WithLogger sets the logger Execute reports to. Entries are debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithLimit keeps at most n items of a list result. n <= 0 keeps everything.
// Result.Total still reports the untruncated size.
func WithLimit(n int) Option {
	return func(c *config) {
		c.Limit = n
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
