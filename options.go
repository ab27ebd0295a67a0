package docproc

import (
	"io"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/sirupsen/logrus"
)

// engineConfig holds internal configuration for an Engine.
type engineConfig struct {
	logger        logrus.FieldLogger
	strict        bool
	textFallback  bool
	searchTimeout time.Duration
}

func defaultConfig() engineConfig {
	return engineConfig{
		logger:        discardLogger(),
		textFallback:  true,
		searchTimeout: 5 * time.Second,
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Option configures an [Engine].
type Option func(*engineConfig)

// WithLogger sets the logger that receives one Debug entry per operation.
// Nil restores the silent default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *engineConfig) {
		if l == nil {
			l = discardLogger()
		}
		c.logger = l
	}
}

// WithValidation selects strict PDF validation for page-level operations.
// The default is relaxed, which accepts the small deviations most real-world
// producers emit.
func WithValidation(strict bool) Option {
	return func(c *engineConfig) {
		c.strict = strict
	}
}

// WithTextFallback controls whether text extraction retries with a plain
// content-stream reader when layout analysis fails or returns only blank
// pages. Enabled by default.
func WithTextFallback(enabled bool) Option {
	return func(c *engineConfig) {
		c.textFallback = enabled
	}
}

// WithSearchTimeout bounds the time a single search pattern may spend on one
// line. Backtracking patterns can otherwise run for a very long time.
// Defaults to 5 seconds; zero or negative disables the limit.
func WithSearchTimeout(d time.Duration) Option {
	return func(c *engineConfig) {
		c.searchTimeout = d
	}
}

// pdfConfig returns a fresh pdfcpu configuration for one operation. pdfcpu
// mutates the configuration it is given, so it is never shared.
func (c engineConfig) pdfConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	if c.strict {
		conf.ValidationMode = model.ValidationStrict
	} else {
		conf.ValidationMode = model.ValidationRelaxed
	}
	return conf
}
