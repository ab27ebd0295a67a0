package report

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/porticus-lab/go-docproc/render"
)

type builderConfig struct {
	logger   logrus.FieldLogger
	margin   render.Margin
	pageSize render.PageSize
	label    string
}

func defaultConfig() builderConfig {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return builderConfig{
		logger: l,
		margin: render.Margin{Top: 2.5, Right: 2, Bottom: 2, Left: 2},
		label:  "CONFIDENTIAL",
	}
}

// Option configures a [Builder].
type Option func(*builderConfig)

// WithLogger sets the logger used for build diagnostics. Logging is
// discarded by default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMargin overrides the page margins, in centimetres. The default is
// 2.5 cm at the top and 2 cm elsewhere.
func WithMargin(m render.Margin) Option {
	return func(c *builderConfig) {
		c.margin = m
	}
}

// WithFooterLabel replaces the "CONFIDENTIAL" marking centred in the footer.
func WithFooterLabel(label string) Option {
	return func(c *builderConfig) {
		c.label = label
	}
}

// WithPageSize sets the paper used for specs that do not name one. The
// default is A4.
func WithPageSize(size render.PageSize) Option {
	return func(c *builderConfig) {
		c.pageSize = size
	}
}
