package demo

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/porticus-lab/go-docproc"
	"github.com/porticus-lab/go-docproc/internal/ooxml"
	"github.com/porticus-lab/go-docproc/report"
)

// Config wires the demo to its collaborators and directories.
type Config struct {
	Engine  *docproc.Engine
	Builder *report.Builder

	// SampleDir holds the generated inputs; OutDir receives every artifact.
	SampleDir string
	OutDir    string

	// Now stamps generated reports. The zero time prints no date.
	Now time.Time

	// Out receives the human-readable progress of each feature.
	Out io.Writer

	Logger logrus.FieldLogger
}

func (c Config) withDefaults() Config {
	if c.Engine == nil {
		c.Engine = docproc.New()
	}
	if c.SampleDir == "" {
		c.SampleDir = "sample_pdfs"
	}
	if c.OutDir == "" {
		c.OutDir = "outputs"
	}
	if c.Out == nil {
		c.Out = io.Discard
	}
	if c.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.Logger = l
	}
	return c
}

// Samples are the input documents the features read.
type Samples struct {
	Text     string // sample_1.pdf: prose over two pages
	Tables   string // sample_2.pdf: two data tables
	Glossary string // sample_3.pdf: short single page
	Docx     string // sample.docx
}

// PDFs lists the sample PDFs by display name in a fixed order.
func (s Samples) PDFs() []struct{ Name, Path string } {
	return []struct{ Name, Path string }{
		{"sample_1", s.Text},
		{"sample_2", s.Tables},
		{"sample_3", s.Glossary},
	}
}

// Setup creates cfg.SampleDir and generates every sample that is missing or
// unreadable. Existing valid samples are left alone.
func Setup(ctx context.Context, cfg Config) (Samples, error) {
	cfg = cfg.withDefaults()
	log := cfg.Logger.WithField("component", "demo")

	if err := os.MkdirAll(cfg.SampleDir, 0o755); err != nil {
		return Samples{}, fmt.Errorf("demo: creating %s: %w", cfg.SampleDir, err)
	}
	s := Samples{
		Text:     filepath.Join(cfg.SampleDir, "sample_1.pdf"),
		Tables:   filepath.Join(cfg.SampleDir, "sample_2.pdf"),
		Glossary: filepath.Join(cfg.SampleDir, "sample_3.pdf"),
		Docx:     filepath.Join(cfg.SampleDir, "sample.docx"),
	}

	pdfs := []struct {
		path string
		spec *report.Spec
	}{
		{s.Text, textSample()},
		{s.Tables, tableSample()},
		{s.Glossary, glossarySample()},
	}
	for _, p := range pdfs {
		if _, err := cfg.Engine.PageCount(p.path); err == nil {
			continue
		}
		if cfg.Builder == nil {
			return Samples{}, fmt.Errorf("demo: %s is missing and no report builder is configured", p.path)
		}
		if err := cfg.Builder.Build(ctx, p.spec, p.path); err != nil {
			return Samples{}, fmt.Errorf("demo: generating %s: %w", p.path, err)
		}
		log.WithField("path", p.path).Info("sample created")
		fmt.Fprintf(cfg.Out, "Created %s\n", p.path)
	}

	if _, err := cfg.Engine.ReadDocx(s.Docx); err != nil {
		if err := ooxml.WriteFile(s.Docx, docxSample(cfg.Now)); err != nil {
			return Samples{}, fmt.Errorf("demo: generating %s: %w", s.Docx, err)
		}
		log.WithField("path", s.Docx).Info("sample created")
		fmt.Fprintf(cfg.Out, "Created %s\n", s.Docx)
	}
	return s, nil
}
