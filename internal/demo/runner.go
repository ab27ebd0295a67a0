package demo

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of one feature.
type Result struct {
	Feature  Feature
	Err      error
	Duration time.Duration
}

// Summary collects the results of a run in execution order.
type Summary struct {
	Results []Result
}

// Passed returns the number of features that succeeded.
func (s Summary) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of features that failed.
func (s Summary) Failed() int { return len(s.Results) - s.Passed() }

// OK reports whether every feature succeeded.
func (s Summary) OK() bool { return s.Failed() == 0 }

// Write prints one line per feature followed by the pass/fail count.
func (s Summary) Write(w io.Writer) {
	for _, r := range s.Results {
		status := "ok"
		if r.Err != nil {
			status = "FAIL: " + r.Err.Error()
		}
		fmt.Fprintf(w, "  %-9s %8s  %s\n", r.Feature, r.Duration.Round(time.Millisecond), status)
	}
	fmt.Fprintf(w, "\n%d passed, %d failed\n", s.Passed(), s.Failed())
}

// Runner executes features against a fixed set of samples.
type Runner struct {
	cfg     Config
	samples Samples
	log     logrus.FieldLogger

	// exec runs one feature; tests replace it.
	exec func(context.Context, Feature) error
}

// NewRunner returns a Runner for samples produced by [Setup].
func NewRunner(cfg Config, samples Samples) *Runner {
	cfg = cfg.withDefaults()
	r := &Runner{
		cfg:     cfg,
		samples: samples,
		log:     cfg.Logger.WithField("component", "demo"),
	}
	r.exec = r.dispatch
	return r
}

// Run executes one feature and returns its error.
func (r *Runner) Run(ctx context.Context, f Feature) error {
	if !f.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownFeature, f)
	}
	r.banner(f)
	start := time.Now()
	err := r.exec(ctx, f)

	entry := r.log.WithFields(logrus.Fields{"feature": f.String(), "duration": time.Since(start)})
	if err != nil {
		entry.WithError(err).Error("feature failed")
		fmt.Fprintf(r.cfg.Out, "\n  FAILED: %v\n", err)
		return fmt.Errorf("%s: %w", f, err)
	}
	entry.Info("feature done")
	return nil
}

// RunAll executes every feature in order. A failing feature is recorded and
// the remaining ones still run; only a cancelled ctx stops the run early.
func (r *Runner) RunAll(ctx context.Context) Summary {
	var s Summary
	for _, f := range All() {
		if ctx.Err() != nil {
			s.Results = append(s.Results, Result{Feature: f, Err: ctx.Err()})
			continue
		}
		start := time.Now()
		err := r.Run(ctx, f)
		s.Results = append(s.Results, Result{Feature: f, Err: err, Duration: time.Since(start)})
	}
	return s
}

func (r *Runner) banner(f Feature) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(r.cfg.Out, "\n%s\n  DEMO %d: %s\n%s\n", rule, int(f), f.title(), rule)
}

// dispatch binds every feature to its handler.
func (r *Runner) dispatch(ctx context.Context, f Feature) error {
	switch f {
	case Text:
		return r.text()
	case Table:
		return r.table()
	case Merge:
		return r.merge()
	case Metadata:
		return r.metadata()
	case Search:
		return r.search()
	case Report:
		return r.report(ctx)
	case Encrypt:
		return r.encrypt()
	case Rotate:
		return r.rotate()
	case Docx:
		return r.docx(ctx)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFeature, f)
}
