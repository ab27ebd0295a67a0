// docproc runs the document processing demo and exposes the engine's
// read-only operations on the command line.
//
// Usage:
//
//	docproc [--feature NAME]
//	docproc extract [options] <file.pdf>
//	docproc info <file.pdf>
//	docproc search [-i] <file.pdf> <pattern>
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/porticus-lab/go-docproc"
	"github.com/porticus-lab/go-docproc/internal/demo"
	"github.com/porticus-lab/go-docproc/render"
	"github.com/porticus-lab/go-docproc/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

type demoOptions struct {
	feature      string
	outDir       string
	sampleDir    string
	chromePath   string
	noSandbox    bool
	autoDownload bool
	timeout      time.Duration
	paper        string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var opts demoOptions
	cmd := &cobra.Command{
		Use:   "docproc",
		Short: "PDF and Word document processing demo",
		Long: `docproc demonstrates text and table extraction, merge and split, metadata,
search, report generation, encryption, rotation and Word conversion.

Without --feature every demonstration runs in order and a pass/fail summary
is printed. Sample inputs are generated into the samples directory when
missing; artifacts are written to the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.feature, "feature", "all", "demo to run: all, "+strings.Join(demo.Names(), ", "))
	f.StringVar(&opts.outDir, "out", "outputs", "directory for generated artifacts")
	f.StringVar(&opts.sampleDir, "samples", "sample_pdfs", "directory for sample inputs")
	f.StringVar(&opts.chromePath, "chrome", "", "Chrome or Chromium executable (default: search PATH)")
	f.BoolVar(&opts.noSandbox, "no-sandbox", false, "disable the Chrome sandbox (needed in most containers)")
	f.BoolVar(&opts.autoDownload, "auto-download", false, "download Chromium when none is installed")
	f.DurationVar(&opts.timeout, "timeout", 30*time.Second, "limit for printing one report")
	f.StringVar(&opts.paper, "paper", "A4", "paper size for generated reports: A3, A4, A5, Letter, Legal, Tabloid")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(newExtractCmd(), newInfoCmd(), newSearchCmd())
	return cmd
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func runDemo(cmd *cobra.Command, opts demoOptions) error {
	// Everything that can be rejected is checked before any file is touched.
	var only demo.Feature
	if !strings.EqualFold(opts.feature, "all") {
		f, err := demo.ParseFeature(opts.feature)
		if err != nil {
			return err
		}
		only = f
	}
	paper, err := render.ParsePageSize(opts.paper)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	ctx := cmd.Context()
	log := newLogger(cmd.ErrOrStderr(), opts.verbose)
	out := cmd.OutOrStdout()

	conv := &lazyConverter{opts: []render.Option{
		render.WithChromePath(opts.chromePath),
		render.WithTimeout(opts.timeout),
		render.WithLogger(log),
	}}
	if opts.noSandbox {
		conv.opts = append(conv.opts, render.WithNoSandbox())
	}
	if opts.autoDownload {
		conv.opts = append(conv.opts, render.WithAutoDownload())
	}
	defer conv.Close()

	cfg := demo.Config{
		Engine:    docproc.New(docproc.WithLogger(log)),
		Builder:   report.NewBuilder(conv, report.WithLogger(log), report.WithPageSize(paper)),
		SampleDir: opts.sampleDir,
		OutDir:    opts.outDir,
		Now:       time.Now(),
		Out:       out,
		Logger:    log,
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintf(out, "\n%s\n  PDF / DOCUMENT PROCESSOR\n  Full Feature Demo\n%s\n", rule, rule)
	fmt.Fprintf(out, "\n Preparing sample documents…\n")

	samples, err := demo.Setup(ctx, cfg)
	if err != nil {
		return err
	}
	runner := demo.NewRunner(cfg, samples)

	if only != 0 {
		return runner.Run(ctx, only)
	}

	sum := runner.RunAll(ctx)
	fmt.Fprintf(out, "\n%s\n  SUMMARY\n%s\n\n", rule, rule)
	sum.Write(out)
	if !sum.OK() {
		return fmt.Errorf("%d of %d features failed", sum.Failed(), len(sum.Results))
	}
	return nil
}

// lazyConverter starts the browser on the first print, so features that
// never render do not need Chrome installed. It is not safe for concurrent
// use; the demo prints one report at a time.
type lazyConverter struct {
	opts []render.Option
	conv *render.Converter
	err  error
}

func (l *lazyConverter) ConvertHTML(ctx context.Context, html string, pg *render.PageConfig) (*render.Result, error) {
	if l.conv == nil && l.err == nil {
		l.conv, l.err = render.NewConverter(l.opts...)
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.conv.ConvertHTML(ctx, html, pg)
}

func (l *lazyConverter) Close() error {
	if l.conv == nil {
		return nil
	}
	return l.conv.Close()
}
