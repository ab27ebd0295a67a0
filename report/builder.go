package report

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/porticus-lab/go-docproc"
	"github.com/porticus-lab/go-docproc/render"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var layout = template.Must(template.ParseFS(templateFS, "templates/report.html.tmpl"))

// dateLayout matches the long US style used on the cover and in the footer.
const dateLayout = "January 02, 2006"

// Printer turns an HTML document into PDF. [*render.Converter] is the
// production implementation.
type Printer interface {
	ConvertHTML(ctx context.Context, html string, pg *render.PageConfig) (*render.Result, error)
}

// Builder lays out [Spec] values as HTML and prints them to PDF.
// A Builder is safe for concurrent use if its Printer is.
type Builder struct {
	printer Printer
	cfg     builderConfig
	log     logrus.FieldLogger
	md      goldmark.Markdown
}

// NewBuilder returns a Builder that prints through p.
func NewBuilder(p Printer, opts ...Option) *Builder {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Builder{
		printer: p,
		cfg:     cfg,
		log:     cfg.logger.WithField("component", "report"),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
	}
}

// Render returns the HTML document for s. Equal specs give identical
// output.
func (b *Builder) Render(s *Spec) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	v, err := b.view(s)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := layout.ExecuteTemplate(&buf, "report", v); err != nil {
		return "", fmt.Errorf("report: executing template: %w", err)
	}
	return buf.String(), nil
}

// Build renders s, prints it and writes the PDF to out. The file appears
// only when complete. Failures are [*docproc.Error] values: an invalid spec
// has kind invalid, and a print or file failure has kind write.
func (b *Builder) Build(ctx context.Context, s *Spec, out string) error {
	const op = "build_report"

	html, err := b.Render(s)
	if err != nil {
		return &docproc.Error{Op: op, Path: out, Kind: docproc.KindInvalid, Err: err}
	}
	pg, err := b.pageConfig(s)
	if err != nil {
		return &docproc.Error{Op: op, Path: out, Kind: docproc.KindInvalid, Err: err}
	}

	res, err := b.printer.ConvertHTML(ctx, html, pg)
	if err != nil {
		return &docproc.Error{Op: op, Path: out, Kind: docproc.KindWrite, Err: err}
	}
	if err := res.WriteToFile(out); err != nil {
		return &docproc.Error{Op: op, Path: out, Kind: docproc.KindWrite, Err: err}
	}

	b.log.WithFields(logrus.Fields{
		"path":     out,
		"sections": len(s.Sections),
		"tables":   len(s.Tables),
		"bytes":    res.Len(),
	}).Debug("report written")
	return nil
}

// pageConfig is the print setup for s: paper from the spec or the builder,
// margins from the builder and, unless s is plain, the running header and
// footer.
func (b *Builder) pageConfig(s *Spec) (*render.PageConfig, error) {
	size := s.PageSize
	if size == (render.PageSize{}) {
		size = b.cfg.pageSize
	}
	pg := &render.PageConfig{
		Size:            size,
		Orientation:     s.Orientation,
		Margin:          b.cfg.margin,
		PrintBackground: true,
	}
	if s.Plain {
		return pg, nil
	}

	chrome := struct {
		Title, Author, Date, Label string
	}{
		Title:  s.Title,
		Author: s.Author,
		Date:   formatDate(s),
		Label:  b.cfg.label,
	}
	var header, footer bytes.Buffer
	if err := layout.ExecuteTemplate(&header, "header", chrome); err != nil {
		return nil, fmt.Errorf("report: executing header: %w", err)
	}
	if err := layout.ExecuteTemplate(&footer, "footer", chrome); err != nil {
		return nil, fmt.Errorf("report: executing footer: %w", err)
	}
	pg.DisplayHeaderFooter = true
	pg.HeaderTemplate = header.String()
	pg.FooterTemplate = footer.String()
	return pg, nil
}

type view struct {
	Title    string
	Subtitle string
	Byline   string
	Plain    bool
	Metadata []Field
	Sections []sectionView
	Tables   []Table
	Summary  template.HTML
}

type sectionView struct {
	Heading         string
	Level           int
	Body            template.HTML
	Paragraphs      []string
	Bullets         []string
	PageBreakBefore bool
}

func (b *Builder) view(s *Spec) (*view, error) {
	v := &view{
		Title:    s.Title,
		Subtitle: s.Subtitle,
		Byline:   byline(s),
		Plain:    s.Plain,
		Metadata: s.Metadata,
	}

	for i, sec := range s.Sections {
		body, err := b.markdown(sec.Body)
		if err != nil {
			return nil, fmt.Errorf("report: section %d: %w", i+1, err)
		}
		v.Sections = append(v.Sections, sectionView{
			Heading:         sec.Heading,
			Level:           max(sec.Level, 1),
			Body:            body,
			Paragraphs:      sec.Paragraphs,
			Bullets:         sec.Bullets,
			PageBreakBefore: sec.PageBreakBefore,
		})
	}

	for _, t := range s.Tables {
		v.Tables = append(v.Tables, padRows(t))
	}

	summary, err := b.markdown(s.Summary)
	if err != nil {
		return nil, fmt.Errorf("report: summary: %w", err)
	}
	v.Summary = summary
	return v, nil
}

// markdown converts src to HTML. Raw HTML in src is not passed through.
func (b *Builder) markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := b.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// byline is the cover line under the title: "Prepared by: <author> · <date>",
// shortened when either part is missing.
func byline(s *Spec) string {
	date := formatDate(s)
	switch {
	case s.Author != "" && date != "":
		return "Prepared by: " + s.Author + "  ·  " + date
	case s.Author != "":
		return "Prepared by: " + s.Author
	default:
		return date
	}
}

func formatDate(s *Spec) string {
	if s.GeneratedAt.IsZero() {
		return ""
	}
	return s.GeneratedAt.Format(dateLayout)
}

// padRows returns t with short rows filled out to the header width.
func padRows(t Table) Table {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(t.Headers))
		copy(rows[i], row)
	}
	t.Rows = rows
	return t
}
