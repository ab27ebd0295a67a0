package demo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/porticus-lab/go-docproc"
	"github.com/porticus-lab/go-docproc/internal/fsutil"
	"github.com/porticus-lab/go-docproc/report"
)

// Password protects encrypted.pdf.
const Password = "secret123"

var searchQueries = []string{"Python", "cloud", `\d+%`}

func (r *Runner) text() error {
	eng := r.cfg.Engine
	src := r.samples.Text

	r.printf("\nExtracting ALL text from: %s\n", src)
	pages, err := eng.ExtractText(src)
	if err != nil {
		return err
	}
	text := docproc.JoinPages(pages)
	r.printf("  Total characters extracted: %d\n", len([]rune(text)))
	r.printf("\n  First 400 characters:\n  %s\n", strings.Repeat("─", 50))
	r.printf("  %s\n", indent(truncate(text, 400)))

	r.printf("\nExtracting only PAGE 1 from: %s\n", src)
	page1, err := eng.ExtractPageText(src, 1)
	if err != nil {
		return err
	}
	r.printf("  Page 1 → %d characters\n", len([]rune(page1)))
	r.printf("  Preview: %q\n", truncate(page1, 200))

	out := r.output("extracted_text.txt")
	if err := writeText(out, text); err != nil {
		return err
	}
	r.printf("\n Saved full text → %s\n", out)
	return nil
}

func (r *Runner) table() error {
	eng := r.cfg.Engine
	src := r.samples.Tables

	r.printf("\nExtracting tables from: %s\n", src)
	tables, err := eng.ExtractTables(src)
	if err != nil {
		return err
	}
	r.printf("  Found %d table(s)\n", len(tables))
	for _, t := range tables {
		r.printf("\n  Table %d on page %d\n", t.Index, t.Page)
		r.printf("    Columns : %q\n", t.Headers)
		r.printf("    Rows    : %d\n", len(t.Rows))
	}

	formatted := docproc.FormatTables(tables)
	txt := r.output("extracted_tables.txt")
	if err := writeText(txt, formatted); err != nil {
		return err
	}
	r.printf("\n  Saved formatted tables → %s\n", txt)

	xlsx := r.output("extracted_tables.xlsx")
	if err := eng.WriteTablesXLSX(tables, xlsx); err != nil {
		return err
	}
	r.printf("  Saved workbook → %s\n", xlsx)

	r.printf("\n  Preview:\n  %s\n", strings.Repeat("─", 50))
	r.printf("  %s\n", indent(truncate(formatted, 600)))
	return nil
}

func (r *Runner) merge() error {
	eng := r.cfg.Engine
	s := r.samples

	r.printf("\nMerging 3 sample PDFs into one…\n")
	merged := r.output("merged.pdf")
	total, err := eng.Merge([]string{s.Text, s.Tables, s.Glossary}, merged)
	if err != nil {
		return err
	}
	r.printf("Merged → %s  (%d pages, %d KB)\n", merged, total, sizeKB(merged))

	r.printf("\nSplitting %s into individual pages…\n", filepath.Base(s.Text))
	dir := r.output("split_pages")
	if err := clearDir(dir); err != nil {
		return err
	}
	parts, err := eng.Split(s.Text, dir, 1)
	if err != nil {
		return err
	}
	r.printf(" Split into %d file(s):\n", len(parts))
	for _, p := range parts {
		r.printf("     %s\n", p)
	}

	r.printf("\nExtracting pages 1–1 from %s…\n", filepath.Base(s.Tables))
	ranged, err := eng.ExtractRange(s.Tables, 1, 1, r.output("sample2_p1.pdf"))
	if err != nil {
		return err
	}
	r.printf(" Saved → %s\n", ranged)
	return nil
}

func (r *Runner) metadata() error {
	for _, p := range r.samples.PDFs() {
		info, err := r.cfg.Engine.Metadata(p.Path)
		if err != nil {
			return err
		}
		r.printf("\n  %s.pdf\n", p.Name)
		r.printf("     Pages     : %d\n", info.Pages)
		r.printf("     Size      : %.1f KB\n", info.SizeKB)
		r.printf("     Encrypted : %t\n", info.Encrypted)
		r.printf("     Version   : %s\n", orNone(info.Version))
		r.printf("     Title     : %s\n", orNone(info.Title))
		r.printf("     Author    : %s\n", orNone(info.Author))
		r.printf("     Producer  : %s\n", orNone(info.Producer))
	}
	return nil
}

func (r *Runner) search() error {
	for _, q := range searchQueries {
		hits, err := r.cfg.Engine.Search(r.samples.Text, q, false)
		if err != nil {
			return err
		}
		r.printf("\n  Query: '%s'  → %d match(es)\n", q, len(hits))
		for _, h := range hits[:min(3, len(hits))] {
			r.printf("     Page %d, line %d: …%s…\n", h.Page, h.Line, truncate(h.Text, 60))
		}
	}
	return nil
}

func (r *Runner) report(ctx context.Context) error {
	b, err := r.builder()
	if err != nil {
		return err
	}
	out := r.output("professional_report.pdf")
	r.printf("\n Generating full report → %s\n", out)
	if err := b.Build(ctx, professionalReport(r.cfg.Now), out); err != nil {
		return err
	}
	r.printf(" Report generated  (%d KB)\n", sizeKB(out))
	return nil
}

func (r *Runner) encrypt() error {
	eng := r.cfg.Engine
	src := r.samples.Glossary
	enc := r.output("encrypted.pdf")
	dec := r.output("decrypted.pdf")

	r.printf("\n Encrypting %s with password '%s'…\n", src, Password)
	if _, err := eng.Encrypt(src, enc, Password, ""); err != nil {
		return err
	}
	r.printf("  Encrypted → %s\n", enc)

	r.printf("\n Decrypting %s…\n", enc)
	if _, err := eng.Decrypt(enc, dec, Password); err != nil {
		return err
	}

	want, err := eng.PageCount(src)
	if err != nil {
		return err
	}
	got, err := eng.PageCount(dec)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("decrypted file has %d pages, source has %d", got, want)
	}
	r.printf("  Decrypted → %s  (%d pages)\n", dec, got)
	return nil
}

func (r *Runner) rotate() error {
	eng := r.cfg.Engine
	src := r.samples.Text

	rotated := r.output("rotated.pdf")
	r.printf("\n Rotating page 1 of %s by 90°…\n", src)
	if _, err := eng.Rotate(src, rotated, 90, 1); err != nil {
		return err
	}
	rots, err := eng.PageRotations(rotated)
	if err != nil {
		return err
	}
	r.printf("  Rotated → %s  (page rotations %v)\n", rotated, rots)

	stamped := r.output("watermarked.pdf")
	r.printf("\n Stamping every page of %s…\n", src)
	if _, err := eng.Watermark(src, stamped, "CONFIDENTIAL"); err != nil {
		return err
	}
	r.printf("  Watermarked → %s\n", stamped)
	return nil
}

func (r *Runner) docx(ctx context.Context) error {
	src := r.samples.Docx
	content, err := r.cfg.Engine.ReadDocx(src)
	if err != nil {
		return err
	}
	text := content.Text()
	r.printf("\n  Extracted text (%d chars):\n", len([]rune(text)))
	r.printf("  %q\n", truncate(text, 300))

	b, err := r.builder()
	if err != nil {
		return err
	}
	spec := report.FromDocx(content)
	if spec.Author == "" {
		spec.Author = "PDF Processor Demo"
	}
	spec.GeneratedAt = r.cfg.Now

	out := r.output("from_docx.pdf")
	if err := b.Build(ctx, spec, out); err != nil {
		return err
	}
	r.printf("\n Converted .docx → %s\n", out)
	return nil
}

func (r *Runner) builder() (*report.Builder, error) {
	if r.cfg.Builder == nil {
		return nil, errors.New("no report builder configured")
	}
	return r.cfg.Builder, nil
}

func (r *Runner) output(name string) string {
	return filepath.Join(r.cfg.OutDir, name)
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.cfg.Out, format, args...)
}

func writeText(path, s string) error {
	if err := fsutil.WriteBytes(path, []byte(s)); err != nil {
		return &docproc.Error{Op: "write", Path: path, Kind: docproc.KindWrite, Err: err}
	}
	return nil
}

// clearDir empties dir so that files from an earlier split with more
// pages do not linger.
func clearDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return &docproc.Error{Op: "clear", Path: dir, Kind: docproc.KindWrite, Err: err}
	}
	return nil
}

func sizeKB(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size() / 1024
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
