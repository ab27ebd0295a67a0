package docproc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	tmodel "github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"
	"golang.org/x/text/unicode/norm"
)

// Table is a table detected on a PDF page. Cells are plain strings; the
// first detected row is taken as the header.
type Table struct {
	Page    int // 1-based page number
	Index   int // 1-based position among the tables detected on Page
	Headers []string
	Rows    [][]string
}

// ExtractTables detects tables on the given pages (all pages when none are
// given). Page numbers outside the document are ignored. Tables with fewer
// than two rows are dropped.
func (e *Engine) ExtractTables(path string, pages ...int) ([]Table, error) {
	const op = "extract_tables"
	doc, err := e.probe(op, path)
	if err != nil {
		return nil, err
	}

	want := make(map[int]bool, len(pages))
	for _, p := range pages {
		want[p] = true
	}

	var out []Table
	err = guard(func() error {
		r, err := reader.Open(path)
		if err != nil {
			return err
		}
		defer r.Close()

		detector := tables.NewGeometricDetector()
		for p := 1; p <= doc.pages; p++ {
			if len(want) > 0 && !want[p] {
				continue
			}
			page, err := pageLayout(r, p)
			if err != nil {
				return err
			}
			found, err := detector.Detect(page)
			if err != nil {
				return fmt.Errorf("page %d: %w", p, err)
			}
			for i, t := range found {
				cells := compactCells(t)
				if len(cells) < 2 {
					continue
				}
				out = append(out, Table{
					Page:    p,
					Index:   i + 1,
					Headers: cells[0],
					Rows:    cells[1:],
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, newError(op, path, KindFormat, err)
	}

	e.logOp(op, path, logrus.Fields{"tables": len(out)})
	return out, nil
}

// pageLayout converts tabula's positioned text fragments for page p into
// the page model its table detectors consume.
func pageLayout(r *reader.Reader, p int) (*tmodel.Page, error) {
	pg, err := r.GetPage(p - 1)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", p, err)
	}
	frags, err := r.ExtractTextFragments(pg)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", p, err)
	}
	width, _ := pg.Width()
	height, _ := pg.Height()

	page := tmodel.NewPage(width, height)
	page.Number = p
	for _, f := range frags {
		page.RawText = append(page.RawText, tmodel.TextFragment{
			Text:     f.Text,
			BBox:     tmodel.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontSize: f.FontSize,
			FontName: f.FontName,
		})
	}
	return page, nil
}

// compactCells flattens a detected table to trimmed strings and removes the
// all-empty rows and columns the detector produces for the gaps between
// cell edges.
func compactCells(t *tmodel.Table) [][]string {
	var rows [][]string
	width := 0
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		empty := true
		for j, c := range row {
			cells[j] = norm.NFC.String(strings.TrimSpace(c.Text))
			if cells[j] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, cells)
		width = max(width, len(cells))
	}

	keep := make([]bool, width)
	for _, row := range rows {
		for j, c := range row {
			if c != "" {
				keep[j] = true
			}
		}
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		for j := 0; j < width; j++ {
			if !keep[j] {
				continue
			}
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			out[i] = append(out[i], cell)
		}
	}
	return out
}

// FormatTables renders tables as fixed-width text grids, one block per
// table headed "=== Table N (Page P) ===". Columns are at least eight
// characters wide and grow to fit their widest cell.
func FormatTables(ts []Table) string {
	var lines []string
	for _, t := range ts {
		lines = append(lines, fmt.Sprintf("\n=== Table %d (Page %d) ===\n", t.Index, t.Page))

		widths := make([]int, len(t.Headers))
		for i, h := range t.Headers {
			widths[i] = max(utf8.RuneCountInString(h), 8)
		}
		for _, row := range t.Rows {
			for j, cell := range row {
				if j < len(widths) {
					widths[j] = max(widths[j], utf8.RuneCountInString(cell))
				}
			}
		}

		header := make([]string, len(t.Headers))
		rule := make([]string, len(t.Headers))
		for i, h := range t.Headers {
			header[i] = pad(h, widths[i])
			rule[i] = strings.Repeat("-", widths[i])
		}
		lines = append(lines, strings.Join(header, " | "), strings.Join(rule, "-+-"))

		for _, row := range t.Rows {
			cells := make([]string, len(t.Headers))
			for i := range t.Headers {
				cell := ""
				if i < len(row) {
					cell = row[i]
				}
				cells[i] = pad(cell, widths[i])
			}
			lines = append(lines, strings.Join(cells, " | "))
		}
	}
	return strings.Join(lines, "\n")
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
