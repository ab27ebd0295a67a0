package report

import (
	"fmt"
	"strings"

	"github.com/porticus-lab/go-docproc"
)

// FromDocx lays out the content of a Word document as a report. Headings
// open sections (levels below 2 are printed at level 2) and the paragraphs
// after them are printed verbatim, never interpreted as Markdown. When the document has no title
// property, a leading level-1 heading is used as the title instead of
// opening a section.
func FromDocx(c *docproc.DocxContent) *Spec {
	s := &Spec{Title: strings.TrimSpace(c.Title), Author: c.Author}

	blocks := c.Blocks
	if s.Title == "" && len(blocks) > 0 && blocks[0].Level == 1 {
		s.Title = blocks[0].Text
		blocks = blocks[1:]
	}
	if s.Title == "" {
		s.Title = "Untitled document"
	}

	var cur *Section
	var paras []string
	flush := func() {
		if cur == nil {
			return
		}
		cur.Paragraphs = paras
		s.Sections = append(s.Sections, *cur)
		cur, paras = nil, nil
	}

	for _, b := range blocks {
		if b.IsHeading() {
			flush()
			cur = &Section{Heading: b.Text, Level: min(b.Level, 2)}
			continue
		}
		if strings.TrimSpace(b.Text) == "" {
			continue
		}
		if cur == nil {
			cur = &Section{Level: 1}
		}
		paras = append(paras, b.Text)
	}
	flush()
	return s
}

// TableFromExtracted converts a detected table into a report table captioned
// with where it was found.
func TableFromExtracted(t docproc.Table) Table {
	out := Table{
		Heading: fmt.Sprintf("Table %d", t.Index),
		Headers: append([]string(nil), t.Headers...),
		Caption: fmt.Sprintf("Extracted from page %d", t.Page),
	}
	for _, row := range t.Rows {
		cells := make([]string, len(t.Headers))
		copy(cells, row)
		out.Rows = append(out.Rows, cells)
	}
	return out
}
