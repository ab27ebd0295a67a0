// Package pdftest builds small, uncompressed PDF files for tests.
//
// The output is a classic single-section PDF: a catalog, a flat page tree,
// one content stream per page, a shared Helvetica font and an optional
// document information dictionary, followed by a byte-exact xref table.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Text is a string drawn at X, Y (points from the bottom-left corner).
type Text struct {
	X, Y float64
	Size float64 // font size; 12 when zero
	S    string
}

// Page is a single US Letter page.
type Page struct {
	Texts  []Text
	Rotate int // /Rotate entry, omitted when zero
}

// Doc describes a fixture document.
type Doc struct {
	Pages   []Page
	Title   string
	Author  string
	Subject string
}

// Lines lays lines out top-down from the upper margin with 16pt leading.
func Lines(lines ...string) Page {
	var p Page
	y := 720.0
	for _, l := range lines {
		p.Texts = append(p.Texts, Text{X: 72, Y: y, S: l})
		y -= 16
	}
	return p
}

// Grid places rows as a left-aligned table starting at (x, y) with fixed
// column and row pitch.
func Grid(x, y, colWidth, rowHeight float64, rows [][]string) []Text {
	var out []Text
	for r, row := range rows {
		for c, cell := range row {
			out = append(out, Text{
				X:    x + float64(c)*colWidth,
				Y:    y - float64(r)*rowHeight,
				Size: 10,
				S:    cell,
			})
		}
	}
	return out
}

// New returns a Doc with one page per entry, each page holding its lines.
func New(pages ...[]string) Doc {
	var d Doc
	for _, lines := range pages {
		d.Pages = append(d.Pages, Lines(lines...))
	}
	return d
}

// Bytes serialises d.
func (d Doc) Bytes() []byte {
	var buf bytes.Buffer
	offsets := map[int]int{}
	begin := func(id int) {
		offsets[id] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n", id)
	}

	buf.WriteString("%PDF-1.4\n")

	numPages := len(d.Pages)
	fontID := 3 + numPages*2
	infoID := fontID + 1

	begin(1)
	buf.WriteString("<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	kids := make([]string, numPages)
	for i := range d.Pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i*2)
	}
	begin(2)
	fmt.Fprintf(&buf, "<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), numPages)

	for i, p := range d.Pages {
		pageID := 3 + i*2
		csID := pageID + 1
		cs := p.content()

		begin(pageID)
		buf.WriteString("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792]")
		if p.Rotate != 0 {
			fmt.Fprintf(&buf, " /Rotate %d", p.Rotate)
		}
		fmt.Fprintf(&buf, " /Contents %d 0 R", csID)
		fmt.Fprintf(&buf, " /Resources << /Font << /F1 %d 0 R >> >> >>\nendobj\n", fontID)

		begin(csID)
		fmt.Fprintf(&buf, "<< /Length %d >>\nstream\n", len(cs))
		buf.Write(cs)
		buf.WriteString("\nendstream\nendobj\n")
	}

	begin(fontID)
	buf.WriteString("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n")

	size := fontID + 1
	hasInfo := d.Title != "" || d.Author != "" || d.Subject != ""
	if hasInfo {
		begin(infoID)
		buf.WriteString("<<")
		if d.Title != "" {
			fmt.Fprintf(&buf, " /Title (%s)", escape(d.Title))
		}
		if d.Author != "" {
			fmt.Fprintf(&buf, " /Author (%s)", escape(d.Author))
		}
		if d.Subject != "" {
			fmt.Fprintf(&buf, " /Subject (%s)", escape(d.Subject))
		}
		buf.WriteString(" /Producer (pdftest) >>\nendobj\n")
		size = infoID + 1
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for id := 1; id < size; id++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R", size)
	if hasInfo {
		fmt.Fprintf(&buf, " /Info %d 0 R", infoID)
	}
	fmt.Fprintf(&buf, " >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return buf.Bytes()
}

func (p Page) content() []byte {
	var b bytes.Buffer
	for _, t := range p.Texts {
		size := t.Size
		if size == 0 {
			size = 12
		}
		fmt.Fprintf(&b, "BT /F1 %g Tf %g %g Td (%s) Tj ET\n", size, t.X, t.Y, escape(t.S))
	}
	return bytes.TrimRight(b.Bytes(), "\n")
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// Write stores d as dir/name and returns the full path.
func Write(tb testing.TB, dir, name string, d Doc) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, d.Bytes(), 0o644); err != nil {
		tb.Fatalf("pdftest: writing %s: %v", path, err)
	}
	return path
}
