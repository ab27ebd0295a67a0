package docproc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/reader"
	"golang.org/x/text/unicode/norm"
)

// PageText is the text of one page, numbered from 1.
type PageText struct {
	Page int
	Text string
}

// ExtractText returns the text of every page of the PDF at path, one entry
// per page in document order. Pages without a text layer yield "".
func (e *Engine) ExtractText(path string) ([]string, error) {
	const op = "extract_text"
	doc, err := e.probe(op, path)
	if err != nil {
		return nil, err
	}
	return e.pagesText(op, doc, allPages(doc.pages))
}

// ExtractPageText returns the text of a single page (1-based).
func (e *Engine) ExtractPageText(path string, page int) (string, error) {
	const op = "extract_page_text"
	doc, err := e.probe(op, path)
	if err != nil {
		return "", err
	}
	if page < 1 || page > doc.pages {
		return "", newError(op, path, KindInvalid, fmt.Errorf("%w: page %d of %d", ErrPageRange, page, doc.pages))
	}
	texts, err := e.pagesText(op, doc, []int{page})
	if err != nil {
		return "", err
	}
	return texts[0], nil
}

// ExtractTextRange returns pages start through end inclusive. An end beyond
// the last page is clamped; a start beyond it yields no pages.
func (e *Engine) ExtractTextRange(path string, start, end int) ([]PageText, error) {
	const op = "extract_text_range"
	if start < 1 || end < start {
		return nil, invalidf(op, "%w: range %d-%d", ErrPageRange, start, end)
	}
	doc, err := e.probe(op, path)
	if err != nil {
		return nil, err
	}
	end = min(end, doc.pages)
	if start > end {
		return []PageText{}, nil
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	texts, err := e.pagesText(op, doc, pages)
	if err != nil {
		return nil, err
	}
	out := make([]PageText, len(pages))
	for i, p := range pages {
		out[i] = PageText{Page: p, Text: texts[i]}
	}
	return out, nil
}

// JoinPages formats per-page text as "--- Page N ---" blocks separated by a
// blank line. Pages that are blank after trimming are left out.
func JoinPages(pages []string) string {
	var blocks []string
	for i, t := range pages {
		if strings.TrimSpace(t) == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("--- Page %d ---\n%s", i+1, t))
	}
	return strings.Join(blocks, "\n\n")
}

// pagesText extracts the requested 1-based pages with layout analysis and
// falls back to the plain content-stream reader when that fails or finds no
// text at all.
func (e *Engine) pagesText(op string, doc *pdfFile, pages []int) ([]string, error) {
	texts, err := layoutText(doc.path, pages)
	if err == nil && !allBlank(texts) {
		e.logOp(op, doc.path, logrus.Fields{"pages": len(pages), "reader": "layout"})
		return normalize(texts), nil
	}
	if !e.cfg.textFallback {
		if err != nil {
			return nil, newError(op, doc.path, KindFormat, err)
		}
		return normalize(texts), nil
	}

	fallback, ferr := plainText(doc.path, pages)
	if ferr != nil {
		if err != nil {
			return nil, newError(op, doc.path, KindFormat, errors.Join(err, ferr))
		}
		// Layout analysis worked and found nothing; that answer stands.
		return normalize(texts), nil
	}
	e.logOp(op, doc.path, logrus.Fields{"pages": len(pages), "reader": "plain", "layout_error": err})
	return normalize(fallback), nil
}

// layoutText runs tabula's layout-aware extraction page by page.
func layoutText(path string, pages []int) ([]string, error) {
	out := make([]string, len(pages))
	err := guard(func() error {
		r, err := reader.Open(path)
		if err != nil {
			return err
		}
		defer r.Close()

		for i, p := range pages {
			text, _, err := tabula.FromReader(r).Pages(p).Text()
			if err != nil {
				return fmt.Errorf("page %d: %w", p, err)
			}
			out[i] = text
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// plainText reads the text operators of each page in content-stream order.
func plainText(path string, pages []int) ([]string, error) {
	out := make([]string, len(pages))
	err := guard(func() error {
		f, r, err := pdf.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		fonts := make(map[string]*pdf.Font)
		for i, n := range pages {
			p := r.Page(n)
			if p.V.IsNull() {
				continue
			}
			for _, name := range p.Fonts() {
				if _, ok := fonts[name]; !ok {
					font := p.Font(name)
					fonts[name] = &font
				}
			}
			text, err := p.GetPlainText(fonts)
			if err != nil {
				return fmt.Errorf("page %d: %w", n, err)
			}
			out[i] = text
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func normalize(texts []string) []string {
	for i, t := range texts {
		texts[i] = norm.NFC.String(t)
	}
	return texts
}

func allBlank(texts []string) bool {
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			return false
		}
	}
	return true
}

func allPages(n int) []int {
	pages := make([]int, n)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}
