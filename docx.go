package docproc

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tsawler/tabula/docx"
	tmodel "github.com/tsawler/tabula/model"
	"golang.org/x/text/unicode/norm"
)

// DocxBlock is one paragraph of a Word document. Level is the heading level
// (1 for Title and Heading 1) or 0 for body text.
type DocxBlock struct {
	Level int
	Text  string
}

// IsHeading reports whether b is a heading.
func (b DocxBlock) IsHeading() bool { return b.Level > 0 }

// DocxContent is the text content of a Word document in reading order.
type DocxContent struct {
	Title  string
	Author string
	Blocks []DocxBlock
}

// Text joins the non-blank paragraphs with newlines.
func (c *DocxContent) Text() string {
	lines := make([]string, 0, len(c.Blocks))
	for _, b := range c.Blocks {
		if strings.TrimSpace(b.Text) != "" {
			lines = append(lines, b.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// ReadDocx reads the paragraphs and core properties of a .docx file.
func (e *Engine) ReadDocx(path string) (*DocxContent, error) {
	const op = "read_docx"
	fi, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, newError(op, path, KindNotFound, err)
	case err != nil:
		return nil, newError(op, path, KindFormat, err)
	case fi.IsDir():
		return nil, newError(op, path, KindFormat, errors.New("is a directory"))
	}

	var content *DocxContent
	err = guard(func() error {
		r, err := docx.Open(path)
		if err != nil {
			return err
		}
		defer r.Close()

		doc, err := r.Document()
		if err != nil {
			return err
		}
		content = &DocxContent{
			Title:  doc.Metadata.Title,
			Author: doc.Metadata.Author,
		}
		for _, page := range doc.Pages {
			for _, el := range page.Elements {
				switch v := el.(type) {
				case *tmodel.Heading:
					content.Blocks = append(content.Blocks, DocxBlock{Level: max(v.Level, 1), Text: norm.NFC.String(v.Text)})
				case *tmodel.Paragraph:
					content.Blocks = append(content.Blocks, DocxBlock{Text: norm.NFC.String(v.Text)})
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, newError(op, path, KindFormat, err)
	}

	e.logOp(op, path, logrus.Fields{"blocks": len(content.Blocks)})
	return content, nil
}

// DocxText returns the non-blank paragraphs of a .docx file joined by
// newlines.
func (e *Engine) DocxText(path string) (string, error) {
	c, err := e.ReadDocx(path)
	if err != nil {
		return "", err
	}
	return c.Text(), nil
}
