package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/porticus-lab/go-docproc/render"
)

// ErrInvalidSpec is wrapped by errors reporting a malformed [Spec].
var ErrInvalidSpec = errors.New("report: invalid spec")

// Spec describes one report. The builder only reads it.
type Spec struct {
	Title    string
	Subtitle string
	Author   string

	// GeneratedAt is printed on the cover and in the footer. The zero time
	// prints no date, which keeps output reproducible.
	GeneratedAt time.Time

	// Metadata is shown as a name/value block after the cover, in order.
	Metadata []Field

	Sections []Section
	Tables   []Table

	// Summary is Markdown printed under a closing "Summary" heading.
	Summary string

	// PageSize defaults to A4.
	PageSize    render.PageSize
	Orientation render.Orientation

	// Plain drops the cover page and the running header and footer.
	Plain bool
}

// Field is one name/value line of the metadata block.
type Field struct {
	Name  string
	Value string
}

// Section is a block of prose under an optional heading.
type Section struct {
	Heading string
	Level   int    // 1 or 2; zero means 1
	Body    string // Markdown
	Bullets []string

	// Paragraphs are printed after Body as literal text, one <p> each.
	Paragraphs []string

	// PageBreakBefore starts the section on a new page.
	PageBreakBefore bool
}

// Table is a data table. It is printed only when it has both headers and
// rows; the heading and caption are printed regardless.
type Table struct {
	Heading string
	Headers []string
	Rows    [][]string
	Caption string
}

// Validate reports the first problem that would prevent s from rendering.
func (s *Spec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: title is empty", ErrInvalidSpec)
	}
	for i, sec := range s.Sections {
		if sec.Level < 0 || sec.Level > 2 {
			return fmt.Errorf("%w: section %d: level %d not in 1-2", ErrInvalidSpec, i+1, sec.Level)
		}
	}
	for i, t := range s.Tables {
		for j, row := range t.Rows {
			if len(row) > len(t.Headers) {
				return fmt.Errorf("%w: table %d row %d: %d cells for %d columns",
					ErrInvalidSpec, i+1, j+1, len(row), len(t.Headers))
			}
		}
	}
	return nil
}
