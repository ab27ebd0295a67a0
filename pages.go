package docproc

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/sirupsen/logrus"

	"github.com/porticus-lab/go-docproc/internal/fsutil"
)

// PageCount returns the number of pages in the PDF at path.
func (e *Engine) PageCount(path string) (int, error) {
	doc, err := e.probe("page_count", path)
	if err != nil {
		return 0, err
	}
	return doc.pages, nil
}

// PageRotations returns the effective /Rotate value of every page,
// normalised to 0, 90, 180 or 270. Inherited values are honoured.
func (e *Engine) PageRotations(path string) ([]int, error) {
	const op = "page_rotations"
	if _, err := e.probe(op, path); err != nil {
		return nil, err
	}

	var out []int
	err := guard(func() error {
		f, r, err := pdf.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		for i := 1; i <= r.NumPage(); i++ {
			out = append(out, normalizeDegrees(int(inheritedRotate(r.Page(i).V))))
		}
		return nil
	})
	if err != nil {
		return nil, newError(op, path, KindFormat, err)
	}
	return out, nil
}

func inheritedRotate(v pdf.Value) int64 {
	for ; !v.IsNull(); v = v.Key("Parent") {
		if rot := v.Key("Rotate"); !rot.IsNull() {
			return rot.Int64()
		}
	}
	return 0
}

// Merge concatenates inputs in order into out and returns the number of
// pages written.
func (e *Engine) Merge(inputs []string, out string) (int, error) {
	const op = "merge"
	if len(inputs) == 0 {
		return 0, invalidf(op, "no input files")
	}

	total := 0
	for _, in := range inputs {
		doc, err := e.probe(op, in)
		if err != nil {
			return 0, err
		}
		total += doc.pages
	}

	err := e.produce(op, out, func(tmp string) error {
		return api.MergeCreateFile(inputs, tmp, false, e.cfg.pdfConfig())
	})
	if err != nil {
		return 0, err
	}
	e.logOp(op, out, logrus.Fields{"inputs": len(inputs), "pages": total})
	return total, nil
}

// Split writes path into consecutive chunks of pagesPerChunk pages inside
// outDir and returns the written paths in page order. Chunks of one page are
// named <stem>_page_<n>.pdf, larger chunks <stem>_pages_<first>-<last>.pdf.
// If any chunk fails, the chunks already written by this call are removed
// and no paths are returned.
func (e *Engine) Split(path, outDir string, pagesPerChunk int) ([]string, error) {
	const op = "split"
	if pagesPerChunk < 1 {
		return nil, invalidf(op, "pages per chunk must be positive, got %d", pagesPerChunk)
	}
	doc, err := e.probe(op, path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, newError(op, outDir, KindWrite, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var written []string
	for start := 1; start <= doc.pages; start += pagesPerChunk {
		end := min(start+pagesPerChunk-1, doc.pages)

		name := fmt.Sprintf("%s_pages_%d-%d.pdf", stem, start, end)
		if pagesPerChunk == 1 {
			name = fmt.Sprintf("%s_page_%d.pdf", stem, start)
		}
		dst := filepath.Join(outDir, name)

		err := e.produce(op, dst, func(tmp string) error {
			return api.TrimFile(path, tmp, []string{selection(start, end)}, e.cfg.pdfConfig())
		})
		if err != nil {
			for _, w := range written {
				os.Remove(w)
			}
			return nil, err
		}
		written = append(written, dst)
	}

	e.logOp(op, path, logrus.Fields{"chunks": len(written), "out_dir": outDir})
	return written, nil
}

// ExtractRange writes pages start through end (inclusive, 1-based) of path
// to out. An end beyond the last page is clamped.
func (e *Engine) ExtractRange(path string, start, end int, out string) (string, error) {
	const op = "extract_range"
	if start < 1 || end < start {
		return "", invalidf(op, "%w: range %d-%d", ErrPageRange, start, end)
	}
	doc, err := e.probe(op, path)
	if err != nil {
		return "", err
	}
	if start > doc.pages {
		return "", newError(op, path, KindInvalid, fmt.Errorf("%w: page %d of %d", ErrPageRange, start, doc.pages))
	}
	end = min(end, doc.pages)

	err = e.produce(op, out, func(tmp string) error {
		return api.TrimFile(path, tmp, []string{selection(start, end)}, e.cfg.pdfConfig())
	})
	if err != nil {
		return "", err
	}
	e.logOp(op, path, logrus.Fields{"start": start, "end": end, "out": out})
	return out, nil
}

// Rotate turns the given pages (all pages when none are given) clockwise by
// degrees, which must be a multiple of 90, and writes the result to out.
// Rotation adds to any rotation a page already has.
func (e *Engine) Rotate(path, out string, degrees int, pages ...int) (string, error) {
	const op = "rotate"
	if degrees%90 != 0 {
		return "", invalidf(op, "rotation %d is not a multiple of 90", degrees)
	}
	doc, err := e.probe(op, path)
	if err != nil {
		return "", err
	}

	var sel []string
	for _, p := range pages {
		if p < 1 || p > doc.pages {
			return "", newError(op, path, KindInvalid, fmt.Errorf("%w: page %d of %d", ErrPageRange, p, doc.pages))
		}
		sel = append(sel, strconv.Itoa(p))
	}

	rotation := normalizeDegrees(degrees)
	err = e.produce(op, out, func(tmp string) error {
		if rotation == 0 {
			return fsutil.CopyFile(path, tmp)
		}
		return api.RotateFile(path, tmp, rotation, sel, e.cfg.pdfConfig())
	})
	if err != nil {
		return "", err
	}
	e.logOp(op, path, logrus.Fields{"degrees": rotation, "pages": pages, "out": out})
	return out, nil
}

func normalizeDegrees(d int) int {
	return ((d % 360) + 360) % 360
}

// selection formats an inclusive page span in pdfcpu's page selection syntax.
func selection(start, end int) string {
	if start == end {
		return strconv.Itoa(start)
	}
	return fmt.Sprintf("%d-%d", start, end)
}
