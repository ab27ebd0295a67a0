package docproc

import (
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/sirupsen/logrus"
)

// Stamp appearance for text watermarks: large grey Helvetica on the page
// diagonal, translucent so the page stays readable.
const textWatermarkDesc = "fontname:Helvetica, points:48, rotation:45, opacity:0.25, fillcolor:#808080, scalefactor:0.8 rel"

// Watermark stamps text diagonally across every page of path and writes the
// result to out.
func (e *Engine) Watermark(path, out, text string) (string, error) {
	const op = "watermark"
	if strings.TrimSpace(text) == "" {
		return "", invalidf(op, "watermark text is empty")
	}
	if _, err := e.probe(op, path); err != nil {
		return "", err
	}

	err := e.produce(op, out, func(tmp string) error {
		return api.AddTextWatermarksFile(path, tmp, nil, true, text, textWatermarkDesc, e.cfg.pdfConfig())
	})
	if err != nil {
		return "", err
	}
	e.logOp(op, path, logrus.Fields{"out": out, "text": text})
	return out, nil
}

// WatermarkPDF overlays the first page of stamp onto every page of path and
// writes the result to out.
func (e *Engine) WatermarkPDF(path, stamp, out string) (string, error) {
	const op = "watermark_pdf"
	if _, err := e.probe(op, path); err != nil {
		return "", err
	}
	if _, err := e.probe(op, stamp); err != nil {
		return "", err
	}

	err := e.produce(op, out, func(tmp string) error {
		return api.AddPDFWatermarksFile(path, tmp, nil, true, stamp, "scalefactor:1 rel, rotation:0", e.cfg.pdfConfig())
	})
	if err != nil {
		return "", err
	}
	e.logOp(op, path, logrus.Fields{"out": out, "stamp": stamp})
	return out, nil
}
