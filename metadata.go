package docproc

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Info is the document information and basic statistics of a PDF.
type Info struct {
	Pages        int
	SizeKB       float64 // file size in KiB, one decimal place
	Encrypted    bool
	Version      string
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationDate string // raw PDF date string, e.g. D:20240101120000Z
	ModDate      string
}

// Metadata reads the information dictionary and page count of path.
func (e *Engine) Metadata(path string) (*Info, error) {
	const op = "metadata"
	doc, err := e.probe(op, path)
	if err != nil {
		return nil, err
	}

	x := doc.ctx.XRefTable
	info := &Info{
		Pages:        doc.pages,
		SizeKB:       math.Round(float64(doc.size)/1024*10) / 10,
		Encrypted:    doc.encrypted,
		Version:      x.VersionString(),
		Title:        x.Title,
		Author:       x.Author,
		Subject:      x.Subject,
		Keywords:     x.Keywords,
		Creator:      x.Creator,
		Producer:     x.Producer,
		CreationDate: x.CreationDate,
		ModDate:      x.ModDate,
	}
	e.logOp(op, path, logrus.Fields{"pages": info.Pages})
	return info, nil
}
