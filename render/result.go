package render

import (
	"io"

	"github.com/porticus-lab/go-docproc/internal/fsutil"
)

// Result holds one printed PDF. Its methods never modify the data, so they
// may be called any number of times.
type Result struct {
	data []byte
}

// NewResult wraps already-rendered PDF bytes, for example from a test
// double standing in for a [Converter].
func NewResult(data []byte) *Result {
	return &Result{data: data}
}

// Bytes returns the raw PDF content.
func (r *Result) Bytes() []byte {
	return r.data
}

// WriteTo writes the full PDF content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes the PDF to path. The file appears only once it is
// complete; an existing file is replaced.
func (r *Result) WriteToFile(path string) error {
	return fsutil.WriteBytes(path, r.data)
}

// Len returns the size of the PDF in bytes.
func (r *Result) Len() int {
	return len(r.data)
}
