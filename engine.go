package docproc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/sirupsen/logrus"

	"github.com/porticus-lab/go-docproc/internal/fsutil"
)

// Engine runs document operations. It holds configuration only; every
// method opens the files it needs and closes them before returning, so an
// Engine may be shared freely.
type Engine struct {
	cfg engineConfig
	log logrus.FieldLogger
}

var disableConfigDir sync.Once

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	// pdfcpu otherwise creates a configuration directory under the user's
	// home on first use.
	disableConfigDir.Do(api.DisableConfigDir)
	return &Engine{cfg: cfg, log: cfg.logger.WithField("component", "docproc")}
}

// pdfFile is what the probe learned about a PDF before an operation runs.
type pdfFile struct {
	path      string
	size      int64
	pages     int
	encrypted bool
	ctx       *model.Context
}

// probe checks that path names a readable, unencrypted (or empty-password)
// PDF and loads its cross-reference table.
func (e *Engine) probe(op, path string) (*pdfFile, error) {
	size, err := e.stat(op, path)
	if err != nil {
		return nil, err
	}
	ctx, err := e.readContext(path, "")
	if err != nil {
		if isPasswordError(err) {
			return nil, newError(op, path, KindFormat, fmt.Errorf("%w: password required", ErrEncrypted))
		}
		return nil, newError(op, path, KindFormat, err)
	}
	return &pdfFile{
		path:      path,
		size:      size,
		pages:     ctx.PageCount,
		encrypted: ctx.Encrypt != nil,
		ctx:       ctx,
	}, nil
}

// stat classifies a missing or non-PDF input and returns the file size.
func (e *Engine) stat(op, path string) (int64, error) {
	fi, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return 0, newError(op, path, KindNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return 0, newError(op, path, KindPermission, err)
	case err != nil:
		return 0, newError(op, path, KindFormat, err)
	case fi.IsDir():
		return 0, newError(op, path, KindFormat, errors.New("is a directory"))
	}
	if err := checkHeader(path); err != nil {
		return 0, newError(op, path, KindFormat, err)
	}
	return fi.Size(), nil
}

// checkHeader looks for the %PDF- marker in the first kilobyte, where
// readers are required to accept it.
func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, 1024)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if !bytes.Contains(head[:n], []byte("%PDF-")) {
		return errors.New("missing %PDF- header")
	}
	return nil
}

func (e *Engine) readContext(path, password string) (*model.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := e.cfg.pdfConfig()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}
	return api.ReadValidateAndOptimize(f, conf)
}

// isPasswordError reports whether pdfcpu rejected the password, which it
// does for both a missing and a wrong one.
func isPasswordError(err error) bool {
	return errors.Is(err, pdfcpu.ErrWrongPassword)
}

// produce publishes out atomically from write and classifies the failure.
func (e *Engine) produce(op, out string, write func(tmp string) error) error {
	err := fsutil.Replace(out, write)
	switch {
	case err == nil:
		return nil
	case KindOf(err) != 0:
		return err
	case fsutil.IsWriteError(err):
		return newError(op, out, KindWrite, err)
	default:
		return e.libraryError(op, out, err)
	}
}

// libraryError classifies an error returned by a document library.
func (e *Engine) libraryError(op, path string, err error) error {
	var pathErr *fs.PathError
	switch {
	case isPasswordError(err):
		return newError(op, path, KindPermission, err)
	case errors.As(err, &pathErr):
		return newError(op, path, KindWrite, err)
	default:
		return newError(op, path, KindFormat, err)
	}
}

func (e *Engine) logOp(op, path string, fields logrus.Fields) {
	entry := e.log.WithFields(logrus.Fields{"op": op, "path": path})
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Debug("document operation")
}

// guard converts a panic raised inside a third-party reader into an error.
// Some readers panic on malformed input instead of returning one.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reader panic: %v", r)
		}
	}()
	return fn()
}
