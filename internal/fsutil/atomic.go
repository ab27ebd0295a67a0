// Package fsutil writes files so that readers never observe a partial result.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

const filePerm = 0o644

// WriteError reports a filesystem failure while staging or publishing a file.
// Errors returned by the caller's callback are passed through unchanged.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("writing %s: %v", e.Path, e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// IsWriteError reports whether err came from staging or publishing a file.
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}

// pending creates the parent directories of path and a hidden temporary file
// beside it, so the final rename never crosses a filesystem.
func pending(path string) (*renameio.PendingFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}
	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(dir),
		renameio.WithPermissions(filePerm),
	)
	if err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}
	return pf, nil
}

// Replace stages a temporary file next to path, hands its name to produce,
// and renames it onto path only if produce succeeds. produce may write the
// file by name or recreate it. The temporary file is removed on every
// failure path, so path is either the complete new content or untouched.
func Replace(path string, produce func(tmp string) error) error {
	pf, err := pending(path)
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if err := produce(pf.Name()); err != nil {
		return err
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// WriteFile streams write's output to path atomically.
func WriteFile(path string, write func(w io.Writer) error) error {
	pf, err := pending(path)
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if err := write(pf); err != nil {
		return err
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// WriteBytes writes data to path atomically, keeping the permissions of an
// existing file.
func WriteBytes(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	err := renameio.WriteFile(path, data, filePerm, renameio.WithTempDir(filepath.Dir(path)))
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// CopyFile copies src to dst atomically.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	return WriteFile(dst, func(w io.Writer) error {
		if _, err := io.Copy(w, in); err != nil {
			return &WriteError{Path: dst, Err: err}
		}
		return nil
	})
}
