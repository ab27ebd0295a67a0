package docproc

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

func TestLibraryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"wrong password", pdfcpu.ErrWrongPassword, KindPermission},
		{"wrapped wrong password", fmt.Errorf("decrypt: %w", pdfcpu.ErrWrongPassword), KindPermission},
		{"path mentioning passwords", &fs.PathError{Op: "open", Path: "/srv/passwords/out.pdf", Err: fs.ErrPermission}, KindWrite},
		{"message mentioning password", errors.New("xref: object \"password\" malformed"), KindFormat},
		{"other", errors.New("xref: corrupt"), KindFormat},
	}
	eng := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(eng.libraryError("op", "doc.pdf", tt.err)); got != tt.want {
				t.Errorf("kind = %v, want %v", got, tt.want)
			}
		})
	}
}
