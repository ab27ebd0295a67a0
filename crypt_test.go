package docproc_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/porticus-lab/go-docproc"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := writeDoc(t, dir, "doc.pdf", threePages...)
	locked := filepath.Join(dir, "locked.pdf")
	plain := filepath.Join(dir, "plain.pdf")
	eng := newEngine(t)

	if _, err := eng.Encrypt(src, locked, "secret123", ""); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	_, err := eng.ExtractText(locked)
	if !errors.Is(err, docproc.ErrFormat) || !errors.Is(err, docproc.ErrEncrypted) {
		t.Errorf("ExtractText(encrypted): err = %v, want format error wrapping ErrEncrypted", err)
	}

	if _, err := eng.Decrypt(locked, plain, "secret123"); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	want, err := eng.ExtractText(src)
	if err != nil {
		t.Fatal(err)
	}
	got, err := eng.ExtractText(plain)
	if err != nil {
		t.Fatalf("ExtractText(decrypted): %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("decrypted has %d pages, want %d", len(got), len(want))
	}
	for i := range want {
		if strings.TrimSpace(got[i]) != strings.TrimSpace(want[i]) {
			t.Errorf("page %d: %q, want %q", i+1, got[i], want[i])
		}
	}

	info, err := eng.Metadata(plain)
	if err != nil {
		t.Fatal(err)
	}
	if info.Encrypted {
		t.Error("decrypted file still reports encryption")
	}
}

func TestDecrypt_WrongPassword(t *testing.T) {
	dir := t.TempDir()
	src := writeDoc(t, dir, "doc.pdf", threePages...)
	locked := filepath.Join(dir, "locked.pdf")
	out := filepath.Join(dir, "plain.pdf")
	eng := newEngine(t)

	if _, err := eng.Encrypt(src, locked, "secret123", "owner-pass"); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	_, err := eng.Decrypt(locked, out, "guess")
	if !errors.Is(err, docproc.ErrPermission) {
		t.Fatalf("err = %v, want ErrPermission", err)
	}
	assertNotExist(t, out)
}

func TestDecrypt_PlainFileIsCopied(t *testing.T) {
	dir := t.TempDir()
	src := writeDoc(t, dir, "doc.pdf", threePages...)
	out := filepath.Join(dir, "copy.pdf")

	if _, err := newEngine(t).Decrypt(src, out, "unused"); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	a, _ := os.ReadFile(src)
	b, _ := os.ReadFile(out)
	if !bytes.Equal(a, b) {
		t.Error("unencrypted input was not copied verbatim")
	}
}

func TestEncrypt_Errors(t *testing.T) {
	dir := t.TempDir()
	src := writeDoc(t, dir, "doc.pdf", threePages...)
	eng := newEngine(t)

	if _, err := eng.Encrypt(src, filepath.Join(dir, "x.pdf"), "", "owner"); !errors.Is(err, docproc.ErrInvalid) {
		t.Errorf("empty user password: err = %v, want ErrInvalid", err)
	}
	if _, err := eng.Encrypt(filepath.Join(dir, "nope.pdf"), filepath.Join(dir, "y.pdf"), "pw", ""); !errors.Is(err, docproc.ErrNotFound) {
		t.Errorf("missing input: err = %v, want ErrNotFound", err)
	}
}

func TestEncrypt_UnwritableOutputUnderPasswordsDir(t *testing.T) {
	dir := t.TempDir()
	src := writeDoc(t, dir, "doc.pdf", threePages...)
	blocker := filepath.Join(dir, "passwords")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := newEngine(t).Encrypt(src, filepath.Join(blocker, "locked.pdf"), "pw", "")
	if !errors.Is(err, docproc.ErrWrite) {
		t.Fatalf("err = %v, want ErrWrite", err)
	}
	if errors.Is(err, docproc.ErrPermission) {
		t.Error("write failure reported as a password error")
	}
}

func TestEncrypt_OverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	src := writeDoc(t, dir, "doc.pdf", threePages...)
	out := filepath.Join(dir, "locked.pdf")
	if err := os.WriteFile(out, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := newEngine(t).Encrypt(src, out, "pw", ""); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	data, _ := os.ReadFile(out)
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("stale output was not replaced")
	}
}
