package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/porticus-lab/go-docproc"
	"github.com/porticus-lab/go-docproc/internal/demo"
	"github.com/porticus-lab/go-docproc/internal/pdftest"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func fixture(t *testing.T) string {
	t.Helper()
	doc := pdftest.New(
		[]string{"Introduction to Python", "Python is used by 48% of developers."},
		[]string{"Cloud computing", "Adoption grew by 12% in the cloud segment."},
	)
	doc.Title = "Quarterly Report"
	doc.Pages[1].Rotate = 90
	return pdftest.Write(t, t.TempDir(), "doc.pdf", doc)
}

func TestUnknownFeatureTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "outputs")
	samples := filepath.Join(dir, "samples")

	_, _, err := execute(t, "--feature", "ocr", "--out", out, "--samples", samples)
	if !errors.Is(err, demo.ErrUnknownFeature) {
		t.Fatalf("err = %v, want ErrUnknownFeature", err)
	}
	for _, p := range []string{out, samples} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s was created", p)
		}
	}
}

func TestUnknownPaperTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	samples := filepath.Join(dir, "samples")

	_, _, err := execute(t, "--paper", "B7", "--samples", samples, "--out", filepath.Join(dir, "o"))
	if err == nil {
		t.Fatal("unknown paper size accepted")
	}
	if _, err := os.Stat(samples); !os.IsNotExist(err) {
		t.Error("samples directory was created")
	}
}

func TestExtract(t *testing.T) {
	path := fixture(t)

	out, _, err := execute(t, "extract", path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(out, "Introduction to Python") || !strings.Contains(out, "\f") {
		t.Errorf("text output = %q", out)
	}

	out, _, err = execute(t, "extract", "-p", "2", "-f", "json", path)
	if err != nil {
		t.Fatalf("extract json: %v", err)
	}
	var pages []pageResult
	if err := json.Unmarshal([]byte(out), &pages); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if len(pages) != 1 || pages[0].Page != 2 || !strings.Contains(pages[0].Text, "Cloud") {
		t.Errorf("json pages = %+v", pages)
	}

	out, _, err = execute(t, "extract", "-f", "markdown", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "## Page 1\n\n") || !strings.Contains(out, "## Page 2") {
		t.Errorf("markdown output = %q", out)
	}
}

func TestExtract_ToFile(t *testing.T) {
	path := fixture(t)
	dst := filepath.Join(t.TempDir(), "nested", "out.txt")

	out, _, err := execute(t, "extract", "-o", dst, path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Cloud computing") {
		t.Errorf("file = %q", data)
	}
}

func TestExtract_Errors(t *testing.T) {
	path := fixture(t)

	if _, _, err := execute(t, "extract", "-f", "yaml", path); err == nil {
		t.Error("unknown format accepted")
	}
	if _, _, err := execute(t, "extract", "-p", "5", path); !errors.Is(err, docproc.ErrPageRange) {
		t.Errorf("page 5: err = %v, want ErrPageRange", err)
	}
	if _, _, err := execute(t, "extract", filepath.Join(t.TempDir(), "none.pdf")); !errors.Is(err, docproc.ErrNotFound) {
		t.Errorf("missing file: err = %v, want ErrNotFound", err)
	}
	if _, _, err := execute(t, "extract"); err == nil {
		t.Error("missing argument accepted")
	}
}

func TestInfo(t *testing.T) {
	out, _, err := execute(t, "info", fixture(t))
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"Pages:     2", "Title:     Quarterly Report", "Page 2 rotated 90°", "Encrypted: false"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestSearch(t *testing.T) {
	path := fixture(t)

	out, _, err := execute(t, "search", path, "cloud")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("case-sensitive search printed %d lines:\n%s", got, out)
	}

	out, _, err = execute(t, "search", "-i", path, "cloud")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "2:1: Cloud computing") {
		t.Errorf("ignore-case output:\n%s", out)
	}

	_, errOut, err := execute(t, "search", path, "Kubernetes")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "no matches") {
		t.Errorf("stderr = %q", errOut)
	}

	if _, _, err := execute(t, "search", path, "("); !errors.Is(err, docproc.ErrInvalid) {
		t.Errorf("bad pattern: err = %v", err)
	}
}
