package demo

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/porticus-lab/go-docproc"
	"github.com/porticus-lab/go-docproc/internal/pdftest"
	"github.com/porticus-lab/go-docproc/render"
	"github.com/porticus-lab/go-docproc/report"
)

// fixturePrinter answers every print request with a small real PDF so the
// features can run without a browser.
type fixturePrinter struct {
	mu    sync.Mutex
	calls int
}

func (p *fixturePrinter) ConvertHTML(context.Context, string, *render.PageConfig) (*render.Result, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	doc := pdftest.New(
		[]string{"Annual Technology Report 2024", "Python remains popular.", "Efficiency rose 35%."},
		[]string{"Detailed Analysis", "Cloud spending grew 28%."},
	)
	doc.Title = "Annual Technology Report 2024"
	return render.NewResult(doc.Bytes()), nil
}

func (p *fixturePrinter) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func testConfig(t *testing.T, p report.Printer) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Engine:    docproc.New(),
		Builder:   report.NewBuilder(p),
		SampleDir: filepath.Join(dir, "sample_pdfs"),
		OutDir:    filepath.Join(dir, "outputs"),
		Now:       time.Date(2024, time.October, 17, 0, 0, 0, 0, time.UTC),
		Out:       &bytes.Buffer{},
	}
}

func TestParseFeature(t *testing.T) {
	for i, name := range Names() {
		f, err := ParseFeature(name)
		if err != nil {
			t.Fatalf("ParseFeature(%q): %v", name, err)
		}
		if f != All()[i] || f.String() != name {
			t.Errorf("ParseFeature(%q) = %v", name, f)
		}
	}
	if f, err := ParseFeature(" Docx "); err != nil || f != Docx {
		t.Errorf("ParseFeature(\" Docx \") = %v, %v", f, err)
	}
	for _, bad := range []string{"", "all", "ocr"} {
		if _, err := ParseFeature(bad); !errors.Is(err, ErrUnknownFeature) {
			t.Errorf("ParseFeature(%q) err = %v, want ErrUnknownFeature", bad, err)
		}
	}
}

func TestFeatureOrder(t *testing.T) {
	want := []string{"text", "table", "merge", "metadata", "search", "report", "encrypt", "rotate", "docx"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
	if got := Feature(42).String(); got != "Feature(42)" {
		t.Errorf("String of invalid feature = %q", got)
	}
}

func TestRunAll_ContinuesPastFailures(t *testing.T) {
	r := NewRunner(Config{}, Samples{})
	var ran []Feature
	r.exec = func(_ context.Context, f Feature) error {
		ran = append(ran, f)
		if f == Merge || f == Docx {
			return errors.New("boom")
		}
		return nil
	}

	s := r.RunAll(context.Background())
	if !reflect.DeepEqual(ran, All()) {
		t.Errorf("ran %v, want %v", ran, All())
	}
	if s.Passed() != 7 || s.Failed() != 2 || s.OK() {
		t.Errorf("passed %d failed %d", s.Passed(), s.Failed())
	}
	if s.Results[2].Feature != Merge || s.Results[2].Err == nil {
		t.Errorf("merge result = %+v", s.Results[2])
	}

	var buf bytes.Buffer
	s.Write(&buf)
	if !strings.Contains(buf.String(), "7 passed, 2 failed") {
		t.Errorf("summary output:\n%s", buf.String())
	}
}

func TestRunAll_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunner(Config{}, Samples{})
	var ran int
	r.exec = func(_ context.Context, f Feature) error {
		ran++
		if f == Table {
			cancel()
		}
		return nil
	}

	s := r.RunAll(ctx)
	if ran != 2 {
		t.Errorf("ran %d features after cancel, want 2", ran)
	}
	if len(s.Results) != len(All()) || s.Failed() != len(All())-2 {
		t.Errorf("results %d failed %d", len(s.Results), s.Failed())
	}
}

func TestRun_PropagatesFailure(t *testing.T) {
	r := NewRunner(Config{}, Samples{})
	cause := errors.New("disk full")
	r.exec = func(context.Context, Feature) error { return cause }

	err := r.Run(context.Background(), Encrypt)
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want %v", err, cause)
	}
	if !strings.HasPrefix(err.Error(), "encrypt: ") {
		t.Errorf("err = %q, want feature prefix", err)
	}
	if err := r.Run(context.Background(), Feature(0)); !errors.Is(err, ErrUnknownFeature) {
		t.Errorf("invalid feature: err = %v", err)
	}
}

func TestSetup_GeneratesOnlyMissingSamples(t *testing.T) {
	p := &fixturePrinter{}
	cfg := testConfig(t, p)
	ctx := context.Background()

	s, err := Setup(ctx, cfg)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if p.count() != 3 {
		t.Errorf("printed %d samples, want 3", p.count())
	}
	for _, path := range []string{s.Text, s.Tables, s.Glossary, s.Docx} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("sample missing: %v", err)
		}
	}

	if _, err := Setup(ctx, cfg); err != nil {
		t.Fatal(err)
	}
	if p.count() != 3 {
		t.Errorf("valid samples regenerated: %d prints", p.count())
	}

	if err := os.WriteFile(s.Tables, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Setup(ctx, cfg); err != nil {
		t.Fatal(err)
	}
	if p.count() != 4 {
		t.Errorf("corrupt sample: %d prints, want 4", p.count())
	}
}

func TestSetup_NoBuilder(t *testing.T) {
	cfg := testConfig(t, &fixturePrinter{})
	cfg.Builder = nil
	if _, err := Setup(context.Background(), cfg); err == nil {
		t.Error("Setup without a builder succeeded on an empty directory")
	}
}

func TestRunAll_EndToEnd(t *testing.T) {
	cfg := testConfig(t, &fixturePrinter{})
	ctx := context.Background()

	s, err := Setup(ctx, cfg)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	sum := NewRunner(cfg, s).RunAll(ctx)
	for _, res := range sum.Results {
		if res.Err != nil {
			t.Errorf("%s: %v", res.Feature, res.Err)
		}
	}

	for _, name := range []string{
		"extracted_text.txt",
		"extracted_tables.txt",
		"extracted_tables.xlsx",
		"merged.pdf",
		"split_pages/sample_1_page_1.pdf",
		"split_pages/sample_1_page_2.pdf",
		"sample2_p1.pdf",
		"professional_report.pdf",
		"encrypted.pdf",
		"decrypted.pdf",
		"rotated.pdf",
		"watermarked.pdf",
		"from_docx.pdf",
	} {
		if _, err := os.Stat(filepath.Join(cfg.OutDir, name)); err != nil {
			t.Errorf("artifact missing: %v", err)
		}
	}

	text, err := os.ReadFile(filepath.Join(cfg.OutDir, "extracted_text.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(text), "--- Page 1 ---\n") {
		t.Errorf("extracted_text.txt starts %q", truncate(string(text), 40))
	}

	eng := cfg.Engine
	merged, err := eng.PageCount(filepath.Join(cfg.OutDir, "merged.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if merged != 6 {
		t.Errorf("merged.pdf has %d pages, want 6", merged)
	}
	rots, err := eng.PageRotations(filepath.Join(cfg.OutDir, "rotated.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rots, []int{90, 0}) {
		t.Errorf("rotated.pdf rotations = %v", rots)
	}
	if _, err := eng.ExtractText(filepath.Join(cfg.OutDir, "encrypted.pdf")); !errors.Is(err, docproc.ErrEncrypted) {
		t.Errorf("encrypted.pdf readable without password: %v", err)
	}
}

func TestMerge_ClearsStaleSplitFiles(t *testing.T) {
	cfg := testConfig(t, &fixturePrinter{})
	ctx := context.Background()
	s, err := Setup(ctx, cfg)
	if err != nil {
		t.Fatal(err)
	}

	stale := filepath.Join(cfg.OutDir, "split_pages", "sample_1_page_9.pdf")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewRunner(cfg, s).Run(ctx, Merge); err != nil {
		t.Fatalf("Run(Merge): %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale split file survived")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("héllo", 2); got != "hé" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 10); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
}
