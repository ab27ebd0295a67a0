package docproc_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/porticus-lab/go-docproc"
)

func TestSearch(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "three.pdf", threePages...)
	eng := newEngine(t)

	tests := []struct {
		name          string
		pattern       string
		caseSensitive bool
		want          []string
		wantPages     []int
	}{
		{"word", "Python", false, []string{"Python", "Python"}, []int{1, 1}},
		{"ignore case", "cloud", false, []string{"Cloud", "cloud"}, []int{2, 2}},
		{"case sensitive", "cloud", true, []string{"cloud"}, []int{2}},
		{"percentages", `\d+%`, false, []string{"48%", "12%"}, []int{1, 2}},
		{"lookahead", `\w+(?= computing)`, false, []string{"Cloud"}, []int{2}},
		{"no hits", "Kubernetes", false, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := eng.Search(path, tt.pattern, tt.caseSensitive)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			var got []string
			var pages []int
			for _, h := range hits {
				got = append(got, h.Match)
				pages = append(pages, h.Page)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("matches = %q, want %q", got, tt.want)
			}
			if !reflect.DeepEqual(pages, tt.wantPages) {
				t.Errorf("pages = %v, want %v", pages, tt.wantPages)
			}
		})
	}
}

func TestSearch_MatchCarriesLine(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "three.pdf", threePages...)

	hits, err := newEngine(t).Search(path, "48%", true)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].Text != "Python is used by 48% of developers." {
		t.Errorf("Text = %q", hits[0].Text)
	}
	if hits[0].Line < 1 {
		t.Errorf("Line = %d, want 1-based", hits[0].Line)
	}
}

func TestSearch_InvalidPattern(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "three.pdf", threePages...)
	eng := newEngine(t)

	_, err := eng.Search(path, "(unclosed", false)
	if !errors.Is(err, docproc.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
	if docproc.KindOf(err) != docproc.KindInvalid {
		t.Errorf("KindOf = %v, want invalid", docproc.KindOf(err))
	}

	// The pattern is checked before the file is opened.
	_, err = eng.Search(dir+"/missing.pdf", "[", false)
	if !errors.Is(err, docproc.ErrInvalid) {
		t.Errorf("missing file with bad pattern: err = %v, want ErrInvalid", err)
	}
}
