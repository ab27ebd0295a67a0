package demo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFeature is returned by [ParseFeature] for names outside the
// fixed feature set.
var ErrUnknownFeature = errors.New("demo: unknown feature")

// Feature is one end-to-end demonstration.
type Feature int

// Features in the order RunAll executes them.
const (
	Text Feature = iota + 1
	Table
	Merge
	Metadata
	Search
	Report
	Encrypt
	Rotate
	Docx
)

var featureNames = [...]string{
	Text:     "text",
	Table:    "table",
	Merge:    "merge",
	Metadata: "metadata",
	Search:   "search",
	Report:   "report",
	Encrypt:  "encrypt",
	Rotate:   "rotate",
	Docx:     "docx",
}

var featureTitles = [...]string{
	Text:     "TEXT EXTRACTION",
	Table:    "TABLE EXTRACTION",
	Merge:    "MERGE & SPLIT",
	Metadata: "PDF METADATA",
	Search:   "SEARCH INSIDE PDF",
	Report:   "PROFESSIONAL REPORT GENERATION",
	Encrypt:  "ENCRYPT & DECRYPT",
	Rotate:   "ROTATE & WATERMARK",
	Docx:     "WORD (.docx) PROCESSING",
}

// All returns every feature in execution order.
func All() []Feature {
	return []Feature{Text, Table, Merge, Metadata, Search, Report, Encrypt, Rotate, Docx}
}

// String returns the command-line name of f.
func (f Feature) String() string {
	if f.valid() {
		return featureNames[f]
	}
	return fmt.Sprintf("Feature(%d)", int(f))
}

func (f Feature) valid() bool { return f >= Text && f <= Docx }

func (f Feature) title() string { return featureTitles[f] }

// ParseFeature maps a command-line name to its Feature, ignoring case.
func ParseFeature(name string) (Feature, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range All() {
		if featureNames[f] == n {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFeature, name, strings.Join(Names(), ", "))
}

// Names lists the command-line names of all features in order.
func Names() []string {
	out := make([]string, 0, len(featureNames)-1)
	for _, f := range All() {
		out = append(out, f.String())
	}
	return out
}
