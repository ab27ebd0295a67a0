package docproc

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

// Match is one occurrence of a search pattern.
type Match struct {
	Page  int    // 1-based page number
	Line  int    // 1-based line number within the page text
	Text  string // the whole line in NFKC form, trimmed
	Match string // the matched substring, always within Text
}

// Search finds every match of pattern on every line of every page of path.
//
// Patterns use backtracking regular expression syntax (lookarounds and
// backreferences are allowed) and match case-insensitively unless
// caseSensitive is set. Lines are compared in NFKC form, so ligatures and
// full-width characters in the PDF match their plain spellings.
func (e *Engine) Search(path, pattern string, caseSensitive bool) ([]Match, error) {
	const op = "search"
	re, err := e.compile(pattern, caseSensitive)
	if err != nil {
		return nil, newError(op, "", KindInvalid, err)
	}

	doc, err := e.probe(op, path)
	if err != nil {
		return nil, err
	}
	pages, err := e.pagesText(op, doc, allPages(doc.pages))
	if err != nil {
		return nil, err
	}

	var matches []Match
	for i, text := range pages {
		found, err := pageMatches(re, i+1, text)
		if err != nil {
			return nil, newError(op, path, KindInvalid, err)
		}
		matches = append(matches, found...)
	}

	e.logOp(op, path, logrus.Fields{"pattern": pattern, "matches": len(matches)})
	return matches, nil
}

// pageMatches searches each line of one page's text after NFKC
// normalisation.
func pageMatches(re *regexp2.Regexp, page int, text string) ([]Match, error) {
	var matches []Match
	for j, line := range splitLines(text) {
		line = strings.TrimSpace(norm.NFKC.String(line))
		found, err := findAll(re, line)
		if err != nil {
			return nil, fmt.Errorf("page %d line %d: %w", page, j+1, err)
		}
		for _, m := range found {
			matches = append(matches, Match{Page: page, Line: j + 1, Text: line, Match: m})
		}
	}
	return matches, nil
}

func (e *Engine) compile(pattern string, caseSensitive bool) (*regexp2.Regexp, error) {
	opts := regexp2.None
	if !caseSensitive {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalid, pattern, err)
	}
	if e.cfg.searchTimeout > 0 {
		re.MatchTimeout = e.cfg.searchTimeout
	}
	return re, nil
}

func findAll(re *regexp2.Regexp, s string) ([]string, error) {
	var out []string
	m, err := re.FindStringMatch(s)
	for m != nil && err == nil {
		out = append(out, m.String())
		m, err = re.FindNextMatch(m)
	}
	return out, err
}

// splitLines splits on \n, \r\n and \r. A trailing line break does not
// start an extra empty line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
