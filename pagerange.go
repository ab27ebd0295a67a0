package docproc

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePageRange converts a page range expression into 1-based page numbers
// in the order given, without duplicates. Supported forms are "" (all
// pages), "3", "1-5" and comma-separated combinations such as "1,3,5-7".
func ParsePageRange(expr string, total int) ([]int, error) {
	if strings.TrimSpace(expr) == "" {
		return allPages(total), nil
	}

	var pages []int
	seen := make(map[int]bool)
	add := func(p int) {
		if !seen[p] {
			pages = append(pages, p)
			seen[p] = true
		}
	}

	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("%w: invalid page number %q", ErrInvalid, lo)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("%w: invalid page number %q", ErrInvalid, hi)
			}
			if start < 1 || end > total || start > end {
				return nil, fmt.Errorf("%w: %d-%d outside 1-%d", ErrPageRange, start, end, total)
			}
			for p := start; p <= end; p++ {
				add(p)
			}
			continue
		}

		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid page number %q", ErrInvalid, part)
		}
		if p < 1 || p > total {
			return nil, fmt.Errorf("%w: %d outside 1-%d", ErrPageRange, p, total)
		}
		add(p)
	}
	return pages, nil
}
