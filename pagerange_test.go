package docproc_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/porticus-lab/go-docproc"
)

func TestParsePageRange(t *testing.T) {
	tests := []struct {
		expr    string
		total   int
		want    []int
		wantErr error
	}{
		{"", 3, []int{1, 2, 3}, nil},
		{"2", 3, []int{2}, nil},
		{"1-3", 5, []int{1, 2, 3}, nil},
		{"1,3,5-7", 10, []int{1, 3, 5, 6, 7}, nil},
		{" 4 , 1-2 ", 4, []int{4, 1, 2}, nil},
		{"2,1-3", 3, []int{2, 1, 3}, nil},
		{"0", 3, nil, docproc.ErrPageRange},
		{"4", 3, nil, docproc.ErrPageRange},
		{"3-1", 3, nil, docproc.ErrPageRange},
		{"2-9", 3, nil, docproc.ErrPageRange},
		{"x", 3, nil, docproc.ErrInvalid},
		{"1-y", 3, nil, docproc.ErrInvalid},
		{"1,,2", 3, nil, docproc.ErrInvalid},
	}
	for _, tt := range tests {
		got, err := docproc.ParsePageRange(tt.expr, tt.total)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParsePageRange(%q, %d) err = %v, want %v", tt.expr, tt.total, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePageRange(%q, %d): %v", tt.expr, tt.total, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParsePageRange(%q, %d) = %v, want %v", tt.expr, tt.total, got, tt.want)
		}
	}
}
