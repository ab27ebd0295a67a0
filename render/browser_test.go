package render

import (
	"errors"
	"testing"
)

func TestBrowserPath(t *testing.T) {
	downloaded := func() (string, error) { return "/cache/chromium", nil }

	tests := []struct {
		name string
		cfg  converterConfig
		want string
	}{
		{"default searches PATH", converterConfig{}, ""},
		{"explicit path", converterConfig{chromePath: "/usr/bin/chromium"}, "/usr/bin/chromium"},
		{"auto download", converterConfig{autoDownload: true}, "/cache/chromium"},
		{"explicit wins over download", converterConfig{chromePath: "/opt/chrome", autoDownload: true}, "/opt/chrome"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := browserPath(tt.cfg, downloaded)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("browserPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBrowserPath_DownloadError(t *testing.T) {
	boom := errors.New("offline")
	_, err := browserPath(converterConfig{autoDownload: true}, func() (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestWithLogger_NilRestoresDefault(t *testing.T) {
	cfg := defaultConfig()
	WithLogger(nil)(&cfg)
	if cfg.logger == nil {
		t.Fatal("logger is nil")
	}
}
