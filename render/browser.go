package render

import (
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
)

// resolveBrowser downloads a compatible Chromium binary if one is not
// already cached and returns the path to the executable. The binary is
// stored in ~/.cache/rod/browser (Unix) or %APPDATA%\rod\browser (Windows).
func resolveBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("render: downloading browser: %w", err)
	}
	return path, nil
}

// browserPath picks the executable for cfg: the explicit path, a downloaded
// Chromium, or "" to let chromedp search PATH.
func browserPath(cfg converterConfig, download func() (string, error)) (string, error) {
	if cfg.chromePath != "" || !cfg.autoDownload {
		return cfg.chromePath, nil
	}
	return download()
}
