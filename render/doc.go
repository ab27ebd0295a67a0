// Package render prints HTML to PDF with headless Chrome over the Chrome
// DevTools Protocol.
//
// Create a [Converter] once and reuse it; it keeps one browser process alive
// and opens a tab per conversion:
//
//	c, err := render.NewConverter(render.WithNoSandbox())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	res, err := c.ConvertHTML(ctx, "<h1>Hello</h1>", &render.PageConfig{
//	    Size:        render.Letter,
//	    Orientation: render.Landscape,
//	})
//
// Chrome or Chromium must be available in PATH, or use [WithAutoDownload] to
// fetch a compatible Chromium build on first use.
package render
