// Package report lays out structured report content as a styled PDF.
//
// A [Spec] lists the cover text, sections, tables and summary. A [Builder]
// renders it into a fixed HTML template, with section bodies written in
// Markdown, and prints the page through a [Printer], normally a
// [render.Converter]:
//
//	conv, err := render.NewConverter(render.WithNoSandbox())
//	if err != nil {
//	    return err
//	}
//	defer conv.Close()
//
//	b := report.NewBuilder(conv)
//	err = b.Build(ctx, &report.Spec{
//	    Title:       "Annual Technology Report",
//	    Author:      "Research",
//	    GeneratedAt: time.Now(),
//	    Sections:    []report.Section{{Heading: "Overview", Body: "Cloud spend grew **28%**."}},
//	}, "report.pdf")
//
// Output depends only on the Spec; there is no hidden clock.
package report
