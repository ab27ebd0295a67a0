package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/porticus-lab/go-docproc"
	"github.com/porticus-lab/go-docproc/internal/fsutil"
)

func engineFor(cmd *cobra.Command) *docproc.Engine {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return docproc.New(docproc.WithLogger(newLogger(cmd.ErrOrStderr(), verbose)))
}

type pageResult struct {
	Page int    `json:"page"`
	Text string `json:"text"`
}

func newExtractCmd() *cobra.Command {
	var outputFile, pageRange, format string
	cmd := &cobra.Command{
		Use:   "extract [options] <file.pdf>",
		Short: "Extract plain text from a PDF file",
		Example: `  docproc extract document.pdf
  docproc extract -p 1-10 -f json document.pdf > out.json
  docproc extract -o extracted.txt document.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "json", "markdown":
			default:
				return fmt.Errorf("unknown format %q (want text, json or markdown)", format)
			}
			cmd.SilenceUsage = true

			eng := engineFor(cmd)
			pages, err := eng.ExtractText(args[0])
			if err != nil {
				return err
			}
			selected, err := docproc.ParsePageRange(pageRange, len(pages))
			if err != nil {
				return fmt.Errorf("invalid page range %q: %w", pageRange, err)
			}
			results := make([]pageResult, 0, len(selected))
			for _, p := range selected {
				results = append(results, pageResult{Page: p, Text: pages[p-1]})
			}

			write := func(w io.Writer) error { return writePages(w, format, results) }
			if outputFile == "" {
				return write(cmd.OutOrStdout())
			}
			return fsutil.WriteFile(outputFile, write)
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write output to file (default: stdout)")
	cmd.Flags().StringVarP(&pageRange, "pages", "p", "", `page range, e.g. "1", "1-5", "1,3,5" (default: all)`)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, markdown")
	return cmd
}

func writePages(w io.Writer, format string, results []pageResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
	case "markdown":
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "## Page %d\n\n%s\n\n", r.Page, r.Text); err != nil {
				return err
			}
		}
	default:
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(w, "\f") // form feed between pages
			}
			if _, err := fmt.Fprintln(w, r.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.pdf>",
		Short: "Display document metadata and page rotations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			eng := engineFor(cmd)
			info, err := eng.Metadata(args[0])
			if err != nil {
				return err
			}
			rotations, err := eng.PageRotations(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "File:      %s\n", args[0])
			fmt.Fprintf(w, "Version:   PDF-%s\n", info.Version)
			fmt.Fprintf(w, "Pages:     %d\n", info.Pages)
			fmt.Fprintf(w, "Size:      %.1f KB\n", info.SizeKB)
			fmt.Fprintf(w, "Encrypted: %t\n", info.Encrypted)
			for _, f := range []struct{ name, value string }{
				{"Title", info.Title},
				{"Author", info.Author},
				{"Subject", info.Subject},
				{"Keywords", info.Keywords},
				{"Creator", info.Creator},
				{"Producer", info.Producer},
				{"Created", info.CreationDate},
				{"Modified", info.ModDate},
			} {
				if f.value != "" {
					fmt.Fprintf(w, "%-10s %s\n", f.name+":", f.value)
				}
			}

			for i, r := range rotations {
				if r != 0 {
					fmt.Fprintf(w, "Page %d rotated %d°\n", i+1, r)
				}
			}
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	var ignoreCase bool
	cmd := &cobra.Command{
		Use:   "search [-i] <file.pdf> <pattern>",
		Short: "Print every line of a PDF that matches a regular expression",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			hits, err := engineFor(cmd).Search(args[0], args[1], !ignoreCase)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			lastPage, lastLine := 0, 0
			for _, h := range hits {
				if h.Page == lastPage && h.Line == lastLine {
					continue
				}
				lastPage, lastLine = h.Page, h.Line
				fmt.Fprintf(w, "%d:%d: %s\n", h.Page, h.Line, h.Text)
			}
			if len(hits) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no matches")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match without regard to case")
	return cmd
}
