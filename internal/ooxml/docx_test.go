package ooxml

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"
)

func TestWrite_Parts(t *testing.T) {
	var buf bytes.Buffer
	doc := &Document{
		Title:   "Notes & Drafts",
		Creator: "Demo",
		Paragraphs: []Paragraph{
			{Style: StyleTitle, Text: "Notes"},
			{Text: "a < b"},
		},
	}
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip: %v", err)
	}
	files := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		files[f.Name] = string(data)
	}

	for _, name := range []string{"[Content_Types].xml", "word/document.xml", "docProps/core.xml"} {
		if _, ok := files[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}
	body := files["word/document.xml"]
	if !strings.Contains(body, `<w:pStyle w:val="Title"/>`) {
		t.Error("title style not written")
	}
	if !strings.Contains(body, "a &lt; b") {
		t.Errorf("text not escaped: %s", body)
	}
	if !strings.Contains(files["docProps/core.xml"], "Notes &amp; Drafts") {
		t.Error("core title not escaped")
	}
	if strings.Contains(files["docProps/core.xml"], "dcterms:created") {
		t.Error("zero Created should be omitted")
	}
}

func TestWrite_PropertiesAndStyles(t *testing.T) {
	var buf bytes.Buffer
	created := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.FixedZone("CET", 3600))
	err := Write(&buf, &Document{Title: "Report", Creator: "Docs Team", Created: created})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	read := func(name string) string {
		t.Helper()
		f, err := zr.Open(name)
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		return string(data)
	}

	core := read("docProps/core.xml")
	for _, want := range []string{
		"<dc:title>Report</dc:title>",
		"<dc:creator>Docs Team</dc:creator>",
		">2024-03-05T09:30:00Z</dcterms:created>",
	} {
		if !strings.Contains(core, want) {
			t.Errorf("core.xml missing %q", want)
		}
	}

	styles := read("word/styles.xml")
	for _, id := range []string{StyleTitle, StyleHeading1, StyleHeading2, StyleBullet} {
		if !strings.Contains(styles, `w:styleId="`+id+`"`) {
			t.Errorf("styles.xml does not define %s", id)
		}
	}
}
