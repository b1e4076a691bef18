package reader

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractTextFromHTML(t *testing.T) {
	htmlContent := `
	<html>
		<head><title>Test</title><style>p { color: red; }</style></head>
		<body>
			<h1>Chapter 1</h1>
			<p>This is the <b>first</b> paragraph.</p>
			<p>
				This is the second paragraph
				with a newline.
			</p>
			<div>Some <span>nested</span> text.</div>
			<script>var skipped = true;</script>
		</body>
	</html>
	`

	want := "Test\n" +
		"Chapter 1\n" +
		"This is the first paragraph.\n" +
		"This is the second paragraph with a newline.\n" +
		"Some nested text."

	got := extractTextFromHTML(htmlContent)
	if got != want {
		t.Errorf("extractTextFromHTML() = %q, want %q", got, want)
	}
}

func TestParseNCXTitles(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/">
  <navMap>
    <navPoint id="p1" playOrder="1">
      <navLabel><text> Opening </text></navLabel>
      <content src="text/chap1.xhtml#start"/>
      <navPoint id="p2" playOrder="2">
        <navLabel><text>Inner</text></navLabel>
        <content src="text/chap1.xhtml#inner"/>
      </navPoint>
    </navPoint>
  </navMap>
</ncx>`)

	got := parseNCXTitles(data)
	for href, want := range map[string]string{
		"text/chap1.xhtml#start": "Opening",
		"text/chap1.xhtml":       "Opening",
		"chap1.xhtml":            "Opening",
		"text/chap1.xhtml#inner": "Inner",
	} {
		if got[href] != want {
			t.Errorf("title[%q] = %q, want %q", href, got[href], want)
		}
	}

	if len(parseNCXTitles([]byte("not xml"))) != 0 {
		t.Error("expected empty map for broken NCX")
	}
}

// writeEPUB builds a two chapter book with an NCX naming only the first.
func writeEPUB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.epub")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	files := []struct{ name, body string }{
		{"mimetype", "application/epub+zip"},
		{"META-INF/container.xml", `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`},
		{"OEBPS/content.opf", `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" version="2.0" unique-identifier="id">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>Fixture</dc:title>
  </metadata>
  <manifest>
    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>
    <item id="c1" href="chap1.xhtml" media-type="application/xhtml+xml"/>
    <item id="c2" href="chap2.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine toc="ncx">
    <itemref idref="c1"/>
    <itemref idref="c2"/>
  </spine>
</package>`},
		{"OEBPS/toc.ncx", `<?xml version="1.0"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/">
  <navMap>
    <navPoint id="p1" playOrder="1">
      <navLabel><text>The Beginning</text></navLabel>
      <content src="chap1.xhtml"/>
    </navPoint>
  </navMap>
</ncx>`},
		{"OEBPS/chap1.xhtml", `<html><body><h1>One</h1><p>It was a dark and stormy night.</p></body></html>`},
		{"OEBPS/chap2.xhtml", `<html><body><p>The end came quickly.</p></body></html>`},
	}
	for _, file := range files {
		w, err := zw.Create(file.name)
		if err != nil {
			t.Fatalf("zip Create: %v", err)
		}
		if _, err := w.Write([]byte(file.body)); err != nil {
			t.Fatalf("zip Write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip Close: %v", err)
	}
	return path
}

func TestEPUBExtract(t *testing.T) {
	path := writeEPUB(t)

	text, err := ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	want := "One\nIt was a dark and stormy night.\n\nThe end came quickly."
	if text != want {
		t.Errorf("ExtractText() = %q, want %q", text, want)
	}
}

func TestEPUBSections(t *testing.T) {
	path := writeEPUB(t)

	f := &EPUBFormat{}
	sections, err := f.Sections(path)
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Title != "The Beginning" {
		t.Errorf("section 0 title = %q, want NCX title", sections[0].Title)
	}
	if sections[1].Title != "Section 2" {
		t.Errorf("section 1 title = %q, want fallback title", sections[1].Title)
	}
	if !strings.Contains(sections[1].Text, "The end came quickly.") {
		t.Errorf("section 1 text = %q", sections[1].Text)
	}
}

func TestEPUBMissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.epub"))
	if err == nil || !strings.Contains(err.Error(), "failed to open epub") {
		t.Errorf("err = %v, want wrapped open error", err)
	}
}
