package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeMarkdown(t *testing.T, content string) string {
	t.Helper()
	mdFile := filepath.Join(t.TempDir(), "test.md")
	if err := os.WriteFile(mdFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return mdFile
}

func TestMarkdownExtract(t *testing.T) {
	mdFile := writeMarkdown(t, "# Title\n\n"+
		"This is *important* text with a [link](https://example.com).\n"+
		"It wraps onto a second line.\n\n"+
		"```go\nfmt.Println(\"skipped\")\n```\n\n"+
		"- first item\n- second item\n\n"+
		"<div>raw html</div>\n")

	f := &MarkdownFormat{}
	got, err := f.Extract(mdFile)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	want := "Title\n\n" +
		"This is important text with a link. It wraps onto a second line.\n\n" +
		"first item\n\nsecond item"
	if got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
	if strings.Contains(got, "skipped") || strings.Contains(got, "raw html") {
		t.Errorf("code or html leaked into text: %q", got)
	}
}

func TestMarkdownSections(t *testing.T) {
	mdFile := writeMarkdown(t, `# Chapter 1
First chapter content with some words.

## Details
Nested section content.

# Empty

# Chapter 3
Third and final chapter.
`)

	f := &MarkdownFormat{}
	sections, err := f.Sections(mdFile)
	if err != nil {
		t.Fatalf("Sections failed: %v", err)
	}

	expected := []Section{
		{Title: "Chapter 1", Level: 0, Text: "First chapter content with some words."},
		{Title: "Details", Level: 1, Text: "Nested section content."},
		{Title: "Chapter 3", Level: 0, Text: "Third and final chapter."},
	}
	if len(sections) != len(expected) {
		t.Fatalf("Expected %d sections, got %d: %+v", len(expected), len(sections), sections)
	}
	for i, s := range sections {
		if s != expected[i] {
			t.Errorf("Section %d: got %+v, want %+v", i, s, expected[i])
		}
	}
}

func TestMarkdownNoHeaders(t *testing.T) {
	mdFile := writeMarkdown(t, `This is just plain text.
No headers at all.

Just paragraphs.
`)

	f := &MarkdownFormat{}
	sections, err := f.Sections(mdFile)
	if err != nil {
		t.Fatalf("Sections failed: %v", err)
	}

	if len(sections) != 1 {
		t.Fatalf("Expected 1 default section, got %d", len(sections))
	}
	if sections[0].Title != "Document" {
		t.Errorf("Expected default title 'Document', got %q", sections[0].Title)
	}
	if sections[0].Text != "This is just plain text. No headers at all.\n\nJust paragraphs." {
		t.Errorf("unexpected text %q", sections[0].Text)
	}
}

func TestMarkdownViaRegistry(t *testing.T) {
	mdFile := writeMarkdown(t, "## Intro\n\nHello there.\n")

	text, err := ExtractText(mdFile)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "Intro\n\nHello there." {
		t.Errorf("ExtractText() = %q", text)
	}

	sections, err := ExtractSections(mdFile)
	if err != nil {
		t.Fatalf("ExtractSections: %v", err)
	}
	if len(sections) != 1 || sections[0].Title != "Intro" {
		t.Errorf("ExtractSections() = %+v", sections)
	}
}
