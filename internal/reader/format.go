package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format defines a file format reader for extracting text.
type Format interface {
	Name() string
	Extensions() []string
	Extract(filename string) (string, error)
}

var registry []Format

// Register adds a format reader to the registry.
func Register(f Format) {
	registry = append(registry, f)
}

func lookup(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				return f
			}
		}
	}
	return nil
}

// ExtractText extracts text from a file, using a registered format or plain text fallback.
func ExtractText(filename string) (string, error) {
	if f := lookup(filename); f != nil {
		return f.Extract(filename)
	}
	return readPlain(filename)
}

// ExtractSections splits a file into titled sections. Formats without
// structure come back as a single section titled "Document".
func ExtractSections(filename string) ([]Section, error) {
	if se, ok := lookup(filename).(SectionExtractor); ok {
		return se.Sections(filename)
	}
	text, err := ExtractText(filename)
	if err != nil {
		return nil, err
	}
	return []Section{{Title: defaultSectionTitle, Text: text}}, nil
}

// SupportedFormats returns registered format names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Name()+" ("+strings.Join(f.Extensions(), ", ")+")")
	}
	return out
}

// Extensions returns every registered extension, in registration order.
func Extensions() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Extensions()...)
	}
	return out
}

// PlainTextFormat implements Format for plain text files.
type PlainTextFormat struct{}

func init() {
	Register(&PlainTextFormat{})
}

func (f *PlainTextFormat) Name() string         { return "Text" }
func (f *PlainTextFormat) Extensions() []string { return []string{".txt", ".text"} }

func (f *PlainTextFormat) Extract(filename string) (string, error) {
	return readPlain(filename)
}

func readPlain(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	text, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}
	return text, nil
}
