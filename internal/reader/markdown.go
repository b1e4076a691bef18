package reader

import (
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownFormat implements Format for Markdown files.
type MarkdownFormat struct{}

func init() {
	Register(&MarkdownFormat{})
}

func (f *MarkdownFormat) Name() string         { return "Markdown" }
func (f *MarkdownFormat) Extensions() []string { return []string{".md", ".markdown"} }

// Extract returns the prose of a Markdown file, one block per paragraph.
// Code blocks and raw HTML are dropped.
func (f *MarkdownFormat) Extract(filename string) (string, error) {
	blocks, err := f.blocks(filename)
	if err != nil {
		return "", err
	}
	texts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		texts = append(texts, b.text)
	}
	return strings.Join(texts, "\n\n"), nil
}

// Sections splits a Markdown file at its headings.
func (f *MarkdownFormat) Sections(filename string) ([]Section, error) {
	blocks, err := f.blocks(filename)
	if err != nil {
		return nil, err
	}

	var sections []Section
	var current *Section
	var body []string

	flush := func() {
		if current != nil && len(body) > 0 {
			current.Text = strings.Join(body, "\n\n")
			sections = append(sections, *current)
		}
		body = nil
	}

	for _, b := range blocks {
		if b.level > 0 {
			flush()
			current = &Section{Title: b.text, Level: b.level - 1}
			continue
		}
		if current == nil {
			current = &Section{Title: defaultSectionTitle}
		}
		body = append(body, b.text)
	}
	flush()

	return sections, nil
}

// mdBlock is a paragraph of prose, or a heading when level > 0.
type mdBlock struct {
	level int
	text  string
}

func (f *MarkdownFormat) blocks(filename string) ([]mdBlock, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	src, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return parseMarkdown([]byte(src)), nil
}

func parseMarkdown(source []byte) []mdBlock {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []mdBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Heading:
			if t := plainText(n, source); t != "" {
				blocks = append(blocks, mdBlock{level: n.Level, text: t})
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			if t := plainText(n, source); t != "" {
				blocks = append(blocks, mdBlock{text: t})
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

// plainText flattens the inline content of a block node.
func plainText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(c.Value)
		case *ast.AutoLink:
			sb.Write(c.Label(source))
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
