package reader

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/taylorskalyo/goreader/epub"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// EPUBFormat implements Format for EPUB files.
type EPUBFormat struct{}

func init() {
	Register(&EPUBFormat{})
}

func (f *EPUBFormat) Name() string         { return "EPUB" }
func (f *EPUBFormat) Extensions() []string { return []string{".epub"} }
func (f *EPUBFormat) Extract(filename string) (string, error) {
	return ExtractTextFromEPUB(filename)
}

// ExtractTextFromEPUB extracts all text content from an EPUB file.
func ExtractTextFromEPUB(filename string) (string, error) {
	sections, err := epubSpine(filename, nil)
	if err != nil {
		return "", err
	}
	texts := make([]string, 0, len(sections))
	for _, s := range sections {
		texts = append(texts, s.Text)
	}
	return strings.Join(texts, "\n\n"), nil
}

// Sections returns one section per spine document, titled from the NCX
// table of contents where it names the document.
func (f *EPUBFormat) Sections(filename string) ([]Section, error) {
	return epubSpine(filename, func(book *epub.Rootfile) map[string]string {
		return buildTOCHrefMap(filename, book)
	})
}

// epubSpine reads every spine document in reading order, skipping ones
// that cannot be opened or carry no text.
func epubSpine(filename string, titles func(*epub.Rootfile) map[string]string) ([]Section, error) {
	rc, err := epub.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return nil, fmt.Errorf("no rootfiles found in epub")
	}

	book := rc.Rootfiles[0]
	tocByHref := map[string]string{}
	if titles != nil {
		tocByHref = titles(book)
	}

	var sections []Section
	for i, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}
		r, err := ref.Item.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			continue
		}

		text := extractTextFromHTML(string(data))
		if text == "" {
			continue
		}

		title := fmt.Sprintf("Section %d", i+1)
		if ref.Item.HREF != "" {
			if t, ok := tocByHref[ref.Item.HREF]; ok {
				title = t
			} else if t, ok := tocByHref[path.Base(ref.Item.HREF)]; ok {
				title = t
			}
		}
		sections = append(sections, Section{Title: title, Text: text})
	}

	return sections, nil
}

// blockElements end a line of text so that headings and paragraphs do not
// run into each other.
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Section: true, atom.Article: true,
	atom.Tr: true, atom.Title: true, atom.Pre: true,
}

func extractTextFromHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return ""
	}

	var out strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
				if out.Len() > 0 && !strings.HasSuffix(out.String(), "\n") {
					out.WriteString(" ")
				}
				out.WriteString(t)
			}
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.DataAtom] && out.Len() > 0 &&
			!strings.HasSuffix(out.String(), "\n") {
			out.WriteString("\n")
		}
	}
	walk(doc)
	return strings.TrimSpace(out.String())
}
