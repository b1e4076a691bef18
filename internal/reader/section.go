package reader

const defaultSectionTitle = "Document"

// Section is one titled chapter of a structured document.
type Section struct {
	Title string
	Level int
	Text  string
}

// SectionExtractor is an optional interface for formats with chapter structure
type SectionExtractor interface {
	Sections(filename string) ([]Section, error)
}
