package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinSummarySentenceLen is the trimmed length, in characters, a sentence
// must exceed to be a summary candidate.
const MinSummarySentenceLen = 20

var (
	delimiterRunRegex = regexp.MustCompile(`[.!?]+`)
	wordRegex         = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

func isDelimiter(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SummarySentences splits text on every single '.', '!' or '?' and returns
// the trimmed pieces longer than MinSummarySentenceLen characters.
// Abbreviations such as "Mr" or "Inc" fall out as short fragments.
func SummarySentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if !isDelimiter(r) {
			continue
		}
		sentences = appendCandidate(sentences, text[start:i])
		start = i + 1
	}
	return appendCandidate(sentences, text[start:])
}

func appendCandidate(sentences []string, piece string) []string {
	s := strings.TrimSpace(piece)
	if utf8.RuneCountInString(s) > MinSummarySentenceLen {
		sentences = append(sentences, s)
	}
	return sentences
}

// CountingSentences splits text on runs of delimiters, so "..." is a single
// boundary, and returns the pieces that are non-empty after trimming.
func CountingSentences(text string) []string {
	var sentences []string
	for _, piece := range delimiterRunRegex.Split(text, -1) {
		if s := strings.TrimSpace(piece); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Words returns every maximal run of letters, digits and underscores.
func Words(text string) []string {
	return wordRegex.FindAllString(text, -1)
}
