package analysis

import (
	"fmt"
	"strings"
)

// Report holds the readability statistics for one document.
type Report struct {
	WordCount          int     `json:"word_count"`
	SentenceCount      int     `json:"sentence_count"`
	SyllableCount      int     `json:"syllable_count"`
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
}

// Analyze counts words, sentences and syllables in text and scores it.
// Scores are not clamped; very short or very dense text can land outside
// the usual 0-100 and grade ranges.
func Analyze(text string) (Report, error) {
	if strings.TrimSpace(text) == "" {
		return Report{}, ErrNothingToAnalyze
	}

	words := Words(text)
	if len(words) == 0 {
		// Punctuation only. Both formulas divide by the word count.
		return Report{}, ErrNothingToAnalyze
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	r := Report{
		WordCount:     len(words),
		SentenceCount: max(1, len(CountingSentences(text))),
		SyllableCount: syllables,
	}
	wordsPerSentence := float64(r.WordCount) / float64(r.SentenceCount)
	syllablesPerWord := float64(r.SyllableCount) / float64(r.WordCount)

	r.FleschReadingEase = 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	r.FleschKincaidGrade = 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59
	return r, nil
}

// String renders the report the way the display panels show it.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Word Count: %d\n", r.WordCount)
	fmt.Fprintf(&sb, "Sentence Count: %d\n", r.SentenceCount)
	fmt.Fprintf(&sb, "Syllable Count: %d\n", r.SyllableCount)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Flesch Reading Ease: %.2f (higher = easier)\n", r.FleschReadingEase)
	fmt.Fprintf(&sb, "Flesch-Kincaid Grade Level: %.2f", r.FleschKincaidGrade)
	return sb.String()
}
