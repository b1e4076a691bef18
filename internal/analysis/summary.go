package analysis

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultSentences is the summary length used when the caller has no
// preference.
const DefaultSentences = 3

// Summarize returns the n longest summary candidates of text, joined with
// ". " and closed with a period. Equal-length sentences keep their order in
// the document. When no sentence qualifies the result is a lone ".".
func Summarize(text string, n int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrNothingToSummarize
	}

	candidates := SummarySentences(text)
	slices.SortStableFunc(candidates, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})

	n = max(0, min(n, len(candidates)))
	return strings.Join(candidates[:n], ". ") + ".", nil
}
