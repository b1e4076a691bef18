package analysis

import "strings"

const vowels = "aeiouy"

// CountSyllables estimates the syllables in word by counting vowel groups.
// Only the letters a-z survive cleaning; a word with none of them has zero
// syllables, anything else has at least one.
func CountSyllables(word string) int {
	cleaned := clean(word)
	if len(cleaned) == 0 {
		return 0
	}

	count := 0
	if isVowel(cleaned[0]) {
		count++
	}
	for i := 1; i < len(cleaned); i++ {
		if isVowel(cleaned[i]) && !isVowel(cleaned[i-1]) {
			count++
		}
	}

	// silent e
	if strings.HasSuffix(cleaned, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func clean(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isVowel(c byte) bool {
	return strings.IndexByte(vowels, c) >= 0
}
