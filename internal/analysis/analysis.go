// Package analysis implements the text pipeline behind skim: sentence
// segmentation, syllable estimation, extractive summaries and the Flesch
// readability formulas. Every function is pure and safe to call from any
// goroutine.
package analysis

import "errors"

// User-input conditions. Callers report these as informational messages
// rather than failures.
var (
	ErrNothingToSummarize = errors.New("no text to summarize")
	ErrNothingToAnalyze   = errors.New("no text to analyze")
)
