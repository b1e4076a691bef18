package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/metcalfc/skim/internal/analysis"
	"github.com/metcalfc/skim/internal/export"
	"github.com/metcalfc/skim/internal/reader"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// userMessage turns an error from the core into text for the user. Empty
// input conditions are informational; everything else is shown verbatim
// as an error.
func userMessage(err error) (msg string, info bool) {
	switch {
	case errors.Is(err, analysis.ErrNothingToSummarize):
		return "No text to summarize.", true
	case errors.Is(err, analysis.ErrNothingToAnalyze):
		return "No text to analyze.", true
	case errors.Is(err, export.ErrNothingToSave):
		return "Nothing to save.", true
	}
	return err.Error(), false
}

// defaultSavePath suggests where to save the summary of source.
func defaultSavePath(source string) string {
	if source == "" {
		return "summary" + export.DefaultExtension
	}
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(filepath.Dir(source), base+".summary"+export.DefaultExtension)
}

// sectionReport is the readability of one section of a structured document.
type sectionReport struct {
	Title       string          `json:"title"`
	Level       int             `json:"level"`
	Readability analysis.Report `json:"readability"`
}

// analyzeSections scores every section that has words in it.
func analyzeSections(sections []reader.Section) []sectionReport {
	var out []sectionReport
	for _, s := range sections {
		r, err := analysis.Analyze(s.Text)
		if err != nil {
			continue
		}
		out = append(out, sectionReport{Title: s.Title, Level: s.Level, Readability: r})
	}
	return out
}
