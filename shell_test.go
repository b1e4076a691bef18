package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/metcalfc/skim/internal/analysis"
	"github.com/metcalfc/skim/internal/export"
	"github.com/metcalfc/skim/internal/reader"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
		info     bool
	}{
		{"summarize", analysis.ErrNothingToSummarize, "No text to summarize.", true},
		{"analyze", analysis.ErrNothingToAnalyze, "No text to analyze.", true},
		{"save", export.ErrNothingToSave, "Nothing to save.", true},
		{"io", errors.New("open x.txt: permission denied"), "open x.txt: permission denied", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, info := userMessage(tt.err)
			if msg != tt.expected || info != tt.info {
				t.Errorf("userMessage(%v) = %q, %v, want %q, %v", tt.err, msg, info, tt.expected, tt.info)
			}
		})
	}
}

func TestDefaultSavePath(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"", "summary.txt"},
		{"notes.txt", "notes.summary.txt"},
		{filepath.Join("docs", "book.epub"), filepath.Join("docs", "book.summary.txt")},
		{"README", "README.summary.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := defaultSavePath(tt.source); got != tt.expected {
				t.Errorf("defaultSavePath(%q) = %q, want %q", tt.source, got, tt.expected)
			}
		})
	}
}

func TestAnalyzeSections(t *testing.T) {
	sections := []reader.Section{
		{Title: "One", Text: "Cat dog. Bird fish run."},
		{Title: "Blank", Text: "..."},
		{Title: "Two", Level: 1, Text: "Go."},
	}

	got := analyzeSections(sections)
	if len(got) != 2 {
		t.Fatalf("got %d sections, want 2: %+v", len(got), got)
	}
	if got[0].Title != "One" || got[0].Readability.WordCount != 5 {
		t.Errorf("section 0 = %+v", got[0])
	}
	if got[1].Title != "Two" || got[1].Level != 1 || got[1].Readability.WordCount != 1 {
		t.Errorf("section 1 = %+v", got[1])
	}
}
