//go:build gui

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/metcalfc/skim/internal/analysis"
	"github.com/metcalfc/skim/internal/export"
	"github.com/metcalfc/skim/internal/log"
	"github.com/metcalfc/skim/internal/reader"
)

const maxSentences = 20

func main() {
	n := flag.Int("n", analysis.DefaultSentences, "Number of summary sentences")
	verbose := flag.Bool("verbose", false, "Log diagnostics to stderr")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Skim - Summaries and Readability for Text Files (desktop)\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  skim [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("skim %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	logger := &log.Logger{Enabled: *verbose, W: os.Stderr}

	a := app.New()
	w := a.NewWindow("skim - File Reader + Summary + Readability")

	// showResult reports a core or I/O error the way the user should see it.
	showResult := func(err error) {
		msg, info := userMessage(err)
		if info {
			dialog.ShowInformation("Info", msg, w)
			return
		}
		dialog.ShowError(err, w)
	}

	input := widget.NewMultiLineEntry()
	input.Wrapping = fyne.TextWrapWord
	input.SetMinRowsVisible(12)

	summaryBox := widget.NewMultiLineEntry()
	summaryBox.Wrapping = fyne.TextWrapWord
	summaryBox.SetMinRowsVisible(8)

	statsLabel := widget.NewLabel("")

	var source string
	load := func(path string) {
		text, err := reader.ExtractText(path)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		source = path
		input.SetText(text)
		logger.Printf("loaded %s (%d bytes)", path, len(text))
	}

	loadButton := widget.NewButton("Load File", func() {
		d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if rc == nil {
				return
			}
			path := rc.URI().Path()
			rc.Close()
			load(path)
		}, w)
		d.SetFilter(storage.NewExtensionFileFilter(reader.Extensions()))
		d.Show()
	})

	sentences := max(1, min(*n, maxSentences))
	countLabel := widget.NewLabel(fmt.Sprintf("Top %d sentences", sentences))
	countSlider := widget.NewSlider(1, maxSentences)
	countSlider.Step = 1
	countSlider.SetValue(float64(sentences))
	countSlider.OnChanged = func(v float64) {
		sentences = int(v)
		countLabel.SetText(fmt.Sprintf("Top %d sentences", sentences))
	}

	summarizeButton := widget.NewButton("Generate Summary", func() {
		summary, err := analysis.Summarize(input.Text, sentences)
		if err != nil {
			showResult(err)
			return
		}
		summaryBox.SetText(summary)
	})

	saveButton := widget.NewButton("Save Summary", func() {
		content := strings.TrimSpace(summaryBox.Text)
		if content == "" {
			showResult(export.ErrNothingToSave)
			return
		}
		d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if wc == nil {
				return
			}
			path := wc.URI().Path()
			wc.Close()
			if filepath.Ext(path) == "" {
				// The dialog already created the bare name.
				os.Remove(path)
			}
			saved, err := export.SaveSummary(path, content)
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			logger.Printf("saved summary to %s", saved)
			dialog.ShowInformation("Saved", "Summary saved to:\n"+saved, w)
		}, w)
		d.SetFileName(filepath.Base(defaultSavePath(source)))
		d.SetFilter(storage.NewExtensionFileFilter([]string{export.DefaultExtension}))
		d.Show()
	})

	analyzeButton := widget.NewButton("Analyze Readability", func() {
		r, err := analysis.Analyze(input.Text)
		if err != nil {
			showResult(err)
			return
		}
		statsLabel.SetText(r.String())
	})

	content := container.NewVBox(
		loadButton,
		input,
		container.NewBorder(nil, nil, countLabel, summarizeButton, countSlider),
		summaryBox,
		saveButton,
		analyzeButton,
		statsLabel,
	)

	if flag.NArg() > 0 {
		load(flag.Arg(0))
	}

	w.Resize(fyne.NewSize(750, 650))
	w.SetContent(container.NewVScroll(content))
	w.ShowAndRun()
}
