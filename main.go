//go:build !gui

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/metcalfc/skim/internal/analysis"
	"github.com/metcalfc/skim/internal/export"
	"github.com/metcalfc/skim/internal/log"
	"github.com/metcalfc/skim/internal/reader"
)

const (
	minSentences = 1
	maxSentences = 20
)

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5A56E0")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)
)

type panel int

const (
	documentPanel panel = iota
	summaryPanel
	statsPanel
	panelCount
)

var panelNames = [panelCount]string{"Document", "Summary", "Readability"}

type model struct {
	text     string
	n        int
	summary  string
	stats    string
	panel    panel
	savePath string

	status    string
	statusErr bool

	saving   bool
	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
}

func newModel(text string, n int, savePath string) model {
	input := textinput.New()
	input.Prompt = "Save summary to: "
	input.CharLimit = 4096

	m := model{
		text:     text,
		n:        max(minSentences, min(n, maxSentences)),
		savePath: savePath,
		input:    input,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.saving {
			return m.updateSave(msg)
		}

		switch msg.String() {
		case "s":
			m.summarize()
			return m, nil

		case "a":
			m.analyze()
			return m, nil

		case "+", "=":
			if m.n < maxSentences {
				m.n++
			}
			m.setInfo(fmt.Sprintf("Summary length: %d sentences", m.n))
			return m, nil

		case "-":
			if m.n > minSentences {
				m.n--
			}
			m.setInfo(fmt.Sprintf("Summary length: %d sentences", m.n))
			return m, nil

		case "w":
			if strings.TrimSpace(m.summary) == "" {
				m.report(export.ErrNothingToSave)
				return m, nil
			}
			m.saving = true
			m.input.SetValue(m.savePath)
			m.input.CursorEnd()
			return m, m.input.Focus()

		case "tab":
			m.show((m.panel + 1) % panelCount)
			return m, nil

		case "1", "2", "3":
			m.show(panel(msg.String()[0] - '1'))
			return m, nil

		case "q", "Q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.saving = false
		m.input.Blur()
		path, err := export.SaveSummary(m.input.Value(), m.summary)
		if err != nil {
			m.report(err)
			return m, nil
		}
		m.savePath = path
		m.setInfo("Summary saved to: " + path)
		return m, nil

	case "esc":
		m.saving = false
		m.input.Blur()
		m.status = ""
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) summarize() {
	summary, err := analysis.Summarize(m.text, m.n)
	if err != nil {
		m.report(err)
		return
	}
	m.summary = summary
	m.status = ""
	m.show(summaryPanel)
}

func (m *model) analyze() {
	r, err := analysis.Analyze(m.text)
	if err != nil {
		m.report(err)
		return
	}
	m.stats = r.String()
	m.status = ""
	m.show(statsPanel)
}

func (m *model) report(err error) {
	msg, info := userMessage(err)
	m.status = msg
	m.statusErr = !info
}

func (m *model) setInfo(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *model) show(p panel) {
	if p < 0 || p >= panelCount {
		return
	}
	m.panel = p
	m.refresh()
	m.viewport.GotoTop()
}

// refresh sizes the viewport to the window and loads the active panel.
func (m *model) refresh() {
	// 2 lines of header, 2 of footer
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-4)

	var content string
	switch m.panel {
	case documentPanel:
		content = m.text
	case summaryPanel:
		content = m.summary
		if content == "" {
			content = "No summary yet. Press S to summarize."
		}
	case statsPanel:
		content = m.stats
		if content == "" {
			content = "No statistics yet. Press A to analyze."
		}
	}
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.width).Render(content))
}

func (m model) View() string {
	var tabs []string
	for i, name := range panelNames {
		style := tabStyle
		if panel(i) == m.panel {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...) +
		statusStyle.Render(fmt.Sprintf("| Top %d sentences", m.n))

	var status string
	switch {
	case m.saving:
		status = m.input.View()
	case m.statusErr:
		status = errorStyle.Render("Error: " + m.status)
	case m.status != "":
		status = infoStyle.Render(m.status)
	}

	controls := controlsStyle.Render("S: summarize  A: analyze  +/-: length  W: save  TAB/1-3: panel  ↑/↓: scroll  Q: quit")

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(status)
	sb.WriteString("\n")
	sb.WriteString(controls)
	return sb.String()
}

type printOptions struct {
	n        int
	output   string
	asJSON   bool
	sections []reader.Section
}

type printResult struct {
	Summary     string           `json:"summary"`
	Readability *analysis.Report `json:"readability,omitempty"`
	Sections    []sectionReport  `json:"sections,omitempty"`
	SavedTo     string           `json:"saved_to,omitempty"`
}

// runPrint writes the summary and readability of text to w without
// starting the interactive UI.
func runPrint(w io.Writer, text string, opts printOptions) error {
	var res printResult

	summary, err := analysis.Summarize(text, opts.n)
	if err != nil {
		return err
	}
	res.Summary = summary

	r, analyzeErr := analysis.Analyze(text)
	if analyzeErr == nil {
		res.Readability = &r
	}
	res.Sections = analyzeSections(opts.sections)

	if opts.output != "" {
		path, err := export.SaveSummary(opts.output, summary)
		if err != nil {
			return err
		}
		res.SavedTo = path
	}

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(w, "Summary:\n%s\n", res.Summary)
	if res.Readability != nil {
		fmt.Fprintf(w, "\n%s\n", res.Readability)
	} else {
		msg, _ := userMessage(analyzeErr)
		fmt.Fprintf(w, "\n%s\n", msg)
	}
	for _, s := range res.Sections {
		indent := strings.Repeat("  ", s.Level)
		fmt.Fprintf(w, "\n%s%s: %d words, ease %.2f, grade %.2f\n",
			indent, s.Title,
			s.Readability.WordCount,
			s.Readability.FleschReadingEase,
			s.Readability.FleschKincaidGrade)
	}
	if res.SavedTo != "" {
		fmt.Fprintf(w, "\nSummary saved to: %s\n", res.SavedTo)
	}
	return nil
}

func main() {
	n := flag.Int("n", analysis.DefaultSentences, "Number of summary sentences")
	output := flag.String("o", "", "Save the summary to this path (default extension .txt)")
	printOnly := flag.Bool("print", false, "Print summary and readability instead of starting the UI")
	asJSON := flag.Bool("json", false, "With -print, write JSON")
	showSections := flag.Bool("sections", false, "With -print, score each chapter of a Markdown or EPUB file")
	verbose := flag.Bool("verbose", false, "Log diagnostics to stderr")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Skim - Summaries and Readability for Text Files\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  skim [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nFormats: %s\n", strings.Join(reader.SupportedFormats(), ", "))
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  skim essay.txt                   Open the interactive view\n")
		fmt.Fprintf(os.Stderr, "  skim -print -n 5 essay.txt       Print a five sentence summary\n")
		fmt.Fprintf(os.Stderr, "  skim -print -sections book.epub  Score every chapter\n")
		fmt.Fprintf(os.Stderr, "  cat essay.txt | skim -print -json\n")
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  S        Summarize\n")
		fmt.Fprintf(os.Stderr, "  A        Analyze readability\n")
		fmt.Fprintf(os.Stderr, "  +/-      More/fewer summary sentences\n")
		fmt.Fprintf(os.Stderr, "  W        Save summary\n")
		fmt.Fprintf(os.Stderr, "  TAB      Next panel\n")
		fmt.Fprintf(os.Stderr, "  Q        Quit\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("skim %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	logger := &log.Logger{Enabled: *verbose, W: os.Stderr}

	var text string
	var sourceFile string
	var sections []reader.Section

	if flag.NArg() > 0 {
		sourceFile = flag.Arg(0)
		var err error
		text, err = reader.ExtractText(sourceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to read file '%s': %v\n", sourceFile, err)
			os.Exit(1)
		}
		logger.Printf("loaded %s (%d bytes)", sourceFile, len(text))

		if *showSections {
			sections, err = reader.ExtractSections(sourceFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: Failed to read sections of '%s': %v\n", sourceFile, err)
				os.Exit(1)
			}
			logger.Printf("found %d sections", len(sections))
		}
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Error: No input provided. Provide a file or pipe text to stdin.")
			fmt.Fprintln(os.Stderr, "Try: skim -h")
			os.Exit(1)
		}

		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		text, err = reader.Decode(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		logger.Printf("read %d bytes from stdin", len(data))
	}

	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "Error: No text to read.")
		os.Exit(1)
	}

	if *printOnly {
		err := runPrint(os.Stdout, text, printOptions{
			n:        *n,
			output:   *output,
			asJSON:   *asJSON,
			sections: sections,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	savePath := *output
	if savePath == "" {
		savePath = defaultSavePath(sourceFile)
	}
	logger.Printf("summary will be saved to %s", savePath)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if sourceFile == "" {
		// stdin carried the document, so keys come from the terminal
		opts = append(opts, tea.WithInputTTY())
	}
	p := tea.NewProgram(newModel(text, *n, savePath), opts...)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
