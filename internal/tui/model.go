package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textsum/internal/domain"
	"textsum/internal/report"
	"textsum/internal/service"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	SummarizeText(text string, req domain.SummaryRequest) (service.Report, error)
}

// Entry is a document shown in the TUI.
type Entry struct {
	Title  string
	Text   string
	report service.Report
}

const ratioStep = 0.1

// Model is the Bubble Tea model for the interactive summarizer.
type Model struct {
	service      SummaryPort
	input        textinput.Model
	viewport     viewport.Model
	entries      []Entry
	req          domain.SummaryRequest
	minChars     int
	cursor       int
	showOriginal bool
	status       string
	ready        bool
}

// New creates a new TUI model; initial entries are summarized immediately.
func New(svc SummaryPort, req domain.SummaryRequest, minChars int, initial ...Entry) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Paste text and press Enter to summarize"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	m := Model{
		service:  svc,
		input:    ti,
		viewport: vp,
		req:      req,
		minChars: minChars,
		status:   "Ready. Paste text to summarize.",
	}
	m.entries = append(m.entries, initial...)
	m.resummarize()
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + help, status, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrent())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			if n := utf8.RuneCountInString(text); n < m.minChars {
				m.status = fmt.Sprintf("Please enter at least %d characters (got %d).", m.minChars, n)
				return m, nil
			}
			m.entries = append(m.entries, Entry{Title: fmt.Sprintf("Input %d", len(m.entries)+1), Text: text})
			m.cursor = len(m.entries) - 1
			m.summarize(m.cursor)
			m.input.Reset()
			m.refresh()
			return m, nil
		case "down":
			if len(m.entries) > 0 {
				m.cursor = (m.cursor + 1) % len(m.entries)
				m.refresh()
				return m, nil
			}
		case "up":
			if len(m.entries) > 0 {
				m.cursor = (m.cursor - 1 + len(m.entries)) % len(m.entries)
				m.refresh()
				return m, nil
			}
		case "tab":
			m.showOriginal = !m.showOriginal
			m.refresh()
			return m, nil
		case "ctrl+k":
			m.setRatio(m.req.Ratio + ratioStep)
			return m, nil
		case "ctrl+j":
			m.setRatio(m.req.Ratio - ratioStep)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current summary.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Text Summarizer  ratio=%.1f  max=%d", m.req.Ratio, m.req.MaxSentences))
	help := helpStyle.Render("enter: summarize  up/down: documents  tab: original  ctrl+k/ctrl+j: ratio +/-  esc: quit")
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + help + "\n" + results + "\n" + input + "\n" + status
}

// Request returns the current summary budget.
func (m Model) Request() domain.SummaryRequest { return m.req }

// Entries returns the documents with their latest summaries.
func (m Model) Entries() []Entry { return m.entries }

// Report returns the latest report for the entry.
func (e Entry) Report() service.Report { return e.report }

func (m *Model) setRatio(r float64) {
	r = math.Round(r*10) / 10
	if r < ratioStep {
		r = ratioStep
	}
	if r > 1 {
		r = 1
	}
	m.req.Ratio = r
	m.resummarize()
}

func (m *Model) resummarize() {
	for i := range m.entries {
		m.summarize(i)
	}
	m.refresh()
}

func (m *Model) summarize(i int) {
	r, err := m.service.SummarizeText(m.entries[i].Text, m.req)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.entries[i].report = r
	m.status = report.Compact(r.Summary.Stats)
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderCurrent())
	m.viewport.GotoTop()
}

func (m Model) renderCurrent() string {
	if len(m.entries) == 0 {
		return "No documents yet."
	}
	e := m.entries[m.cursor]
	title := fmt.Sprintf("%s  (%d/%d)", e.Title, m.cursor+1, len(m.entries))
	return report.Render(title, e.report, report.Options{ShowOriginal: m.showOriginal, Width: m.viewport.Width - 2})
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
