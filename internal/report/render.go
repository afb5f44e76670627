package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"textsum/internal/domain"
	"textsum/internal/service"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Options controls what Render includes.
type Options struct {
	ShowOriginal bool
	Width        int
}

// Render formats a report for the terminal.
func Render(title string, r service.Report, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	body := lipgloss.NewStyle().Width(width - 4)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if r.Warning != "" {
		b.WriteString(warnStyle.Render("warning: " + r.Warning))
		b.WriteString("\n")
	}
	if opts.ShowOriginal {
		b.WriteString(sectionStyle.Render("Original text"))
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(body.Render(strings.TrimSpace(r.Document.Content))))
		b.WriteString("\n")
	}
	b.WriteString(sectionStyle.Render(fmt.Sprintf("Summary (%d sentences)", r.Summary.Stats.SummarySentences)))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(body.Render(r.Summary.Text)))
	b.WriteString("\n")
	b.WriteString(Statistics(r.Summary.Stats))
	return b.String()
}

// Statistics renders the compression statistics block.
func Statistics(st domain.Statistics) string {
	rows := [][2]string{
		{"Original sentences", fmt.Sprint(st.OriginalSentences)},
		{"Summary sentences", fmt.Sprint(st.SummarySentences)},
		{"Original words", fmt.Sprint(st.OriginalWords)},
		{"Summary words", fmt.Sprint(st.SummaryWords)},
		{"Compression", fmt.Sprintf("%.1f%%", st.CompressionPercent())},
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-20s", row[0]+":")))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	return b.String()
}

// Compact renders a one-line summary of the statistics.
func Compact(st domain.Statistics) string {
	return fmt.Sprintf("Compression: %.1f%% | Words: %d -> %d | Sentences: %d -> %d",
		st.CompressionPercent(), st.OriginalWords, st.SummaryWords, st.OriginalSentences, st.SummarySentences)
}

// Explain renders a per-sentence score table; selected sentences are marked with '*'.
func Explain(sentences []domain.Sentence, selected []domain.Sentence) string {
	picked := make(map[int]bool, len(selected))
	for _, s := range selected {
		picked[s.Index] = true
	}
	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-2s %4s %6s %6s %6s %6s %5s %5s %5s  %s",
		"", "#", "total", "rel", "pos", "len", "num", "prop", "emph", "sentence")))
	b.WriteString("\n")
	for _, s := range sentences {
		mark := " "
		if picked[s.Index] {
			mark = "*"
		}
		bd := s.Breakdown
		fmt.Fprintf(&b, "%-2s %4d %6.3f %6.3f %6.3f %6.3f %5.2f %5.2f %5.2f  %s\n",
			mark, s.Index, s.Score, bd.Relevance, bd.Position, bd.Length, bd.Numeric, bd.ProperNoun, bd.Emphasis, truncate(s.Text, 60))
	}
	return b.String()
}

type yamlReport struct {
	Path      string            `yaml:"path,omitempty"`
	Warning   string            `yaml:"warning,omitempty"`
	Summary   string            `yaml:"summary"`
	Sentences []int             `yaml:"sentences"`
	Stats     domain.Statistics `yaml:"statistics"`
}

// YAML renders reports as a YAML document.
func YAML(reports []service.Report) ([]byte, error) {
	out := make([]yamlReport, len(reports))
	for i, r := range reports {
		idx := make([]int, len(r.Summary.Sentences))
		for j, s := range r.Summary.Sentences {
			idx[j] = s.Index
		}
		out[i] = yamlReport{
			Path:      r.Document.Path,
			Warning:   r.Warning,
			Summary:   r.Summary.Text,
			Sentences: idx,
			Stats:     r.Summary.Stats,
		}
	}
	return yaml.Marshal(out)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
