package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"textsum/internal/domain"
	"textsum/internal/service"
)

func testReport() service.Report {
	return service.Report{
		Document: domain.Document{Path: "doc.txt", Content: "One. Two. Three. Four."},
		Summary: domain.Summary{
			Text: "One. Four.",
			Sentences: []domain.Sentence{
				{Index: 0, Text: "One.", Score: 1.2},
				{Index: 3, Text: "Four.", Score: 0.9},
			},
			Stats: domain.Statistics{
				OriginalSentences: 4,
				SummarySentences:  2,
				OriginalWords:     4,
				SummaryWords:      2,
				CompressionRatio:  0.5,
			},
		},
	}
}

func TestRender(t *testing.T) {
	out := Render("doc.txt", testReport(), Options{ShowOriginal: true, Width: 60})
	assert.Contains(t, out, "Original text")
	assert.Contains(t, out, "Three.")
	assert.Contains(t, out, "Summary (2 sentences)")
	assert.Contains(t, out, "50.0%")

	out = Render("doc.txt", testReport(), Options{})
	assert.NotContains(t, out, "Original text")
}

func TestRenderWarning(t *testing.T) {
	r := testReport()
	r.Warning = "no sentences found"
	assert.Contains(t, Render("x", r, Options{}), "warning: no sentences found")
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "Compression: 50.0% | Words: 4 -> 2 | Sentences: 4 -> 2", Compact(testReport().Summary.Stats))
}

func TestExplain(t *testing.T) {
	all := []domain.Sentence{
		{Index: 0, Text: "One.", Score: 1.2},
		{Index: 1, Text: "Two.", Score: 0.1},
	}
	out := Explain(all, all[:1])
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "*"))
	assert.True(t, strings.HasPrefix(lines[2], " "))
}

func TestYAML(t *testing.T) {
	data, err := YAML([]service.Report{testReport()})
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "doc.txt", got[0]["path"])
	assert.Equal(t, []any{0, 3}, got[0]["sentences"])
	stats := got[0]["statistics"].(map[string]any)
	assert.Equal(t, 0.5, stats["compression_ratio"])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
