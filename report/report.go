// Package report renders an analysis into markdown and saves it as a
// flat file under the configured reports directory.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"scout/agentlog"
	"scout/pipeline"
	"scout/search"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

type Writer struct {
	dir string
	log *agentlog.Logger

	// now is swappable in tests for stable file names.
	now func() time.Time
}

func NewWriter(dir string, log *agentlog.Logger) *Writer {
	return &Writer{dir: dir, log: log, now: time.Now}
}

// Write renders the report and persists it, returning the file path.
func (w *Writer) Write(res *pipeline.AnalysisResult) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s.md",
		slugify(res.Topic),
		w.now().Format("20060102_150405"),
		uuid.NewString()[:8],
	)
	path := filepath.Join(w.dir, name)

	if err := os.WriteFile(path, []byte(w.render(res)), 0644); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}

	w.log.Log("ReportWriter", "report saved", path)
	return path, nil
}

func (w *Writer) render(res *pipeline.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Research Report: %s\n\n", res.Topic)
	fmt.Fprintf(&b, "*Generated on %s*\n\n", w.now().Format("2006-01-02 15:04"))

	b.WriteString("## Overview\n\n")
	b.WriteString(res.Insights.Overview)
	b.WriteString("\n\n## Key Findings\n\n")
	b.WriteString(res.Insights.KeyFindings)

	if len(res.KeyPoints) > 0 {
		b.WriteString("\n\n## Key Points\n\n")
		for _, p := range res.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	if len(res.Keywords) > 0 {
		b.WriteString("\n## Keywords\n\n")
		b.WriteString(strings.Join(res.Keywords, ", "))
		b.WriteString("\n")
	}

	b.WriteString("\n## Implications\n\n")
	b.WriteString(res.Insights.Implications)
	b.WriteString("\n")

	b.WriteString(formatSources(res.Sources))

	return b.String()
}

func formatSources(sources []search.Result) string {
	if len(sources) == 0 {
		return "\n## Sources\n\nNo sources available\n"
	}

	var b strings.Builder
	b.WriteString("\n## Sources\n\n")
	for i, s := range sources {
		title := s.Title
		if title == "" {
			title = "Unknown"
		}
		fmt.Fprintf(&b, "%d. [%s](%s)", i+1, title, s.URL)
		if s.Score > 0 {
			fmt.Fprintf(&b, " (relevance %.2f)", s.Score)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func slugify(topic string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(topic), "_")
	return strings.Trim(slug, "_")
}
