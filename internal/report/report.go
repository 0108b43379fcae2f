// Package report renders scan results as Markdown or JSON.
package report

import (
	"io"
	"sort"
	"time"

	"github.com/tos-network/logcheck/internal/domain"
)

// Report bundles everything a renderer needs.
type Report struct {
	Date    time.Time
	Summary domain.Summary
	Files   []domain.FileResult // sorted by finding count, descending
}

// Build assembles a Report from aggregated results. Files are sorted by
// finding count (ties broken by path) so renderers get a stable order.
func Build(summary domain.Summary, files []domain.FileResult) *Report {
	sorted := make([]domain.FileResult, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count() != sorted[j].Count() {
			return sorted[i].Count() > sorted[j].Count()
		}
		return sorted[i].Path < sorted[j].Path
	})

	return &Report{
		Date:    time.Now(),
		Summary: summary,
		Files:   sorted,
	}
}

// HasFindings returns true if the scan produced any findings.
func (r *Report) HasFindings() bool {
	return r.Summary.Total > 0
}

// HotPathFiles returns the files that contain hot-path findings,
// preserving the count-descending order.
func (r *Report) HotPathFiles() []domain.FileResult {
	var hot []domain.FileResult
	for _, fr := range r.Files {
		if fr.HasHotPath() {
			hot = append(hot, fr)
		}
	}
	return hot
}

// Findings returns every finding across all files, in file order.
func (r *Report) Findings() []domain.Finding {
	var all []domain.Finding
	for _, fr := range r.Files {
		all = append(all, fr.Findings...)
	}
	return all
}

// Format selects the output representation.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Renderer writes a Report to an output stream.
type Renderer interface {
	Render(w io.Writer, r *Report) error
}

// New returns the Renderer for the given format.
func New(f Format) Renderer {
	switch f {
	case FormatJSON:
		return &jsonRenderer{}
	default:
		return &markdownRenderer{}
	}
}
