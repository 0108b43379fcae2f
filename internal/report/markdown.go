package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tos-network/logcheck/internal/domain"
)

const (
	maxHotPathFiles    = 20
	maxListedFiles     = 50
	maxDetailedFiles   = 10
	maxDetailsPerFile  = 15
	maxDetailedContent = 100
)

type markdownRenderer struct{}

func (mr *markdownRenderer) Render(w io.Writer, r *Report) error {
	var b strings.Builder

	mr.writeHeader(&b, r)
	mr.writeSummary(&b, r)
	mr.writeByLevel(&b, r)
	mr.writeByModule(&b, r)
	mr.writeHotPathFiles(&b, r)
	mr.writeTopFiles(&b, r)
	mr.writeDetails(&b, r)
	mr.writeFixPattern(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

func (mr *markdownRenderer) writeHeader(b *strings.Builder, r *Report) {
	fmt.Fprintf(b, "# Log Optimization Check Report\n\n")
	fmt.Fprintf(b, "**Date**: %s\n", r.Date.Format("2006-01-02"))
	if r.HasFindings() {
		fmt.Fprintf(b, "**Status**: ⚠️ **%d unguarded log statements found**\n", r.Summary.Total)
	} else {
		fmt.Fprintf(b, "**Status**: ✅ All logs guarded\n")
	}
	fmt.Fprintf(b, "\n---\n\n")
}

func (mr *markdownRenderer) writeSummary(b *strings.Builder, r *Report) {
	s := r.Summary
	fmt.Fprintf(b, "## Executive Summary\n\n")
	fmt.Fprintf(b, "| Metric | Value |\n")
	fmt.Fprintf(b, "|--------|-------|\n")
	fmt.Fprintf(b, "| **Total Unguarded Logs** | %d |\n", s.Total)
	fmt.Fprintf(b, "| **Files Affected** | %d |\n", s.Files)
	fmt.Fprintf(b, "| **Hot Path Logs** | %d |\n", s.HotPath)
	fmt.Fprintf(b, "| **Test Code (can skip)** | %d |\n", s.Test)
	fmt.Fprintf(b, "| **Production Code** | %d |\n", s.Production)
	fmt.Fprintf(b, "\n")
}

func priorityLabel(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return "🔴 **Critical**"
	case domain.PriorityMedium:
		return "🟡 Medium"
	default:
		return "🟢 Low"
	}
}

func (mr *markdownRenderer) writeByLevel(b *strings.Builder, r *Report) {
	fmt.Fprintf(b, "### By Log Level (Priority)\n\n")
	fmt.Fprintf(b, "| Level | Count | Priority | Reason |\n")
	fmt.Fprintf(b, "|-------|-------|----------|--------|\n")
	for _, level := range domain.Levels {
		fmt.Fprintf(b, "| `%s!` | %d | %s | %s |\n",
			level, r.Summary.ByLevel[level], priorityLabel(level.FixPriority()), level.Reason())
	}
	fmt.Fprintf(b, "\n")
}

func (mr *markdownRenderer) writeByModule(b *strings.Builder, r *Report) {
	fmt.Fprintf(b, "---\n\n## By Module\n\n")
	fmt.Fprintf(b, "| Module | Count |\n")
	fmt.Fprintf(b, "|--------|-------|\n")

	type moduleCount struct {
		module string
		count  int
	}
	modules := make([]moduleCount, 0, len(r.Summary.ByModule))
	for module, count := range r.Summary.ByModule {
		modules = append(modules, moduleCount{module, count})
	}
	sort.Slice(modules, func(i, j int) bool {
		if modules[i].count != modules[j].count {
			return modules[i].count > modules[j].count
		}
		return modules[i].module < modules[j].module
	})

	for _, mc := range modules {
		fmt.Fprintf(b, "| `%s` | %d |\n", mc.module, mc.count)
	}
	fmt.Fprintf(b, "\n")
}

func (mr *markdownRenderer) writeHotPathFiles(b *strings.Builder, r *Report) {
	hot := r.HotPathFiles()
	if len(hot) == 0 {
		return
	}

	fmt.Fprintf(b, "---\n\n## Critical Hot Path Files\n\n")
	fmt.Fprintf(b, "These files are in consensus/network hot paths and should be prioritized:\n\n")
	fmt.Fprintf(b, "| File | Unguarded | trace | debug | info | warn | error |\n")
	fmt.Fprintf(b, "|------|-----------|-------|-------|------|------|-------|\n")

	if len(hot) > maxHotPathFiles {
		hot = hot[:maxHotPathFiles]
	}
	for _, fr := range hot {
		byLevel := fr.ByLevel()
		fmt.Fprintf(b, "| `%s` | %d | %d | %d | %d | %d | %d |\n",
			fr.Path, fr.Count(),
			byLevel[domain.LevelTrace], byLevel[domain.LevelDebug],
			byLevel[domain.LevelInfo], byLevel[domain.LevelWarn],
			byLevel[domain.LevelError])
	}
	fmt.Fprintf(b, "\n")
}

func (mr *markdownRenderer) writeTopFiles(b *strings.Builder, r *Report) {
	if len(r.Files) == 0 {
		return
	}

	fmt.Fprintf(b, "---\n\n## All Files (Sorted by Count)\n\n```\n")
	files := r.Files
	if len(files) > maxListedFiles {
		files = files[:maxListedFiles]
	}
	for _, fr := range files {
		fmt.Fprintf(b, "%-70s %4d\n", fr.Path, fr.Count())
	}
	fmt.Fprintf(b, "```\n\n")
}

func (mr *markdownRenderer) writeDetails(b *strings.Builder, r *Report) {
	hot := r.HotPathFiles()
	if len(hot) == 0 {
		return
	}

	fmt.Fprintf(b, "---\n\n## Detailed Locations (Hot Path Files)\n\n")
	if len(hot) > maxDetailedFiles {
		hot = hot[:maxDetailedFiles]
	}
	for _, fr := range hot {
		fmt.Fprintf(b, "### `%s` (%d logs)\n\n```rust\n", fr.Path, fr.Count())
		findings := fr.Findings
		if len(findings) > maxDetailsPerFile {
			findings = findings[:maxDetailsPerFile]
		}
		for _, f := range findings {
			content := clip(strings.ReplaceAll(f.Content, "\n", " "), maxDetailedContent)
			fmt.Fprintf(b, "// %s:%d\n", f.File, f.Line)
			fmt.Fprintf(b, "// %s! - %s\n", f.Level, content)
		}
		if fr.Count() > maxDetailsPerFile {
			fmt.Fprintf(b, "// ... and %d more\n", fr.Count()-maxDetailsPerFile)
		}
		fmt.Fprintf(b, "```\n\n")
	}
}

// clip cuts s to at most n bytes without splitting a rune.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (mr *markdownRenderer) writeFixPattern(b *strings.Builder) {
	fmt.Fprintf(b, "---\n\n## How to Fix\n\n```rust\n")
	fmt.Fprintf(b, "// BEFORE (unguarded):\n")
	fmt.Fprintf(b, "trace!(\"Processing block {} at height {}\", hash, height);\n\n")
	fmt.Fprintf(b, "// AFTER (pays only when trace is enabled):\n")
	fmt.Fprintf(b, "if log::log_enabled!(log::Level::Trace) {\n")
	fmt.Fprintf(b, "    trace!(\"Processing block {} at height {}\", hash, height);\n")
	fmt.Fprintf(b, "}\n```\n")
}
