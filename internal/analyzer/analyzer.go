// Package analyzer finds log macro invocations with format arguments that
// are not wrapped in a matching `if log_enabled!(log::Level::X)` block.
// It works on raw lines with brace/paren counting, not on a syntax tree.
package analyzer

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tos-network/logcheck/internal/domain"
)

// Analyzer scans source files one at a time. Each file is a single forward
// pass; files share no state, so one Analyzer may serve concurrent callers.
type Analyzer struct {
	classifier *Classifier
}

// New creates an Analyzer using the given path Classifier.
func New(classifier *Classifier) *Analyzer {
	return &Analyzer{classifier: classifier}
}

// AnalyzeFile reads the file at path and analyzes it under its relative
// path. A read failure returns an error and no result; the caller decides
// whether to abort or skip the file.
func (a *Analyzer) AnalyzeFile(path, relPath string) (domain.FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FileResult{}, fmt.Errorf("reading %s: %w", relPath, err)
	}
	return a.Analyze(relPath, strings.Split(string(data), "\n")), nil
}

// Analyze runs the line pass over already-read file content.
func (a *Analyzer) Analyze(relPath string, lines []string) domain.FileResult {
	hot := a.classifier.IsHotPath(relPath)
	test := a.classifier.IsTest(relPath)

	result := domain.FileResult{Path: relPath}
	var guard guardTracker

	for i, line := range lines {
		// A guard-opening line is never itself evaluated for log calls:
		// the state change applies from the next line on.
		if guard.openIfGuard(line) {
			continue
		}
		guard.update(line)

		m := logCallPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		level := domain.Level(m[1])

		statement := joinStatement(lines, i)
		if !placeholderPattern.MatchString(statement) {
			// No format arguments, so the call costs nothing when its
			// level is disabled.
			continue
		}
		if guard.covers(level) {
			continue
		}

		result.Findings = append(result.Findings, domain.Finding{
			File:    relPath,
			Line:    i + 1,
			Level:   level,
			Content: truncate(strings.TrimSpace(statement), domain.MaxContentLen),
			HotPath: hot,
			Test:    test,
		})
	}

	return result
}

// joinStatement joins a log call that starts at lines[start] with the
// following lines until its parentheses balance out. Hitting end-of-file
// with the call still open returns whatever accumulated; a truncated file
// is handled best effort, never as an error.
func joinStatement(lines []string, start int) string {
	var b strings.Builder
	b.WriteString(lines[start])
	balance := strings.Count(lines[start], "(") - strings.Count(lines[start], ")")
	for j := start + 1; balance > 0 && j < len(lines); j++ {
		b.WriteString("\n")
		b.WriteString(lines[j])
		balance += strings.Count(lines[j], "(") - strings.Count(lines[j], ")")
	}
	return b.String()
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
