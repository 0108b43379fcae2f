package analyzer

import (
	"strings"

	"github.com/tos-network/logcheck/internal/domain"
)

// guardTracker tracks whether the scan position is inside an
// `if log_enabled!(log::Level::X)` block. Depth is tracked by counting
// braces on raw text, so a string literal containing unbalanced braces can
// throw it off; that imprecision is accepted for a line-based checker.
type guardTracker struct {
	active bool
	level  domain.Level
	depth  int
}

// openIfGuard consumes a guard-opening line. It returns true when the line
// opened a guard; the caller must not evaluate that same line for log
// calls under the new state.
func (g *guardTracker) openIfGuard(line string) bool {
	m := guardOpenPattern.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	level, ok := domain.ParseLevel(strings.ToLower(m[2]))
	if !ok {
		return false
	}
	g.active = true
	g.level = level
	g.depth = strings.Count(line, "{") - strings.Count(line, "}")
	return true
}

// update applies a line's brace delta. The line that brings depth to zero
// closes the block, so that line itself is already outside the guard.
func (g *guardTracker) update(line string) {
	if !g.active {
		return
	}
	g.depth += strings.Count(line, "{") - strings.Count(line, "}")
	if g.depth <= 0 {
		g.active = false
		g.level = ""
		g.depth = 0
	}
}

// covers reports whether an open guard block matches the given level.
// Guards are exact-level: a Debug guard does not cover a nested info! call,
// since each level must check its own enabled predicate.
func (g *guardTracker) covers(level domain.Level) bool {
	return g.active && g.level == level
}
