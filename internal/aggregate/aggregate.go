// Package aggregate folds per-file analysis results into a scan-wide
// summary. The fold is commutative and associative, so results produced by
// parallel workers may be added in any order.
package aggregate

import (
	"github.com/tos-network/logcheck/internal/domain"
)

// Aggregator accumulates FileResults. Append-only: findings are never
// removed or mutated after they are added. Not safe for concurrent use;
// callers add results from a single goroutine after the parallel phase.
type Aggregator struct {
	summary domain.Summary
	files   []domain.FileResult
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{
		summary: domain.Summary{
			ByLevel:  make(map[domain.Level]int),
			ByModule: make(map[string]int),
		},
	}
}

// Add folds one FileResult into the running summary. Files without
// findings contribute nothing, including to the file count.
func (a *Aggregator) Add(result domain.FileResult) {
	if len(result.Findings) == 0 {
		return
	}

	a.files = append(a.files, result)
	a.summary.Files++

	for _, f := range result.Findings {
		a.summary.Total++
		a.summary.ByLevel[f.Level]++
		a.summary.ByModule[domain.ModuleKey(f.File)]++
		if f.HotPath {
			a.summary.HotPath++
		}
		if f.Test {
			a.summary.Test++
		}
	}
	a.summary.Production = a.summary.Total - a.summary.Test
}

// Summary returns the current totals. The maps are shared with the
// Aggregator; callers must treat them as read-only.
func (a *Aggregator) Summary() domain.Summary {
	return a.summary
}

// Files returns every added FileResult, in insertion order.
func (a *Aggregator) Files() []domain.FileResult {
	return a.files
}
