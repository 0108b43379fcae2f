package aggregate

import (
	"reflect"
	"testing"

	"github.com/tos-network/logcheck/internal/domain"
)

func fileResult(path string, findings ...domain.Finding) domain.FileResult {
	for i := range findings {
		findings[i].File = path
	}
	return domain.FileResult{Path: path, Findings: findings}
}

func TestAddUpdatesCounts(t *testing.T) {
	agg := New()
	agg.Add(fileResult("daemon/src/rpc.rs",
		domain.Finding{Line: 10, Level: domain.LevelDebug},
		domain.Finding{Line: 20, Level: domain.LevelTrace, HotPath: true},
	))
	agg.Add(fileResult("common/src/lib.rs",
		domain.Finding{Line: 5, Level: domain.LevelDebug, Test: true},
	))

	s := agg.Summary()
	if s.Total != 3 {
		t.Errorf("total: got %d, want 3", s.Total)
	}
	if s.Files != 2 {
		t.Errorf("files: got %d, want 2", s.Files)
	}
	if s.ByLevel[domain.LevelDebug] != 2 {
		t.Errorf("debug count: got %d, want 2", s.ByLevel[domain.LevelDebug])
	}
	if s.ByModule["daemon/src"] != 2 {
		t.Errorf("daemon/src count: got %d, want 2", s.ByModule["daemon/src"])
	}
	if s.HotPath != 1 {
		t.Errorf("hot path: got %d, want 1", s.HotPath)
	}
	if s.Test != 1 {
		t.Errorf("test: got %d, want 1", s.Test)
	}
	if s.Production != 2 {
		t.Errorf("production: got %d, want 2", s.Production)
	}
}

func TestProductionInvariantHoldsAfterEveryAdd(t *testing.T) {
	results := []domain.FileResult{
		fileResult("a/b/one.rs", domain.Finding{Level: domain.LevelInfo, Test: true}),
		fileResult("a/b/two.rs", domain.Finding{Level: domain.LevelWarn}),
		fileResult("c/d/three.rs",
			domain.Finding{Level: domain.LevelError, Test: true},
			domain.Finding{Level: domain.LevelTrace},
		),
	}

	agg := New()
	for _, fr := range results {
		agg.Add(fr)
		s := agg.Summary()
		if s.Production != s.Total-s.Test {
			t.Fatalf("after adding %s: production=%d, total=%d, test=%d",
				fr.Path, s.Production, s.Total, s.Test)
		}

		levelSum := 0
		for _, n := range s.ByLevel {
			levelSum += n
		}
		moduleSum := 0
		for _, n := range s.ByModule {
			moduleSum += n
		}
		if levelSum != s.Total || moduleSum != s.Total {
			t.Fatalf("after adding %s: total=%d, by_level sum=%d, by_module sum=%d",
				fr.Path, s.Total, levelSum, moduleSum)
		}
	}
}

func TestMergeIsOrderIndependent(t *testing.T) {
	results := []domain.FileResult{
		fileResult("daemon/src/rpc.rs", domain.Finding{Level: domain.LevelDebug}),
		fileResult("common/src/lib.rs", domain.Finding{Level: domain.LevelInfo, Test: true}),
		fileResult("wallet/src/main.rs",
			domain.Finding{Level: domain.LevelWarn, HotPath: true},
			domain.Finding{Level: domain.LevelDebug},
		),
	}

	forward := New()
	for _, fr := range results {
		forward.Add(fr)
	}

	backward := New()
	for i := len(results) - 1; i >= 0; i-- {
		backward.Add(results[i])
	}

	if !reflect.DeepEqual(forward.Summary(), backward.Summary()) {
		t.Errorf("summaries differ by fold order:\nforward:  %+v\nbackward: %+v",
			forward.Summary(), backward.Summary())
	}
}

func TestEmptyFileResultContributesNothing(t *testing.T) {
	agg := New()
	agg.Add(domain.FileResult{Path: "clean.rs"})

	s := agg.Summary()
	if s.Total != 0 || s.Files != 0 {
		t.Errorf("empty result changed summary: %+v", s)
	}
	if len(agg.Files()) != 0 {
		t.Errorf("empty result retained: %d files", len(agg.Files()))
	}
}
