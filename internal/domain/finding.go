package domain

// MaxContentLen bounds the statement text stored on a Finding. Truncation
// is cosmetic; the full statement was still examined for placeholders.
const MaxContentLen = 200

// Finding is one log call with format arguments that is not wrapped in a
// matching log_enabled guard. Immutable once created.
type Finding struct {
	File    string `json:"file"`
	Line    int    `json:"line"` // 1-based, line where the macro opens
	Level   Level  `json:"level"`
	Content string `json:"content"`
	HotPath bool   `json:"hot_path"`
	Test    bool   `json:"test"`
}

// FileResult holds the findings for one analyzed file.
type FileResult struct {
	Path     string    `json:"path"`
	Findings []Finding `json:"findings"`
}

// Count returns the number of findings in the file.
func (fr *FileResult) Count() int {
	return len(fr.Findings)
}

// ByLevel returns per-level finding counts for the file.
func (fr *FileResult) ByLevel() map[Level]int {
	counts := make(map[Level]int)
	for _, f := range fr.Findings {
		counts[f.Level]++
	}
	return counts
}

// HasHotPath returns true if any finding in the file is on a hot path.
func (fr *FileResult) HasHotPath() bool {
	for _, f := range fr.Findings {
		if f.HotPath {
			return true
		}
	}
	return false
}
