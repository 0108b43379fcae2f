package domain

import "strings"

// Summary aggregates findings across a whole scan.
type Summary struct {
	Total      int            `json:"total"`
	Files      int            `json:"files"` // files with at least one finding
	ByLevel    map[Level]int  `json:"by_level"`
	ByModule   map[string]int `json:"by_module"`
	HotPath    int            `json:"hot_path"`
	Test       int            `json:"test"`
	Production int            `json:"production"` // total - test
}

// ModuleKey maps a relative file path to its module bucket: the first two
// path segments, or the single segment for top-level files.
func ModuleKey(relPath string) string {
	parts := strings.Split(relPath, "/")
	if len(parts) >= 2 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}
